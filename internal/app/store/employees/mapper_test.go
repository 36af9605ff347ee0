package employeestore_test

import (
	"reflect"
	"testing"
	"time"

	employeestore "github.com/dalemusser/staffdesk/internal/app/store/employees"
)

func TestMapEmployee_ModernShape(t *testing.T) {
	created := time.Date(2023, 5, 10, 12, 0, 0, 0, time.UTC)
	raw := map[string]any{
		"nome":      "Maria Souza",
		"matricula": "A-1001",
		"funcao":    "fiscal",
		"fotoUrl":   "https://cdn.example.com/maria.jpg",
		"createdAt": created,
		"updatedAt": created,
	}

	e := employeestore.MapEmployee(raw, "id-1")

	if e.ID != "id-1" {
		t.Errorf("ID = %q", e.ID)
	}
	if e.FullName != "Maria Souza" {
		t.Errorf("FullName = %q", e.FullName)
	}
	if e.Registration != "A-1001" {
		t.Errorf("Registration = %q", e.Registration)
	}
	if e.Role != "fiscal" {
		t.Errorf("Role = %q", e.Role)
	}
	if e.PhotoURL == nil || *e.PhotoURL != "https://cdn.example.com/maria.jpg" {
		t.Errorf("PhotoURL = %v", e.PhotoURL)
	}
	if e.CreatedAt == nil || !e.CreatedAt.Equal(created) {
		t.Errorf("CreatedAt = %v", e.CreatedAt)
	}
}

func TestMapEmployee_LegacyShapes(t *testing.T) {
	tests := []struct {
		name     string
		raw      map[string]any
		wantName string
		wantReg  string
		wantRole string
	}{
		{
			"english fields",
			map[string]any{"name": "John Smith", "registration": "B-2", "role": "supervisor"},
			"John Smith", "B-2", "supervisor",
		},
		{
			"numeric registration",
			map[string]any{"nome": "Ana", "matricula": 1234, "cargo": "encarregada"},
			"Ana", "1234", "encarregada",
		},
		{
			"role in flags object under nested path",
			map[string]any{"nome": "Pedro", "matricula": "C-3", "permissoes": map[string]any{"funcao": map[string]any{"fiscal": true}}},
			"Pedro", "C-3", "fiscal",
		},
		{
			"direct field beats nested path",
			map[string]any{"nome": "Rita", "matricula": "D-4", "funcao": "chefe", "perfil": map[string]any{"funcao": "auxiliar"}},
			"Rita", "D-4", "chefe",
		},
		{
			"nested object role",
			map[string]any{"nome": "Luis", "matricula": "E-5", "funcao": map[string]any{"nome": "porteiro"}},
			"Luis", "E-5", "porteiro",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := employeestore.MapEmployee(tt.raw, "x")
			if e.FullName != tt.wantName {
				t.Errorf("FullName = %q, want %q", e.FullName, tt.wantName)
			}
			if e.Registration != tt.wantReg {
				t.Errorf("Registration = %q, want %q", e.Registration, tt.wantReg)
			}
			if e.Role != tt.wantRole {
				t.Errorf("Role = %q, want %q", e.Role, tt.wantRole)
			}
		})
	}
}

func TestMapEmployee_Defaults(t *testing.T) {
	e := employeestore.MapEmployee(map[string]any{}, "empty")

	if e.FullName != employeestore.NamePlaceholder {
		t.Errorf("FullName = %q, want placeholder", e.FullName)
	}
	if e.Registration != "" {
		t.Errorf("Registration = %q, want empty", e.Registration)
	}
	if e.Role != "" {
		t.Errorf("Role = %q, want empty", e.Role)
	}
	if e.PhotoURL != nil {
		t.Errorf("PhotoURL = %v, want nil (never empty string)", e.PhotoURL)
	}
	if e.CreatedAt != nil || e.UpdatedAt != nil {
		t.Error("expected nil timestamps for shapeless document")
	}
}

func TestMapEmployee_Idempotent(t *testing.T) {
	raw := map[string]any{
		"nome":      "Maria",
		"matricula": "A-1",
		"funcao":    map[string]any{"fiscal": true},
		"createdAt": time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	a := employeestore.MapEmployee(raw, "same")
	b := employeestore.MapEmployee(raw, "same")
	if !reflect.DeepEqual(a, b) {
		t.Errorf("mapping is not idempotent: %+v vs %+v", a, b)
	}
}
