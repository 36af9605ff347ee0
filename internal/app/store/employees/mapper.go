// internal/app/store/employees/mapper.go
package employeestore

import (
	"time"

	"github.com/dalemusser/staffdesk/internal/domain/models"
)

// NamePlaceholder is used when no source field yields a display name.
const NamePlaceholder = "Sem nome"

// Sentinel is the placeholder for required display fields the fallback
// listing cannot resolve.
const Sentinel = "--"

// Candidate field lists, in priority order. These encode the schema drift
// observed across app versions; earlier entries are newer shapes.
var (
	nameFields = []string{"nome", "nomeCompleto", "name", "fullName", "displayName", "funcionario", "colaborador"}

	registrationFields = []string{"matricula", "registro", "registration", "registrationId", "codigo"}

	roleFields = []string{"funcao", "cargo", "role", "position", "nivel", "perfil"}

	// Dotted paths into nested role/profile/permission structures. Direct
	// fields above always win; order here matters too.
	rolePaths = []string{
		"dados.funcao",
		"perfil.funcao",
		"funcao.nome",
		"cargo.nome",
		"acesso.funcao",
		"permissoes.funcao",
		"profile.role",
		"user.role",
	}

	photoFields = []string{"fotoUrl", "foto", "photoURL", "photoUrl", "avatar", "imagem", "urlFoto"}

	createdAtFields = []string{"createdAt", "criadoEm", "created_at"}
	updatedAtFields = []string{"updatedAt", "atualizadoEm", "updated_at"}
)

// MapEmployee normalizes one raw document into the canonical record.
// Mapping is pure: the same document always yields the same record.
func MapEmployee(raw map[string]any, id string) models.Employee {
	e := models.Employee{
		ID:           id,
		FullName:     FirstNonEmpty(fieldValues(raw, nameFields)...),
		Registration: FirstNonEmpty(fieldValues(raw, registrationFields)...),
		Role:         extractRole(raw),
		CreatedAt:    timeField(raw, createdAtFields),
		UpdatedAt:    timeField(raw, updatedAtFields),
	}
	if e.FullName == "" {
		e.FullName = NamePlaceholder
	}
	if photo := FirstNonEmpty(fieldValues(raw, photoFields)...); photo != "" {
		e.PhotoURL = &photo
	}
	return e
}

// extractRole runs the role priority search: direct fields first, nested
// paths second, stopping at the first non-empty result.
func extractRole(raw map[string]any) string {
	for _, f := range roleFields {
		if v, ok := raw[f]; ok {
			if s := ExtractString(v); s != "" {
				return s
			}
		}
	}
	for _, p := range rolePaths {
		if v, ok := ValueAtPath(raw, p); ok {
			if s := ExtractString(v); s != "" {
				return s
			}
		}
	}
	return ""
}

func fieldValues(raw map[string]any, fields []string) []any {
	out := make([]any, 0, len(fields))
	for _, f := range fields {
		out = append(out, raw[f])
	}
	return out
}

func timeField(raw map[string]any, fields []string) *time.Time {
	for _, f := range fields {
		switch t := raw[f].(type) {
		case time.Time:
			u := t.UTC()
			return &u
		case *time.Time:
			if t != nil {
				u := t.UTC()
				return &u
			}
		}
	}
	return nil
}
