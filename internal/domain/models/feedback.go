// internal/domain/models/feedback.go
package models

import "time"

// Feedback is an activity/feedback note attached to an employee.
type Feedback struct {
	ID         string    `json:"id"`
	EmployeeID string    `json:"employeeId"`
	Kind       string    `json:"kind"` // e.g. "elogio" | "alerta" | "observacao"
	Message    string    `json:"message"`
	Author     string    `json:"author,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}
