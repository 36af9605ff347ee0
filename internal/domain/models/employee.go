// internal/domain/models/employee.go
package models

import "time"

// Employee is the canonical employee record exposed by the API, independent
// of which underlying collection or document shape it was read from.
//
// CreatedAt/UpdatedAt are pointers because legacy documents frequently have
// no usable timestamps; absent is rendered as JSON null, never a zero time.
type Employee struct {
	ID           string     `json:"id"`
	FullName     string     `json:"fullName"`
	Registration string     `json:"registrationId"`
	Role         string     `json:"role"`
	PhotoURL     *string    `json:"photoUrl"`
	CreatedAt    *time.Time `json:"createdAt"`
	UpdatedAt    *time.Time `json:"updatedAt"`
}
