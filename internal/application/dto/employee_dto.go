package dto

import "time"

// EmployeeRequest body para criação/edição de funcionário.
type EmployeeRequest struct {
	FullName     string `json:"full_name"`
	Registration string `json:"registration"`
	Department   string `json:"department,omitempty"`
	Status       string `json:"status,omitempty"` // ativo (padrão), inativo
}

// EmployeeResponse funcionário da empresa.
type EmployeeResponse struct {
	ID           string    `json:"id"`
	FullName     string    `json:"full_name"`
	Registration string    `json:"registration"`
	Department   string    `json:"department,omitempty"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}
