package dto

import "github.com/spec-kit/seller-service/internal/domain"

// DepartmentRequest payload.
type DepartmentRequest struct {
	Name string `json:"name"`
}

// DepartmentResponse is the public department representation.
type DepartmentResponse struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

func NewDepartmentResponse(d *domain.Department) DepartmentResponse {
	return DepartmentResponse{ID: d.ID, Name: d.Name}
}

func NewDepartmentList(depts []*domain.Department) []DepartmentResponse {
	out := make([]DepartmentResponse, 0, len(depts))
	for _, d := range depts {
		out = append(out, NewDepartmentResponse(d))
	}
	return out
}
