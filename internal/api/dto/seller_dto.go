package dto

import (
	"time"

	"github.com/spec-kit/seller-service/internal/domain"
)

// DateLayout is the wire format for birth dates.
const DateLayout = "2006-01-02"

// SellerRequest payload for create/update.
type SellerRequest struct {
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	BirthDate    string  `json:"birth_date"`
	BaseSalary   float64 `json:"base_salary"`
	DepartmentID int     `json:"department_id"`
}

// SellerResponse is the public seller representation.
type SellerResponse struct {
	ID         int                `json:"id"`
	Name       string             `json:"name"`
	Email      string             `json:"email"`
	BirthDate  string             `json:"birth_date"`
	BaseSalary float64            `json:"base_salary"`
	Department DepartmentResponse `json:"department"`
}

// ParseBirthDate parses BirthDate, returning the zero time for an empty value.
func (r SellerRequest) ParseBirthDate() (time.Time, error) {
	if r.BirthDate == "" {
		return time.Time{}, nil
	}
	return time.Parse(DateLayout, r.BirthDate)
}

// NewSellerResponse maps a domain seller.
func NewSellerResponse(s *domain.Seller) SellerResponse {
	resp := SellerResponse{
		ID:         s.ID,
		Name:       s.Name,
		Email:      s.Email,
		BirthDate:  s.BirthDate.Format(DateLayout),
		BaseSalary: s.BaseSalary,
	}
	if s.Department != nil {
		resp.Department = NewDepartmentResponse(s.Department)
	}
	return resp
}

// NewSellerList maps a slice of sellers.
func NewSellerList(sellers []*domain.Seller) []SellerResponse {
	out := make([]SellerResponse, 0, len(sellers))
	for _, s := range sellers {
		out = append(out, NewSellerResponse(s))
	}
	return out
}
