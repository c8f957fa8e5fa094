package domain

import "time"

// Seller models a salesperson and the department they work for.
type Seller struct {
	ID         int
	Name       string
	Email      string
	BirthDate  time.Time
	BaseSalary float64
	Department *Department
}

// DepartmentID returns the id of the referenced department, or zero when unset.
func (s *Seller) DepartmentID() int {
	if s == nil || s.Department == nil {
		return 0
	}
	return s.Department.ID
}
