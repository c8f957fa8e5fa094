package repository

import (
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/seller-service/internal/domain"
)

// departmentCache holds the departments built during a single read so that
// sellers sharing a department id share one *domain.Department.
type departmentCache map[int]*domain.Department

func newDepartmentCache() departmentCache {
	return make(departmentCache)
}

func (c departmentCache) get(id int, name string) *domain.Department {
	if dept, ok := c[id]; ok {
		return dept
	}
	dept := &domain.Department{ID: id, Name: name}
	c[id] = dept
	return dept
}

// scanSeller reads one row shaped like sellerSelect.
func scanSeller(row pgx.Row, cache departmentCache) (*domain.Seller, error) {
	var (
		seller  domain.Seller
		depID   int
		depName string
	)
	if err := row.Scan(
		&seller.ID,
		&seller.Name,
		&seller.Email,
		&seller.BirthDate,
		&seller.BaseSalary,
		&depID,
		&depName,
	); err != nil {
		return nil, err
	}
	seller.Department = cache.get(depID, depName)
	return &seller, nil
}
