package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/seller-service/internal/domain"
)

// DepartmentRepository manages department persistence.
type DepartmentRepository interface {
	Insert(ctx context.Context, dept *domain.Department) error
	Update(ctx context.Context, dept *domain.Department) error
	DeleteByID(ctx context.Context, id int) error
	FindByID(ctx context.Context, id int) (*domain.Department, error)
	FindAll(ctx context.Context) ([]*domain.Department, error)
}

type departmentRepository struct {
	db DBTX
}

// NewDepartmentRepository builds the repository.
func NewDepartmentRepository(db DBTX) DepartmentRepository {
	return &departmentRepository{db: db}
}

func (r *departmentRepository) Insert(ctx context.Context, dept *domain.Department) error {
	const query = `
        INSERT INTO department (Name)
        VALUES ($1)
        RETURNING Id`

	var id int
	err := r.db.QueryRow(ctx, query, dept.Name).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return newErr("insert department", "unexpected error: no rows affected")
	}
	if err != nil {
		return wrapErr("insert department", err)
	}
	dept.ID = id
	return nil
}

func (r *departmentRepository) Update(ctx context.Context, dept *domain.Department) error {
	const query = `UPDATE department SET Name=$1 WHERE Id=$2`
	_, err := r.db.Exec(ctx, query, dept.Name, dept.ID)
	return wrapErr("update department", err)
}

func (r *departmentRepository) DeleteByID(ctx context.Context, id int) error {
	const query = `DELETE FROM department WHERE Id=$1`
	_, err := r.db.Exec(ctx, query, id)
	return wrapErr("delete department", err)
}

func (r *departmentRepository) FindByID(ctx context.Context, id int) (*domain.Department, error) {
	const query = `SELECT Id, Name FROM department WHERE Id=$1`

	var dept domain.Department
	err := r.db.QueryRow(ctx, query, id).Scan(&dept.ID, &dept.Name)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, wrapErr("find department", err)
	}
	return &dept, nil
}

func (r *departmentRepository) FindAll(ctx context.Context) ([]*domain.Department, error) {
	const query = `SELECT Id, Name FROM department ORDER BY Name`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, wrapErr("find departments", err)
	}
	defer rows.Close()

	result := []*domain.Department{}
	for rows.Next() {
		var dept domain.Department
		if err := rows.Scan(&dept.ID, &dept.Name); err != nil {
			return nil, wrapErr("find departments", err)
		}
		result = append(result, &dept)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr("find departments", err)
	}
	return result, nil
}
