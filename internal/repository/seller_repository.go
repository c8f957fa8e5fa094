package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/seller-service/internal/domain"
)

// SellerRepository manages seller persistence.
type SellerRepository interface {
	Insert(ctx context.Context, seller *domain.Seller) error
	Update(ctx context.Context, seller *domain.Seller) error
	DeleteByID(ctx context.Context, id int) error
	FindByID(ctx context.Context, id int) (*domain.Seller, error)
	FindAll(ctx context.Context) ([]*domain.Seller, error)
	FindByDepartment(ctx context.Context, dept *domain.Department) ([]*domain.Seller, error)
}

const sellerSelect = `
        SELECT seller.Id, seller.Name, seller.Email, seller.BirthDate, seller.BaseSalary,
               seller.DepartmentId, department.Name AS DepName
        FROM seller INNER JOIN department ON seller.DepartmentId = department.Id`

type sellerRepository struct {
	db DBTX
}

// NewSellerRepository builds the repository on top of an externally managed connection.
func NewSellerRepository(db DBTX) SellerRepository {
	return &sellerRepository{db: db}
}

func (r *sellerRepository) Insert(ctx context.Context, seller *domain.Seller) error {
	const query = `
        INSERT INTO seller (Name, Email, BirthDate, BaseSalary, DepartmentId)
        VALUES ($1,$2,$3,$4,$5)
        RETURNING Id`

	var id int
	err := r.db.QueryRow(ctx, query,
		seller.Name,
		seller.Email,
		seller.BirthDate,
		seller.BaseSalary,
		seller.DepartmentID(),
	).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return newErr("insert seller", "unexpected error: no rows affected")
	}
	if err != nil {
		return wrapErr("insert seller", err)
	}
	seller.ID = id
	return nil
}

// Update does not check the affected row count; a missing id is a no-op.
func (r *sellerRepository) Update(ctx context.Context, seller *domain.Seller) error {
	const query = `
        UPDATE seller
        SET Name=$1, Email=$2, BirthDate=$3, BaseSalary=$4, DepartmentId=$5
        WHERE Id=$6`

	_, err := r.db.Exec(ctx, query,
		seller.Name,
		seller.Email,
		seller.BirthDate,
		seller.BaseSalary,
		seller.DepartmentID(),
		seller.ID,
	)
	return wrapErr("update seller", err)
}

func (r *sellerRepository) DeleteByID(ctx context.Context, id int) error {
	const query = `DELETE FROM seller WHERE Id=$1`
	_, err := r.db.Exec(ctx, query, id)
	return wrapErr("delete seller", err)
}

// FindByID returns nil without error when no seller has the given id.
func (r *sellerRepository) FindByID(ctx context.Context, id int) (*domain.Seller, error) {
	const query = sellerSelect + `
        WHERE seller.Id=$1`

	seller, err := scanSeller(r.db.QueryRow(ctx, query, id), newDepartmentCache())
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, wrapErr("find seller", err)
	}
	return seller, nil
}

func (r *sellerRepository) FindAll(ctx context.Context) ([]*domain.Seller, error) {
	const query = sellerSelect + `
        ORDER BY seller.Name`

	sellers, err := r.list(ctx, query)
	return sellers, wrapErr("find sellers", err)
}

func (r *sellerRepository) FindByDepartment(ctx context.Context, dept *domain.Department) ([]*domain.Seller, error) {
	const query = sellerSelect + `
        WHERE seller.DepartmentId=$1
        ORDER BY seller.Name`

	sellers, err := r.list(ctx, query, dept.ID)
	return sellers, wrapErr("find sellers by department", err)
}

func (r *sellerRepository) list(ctx context.Context, query string, args ...any) ([]*domain.Seller, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cache := newDepartmentCache()
	result := []*domain.Seller{}
	for rows.Next() {
		seller, err := scanSeller(rows, cache)
		if err != nil {
			return nil, err
		}
		result = append(result, seller)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
