package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/seller-service/internal/domain"
)

var sellerColumns = []string{"id", "name", "email", "birthdate", "basesalary", "departmentid", "depname"}

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestSellerRepository_Insert(t *testing.T) {
	birth := date(1990, time.March, 4)

	t.Run("assigns generated id", func(t *testing.T) {
		mock := newMock(t)
		repo := NewSellerRepository(mock)

		mock.ExpectQuery(`INSERT INTO seller`).
			WithArgs("Alice", "alice@example.com", birth, 3000.0, 1).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(7))

		seller := &domain.Seller{
			Name:       "Alice",
			Email:      "alice@example.com",
			BirthDate:  birth,
			BaseSalary: 3000.0,
			Department: &domain.Department{ID: 1},
		}
		require.NoError(t, repo.Insert(context.Background(), seller))
		assert.Equal(t, 7, seller.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no rows affected is a storage error", func(t *testing.T) {
		mock := newMock(t)
		repo := NewSellerRepository(mock)

		mock.ExpectQuery(`INSERT INTO seller`).
			WithArgs("Bob", "bob@example.com", birth, 1500.0, 2).
			WillReturnRows(pgxmock.NewRows([]string{"id"}))

		seller := &domain.Seller{
			Name:       "Bob",
			Email:      "bob@example.com",
			BirthDate:  birth,
			BaseSalary: 1500.0,
			Department: &domain.Department{ID: 2},
		}
		err := repo.Insert(context.Background(), seller)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrStorage)
		assert.Contains(t, err.Error(), "no rows affected")
		assert.Zero(t, seller.ID)
	})

	t.Run("driver error is wrapped", func(t *testing.T) {
		mock := newMock(t)
		repo := NewSellerRepository(mock)

		pgErr := &pgconn.PgError{Code: "23503", Message: "violates foreign key constraint"}
		mock.ExpectQuery(`INSERT INTO seller`).
			WithArgs("Cara", "cara@example.com", birth, 2000.0, 99).
			WillReturnError(pgErr)

		seller := &domain.Seller{
			Name:       "Cara",
			Email:      "cara@example.com",
			BirthDate:  birth,
			BaseSalary: 2000.0,
			Department: &domain.Department{ID: 99},
		}
		err := repo.Insert(context.Background(), seller)
		require.Error(t, err)

		var dbErr *DBError
		require.True(t, errors.As(err, &dbErr))
		assert.Equal(t, "insert seller", dbErr.Op)
		assert.Contains(t, dbErr.Message, "violates foreign key constraint")

		var target *pgconn.PgError
		assert.True(t, errors.As(err, &target))
		assert.Zero(t, seller.ID)
	})
}

func TestSellerRepository_Update(t *testing.T) {
	birth := date(1985, time.July, 12)
	seller := &domain.Seller{
		ID:         4,
		Name:       "Dan",
		Email:      "dan@example.com",
		BirthDate:  birth,
		BaseSalary: 4200.5,
		Department: &domain.Department{ID: 3},
	}

	t.Run("updates all mutable columns by id", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectExec(`UPDATE seller`).
			WithArgs("Dan", "dan@example.com", birth, 4200.5, 3, 4).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		require.NoError(t, NewSellerRepository(mock).Update(context.Background(), seller))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing id is a silent no-op", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectExec(`UPDATE seller`).
			WithArgs("Dan", "dan@example.com", birth, 4200.5, 3, 4).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		assert.NoError(t, NewSellerRepository(mock).Update(context.Background(), seller))
	})

	t.Run("driver error", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectExec(`UPDATE seller`).
			WithArgs("Dan", "dan@example.com", birth, 4200.5, 3, 4).
			WillReturnError(errors.New("connection reset"))

		err := NewSellerRepository(mock).Update(context.Background(), seller)
		assert.ErrorIs(t, err, ErrStorage)
		assert.EqualError(t, err, "update seller: connection reset")
	})
}

func TestSellerRepository_DeleteByID(t *testing.T) {
	t.Run("missing id is a silent no-op", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectExec(`DELETE FROM seller`).
			WithArgs(42).
			WillReturnResult(pgxmock.NewResult("DELETE", 0))

		assert.NoError(t, NewSellerRepository(mock).DeleteByID(context.Background(), 42))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("driver error", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectExec(`DELETE FROM seller`).
			WithArgs(42).
			WillReturnError(errors.New("boom"))

		assert.ErrorIs(t, NewSellerRepository(mock).DeleteByID(context.Background(), 42), ErrStorage)
	})
}

func TestSellerRepository_FindByID(t *testing.T) {
	birth := date(1992, time.January, 30)

	t.Run("materializes seller with department", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectQuery(`WHERE seller.Id=\$1`).
			WithArgs(3).
			WillReturnRows(pgxmock.NewRows(sellerColumns).
				AddRow(3, "Alice", "alice@example.com", birth, 3000.0, 1, "Computers"))

		seller, err := NewSellerRepository(mock).FindByID(context.Background(), 3)
		require.NoError(t, err)
		require.NotNil(t, seller)
		assert.Equal(t, 3, seller.ID)
		assert.Equal(t, "Alice", seller.Name)
		assert.Equal(t, "alice@example.com", seller.Email)
		assert.Equal(t, birth, seller.BirthDate)
		assert.Equal(t, 3000.0, seller.BaseSalary)
		assert.Equal(t, &domain.Department{ID: 1, Name: "Computers"}, seller.Department)
	})

	t.Run("absent id returns nil", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectQuery(`WHERE seller.Id=\$1`).
			WithArgs(404).
			WillReturnRows(pgxmock.NewRows(sellerColumns))

		seller, err := NewSellerRepository(mock).FindByID(context.Background(), 404)
		assert.NoError(t, err)
		assert.Nil(t, seller)
	})

	t.Run("driver error", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectQuery(`WHERE seller.Id=\$1`).
			WithArgs(3).
			WillReturnError(errors.New("timeout"))

		seller, err := NewSellerRepository(mock).FindByID(context.Background(), 3)
		assert.Nil(t, seller)
		assert.ErrorIs(t, err, ErrStorage)
	})
}

func TestSellerRepository_FindAll(t *testing.T) {
	birth := date(1990, time.May, 1)

	t.Run("shares one department instance per id", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectQuery(`ORDER BY seller.Name`).
			WillReturnRows(pgxmock.NewRows(sellerColumns).
				AddRow(1, "Alice", "alice@example.com", birth, 3000.0, 1, "Computers").
				AddRow(2, "Bob", "bob@example.com", birth, 2500.0, 1, "Computers").
				AddRow(3, "Cara", "cara@example.com", birth, 2800.0, 2, "Electronics")).
			RowsWillBeClosed()

		sellers, err := NewSellerRepository(mock).FindAll(context.Background())
		require.NoError(t, err)
		require.Len(t, sellers, 3)

		assert.Equal(t, "Alice", sellers[0].Name)
		assert.Equal(t, "Bob", sellers[1].Name)
		assert.Equal(t, "Cara", sellers[2].Name)

		assert.Same(t, sellers[0].Department, sellers[1].Department)
		assert.NotSame(t, sellers[0].Department, sellers[2].Department)
		assert.Equal(t, "Electronics", sellers[2].Department.Name)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("caches do not leak between calls", func(t *testing.T) {
		mock := newMock(t)
		repo := NewSellerRepository(mock)
		for i := 0; i < 2; i++ {
			mock.ExpectQuery(`ORDER BY seller.Name`).
				WillReturnRows(pgxmock.NewRows(sellerColumns).
					AddRow(1, "Alice", "alice@example.com", birth, 3000.0, 1, "Computers"))
		}

		first, err := repo.FindAll(context.Background())
		require.NoError(t, err)
		second, err := repo.FindAll(context.Background())
		require.NoError(t, err)

		assert.NotSame(t, first[0].Department, second[0].Department)
	})

	t.Run("empty table", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectQuery(`ORDER BY seller.Name`).
			WillReturnRows(pgxmock.NewRows(sellerColumns))

		sellers, err := NewSellerRepository(mock).FindAll(context.Background())
		require.NoError(t, err)
		assert.Empty(t, sellers)
	})

	t.Run("row error surfaces as storage error", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectQuery(`ORDER BY seller.Name`).
			WillReturnRows(pgxmock.NewRows(sellerColumns).
				AddRow(1, "Alice", "alice@example.com", birth, 3000.0, 1, "Computers").
				AddRow(2, "Bob", "bob@example.com", birth, 2500.0, 1, "Computers").
				RowError(1, errors.New("network failure")))

		sellers, err := NewSellerRepository(mock).FindAll(context.Background())
		assert.Nil(t, sellers)
		assert.ErrorIs(t, err, ErrStorage)
		assert.Contains(t, err.Error(), "network failure")
	})
}

func TestSellerRepository_FindByDepartment(t *testing.T) {
	birth := date(1988, time.October, 9)

	mock := newMock(t)
	mock.ExpectQuery(`WHERE seller.DepartmentId=\$1`).
		WithArgs(2).
		WillReturnRows(pgxmock.NewRows(sellerColumns).
			AddRow(5, "Eve", "eve@example.com", birth, 3100.0, 2, "Electronics").
			AddRow(6, "Frank", "frank@example.com", birth, 2900.0, 2, "Electronics"))

	sellers, err := NewSellerRepository(mock).FindByDepartment(context.Background(), &domain.Department{ID: 2})
	require.NoError(t, err)
	require.Len(t, sellers, 2)
	assert.Equal(t, []string{"Eve", "Frank"}, []string{sellers[0].Name, sellers[1].Name})
	assert.Same(t, sellers[0].Department, sellers[1].Department)
	assert.Equal(t, 2, sellers[0].Department.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
