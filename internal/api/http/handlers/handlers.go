package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/seller-service/internal/auth"
	"github.com/spec-kit/seller-service/internal/domain"
	"github.com/spec-kit/seller-service/internal/events"
	"github.com/spec-kit/seller-service/internal/service"
	apperrors "github.com/spec-kit/seller-service/pkg/util/errorutil"
)

// SellerService is the seller use-case surface handlers depend on.
type SellerService interface {
	Create(ctx context.Context, actor events.Actor, in service.SellerInput) (*domain.Seller, error)
	Update(ctx context.Context, actor events.Actor, id int, in service.SellerInput) (*domain.Seller, error)
	Delete(ctx context.Context, actor events.Actor, id int) error
	Get(ctx context.Context, id int) (*domain.Seller, error)
	List(ctx context.Context) ([]*domain.Seller, error)
	ListByDepartment(ctx context.Context, departmentID int) ([]*domain.Seller, error)
}

// DepartmentService is the department use-case surface handlers depend on.
type DepartmentService interface {
	Create(ctx context.Context, actor events.Actor, in service.DepartmentInput) (*domain.Department, error)
	Update(ctx context.Context, actor events.Actor, id int, in service.DepartmentInput) (*domain.Department, error)
	Delete(ctx context.Context, actor events.Actor, id int) error
	Get(ctx context.Context, id int) (*domain.Department, error)
	List(ctx context.Context) ([]*domain.Department, error)
}

func actorFrom(c *fiber.Ctx) events.Actor {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return events.Actor{}
	}
	return events.Actor{Subject: principal.Subject, Role: principal.Role}
}

func idParam(c *fiber.Ctx) (int, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, apperrors.NewValidationError("invalid id", map[string]any{"id": c.Params("id")})
	}
	return id, nil
}
