package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/seller-service/internal/domain"
	"github.com/spec-kit/seller-service/internal/events"
	"github.com/spec-kit/seller-service/internal/repository"
	apperrors "github.com/spec-kit/seller-service/pkg/util/errorutil"
)

// SellerInput carries the mutable seller fields.
type SellerInput struct {
	Name         string    `validate:"required,max=60"`
	Email        string    `validate:"required,email,max=100"`
	BirthDate    time.Time `validate:"required"`
	BaseSalary   float64   `validate:"gte=0"`
	DepartmentID int       `validate:"required,gt=0"`
}

// SellerDependencies encapsulates collaborators required by SellerService.
type SellerDependencies struct {
	SellerRepo     repository.SellerRepository
	DepartmentRepo repository.DepartmentRepository
	Dispatcher     events.Dispatcher
	Logger         *zap.Logger
}

// SellerService coordinates seller use-cases.
type SellerService struct {
	sellers     repository.SellerRepository
	departments repository.DepartmentRepository
	dispatcher  events.Dispatcher
	logger      *zap.Logger
}

// NewSellerService constructs the service.
func NewSellerService(deps SellerDependencies) *SellerService {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SellerService{
		sellers:     deps.SellerRepo,
		departments: deps.DepartmentRepo,
		dispatcher:  deps.Dispatcher,
		logger:      logger,
	}
}

// Create validates and inserts a new seller.
func (s *SellerService) Create(ctx context.Context, actor events.Actor, in SellerInput) (*domain.Seller, error) {
	seller, err := s.build(ctx, in)
	if err != nil {
		return nil, err
	}
	if err := s.sellers.Insert(ctx, seller); err != nil {
		s.logger.Error("insert seller", zap.Error(err))
		return nil, apperrors.MapError(err)
	}

	s.logger.Info("seller created", zap.Int("seller_id", seller.ID), zap.Int("department_id", seller.DepartmentID()))
	s.publish(ctx, events.EventSellerCreated, actor, seller)
	return seller, nil
}

// Update overwrites the mutable fields of seller id. Updating an id that does
// not exist is not an error.
func (s *SellerService) Update(ctx context.Context, actor events.Actor, id int, in SellerInput) (*domain.Seller, error) {
	if id <= 0 {
		return nil, apperrors.NewValidationError("invalid seller id", map[string]any{"id": id})
	}
	seller, err := s.build(ctx, in)
	if err != nil {
		return nil, err
	}
	seller.ID = id
	if err := s.sellers.Update(ctx, seller); err != nil {
		s.logger.Error("update seller", zap.Int("seller_id", id), zap.Error(err))
		return nil, apperrors.MapError(err)
	}

	s.publish(ctx, events.EventSellerUpdated, actor, seller)
	return seller, nil
}

// Delete removes seller id. Deleting an id that does not exist is not an error.
func (s *SellerService) Delete(ctx context.Context, actor events.Actor, id int) error {
	if err := s.sellers.DeleteByID(ctx, id); err != nil {
		s.logger.Error("delete seller", zap.Int("seller_id", id), zap.Error(err))
		return apperrors.MapError(err)
	}

	s.publish(ctx, events.EventSellerDeleted, actor, &domain.Seller{ID: id})
	return nil
}

// Get returns seller id or NOT_FOUND.
func (s *SellerService) Get(ctx context.Context, id int) (*domain.Seller, error) {
	seller, err := s.sellers.FindByID(ctx, id)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	if seller == nil {
		return nil, apperrors.NewNotFound("seller", map[string]any{"id": id})
	}
	return seller, nil
}

// List returns all sellers ordered by name.
func (s *SellerService) List(ctx context.Context) ([]*domain.Seller, error) {
	sellers, err := s.sellers.FindAll(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return sellers, nil
}

// ListByDepartment returns the sellers of department id ordered by name.
func (s *SellerService) ListByDepartment(ctx context.Context, departmentID int) ([]*domain.Seller, error) {
	dept, err := s.department(ctx, departmentID)
	if err != nil {
		return nil, err
	}
	sellers, err := s.sellers.FindByDepartment(ctx, dept)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return sellers, nil
}

func (s *SellerService) build(ctx context.Context, in SellerInput) (*domain.Seller, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	dept, err := s.department(ctx, in.DepartmentID)
	if err != nil {
		return nil, err
	}
	return &domain.Seller{
		Name:       in.Name,
		Email:      in.Email,
		BirthDate:  in.BirthDate,
		BaseSalary: in.BaseSalary,
		Department: dept,
	}, nil
}

func (s *SellerService) department(ctx context.Context, id int) (*domain.Department, error) {
	dept, err := s.departments.FindByID(ctx, id)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	if dept == nil {
		return nil, apperrors.NewNotFound("department", map[string]any{"id": id})
	}
	return dept, nil
}

func (s *SellerService) publish(ctx context.Context, eventType events.EventType, actor events.Actor, seller *domain.Seller) {
	if s.dispatcher == nil {
		return
	}
	var payload any
	if eventType != events.EventSellerDeleted {
		payload = events.SellerPayload{
			Name:         seller.Name,
			Email:        seller.Email,
			BaseSalary:   seller.BaseSalary,
			DepartmentID: seller.DepartmentID(),
		}
	}
	_ = s.dispatcher.Publish(ctx, events.NewEvent(eventType, seller.ID, actor, payload))
}
