package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/seller-service/internal/domain"
	"github.com/spec-kit/seller-service/internal/events"
	"github.com/spec-kit/seller-service/internal/repository"
	apperrors "github.com/spec-kit/seller-service/pkg/util/errorutil"
)

// DepartmentInput carries the mutable department fields.
type DepartmentInput struct {
	Name string `validate:"required,max=60"`
}

// DepartmentService manages departments.
type DepartmentService struct {
	departments repository.DepartmentRepository
	dispatcher  events.Dispatcher
	logger      *zap.Logger
}

// NewDepartmentService constructs the service.
func NewDepartmentService(repo repository.DepartmentRepository, dispatcher events.Dispatcher, logger *zap.Logger) *DepartmentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DepartmentService{departments: repo, dispatcher: dispatcher, logger: logger}
}

// Create inserts a department.
func (s *DepartmentService) Create(ctx context.Context, actor events.Actor, in DepartmentInput) (*domain.Department, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	dept := &domain.Department{Name: in.Name}
	if err := s.departments.Insert(ctx, dept); err != nil {
		s.logger.Error("insert department", zap.Error(err))
		return nil, apperrors.MapError(err)
	}
	s.publish(ctx, events.EventDepartmentCreated, actor, dept)
	return dept, nil
}

// Update renames department id; a missing id is not an error.
func (s *DepartmentService) Update(ctx context.Context, actor events.Actor, id int, in DepartmentInput) (*domain.Department, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	dept := &domain.Department{ID: id, Name: in.Name}
	if err := s.departments.Update(ctx, dept); err != nil {
		s.logger.Error("update department", zap.Int("department_id", id), zap.Error(err))
		return nil, apperrors.MapError(err)
	}
	s.publish(ctx, events.EventDepartmentUpdated, actor, dept)
	return dept, nil
}

// Delete removes department id. Departments still referenced by sellers
// are rejected by the foreign key and surface as CONFLICT.
func (s *DepartmentService) Delete(ctx context.Context, actor events.Actor, id int) error {
	if err := s.departments.DeleteByID(ctx, id); err != nil {
		s.logger.Warn("delete department", zap.Int("department_id", id), zap.Error(err))
		return apperrors.MapError(err)
	}
	s.publish(ctx, events.EventDepartmentDeleted, actor, &domain.Department{ID: id})
	return nil
}

// Get returns department id or NOT_FOUND.
func (s *DepartmentService) Get(ctx context.Context, id int) (*domain.Department, error) {
	dept, err := s.departments.FindByID(ctx, id)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	if dept == nil {
		return nil, apperrors.NewNotFound("department", map[string]any{"id": id})
	}
	return dept, nil
}

// List returns all departments ordered by name.
func (s *DepartmentService) List(ctx context.Context) ([]*domain.Department, error) {
	depts, err := s.departments.FindAll(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return depts, nil
}

func (s *DepartmentService) publish(ctx context.Context, eventType events.EventType, actor events.Actor, dept *domain.Department) {
	if s.dispatcher == nil {
		return
	}
	var payload any
	if dept.Name != "" {
		payload = events.DepartmentPayload{Name: dept.Name}
	}
	_ = s.dispatcher.Publish(ctx, events.NewEvent(eventType, dept.ID, actor, payload))
}
