package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/seller-service/internal/api/dto"
	"github.com/spec-kit/seller-service/internal/service"
	apperrors "github.com/spec-kit/seller-service/pkg/util/errorutil"
)

// DepartmentsHandler exposes department endpoints.
type DepartmentsHandler struct {
	departments DepartmentService
	sellers     SellerService
}

// NewDepartmentsHandler constructs handler.
func NewDepartmentsHandler(departments DepartmentService, sellers SellerService) *DepartmentsHandler {
	return &DepartmentsHandler{departments: departments, sellers: sellers}
}

// List handles GET /departments.
func (h *DepartmentsHandler) List(c *fiber.Ctx) error {
	depts, err := h.departments.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewDepartmentList(depts)})
}

// Get handles GET /departments/:id.
func (h *DepartmentsHandler) Get(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	dept, err := h.departments.Get(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewDepartmentResponse(dept)})
}

// Sellers handles GET /departments/:id/sellers.
func (h *DepartmentsHandler) Sellers(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	sellers, err := h.sellers.ListByDepartment(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewSellerList(sellers)})
}

// Create handles POST /departments.
func (h *DepartmentsHandler) Create(c *fiber.Ctx) error {
	var req dto.DepartmentRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	dept, err := h.departments.Create(c.UserContext(), actorFrom(c), service.DepartmentInput{Name: req.Name})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewDepartmentResponse(dept)})
}

// Update handles PUT /departments/:id.
func (h *DepartmentsHandler) Update(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	var req dto.DepartmentRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	dept, err := h.departments.Update(c.UserContext(), actorFrom(c), id, service.DepartmentInput{Name: req.Name})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewDepartmentResponse(dept)})
}

// Delete handles DELETE /departments/:id.
func (h *DepartmentsHandler) Delete(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	if err := h.departments.Delete(c.UserContext(), actorFrom(c), id); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}
