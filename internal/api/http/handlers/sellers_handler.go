package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/seller-service/internal/api/dto"
	"github.com/spec-kit/seller-service/internal/service"
	apperrors "github.com/spec-kit/seller-service/pkg/util/errorutil"
)

// SellersHandler exposes seller endpoints.
type SellersHandler struct {
	sellers SellerService
}

// NewSellersHandler constructs handler.
func NewSellersHandler(sellers SellerService) *SellersHandler {
	return &SellersHandler{sellers: sellers}
}

// List handles GET /sellers.
func (h *SellersHandler) List(c *fiber.Ctx) error {
	sellers, err := h.sellers.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewSellerList(sellers)})
}

// Get handles GET /sellers/:id.
func (h *SellersHandler) Get(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	seller, err := h.sellers.Get(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewSellerResponse(seller)})
}

// Create handles POST /sellers.
func (h *SellersHandler) Create(c *fiber.Ctx) error {
	in, err := parseSellerRequest(c)
	if err != nil {
		return err
	}
	seller, err := h.sellers.Create(c.UserContext(), actorFrom(c), in)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewSellerResponse(seller)})
}

// Update handles PUT /sellers/:id.
func (h *SellersHandler) Update(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	in, err := parseSellerRequest(c)
	if err != nil {
		return err
	}
	seller, err := h.sellers.Update(c.UserContext(), actorFrom(c), id, in)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewSellerResponse(seller)})
}

// Delete handles DELETE /sellers/:id.
func (h *SellersHandler) Delete(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	if err := h.sellers.Delete(c.UserContext(), actorFrom(c), id); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

func parseSellerRequest(c *fiber.Ctx) (service.SellerInput, error) {
	var req dto.SellerRequest
	if err := c.BodyParser(&req); err != nil {
		return service.SellerInput{}, apperrors.NewValidationError("invalid payload", nil)
	}
	birthDate, err := req.ParseBirthDate()
	if err != nil {
		return service.SellerInput{}, apperrors.NewValidationError("invalid birth_date", map[string]any{"birth_date": "must be YYYY-MM-DD"})
	}
	return service.SellerInput{
		Name:         req.Name,
		Email:        req.Email,
		BirthDate:    birthDate,
		BaseSalary:   req.BaseSalary,
		DepartmentID: req.DepartmentID,
	}, nil
}
