package handlers

import (
	"errors"
	"strconv"

	"streamhub-backend/internal/services"
	"streamhub-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type CategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type CategoryHandler struct {
	service services.CategoryService
	logger  *logrus.Logger
}

func NewCategoryHandler(service services.CategoryService, logger *logrus.Logger) *CategoryHandler {
	return &CategoryHandler{
		service: service,
		logger:  logger,
	}
}

// CreateCategory godoc
// @Summary Create a category
// @Tags categories
// @Accept json
// @Produce json
// @Param category body CategoryRequest true "Category payload"
// @Success 201 {object} utils.Envelope
// @Failure 400 {object} utils.Envelope
// @Security BearerAuth
// @Router /category [post]
func (h *CategoryHandler) CreateCategory(c *fiber.Ctx) error {
	var req CategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}

	category, err := h.service.Create(c.Context(), req.Name, req.Description)
	if err != nil {
		return h.fail(c, err, "Failed to create category")
	}

	return utils.Success(c, fiber.StatusCreated, "Category created", category)
}

// GetAllCategories godoc
// @Summary List categories with their movies
// @Tags categories
// @Produce json
// @Success 200 {object} utils.Envelope
// @Router /category [get]
func (h *CategoryHandler) GetAllCategories(c *fiber.Ctx) error {
	categories, err := h.service.GetAll(c.Context())
	if err != nil {
		return h.fail(c, err, "Failed to retrieve categories")
	}
	return utils.Success(c, fiber.StatusOK, "", categories)
}

// GetCategoryByID godoc
// @Summary Get a category by id
// @Tags categories
// @Produce json
// @Param id path int true "Category ID"
// @Success 200 {object} utils.Envelope
// @Failure 404 {object} utils.Envelope
// @Router /category/{id} [get]
func (h *CategoryHandler) GetCategoryByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return utils.Error(c, fiber.StatusBadRequest, "Invalid ID format")
	}

	category, err := h.service.GetByID(c.Context(), id)
	if err != nil {
		return h.fail(c, err, "Failed to retrieve category")
	}
	return utils.Success(c, fiber.StatusOK, "", category)
}

// UpdateCategory godoc
// @Summary Update a category
// @Tags categories
// @Accept json
// @Produce json
// @Param id path int true "Category ID"
// @Param category body CategoryRequest true "Category payload"
// @Success 200 {object} utils.Envelope
// @Failure 404 {object} utils.Envelope
// @Security BearerAuth
// @Router /category/{id} [put]
func (h *CategoryHandler) UpdateCategory(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return utils.Error(c, fiber.StatusBadRequest, "Invalid ID format")
	}

	var req CategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}

	category, err := h.service.Update(c.Context(), id, req.Name, req.Description)
	if err != nil {
		return h.fail(c, err, "Failed to update category")
	}
	return utils.Success(c, fiber.StatusOK, "Category updated successfully", category)
}

// DeleteCategory godoc
// @Summary Delete a category
// @Tags categories
// @Produce json
// @Param id path int true "Category ID"
// @Success 200 {object} utils.Envelope
// @Failure 404 {object} utils.Envelope
// @Security BearerAuth
// @Router /category/{id} [delete]
func (h *CategoryHandler) DeleteCategory(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return utils.Error(c, fiber.StatusBadRequest, "Invalid ID format")
	}

	if err := h.service.Delete(c.Context(), id); err != nil {
		return h.fail(c, err, "Failed to delete category")
	}
	return utils.Success(c, fiber.StatusOK, "Category deleted successfully", nil)
}

func (h *CategoryHandler) fail(c *fiber.Ctx, err error, internalMsg string) error {
	var ve services.ValidationError
	switch {
	case errors.As(err, &ve):
		return utils.Error(c, fiber.StatusBadRequest, ve.Error())
	case errors.Is(err, services.ErrNotFound):
		return utils.Error(c, fiber.StatusNotFound, "Category not found")
	default:
		h.logger.WithError(err).Error(internalMsg)
		return utils.Error(c, fiber.StatusInternalServerError, internalMsg)
	}
}

func parseID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
