package handlers

import (
	"errors"

	"streamhub-backend/internal/services"
	"streamhub-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type HostRequest struct {
	Name string  `json:"name"`
	Bio  *string `json:"bio"`
}

type HostHandler struct {
	service services.HostService
	logger  *logrus.Logger
}

func NewHostHandler(service services.HostService, logger *logrus.Logger) *HostHandler {
	return &HostHandler{
		service: service,
		logger:  logger,
	}
}

// CreateHost godoc
// @Summary Create a host
// @Tags hosts
// @Accept json
// @Produce json
// @Param host body HostRequest true "Host payload"
// @Success 201 {object} utils.Envelope
// @Failure 400 {object} utils.Envelope
// @Security BearerAuth
// @Router /host [post]
func (h *HostHandler) CreateHost(c *fiber.Ctx) error {
	var req HostRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}

	host, err := h.service.Create(c.Context(), req.Name, req.Bio)
	if err != nil {
		return h.fail(c, err, "Failed to create host")
	}
	return utils.Success(c, fiber.StatusCreated, "Host created", host)
}

// GetAllHosts godoc
// @Summary List hosts with their movies
// @Tags hosts
// @Produce json
// @Success 200 {object} utils.Envelope
// @Router /host [get]
func (h *HostHandler) GetAllHosts(c *fiber.Ctx) error {
	hosts, err := h.service.GetAll(c.Context())
	if err != nil {
		return h.fail(c, err, "Failed to retrieve hosts")
	}
	return utils.Success(c, fiber.StatusOK, "", hosts)
}

// GetHostByID godoc
// @Summary Get a host by id
// @Tags hosts
// @Produce json
// @Param id path int true "Host ID"
// @Success 200 {object} utils.Envelope
// @Failure 404 {object} utils.Envelope
// @Router /host/{id} [get]
func (h *HostHandler) GetHostByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return utils.Error(c, fiber.StatusBadRequest, "Invalid ID format")
	}

	host, err := h.service.GetByID(c.Context(), id)
	if err != nil {
		return h.fail(c, err, "Failed to retrieve host")
	}
	return utils.Success(c, fiber.StatusOK, "", host)
}

// UpdateHost godoc
// @Summary Update a host
// @Tags hosts
// @Accept json
// @Produce json
// @Param id path int true "Host ID"
// @Param host body HostRequest true "Host payload"
// @Success 200 {object} utils.Envelope
// @Failure 400 {object} utils.Envelope
// @Failure 404 {object} utils.Envelope
// @Security BearerAuth
// @Router /host/{id} [put]
func (h *HostHandler) UpdateHost(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return utils.Error(c, fiber.StatusBadRequest, "Invalid ID format")
	}

	var req HostRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}

	host, err := h.service.Update(c.Context(), id, req.Name, req.Bio)
	if err != nil {
		return h.fail(c, err, "Failed to update host")
	}
	return utils.Success(c, fiber.StatusOK, "Host updated successfully", host)
}

// DeleteHost godoc
// @Summary Delete a host
// @Tags hosts
// @Produce json
// @Param id path int true "Host ID"
// @Success 200 {object} utils.Envelope
// @Failure 404 {object} utils.Envelope
// @Security BearerAuth
// @Router /host/{id} [delete]
func (h *HostHandler) DeleteHost(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return utils.Error(c, fiber.StatusBadRequest, "Invalid ID format")
	}

	if err := h.service.Delete(c.Context(), id); err != nil {
		return h.fail(c, err, "Failed to delete host")
	}
	return utils.Success(c, fiber.StatusOK, "Host deleted successfully", nil)
}

func (h *HostHandler) fail(c *fiber.Ctx, err error, internalMsg string) error {
	var ve services.ValidationError
	switch {
	case errors.As(err, &ve):
		return utils.Error(c, fiber.StatusBadRequest, ve.Error())
	case errors.Is(err, services.ErrNotFound):
		return utils.Error(c, fiber.StatusNotFound, "Host not found")
	default:
		h.logger.WithError(err).Error(internalMsg)
		return utils.Error(c, fiber.StatusInternalServerError, internalMsg)
	}
}
