package handlers

import (
	"errors"
	"strconv"

	"streamhub-backend/internal/services"
	"streamhub-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type MovieHandler struct {
	service       services.MovieService
	maxUploadSize int64
	logger        *logrus.Logger
}

func NewMovieHandler(service services.MovieService, maxUploadSize int64, logger *logrus.Logger) *MovieHandler {
	return &MovieHandler{
		service:       service,
		maxUploadSize: maxUploadSize,
		logger:        logger,
	}
}

// CreateMovie godoc
// @Summary Create a movie
// @Description Multipart create: scalar fields plus a required thumbnail image and a hostIds JSON array
// @Tags movies
// @Accept mpfd
// @Produce json
// @Param title formData string true "Title"
// @Param categoryId formData int true "Category ID"
// @Param description formData string true "Description"
// @Param video_url formData string true "Streaming manifest or video URL"
// @Param hostIds formData string false "JSON array of host ids"
// @Param thumbnail formData file true "Thumbnail image"
// @Success 201 {object} utils.Envelope
// @Failure 400 {object} utils.Envelope
// @Security BearerAuth
// @Router /movie [post]
func (h *MovieHandler) CreateMovie(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return utils.Error(c, fiber.StatusBadRequest, "Invalid multipart form")
	}

	input, err := movieCreateInput(form)
	if err != nil {
		return h.fail(c, err, "Failed to parse movie payload")
	}
	if err := validateThumbnail(input.Thumbnail, h.maxUploadSize); err != nil {
		return h.fail(c, err, "Invalid thumbnail")
	}

	movie, err := h.service.Create(c.Context(), input)
	if err != nil {
		return h.fail(c, err, "Failed to create movie")
	}
	return utils.Success(c, fiber.StatusCreated, "Movie created", movie)
}

// GetAllMovies godoc
// @Summary List movies
// @Description Optional categoryId and hostId filters combine with AND semantics
// @Tags movies
// @Produce json
// @Param categoryId query int false "Filter by category"
// @Param hostId query int false "Filter by host"
// @Success 200 {object} utils.Envelope
// @Router /movie [get]
func (h *MovieHandler) GetAllMovies(c *fiber.Ctx) error {
	categoryID, err := queryID(c, "categoryId")
	if err != nil {
		return utils.Error(c, fiber.StatusBadRequest, "categoryId must be a number")
	}
	hostID, err := queryID(c, "hostId")
	if err != nil {
		return utils.Error(c, fiber.StatusBadRequest, "hostId must be a number")
	}

	movies, err := h.service.GetAll(c.Context(), categoryID, hostID)
	if err != nil {
		return h.fail(c, err, "Failed to retrieve movies")
	}
	return utils.Success(c, fiber.StatusOK, "", movies)
}

// GetMovieByID godoc
// @Summary Get a movie by id
// @Tags movies
// @Produce json
// @Param id path int true "Movie ID"
// @Success 200 {object} utils.Envelope
// @Failure 404 {object} utils.Envelope
// @Router /movie/{id} [get]
func (h *MovieHandler) GetMovieByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return utils.Error(c, fiber.StatusBadRequest, "Invalid ID format")
	}

	movie, err := h.service.GetByID(c.Context(), id)
	if err != nil {
		return h.fail(c, err, "Failed to retrieve movie")
	}
	return utils.Success(c, fiber.StatusOK, "", movie)
}

// UpdateMovie godoc
// @Summary Update a movie
// @Description Provided fields overwrite, omitted fields stay untouched. Supplying hostIds replaces the full host set.
// @Tags movies
// @Accept mpfd
// @Produce json
// @Param id path int true "Movie ID"
// @Success 200 {object} utils.Envelope
// @Failure 404 {object} utils.Envelope
// @Security BearerAuth
// @Router /movie/{id} [put]
func (h *MovieHandler) UpdateMovie(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return utils.Error(c, fiber.StatusBadRequest, "Invalid ID format")
	}

	form, err := c.MultipartForm()
	if err != nil {
		return utils.Error(c, fiber.StatusBadRequest, "Invalid multipart form")
	}

	input, err := movieUpdateInput(form)
	if err != nil {
		return h.fail(c, err, "Failed to parse movie payload")
	}
	if err := validateThumbnail(input.Thumbnail, h.maxUploadSize); err != nil {
		return h.fail(c, err, "Invalid thumbnail")
	}

	movie, err := h.service.Update(c.Context(), id, input)
	if err != nil {
		return h.fail(c, err, "Failed to update movie")
	}
	return utils.Success(c, fiber.StatusOK, "Movie updated successfully", movie)
}

// DeleteMovie godoc
// @Summary Delete a movie
// @Description Deletes the catalog row, then best-effort deletes stored assets
// @Tags movies
// @Produce json
// @Param id path int true "Movie ID"
// @Success 200 {object} utils.Envelope
// @Failure 404 {object} utils.Envelope
// @Security BearerAuth
// @Router /movie/{id} [delete]
func (h *MovieHandler) DeleteMovie(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return utils.Error(c, fiber.StatusBadRequest, "Invalid ID format")
	}

	if err := h.service.Delete(c.Context(), id); err != nil {
		return h.fail(c, err, "Failed to delete movie")
	}
	return utils.Success(c, fiber.StatusOK, "Movie deleted successfully", nil)
}

func (h *MovieHandler) fail(c *fiber.Ctx, err error, internalMsg string) error {
	var ve services.ValidationError
	switch {
	case errors.As(err, &ve):
		return utils.Error(c, fiber.StatusBadRequest, ve.Error())
	case errors.Is(err, services.ErrNotFound):
		return utils.Error(c, fiber.StatusNotFound, "movie not found")
	default:
		h.logger.WithError(err).Error(internalMsg)
		return utils.Error(c, fiber.StatusInternalServerError, internalMsg)
	}
}

func queryID(c *fiber.Ctx, key string) (*uint, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	parsed, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return nil, err
	}
	id := uint(parsed)
	return &id, nil
}
