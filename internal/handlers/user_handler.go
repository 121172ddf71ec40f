package handlers

import (
	"errors"

	"streamhub-backend/internal/services"
	"streamhub-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type UserRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
	Password    string `json:"password"`
	DateBorn    string `json:"date_born"`
	Role        string `json:"role"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Type     string `json:"type"`
}

type UserHandler struct {
	service services.UserService
	logger  *logrus.Logger
}

func NewUserHandler(service services.UserService, logger *logrus.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		logger:  logger,
	}
}

// CreateUser godoc
// @Summary Register a user
// @Tags users
// @Accept json
// @Produce json
// @Param user body UserRequest true "User payload"
// @Success 201 {object} utils.Envelope
// @Failure 400 {object} utils.Envelope
// @Router /user [post]
func (h *UserHandler) CreateUser(c *fiber.Ctx) error {
	var req UserRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}

	user, err := h.service.Register(c.Context(), &services.UserInput{
		Name:        req.Name,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Password:    req.Password,
		DateBorn:    req.DateBorn,
		Role:        req.Role,
	})
	if err != nil {
		return h.fail(c, err, "Failed to create user")
	}
	return utils.Success(c, fiber.StatusCreated, "User created successfully", user)
}

// Login godoc
// @Summary Log in as USER or ADMIN
// @Description The type field selects which role the email is matched against
// @Tags users
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Login payload"
// @Success 200 {object} utils.Envelope
// @Failure 401 {object} utils.Envelope
// @Failure 403 {object} utils.Envelope
// @Router /user/login [post]
func (h *UserHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}

	user, token, err := h.service.Login(c.Context(), req.Email, req.Password, req.Type)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			return utils.Error(c, fiber.StatusForbidden, "Username doesn't exist")
		case errors.Is(err, services.ErrIncorrectPassword):
			return utils.Error(c, fiber.StatusUnauthorized, "Incorrect password")
		default:
			h.logger.WithError(err).Error("Login failed")
			return utils.Error(c, fiber.StatusInternalServerError, "Login failed")
		}
	}

	return utils.Success(c, fiber.StatusOK, "Logged user", fiber.Map{
		"user":  user,
		"token": token,
	})
}

// GetAllUsers godoc
// @Summary List users
// @Tags users
// @Produce json
// @Success 200 {object} utils.Envelope
// @Security BearerAuth
// @Router /user [get]
func (h *UserHandler) GetAllUsers(c *fiber.Ctx) error {
	users, err := h.service.GetAll(c.Context())
	if err != nil {
		return h.fail(c, err, "Failed to retrieve users")
	}
	return utils.Success(c, fiber.StatusOK, "", users)
}

// GetUserByID godoc
// @Summary Get a user by id
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} utils.Envelope
// @Failure 404 {object} utils.Envelope
// @Security BearerAuth
// @Router /user/{id} [get]
func (h *UserHandler) GetUserByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return utils.Error(c, fiber.StatusBadRequest, "Invalid ID format")
	}

	user, err := h.service.GetByID(c.Context(), id)
	if err != nil {
		return h.fail(c, err, "Failed to retrieve user")
	}
	return utils.Success(c, fiber.StatusOK, "", user)
}

// UpdateUser godoc
// @Summary Update a user
// @Tags users
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param user body UserRequest true "User payload"
// @Success 200 {object} utils.Envelope
// @Failure 404 {object} utils.Envelope
// @Security BearerAuth
// @Router /user/{id} [put]
func (h *UserHandler) UpdateUser(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return utils.Error(c, fiber.StatusBadRequest, "Invalid ID format")
	}

	var req UserRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}

	user, err := h.service.Update(c.Context(), id, &services.UserInput{
		Name:        req.Name,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Password:    req.Password,
		DateBorn:    req.DateBorn,
		Role:        req.Role,
	})
	if err != nil {
		return h.fail(c, err, "Failed to update user")
	}
	return utils.Success(c, fiber.StatusOK, "User updated successfully", user)
}

func (h *UserHandler) fail(c *fiber.Ctx, err error, internalMsg string) error {
	var ve services.ValidationError
	switch {
	case errors.As(err, &ve):
		return utils.Error(c, fiber.StatusBadRequest, ve.Error())
	case errors.Is(err, services.ErrNotFound):
		return utils.Error(c, fiber.StatusNotFound, "User not found")
	default:
		h.logger.WithError(err).Error(internalMsg)
		return utils.Error(c, fiber.StatusInternalServerError, internalMsg)
	}
}
