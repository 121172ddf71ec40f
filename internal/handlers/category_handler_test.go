package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"streamhub-backend/internal/models"
	"streamhub-backend/internal/services"
)

type stubCategoryService struct {
	categories map[uint]*models.Category
	createErr  error
}

func (s *stubCategoryService) Create(ctx context.Context, name, description string) (*models.Category, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	if strings.TrimSpace(name) == "" || strings.TrimSpace(description) == "" {
		return nil, services.ValidationError("name and description are required")
	}
	return &models.Category{ID: 1, Name: name, Description: description}, nil
}

func (s *stubCategoryService) Update(ctx context.Context, id uint, name, description string) (*models.Category, error) {
	category, ok := s.categories[id]
	if !ok {
		return nil, services.ErrNotFound
	}
	category.Name = name
	category.Description = description
	return category, nil
}

func (s *stubCategoryService) Delete(ctx context.Context, id uint) error {
	if _, ok := s.categories[id]; !ok {
		return services.ErrNotFound
	}
	delete(s.categories, id)
	return nil
}

func (s *stubCategoryService) GetByID(ctx context.Context, id uint) (*models.Category, error) {
	category, ok := s.categories[id]
	if !ok {
		return nil, services.ErrNotFound
	}
	return category, nil
}

func (s *stubCategoryService) GetAll(ctx context.Context) ([]models.Category, error) {
	var out []models.Category
	for _, category := range s.categories {
		out = append(out, *category)
	}
	return out, nil
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

type envelope struct {
	OK      bool            `json:"ok"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

func doRequest(t *testing.T, app *fiber.App, method, path, body string) (*http.Response, envelope) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req)
	require.NoError(t, err)

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp, env
}

func newCategoryApp(stub *stubCategoryService) *fiber.App {
	handler := NewCategoryHandler(stub, quietLogger())
	app := fiber.New()
	app.Post("/category", handler.CreateCategory)
	app.Get("/category", handler.GetAllCategories)
	app.Get("/category/:id", handler.GetCategoryByID)
	app.Put("/category/:id", handler.UpdateCategory)
	app.Delete("/category/:id", handler.DeleteCategory)
	return app
}

func TestCreateCategoryEnvelope(t *testing.T) {
	app := newCategoryApp(&stubCategoryService{categories: map[uint]*models.Category{}})

	resp, env := doRequest(t, app, http.MethodPost, "/category", `{"name":"Tech","description":"Hardware reviews"}`)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.True(t, env.OK)
	assert.Equal(t, "Category created", env.Message)

	var category models.Category
	require.NoError(t, json.Unmarshal(env.Data, &category))
	assert.Equal(t, "Tech", category.Name)
}

func TestCreateCategoryValidationFailure(t *testing.T) {
	app := newCategoryApp(&stubCategoryService{categories: map[uint]*models.Category{}})

	resp, env := doRequest(t, app, http.MethodPost, "/category", `{"name":"","description":""}`)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.False(t, env.OK)
	assert.Equal(t, "name and description are required", env.Message)
}

func TestGetCategoryNotFound(t *testing.T) {
	app := newCategoryApp(&stubCategoryService{categories: map[uint]*models.Category{}})

	resp, env := doRequest(t, app, http.MethodGet, "/category/42", "")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.False(t, env.OK)
	assert.Equal(t, "Category not found", env.Message)
}

func TestGetCategoryBadID(t *testing.T) {
	app := newCategoryApp(&stubCategoryService{categories: map[uint]*models.Category{}})

	resp, env := doRequest(t, app, http.MethodGet, "/category/abc", "")
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Invalid ID format", env.Message)
}

func TestDeleteCategory(t *testing.T) {
	stub := &stubCategoryService{categories: map[uint]*models.Category{
		7: {ID: 7, Name: "Tech", Description: "Hardware reviews"},
	}}
	app := newCategoryApp(stub)

	resp, env := doRequest(t, app, http.MethodDelete, "/category/7", "")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.True(t, env.OK)
	assert.Equal(t, "Category deleted successfully", env.Message)

	resp, _ = doRequest(t, app, http.MethodDelete, "/category/7", "")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestInternalErrorsAreOpaque(t *testing.T) {
	app := newCategoryApp(&stubCategoryService{
		categories: map[uint]*models.Category{},
		createErr:  assert.AnError,
	})

	resp, env := doRequest(t, app, http.MethodPost, "/category", `{"name":"Tech","description":"Hardware"}`)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "Failed to create category", env.Message, "internal detail never leaks")
}
