package services

import (
	"context"
	"strings"

	"streamhub-backend/internal/models"
	"streamhub-backend/internal/repository"

	"github.com/sirupsen/logrus"
)

type CategoryService interface {
	Create(ctx context.Context, name, description string) (*models.Category, error)
	Update(ctx context.Context, id uint, name, description string) (*models.Category, error)
	Delete(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (*models.Category, error)
	GetAll(ctx context.Context) ([]models.Category, error)
}

type categoryService struct {
	repo   repository.CategoryRepository
	logger *logrus.Logger
}

func NewCategoryService(repo repository.CategoryRepository, logger *logrus.Logger) CategoryService {
	return &categoryService{
		repo:   repo,
		logger: logger,
	}
}

func (s *categoryService) Create(ctx context.Context, name, description string) (*models.Category, error) {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(description) == "" {
		return nil, ValidationError("name and description are required")
	}

	category := &models.Category{
		Name:        name,
		Description: description,
	}
	if err := s.repo.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *categoryService) Update(ctx context.Context, id uint, name, description string) (*models.Category, error) {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(description) == "" {
		return nil, ValidationError("name and description are required")
	}

	category, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrNotFound
	}

	category.Name = name
	category.Description = description
	if err := s.repo.Update(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *categoryService) Delete(ctx context.Context, id uint) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}

func (s *categoryService) GetByID(ctx context.Context, id uint) (*models.Category, error) {
	category, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrNotFound
	}
	return category, nil
}

func (s *categoryService) GetAll(ctx context.Context) ([]models.Category, error) {
	return s.repo.FindAll(ctx)
}
