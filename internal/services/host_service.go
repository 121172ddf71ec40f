package services

import (
	"context"
	"strings"

	"streamhub-backend/internal/models"
	"streamhub-backend/internal/repository"

	"github.com/sirupsen/logrus"
)

type HostService interface {
	Create(ctx context.Context, name string, bio *string) (*models.Host, error)
	Update(ctx context.Context, id uint, name string, bio *string) (*models.Host, error)
	Delete(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (*models.Host, error)
	GetAll(ctx context.Context) ([]models.Host, error)
}

type hostService struct {
	repo   repository.HostRepository
	logger *logrus.Logger
}

func NewHostService(repo repository.HostRepository, logger *logrus.Logger) HostService {
	return &hostService{
		repo:   repo,
		logger: logger,
	}
}

// Create stores a host. Name is trimmed and must be non-empty; bio is trimmed
// and defaults to the empty string, never null.
func (s *hostService) Create(ctx context.Context, name string, bio *string) (*models.Host, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ValidationError("name is required and must be a non-empty string")
	}

	host := &models.Host{Name: name}
	if bio != nil {
		host.Bio = strings.TrimSpace(*bio)
	}

	if err := s.repo.Create(ctx, host); err != nil {
		return nil, err
	}
	return host, nil
}

// Update overwrites the name (mandatory on every update) and replaces the bio
// only when one was supplied; a missing bio keeps the stored value.
func (s *hostService) Update(ctx context.Context, id uint, name string, bio *string) (*models.Host, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ValidationError("name is required and must be a non-empty string")
	}

	host, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if host == nil {
		return nil, ErrNotFound
	}

	host.Name = name
	if bio != nil {
		host.Bio = strings.TrimSpace(*bio)
	}

	if err := s.repo.Update(ctx, host); err != nil {
		return nil, err
	}
	return host, nil
}

func (s *hostService) Delete(ctx context.Context, id uint) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}

func (s *hostService) GetByID(ctx context.Context, id uint) (*models.Host, error) {
	host, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if host == nil {
		return nil, ErrNotFound
	}
	return host, nil
}

func (s *hostService) GetAll(ctx context.Context) ([]models.Host, error) {
	return s.repo.FindAll(ctx)
}
