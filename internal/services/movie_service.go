package services

import (
	"context"
	"mime/multipart"
	"strings"

	"streamhub-backend/internal/models"
	"streamhub-backend/internal/repository"
	"streamhub-backend/internal/storage"

	"github.com/sirupsen/logrus"
)

const thumbnailFolder = "thumbnails"

// MovieCreateInput carries the multipart create payload after parsing.
type MovieCreateInput struct {
	Title             string
	CategoryID        uint
	Description       string
	VideoURL          string
	Duration          string
	ReleaseYear       int
	Rating            string
	Cast              string
	Director          string
	Show              string
	ProductsReviewed  string
	KeyHighlights     string
	AdditionalContext string
	HostIDs           []uint
	Thumbnail         *multipart.FileHeader
}

// MovieUpdateInput distinguishes "omitted" (nil) from "set to empty": only
// provided fields overwrite. A nil HostIDs leaves host links untouched; a
// non-nil one replaces the full set.
type MovieUpdateInput struct {
	Title             *string
	CategoryID        *uint
	Description       *string
	VideoURL          *string
	Duration          *string
	ReleaseYear       *int
	Rating            *string
	Cast              *string
	Director          *string
	Show              *string
	ProductsReviewed  *string
	KeyHighlights     *string
	AdditionalContext *string
	HostIDs           []uint
	Thumbnail         *multipart.FileHeader
}

type MovieService interface {
	Create(ctx context.Context, input *MovieCreateInput) (*models.Movie, error)
	Update(ctx context.Context, id uint, input *MovieUpdateInput) (*models.Movie, error)
	Delete(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (*models.Movie, error)
	GetAll(ctx context.Context, categoryID, hostID *uint) ([]models.Movie, error)
}

type movieService struct {
	repo         repository.MovieRepository
	categoryRepo repository.CategoryRepository
	hostRepo     repository.HostRepository
	gateway      storage.Gateway
	logger       *logrus.Logger
}

func NewMovieService(repo repository.MovieRepository, categoryRepo repository.CategoryRepository, hostRepo repository.HostRepository, gateway storage.Gateway, logger *logrus.Logger) MovieService {
	return &movieService{
		repo:         repo,
		categoryRepo: categoryRepo,
		hostRepo:     hostRepo,
		gateway:      gateway,
		logger:       logger,
	}
}

// Create validates the payload, pushes the thumbnail to storage, then inserts
// the movie and its host links. The upload happens strictly before the insert
// so no catalog row ever points at an asset that was never stored.
func (s *movieService) Create(ctx context.Context, input *MovieCreateInput) (*models.Movie, error) {
	if input.Thumbnail == nil {
		return nil, ValidationError("thumbnail file is required")
	}
	if strings.TrimSpace(input.Title) == "" || input.CategoryID == 0 ||
		strings.TrimSpace(input.Description) == "" || strings.TrimSpace(input.VideoURL) == "" {
		return nil, ValidationError("missing required fields: title, categoryId, description and video_url are required")
	}

	if err := s.checkCategory(ctx, input.CategoryID); err != nil {
		return nil, err
	}
	if err := s.checkHosts(ctx, input.HostIDs); err != nil {
		return nil, err
	}

	thumbnailURL, err := s.gateway.Upload(ctx, input.Thumbnail, thumbnailFolder)
	if err != nil {
		return nil, err
	}

	categoryID := input.CategoryID
	movie := &models.Movie{
		Title:             input.Title,
		CategoryID:        &categoryID,
		Description:       input.Description,
		VideoURL:          input.VideoURL,
		ThumbnailURL:      thumbnailURL,
		Duration:          input.Duration,
		ReleaseYear:       input.ReleaseYear,
		Rating:            input.Rating,
		Cast:              input.Cast,
		Director:          input.Director,
		Show:              input.Show,
		ProductsReviewed:  input.ProductsReviewed,
		KeyHighlights:     input.KeyHighlights,
		AdditionalContext: input.AdditionalContext,
	}

	if err := s.repo.Create(ctx, movie, input.HostIDs); err != nil {
		// The row never landed; clean up the orphaned thumbnail.
		s.cleanupAsset(ctx, thumbnailURL)
		return nil, err
	}

	return s.reload(ctx, movie.ID)
}

// Update overwrites provided scalar fields only. A new thumbnail replaces the
// stored object (old one removed best-effort); supplied host ids replace the
// full link set in one transaction.
func (s *movieService) Update(ctx context.Context, id uint, input *MovieUpdateInput) (*models.Movie, error) {
	movie, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if movie == nil {
		return nil, ErrNotFound
	}

	if input.CategoryID != nil {
		if err := s.checkCategory(ctx, *input.CategoryID); err != nil {
			return nil, err
		}
		movie.CategoryID = input.CategoryID
	}

	if input.Title != nil {
		movie.Title = *input.Title
	}
	if input.Description != nil {
		movie.Description = *input.Description
	}
	if input.VideoURL != nil {
		movie.VideoURL = *input.VideoURL
	}
	if input.Duration != nil {
		movie.Duration = *input.Duration
	}
	if input.ReleaseYear != nil {
		movie.ReleaseYear = *input.ReleaseYear
	}
	if input.Rating != nil {
		movie.Rating = *input.Rating
	}
	if input.Cast != nil {
		movie.Cast = *input.Cast
	}
	if input.Director != nil {
		movie.Director = *input.Director
	}
	if input.Show != nil {
		movie.Show = *input.Show
	}
	if input.ProductsReviewed != nil {
		movie.ProductsReviewed = *input.ProductsReviewed
	}
	if input.KeyHighlights != nil {
		movie.KeyHighlights = *input.KeyHighlights
	}
	if input.AdditionalContext != nil {
		movie.AdditionalContext = *input.AdditionalContext
	}

	if input.Thumbnail != nil {
		thumbnailURL, err := s.gateway.Upload(ctx, input.Thumbnail, thumbnailFolder)
		if err != nil {
			return nil, err
		}
		if movie.ThumbnailURL != "" {
			s.cleanupAsset(ctx, movie.ThumbnailURL)
		}
		movie.ThumbnailURL = thumbnailURL
	}

	if err := s.repo.Update(ctx, movie); err != nil {
		return nil, err
	}

	if input.HostIDs != nil {
		if err := s.checkHosts(ctx, input.HostIDs); err != nil {
			return nil, err
		}
		if err := s.repo.ReplaceHosts(ctx, id, input.HostIDs); err != nil {
			return nil, err
		}
	}

	return s.reload(ctx, id)
}

// Delete removes the catalog row, then best-effort deletes the stored assets.
// Storage failures are logged and swallowed; the database deletion stands.
func (s *movieService) Delete(ctx context.Context, id uint) error {
	movie, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if movie == nil {
		return ErrNotFound
	}

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}

	if movie.ThumbnailURL != "" {
		s.cleanupAsset(ctx, movie.ThumbnailURL)
	}
	if movie.VideoURL != "" {
		s.cleanupAsset(ctx, movie.VideoURL)
	}
	return nil
}

func (s *movieService) GetByID(ctx context.Context, id uint) (*models.Movie, error) {
	movie, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if movie == nil {
		return nil, ErrNotFound
	}
	return movie, nil
}

func (s *movieService) GetAll(ctx context.Context, categoryID, hostID *uint) ([]models.Movie, error) {
	return s.repo.FindAll(ctx, categoryID, hostID)
}

func (s *movieService) checkCategory(ctx context.Context, id uint) error {
	exists, err := s.categoryRepo.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return ValidationError("categoryId does not reference an existing category")
	}
	return nil
}

func (s *movieService) checkHosts(ctx context.Context, ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	count, err := s.hostRepo.CountByIDs(ctx, ids)
	if err != nil {
		return err
	}
	if count != int64(len(ids)) {
		return ValidationError("hostIds reference hosts that do not exist")
	}
	return nil
}

func (s *movieService) cleanupAsset(ctx context.Context, url string) {
	if err := s.gateway.Delete(ctx, url); err != nil {
		s.logger.WithError(err).WithField("url", url).Warn("Failed to delete asset from storage")
	}
}

func (s *movieService) reload(ctx context.Context, id uint) (*models.Movie, error) {
	movie, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if movie == nil {
		return nil, ErrNotFound
	}
	return movie, nil
}
