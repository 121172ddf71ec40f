package repository

import (
	"context"
	"errors"
	"time"

	"streamhub-backend/internal/database"
	"streamhub-backend/internal/models"

	"gorm.io/gorm"
)

type MovieRepository interface {
	Create(ctx context.Context, movie *models.Movie, hostIDs []uint) error
	Update(ctx context.Context, movie *models.Movie) error
	ReplaceHosts(ctx context.Context, movieID uint, hostIDs []uint) error
	Delete(ctx context.Context, id uint) (bool, error)
	FindByID(ctx context.Context, id uint) (*models.Movie, error)
	FindAll(ctx context.Context, categoryID, hostID *uint) ([]models.Movie, error)
}

type movieRepository struct {
	db      *database.Database
	timeout time.Duration
}

func NewMovieRepository(db *database.Database) MovieRepository {
	return &movieRepository{
		db:      db,
		timeout: db.GetQueryTimeout(),
	}
}

func (r *movieRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.timeout)
}

// Create inserts the movie row and one join row per host id in a single
// transaction, so a partially linked movie is never observable.
func (r *movieRepository) Create(ctx context.Context, movie *models.Movie, hostIDs []uint) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Hosts", "Category").Create(movie).Error; err != nil {
			return err
		}
		return createHostLinks(tx, movie.ID, hostIDs)
	})
}

func (r *movieRepository) Update(ctx context.Context, movie *models.Movie) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Omit("Hosts", "Category").Save(movie).Error
}

// ReplaceHosts swaps the full set of host links for a movie. Delete and
// recreate happen inside one transaction so concurrent readers never observe
// a half-replaced set.
func (r *movieRepository) ReplaceHosts(ctx context.Context, movieID uint, hostIDs []uint) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("movie_id = ?", movieID).Delete(&models.MovieHost{}).Error; err != nil {
			return err
		}
		return createHostLinks(tx, movieID, hostIDs)
	})
}

func createHostLinks(tx *gorm.DB, movieID uint, hostIDs []uint) error {
	if len(hostIDs) == 0 {
		return nil
	}

	links := make([]models.MovieHost, 0, len(hostIDs))
	for _, hostID := range hostIDs {
		links = append(links, models.MovieHost{MovieID: movieID, HostID: hostID})
	}
	return tx.Create(&links).Error
}

// Delete removes the movie row; join rows cascade at the database level.
func (r *movieRepository) Delete(ctx context.Context, id uint) (bool, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	result := r.db.WithContext(ctx).Delete(&models.Movie{}, id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *movieRepository) FindByID(ctx context.Context, id uint) (*models.Movie, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var movie models.Movie
	err := r.db.WithContext(ctx).Preload("Category").Preload("Hosts").First(&movie, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &movie, nil
}

// FindAll lists movies, optionally constrained to a category and/or a host.
// Absent filters impose no constraint; both combine with AND semantics.
func (r *movieRepository) FindAll(ctx context.Context, categoryID, hostID *uint) ([]models.Movie, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	query := r.db.WithContext(ctx).Model(&models.Movie{})

	if categoryID != nil {
		query = query.Where("movies.category_id = ?", *categoryID)
	}
	if hostID != nil {
		query = query.
			Joins("JOIN movie_hosts ON movie_hosts.movie_id = movies.id").
			Where("movie_hosts.host_id = ?", *hostID)
	}

	var movies []models.Movie
	err := query.Preload("Category").Preload("Hosts").Order("movies.created_at DESC").Find(&movies).Error
	if err != nil {
		return nil, err
	}
	return movies, nil
}
