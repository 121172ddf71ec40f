package repository

import (
	"context"
	"errors"
	"time"

	"streamhub-backend/internal/database"
	"streamhub-backend/internal/models"

	"gorm.io/gorm"
)

type CategoryRepository interface {
	Create(ctx context.Context, category *models.Category) error
	Update(ctx context.Context, category *models.Category) error
	Delete(ctx context.Context, id uint) (bool, error)
	FindByID(ctx context.Context, id uint) (*models.Category, error)
	FindAll(ctx context.Context) ([]models.Category, error)
	Exists(ctx context.Context, id uint) (bool, error)
}

type categoryRepository struct {
	db      *database.Database
	timeout time.Duration
}

func NewCategoryRepository(db *database.Database) CategoryRepository {
	return &categoryRepository{
		db:      db,
		timeout: db.GetQueryTimeout(),
	}
}

func (r *categoryRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.timeout)
}

func (r *categoryRepository) Create(ctx context.Context, category *models.Category) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Create(category).Error
}

func (r *categoryRepository) Update(ctx context.Context, category *models.Category) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Save(category).Error
}

// Delete removes the category row. Join rows and scalar references are
// handled by the database (ON DELETE CASCADE / SET NULL). Returns false when
// no row matched.
func (r *categoryRepository) Delete(ctx context.Context, id uint) (bool, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	result := r.db.WithContext(ctx).Delete(&models.Category{}, id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *categoryRepository) FindByID(ctx context.Context, id uint) (*models.Category, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var category models.Category
	err := r.db.WithContext(ctx).Preload("Movies").First(&category, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) FindAll(ctx context.Context) ([]models.Category, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var categories []models.Category
	err := r.db.WithContext(ctx).Preload("Movies").Order("name ASC").Find(&categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *categoryRepository) Exists(ctx context.Context, id uint) (bool, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var count int64
	err := r.db.WithContext(ctx).Model(&models.Category{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
