package repository

import (
	"context"
	"errors"
	"time"

	"streamhub-backend/internal/database"
	"streamhub-backend/internal/models"

	"gorm.io/gorm"
)

type HostRepository interface {
	Create(ctx context.Context, host *models.Host) error
	Update(ctx context.Context, host *models.Host) error
	Delete(ctx context.Context, id uint) (bool, error)
	FindByID(ctx context.Context, id uint) (*models.Host, error)
	FindAll(ctx context.Context) ([]models.Host, error)
	CountByIDs(ctx context.Context, ids []uint) (int64, error)
}

type hostRepository struct {
	db      *database.Database
	timeout time.Duration
}

func NewHostRepository(db *database.Database) HostRepository {
	return &hostRepository{
		db:      db,
		timeout: db.GetQueryTimeout(),
	}
}

func (r *hostRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.timeout)
}

func (r *hostRepository) Create(ctx context.Context, host *models.Host) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Create(host).Error
}

func (r *hostRepository) Update(ctx context.Context, host *models.Host) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Save(host).Error
}

func (r *hostRepository) Delete(ctx context.Context, id uint) (bool, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	result := r.db.WithContext(ctx).Delete(&models.Host{}, id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *hostRepository) FindByID(ctx context.Context, id uint) (*models.Host, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var host models.Host
	err := r.db.WithContext(ctx).Preload("Movies").Preload("Movies.Category").First(&host, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &host, nil
}

func (r *hostRepository) FindAll(ctx context.Context) ([]models.Host, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var hosts []models.Host
	err := r.db.WithContext(ctx).Preload("Movies").Preload("Movies.Category").Order("name ASC").Find(&hosts).Error
	if err != nil {
		return nil, err
	}
	return hosts, nil
}

func (r *hostRepository) CountByIDs(ctx context.Context, ids []uint) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var count int64
	err := r.db.WithContext(ctx).Model(&models.Host{}).Where("id IN ?", ids).Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
