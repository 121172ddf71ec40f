package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"streamhub-backend/internal/models"
)

type memHostRepo struct {
	nextID uint
	hosts  map[uint]*models.Host
}

func newMemHostRepo() *memHostRepo {
	return &memHostRepo{nextID: 1, hosts: make(map[uint]*models.Host)}
}

func (r *memHostRepo) Create(ctx context.Context, host *models.Host) error {
	host.ID = r.nextID
	r.nextID++
	stored := *host
	r.hosts[host.ID] = &stored
	return nil
}

func (r *memHostRepo) Update(ctx context.Context, host *models.Host) error {
	stored := *host
	r.hosts[host.ID] = &stored
	return nil
}

func (r *memHostRepo) Delete(ctx context.Context, id uint) (bool, error) {
	if _, ok := r.hosts[id]; !ok {
		return false, nil
	}
	delete(r.hosts, id)
	return true, nil
}

func (r *memHostRepo) FindByID(ctx context.Context, id uint) (*models.Host, error) {
	host, ok := r.hosts[id]
	if !ok {
		return nil, nil
	}
	found := *host
	return &found, nil
}

func (r *memHostRepo) FindAll(ctx context.Context) ([]models.Host, error) {
	var out []models.Host
	for _, host := range r.hosts {
		out = append(out, *host)
	}
	return out, nil
}

func (r *memHostRepo) CountByIDs(ctx context.Context, ids []uint) (int64, error) {
	var count int64
	for _, id := range ids {
		if _, ok := r.hosts[id]; ok {
			count++
		}
	}
	return count, nil
}

func newHostService() (*memHostRepo, HostService) {
	repo := newMemHostRepo()
	return repo, NewHostService(repo, testLogger())
}

func TestHostCreateTrimsNameAndBio(t *testing.T) {
	_, service := newHostService()

	bio := "  Reviews laptops for a living.  "
	host, err := service.Create(context.Background(), "  Riley Quinn  ", &bio)
	require.NoError(t, err)

	assert.Equal(t, "Riley Quinn", host.Name)
	assert.Equal(t, "Reviews laptops for a living.", host.Bio)
}

func TestHostCreateDefaultsBioToEmptyString(t *testing.T) {
	_, service := newHostService()

	host, err := service.Create(context.Background(), "Riley Quinn", nil)
	require.NoError(t, err)
	assert.Equal(t, "", host.Bio)
}

func TestHostCreateRejectsBlankName(t *testing.T) {
	_, service := newHostService()

	_, err := service.Create(context.Background(), "   ", nil)
	var ve ValidationError
	assert.ErrorAs(t, err, &ve)
}

func TestHostUpdateKeepsBioWhenOmitted(t *testing.T) {
	_, service := newHostService()

	bio := "Original bio"
	created, err := service.Create(context.Background(), "Riley", &bio)
	require.NoError(t, err)

	updated, err := service.Update(context.Background(), created.ID, "Riley Quinn", nil)
	require.NoError(t, err)
	assert.Equal(t, "Riley Quinn", updated.Name)
	assert.Equal(t, "Original bio", updated.Bio)
}

func TestHostUpdateRequiresName(t *testing.T) {
	_, service := newHostService()

	created, err := service.Create(context.Background(), "Riley", nil)
	require.NoError(t, err)

	_, err = service.Update(context.Background(), created.ID, "", nil)
	var ve ValidationError
	assert.ErrorAs(t, err, &ve)
}

func TestHostUpdateNotFound(t *testing.T) {
	_, service := newHostService()
	_, err := service.Update(context.Background(), 404, "Name", nil)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestHostDelete(t *testing.T) {
	repo, service := newHostService()

	created, err := service.Create(context.Background(), "Riley", nil)
	require.NoError(t, err)

	require.NoError(t, service.Delete(context.Background(), created.ID))
	assert.NotContains(t, repo.hosts, created.ID)

	assert.ErrorIs(t, service.Delete(context.Background(), created.ID), ErrNotFound)
}
