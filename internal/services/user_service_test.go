package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"streamhub-backend/internal/auth"
	"streamhub-backend/internal/models"
)

type fakeUserRepo struct {
	nextID           uint
	users            map[uint]*models.User
	lastSessionCalls int
	lastSessionErr   error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{nextID: 1, users: make(map[uint]*models.User)}
}

func (r *fakeUserRepo) Create(ctx context.Context, user *models.User) error {
	user.ID = r.nextID
	r.nextID++
	stored := *user
	r.users[user.ID] = &stored
	return nil
}

func (r *fakeUserRepo) Update(ctx context.Context, user *models.User) error {
	stored := *user
	r.users[user.ID] = &stored
	return nil
}

func (r *fakeUserRepo) FindByID(ctx context.Context, id uint) (*models.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	found := *user
	return &found, nil
}

func (r *fakeUserRepo) FindAll(ctx context.Context) ([]models.User, error) {
	var out []models.User
	for _, user := range r.users {
		out = append(out, *user)
	}
	return out, nil
}

func (r *fakeUserRepo) FindByEmailAndRole(ctx context.Context, email, role string) (*models.User, error) {
	for _, user := range r.users {
		if user.Email == email && user.Role == role {
			found := *user
			return &found, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) UpdateLastSession(ctx context.Context, id uint, at time.Time) error {
	r.lastSessionCalls++
	if r.lastSessionErr != nil {
		return r.lastSessionErr
	}
	if user, ok := r.users[id]; ok {
		stamp := at
		user.LastSession = &stamp
	}
	return nil
}

func newUserFixture() (*fakeUserRepo, *auth.TokenManager, UserService) {
	repo := newFakeUserRepo()
	tokens := auth.NewTokenManager("test-secret", 48*time.Hour)
	service := NewUserService(repo, tokens, testLogger())
	return repo, tokens, service
}

func TestRegisterHashesPasswordAndCoercesRole(t *testing.T) {
	_, _, service := newUserFixture()

	user, err := service.Register(context.Background(), &UserInput{
		Name:     "Sam",
		Email:    "sam@example.com",
		Password: "hunter2",
		Role:     "SUPERUSER",
	})
	require.NoError(t, err)

	assert.Equal(t, models.RoleUser, user.Role, "unknown roles collapse to USER")
	assert.NotEqual(t, "hunter2", user.Password)
	assert.True(t, auth.ComparePassword(user.Password, "hunter2"))
}

func TestRegisterKeepsAdminRole(t *testing.T) {
	_, _, service := newUserFixture()

	user, err := service.Register(context.Background(), &UserInput{
		Email:    "admin@example.com",
		Password: "secret",
		Role:     models.RoleAdmin,
	})
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, user.Role)
}

func TestRegisterRequiresEmailAndPassword(t *testing.T) {
	_, _, service := newUserFixture()

	_, err := service.Register(context.Background(), &UserInput{Email: "a@b.c"})
	var ve ValidationError
	assert.ErrorAs(t, err, &ve)

	_, err = service.Register(context.Background(), &UserInput{Password: "x"})
	assert.ErrorAs(t, err, &ve)
}

func TestRegisterParsesDateBorn(t *testing.T) {
	_, _, service := newUserFixture()

	user, err := service.Register(context.Background(), &UserInput{
		Email:    "dated@example.com",
		Password: "secret",
		DateBorn: "1990-04-15",
	})
	require.NoError(t, err)
	require.NotNil(t, user.DateBorn)
	assert.Equal(t, 1990, user.DateBorn.Year())
	assert.Equal(t, time.April, user.DateBorn.Month())
}

func TestLoginUnknownUserVersusWrongPassword(t *testing.T) {
	repo, _, service := newUserFixture()

	_, err := service.Register(context.Background(), &UserInput{
		Email:    "viewer@example.com",
		Password: "correct-horse",
	})
	require.NoError(t, err)

	// Unknown email.
	_, _, err = service.Login(context.Background(), "ghost@example.com", "whatever", models.RoleUser)
	assert.ErrorIs(t, err, ErrUserNotFound)

	// Known email but matched against the wrong role.
	_, _, err = service.Login(context.Background(), "viewer@example.com", "correct-horse", models.RoleAdmin)
	assert.ErrorIs(t, err, ErrUserNotFound)

	// Right pair, wrong password.
	_, _, err = service.Login(context.Background(), "viewer@example.com", "wrong", models.RoleUser)
	assert.ErrorIs(t, err, ErrIncorrectPassword)

	assert.Zero(t, repo.lastSessionCalls, "failed logins never touch last_session")
}

func TestLoginSuccessIssuesTokenAndStampsSession(t *testing.T) {
	repo, tokens, service := newUserFixture()

	registered, err := service.Register(context.Background(), &UserInput{
		Email:    "viewer@example.com",
		Password: "correct-horse",
	})
	require.NoError(t, err)

	loggedAt := time.Date(2025, 7, 1, 9, 30, 0, 0, time.UTC)
	service.(*userService).now = func() time.Time { return loggedAt }

	user, token, err := service.Login(context.Background(), "viewer@example.com", "correct-horse", models.RoleUser)
	require.NoError(t, err)

	userID, err := tokens.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, registered.ID, userID)

	require.NotNil(t, user.LastSession)
	assert.True(t, user.LastSession.Equal(loggedAt))
	require.NotNil(t, repo.users[registered.ID].LastSession)
	assert.True(t, repo.users[registered.ID].LastSession.Equal(loggedAt))
}

func TestLoginSucceedsWhenSessionStampFails(t *testing.T) {
	repo, _, service := newUserFixture()
	_, err := service.Register(context.Background(), &UserInput{
		Email:    "viewer@example.com",
		Password: "correct-horse",
	})
	require.NoError(t, err)

	repo.lastSessionErr = assert.AnError

	user, token, err := service.Login(context.Background(), "viewer@example.com", "correct-horse", models.RoleUser)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Nil(t, user.LastSession, "the stamp is best-effort")
}

func TestUpdateRehashesOnlyWhenPasswordProvided(t *testing.T) {
	repo, _, service := newUserFixture()
	registered, err := service.Register(context.Background(), &UserInput{
		Email:    "viewer@example.com",
		Password: "original",
	})
	require.NoError(t, err)
	originalHash := repo.users[registered.ID].Password

	_, err = service.Update(context.Background(), registered.ID, &UserInput{
		Name:  "Renamed",
		Email: "viewer@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, originalHash, repo.users[registered.ID].Password)

	_, err = service.Update(context.Background(), registered.ID, &UserInput{
		Email:    "viewer@example.com",
		Password: "rotated",
	})
	require.NoError(t, err)
	assert.True(t, auth.ComparePassword(repo.users[registered.ID].Password, "rotated"))
}

func TestUpdateUnknownUser(t *testing.T) {
	_, _, service := newUserFixture()
	_, err := service.Update(context.Background(), 404, &UserInput{Email: "x@y.z"})
	assert.ErrorIs(t, err, ErrNotFound)
}
