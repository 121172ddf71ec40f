package services

import (
	"context"
	"strings"
	"time"

	"streamhub-backend/internal/auth"
	"streamhub-backend/internal/models"
	"streamhub-backend/internal/repository"

	"github.com/sirupsen/logrus"
)

// UserInput is the signup/update payload. DateBorn and LastSession arrive as
// RFC 3339 or YYYY-MM-DD strings and are coerced to dates.
type UserInput struct {
	Name        string
	Email       string
	PhoneNumber string
	Password    string
	DateBorn    string
	Role        string
}

type UserService interface {
	Register(ctx context.Context, input *UserInput) (*models.User, error)
	Update(ctx context.Context, id uint, input *UserInput) (*models.User, error)
	Login(ctx context.Context, email, password, role string) (*models.User, string, error)
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetAll(ctx context.Context) ([]models.User, error)
}

type userService struct {
	repo   repository.UserRepository
	tokens *auth.TokenManager
	logger *logrus.Logger
	now    func() time.Time
}

func NewUserService(repo repository.UserRepository, tokens *auth.TokenManager, logger *logrus.Logger) UserService {
	return &userService{
		repo:   repo,
		tokens: tokens,
		logger: logger,
		now:    time.Now,
	}
}

func (s *userService) Register(ctx context.Context, input *UserInput) (*models.User, error) {
	if strings.TrimSpace(input.Email) == "" || input.Password == "" {
		return nil, ValidationError("email and password are required")
	}

	hashed, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	role := input.Role
	if role != models.RoleAdmin {
		role = models.RoleUser
	}

	user := &models.User{
		Name:        input.Name,
		Email:       input.Email,
		PhoneNumber: input.PhoneNumber,
		Password:    hashed,
		Role:        role,
		DateBorn:    parseDate(input.DateBorn),
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) Update(ctx context.Context, id uint, input *UserInput) (*models.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}

	user.Name = input.Name
	user.Email = input.Email
	user.PhoneNumber = input.PhoneNumber
	user.DateBorn = parseDate(input.DateBorn)
	if input.Role == models.RoleAdmin || input.Role == models.RoleUser {
		user.Role = input.Role
	}
	if input.Password != "" {
		hashed, err := auth.HashPassword(input.Password)
		if err != nil {
			return nil, err
		}
		user.Password = hashed
	}

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login authenticates a user by (email, role) pair. A missing pair and a bad
// password are distinct failures; last_session is only touched on success.
func (s *userService) Login(ctx context.Context, email, password, role string) (*models.User, string, error) {
	user, err := s.repo.FindByEmailAndRole(ctx, email, role)
	if err != nil {
		return nil, "", err
	}
	if user == nil {
		return nil, "", ErrUserNotFound
	}

	if !auth.ComparePassword(user.Password, password) {
		return nil, "", ErrIncorrectPassword
	}

	token, err := s.tokens.Generate(user.ID)
	if err != nil {
		return nil, "", err
	}

	loggedAt := s.now()
	if err := s.repo.UpdateLastSession(ctx, user.ID, loggedAt); err != nil {
		s.logger.WithError(err).WithField("user_id", user.ID).Warn("Failed to update last session")
	} else {
		user.LastSession = &loggedAt
	}

	return user, token, nil
}

func (s *userService) GetByID(ctx context.Context, id uint) (*models.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}
	return user, nil
}

func (s *userService) GetAll(ctx context.Context) ([]models.User, error) {
	return s.repo.FindAll(ctx)
}

func parseDate(value string) *time.Time {
	if value == "" {
		return nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, value); err == nil {
			return &t
		}
	}
	return nil
}
