package service

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"planora/internal/apperr"
	"planora/internal/model"
	"planora/internal/repository"
	"planora/internal/session"
	"planora/pkg/generic"
	"planora/pkg/timer"
	"planora/pkg/util"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// AuthService handles signup, login and logout.
type AuthService struct {
	users      repository.IUserRepository
	sessions   session.Store
	bcryptCost int
}

func NewAuthService(users repository.IUserRepository, sessions session.Store, bcryptCost int) *AuthService {
	return &AuthService{users: users, sessions: sessions, bcryptCost: bcryptCost}
}

// Signup creates a new account with defaults and a hashed password.
func (s *AuthService) Signup(ctx context.Context, req model.SignupRequest) (*model.User, error) {
	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))

	if req.Username == "" || req.Email == "" || req.Password == "" {
		return nil, apperr.Validation("Username, email, and password are required.")
	}
	if !emailRegex.MatchString(req.Email) {
		return nil, apperr.Validation("Invalid email format")
	}

	if _, err := s.users.FindByUsername(ctx, req.Username); err == nil {
		return nil, apperr.Validation("Username already taken")
	} else if !errors.Is(err, generic.ErrNotFound) {
		return nil, apperr.Dependency("Server error", err)
	}
	if _, err := s.users.FindByEmail(ctx, req.Email); err == nil {
		return nil, apperr.Validation("Email already registered")
	} else if !errors.Is(err, generic.ErrNotFound) {
		return nil, apperr.Dependency("Server error", err)
	}

	hash, err := util.HashPassword(req.Password, s.bcryptCost)
	if err != nil {
		return nil, apperr.Dependency("Server error", err)
	}

	user := &model.User{
		Username:       req.Username,
		Email:          req.Email,
		PasswordHash:   hash,
		DisplayPicture: model.DefaultDisplayPicture,
		Bio:            model.DefaultBio,
	}
	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, apperr.Dependency("Server error, could not create user.", err)
	}
	return created, nil
}

// Login verifies credentials and mints a session token with the minimal
// profile snapshot the gates hand to handlers.
func (s *AuthService) Login(ctx context.Context, req model.LoginRequest) (string, model.SessionUser, error) {
	defer timer.Track("auth.login")()

	var snapshot model.SessionUser

	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	if req.Email == "" || req.Password == "" {
		return "", snapshot, apperr.Validation("Email and password are required.")
	}

	user, err := s.users.FindByEmail(ctx, req.Email)
	if errors.Is(err, generic.ErrNotFound) {
		return "", snapshot, apperr.Unauthenticated("Invalid email or password")
	}
	if err != nil {
		return "", snapshot, apperr.Dependency("Server error", err)
	}

	if !util.VerifyPassword(req.Password, user.PasswordHash) {
		return "", snapshot, apperr.Unauthenticated("Invalid email or password")
	}

	token, err := s.sessions.Create(ctx, session.Record{
		UserID:   user.ID.Hex(),
		Username: user.Username,
		Email:    user.Email,
	})
	if err != nil {
		return "", snapshot, apperr.Dependency("Could not create session", err)
	}

	snapshot = model.SessionUser{ID: user.ID.Hex(), Username: user.Username, Email: user.Email}
	return token, snapshot, nil
}

// Logout invalidates the session token.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if err := s.sessions.Delete(ctx, token); err != nil {
		return apperr.Dependency("Could not log out", err)
	}
	return nil
}
