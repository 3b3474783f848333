package usecase

import (
	"context"
	"fmt"

	"flight-booking/internal/data/entity"
	"flight-booking/internal/data/repository"
	"flight-booking/internal/dto/request"
	"flight-booking/internal/events"
	"flight-booking/pkg/utils"

	"go.uber.org/zap"
)

type AuthService interface {
	Signup(ctx context.Context, req *request.SignupRequest) (*entity.AuthenticatedUser, error)
	Login(ctx context.Context, req *request.LoginRequest) (*entity.AuthenticatedUser, error)
}

type authService struct {
	users     repository.UserRepository
	hasher    *utils.PasswordHasher
	publisher events.Publisher
	log       *zap.Logger
}

func NewAuthService(
	users repository.UserRepository,
	hasher *utils.PasswordHasher,
	publisher events.Publisher,
	log *zap.Logger,
) AuthService {
	return &authService{
		users:     users,
		hasher:    hasher,
		publisher: publisher,
		log:       log.With(zap.String("service", "auth")),
	}
}

func (s *authService) Signup(ctx context.Context, req *request.SignupRequest) (*entity.AuthenticatedUser, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, validationFailed(s.log, "Signup", errs)
	}

	// Reject duplicates before any write
	existing, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		s.log.Warn("Signup rejected, email taken", zap.String("email", req.Email))
		return nil, fmt.Errorf("email %s: %w", req.Email, utils.ErrConflict)
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &entity.RegisteredUser{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		PasswordHash: hash,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	profile := user.Public()
	publish(ctx, s.publisher, s.log, user.Email, events.UserRegistered, profile)

	s.log.Info("User registered",
		zap.Int64("user_id", user.ID),
		zap.String("email", user.Email),
	)

	return &profile, nil
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*entity.AuthenticatedUser, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, validationFailed(s.log, "Login", errs)
	}

	user, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("user %s: %w", req.Email, utils.ErrNotFound)
	}

	if !user.Complete() {
		s.log.Error("Stored user profile incomplete", zap.Int64("user_id", user.ID))
		return nil, fmt.Errorf("user %d profile incomplete: %w", user.ID, utils.ErrIntegrity)
	}

	ok, err := s.hasher.Compare(user.PasswordHash, req.Password)
	if err != nil {
		s.log.Error("Failed to verify password", zap.Error(err), zap.Int64("user_id", user.ID))
		return nil, fmt.Errorf("verify password for user %d: %w", user.ID, err)
	}
	if !ok {
		s.log.Warn("Login failed, wrong password", zap.String("email", req.Email))
		return nil, fmt.Errorf("login %s: %w", req.Email, utils.ErrInvalidCredentials)
	}

	s.log.Info("User logged in", zap.Int64("user_id", user.ID))

	profile := user.Public()
	return &profile, nil
}
