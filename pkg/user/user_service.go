package user

import (
	"context"
	"errors"
	"fmt"

	"Recipe-Share-Backend/domain"
	"Recipe-Share-Backend/entities"
	"Recipe-Share-Backend/internal/utils/mailing"
	"Recipe-Share-Backend/pkg/jwt"

	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type (
	UserService interface {
		Register(ctx context.Context, req domain.RegisterRequest) (domain.AuthResponse, error)
		Login(ctx context.Context, req domain.LoginRequest) (domain.AuthResponse, error)
		Me(ctx context.Context, userID uuid.UUID) (domain.UserResponse, error)
	}

	userService struct {
		userRepository UserRepository
		jwtService     jwt.JWTService
	}
)

func NewUserService(userRepository UserRepository, jwtService jwt.JWTService) UserService {
	return &userService{
		userRepository: userRepository,
		jwtService:     jwtService,
	}
}

func (s *userService) Register(ctx context.Context, req domain.RegisterRequest) (domain.AuthResponse, error) {
	_, err := s.userRepository.GetByEmail(ctx, req.Email)
	if err == nil {
		return domain.AuthResponse{}, domain.ErrEmailAlreadyRegistered
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.AuthResponse{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.AuthResponse{}, err
	}

	newUser := &entities.User{
		ID:           uuid.New(),
		Email:        req.Email,
		PasswordHash: string(hash),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
	}
	if err := s.userRepository.Create(ctx, newUser); err != nil {
		return domain.AuthResponse{}, err
	}

	// Best effort, registration must not fail on mail trouble.
	go func(email, name string) {
		body := fmt.Sprintf("<p>Hi %s, welcome! Start sharing your recipes today.</p>", name)
		if err := mailing.SendMail(email, "Welcome to Recipe Share", body); err != nil {
			log.Errorf("failed sending welcome mail to %s: %v", email, err)
		}
	}(newUser.Email, newUser.FirstName)

	return s.authResponse(newUser)
}

func (s *userService) Login(ctx context.Context, req domain.LoginRequest) (domain.AuthResponse, error) {
	// Unknown email and wrong password produce the same error so the
	// response does not reveal which one was off.
	existing, err := s.userRepository.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.AuthResponse{}, domain.ErrInvalidCredentials
		}
		return domain.AuthResponse{}, err
	}

	if bcrypt.CompareHashAndPassword([]byte(existing.PasswordHash), []byte(req.Password)) != nil {
		return domain.AuthResponse{}, domain.ErrInvalidCredentials
	}

	return s.authResponse(existing)
}

func (s *userService) Me(ctx context.Context, userID uuid.UUID) (domain.UserResponse, error) {
	existing, err := s.userRepository.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UserResponse{}, domain.ErrUserNotFound
		}
		return domain.UserResponse{}, err
	}

	return domain.UserResponse{
		ID:        existing.ID.String(),
		Email:     existing.Email,
		FirstName: existing.FirstName,
		LastName:  existing.LastName,
		CreatedAt: existing.CreatedAt,
	}, nil
}

func (s *userService) authResponse(u *entities.User) (domain.AuthResponse, error) {
	token, expiresAt, err := s.jwtService.GenerateToken(u)
	if err != nil {
		return domain.AuthResponse{}, err
	}
	return domain.AuthResponse{
		Token:     token,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		ExpiresAt: expiresAt,
	}, nil
}
