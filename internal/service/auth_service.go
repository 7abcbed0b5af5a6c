package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"safarisalama/internal/auth"
	apperrors "safarisalama/internal/errors"
	"safarisalama/internal/model"
	"safarisalama/internal/repository"
)

const bcryptCost = 10

// AuthService handles guardian registration and login. Every account created
// here gets the guardian role; the admin role is only ever set out-of-band.
type AuthService interface {
	Register(ctx context.Context, name, email, password, phone, address string) (string, *model.Guardian, error)
	Login(ctx context.Context, email, password string) (string, *model.Guardian, error)
}

type authService struct {
	guardians  repository.GuardianRepository
	jwtService *auth.JWTService
}

// NewAuthService creates a new authentication service.
func NewAuthService(guardians repository.GuardianRepository, jwtService *auth.JWTService) AuthService {
	return &authService{
		guardians:  guardians,
		jwtService: jwtService,
	}
}

// Register creates a new guardian with a bcrypt-hashed password and issues a
// token. The FindByEmail pre-check is only a fast path: a concurrent
// registration with the same email can slip past it, so a duplicate-key error
// from the insert is reported exactly like the pre-check hit.
func (s *authService) Register(ctx context.Context, name, email, password, phone, address string) (string, *model.Guardian, error) {
	existing, err := s.guardians.FindByEmail(ctx, email)
	if err == nil && existing != nil {
		return "", nil, apperrors.ErrDuplicateAccount
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil, fmt.Errorf("check account existence: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", nil, fmt.Errorf("hash password: %w", err)
	}

	guardian := &model.Guardian{
		Name:         name,
		Email:        email,
		PasswordHash: string(hashedPassword),
		PhoneNumber:  phone,
		Address:      address,
		Role:         model.RoleGuardian,
	}

	if err := s.guardians.Create(ctx, guardian); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return "", nil, apperrors.ErrDuplicateAccount
		}
		return "", nil, fmt.Errorf("create guardian: %w", err)
	}

	token, err := s.jwtService.Generate(guardian.ID, guardian.Email, guardian.Name, guardian.Role)
	if err != nil {
		return "", nil, fmt.Errorf("generate token: %w", err)
	}

	return token, guardian, nil
}

// Login authenticates a guardian and issues a fresh token. A missing account
// and a wrong password return the same error so neither case leaks.
func (s *authService) Login(ctx context.Context, email, password string) (string, *model.Guardian, error) {
	guardian, err := s.guardians.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, apperrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(guardian.PasswordHash), []byte(password)); err != nil {
		return "", nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.jwtService.Generate(guardian.ID, guardian.Email, guardian.Name, guardian.Role)
	if err != nil {
		return "", nil, fmt.Errorf("generate token: %w", err)
	}

	return token, guardian, nil
}
