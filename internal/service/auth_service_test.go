package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"safarisalama/internal/auth"
	apperrors "safarisalama/internal/errors"
	"safarisalama/internal/model"
)

func TestAuthService_Register(t *testing.T) {
	tests := []struct {
		name          string
		email         string
		password      string
		setupMock     func(*MockGuardianRepository)
		expectedError error
	}{
		{
			name:     "successful registration",
			email:    "fresh@example.com",
			password: "password123",
			setupMock: func(m *MockGuardianRepository) {
				m.On("FindByEmail", mock.Anything, "fresh@example.com").Return(nil, gorm.ErrRecordNotFound)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.Guardian")).Run(func(args mock.Arguments) {
					args.Get(1).(*model.Guardian).ID = 7
				}).Return(nil)
			},
			expectedError: nil,
		},
		{
			name:     "mixed case email is a distinct account",
			email:    "Fresh@Example.com",
			password: "password123",
			setupMock: func(m *MockGuardianRepository) {
				// Exact-match policy: the lookup runs with the bytes as sent.
				m.On("FindByEmail", mock.Anything, "Fresh@Example.com").Return(nil, gorm.ErrRecordNotFound)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.Guardian")).Run(func(args mock.Arguments) {
					args.Get(1).(*model.Guardian).ID = 8
				}).Return(nil)
			},
			expectedError: nil,
		},
		{
			name:     "duplicate email caught by pre-check",
			email:    "taken@example.com",
			password: "password123",
			setupMock: func(m *MockGuardianRepository) {
				m.On("FindByEmail", mock.Anything, "taken@example.com").Return(&model.Guardian{Email: "taken@example.com"}, nil)
			},
			expectedError: apperrors.ErrDuplicateAccount,
		},
		{
			name:     "duplicate email caught at insert",
			email:    "raced@example.com",
			password: "password123",
			setupMock: func(m *MockGuardianRepository) {
				// A concurrent registration won the race after the pre-check;
				// the unique index turns the insert into the same failure.
				m.On("FindByEmail", mock.Anything, "raced@example.com").Return(nil, gorm.ErrRecordNotFound)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.Guardian")).Return(gorm.ErrDuplicatedKey)
			},
			expectedError: apperrors.ErrDuplicateAccount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockGuardianRepository)
			tt.setupMock(mockRepo)

			jwtService := auth.NewJWTService("test-secret", 7)
			service := NewAuthService(mockRepo, jwtService)

			token, guardian, err := service.Register(context.Background(), "Test User", tt.email, tt.password, "+254700000000", "1 Test St")

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Empty(t, token)
				assert.Nil(t, guardian)
			} else {
				require.NoError(t, err)
				require.NotNil(t, guardian)
				assert.Equal(t, tt.email, guardian.Email)
				assert.Equal(t, model.RoleGuardian, guardian.Role)

				// The stored secret is never the raw password.
				assert.NotEqual(t, tt.password, guardian.PasswordHash)
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(guardian.PasswordHash), []byte(tt.password)))

				claims, err := jwtService.Validate(token)
				require.NoError(t, err)
				assert.Equal(t, guardian.ID, claims.ID)
				assert.Equal(t, tt.email, claims.Email)
				assert.Equal(t, model.RoleGuardian, claims.Role)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte("password123"), 10)
	require.NoError(t, err)

	stored := &model.Guardian{
		ID:           3,
		Name:         "Alice",
		Email:        "alice@example.com",
		PasswordHash: string(hashedPassword),
		Role:         model.RoleGuardian,
	}

	tests := []struct {
		name          string
		email         string
		password      string
		setupMock     func(*MockGuardianRepository)
		expectedError error
	}{
		{
			name:     "successful login",
			email:    "alice@example.com",
			password: "password123",
			setupMock: func(m *MockGuardianRepository) {
				m.On("FindByEmail", mock.Anything, "alice@example.com").Return(stored, nil)
			},
			expectedError: nil,
		},
		{
			name:     "unknown email",
			email:    "nobody@example.com",
			password: "password123",
			setupMock: func(m *MockGuardianRepository) {
				m.On("FindByEmail", mock.Anything, "nobody@example.com").Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrInvalidCredentials,
		},
		{
			name:     "wrong password",
			email:    "alice@example.com",
			password: "wrong",
			setupMock: func(m *MockGuardianRepository) {
				m.On("FindByEmail", mock.Anything, "alice@example.com").Return(stored, nil)
			},
			expectedError: apperrors.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockGuardianRepository)
			tt.setupMock(mockRepo)

			jwtService := auth.NewJWTService("test-secret", 7)
			service := NewAuthService(mockRepo, jwtService)

			token, guardian, err := service.Login(context.Background(), tt.email, tt.password)

			if tt.expectedError != nil {
				// Unknown email and wrong password surface as the exact same
				// error value; nothing distinguishes the two.
				assert.Equal(t, tt.expectedError, err)
				assert.Empty(t, token)
				assert.Nil(t, guardian)
			} else {
				require.NoError(t, err)
				require.NotNil(t, guardian)
				assert.Equal(t, tt.email, guardian.Email)

				claims, err := jwtService.Validate(token)
				require.NoError(t, err)
				assert.Equal(t, stored.ID, claims.ID)
				assert.Equal(t, stored.Email, claims.Email)
				assert.Equal(t, stored.Role, claims.Role)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestAuthService_RegisterThenLogin(t *testing.T) {
	mockRepo := new(MockGuardianRepository)
	mockRepo.On("FindByEmail", mock.Anything, "alice@x.com").Return(nil, gorm.ErrRecordNotFound).Once()
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Guardian")).Run(func(args mock.Arguments) {
		args.Get(1).(*model.Guardian).ID = 1
	}).Return(nil)

	jwtService := auth.NewJWTService("test-secret", 7)
	service := NewAuthService(mockRepo, jwtService)

	token1, guardian, err := service.Register(context.Background(), "Alice", "alice@x.com", "pw123456", "+254700000000", "1 Test St")
	require.NoError(t, err)

	mockRepo.On("FindByEmail", mock.Anything, "alice@x.com").Return(guardian, nil)

	token2, _, err := service.Login(context.Background(), "alice@x.com", "pw123456")
	require.NoError(t, err)

	claims1, err := jwtService.Validate(token1)
	require.NoError(t, err)
	claims2, err := jwtService.Validate(token2)
	require.NoError(t, err)

	assert.Equal(t, claims1.ID, claims2.ID)
	assert.Equal(t, claims1.Email, claims2.Email)
	assert.Equal(t, claims1.Role, claims2.Role)

	_, _, err = service.Login(context.Background(), "alice@x.com", "wrong")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	mockRepo.AssertExpectations(t)
}
