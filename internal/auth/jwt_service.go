package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrTokenExpired is returned when the token's absolute expiry has passed.
	ErrTokenExpired = errors.New("token expired")
	// ErrInvalidSignature is returned when the signature does not verify.
	ErrInvalidSignature = errors.New("invalid token signature")
	// ErrTokenMalformed is returned when the token cannot be parsed.
	ErrTokenMalformed = errors.New("malformed token")
)

// Claims represents the identity facts embedded in an issued token: account
// id, email, display name and role. A token is a detached capability: it stays
// valid until expiry even if the account row changes afterwards.
type Claims struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// JWTService issues and validates bearer tokens. The signing secret and expiry
// are fixed at construction so tests can run with known values, and the clock
// is injectable for expiry tests.
type JWTService struct {
	secret []byte
	expiry time.Duration
	now    func() time.Time
}

// NewJWTService creates a JWT service signing with the given secret and
// issuing tokens valid for expiryDays days.
func NewJWTService(secret string, expiryDays int) *JWTService {
	return &JWTService{
		secret: []byte(secret),
		expiry: time.Duration(expiryDays) * 24 * time.Hour,
		now:    time.Now,
	}
}

// Generate issues a signed token for the account. Expiry is encoded as an
// absolute timestamp computed at issuance.
func (s *JWTService) Generate(id uint, email, name, role string) (string, error) {
	now := s.now()
	claims := &Claims{
		ID:    id,
		Email: email,
		Name:  name,
		Role:  role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS512, claims)
	return token.SignedString(s.secret)
}

// Validate checks the signature and expiry of a token and returns its claims.
// No database lookup happens here; the token is trusted on signature validity
// alone, and there is no revocation short of rotating the signing secret.
func (s *JWTService) Validate(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))

	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, ErrInvalidSignature
		default:
			return nil, ErrTokenMalformed
		}
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrTokenMalformed
	}

	return claims, nil
}
