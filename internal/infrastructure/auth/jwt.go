package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/garagehq/shopapi/internal/shared/authorization"
)

// ErrInvalidToken is returned by Verify for every rejected token.
var ErrInvalidToken = errors.New("invalid or expired token")

// Claims carries the subject id as a decimal string in sub.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// JWTService issues and verifies HS256 bearer tokens. There is no
// revocation: a token stays valid until exp.
type JWTService struct {
	secret     []byte
	defaultTTL time.Duration
	now        func() time.Time
}

func NewJWTService(secret string, defaultTTL time.Duration) *JWTService {
	if defaultTTL <= 0 {
		defaultTTL = time.Hour
	}
	return &JWTService{
		secret:     []byte(secret),
		defaultTTL: defaultTTL,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// DefaultTTL is the lifetime used when Issue is called with ttl <= 0.
func (s *JWTService) DefaultTTL() time.Duration {
	return s.defaultTTL
}

// Issue signs a token for subjectID with role, expiring after ttl.
func (s *JWTService) Issue(subjectID uint, role authorization.UserRole, ttl time.Duration) (string, error) {
	if subjectID == 0 {
		return "", fmt.Errorf("subject id is required")
	}
	if ttl <= 0 {
		ttl = s.defaultTTL
	}

	now := s.now()
	claims := &Claims{
		Role: role.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(subjectID), 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return token, nil
}

// Verify returns the identity carried by tokenString. Malformed input, a
// bad signature, an algorithm other than HS256, a missing or past exp and
// a non-numeric sub all yield ErrInvalidToken.
func (s *JWTService) Verify(tokenString string) (*authorization.Identity, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims,
		func(token *jwt.Token) (interface{}, error) {
			return s.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, ErrInvalidToken
	}

	subjectID, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil || subjectID == 0 {
		return nil, ErrInvalidToken
	}

	return &authorization.Identity{
		UserID: uint(subjectID),
		Role:   authorization.ParseUserRole(claims.Role),
	}, nil
}
