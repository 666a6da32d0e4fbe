package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/PiovisDevelopment/calorie-flow/backend/internal/models"
	"github.com/PiovisDevelopment/calorie-flow/backend/internal/types"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token has expired")
)

// SessionService issues and validates device session tokens. The backend
// tracks a single profile, so a session identifies a device, not a user
// account.
type SessionService struct {
	db        *gorm.DB
	jwtSecret string
	tokenTTL  time.Duration
}

var _ ISessionService = (*SessionService)(nil)

// NewSessionService creates a new SessionService instance.
func NewSessionService(db *gorm.DB, jwtSecret string, tokenTTL time.Duration) *SessionService {
	return &SessionService{
		db:        db,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
	}
}

// IssueToken registers a device and returns a signed session token for it.
func (s *SessionService) IssueToken(ctx context.Context, label string) (string, string, error) {
	device := models.Device{
		ID:         uuid.New(),
		Label:      label,
		LastSeenAt: time.Now(),
	}
	if err := s.db.WithContext(ctx).Create(&device).Error; err != nil {
		return "", "", fmt.Errorf("failed to register device: %w", err)
	}

	now := time.Now()
	claims := types.TokenClaims{
		DeviceID: device.ID,
		Label:    device.Label,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return "", "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return signed, device.ID.String(), nil
}

// ValidateToken parses and verifies a session token.
func (s *SessionService) ValidateToken(tokenString string) (*types.TokenClaims, error) {
	var claims types.TokenClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrInvalidToken
	}
	if !token.Valid || claims.DeviceID == uuid.Nil {
		return nil, ErrInvalidToken
	}
	return &claims, nil
}
