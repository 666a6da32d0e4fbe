package types

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenClaims are the claims carried by a device session token.
type TokenClaims struct {
	DeviceID uuid.UUID `json:"device_id"`
	Label    string    `json:"label"`
	jwt.RegisteredClaims
}
