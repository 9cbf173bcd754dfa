package backendtest

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// The stub signs real HS256 tokens so login responses look like the
// production backend's. The client treats them as opaque strings either way.
const signingSecret = "backendtest-secret"

type loginClaims struct {
	Role    string `json:"role"`
	ActorID int    `json:"actor_id"`
	TokenID string `json:"token_id"`
	jwt.RegisteredClaims
}

func mintToken(role string, actorID int) string {
	claims := loginClaims{
		Role:    role,
		ActorID: actorID,
		TokenID: uuid.NewString(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(signingSecret))
	if err != nil {
		return ""
	}
	return signed
}
