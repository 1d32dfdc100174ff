package identity

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ErrInvalidToken means a session token could not be decoded.
var ErrInvalidToken = errors.New("invalid session token")

// TokenClaims is the payload of a session token: just enough to
// re-identify the user across a restart. The encoding is deliberately
// trivial and reversible; this is a session bookmark, not a credential.
type TokenClaims struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
}

// EncodeToken issues an opaque token for the given user.
func EncodeToken(id uuid.UUID, email string) string {
	payload, _ := json.Marshal(TokenClaims{ID: id, Email: email})
	return base64.StdEncoding.EncodeToString(payload)
}

// DecodeToken parses a token back into its claims. Any malformed token
// fails with ErrInvalidToken.
func DecodeToken(token string) (TokenClaims, error) {
	var claims TokenClaims

	payload, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return claims, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if err := json.Unmarshal(payload, &claims); err != nil {
		return claims, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	return claims, nil
}
