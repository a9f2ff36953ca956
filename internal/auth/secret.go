package auth

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"restaurant-foh-api-server/internal/models"
)

const secretCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// SecretIDLength is the length of a staff login secret.
const SecretIDLength = 8

// NewSecretID generates a staff login secret: 8 characters drawn
// uniformly from [A-Z0-9]. Shown to the manager exactly once.
func NewSecretID() (string, error) {
	b := make([]byte, SecretIDLength)
	max := big.NewInt(int64(len(secretCharset)))
	for i := range b {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("failed to draw secret character: %w", err)
		}
		b[i] = secretCharset[n.Int64()]
	}
	return string(b), nil
}

// NewStaffID builds a role-prefixed staff identifier, e.g.
// "WAITER-1756712345678".
func NewStaffID(role models.Role) string {
	return fmt.Sprintf("%s-%d", role, time.Now().UnixMilli())
}
