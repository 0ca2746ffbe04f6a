// filepath: internal/services/auth/interfaces.go
package auth

import "time"

// TokenService defines the contract for JWT operations.
type TokenService interface {
	IssueToken(subject string, ttl time.Duration) (string, error)
	ValidateToken(tokenString string) (subject string, err error)
}
