package security

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
)

// CSRFHeader carries the token on state-changing guest requests
const CSRFHeader = "X-CSRF-Token"

// csrfContext separates CSRF MACs from any other use of the same secret
const csrfContext = "rsvp-csrf:"

// CSRFGenerator derives CSRF tokens from the guest session ID with HMAC-SHA256.
// No server state is kept, so any replica can validate a token.
type CSRFGenerator struct {
	secret []byte
}

// NewCSRFGenerator creates a generator keyed by secret
func NewCSRFGenerator(secret string) *CSRFGenerator {
	return &CSRFGenerator{secret: []byte(secret)}
}

// GenerateToken returns the token bound to sessionID
func (g *CSRFGenerator) GenerateToken(sessionID string) (string, error) {
	if sessionID == "" {
		return "", errors.New("session ID is required")
	}
	mac := hmac.New(sha256.New, g.secret)
	mac.Write([]byte(csrfContext))
	mac.Write([]byte(sessionID))
	return hex.EncodeToString(mac.Sum(nil)), nil
}

// ValidateToken reports whether token belongs to sessionID
func (g *CSRFGenerator) ValidateToken(sessionID, token string) bool {
	if sessionID == "" || token == "" {
		return false
	}
	expected, err := g.GenerateToken(sessionID)
	if err != nil {
		return false
	}
	return hmac.Equal([]byte(expected), []byte(token))
}
