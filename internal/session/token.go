package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

// tokenParser decodes claims without verifying the signature. The client
// is not responsible for validating the token, only for reading its
// expiry claim; the server's 401 is the authoritative verdict.
var tokenParser = jwt.NewParser()

// RemainingMinutes reports how many whole minutes the token's exp claim
// has left, clamped at zero. A malformed token (wrong segment count,
// non-JSON payload, missing or non-numeric exp) is reported as expired
// and logged; decoding failure never propagates to the caller.
func (m *Manager) RemainingMinutes(token string) int {
	return m.remainingMinutesAt(token, time.Now())
}

func (m *Manager) remainingMinutesAt(token string, now time.Time) int {
	if token == "" {
		m.logger.Warn("remaining-time check on empty token")
		return 0
	}

	parsed, _, err := tokenParser.ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		m.logger.Warn("token decode failed, treating as expired", zap.Error(err))
		return 0
	}

	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		m.logger.Warn("token has no usable exp claim, treating as expired", zap.Error(err))
		return 0
	}

	remaining := exp.Unix() - now.Unix()
	if remaining <= 0 {
		return 0
	}
	return int(remaining / 60)
}

// IsExpired reports whether the token's locally readable expiry has
// passed (or could not be read).
func (m *Manager) IsExpired(token string) bool {
	return m.RemainingMinutes(token) <= 0
}
