package auth

import (
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/shashiranjanraj/vanik/config"
)

// ActivationTTL is how long an activation link stays valid.
const ActivationTTL = 72 * time.Hour

// ErrInvalidToken is returned for any activation token that fails
// verification: bad signature, expired, or issued for a different
// account state.
var ErrInvalidToken = errors.New("auth: invalid activation token")

// ActivationClaims is the payload of an activation token. State is the
// fingerprint of the account at issue time, so the token dies as soon as
// the account is activated or its credentials change.
type ActivationClaims struct {
	UserID uint   `json:"user_id"`
	State  string `json:"state"`
	jwt.RegisteredClaims
}

func secret() []byte {
	return []byte(config.AppKey())
}

// Fingerprint hashes the identifying parts of an account into a short
// stable string. Callers pass the fields whose change should invalidate
// outstanding links (email, password hash, active flag).
func Fingerprint(parts ...string) string {
	sum := sha256.Sum256([]byte(strings.Join(parts, "|")))
	return hex.EncodeToString(sum[:])
}

// ActivationToken signs a single-use account activation token for userID.
func ActivationToken(userID uint, state string) (string, error) {
	claims := ActivationClaims{
		UserID: userID,
		State:  state,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ActivationTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret())
}

// CheckActivationToken verifies signature and expiry, and that the token
// was issued for userID while the account was in the given state.
func CheckActivationToken(token string, userID uint, state string) error {
	parsed, err := jwt.ParseWithClaims(token, &ActivationClaims{}, func(tok *jwt.Token) (interface{}, error) {
		if _, ok := tok.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", tok.Header["alg"])
		}
		return secret(), nil
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := parsed.Claims.(*ActivationClaims)
	if !ok || !parsed.Valid {
		return ErrInvalidToken
	}
	if claims.UserID != userID || claims.State != state {
		return ErrInvalidToken
	}

	return nil
}

// EncodeUID encodes a user ID for use as a URL path segment, as unpadded
// urlsafe base64 over the decimal form.
func EncodeUID(id uint) string {
	return base64.RawURLEncoding.EncodeToString([]byte(strconv.FormatUint(uint64(id), 10)))
}

// DecodeUID reverses EncodeUID. Padded input is tolerated.
func DecodeUID(s string) (uint, error) {
	raw, err := base64.RawURLEncoding.DecodeString(strings.TrimRight(s, "="))
	if err != nil {
		return 0, fmt.Errorf("auth: decode uid: %w", err)
	}
	id, err := strconv.ParseUint(string(raw), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("auth: decode uid: %w", err)
	}
	return uint(id), nil
}
