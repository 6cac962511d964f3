package utils // package utils provides helpers for session token creation and hashing

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionToken is the signed HS256 JWT handed to the browser in the
// `session` cookie. The Token field contains the serialized JWT; Exp is
// its UTC expiration. Only a SHA-256 hash of the token is persisted, so a
// leaked sessions table cannot be replayed against the API.
type SessionToken struct {
	Token string
	Exp   time.Time
}

// ErrInvalidSession is returned by ParseSessionToken for any token that is
// missing, malformed, expired or signed with the wrong key.
var ErrInvalidSession = errors.New("invalid session token")

// NewSessionToken builds and signs a session JWT for a user. Claims are the
// standard subject (sub), expiration (exp) and issued at (iat).
func NewSessionToken(secret string, userID int64, ttlHours int) (SessionToken, error) {
	exp := time.Now().UTC().Add(time.Duration(ttlHours) * time.Hour)
	claims := jwt.MapClaims{
		"sub": userID,
		"exp": exp.Unix(),
		"iat": time.Now().UTC().Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString([]byte(secret))
	if err != nil {
		return SessionToken{}, err
	}
	return SessionToken{Token: signed, Exp: exp}, nil
}

// ParseSessionToken validates a session JWT and returns the user id from
// its subject claim.
func ParseSessionToken(secret, raw string) (int64, error) {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidSession
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		return 0, ErrInvalidSession
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return 0, ErrInvalidSession
	}
	// JWT numeric claims decode as float64.
	sub, ok := claims["sub"].(float64)
	if !ok {
		return 0, ErrInvalidSession
	}
	return int64(sub), nil
}

// HashSessionRaw returns the SHA-256 hash of the raw session token as a hex
// string. This is the value stored in and looked up from the sessions table.
func HashSessionRaw(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}
