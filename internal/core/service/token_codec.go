package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/99minutos/asset-management/internal/core/domain"
)

// DefaultTokenTTL is used when TokenConfig.TTL is not set.
const DefaultTokenTTL = 10 * time.Hour

// TokenConfig holds the process-wide signing parameters. It is built once at
// startup and never mutated; changing Secret invalidates every token issued
// under the previous one.
type TokenConfig struct {
	Secret []byte
	TTL    time.Duration
	Issuer string
}

// Claims is the token payload. The subject is the account email.
type Claims struct {
	Email  string   `json:"email"`
	UserID int64    `json:"userId"`
	Roles  []string `json:"roles"`
	jwt.RegisteredClaims
}

// TokenCodec issues and decodes HS256 tokens.
type TokenCodec struct {
	cfg TokenConfig
	now func() time.Time
}

func NewTokenCodec(cfg TokenConfig) (*TokenCodec, error) {
	if len(cfg.Secret) == 0 {
		return nil, errors.New("token codec: empty signing secret")
	}
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultTokenTTL
	}
	secret := make([]byte, len(cfg.Secret))
	copy(secret, cfg.Secret)
	cfg.Secret = secret
	return &TokenCodec{cfg: cfg, now: time.Now}, nil
}

// TTL reports the configured token lifetime.
func (c *TokenCodec) TTL() time.Duration { return c.cfg.TTL }

// Issue signs a token for subject valid from now until now+TTL. The exp claim
// has whole-second precision, so a fractional expiry is rounded up to the next
// second and the token never lapses before now+TTL.
func (c *TokenCodec) Issue(subject string, userID int64, roles domain.RoleSet, now time.Time) (string, time.Time, error) {
	exp := now.Add(c.cfg.TTL)
	if exp.Nanosecond() != 0 {
		exp = exp.Truncate(time.Second).Add(time.Second)
	}
	claims := Claims{
		Email:  subject,
		UserID: userID,
		Roles:  roles.Names(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			Issuer:    c.cfg.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.cfg.Secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return signed, claims.ExpiresAt.Time, nil
}

// Decode validates token against the codec clock.
func (c *TokenCodec) Decode(token string) (*domain.Identity, error) {
	return c.DecodeAt(token, c.now())
}

// DecodeAt validates token as if the current time were now. The returned
// error is one of domain.ErrTokenMalformed, domain.ErrTokenBadSignature or
// domain.ErrTokenExpired.
func (c *TokenCodec) DecodeAt(token string, now time.Time) (*domain.Identity, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims,
		func(*jwt.Token) (any, error) { return c.cfg.Secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(func() time.Time { return now }),
	)
	if err != nil {
		return nil, classifyTokenError(err)
	}
	if !parsed.Valid || claims.Subject == "" {
		return nil, domain.ErrTokenMalformed
	}

	id := &domain.Identity{
		Subject:   claims.Subject,
		UserID:    claims.UserID,
		Email:     claims.Email,
		Roles:     domain.NewRoleSet(claims.Roles...),
		ExpiresAt: claims.ExpiresAt.Time,
	}
	if claims.IssuedAt != nil {
		id.IssuedAt = claims.IssuedAt.Time
	}
	return id, nil
}

func classifyTokenError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenSignatureInvalid),
		errors.Is(err, jwt.ErrTokenUnverifiable):
		return domain.ErrTokenBadSignature
	case errors.Is(err, jwt.ErrTokenExpired):
		return domain.ErrTokenExpired
	default:
		return domain.ErrTokenMalformed
	}
}
