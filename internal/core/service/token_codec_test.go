package service

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/go-cmp/cmp"

	"github.com/99minutos/asset-management/internal/core/domain"
)

var t0 = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

func newCodec(t *testing.T, secret string, ttl time.Duration) *TokenCodec {
	t.Helper()
	c, err := NewTokenCodec(TokenConfig{Secret: []byte(secret), TTL: ttl})
	if err != nil {
		t.Fatalf("NewTokenCodec: %v", err)
	}
	return c
}

type claimView struct {
	Subject string
	UserID  int64
	Roles   []string
}

func TestTokenCodec_RoundTripWithinTTL(t *testing.T) {
	codec := newCodec(t, "k1", 10*time.Hour)
	roles := domain.NewRoleSet(domain.RoleUser, domain.RoleAdmin)

	token, exp, err := codec.Issue("a@x.com", 7, roles, t0)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if !exp.Equal(t0.Add(10 * time.Hour)) {
		t.Fatalf("unexpected expiry %v", exp)
	}

	want := claimView{Subject: "a@x.com", UserID: 7, Roles: []string{"ADMIN", "USER"}}
	for _, at := range []time.Time{t0, t0.Add(time.Hour), t0.Add(10*time.Hour - time.Second)} {
		id, err := codec.DecodeAt(token, at)
		if err != nil {
			t.Fatalf("DecodeAt(%v): %v", at, err)
		}
		got := claimView{Subject: id.Subject, UserID: id.UserID, Roles: id.Roles.Names()}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Fatalf("claim mismatch at %v (-want +got):\n%s", at, diff)
		}
		if !id.IssuedAt.Equal(t0) || !id.ExpiresAt.Equal(exp) {
			t.Fatalf("unexpected timestamps iat=%v exp=%v", id.IssuedAt, id.ExpiresAt)
		}
	}
}

func TestTokenCodec_ExpiredAtTTL(t *testing.T) {
	codec := newCodec(t, "k1", time.Hour)
	token, _, err := codec.Issue("a@x.com", 1, domain.NewRoleSet(domain.RoleUser), t0)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	for _, at := range []time.Time{t0.Add(time.Hour), t0.Add(48 * time.Hour)} {
		if _, err := codec.DecodeAt(token, at); !errors.Is(err, domain.ErrTokenExpired) {
			t.Fatalf("DecodeAt(%v): expected ErrTokenExpired, got %v", at, err)
		}
	}
}

func TestTokenCodec_FractionalIssueTime(t *testing.T) {
	codec := newCodec(t, "k1", 10*time.Hour)
	issued := t0.Add(700 * time.Millisecond)

	token, exp, err := codec.Issue("a@x.com", 1, domain.NewRoleSet(domain.RoleUser), issued)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if want := t0.Add(10*time.Hour + time.Second); !exp.Equal(want) {
		t.Fatalf("expected expiry %v, got %v", want, exp)
	}

	for _, at := range []time.Time{issued, t0.Add(10*time.Hour + 200*time.Millisecond), issued.Add(10*time.Hour - time.Nanosecond)} {
		if _, err := codec.DecodeAt(token, at); err != nil {
			t.Fatalf("DecodeAt(%v): %v", at, err)
		}
	}
	if _, err := codec.DecodeAt(token, exp); !errors.Is(err, domain.ErrTokenExpired) {
		t.Fatalf("DecodeAt(%v): expected ErrTokenExpired, got %v", exp, err)
	}
}

func TestTokenCodec_WrongSecret(t *testing.T) {
	k1 := newCodec(t, "k1", time.Hour)
	k2 := newCodec(t, "k2", time.Hour)

	token, _, err := k1.Issue("a@x.com", 1, domain.NewRoleSet(domain.RoleUser), t0)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if _, err := k2.DecodeAt(token, t0); !errors.Is(err, domain.ErrTokenBadSignature) {
		t.Fatalf("expected ErrTokenBadSignature, got %v", err)
	}
}

func TestTokenCodec_Malformed(t *testing.T) {
	codec := newCodec(t, "k1", time.Hour)
	for _, tok := range []string{"", "not-a-token", "a.b.c", strings.Repeat("x", 40)} {
		if _, err := codec.DecodeAt(tok, t0); !errors.Is(err, domain.ErrTokenMalformed) {
			t.Fatalf("token %q: expected ErrTokenMalformed, got %v", tok, err)
		}
	}
}

func TestTokenCodec_RejectsOtherAlgorithms(t *testing.T) {
	codec := newCodec(t, "k1", time.Hour)
	claims := Claims{
		UserID: 1,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "a@x.com",
			ExpiresAt: jwt.NewNumericDate(t0.Add(time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte("k1"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := codec.DecodeAt(signed, t0); !errors.Is(err, domain.ErrTokenBadSignature) {
		t.Fatalf("expected ErrTokenBadSignature for HS512, got %v", err)
	}
}

func TestTokenCodec_RequiresExpiry(t *testing.T) {
	codec := newCodec(t, "k1", time.Hour)
	claims := Claims{RegisteredClaims: jwt.RegisteredClaims{Subject: "a@x.com"}}
	signed, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("k1"))
	if _, err := codec.DecodeAt(signed, t0); err == nil {
		t.Fatalf("expected token without exp to be rejected")
	}
}

func TestNewTokenCodec_Defaults(t *testing.T) {
	if _, err := NewTokenCodec(TokenConfig{}); err == nil {
		t.Fatalf("expected error for empty secret")
	}
	codec := newCodec(t, "k", 0)
	if codec.TTL() != DefaultTokenTTL {
		t.Fatalf("expected default ttl, got %v", codec.TTL())
	}
}
