// Package password hashes and verifies account passwords.
//
// Hashes are self-describing strings, so a stored hash carries its own salt
// and parameters and can be checked regardless of the algorithm currently
// configured for new accounts.
package password

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/bcrypt"
)

const (
	AlgorithmBcrypt   = "bcrypt"
	AlgorithmArgon2id = "argon2id"
)

var ErrUnknownFormat = errors.New("password: unknown hash format")

// Hasher produces a new hash for a plaintext password.
type Hasher interface {
	Hash(plain string) (string, error)
}

// Options selects the algorithm and its cost parameters.
type Options struct {
	Algorithm  string
	BcryptCost int

	ArgonTime    uint32
	ArgonMemory  uint32 // KiB
	ArgonThreads uint8
}

// New returns the Hasher selected by opts. Unset parameters get defaults.
func New(opts Options) (Hasher, error) {
	switch strings.ToLower(opts.Algorithm) {
	case "", AlgorithmBcrypt:
		cost := opts.BcryptCost
		if cost == 0 {
			cost = bcrypt.DefaultCost
		}
		if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
			return nil, fmt.Errorf("password: bcrypt cost %d out of range", cost)
		}
		return Bcrypt{Cost: cost}, nil
	case AlgorithmArgon2id:
		a := Argon2id{Time: opts.ArgonTime, Memory: opts.ArgonMemory, Threads: opts.ArgonThreads}
		if a.Time == 0 {
			a.Time = 1
		}
		if a.Memory == 0 {
			a.Memory = 64 * 1024
		}
		if a.Threads == 0 {
			a.Threads = 4
		}
		return a, nil
	default:
		return nil, fmt.Errorf("password: unsupported algorithm %q", opts.Algorithm)
	}
}

// Verify reports whether plain matches encoded. A malformed hash is an error,
// a mismatch is not.
func Verify(encoded, plain string) (bool, error) {
	switch {
	case strings.HasPrefix(encoded, "$argon2id$"):
		return verifyArgon2id(encoded, plain)
	case strings.HasPrefix(encoded, "$2"):
		err := bcrypt.CompareHashAndPassword([]byte(encoded), []byte(plain))
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return false, nil
		}
		return err == nil, err
	default:
		return false, ErrUnknownFormat
	}
}

// Bcrypt hashes with golang.org/x/crypto/bcrypt.
type Bcrypt struct {
	Cost int
}

func (b Bcrypt) Hash(plain string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(plain), b.Cost)
	if err != nil {
		return "", fmt.Errorf("password: bcrypt: %w", err)
	}
	return string(h), nil
}

// Argon2id hashes with golang.org/x/crypto/argon2 using the PHC string format.
type Argon2id struct {
	Time    uint32
	Memory  uint32
	Threads uint8
}

const (
	argonSaltLen = 16
	argonKeyLen  = 32
)

func (a Argon2id) Hash(plain string) (string, error) {
	salt := make([]byte, argonSaltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("password: salt: %w", err)
	}
	key := argon2.IDKey([]byte(plain), salt, a.Time, a.Memory, a.Threads, argonKeyLen)
	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, a.Memory, a.Time, a.Threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}

func verifyArgon2id(encoded, plain string) (bool, error) {
	// "", "argon2id", "v=19", "m=..,t=..,p=..", salt, key
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 {
		return false, ErrUnknownFormat
	}
	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil || version != argon2.Version {
		return false, ErrUnknownFormat
	}
	var a Argon2id
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &a.Memory, &a.Time, &a.Threads); err != nil {
		return false, ErrUnknownFormat
	}
	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return false, ErrUnknownFormat
	}
	want, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return false, ErrUnknownFormat
	}
	got := argon2.IDKey([]byte(plain), salt, a.Time, a.Memory, a.Threads, uint32(len(want)))
	return subtle.ConstantTimeCompare(got, want) == 1, nil
}
