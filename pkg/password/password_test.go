package password

import (
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestBcrypt_HashAndVerify(t *testing.T) {
	h, err := New(Options{Algorithm: AlgorithmBcrypt, BcryptCost: bcrypt.MinCost})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	encoded, err := h.Hash("p1")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	if encoded == "p1" || !strings.HasPrefix(encoded, "$2") {
		t.Fatalf("unexpected hash: %q", encoded)
	}

	ok, err := Verify(encoded, "p1")
	if err != nil || !ok {
		t.Fatalf("expected match, got ok=%v err=%v", ok, err)
	}
	ok, err = Verify(encoded, "p2")
	if err != nil || ok {
		t.Fatalf("expected mismatch without error, got ok=%v err=%v", ok, err)
	}
}

func TestArgon2id_HashAndVerify(t *testing.T) {
	h, err := New(Options{Algorithm: AlgorithmArgon2id, ArgonMemory: 8 * 1024})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	encoded, err := h.Hash("s3cret")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	if !strings.HasPrefix(encoded, "$argon2id$v=19$m=8192,t=1,p=4$") {
		t.Fatalf("unexpected encoding: %q", encoded)
	}

	again, _ := h.Hash("s3cret")
	if again == encoded {
		t.Fatalf("expected a fresh salt per hash")
	}

	if ok, err := Verify(encoded, "s3cret"); err != nil || !ok {
		t.Fatalf("expected match, got ok=%v err=%v", ok, err)
	}
	if ok, err := Verify(encoded, "nope"); err != nil || ok {
		t.Fatalf("expected mismatch, got ok=%v err=%v", ok, err)
	}
}

func TestVerify_UnknownFormat(t *testing.T) {
	if _, err := Verify("plaintext", "plaintext"); err != ErrUnknownFormat {
		t.Fatalf("expected ErrUnknownFormat, got %v", err)
	}
	if _, err := Verify("$argon2id$v=19$garbage", "x"); err != ErrUnknownFormat {
		t.Fatalf("expected ErrUnknownFormat for truncated argon hash, got %v", err)
	}
}

func TestNew_Rejects(t *testing.T) {
	if _, err := New(Options{Algorithm: "md5"}); err == nil {
		t.Fatalf("expected error for unsupported algorithm")
	}
	if _, err := New(Options{BcryptCost: 99}); err == nil {
		t.Fatalf("expected error for out of range cost")
	}
}
