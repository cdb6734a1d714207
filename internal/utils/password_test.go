package utils

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHashAndVerify_Success(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("secret123", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if hash == "secret123" {
		t.Fatalf("hash must not equal plaintext")
	}
	if !VerifyPassword(hash, "secret123") {
		t.Fatalf("expected verification to succeed")
	}
}

func TestVerify_WrongPassword(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("secret123", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if VerifyPassword(hash, "not-the-password") {
		t.Fatalf("expected verification to fail for wrong password")
	}
}

func TestHash_SaltRandomized(t *testing.T) {
	t.Parallel()

	h1, err := HashPassword("same-plaintext", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	h2, err := HashPassword("same-plaintext", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if h1 == h2 {
		t.Fatalf("two hashes of the same plaintext must differ")
	}
	if !VerifyPassword(h1, "same-plaintext") || !VerifyPassword(h2, "same-plaintext") {
		t.Fatalf("both hashes must verify against the original plaintext")
	}
}

func TestVerify_MalformedHashFailsClosed(t *testing.T) {
	t.Parallel()

	if VerifyPassword("not-a-bcrypt-hash", "anything") {
		t.Fatalf("malformed stored credential must verify as false")
	}
	if VerifyPassword("", "anything") {
		t.Fatalf("empty stored credential must verify as false")
	}
}
