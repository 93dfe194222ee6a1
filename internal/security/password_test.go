package security

import (
	"testing"
)

func TestHashAndVerify_Roundtrip(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("Secret123!")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if hash == "Secret123!" {
		t.Fatal("hash equals plaintext")
	}

	ok, err := VerifyPassword("Secret123!", hash)
	if err != nil {
		t.Fatalf("VerifyPassword error: %v", err)
	}
	if !ok {
		t.Fatal("expected password to verify")
	}
}

func TestVerify_WrongPassword(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("Secret123!")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}

	ok, err := VerifyPassword("not-the-password", hash)
	if err != nil {
		t.Fatalf("VerifyPassword error: %v", err)
	}
	if ok {
		t.Fatal("expected wrong password to fail verification")
	}
}

func TestHash_SaltIsRandomized(t *testing.T) {
	t.Parallel()

	first, err := HashPassword("Secret123!")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	second, err := HashPassword("Secret123!")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}

	if first == second {
		t.Fatal("hashing the same password twice produced identical outputs")
	}
}

func TestVerify_MalformedHash(t *testing.T) {
	t.Parallel()

	_, err := VerifyPassword("Secret123!", "not-an-encoded-hash")
	if err == nil {
		t.Fatal("expected error for malformed hash, got nil")
	}
}
