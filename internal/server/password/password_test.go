package password

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHashAndVerify_RoundTrip(t *testing.T) {
	t.Parallel()

	h := NewHasher(bcrypt.MinCost)

	record, err := h.Hash("correct horse battery staple")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}

	if !h.Verify("correct horse battery staple", record) {
		t.Fatal("expected password to verify against its own hash")
	}
	if h.Verify("wrong password", record) {
		t.Fatal("expected mismatched password to fail verification")
	}
}

func TestHash_SaltRandomization(t *testing.T) {
	t.Parallel()

	h := NewHasher(bcrypt.MinCost)

	r1, err := h.Hash("s3cret")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}
	r2, err := h.Hash("s3cret")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}

	if r1 == r2 {
		t.Fatal("two hashes of the same password must differ")
	}
	if !h.Verify("s3cret", r1) || !h.Verify("s3cret", r2) {
		t.Fatal("both hashes must verify against the original password")
	}
}

func TestVerify_MalformedRecord(t *testing.T) {
	t.Parallel()

	h := NewHasher(0)

	for _, record := range []string{"", "not-a-bcrypt-record", "$2a$xx$garbage"} {
		if h.Verify("anything", record) {
			t.Fatalf("malformed record %q must not verify", record)
		}
	}
}

func TestNewHasher_CostFallback(t *testing.T) {
	t.Parallel()

	if got := NewHasher(0).cost; got != bcrypt.DefaultCost {
		t.Fatalf("expected default cost %d, got %d", bcrypt.DefaultCost, got)
	}
	if got := NewHasher(99).cost; got != bcrypt.DefaultCost {
		t.Fatalf("expected default cost %d for out-of-range value, got %d", bcrypt.DefaultCost, got)
	}
	if got := NewHasher(bcrypt.MinCost).cost; got != bcrypt.MinCost {
		t.Fatalf("expected cost %d to be kept, got %d", bcrypt.MinCost, got)
	}
}
