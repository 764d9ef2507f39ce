package id

import (
	"encoding/hex"
	"regexp"
	"strings"
	"testing"
	"time"
)

var reHex32 = regexp.MustCompile(`^[a-f0-9]{32}$`)

func TestNewID32_FormatAndDecode(t *testing.T) {
	got := NewID32()

	// length
	if len(got) != 32 {
		t.Fatalf("length = %d, want 32 (got=%q)", len(got), got)
	}
	// lowercase hex only (no separators/prefixes)
	if !reHex32.MatchString(got) {
		t.Fatalf("not 32-char lowercase hex: %q", got)
	}
	// decodes to exactly 16 bytes
	b, err := hex.DecodeString(got)
	if err != nil {
		t.Fatalf("hex.DecodeString error: %v", err)
	}
	if len(b) != 16 {
		t.Fatalf("decoded bytes = %d, want 16", len(b))
	}
}

func TestNewID32_Uniqueness(t *testing.T) {
	const n = 200
	seen := make(map[string]struct{}, n)
	for i := 0; i < n; i++ {
		id := NewID32()
		if _, ok := seen[id]; ok {
			t.Fatalf("duplicate id after %d iterations: %q", i, id)
		}
		seen[id] = struct{}{}
	}
}

func TestNewAgreementNumber(t *testing.T) {
	cust := strings.Repeat("c", 32)
	at := time.Date(2025, time.January, 15, 9, 30, 0, 0, time.UTC)

	got := NewAgreementNumber(cust, at)
	want := "LOAN-1736933400000-" + cust
	if got != want {
		t.Fatalf("agreement = %q, want %q", got, want)
	}
	if !strings.HasPrefix(got, "LOAN-") {
		t.Fatalf("missing LOAN- prefix: %q", got)
	}
}

func TestNewAgreementNumber_DistinctPerMillisecond(t *testing.T) {
	cust := strings.Repeat("c", 32)
	a := NewAgreementNumber(cust, time.UnixMilli(1736933400000))
	b := NewAgreementNumber(cust, time.UnixMilli(1736933400001))
	if a == b {
		t.Fatalf("agreement numbers for different instants collide: %q", a)
	}
}
