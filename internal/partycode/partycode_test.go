package partycode

import (
	"strings"
	"testing"
	"time"
)

func TestGenerate(t *testing.T) {
	seen := make(map[string]bool)

	for i := 0; i < 200; i++ {
		code, err := Generate()
		if err != nil {
			t.Fatalf("Generate() error = %v", err)
		}
		if len(code) != Length {
			t.Errorf("Generate() = %q, want length %d", code, Length)
		}
		if !IsValidFormat(code) {
			t.Errorf("Generate() = %q does not pass IsValidFormat", code)
		}
		for _, c := range code {
			if !strings.ContainsRune(Alphabet, c) {
				t.Errorf("Generate() = %q contains %q outside the alphabet", code, c)
			}
		}
		seen[code] = true
	}

	// 32^6 possibilities; 200 draws should essentially never collide more than once
	if len(seen) < 198 {
		t.Errorf("Generate() produced only %d unique codes in 200 draws", len(seen))
	}
}

func TestAlphabetExcludesAmbiguousCharacters(t *testing.T) {
	for _, c := range "IO01" {
		if strings.ContainsRune(Alphabet, c) {
			t.Errorf("Alphabet contains ambiguous character %q", c)
		}
	}
}

func TestIsValidFormat(t *testing.T) {
	tests := []struct {
		name string
		code string
		want bool
	}{
		{name: "six characters", code: "ABC234", want: true},
		{name: "four characters", code: "AB12", want: true},
		{name: "ten characters", code: "ABCDEFGH12", want: true},
		{name: "digits allowed", code: "0000", want: true},
		{name: "too short", code: "AB", want: false},
		{name: "too long", code: "ABCDEFGHIJK", want: false},
		{name: "lowercase", code: "abcd", want: false},
		{name: "mixed case", code: "ABcd12", want: false},
		{name: "hyphen", code: "TOO-LONG-CODE-123", want: false},
		{name: "space", code: "AB CD", want: false},
		{name: "empty", code: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidFormat(tt.code); got != tt.want {
				t.Errorf("IsValidFormat(%q) = %v, want %v", tt.code, got, tt.want)
			}
		})
	}
}

func TestTimestampCode(t *testing.T) {
	times := []time.Time{
		time.Unix(0, 0),
		time.Date(2024, 6, 15, 14, 30, 0, 0, time.UTC),
		time.Now(),
	}

	for _, ts := range times {
		code := TimestampCode(ts)
		if len(code) > 8 {
			t.Errorf("TimestampCode(%v) = %q, longer than 8", ts, code)
		}
		if ts.UnixMilli() > 0 && !IsValidFormat(code) {
			t.Errorf("TimestampCode(%v) = %q does not pass IsValidFormat", ts, code)
		}
	}

	a := TimestampCode(time.UnixMilli(1718461800000))
	b := TimestampCode(time.UnixMilli(1718461800001))
	if a == b {
		t.Errorf("TimestampCode should differ across milliseconds, both %q", a)
	}
}
