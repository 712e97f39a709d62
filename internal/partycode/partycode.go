package partycode

import (
	"crypto/rand"
	"math/big"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Alphabet excludes I, O, 0 and 1 so codes can be read aloud or copied from paper
const Alphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

const (
	// Length of generated codes
	Length = 6

	// MaxGenerateAttempts bounds the uniqueness retry loop before falling back to TimestampCode
	MaxGenerateAttempts = 10

	timestampCodeLength = 8
)

var formatRegex = regexp.MustCompile(`^[A-Z0-9]{4,10}$`)

// Generate returns a random party code drawn uniformly from Alphabet.
// Uniqueness is the caller's concern.
func Generate() (string, error) {
	code := make([]byte, Length)
	max := big.NewInt(int64(len(Alphabet)))

	for i := 0; i < Length; i++ {
		num, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		code[i] = Alphabet[num.Int64()]
	}

	return string(code), nil
}

// IsValidFormat reports whether code is 4-10 upper-case letters or digits
func IsValidFormat(code string) bool {
	return formatRegex.MatchString(code)
}

// TimestampCode derives a fallback code from the millisecond clock
func TimestampCode(t time.Time) string {
	code := strings.ToUpper(strconv.FormatInt(t.UnixMilli(), 36))
	if len(code) > timestampCodeLength {
		code = code[len(code)-timestampCodeLength:]
	}
	return code
}
