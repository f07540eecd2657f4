// apps/go-board/internal/words/pick.go
//
// Solution pickers.
//   - RandomPicker: uniform pick using crypto/rand.
//   - DailyPicker:  the same word for everyone on a given UTC date,
//                   index = HMAC-SHA256(salt, YYYY-MM-DD) % len(words).

package words

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/binary"
	"math/big"
	"time"
)

// Picker chooses one word out of a non-empty candidate list.
type Picker interface {
	Pick(words []string) (string, error)
}

// RandomPicker picks uniformly at random.
type RandomPicker struct{}

// Pick returns a cryptographically random element of words.
func (RandomPicker) Pick(words []string) (string, error) {
	if len(words) == 0 {
		return "", ErrEmpty
	}
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(words))))
	if err != nil {
		return "", err
	}
	return words[n.Int64()], nil
}

// DailyPicker picks deterministically by date.
type DailyPicker struct {
	Salt string
	Now  func() time.Time // defaults to time.Now
}

// Pick returns today's word.
func (d DailyPicker) Pick(words []string) (string, error) {
	if len(words) == 0 {
		return "", ErrEmpty
	}
	now := time.Now
	if d.Now != nil {
		now = d.Now
	}
	return words[WordIndex(now(), d.Salt, len(words))], nil
}

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// WordIndex returns a deterministic index for a date using HMAC(salt, YYYY-MM-DD) % n.
func WordIndex(date time.Time, salt string, n int) int {
	if n <= 0 {
		return 0
	}
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(DateKey(date)))
	sum := h.Sum(nil)
	// first 8 bytes as uint64 for the modulus
	v := binary.BigEndian.Uint64(sum[:8])
	return int(v % uint64(n))
}
