package ident

import (
	"crypto/rand"
	"math/big"
	"time"

	"github.com/google/uuid"
)

// RandomIDGenerator is the production id source: UUIDs for orders and drafts,
// short base36 tokens for line items. Tests inject their own generator to get
// deterministic ids.
type RandomIDGenerator struct{}

func NewRandomIDGenerator() *RandomIDGenerator {
	return &RandomIDGenerator{}
}

func (RandomIDGenerator) NewID() string {
	return uuid.NewString()
}

const tokenAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"
const tokenLength = 9

// NewItemToken returns a 9-character base36 token. Uniqueness only matters
// within one order's item list.
func (RandomIDGenerator) NewItemToken() string {
	b := make([]byte, tokenLength)
	max := big.NewInt(int64(len(tokenAlphabet)))
	for i := range b {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand only fails when the platform source is broken;
			// fall back to the uuid space rather than panic mid-edit.
			return uuid.NewString()[:tokenLength]
		}
		b[i] = tokenAlphabet[n.Int64()]
	}
	return string(b)
}

// SystemClock supplies wall-clock time for timestamps and OS numbers.
type SystemClock struct{}

func NewSystemClock() *SystemClock {
	return &SystemClock{}
}

func (SystemClock) Now() time.Time {
	return time.Now()
}
