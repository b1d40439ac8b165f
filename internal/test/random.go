package test

import (
	"math/rand"
	"strings"
	"sync"
	"time"
)

const (
	lowerLetters = "abcdefghijklmnopqrstuvwxyz"
	upperLetters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digits       = "0123456789"
	specials     = "!@#$%^&*(),.?\":{}|<>"
	asciiLetters = lowerLetters + upperLetters + digits
)

var (
	rngMu sync.Mutex
	rng   = rand.New(rand.NewSource(time.Now().UnixNano()))
)

// RandomASCIIString returns a pseudo-random alphanumeric string within the provided bounds.
func RandomASCIIString(minLen, maxLen int) string {
	if minLen <= 0 {
		minLen = 1
	}
	if maxLen < minLen {
		maxLen = minLen
	}
	length := minLen
	if maxLen > minLen {
		length += randomIntn(maxLen - minLen + 1)
	}
	return randomFrom(asciiLetters, length)
}

// RandomEmail returns a unique-looking lowercase address on example.com.
func RandomEmail() string {
	return strings.ToLower(RandomASCIIString(8, 16)) + "@example.com"
}

// RandomStrongPassword returns a password satisfying every strength rule.
func RandomStrongPassword() string {
	var b strings.Builder
	b.WriteString(randomFrom(upperLetters, 2))
	b.WriteString(randomFrom(lowerLetters, 4))
	b.WriteString(randomFrom(digits, 2))
	b.WriteString(randomFrom(specials, 1))
	b.WriteString(RandomASCIIString(1, 8))
	return b.String()
}

func randomFrom(alphabet string, n int) string {
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = alphabet[randomIntn(len(alphabet))]
	}
	return string(buf)
}

func randomIntn(n int) int {
	rngMu.Lock()
	defer rngMu.Unlock()
	return rng.Intn(n)
}
