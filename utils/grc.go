package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"os"
	"strings"

	"github.com/google/uuid"
)

func EnvOrDefault(key, def string) string {
	v := os.Getenv(key)
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}

// NewGRCNo produces a guest registration card number like "GRC-4821".
// crypto/rand + big.Int avoids modulo bias on the digits.
func NewGRCNo() string {
	n, err := rand.Int(rand.Reader, big.NewInt(9000))
	if err != nil {
		// rand failure is effectively unreachable; fall back to a uuid-derived number
		return "GRC-" + uuid.NewString()[:4]
	}
	return fmt.Sprintf("GRC-%d", n.Int64()+1000)
}

// NewReferenceCode returns the internal booking reference, distinct from the
// human-facing GRC number.
func NewReferenceCode() string {
	return "BK-" + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:12])
}
