package otp

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const codeDigits = 6

// GenerateCode returns a zero-padded 6-digit numeric code from crypto/rand.
func GenerateCode() (string, error) {
	max := big.NewInt(1000000)
	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return "", fmt.Errorf("failed to generate otp: %w", err)
	}
	return fmt.Sprintf("%0*d", codeDigits, n.Int64()), nil
}
