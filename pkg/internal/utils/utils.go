package utils

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"
)

// GenerateSha256Hash returns the hex SHA-256 of the value's string representation.
func GenerateSha256Hash[T any](data T) string {
	dataString := fmt.Sprintf("%v", data)
	hash := sha256.Sum256([]byte(dataString))
	return hex.EncodeToString(hash[:])
}

// GenerateUniqueHash returns a random hex identifier suitable for component IDs.
// The input mixes the current time with 128 bits of randomness.
func GenerateUniqueHash() string {
	currentTime := time.Now().UnixNano()
	randomBytes := make([]byte, 16)
	if _, err := rand.Read(randomBytes); err != nil {
		panic("random number generator failed")
	}

	hashInput := append([]byte(fmt.Sprintf("%d", currentTime)), randomBytes...)
	hash := sha256.Sum256(hashInput)
	return hex.EncodeToString(hash[:])
}
