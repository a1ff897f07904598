package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"path/filepath"
	"strings"
)

// RandomHex returns n random bytes encoded as 2n lowercase hex characters.
func RandomHex(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("error reading random bytes: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// RandomFileName builds a collision-resistant file name: 16 random hex
// characters followed by the lower-cased extension of original. Nothing
// else from the user-supplied name survives, so path segments are dropped.
func RandomFileName(original string) (string, error) {
	name, err := RandomHex(8)
	if err != nil {
		return "", err
	}
	return name + strings.ToLower(filepath.Ext(filepath.Base(original))), nil
}
