package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
)

// APITokenPrefix marks plaintext API tokens so they are recognisable in logs and configs.
const APITokenPrefix = "rvl_"

// GenerateSecureRandomString generates a cryptographically secure random string of the specified byte length,
// then hex encodes it. For example, lengthInBytes=32 will result in a 64-character hex string.
func GenerateSecureRandomString(lengthInBytes int) (string, error) {
	if lengthInBytes <= 0 {
		return "", fmt.Errorf("lengthInBytes must be positive")
	}
	b := make([]byte, lengthInBytes)
	_, err := rand.Read(b)
	if err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// FormatAPIToken joins a token id and its secret into the plaintext handed to the client.
func FormatAPIToken(tokenID, secret string) string {
	return APITokenPrefix + tokenID + "." + secret
}

// ParseAPIToken splits a plaintext token into its id and secret.
func ParseAPIToken(token string) (tokenID string, secret string, err error) {
	rest, ok := strings.CutPrefix(token, APITokenPrefix)
	if !ok {
		return "", "", fmt.Errorf("token is missing the %q prefix", APITokenPrefix)
	}
	tokenID, secret, ok = strings.Cut(rest, ".")
	if !ok || tokenID == "" || secret == "" {
		return "", "", fmt.Errorf("token is malformed")
	}
	return tokenID, secret, nil
}
