package auth

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// TokenPrefix namespaces every code and access token issued by the provider.
const TokenPrefix = "yf_"

const (
	stateBytes = 16
	codeBytes  = 16
	tokenBytes = 32
)

// randomHex returns n bytes from crypto/rand, hex encoded.
func randomHex(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

func generateState() (string, error) {
	return randomHex(stateBytes)
}

func generateCode() (string, error) {
	v, err := randomHex(codeBytes)
	if err != nil {
		return "", err
	}
	return TokenPrefix + v, nil
}

func generateAccessToken() (string, error) {
	v, err := randomHex(tokenBytes)
	if err != nil {
		return "", err
	}
	return TokenPrefix + v, nil
}

// tokenPrefix shortens a credential for log output.
func tokenPrefix(token string) string {
	if len(token) <= 8 {
		return token
	}
	return token[:8]
}
