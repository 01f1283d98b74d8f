// Package creds generates per-invocation credentials for the external
// authentication service used by the admin-account provisioning step.
package creds

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// ClientCredentials holds a client ID / secret pair.
type ClientCredentials struct {
	ID     string
	Secret string
}

// GenerateClientCredentials returns a fresh random credential pair.
// IDs are 16 hex characters, secrets 64, matching what the authentication
// service accepts for development registrations.
func GenerateClientCredentials() (*ClientCredentials, error) {
	id, err := randomHex(8)
	if err != nil {
		return nil, fmt.Errorf("failed to generate client id: %w", err)
	}
	secret, err := randomHex(32)
	if err != nil {
		return nil, fmt.Errorf("failed to generate client secret: %w", err)
	}
	return &ClientCredentials{ID: id, Secret: secret}, nil
}

func randomHex(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
