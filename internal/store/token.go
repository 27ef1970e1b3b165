package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const tokenFileName = "token.json"

// TokenInfo is the saved API token for the journal server.
type TokenInfo struct {
	Token     string    `json:"token"`
	Source    string    `json:"source"` // "env" | "file"
	CreatedAt time.Time `json:"created_at"`
}

func tokenPath(dir string) string {
	return filepath.Join(dir, tokenFileName)
}

// GetToken resolves the API token: PRETRADE_TOKEN overrides the saved file.
// Returns nil when not logged in.
func GetToken(dir string) (*TokenInfo, error) {
	if env := strings.TrimSpace(os.Getenv("PRETRADE_TOKEN")); env != "" {
		return &TokenInfo{Token: stripBearer(env), Source: "env"}, nil
	}
	b, err := os.ReadFile(tokenPath(dir))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read token: %w", err)
	}
	var ti TokenInfo
	if err := json.Unmarshal(b, &ti); err != nil {
		return nil, fmt.Errorf("parse token: %w", err)
	}
	ti.Token = stripBearer(ti.Token)
	return &ti, nil
}

// SetToken saves the token with owner-only permissions.
func SetToken(dir, token string) error {
	token = stripBearer(strings.TrimSpace(token))
	if token == "" {
		return fmt.Errorf("empty token")
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}
	ti := TokenInfo{Token: token, Source: "file", CreatedAt: time.Now()}
	b, err := json.MarshalIndent(ti, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}
	if err := os.WriteFile(tokenPath(dir), b, 0o600); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	return nil
}

// DeleteToken removes the saved token; missing file is not an error.
func DeleteToken(dir string) error {
	if err := os.Remove(tokenPath(dir)); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("remove: %w", err)
	}
	return nil
}

func stripBearer(s string) string {
	if strings.HasPrefix(strings.ToLower(s), "bearer ") {
		return strings.TrimSpace(s[7:])
	}
	return s
}
