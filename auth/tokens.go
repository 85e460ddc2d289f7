package auth

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/oauth2"
)

// Retrieves a token from a local file. A file that does not decode as a token is
// reported as errCorruptToken.
func tokenFromFile(file string) (*oauth2.Token, error) {
	b, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}

	token := oauth2.Token{}
	if err := json.Unmarshal(b, &token); err != nil {
		return nil, fmt.Errorf("%w (%v)", errCorruptToken, err)
	}

	if token.AccessToken == "" && token.RefreshToken == "" {
		return nil, errCorruptToken
	}

	return &token, nil
}

// Saves a token to a file path, replacing any existing token file atomically.
func saveToken(file string, token *oauth2.Token) error {
	dir := filepath.Dir(file)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".token-*")
	if err != nil {
		return err
	}

	defer func() {
		tmp.Close()
		os.Remove(tmp.Name())
	}()

	if err := tmp.Chmod(0600); err != nil {
		return err
	}

	if err := json.NewEncoder(tmp).Encode(token); err != nil {
		return err
	}

	if err := tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), file)
}
