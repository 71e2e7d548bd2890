package service

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const tokenFilename = ".seafile-token"

// TokenService caches the API token between runs: a single plain-text line
// in a dot-file in the user's home directory. The token is never expired by
// this program; the server rejecting it is what invalidates it.
type TokenService interface {
	Load() (string, error)
	Save(token string) error
}

type tokenService struct {
}

func newTokenService() TokenService {
	return &tokenService{}
}

func tokenPath() (string, error) {
	homedir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot get user home directory: %w", err)
	}
	return filepath.Join(homedir, tokenFilename), nil
}

func (tokenService) Load() (string, error) {
	path, err := tokenPath()
	if err != nil {
		return "", err
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	line, _, _ := strings.Cut(string(raw), "\n")
	return strings.TrimSpace(line), nil
}

func (tokenService) Save(token string) error {
	path, err := tokenPath()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(token+"\n"), 0o600); err != nil {
		return fmt.Errorf("cannot write token file: %w", err)
	}
	return nil
}
