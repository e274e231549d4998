// Package secrets reads and writes the engine's credentials through the OS
// keychain. Nothing sensitive ever lands in the config file.
package secrets

import (
	"errors"
	"fmt"
	"strings"

	"github.com/zalando/go-keyring"
)

const (
	// Service groups the engine's secrets in the OS keychain.
	KeyringService = "internguard"

	urlscanAccount = "internguard:urlscan:api_key"
)

func GetIMAPPassword(keyringAccount string) (string, error) {
	if strings.TrimSpace(keyringAccount) != "" {
		pw, err := keyring.Get(KeyringService, keyringAccount)
		if err == nil && strings.TrimSpace(pw) != "" {
			return pw, nil
		}
	}
	return "", errors.New("IMAP password not found in keychain")
}

func SetIMAPPassword(keyringAccount string, password string) error {
	if strings.TrimSpace(keyringAccount) == "" {
		return errors.New("keyring account name is empty")
	}
	if strings.TrimSpace(password) == "" {
		return errors.New("password is empty")
	}
	return keyring.Set(KeyringService, keyringAccount, password)
}

func DeleteIMAPPassword(keyringAccount string) error {
	if strings.TrimSpace(keyringAccount) == "" {
		return errors.New("keyring account name is empty")
	}
	return keyring.Delete(KeyringService, keyringAccount)
}

func IMAPKeyringAccount(username, host string) string {
	return fmt.Sprintf("internguard:imap:%s@%s", username, host)
}

// GetURLScanAPIKey returns the stored urlscan.io key, or "" when none is
// set. The public search API works unauthenticated, so absence is fine.
func GetURLScanAPIKey() string {
	key, err := keyring.Get(KeyringService, urlscanAccount)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(key)
}

func SetURLScanAPIKey(key string) error {
	if strings.TrimSpace(key) == "" {
		return errors.New("API key is empty")
	}
	return keyring.Set(KeyringService, urlscanAccount, key)
}
