package encryption

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"filippo.io/age"
	"filippo.io/age/agessh"
	"filippo.io/age/armor"
	"github.com/atotto/clipboard"
	"github.com/deathrjj/userhub-tui/models"
)

// ErrNoRecipients is returned when an export has nobody to encrypt to.
var ErrNoRecipients = errors.New("no export recipients")

// ParseRecipients parses age X25519 public keys ("age1...") and SSH public
// keys ("ssh-ed25519 ...", "ssh-rsa ...").
func ParseRecipients(keys []string) ([]age.Recipient, error) {
	var recipients []age.Recipient
	for _, key := range keys {
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		var (
			rec age.Recipient
			err error
		)
		if strings.HasPrefix(key, "age1") {
			rec, err = age.ParseX25519Recipient(key)
		} else {
			// Use agessh.ParseRecipient to parse an SSH key as an age recipient
			rec, err = agessh.ParseRecipient(key)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to parse recipient %q: %w", shorten(key), err)
		}
		recipients = append(recipients, rec)
	}
	if len(recipients) == 0 {
		return nil, ErrNoRecipients
	}
	return recipients, nil
}

// EncryptUsers encrypts users as JSON for every recipient key and returns the
// ASCII-armored age file.
func EncryptUsers(users []models.User, keys []string) (string, error) {
	recipients, err := ParseRecipients(keys)
	if err != nil {
		return "", err
	}
	if users == nil {
		users = []models.User{}
	}
	plaintext, err := json.MarshalIndent(users, "", "  ")
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	armorWriter := armor.NewWriter(&buf)

	w, err := age.Encrypt(armorWriter, recipients...)
	if err != nil {
		return "", err
	}

	if _, err := w.Write(plaintext); err != nil {
		return "", err
	}

	if err := w.Close(); err != nil {
		return "", err
	}

	if err := armorWriter.Close(); err != nil {
		return "", err
	}

	return buf.String(), nil
}

// CopyToClipboard places text on the system clipboard.
func CopyToClipboard(text string) error {
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("failed to copy to clipboard: %w", err)
	}
	return nil
}

func shorten(key string) string {
	if len(key) > 16 {
		return key[:16] + "..."
	}
	return key
}
