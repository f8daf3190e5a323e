package crypto

import (
	"errors"
	"fmt"
	"os"

	"github.com/zalando/go-keyring"
)

// Keyring provides secure key storage abstraction
type Keyring interface {
	GetKey() (string, error)
	SetKey(password string) error
	DeleteKey() error
	IsAvailable() bool
}

const (
	ServiceName = "tradebook"
	KeyName     = "db-encryption-key"
	EnvKey      = "TRADEBOOK_DB_KEY"
)

// ErrKeyNotFound is returned when no source holds a database key
var ErrKeyNotFound = errors.New("encryption key not found")

// NewKeyring returns a keyring that prefers TRADEBOOK_DB_KEY and otherwise
// uses the system keyring (Keychain, Secret Service or Credential Manager)
func NewKeyring() Keyring {
	return &chainKeyring{
		env:    envKeyring{},
		system: systemKeyring{},
	}
}

type chainKeyring struct {
	env    envKeyring
	system systemKeyring
}

func (k *chainKeyring) GetKey() (string, error) {
	if key, err := k.env.GetKey(); err == nil {
		return key, nil
	}
	return k.system.GetKey()
}

// SetKey always writes to the system keyring; the environment is read-only
func (k *chainKeyring) SetKey(password string) error {
	return k.system.SetKey(password)
}

func (k *chainKeyring) DeleteKey() error {
	return k.system.DeleteKey()
}

func (k *chainKeyring) IsAvailable() bool {
	return k.env.IsAvailable() || k.system.IsAvailable()
}

type systemKeyring struct{}

// GetKey retrieves the encryption key from the system keyring
func (systemKeyring) GetKey() (string, error) {
	key, err := keyring.Get(ServiceName, KeyName)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return "", fmt.Errorf("%w in system keyring", ErrKeyNotFound)
		}
		return "", fmt.Errorf("failed to retrieve key from keyring: %w", err)
	}

	if key == "" {
		return "", fmt.Errorf("%w: stored key is empty", ErrKeyNotFound)
	}

	return key, nil
}

// SetKey stores the encryption key in the system keyring
func (systemKeyring) SetKey(password string) error {
	if password == "" {
		return errors.New("password cannot be empty")
	}

	if err := keyring.Set(ServiceName, KeyName, password); err != nil {
		return fmt.Errorf("failed to store key in keyring: %w", err)
	}

	return nil
}

// DeleteKey removes the encryption key from the system keyring
func (systemKeyring) DeleteKey() error {
	err := keyring.Delete(ServiceName, KeyName)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return fmt.Errorf("%w in system keyring", ErrKeyNotFound)
		}
		return fmt.Errorf("failed to delete key from keyring: %w", err)
	}

	return nil
}

// IsAvailable probes the keyring with a throwaway entry
func (systemKeyring) IsAvailable() bool {
	testKey := "__tradebook_availability_test__"
	if err := keyring.Set(ServiceName, testKey, "test"); err != nil {
		return false
	}

	_ = keyring.Delete(ServiceName, testKey)
	return true
}

type envKeyring struct{}

// GetKey reads the encryption key from TRADEBOOK_DB_KEY
func (envKeyring) GetKey() (string, error) {
	key := os.Getenv(EnvKey)
	if key == "" {
		return "", fmt.Errorf("%w: %s not set", ErrKeyNotFound, EnvKey)
	}
	return key, nil
}

func (envKeyring) IsAvailable() bool {
	return os.Getenv(EnvKey) != ""
}
