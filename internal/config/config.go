package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/sirupsen/logrus"
)

type Config struct {
	EventsFile    string
	UsersFile     string
	ReceiptDir    string
	Env           string
	LogLevel      string
	HashPasswords bool
	SaveReceiptQR bool
}

func NewConfigFromEnv() (*Config, error) {
	hashPasswords, err := strconv.ParseBool(getenv("HASH_PASSWORDS", "false"))
	if err != nil {
		return nil, fmt.Errorf("invalid HASH_PASSWORDS: %w", err)
	}
	saveReceiptQR, err := strconv.ParseBool(getenv("SAVE_RECEIPT_QR", "false"))
	if err != nil {
		return nil, fmt.Errorf("invalid SAVE_RECEIPT_QR: %w", err)
	}

	cfg := &Config{
		EventsFile:    getenv("EVENTS_FILE", "events.dat"),
		UsersFile:     getenv("USERS_FILE", "users.dat"),
		ReceiptDir:    getenv("RECEIPT_DIR", "./receipts"),
		Env:           getenv("ENV", "development"),
		LogLevel:      getenv("LOG_LEVEL", "info"),
		HashPasswords: hashPasswords,
		SaveReceiptQR: saveReceiptQR,
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.EventsFile == "" || c.UsersFile == "" {
		return errors.New("EVENTS_FILE and USERS_FILE are required")
	}
	if filepath.Clean(c.EventsFile) == filepath.Clean(c.UsersFile) {
		return errors.New("EVENTS_FILE and USERS_FILE must be different files")
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}
	return nil
}

func getenv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
