package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables that override the config file.
const (
	EnvUserName    = "PROJINSIGHT_USER_NAME"
	EnvUserEmail   = "PROJINSIGHT_USER_EMAIL"
	EnvStoreDriver = "PROJINSIGHT_STORE_DRIVER"
	EnvStoreDSN    = "PROJINSIGHT_STORE_DSN"
)

// LoadDotEnv loads variables from the given .env files into the process
// environment. Missing files are ignored and variables already set win.
func LoadDotEnv(files ...string) error {
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("loading %s: %w", f, err)
		}
	}
	return nil
}

// ApplyEnv overrides config values with any non-empty PROJINSIGHT_*
// variables.
func (c *Config) ApplyEnv() {
	override(&c.Resume.UserName, EnvUserName)
	override(&c.Resume.UserEmail, EnvUserEmail)
	override(&c.Store.Driver, EnvStoreDriver)
	override(&c.Store.DSN, EnvStoreDSN)
}

func override(dst *string, envVar string) {
	if v := strings.TrimSpace(os.Getenv(envVar)); v != "" {
		*dst = v
	}
}
