// Package credentials generates the admin password hash and session secret
// lines for a .env file.
package credentials

import (
	"bufio"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"invites/internal/adapters/auth"
)

const secretBytes = 32

// Config holds configuration for credential generation.
type Config struct {
	Password string
	Cost     int
}

// ParseConfig parses flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	cfg := Config{Cost: auth.DefaultCost}
	fs.StringVar(&cfg.Password, "password", "", "admin password (read from stdin when empty)")
	fs.IntVar(&cfg.Cost, "cost", cfg.Cost, "bcrypt cost")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run hashes the password and writes ADMIN_PASSWORD_HASH and SESSION_SECRET
// lines to out. The hash is single-quoted so godotenv does not expand its "$".
func Run(cfg Config, in io.Reader, out io.Writer, random io.Reader) error {
	if out == nil {
		return errors.New("output is required")
	}
	if random == nil {
		random = rand.Reader
	}
	password := cfg.Password
	if password == "" && in != nil {
		line, err := bufio.NewReader(in).ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("read password: %w", err)
		}
		password = strings.TrimRight(line, "\r\n")
	}
	if password == "" {
		return errors.New("password is required")
	}

	hash, err := auth.NewBcryptHasher(cfg.Cost).Hash(password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	secret := make([]byte, secretBytes)
	if _, err := io.ReadFull(random, secret); err != nil {
		return fmt.Errorf("generate session secret: %w", err)
	}
	_, err = fmt.Fprintf(out, "ADMIN_PASSWORD_HASH='%s'\nSESSION_SECRET=%s\n", hash, hex.EncodeToString(secret))
	return err
}
