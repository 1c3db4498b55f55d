package main

import (
	"fmt" // Prompt output
	"os"  // Standard streams

	"github.com/sirupsen/logrus" // Logrus for structured logging
	"golang.org/x/term"          // Hidden password input

	"user_ledger/internal/auth"    // Credential checks
	"user_ledger/internal/config"  // Custom package for configuration
	"user_ledger/internal/service" // Account service
	"user_ledger/internal/shell"   // Interactive menus
)

// Main function to run the interactive user management console
func main() {
	cfg := config.LoadConfig()                   // Load configuration
	cfg.SetupLogger(os.Stderr, logrus.WarnLevel) // Keep menus readable unless LOG_LEVEL asks for more

	accounts, err := service.OpenFromConfig(cfg)
	if err != nil {
		logrus.Fatalf("failed to load users: %v", err)
	}
	gate := auth.NewGate(cfg.AdminUsername, cfg.AdminPassword, accounts, cfg.JWTSecret)

	sh := shell.New(os.Stdin, os.Stdout, accounts, gate, logrus.StandardLogger())
	if fd := int(os.Stdin.Fd()); term.IsTerminal(fd) {
		sh.SetPasswordReader(func(prompt string) (string, error) {
			fmt.Print(prompt)
			secret, err := term.ReadPassword(fd)
			fmt.Print("\n")
			if err != nil {
				return "", fmt.Errorf("read password: %w", err)
			}
			return string(secret), nil
		})
	}
	if err := sh.Run(); err != nil {
		logrus.Fatalf("console stopped: %v", err)
	}
}
