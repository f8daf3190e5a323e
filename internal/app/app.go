package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"syscall"

	"github.com/andy/tradebook/internal/config"
	"github.com/andy/tradebook/internal/crypto"
	"github.com/andy/tradebook/internal/db"
	"github.com/andy/tradebook/internal/logging"
	"github.com/andy/tradebook/internal/repository"
	"github.com/andy/tradebook/internal/service"
	"golang.org/x/term"
)

// App is the dependency injection container for all application components
type App struct {
	Config *config.Config
	DB     *db.DB
	Log    *slog.Logger

	// Repositories
	ClientRepo      repository.ClientRepository
	TransactionRepo repository.TransactionRepository

	// Services
	ClientService      service.ClientService
	TransactionService service.TransactionService
}

// New creates a new App instance, initializing all dependencies
// It handles:
// 1. Loading config and building the logger
// 2. Getting encryption key from keyring
// 3. Opening database
// 4. Running migrations
// 5. Creating repositories and services
func New(ctx context.Context) (*App, error) {
	cfg, err := config.LoadDefault()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	return NewWithConfig(ctx, cfg, crypto.NewKeyring())
}

// NewWithConfig creates an App with a provided config and key source (useful for testing)
func NewWithConfig(ctx context.Context, cfg *config.Config, keyring crypto.Keyring) (*App, error) {
	log, err := logging.FromConfig(cfg.Log, os.Stderr)
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}

	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("failed to create directories: %w", err)
	}

	password, err := keyring.GetKey()
	if err != nil {
		log.Debug("no stored database key", "error", err)
		fmt.Fprintln(os.Stderr, "Setting up database encryption for the first time...")
		password, err = promptForPassword()
		if err != nil {
			return nil, fmt.Errorf("failed to set password: %w", err)
		}

		if err := keyring.SetKey(password); err != nil {
			return nil, fmt.Errorf("failed to store encryption key: %w", err)
		}
	}

	database, err := db.Open(cfg.Database.Path, password)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := database.RunMigrations(); err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	log.Debug("database ready", "path", cfg.Database.Path)

	clientRepo := repository.NewClientRepo(database)
	txRepo := repository.NewTransactionRepo(database)

	return &App{
		Config:             cfg,
		DB:                 database,
		Log:                log,
		ClientRepo:         clientRepo,
		TransactionRepo:    txRepo,
		ClientService:      service.NewClientService(clientRepo, txRepo, log),
		TransactionService: service.NewTransactionService(clientRepo, txRepo, log),
	}, nil
}

// Close cleanly shuts down the application
func (a *App) Close() error {
	if a.DB != nil {
		return a.DB.Close()
	}
	return nil
}

// Currency returns the prefix printed before amounts
func (a *App) Currency() string {
	return a.Config.Display.Currency
}

// promptForPassword prompts user for a new database password (first run)
func promptForPassword() (string, error) {
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Your client records will be encrypted with a password.")
	fmt.Fprintln(os.Stderr, "This password will be stored securely in your system keyring.")
	fmt.Fprintln(os.Stderr)
	fmt.Fprint(os.Stderr, "Enter a password for database encryption: ")

	password, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}

	if len(password) == 0 {
		return "", fmt.Errorf("password cannot be empty")
	}

	fmt.Fprint(os.Stderr, "Confirm password: ")
	confirm, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("failed to read confirmation: %w", err)
	}

	if string(password) != string(confirm) {
		return "", fmt.Errorf("passwords do not match")
	}

	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "✓ Database encryption configured successfully")
	fmt.Fprintln(os.Stderr)

	return string(password), nil
}

