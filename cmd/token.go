package cmd

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/vibast-solutions/ms-go-intent/app/repository"
	"github.com/vibast-solutions/ms-go-intent/app/service"
)

var tokenExpiresInDays int

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Manage access tokens",
}

var tokenGenerateCmd = &cobra.Command{
	Use:   "generate <owner>",
	Short: "Mint an access token for an owner",
	Long:  `Mint an access token bound to an owner and an expiration. The printed secret is the bearer credential and is never shown again.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		tokenService, db, err := newTokenServiceForTokenCommands()
		if err != nil {
			return err
		}
		defer db.Close()

		owner := args[0]
		secret, token, err := tokenService.Create(context.Background(), owner, tokenExpiresInDays)
		if err != nil {
			if errors.Is(err, service.ErrInvalidOwner) {
				return fmt.Errorf("owner must not be empty")
			}
			if errors.Is(err, service.ErrInvalidExpiry) {
				return fmt.Errorf("expiration must be greater than 0 days")
			}
			return err
		}

		fmt.Printf("owner: %s\n", token.Owner)
		fmt.Printf("secret: %s\n", secret)
		fmt.Printf("expires_at: %s\n", token.ExpiresAt.Format(time.RFC3339))
		return nil
	},
}

func init() {
	tokenGenerateCmd.Flags().IntVar(&tokenExpiresInDays, "days", 30, "number of days until the token expires")
	tokenCmd.AddCommand(tokenGenerateCmd)
	rootCmd.AddCommand(tokenCmd)
}

func newTokenServiceForTokenCommands() (service.TokenService, *sql.DB, error) {
	_ = godotenv.Load()

	dsn := strings.TrimSpace(os.Getenv("MYSQL_DSN"))
	if dsn == "" {
		return nil, nil, errors.New("MYSQL_DSN environment variable is required")
	}

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, nil, err
	}
	if err = db.Ping(); err != nil {
		db.Close()
		return nil, nil, err
	}

	tokenRepo := repository.NewAccessTokenRepository(db)
	tokenService := service.NewTokenService(tokenRepo)

	return tokenService, db, nil
}
