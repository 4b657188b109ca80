package commands

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/teamhub-io/teamhub-client/pkg/teamhub"
	"github.com/teamhub-io/teamhub-client/pkg/teamhubclient"
)

// NewLoginCommand creates the login command
func NewLoginCommand() *cobra.Command {
	var (
		apiEndpoint  string
		accountID    int64
		token        string
		refreshToken string
		clientID     string
		clientSecret string
		username     string
		password     string
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Login to Teamhub",
		Long:  "Authenticate with a Teamhub API endpoint and persist the credentials",
		RunE: func(cmd *cobra.Command, args []string) error {
			reader := bufio.NewReader(os.Stdin)

			if apiEndpoint == "" {
				apiEndpoint = viper.GetString("api")
			}

			if apiEndpoint == "" {
				fmt.Print("API endpoint: ")
				apiEndpoint, _ = reader.ReadString('\n')
				apiEndpoint = strings.TrimSpace(apiEndpoint)
			}

			if apiEndpoint == "" {
				return ErrAPIEndpointRequired
			}

			if accountID == 0 {
				accountID = viper.GetInt64("account")
			}

			if accountID <= 0 {
				return ErrAccountRequired
			}

			config := &teamhub.Config{
				APIEndpoint: apiEndpoint,
				AccountID:   accountID,
			}

			switch {
			case token != "":
				config.AccessToken = token
				config.RefreshToken = refreshToken
				config.ClientID = clientID
				config.ClientSecret = clientSecret
			case clientID != "" && clientSecret != "":
				config.ClientID = clientID
				config.ClientSecret = clientSecret
			default:
				if username == "" {
					fmt.Print("Username: ")
					username, _ = reader.ReadString('\n')
					username = strings.TrimSpace(username)
				}

				if password == "" {
					fmt.Print("Password: ")

					bytePassword, err := term.ReadPassword(int(syscall.Stdin))
					if err != nil {
						return fmt.Errorf("failed to read password: %w", err)
					}

					password = string(bytePassword)

					fmt.Println()
				}

				config.Username = username
				config.Password = password
			}

			client, err := teamhubclient.New(context.Background(), config)
			if err != nil {
				return fmt.Errorf("failed to create client: %w", err)
			}

			// Test the credentials by fetching the caller's profile
			ctx := context.Background()

			me, err := client.People().Me(ctx)
			if err != nil {
				return fmt.Errorf("failed to connect to API: %w", err)
			}

			// Persist the working credentials. The password itself is never
			// written to disk; a refreshable token takes its place.
			cliConfig := loadCLIConfig()
			cliConfig.API = config.APIEndpoint
			cliConfig.Account = accountID
			cliConfig.Token = config.AccessToken
			cliConfig.RefreshToken = config.RefreshToken
			cliConfig.ClientID = clientID
			cliConfig.ClientSecret = clientSecret
			cliConfig.Username = username

			if accessToken, err := client.AccessToken(ctx); err == nil {
				cliConfig.Token = accessToken
			}

			err = saveCLIConfig(cliConfig)
			if err != nil {
				return fmt.Errorf("saving credentials: %w", err)
			}

			fmt.Printf("Logged in to %s as %s\n", config.APIEndpoint, me.Name)

			return nil
		},
	}

	cmd.Flags().StringVar(&apiEndpoint, "api-endpoint", "", "API endpoint URL")
	cmd.Flags().Int64Var(&accountID, "account-id", 0, "account ID")
	cmd.Flags().StringVar(&token, "access-token", "", "access token")
	cmd.Flags().StringVar(&refreshToken, "refresh-token", "", "refresh token")
	cmd.Flags().StringVar(&clientID, "client-id", "", "OAuth2 client ID")
	cmd.Flags().StringVar(&clientSecret, "client-secret", "", "OAuth2 client secret")
	cmd.Flags().StringVarP(&username, "username", "u", "", "username")
	cmd.Flags().StringVarP(&password, "password", "p", "", "password (prompted if not provided)")

	return cmd
}

// NewLogoutCommand creates the logout command
func NewLogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Logout from Teamhub",
		Long:  "Remove stored credentials for the configured API endpoint",
		RunE: func(cmd *cobra.Command, args []string) error {
			cliConfig := loadCLIConfig()
			cliConfig.Token = ""
			cliConfig.RefreshToken = ""
			cliConfig.ClientSecret = ""

			err := saveCLIConfig(cliConfig)
			if err != nil {
				return fmt.Errorf("clearing credentials: %w", err)
			}

			fmt.Println("Logged out")

			return nil
		},
	}
}
