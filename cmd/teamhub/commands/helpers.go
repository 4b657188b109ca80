package commands

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/teamhub-io/teamhub-client/internal/constants"
	"github.com/teamhub-io/teamhub-client/pkg/teamhub"
	"github.com/teamhub-io/teamhub-client/pkg/teamhubclient"
)

// Common string constants used throughout the commands package.
const (
	NotAvailable = "N/A"

	// Output formats.
	OutputFormatJSON = "json"
	OutputFormatYAML = "yaml"

	// JSON formatting.
	defaultYAMLIndent = 2
)

// Common static errors used throughout the commands package.
var (
	ErrAPIEndpointRequired = errors.New("API endpoint is required (use --api or 'teamhub login')")
	ErrAccountRequired     = errors.New("account ID is required (use --account or 'teamhub login')")
	ErrNotLoggedIn         = errors.New("not logged in (use 'teamhub login')")
	ErrProjectIDRequired   = errors.New("project ID is required")
	ErrTodoListIDRequired  = errors.New("todo list ID is required")
	ErrInvalidID           = errors.New("identifier must be a positive integer")
	ErrConfigKeyUnknown    = errors.New("unknown configuration key")
)

// CLIConfig represents the persisted CLI configuration.
type CLIConfig struct {
	API          string `json:"api,omitempty"           yaml:"api,omitempty"`
	Account      int64  `json:"account,omitempty"       yaml:"account,omitempty"`
	Token        string `json:"token,omitempty"         yaml:"token,omitempty"`
	RefreshToken string `json:"refresh_token,omitempty" yaml:"refresh_token,omitempty"`
	ClientID     string `json:"client_id,omitempty"     yaml:"client_id,omitempty"`
	ClientSecret string `json:"client_secret,omitempty" yaml:"client_secret,omitempty"`
	Username     string `json:"username,omitempty"      yaml:"username,omitempty"`
	Output       string `json:"output,omitempty"        yaml:"output,omitempty"`
}

// loadCLIConfig builds the effective configuration from viper.
func loadCLIConfig() *CLIConfig {
	return &CLIConfig{
		API:          viper.GetString("api"),
		Account:      viper.GetInt64("account"),
		Token:        viper.GetString("token"),
		RefreshToken: viper.GetString("refresh_token"),
		ClientID:     viper.GetString("client_id"),
		ClientSecret: viper.GetString("client_secret"),
		Username:     viper.GetString("username"),
		Output:       viper.GetString("output"),
	}
}

// configFilePath returns the path of the config file to write.
func configFilePath() (string, error) {
	if used := viper.ConfigFileUsed(); used != "" {
		return used, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}

	configDir := filepath.Join(home, ".teamhub")

	err = os.MkdirAll(configDir, constants.ConfigDirPerm)
	if err != nil {
		return "", fmt.Errorf("creating config directory: %w", err)
	}

	return filepath.Join(configDir, "config.yml"), nil
}

// saveCLIConfig writes the configuration to the config file.
func saveCLIConfig(config *CLIConfig) error {
	path, err := configFilePath()
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	err = os.WriteFile(path, data, constants.ConfigFilePerm)
	if err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// CreateClient creates a Teamhub client from the effective configuration.
func CreateClient(ctx context.Context) (teamhub.Client, error) {
	config := loadCLIConfig()

	if config.API == "" {
		return nil, ErrAPIEndpointRequired
	}

	if config.Account <= 0 {
		return nil, ErrAccountRequired
	}

	if config.Token == "" && config.RefreshToken == "" && config.Username == "" {
		return nil, ErrNotLoggedIn
	}

	client, err := teamhubclient.New(ctx, &teamhub.Config{
		APIEndpoint:  config.API,
		AccountID:    config.Account,
		AccessToken:  config.Token,
		RefreshToken: config.RefreshToken,
		ClientID:     config.ClientID,
		ClientSecret: config.ClientSecret,
		Username:     config.Username,
		Debug:        viper.GetBool("verbose"),
	})
	if err != nil {
		return nil, fmt.Errorf("creating client: %w", err)
	}

	return client, nil
}

// parseID parses a positive int64 identifier from a command argument.
func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidID, arg)
	}

	return id, nil
}

// StandardJSONRenderer encodes data as indented JSON on stdout.
func StandardJSONRenderer[T any](data T) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")

	err := encoder.Encode(data)
	if err != nil {
		return fmt.Errorf("encoding data to JSON: %w", err)
	}

	return nil
}

// StandardYAMLRenderer encodes data as YAML on stdout.
func StandardYAMLRenderer[T any](data T) error {
	encoder := yaml.NewEncoder(os.Stdout)
	encoder.SetIndent(defaultYAMLIndent)

	err := encoder.Encode(data)
	if err != nil {
		return fmt.Errorf("encoding data to YAML: %w", err)
	}

	return nil
}

// formatTime renders a timestamp for table output.
func formatTime(ts time.Time) string {
	if ts.IsZero() {
		return NotAvailable
	}

	return ts.Local().Format("2006-01-02 15:04")
}

// formatTruncation annotates a table footer when results were truncated.
func formatTruncation(result bool) string {
	if result {
		return " (truncated; raise --max-pages to fetch more)"
	}

	return ""
}
