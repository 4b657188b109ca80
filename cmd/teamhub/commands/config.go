package commands

import (
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/teamhub-io/teamhub-client/internal/constants"
)

// NewConfigCommand creates the config command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "Manage Teamhub CLI configuration including endpoint, account and output settings",
	}

	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigSetCommand())
	cmd.AddCommand(newConfigUnsetCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Long:  "Display the current CLI configuration with secrets masked",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadCLIConfig()

			masked := *config
			if masked.Token != "" {
				masked.Token = constants.MaskedSecret
			}

			if masked.RefreshToken != "" {
				masked.RefreshToken = constants.MaskedSecret
			}

			if masked.ClientSecret != "" {
				masked.ClientSecret = constants.MaskedSecret
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return StandardJSONRenderer(masked)
			case OutputFormatYAML:
				return StandardYAMLRenderer(masked)
			default:
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Key", "Value")
				_ = table.Append("api", orNotAvailable(masked.API))
				_ = table.Append("account", formatAccount(masked.Account))
				_ = table.Append("token", orNotAvailable(masked.Token))
				_ = table.Append("refresh_token", orNotAvailable(masked.RefreshToken))
				_ = table.Append("client_id", orNotAvailable(masked.ClientID))
				_ = table.Append("client_secret", orNotAvailable(masked.ClientSecret))
				_ = table.Append("username", orNotAvailable(masked.Username))
				_ = table.Append("output", orNotAvailable(masked.Output))

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}

				return nil
			}
		},
	}
}

func newConfigSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Long:  "Set a configuration value and persist it to the config file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadCLIConfig()

			err := applyConfigValue(config, args[0], args[1])
			if err != nil {
				return err
			}

			err = saveCLIConfig(config)
			if err != nil {
				return err
			}

			fmt.Printf("Set %s\n", args[0])

			return nil
		},
	}
}

func newConfigUnsetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "unset <key>",
		Short: "Unset a configuration value",
		Long:  "Remove a configuration value from the config file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadCLIConfig()

			err := applyConfigValue(config, args[0], "")
			if err != nil {
				return err
			}

			err = saveCLIConfig(config)
			if err != nil {
				return err
			}

			fmt.Printf("Unset %s\n", args[0])

			return nil
		},
	}
}

func applyConfigValue(config *CLIConfig, key, value string) error {
	switch key {
	case "api":
		config.API = value
	case "account":
		if value == "" {
			config.Account = 0

			return nil
		}

		account, err := strconv.ParseInt(value, 10, 64)
		if err != nil || account <= 0 {
			return fmt.Errorf("%w: %q", constants.ErrInvalidAccountID, value)
		}

		config.Account = account
	case "token":
		config.Token = value
	case "refresh_token":
		config.RefreshToken = value
	case "client_id":
		config.ClientID = value
	case "client_secret":
		config.ClientSecret = value
	case "username":
		config.Username = value
	case "output":
		config.Output = value
	default:
		return fmt.Errorf("%w: %q", ErrConfigKeyUnknown, key)
	}

	return nil
}

func orNotAvailable(value string) string {
	if value == "" {
		return NotAvailable
	}

	return value
}

func formatAccount(account int64) string {
	if account <= 0 {
		return NotAvailable
	}

	return strconv.FormatInt(account, 10)
}
