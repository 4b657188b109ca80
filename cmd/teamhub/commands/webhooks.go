package commands

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/teamhub-io/teamhub-client/pkg/teamhub"
)

// NewWebhooksCommand creates the webhooks command group.
func NewWebhooksCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "webhooks",
		Aliases: []string{"webhook"},
		Short:   "Manage webhooks",
		Long:    "List, create, and delete webhook subscriptions in a project",
	}

	cmd.AddCommand(newWebhooksListCommand())
	cmd.AddCommand(newWebhooksCreateCommand())
	cmd.AddCommand(newWebhooksDeleteCommand())

	return cmd
}

func newWebhooksListCommand() *cobra.Command {
	var projectID int64

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List webhooks in a project",
		RunE: func(cmd *cobra.Command, args []string) error {
			if projectID <= 0 {
				return ErrProjectIDRequired
			}

			client, err := CreateClient(cmd.Context())
			if err != nil {
				return err
			}

			webhooks, err := client.Webhooks().List(cmd.Context(), projectID)
			if err != nil {
				return fmt.Errorf("failed to list webhooks: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return StandardJSONRenderer(webhooks.Items)
			case OutputFormatYAML:
				return StandardYAMLRenderer(webhooks.Items)
			default:
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("ID", "Payload URL", "Active", "Types")

				for _, webhook := range webhooks.Items {
					types := "all"
					if len(webhook.Types) > 0 {
						types = strings.Join(webhook.Types, ", ")
					}

					_ = table.Append(
						strconv.FormatInt(webhook.ID, 10),
						webhook.PayloadURL,
						strconv.FormatBool(webhook.Active),
						types,
					)
				}

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}

				return nil
			}
		},
	}

	cmd.Flags().Int64Var(&projectID, "project", 0, "project ID")

	return cmd
}

func newWebhooksCreateCommand() *cobra.Command {
	var (
		projectID int64
		types     []string
	)

	cmd := &cobra.Command{
		Use:   "create <payload-url>",
		Short: "Create a webhook",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if projectID <= 0 {
				return ErrProjectIDRequired
			}

			client, err := CreateClient(cmd.Context())
			if err != nil {
				return err
			}

			webhook, err := client.Webhooks().Create(cmd.Context(), projectID, &teamhub.WebhookCreateRequest{
				PayloadURL: args[0],
				Types:      types,
			})
			if err != nil {
				return fmt.Errorf("failed to create webhook: %w", err)
			}

			fmt.Printf("Created webhook %d for %s\n", webhook.ID, webhook.PayloadURL)

			return nil
		},
	}

	cmd.Flags().Int64Var(&projectID, "project", 0, "project ID")
	cmd.Flags().StringSliceVar(&types, "types", nil, "recording types to deliver (default all)")

	return cmd
}

func newWebhooksDeleteCommand() *cobra.Command {
	var (
		projectID int64
		force     bool
	)

	cmd := &cobra.Command{
		Use:   "delete <webhook-id>",
		Short: "Delete a webhook",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if projectID <= 0 {
				return ErrProjectIDRequired
			}

			webhookID, err := parseID(args[0])
			if err != nil {
				return err
			}

			if !force {
				fmt.Printf("Really delete webhook %d? (y/N): ", webhookID)

				var response string

				_, _ = fmt.Scanln(&response)

				if response != "y" && response != "Y" {
					fmt.Println("Cancelled")

					return nil
				}
			}

			client, err := CreateClient(cmd.Context())
			if err != nil {
				return err
			}

			err = client.Webhooks().Delete(cmd.Context(), projectID, webhookID)
			if err != nil {
				return fmt.Errorf("failed to delete webhook: %w", err)
			}

			fmt.Printf("Deleted webhook %d\n", webhookID)

			return nil
		},
	}

	cmd.Flags().Int64Var(&projectID, "project", 0, "project ID")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "skip confirmation")

	return cmd
}
