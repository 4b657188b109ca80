package commands

import (
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/teamhub-io/teamhub-client/pkg/teamhub"
)

// NewProjectsCommand creates the projects command group.
func NewProjectsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "projects",
		Aliases: []string{"project"},
		Short:   "Manage projects",
		Long:    "List, create, update, and trash Teamhub projects",
	}

	cmd.AddCommand(newProjectsListCommand())
	cmd.AddCommand(newProjectsGetCommand())
	cmd.AddCommand(newProjectsCreateCommand())
	cmd.AddCommand(newProjectsUpdateCommand())
	cmd.AddCommand(newProjectsTrashCommand())

	return cmd
}

func newProjectsListCommand() *cobra.Command {
	var (
		status   string
		maxPages int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List projects",
		Long:  "List all active projects in the account",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd.Context())
			if err != nil {
				return err
			}

			opts := &teamhub.ProjectListOptions{Status: status}
			opts.MaxPages = maxPages

			projects, err := client.Projects().List(cmd.Context(), opts)
			if err != nil {
				return fmt.Errorf("failed to list projects: %w", err)
			}

			return outputProjects(projects)
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "filter by status (archived, trashed)")
	cmd.Flags().IntVar(&maxPages, "max-pages", 0, "maximum pages to fetch (0 means the client default)")

	return cmd
}

func outputProjects(projects *teamhub.ListResult[teamhub.Project]) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(projects.Items)
	case OutputFormatYAML:
		return StandardYAMLRenderer(projects.Items)
	default:
		table := tablewriter.NewWriter(os.Stdout)
		table.Header("ID", "Name", "Status", "Created", "Description")

		for _, project := range projects.Items {
			_ = table.Append(
				strconv.FormatInt(project.ID, 10),
				project.Name,
				project.Status,
				formatTime(project.CreatedAt),
				project.Description,
			)
		}

		if err := table.Render(); err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}

		fmt.Printf("Showing %d of %d projects%s\n",
			len(projects.Items), projects.TotalCount, formatTruncation(projects.Truncated))

		return nil
	}
}

func newProjectsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <project-id>",
		Short: "Get project details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			projectID, err := parseID(args[0])
			if err != nil {
				return err
			}

			client, err := CreateClient(cmd.Context())
			if err != nil {
				return err
			}

			project, err := client.Projects().Get(cmd.Context(), projectID)
			if err != nil {
				return fmt.Errorf("failed to get project: %w", err)
			}

			return outputProject(project)
		},
	}
}

func outputProject(project *teamhub.Project) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(project)
	case OutputFormatYAML:
		return StandardYAMLRenderer(project)
	default:
		table := tablewriter.NewWriter(os.Stdout)
		table.Header("Property", "Value")
		_ = table.Append("ID", strconv.FormatInt(project.ID, 10))
		_ = table.Append("Name", project.Name)
		_ = table.Append("Status", project.Status)
		_ = table.Append("Description", project.Description)
		_ = table.Append("Created", formatTime(project.CreatedAt))
		_ = table.Append("Updated", formatTime(project.UpdatedAt))
		_ = table.Append("URL", project.AppURL)

		for _, dock := range project.Dock {
			if dock.Enabled {
				_ = table.Append("Tool: "+dock.Name, strconv.FormatInt(dock.ID, 10))
			}
		}

		if err := table.Render(); err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}

		return nil
	}
}

func newProjectsCreateCommand() *cobra.Command {
	var description string

	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd.Context())
			if err != nil {
				return err
			}

			project, err := client.Projects().Create(cmd.Context(), &teamhub.ProjectCreateRequest{
				Name:        args[0],
				Description: description,
			})
			if err != nil {
				return fmt.Errorf("failed to create project: %w", err)
			}

			fmt.Printf("Created project %s (ID: %d)\n", project.Name, project.ID)

			return nil
		},
	}

	cmd.Flags().StringVar(&description, "description", "", "project description")

	return cmd
}

func newProjectsUpdateCommand() *cobra.Command {
	var (
		name        string
		description string
	)

	cmd := &cobra.Command{
		Use:   "update <project-id>",
		Short: "Update a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			projectID, err := parseID(args[0])
			if err != nil {
				return err
			}

			client, err := CreateClient(cmd.Context())
			if err != nil {
				return err
			}

			req := &teamhub.ProjectUpdateRequest{}
			if cmd.Flags().Changed("name") {
				req.Name = &name
			}

			if cmd.Flags().Changed("description") {
				req.Description = &description
			}

			project, err := client.Projects().Update(cmd.Context(), projectID, req)
			if err != nil {
				return fmt.Errorf("failed to update project: %w", err)
			}

			fmt.Printf("Updated project %s\n", project.Name)

			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "new project name")
	cmd.Flags().StringVar(&description, "description", "", "new project description")

	return cmd
}

func newProjectsTrashCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "trash <project-id>",
		Short: "Move a project to the trash",
		Long:  "Move a project to the trash; trashed projects are purged after 30 days",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			projectID, err := parseID(args[0])
			if err != nil {
				return err
			}

			if !force {
				fmt.Printf("Really trash project %d? (y/N): ", projectID)

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

			err = client.Projects().Trash(cmd.Context(), projectID)
			if err != nil {
				return fmt.Errorf("failed to trash project: %w", err)
			}

			fmt.Printf("Trashed project %d\n", projectID)

			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "skip confirmation")

	return cmd
}
