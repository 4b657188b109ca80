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

// NewTodosCommand creates the todos command group.
func NewTodosCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "todos",
		Aliases: []string{"todo"},
		Short:   "Manage to-dos",
		Long:    "List, create, complete, and reposition to-dos within a project",
	}

	cmd.AddCommand(newTodosListCommand())
	cmd.AddCommand(newTodosGetCommand())
	cmd.AddCommand(newTodosCreateCommand())
	cmd.AddCommand(newTodosCompleteCommand())
	cmd.AddCommand(newTodosUncompleteCommand())
	cmd.AddCommand(newTodosRepositionCommand())

	return cmd
}

func newTodosListCommand() *cobra.Command {
	var (
		projectID int64
		listID    int64
		completed bool
		maxPages  int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List to-dos in a list",
		RunE: func(cmd *cobra.Command, args []string) error {
			if projectID <= 0 {
				return ErrProjectIDRequired
			}

			if listID <= 0 {
				return ErrTodoListIDRequired
			}

			client, err := CreateClient(cmd.Context())
			if err != nil {
				return err
			}

			opts := &teamhub.TodoListFilterOptions{Completed: completed}
			opts.MaxPages = maxPages

			todos, err := client.Todos().List(cmd.Context(), projectID, listID, opts)
			if err != nil {
				return fmt.Errorf("failed to list todos: %w", err)
			}

			return outputTodos(todos)
		},
	}

	cmd.Flags().Int64Var(&projectID, "project", 0, "project ID")
	cmd.Flags().Int64Var(&listID, "list", 0, "todo list ID")
	cmd.Flags().BoolVar(&completed, "completed", false, "show completed to-dos instead of pending ones")
	cmd.Flags().IntVar(&maxPages, "max-pages", 0, "maximum pages to fetch (0 means the client default)")

	return cmd
}

func outputTodos(todos *teamhub.ListResult[teamhub.Todo]) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(todos.Items)
	case OutputFormatYAML:
		return StandardYAMLRenderer(todos.Items)
	default:
		table := tablewriter.NewWriter(os.Stdout)
		table.Header("ID", "Content", "Done", "Due", "Assignees")

		for _, todo := range todos.Items {
			done := ""
			if todo.Completed {
				done = "x"
			}

			due := NotAvailable
			if todo.DueOn != nil {
				due = *todo.DueOn
			}

			assignees := ""
			for i, person := range todo.Assignees {
				if i > 0 {
					assignees += ", "
				}

				assignees += person.Name
			}

			_ = table.Append(
				strconv.FormatInt(todo.ID, 10),
				todo.Content,
				done,
				due,
				assignees,
			)
		}

		if err := table.Render(); err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}

		fmt.Printf("Showing %d of %d to-dos%s\n",
			len(todos.Items), todos.TotalCount, formatTruncation(todos.Truncated))

		return nil
	}
}

func newTodosGetCommand() *cobra.Command {
	var projectID int64

	cmd := &cobra.Command{
		Use:   "get <todo-id>",
		Short: "Get to-do details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if projectID <= 0 {
				return ErrProjectIDRequired
			}

			todoID, err := parseID(args[0])
			if err != nil {
				return err
			}

			client, err := CreateClient(cmd.Context())
			if err != nil {
				return err
			}

			todo, err := client.Todos().Get(cmd.Context(), projectID, todoID)
			if err != nil {
				return fmt.Errorf("failed to get todo: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return StandardJSONRenderer(todo)
			case OutputFormatYAML:
				return StandardYAMLRenderer(todo)
			default:
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Property", "Value")
				_ = table.Append("ID", strconv.FormatInt(todo.ID, 10))
				_ = table.Append("Content", todo.Content)
				_ = table.Append("Completed", strconv.FormatBool(todo.Completed))
				_ = table.Append("Created", formatTime(todo.CreatedAt))
				_ = table.Append("Updated", formatTime(todo.UpdatedAt))

				if todo.DueOn != nil {
					_ = table.Append("Due", *todo.DueOn)
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

func newTodosCreateCommand() *cobra.Command {
	var (
		projectID   int64
		listID      int64
		description string
		dueOn       string
		assignees   []int64
		notify      bool
	)

	cmd := &cobra.Command{
		Use:   "create <content>",
		Short: "Create a to-do",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if projectID <= 0 {
				return ErrProjectIDRequired
			}

			if listID <= 0 {
				return ErrTodoListIDRequired
			}

			client, err := CreateClient(cmd.Context())
			if err != nil {
				return err
			}

			req := &teamhub.TodoCreateRequest{
				Content:     args[0],
				Description: description,
				AssigneeIDs: assignees,
				Notify:      notify,
			}
			if dueOn != "" {
				req.DueOn = &dueOn
			}

			todo, err := client.Todos().Create(cmd.Context(), projectID, listID, req)
			if err != nil {
				return fmt.Errorf("failed to create todo: %w", err)
			}

			fmt.Printf("Created to-do %d\n", todo.ID)

			return nil
		},
	}

	cmd.Flags().Int64Var(&projectID, "project", 0, "project ID")
	cmd.Flags().Int64Var(&listID, "list", 0, "todo list ID")
	cmd.Flags().StringVar(&description, "description", "", "to-do notes")
	cmd.Flags().StringVar(&dueOn, "due", "", "due date (YYYY-MM-DD)")
	cmd.Flags().Int64SliceVar(&assignees, "assign", nil, "person IDs to assign")
	cmd.Flags().BoolVar(&notify, "notify", false, "notify assignees")

	return cmd
}

func newTodosCompleteCommand() *cobra.Command {
	var projectID int64

	cmd := &cobra.Command{
		Use:   "complete <todo-id>",
		Short: "Mark a to-do complete",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if projectID <= 0 {
				return ErrProjectIDRequired
			}

			todoID, err := parseID(args[0])
			if err != nil {
				return err
			}

			client, err := CreateClient(cmd.Context())
			if err != nil {
				return err
			}

			err = client.Todos().Complete(cmd.Context(), projectID, todoID)
			if err != nil {
				return fmt.Errorf("failed to complete todo: %w", err)
			}

			fmt.Printf("Completed to-do %d\n", todoID)

			return nil
		},
	}

	cmd.Flags().Int64Var(&projectID, "project", 0, "project ID")

	return cmd
}

func newTodosUncompleteCommand() *cobra.Command {
	var projectID int64

	cmd := &cobra.Command{
		Use:   "uncomplete <todo-id>",
		Short: "Mark a to-do as not complete",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if projectID <= 0 {
				return ErrProjectIDRequired
			}

			todoID, err := parseID(args[0])
			if err != nil {
				return err
			}

			client, err := CreateClient(cmd.Context())
			if err != nil {
				return err
			}

			err = client.Todos().Uncomplete(cmd.Context(), projectID, todoID)
			if err != nil {
				return fmt.Errorf("failed to uncomplete todo: %w", err)
			}

			fmt.Printf("Reopened to-do %d\n", todoID)

			return nil
		},
	}

	cmd.Flags().Int64Var(&projectID, "project", 0, "project ID")

	return cmd
}

func newTodosRepositionCommand() *cobra.Command {
	var projectID int64

	cmd := &cobra.Command{
		Use:   "reposition <todo-id> <position>",
		Short: "Move a to-do within its list",
		Long:  "Move a to-do to a new 1-based position within its list",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if projectID <= 0 {
				return ErrProjectIDRequired
			}

			todoID, err := parseID(args[0])
			if err != nil {
				return err
			}

			position, err := strconv.Atoi(args[1])
			if err != nil || position < 1 {
				return fmt.Errorf("%w: position %q", ErrInvalidID, args[1])
			}

			client, err := CreateClient(cmd.Context())
			if err != nil {
				return err
			}

			err = client.Todos().Reposition(cmd.Context(), projectID, todoID, position)
			if err != nil {
				return fmt.Errorf("failed to reposition todo: %w", err)
			}

			fmt.Printf("Moved to-do %d to position %d\n", todoID, position)

			return nil
		},
	}

	cmd.Flags().Int64Var(&projectID, "project", 0, "project ID")

	return cmd
}
