package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"task-manager/backend/client"
)

func newTasksCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{Use: "tasks", Short: "Manage tasks"}
	cmd.AddCommand(
		newTasksListCmd(a),
		newTasksSuggestCmd(a),
		newTasksCreateCmd(a),
		newTasksUpdateCmd(a),
		newTasksDeleteCmd(a),
	)
	return cmd
}

func newTasksListCmd(a *app) *cobra.Command {
	var (
		filter      client.TaskFilter
		page, limit int
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks, optionally filtered",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := a.api().ListTasks(cmd.Context(), filter, page, limit)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			tw := newTable(out, "ID", "TITLE", "STATUS", "DEADLINE", "PROJECT", "ASSIGNEES")
			for _, t := range res.Tasks {
				project := "-"
				if t.Project != nil {
					project = t.Project.Name
				}
				row(tw, t.ID.Hex(), t.Title, string(t.Status), formatDate(t.Deadline), project, memberNames(t.AssignedMembers))
			}
			if err := tw.Flush(); err != nil {
				return err
			}
			pageFooter(out, res.Page, res.Pages)
			return nil
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&filter.Project, "project", "", "project id")
	flags.StringVar(&filter.Status, "status", "", "to-do, in-progress, done or cancelled")
	flags.StringVar(&filter.AssignedMember, "member", "", "assigned team member id")
	flags.StringVar(&filter.Search, "search", "", "text in title or description")
	flags.StringVar(&filter.StartDate, "from", "", "deadline range start (needs --to)")
	flags.StringVar(&filter.EndDate, "to", "", "deadline range end (needs --from)")
	flags.IntVar(&page, "page", 1, "page number")
	flags.IntVar(&limit, "limit", 10, "items per page")
	return cmd
}

func newTasksSuggestCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "suggest <prefix>",
		Short: "Suggest task titles starting with prefix",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			titles, err := a.api().TaskSuggestions(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			for _, title := range titles {
				fmt.Fprintln(cmd.OutOrStdout(), title)
			}
			return nil
		},
	}
}

func newTasksCreateCmd(a *app) *cobra.Command {
	var req client.TaskRequest
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a task",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			task, err := a.api().CreateTask(cmd.Context(), req)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Task created: %s\n", task.ID.Hex())
			return nil
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&req.Title, "title", "", "task title")
	flags.StringVar(&req.Description, "description", "", "task description")
	flags.StringVar(&req.Deadline, "deadline", "", "deadline, YYYY-MM-DD or RFC 3339")
	flags.StringVar(&req.Project, "project", "", "project id")
	flags.StringSliceVar(&req.AssignedMembers, "members", nil, "assigned team member ids")
	flags.StringVar(&req.Status, "status", "", "initial status, defaults to to-do")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("deadline")
	_ = cmd.MarkFlagRequired("project")
	return cmd
}

func newTasksUpdateCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Change the supplied fields of a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			patch := client.TaskPatch{
				Title:           stringFlag(cmd, "title"),
				Description:     stringFlag(cmd, "description"),
				Deadline:        stringFlag(cmd, "deadline"),
				Project:         stringFlag(cmd, "project"),
				AssignedMembers: sliceFlag(cmd, "members"),
				Status:          stringFlag(cmd, "status"),
			}
			task, err := a.api().UpdateTask(cmd.Context(), args[0], patch)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Task updated: %s (%s)\n", task.ID.Hex(), task.Status)
			return nil
		},
	}
	flags := cmd.Flags()
	flags.String("title", "", "task title")
	flags.String("description", "", "task description")
	flags.String("deadline", "", "deadline, YYYY-MM-DD or RFC 3339")
	flags.String("project", "", "project id")
	flags.StringSlice("members", nil, "assigned team member ids, replaces the current list")
	flags.String("status", "", "to-do, in-progress, done or cancelled")
	return cmd
}

func newTasksDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Remove a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			msg, err := a.api().DeleteTask(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), msg)
			return nil
		},
	}
}
