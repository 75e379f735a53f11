package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"task-manager/backend/client"
)

func newProjectsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{Use: "projects", Short: "Manage projects"}
	cmd.AddCommand(newProjectsListCmd(a), newProjectsCreateCmd(a), newProjectsUpdateCmd(a), newProjectsDeleteCmd(a))
	return cmd
}

func newProjectsListCmd(a *app) *cobra.Command {
	var page, limit int
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List projects with their team members",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := a.api().ListProjects(cmd.Context(), page, limit)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			tw := newTable(out, "ID", "NAME", "DESCRIPTION", "MEMBERS")
			for _, p := range res.Projects {
				row(tw, p.ID.Hex(), p.Name, p.Description, memberNames(p.TeamMembers))
			}
			if err := tw.Flush(); err != nil {
				return err
			}
			pageFooter(out, res.Page, res.Pages)
			return nil
		},
	}
	cmd.Flags().IntVar(&page, "page", 1, "page number")
	cmd.Flags().IntVar(&limit, "limit", 10, "items per page")
	return cmd
}

func newProjectsCreateCmd(a *app) *cobra.Command {
	var req client.ProjectRequest
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a project",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			project, err := a.api().CreateProject(cmd.Context(), req)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Project created: %s\n", project.ID.Hex())
			return nil
		},
	}
	cmd.Flags().StringVar(&req.Name, "name", "", "project name")
	cmd.Flags().StringVar(&req.Description, "description", "", "project description")
	cmd.Flags().StringSliceVar(&req.TeamMembers, "members", nil, "team member ids")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func newProjectsUpdateCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Change the supplied fields of a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			patch := client.ProjectPatch{
				Name:        stringFlag(cmd, "name"),
				Description: stringFlag(cmd, "description"),
				TeamMembers: sliceFlag(cmd, "members"),
			}
			project, err := a.api().UpdateProject(cmd.Context(), args[0], patch)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Project updated: %s\n", project.ID.Hex())
			return nil
		},
	}
	cmd.Flags().String("name", "", "project name")
	cmd.Flags().String("description", "", "project description")
	cmd.Flags().StringSlice("members", nil, "team member ids, replaces the current list")
	return cmd
}

func newProjectsDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Remove a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			msg, err := a.api().DeleteProject(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), msg)
			return nil
		},
	}
}
