package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"task-manager/backend/client"
)

func newTeamsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{Use: "teams", Short: "Manage team members"}
	cmd.AddCommand(newTeamsListCmd(a), newTeamsCreateCmd(a), newTeamsUpdateCmd(a), newTeamsDeleteCmd(a))
	return cmd
}

func newTeamsListCmd(a *app) *cobra.Command {
	var page, limit int
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List team members",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := a.api().ListTeams(cmd.Context(), page, limit)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			tw := newTable(out, "ID", "NAME", "EMAIL", "DESIGNATION")
			for _, t := range res.Teams {
				row(tw, t.ID.Hex(), t.Name, t.Email, t.Designation)
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

func newTeamsCreateCmd(a *app) *cobra.Command {
	var req client.TeamRequest
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Add a team member",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			team, err := a.api().CreateTeam(cmd.Context(), req)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Team member created: %s\n", team.ID.Hex())
			return nil
		},
	}
	cmd.Flags().StringVar(&req.Name, "name", "", "member name")
	cmd.Flags().StringVar(&req.Email, "email", "", "member email")
	cmd.Flags().StringVar(&req.Designation, "designation", "", "member designation")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("designation")
	return cmd
}

func newTeamsUpdateCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Change the supplied fields of a team member",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			patch := client.TeamPatch{
				Name:        stringFlag(cmd, "name"),
				Email:       stringFlag(cmd, "email"),
				Designation: stringFlag(cmd, "designation"),
			}
			team, err := a.api().UpdateTeam(cmd.Context(), args[0], patch)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Team member updated: %s\n", team.ID.Hex())
			return nil
		},
	}
	cmd.Flags().String("name", "", "member name")
	cmd.Flags().String("email", "", "member email")
	cmd.Flags().String("designation", "", "member designation")
	return cmd
}

func newTeamsDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Remove a team member",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			msg, err := a.api().DeleteTeam(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), msg)
			return nil
		},
	}
}
