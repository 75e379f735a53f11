package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"task-manager/backend/client"
)

func newLoginCmd(a *app) *cobra.Command {
	var req client.LoginRequest
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and print a bearer token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := a.api().Login(cmd.Context(), req)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s <%s>\n", res.User.Name, res.User.Email)
			fmt.Fprintf(cmd.OutOrStdout(), "export TASKCTL_TOKEN=%s\n", res.Token)
			return nil
		},
	}
	cmd.Flags().StringVar(&req.Email, "email", "", "account email")
	cmd.Flags().StringVar(&req.Password, "password", "", "account password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func newRegisterCmd(a *app) *cobra.Command {
	var req client.RegisterRequest
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account and print a bearer token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := a.api().Register(cmd.Context(), req)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Registered %s <%s>\n", res.User.Name, res.User.Email)
			fmt.Fprintf(cmd.OutOrStdout(), "export TASKCTL_TOKEN=%s\n", res.Token)
			return nil
		},
	}
	cmd.Flags().StringVar(&req.Name, "name", "", "display name")
	cmd.Flags().StringVar(&req.Email, "email", "", "account email")
	cmd.Flags().StringVar(&req.Password, "password", "", "account password")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}
