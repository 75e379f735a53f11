package main

import (
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"task-manager/backend/client"
)

const defaultAPI = "http://localhost:5000/api"

type app struct {
	v *viper.Viper
}

// api builds a client from --api/--token, falling back to TASKCTL_API and
// TASKCTL_TOKEN.
func (a *app) api() *client.Client {
	return client.New(a.v.GetString("api"), client.WithToken(a.v.GetString("token")))
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("TASKCTL")
	v.AutomaticEnv()

	root := &cobra.Command{
		Use:           "taskctl",
		Short:         "Manage team members, projects and tasks",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(out)
	root.SetErr(errOut)

	flags := root.PersistentFlags()
	flags.String("api", defaultAPI, "API base URL (env TASKCTL_API)")
	flags.String("token", "", "bearer token (env TASKCTL_TOKEN)")
	_ = v.BindPFlag("api", flags.Lookup("api"))
	_ = v.BindPFlag("token", flags.Lookup("token"))

	a := &app{v: v}
	root.AddCommand(
		newLoginCmd(a),
		newRegisterCmd(a),
		newTeamsCmd(a),
		newProjectsCmd(a),
		newTasksCmd(a),
	)
	return root
}

// stringFlag returns a pointer to the flag value when it was set explicitly.
func stringFlag(cmd *cobra.Command, name string) *string {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	value, _ := cmd.Flags().GetString(name)
	return &value
}

func sliceFlag(cmd *cobra.Command, name string) *[]string {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	values, _ := cmd.Flags().GetStringSlice(name)
	return &values
}
