package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "Manage user accounts",
}

var usersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List accounts in creation order",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		users, err := a.auth.Users(cmd.Context())
		if err != nil {
			return err
		}
		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "USERNAME\tROLE")
		for _, u := range users {
			fmt.Fprintf(tw, "%s\t%s\n", u.Username, u.Role)
		}
		return tw.Flush()
	},
}

var usersCreateCmd = &cobra.Command{
	Use:   "create USERNAME PASSWORD",
	Short: "Create a regular user",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		u, err := a.auth.CreateUser(cmd.Context(), args[0], args[1])
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "created %s (%s)\n", u.Username, u.Role)
		return nil
	},
}

var usersRmCmd = &cobra.Command{
	Use:   "rm USERNAME",
	Short: "Delete a user; the admin account is kept",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		return a.auth.DeleteUser(cmd.Context(), args[0])
	},
}

func init() {
	usersCmd.AddCommand(usersListCmd, usersCreateCmd, usersRmCmd)
}
