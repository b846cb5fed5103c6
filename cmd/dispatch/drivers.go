package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var driversCmd = &cobra.Command{
	Use:   "drivers",
	Short: "Manage the driver roster",
}

var driversListCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the roster, one name per line",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		drivers, err := a.drivers.Drivers(cmd.Context())
		if err != nil {
			return err
		}
		for _, d := range drivers {
			fmt.Fprintln(cmd.OutOrStdout(), d)
		}
		return nil
	},
}

var driversAddCmd = &cobra.Command{
	Use:   "add NAME",
	Short: "Add a driver to the roster",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		drivers, err := a.drivers.AddDriver(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "added %q (%d drivers)\n", args[0], len(drivers))
		return nil
	},
}

var driversRmCmd = &cobra.Command{
	Use:   "rm NAME",
	Short: "Remove a driver by exact name",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		drivers, err := a.drivers.DeleteDriver(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%d drivers\n", len(drivers))
		return nil
	},
}

func init() {
	driversCmd.AddCommand(driversListCmd, driversAddCmd, driversRmCmd)
}
