package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var outputFormat string

var submissionsCmd = &cobra.Command{
	Use:   "submissions",
	Short: "Inspect stored submissions",
}

var submissionsListCmd = &cobra.Command{
	Use:   "list",
	Short: "Print every submission, most recent first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		subs, err := a.submissions.Submissions(cmd.Context())
		if err != nil {
			return err
		}
		return writeOutput(cmd.OutOrStdout(), outputFormat, subs)
	},
}

// writeOutput renders v as indented JSON or YAML. YAML goes through the JSON
// encoding first so field names match the API.
func writeOutput(w io.Writer, format string, v any) error {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	switch format {
	case "json":
		_, err = fmt.Fprintln(w, string(raw))
		return err
	case "yaml":
		var generic any
		if err := json.Unmarshal(raw, &generic); err != nil {
			return err
		}
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(generic); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown output format %q (want json or yaml)", format)
	}
}

func init() {
	submissionsListCmd.Flags().StringVarP(&outputFormat, "output", "o", "json", "output format: json or yaml")
	submissionsCmd.AddCommand(submissionsListCmd)
}
