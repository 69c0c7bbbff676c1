package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"wordnet/internal/application/commands"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check that the hypernym graph is a rooted DAG",
	Long: `Load the taxonomy and report its size, its roots and whether the
hypernym graph is acyclic with a single root. Exits with status 1 when it
is not.

Example:
  wordnet-cli validate --synsets synsets.txt --hypernyms hypernyms.txt`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := GetApp().Context(cmd.Context())
		wn, err := GetApp().LoadWordNet(ctx)
		if err != nil {
			return err
		}

		result, err := commands.NewValidateCommand(wn).Execute(ctx)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "synsets:   %d\n", result.Synsets)
		fmt.Fprintf(out, "nouns:     %d\n", result.Nouns)
		fmt.Fprintf(out, "hypernyms: %d\n", result.Edges)
		fmt.Fprintf(out, "acyclic:   %t\n", result.Acyclic)
		switch {
		case result.RootLabel != "":
			fmt.Fprintf(out, "root:      %s [%d]\n", result.RootLabel, result.Roots[0])
		case len(result.Roots) <= 10:
			fmt.Fprintf(out, "roots:     %v\n", result.Roots)
		default:
			fmt.Fprintf(out, "roots:     %d\n", len(result.Roots))
		}

		return result.Problem
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
