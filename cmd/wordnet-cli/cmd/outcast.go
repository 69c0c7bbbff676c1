package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"wordnet/internal/application/commands"
)

var outcastVerbose bool

var outcastCmd = &cobra.Command{
	Use:   "outcast <file...|noun noun...>",
	Short: "Find the noun least related to the others",
	Long: `Find the outcast of a group of nouns: the one whose summed distance
to all the others is largest.

When every argument is an existing file, each file is read as a
whitespace-separated list of nouns and one outcast is printed per file.
Otherwise the arguments themselves are the nouns.

Examples:
  wordnet-cli outcast horse zebra cat bear table
  wordnet-cli outcast outcast5.txt outcast8.txt`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := GetApp().Context(cmd.Context())
		wn, err := GetApp().LoadWordNet(ctx)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		run := func(label string, nouns []string) error {
			result, err := commands.NewOutcastCommand(wn, nouns).Execute(ctx)
			if err != nil {
				return err
			}
			if label != "" {
				fmt.Fprintf(out, "%s: %s\n", label, result.Outcast)
			} else {
				fmt.Fprintln(out, result.Outcast)
			}
			if outcastVerbose {
				for i, noun := range result.Nouns {
					fmt.Fprintf(out, "  %-20s %d\n", noun, result.Sums[i])
				}
			}
			return nil
		}

		if !allFiles(args) {
			return run("", args)
		}
		for _, path := range args {
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			if err := run(path, strings.Fields(string(data))); err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
		}
		return nil
	},
}

func allFiles(args []string) bool {
	for _, a := range args {
		info, err := os.Stat(a)
		if err != nil || info.IsDir() {
			return false
		}
	}
	return true
}

func init() {
	outcastCmd.Flags().BoolVar(&outcastVerbose, "sums", false, "also print each noun's summed distance")
	rootCmd.AddCommand(outcastCmd)
}
