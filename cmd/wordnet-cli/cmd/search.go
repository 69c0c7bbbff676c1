package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"wordnet/internal/application/commands"
)

var searchLimit int

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search nouns",
	Long: `Search for nouns matching a query.

Results are ranked by relevance using fuzzy matching. When the cache is
up to date the search runs against it without loading the graph.

Examples:
  wordnet-cli search marlin
  wordnet-cli search --limit 5 dog`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := GetApp().Context(cmd.Context())
		query := args[0]

		var search *commands.SearchCommand
		if cache := GetApp().FreshCache(); cache != nil {
			search = commands.NewCachedSearchCommand(cache, query, searchLimit)
		} else {
			wn, err := GetApp().LoadWordNet(ctx)
			if err != nil {
				return err
			}
			search = commands.NewSearchCommand(wn, query, searchLimit)
		}

		results, err := search.Execute(ctx)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if len(results) == 0 {
			fmt.Fprintln(out, "No results found")
			return nil
		}

		for _, r := range results {
			fmt.Fprintf(out, "%s %v\n", r.Noun, r.Synsets)
		}
		return nil
	},
}

func init() {
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", 20, "maximum number of results")
	rootCmd.AddCommand(searchCmd)
}
