package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"wordnet/internal/application/commands"
)

var scaCmd = &cobra.Command{
	Use:   "sca <noun1> <noun2>",
	Short: "Print the shortest common ancestor of two nouns",
	Long: `Print the synset that is a shortest common ancestor of two nouns,
as its space-separated nouns.

Example:
  wordnet-cli sca individual edible_fruit`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := GetApp().Context(cmd.Context())
		wn, err := GetApp().LoadWordNet(ctx)
		if err != nil {
			return err
		}

		sca, err := commands.NewSCACommand(wn, args[0], args[1]).Execute(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), sca)
		return nil
	},
}

var distanceCmd = &cobra.Command{
	Use:   "distance <noun1> <noun2>",
	Short: "Print the shortest ancestral distance between two nouns",
	Long: `Print the length of the shortest ancestral path between any synset
of noun1 and any synset of noun2.

Example:
  wordnet-cli distance white_marlin mileage`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := GetApp().Context(cmd.Context())
		wn, err := GetApp().LoadWordNet(ctx)
		if err != nil {
			return err
		}

		d, err := commands.NewDistanceCommand(wn, args[0], args[1]).Execute(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), d)
		return nil
	},
}

var pathCmd = &cobra.Command{
	Use:   "path <noun1> <noun2>",
	Short: "Show the ancestral path between two nouns",
	Long: `Show the common ancestor, the distance, and which synset of each
noun the path starts from.

Example:
  wordnet-cli path horse zebra`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := GetApp().Context(cmd.Context())
		wn, err := GetApp().LoadWordNet(ctx)
		if err != nil {
			return err
		}

		p, err := commands.NewPathCommand(wn, args[0], args[1]).Execute(ctx)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fromLabel, _ := wn.Label(p.From)
		toLabel, _ := wn.Label(p.To)
		gloss, _ := wn.Gloss(p.Ancestor)

		fmt.Fprintf(out, "ancestor: %s [%d]\n", p.AncestorLabel, p.Ancestor)
		if gloss != "" {
			fmt.Fprintf(out, "          %s\n", gloss)
		}
		fmt.Fprintf(out, "distance: %d\n", p.Length)
		fmt.Fprintf(out, "from:     %s [%d]\n", fromLabel, p.From)
		fmt.Fprintf(out, "to:       %s [%d]\n", toLabel, p.To)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(scaCmd)
	rootCmd.AddCommand(distanceCmd)
	rootCmd.AddCommand(pathCmd)
}
