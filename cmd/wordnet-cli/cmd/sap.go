package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"wordnet/internal/adapters/filesystem"
	"wordnet/internal/application/commands"
)

var sapCmd = &cobra.Command{
	Use:   "sap <digraph-file> <v> <w>",
	Short: "Shortest ancestral path between vertices of a digraph file",
	Long: `Read a digraph in the "V E v1 w1 v2 w2 ..." text format and print the
length and ancestor of the shortest ancestral path between two vertices.
Either vertex may be a comma-separated set.

Examples:
  wordnet-cli sap digraph1.txt 3 11
  wordnet-cli sap digraph25.txt 13,23,24 6,16,17`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := GetApp().Context(cmd.Context())

		v, err := parseVertexSet(args[1])
		if err != nil {
			return err
		}
		w, err := parseVertexSet(args[2])
		if err != nil {
			return err
		}

		g, err := filesystem.ReadDigraphFile(args[0])
		if err != nil {
			return err
		}

		query, err := commands.NewSAPCommand(g, v, w)
		if err != nil {
			return err
		}
		p, err := query.Execute(ctx)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "length = %d, ancestor = %d\n", p.Length, p.Ancestor)
		return nil
	},
}

func parseVertexSet(s string) ([]int, error) {
	var out []int
	for _, part := range strings.Split(s, ",") {
		v, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("invalid vertex %q", part)
		}
		out = append(out, v)
	}
	return out, nil
}

func init() {
	rootCmd.AddCommand(sapCmd)
}
