package cmd

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var nounsPrefix string

var nounsCmd = &cobra.Command{
	Use:   "nouns",
	Short: "List every noun, sorted",
	Long: `List every WordNet noun in sorted order, one per line.

Example:
  wordnet-cli nouns --prefix zebra`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := GetApp().Context(cmd.Context())
		wn, err := GetApp().LoadWordNet(ctx)
		if err != nil {
			return err
		}

		w := bufio.NewWriter(cmd.OutOrStdout())
		for noun := range wn.Nouns() {
			if nounsPrefix != "" && !strings.HasPrefix(noun, nounsPrefix) {
				continue
			}
			fmt.Fprintln(w, noun)
		}
		return w.Flush()
	},
}

var isNounCmd = &cobra.Command{
	Use:   "isnoun <word>",
	Short: "Report whether a word is a WordNet noun",
	Long: `Print true or false; exits with status 1 when the word is not a noun.

Example:
  wordnet-cli isnoun zebra`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := GetApp().Context(cmd.Context())
		wn, err := GetApp().LoadWordNet(ctx)
		if err != nil {
			return err
		}

		ok := wn.IsNoun(args[0])
		fmt.Fprintln(cmd.OutOrStdout(), ok)
		if !ok {
			return fmt.Errorf("%q is not a noun", args[0])
		}
		return nil
	},
}

func init() {
	nounsCmd.Flags().StringVarP(&nounsPrefix, "prefix", "p", "", "only list nouns starting with prefix")
	rootCmd.AddCommand(nounsCmd)
	rootCmd.AddCommand(isNounCmd)
}
