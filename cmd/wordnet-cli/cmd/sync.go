package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Rebuild the taxonomy cache",
	Long: `Parse the taxonomy files and rebuild the SQLite cache, even if it
looks up to date.

Example:
  wordnet-cli sync`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if GetApp().Cache() == nil {
			return errors.New("cache is disabled")
		}

		result, err := GetApp().Load(cmd.Context(), true)
		if err != nil {
			return err
		}
		if result.Stats == nil {
			return errors.New("cache was not updated, see log for details")
		}

		s := result.Stats
		fmt.Fprintf(cmd.OutOrStdout(), "stored %d synsets, %d nouns, %d hypernym links in %s\n",
			s.SynsetsStored, s.NounsStored, s.HypernymsStored, s.Duration.Round(time.Millisecond))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(syncCmd)
}
