package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/getcreddy/pokeid/pkg/config"
	"github.com/getcreddy/pokeid/pkg/pokemon"
)

var tablesCmd = &cobra.Command{
	Use:       "tables <adjectives|pokemons>",
	Short:     "Print a name table in encoding order",
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"adjectives", "pokemons"},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTables(args[0], cmd.OutOrStdout(), settings.Format)
	},
}

func init() {
	rootCmd.AddCommand(tablesCmd)
}

func runTables(which string, out io.Writer, format string) error {
	var table []string
	switch which {
	case "adjectives":
		table = pokemon.Adjectives()
	case "pokemons":
		table = pokemon.Pokemons()
	default:
		return fmt.Errorf("unknown table %q", which)
	}

	if format == config.FormatJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(table)
	}
	for _, s := range table {
		fmt.Fprintln(out, s)
	}
	return nil
}
