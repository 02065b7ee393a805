package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/getcreddy/pokeid/pkg/pokemon"
)

var decodeCmd = &cobra.Command{
	Use:   "decode <name...>",
	Short: "Check that names are valid pokémon names",
	Long: `Check each argument against the name tables and print
"<name>\t<adjective index>\t<pokémon index>".

Quote names: "Busy bulbasaur" is one argument.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDecode(args, cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(decodeCmd)
}

func runDecode(args []string, out io.Writer) error {
	var (
		labels []pokemon.Label
		errs   []error
	)
	for _, arg := range args {
		label, err := pokemon.Decode(arg)
		if err != nil {
			errs = append(errs, fmt.Errorf("%q is not a pokémon name", arg))
			continue
		}
		labels = append(labels, label)
	}
	if err := errors.Join(errs...); err != nil {
		return err
	}

	for _, label := range labels {
		adj, name, _ := label.Indices()
		fmt.Fprintf(out, "%s\t%d\t%d\n", label, adj, name)
	}
	return nil
}
