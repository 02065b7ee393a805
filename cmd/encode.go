package cmd

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/getcreddy/pokeid/pkg/config"
	"github.com/getcreddy/pokeid/pkg/pokemon"
)

var encodeCmd = &cobra.Command{
	Use:   "encode [uuid...]",
	Short: "Print the pokémon name of each UUID",
	Long: `Print "<uuid>\t<name>" for each UUID argument.

If any argument is not a valid UUID, every bad argument is reported
and nothing is printed. With no arguments a random UUID is generated.`,
	Args: cobra.ArbitraryArgs,
	RunE: runEncodeCmd,
}

type encoded struct {
	UUID      uuid.UUID     `json:"uuid"`
	Label     pokemon.Label `json:"label"`
	Adjective string        `json:"adjective"`
	Name      string        `json:"name"`
}

func init() {
	rootCmd.AddCommand(encodeCmd)
	addEncodeFlags(encodeCmd)
}

func addEncodeFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("stdin", false, "Read UUIDs from standard input, one per line")
	cmd.Flags().Bool("json", false, "Output as JSON lines")
}

func runEncodeCmd(cmd *cobra.Command, args []string) error {
	if fromStdin, _ := cmd.Flags().GetBool("stdin"); fromStdin {
		lines, err := readLines(cmd.InOrStdin())
		if err != nil {
			return err
		}
		args = append(args, lines...)
	}

	format := settings.Format
	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		format = config.FormatJSON
	}

	return runEncode(args, cmd.OutOrStdout(), format, logger)
}

// runEncode checks every argument before printing anything.
func runEncode(args []string, out io.Writer, format string, logger hclog.Logger) error {
	ids, err := parseIDs(args)
	if err != nil {
		return err
	}

	if len(ids) == 0 {
		id := uuid.New()
		logger.Debug("no uuid given, generated one", "id", id)
		ids = append(ids, id)
	}

	enc := json.NewEncoder(out)
	for _, id := range ids {
		label := pokemon.Encode(id)
		logger.Trace("encoded", "id", id, "label", label)

		if format == config.FormatJSON {
			if err := enc.Encode(encoded{UUID: id, Label: label, Adjective: label.Adjective(), Name: label.Name()}); err != nil {
				return err
			}
			continue
		}
		fmt.Fprintf(out, "%s\t%s\n", id, label)
	}
	return nil
}

func parseIDs(args []string) ([]uuid.UUID, error) {
	var (
		ids  []uuid.UUID
		errs []error
	)
	for _, arg := range args {
		id, err := uuid.Parse(arg)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s is not a valid UUID", arg))
			continue
		}
		ids = append(ids, id)
	}
	return ids, errors.Join(errs...)
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	return lines, scanner.Err()
}
