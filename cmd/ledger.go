package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"text/tabwriter"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/getcreddy/pokeid/pkg/ledger"
)

var ledgerCmd = &cobra.Command{
	Use:   "ledger",
	Short: "Record UUIDs and find them again by name",
	Long: `The ledger remembers which UUIDs were given which name.

Names are not unique, so "which object is Busy bulbasaur?" can have
several answers. Record the UUIDs you hand out, then look them up.`,
}

var ledgerAddCmd = &cobra.Command{
	Use:   "add <uuid...>",
	Short: "Record UUIDs and print their names",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ids, err := parseIDs(args)
		if err != nil {
			return err
		}
		note, _ := cmd.Flags().GetString("note")

		return withLedger(func(l *ledger.Ledger) error {
			var entries []*ledger.Entry
			for _, id := range ids {
				e, err := l.Record(id, note)
				if err != nil {
					return fmt.Errorf("failed to record %s: %w", id, err)
				}
				entries = append(entries, e)
			}
			writeEntries(cmd.OutOrStdout(), entries)
			return nil
		})
	},
}

var ledgerFindCmd = &cobra.Command{
	Use:   "find <name>",
	Short: "List recorded UUIDs carrying a name",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withLedger(func(l *ledger.Ledger) error {
			entries, err := l.Lookup(args[0])
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				return fmt.Errorf("no recorded UUID is named %q", args[0])
			}
			writeEntries(cmd.OutOrStdout(), entries)
			return nil
		})
	},
}

var ledgerListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded UUIDs",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withLedger(func(l *ledger.Ledger) error {
			entries, err := l.List()
			if err != nil {
				return err
			}
			writeEntries(cmd.OutOrStdout(), entries)
			return nil
		})
	},
}

var ledgerCollisionsCmd = &cobra.Command{
	Use:   "collisions",
	Short: "List names shared by several recorded UUIDs",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withLedger(func(l *ledger.Ledger) error {
			cs, err := l.Collisions()
			if err != nil {
				return err
			}
			writeCollisions(cmd.OutOrStdout(), cs)
			return nil
		})
	},
}

var ledgerForgetCmd = &cobra.Command{
	Use:   "forget <uuid>",
	Short: "Remove a UUID from the ledger",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("%s is not a valid UUID", args[0])
		}
		return withLedger(func(l *ledger.Ledger) error {
			return l.Forget(id)
		})
	},
}

func init() {
	rootCmd.AddCommand(ledgerCmd)
	ledgerCmd.AddCommand(ledgerAddCmd, ledgerFindCmd, ledgerListCmd, ledgerCollisionsCmd, ledgerForgetCmd)
	ledgerAddCmd.Flags().String("note", "", "Note stored with the UUIDs (owner, purpose)")
}

func withLedger(fn func(l *ledger.Ledger) error) error {
	if settings.Ledger == "" {
		return fmt.Errorf("no ledger path configured. Set 'ledger' in the config or pass --ledger")
	}
	if err := os.MkdirAll(filepath.Dir(settings.Ledger), 0o700); err != nil {
		return err
	}

	l, err := ledger.New(settings.Ledger)
	if err != nil {
		return fmt.Errorf("failed to open ledger: %w", err)
	}
	defer l.Close()
	l.SetLogger(logger.Named("ledger"))

	return fn(l)
}

func writeEntries(out io.Writer, entries []*ledger.Entry) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "UUID\tNAME\tNOTE\tRECORDED")
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", e.ID, e.Label, e.Note, e.CreatedAt.Format(time.RFC3339))
	}
	w.Flush()
}

func writeCollisions(out io.Writer, cs []ledger.Collision) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tCOUNT\tUUIDS")
	for _, c := range cs {
		for i, id := range c.IDs {
			if i == 0 {
				fmt.Fprintf(w, "%s\t%d\t%s\n", c.Label, len(c.IDs), id)
				continue
			}
			fmt.Fprintf(w, "\t\t%s\n", id)
		}
	}
	w.Flush()
}
