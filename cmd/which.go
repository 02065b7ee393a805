package cmd

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var whichJSON bool

type WhichInfo struct {
	Binary BinaryInfo `json:"binary"`
	Config ConfigInfo `json:"config"`
	Ledger LedgerInfo `json:"ledger"`
}

type BinaryInfo struct {
	Path     string `json:"path"`
	Checksum string `json:"checksum,omitempty"`
}

type ConfigInfo struct {
	SearchPaths []string `json:"search_paths"`
	ActivePath  string   `json:"active_path,omitempty"`
	Format      string   `json:"format"`
	LogLevel    string   `json:"log_level"`
}

type LedgerInfo struct {
	Path   string `json:"path"`
	Exists bool   `json:"exists"`
}

var whichCmd = &cobra.Command{
	Use:   "which",
	Short: "Show paths and settings in use",
	Long: `Display diagnostic information about the pokeid installation.

Shows:
  - Running binary path and checksum
  - Config file search paths, active config and resolved settings
  - Ledger database path`,
	RunE: func(cmd *cobra.Command, args []string) error {
		info := collectWhich()
		if whichJSON {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(info)
		}
		writeWhich(cmd.OutOrStdout(), info)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(whichCmd)
	whichCmd.Flags().BoolVar(&whichJSON, "json", false, "Output as JSON")
}

func collectWhich() WhichInfo {
	info := WhichInfo{}

	execPath, err := os.Executable()
	if err != nil {
		execPath = "unknown"
	} else if resolved, err := filepath.EvalSymlinks(execPath); err == nil {
		execPath = resolved
	}
	info.Binary.Path = execPath
	info.Binary.Checksum = hashFile(execPath)

	// Matches initConfig search order
	home, _ := os.UserHomeDir()
	info.Config.SearchPaths = []string{
		filepath.Join(home, ".config", "pokeid", "config.yaml"),
		filepath.Join(home, ".pokeid", "config.yaml"),
		"config.yaml",
	}
	info.Config.ActivePath = viper.ConfigFileUsed()
	info.Config.Format = settings.Format
	info.Config.LogLevel = settings.LogLevel

	info.Ledger.Path = settings.Ledger
	if _, err := os.Stat(settings.Ledger); err == nil {
		info.Ledger.Exists = true
	}
	return info
}

func writeWhich(out io.Writer, info WhichInfo) {
	fmt.Fprintln(out, "Binary:")
	fmt.Fprintf(out, "  Path:     %s\n", info.Binary.Path)
	if len(info.Binary.Checksum) > 16 {
		fmt.Fprintf(out, "  Checksum: %s\n", info.Binary.Checksum[:16]+"...")
	}

	fmt.Fprintln(out, "\nConfig:")
	for _, p := range info.Config.SearchPaths {
		marker := "  "
		if abs, _ := filepath.Abs(p); info.Config.ActivePath != "" && (p == info.Config.ActivePath || abs == info.Config.ActivePath) {
			marker = "→ "
		}
		exists := "✗"
		if _, err := os.Stat(p); err == nil {
			exists = "✓"
		}
		fmt.Fprintf(out, "  %s%s %s\n", marker, exists, p)
	}
	fmt.Fprintf(out, "  Format:    %s\n", info.Config.Format)
	fmt.Fprintf(out, "  Log level: %s\n", info.Config.LogLevel)

	fmt.Fprintln(out, "\nLedger:")
	exists := "✗"
	if info.Ledger.Exists {
		exists = "✓"
	}
	fmt.Fprintf(out, "  %s %s\n", exists, info.Ledger.Path)
}

// hashFile returns the hex sha256 of a file, or "" if it cannot be read.
func hashFile(path string) string {
	f, err := os.Open(path)
	if err != nil {
		return ""
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return ""
	}
	return hex.EncodeToString(h.Sum(nil))
}
