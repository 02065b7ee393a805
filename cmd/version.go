package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/getcreddy/pokeid/pkg/pokemon"
)

// Set via ldflags
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

type VersionInfo struct {
	Version    string `json:"version"`
	Commit     string `json:"commit"`
	BuildDate  string `json:"build_date"`
	OS         string `json:"os"`
	Arch       string `json:"arch"`
	Path       string `json:"path,omitempty"`
	Checksum   string `json:"checksum,omitempty"`
	Adjectives int    `json:"adjectives"`
	Pokemons   int    `json:"pokemons"`
}

var versionJSON bool

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	RunE: func(cmd *cobra.Command, args []string) error {
		return writeVersion(cmd.OutOrStdout(), currentVersion(), versionJSON)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.Flags().BoolVar(&versionJSON, "json", false, "Output as JSON")
}

func currentVersion() VersionInfo {
	info := VersionInfo{
		Version:    Version,
		Commit:     Commit,
		BuildDate:  BuildDate,
		OS:         runtime.GOOS,
		Arch:       runtime.GOARCH,
		Adjectives: len(pokemon.Adjectives()),
		Pokemons:   len(pokemon.Pokemons()),
	}

	if execPath, err := os.Executable(); err == nil {
		info.Path = execPath
		info.Checksum = hashFile(execPath)
	}
	return info
}

func writeVersion(out io.Writer, info VersionInfo, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(info)
	}

	fmt.Fprintf(out, "pokeid %s\n", info.Version)
	if info.Commit != "unknown" && info.Commit != "" {
		fmt.Fprintf(out, "  commit:  %s\n", info.Commit)
	}
	if info.BuildDate != "unknown" && info.BuildDate != "" {
		fmt.Fprintf(out, "  built:   %s\n", info.BuildDate)
	}
	fmt.Fprintf(out, "  os/arch: %s/%s\n", info.OS, info.Arch)
	fmt.Fprintf(out, "  tables:  %d adjectives, %d pokemons\n", info.Adjectives, info.Pokemons)
	return nil
}
