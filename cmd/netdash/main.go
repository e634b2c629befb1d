// Netdash is a terminal dashboard for a network-device inventory backend.
//
// It lists devices with their interface and module inventories, lets an
// operator select subsets of devices/modules, and submits asynchronous
// backend jobs (configuration sync, warranty/EOX sync) whose progress is
// tracked on a polling job screen.
//
// Usage:
//
//	netdash [command] [flags]
//
// Running without arguments launches the interactive dashboard.
// See 'netdash --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tuaninbox/netdash/internal/logging"
	"github.com/tuaninbox/netdash/internal/version"
)

func main() {
	// Silent unless NETDASH_LOG_LEVEL is set; log output would corrupt
	// the alt-screen dashboard.
	if err := logging.InitializeFromEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize logging: %v\n", err)
		os.Exit(1)
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "netdash",
	Short: "Network Device Inventory Dashboard",
	Long: `A terminal dashboard over a network-device inventory backend.

Browse devices with their interfaces and pluggable modules, filter and
sort the inventory, select subsets, and submit configuration-sync and
warranty/EOX-sync jobs whose progress is tracked on a job screen.

If no command is specified, the interactive dashboard will launch.`,
	Version: version.Version,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: run the dashboard when no subcommand provided
		return runDashboard(cmd, args)
	},
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("netdash %s (commit: %s)\n", version.Version, version.Commit)
	},
}
