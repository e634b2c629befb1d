package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/tuaninbox/netdash/internal/action"
	"github.com/tuaninbox/netdash/internal/api"
	"github.com/tuaninbox/netdash/internal/config"
	"github.com/tuaninbox/netdash/internal/tui"
	"github.com/tuaninbox/netdash/internal/ui"
)

// Command flags
var (
	serverURL    string
	username     string
	timezone     string
	outputFormat string
	listPage     int
	listPageSize int
	assumeYes    bool
)

func init() {
	// Common flags for backend commands (persistent on root)
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "", "Backend base URL (overrides config file)")
	rootCmd.PersistentFlags().StringVar(&username, "username", "", "HTTP basic-auth username (password from NETDASH_PASSWORD)")
	rootCmd.PersistentFlags().StringVar(&timezone, "timezone", "", "Display timezone for job timestamps (overrides config file)")

	rootCmd.AddCommand(devicesCmd)
	rootCmd.AddCommand(syncCmd)
	rootCmd.AddCommand(syncEoxCmd)
	rootCmd.AddCommand(jobsCmd)
	rootCmd.AddCommand(configOpsCmd)
}

// loadSettings merges the config file with command-line overrides.
func loadSettings() (*config.Settings, error) {
	settings, err := config.LoadSettings()
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	if serverURL != "" {
		settings.Server.URL = serverURL
	}
	if username != "" {
		settings.Server.Username = username
	}
	if timezone != "" {
		settings.Display.Timezone = timezone
	}
	return settings, nil
}

// newClient builds the backend client from settings. The password is only
// ever read from the environment, never from the config file.
func newClient(settings *config.Settings) *api.Client {
	client := api.NewClient(settings.Server.URL)
	if settings.Server.Username != "" {
		client.SetAuth(settings.Server.Username, os.Getenv("NETDASH_PASSWORD"))
	}
	return client
}

func displayLocation(settings *config.Settings) *time.Location {
	name := settings.Display.Timezone
	if name == "" || name == "Local" {
		return time.Local
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: invalid timezone %q, using local\n", name)
		return time.Local
	}
	return loc
}

func runDashboard(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}
	return tui.Run(newClient(settings), settings)
}

// devicesCmd lists the device inventory once and exits
var devicesCmd = &cobra.Command{
	Use:   "devices",
	Short: "List the device inventory",
	Long: `Fetch and display one page of the device inventory.

The detailed format includes each device's interface and module tables;
compact shows one line per device; json emits the raw records for
scripting.`,
	Example: `  # First page, detailed
  netdash devices

  # Whole inventory, one line per device
  netdash devices --page-size 999999 --format compact

  # JSON for scripting
  netdash devices --format json`,
	RunE: runDevices,
}

func init() {
	devicesCmd.Flags().IntVar(&listPage, "page", 1, "Page number (1-based)")
	devicesCmd.Flags().IntVar(&listPageSize, "page-size", 25, "Devices per page (999999 for all)")
	devicesCmd.Flags().StringVar(&outputFormat, "format", "detailed", "Output format (detailed, compact, json)")
}

func runDevices(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}
	client := newClient(settings)

	list, err := client.ListDevices(listPage, listPageSize)
	if err != nil {
		return fmt.Errorf("failed to list devices: %w", err)
	}

	printer := ui.NewPrinter(nil)

	switch outputFormat {
	case "json":
		data, err := json.MarshalIndent(list.Items, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(data))

	case "compact":
		printer.Println(ui.RenderDeviceTable(list.Items, printer.Width()))
		printer.Println(fmt.Sprintf("Page %d, %d of %d devices", listPage, len(list.Items), list.Total))

	case "detailed":
		fallthrough
	default:
		printer.PrintHeader("Device Inventory", "netdash devices",
			ui.Param{Key: "Server", Value: settings.Server.URL},
			ui.Param{Key: "Page", Value: fmt.Sprintf("%d (%d of %d devices)", listPage, len(list.Items), list.Total)},
		)
		for i := range list.Items {
			printer.Println(ui.RenderDeviceDetail(&list.Items[i], printer.Width()))
		}
	}

	return nil
}

// syncCmd submits a configuration-sync job
var syncCmd = &cobra.Command{
	Use:   "sync [hostname...]",
	Short: "Submit a configuration sync job",
	Long: `Submit an asynchronous configuration-sync job to the backend.

Hostnames given as arguments limit the sync to those devices; with no
arguments every device is synced. The job runs in the background; watch
it with 'netdash jobs' or the dashboard's job screen.`,
	Example: `  # Sync all devices (asks for confirmation)
  netdash sync

  # Sync two devices without the prompt
  netdash sync core-sw1 edge-rtr1 --yes`,
	RunE: runSync,
}

func init() {
	syncCmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "Skip the confirmation prompt")
	syncEoxCmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "Skip the confirmation prompt")
}

func runSync(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}
	client := newClient(settings)

	var hostnames []string
	scope := "ALL devices in the inventory"
	if len(args) > 0 {
		hostnames = args
		scope = fmt.Sprintf("%d device(s): %s", len(args), strings.Join(args, ", "))
	}

	if !assumeYes {
		ok := ui.ConfirmAction("Configuration Sync", []string{
			"A configuration-sync job will be submitted for " + scope,
			"The job runs asynchronously on the backend",
			"Server: " + settings.Server.URL,
		})
		if !ok {
			return nil
		}
	}

	resp, err := client.SyncDevices(hostnames)
	return printSyncOutcome("Configuration sync", resp, err)
}

// syncEoxCmd submits a warranty/EOX sync job
var syncEoxCmd = &cobra.Command{
	Use:   "sync-eox [serial...]",
	Short: "Submit a warranty/EOX sync job for modules",
	Long: `Submit an asynchronous warranty/EOX sync job.

Serial numbers given as arguments are normalized (trimmed, uppercased,
blanks dropped) before submission; with no arguments the backend
refreshes every module it knows about.`,
	Example: `  # Refresh warranty data for two modules
  netdash sync-eox FNS12345 fns67890

  # Refresh everything
  netdash sync-eox --yes`,
	RunE: runSyncEox,
}

func runSyncEox(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}
	client := newClient(settings)

	var req api.EoxSyncRequest
	scope := "ALL modules in the inventory"
	if len(args) > 0 {
		serials := action.NormalizeSerialStrings(args)
		if len(serials) == 0 {
			return fmt.Errorf("no valid serial numbers after normalization")
		}
		req.SerialNumbers = serials
		scope = fmt.Sprintf("%d module serial(s): %s", len(serials), strings.Join(serials, ", "))
	}

	if !assumeYes {
		ok := ui.ConfirmAction("Warranty/EOX Sync", []string{
			"A warranty/EOX sync job will be submitted for " + scope,
			"The job runs asynchronously on the backend",
			"Server: " + settings.Server.URL,
		})
		if !ok {
			return nil
		}
	}

	resp, err := client.SyncModulesEox(req)
	return printSyncOutcome("Warranty/EOX sync", resp, err)
}

// printSyncOutcome renders a sync submission result the same way the
// dashboard's result/error panels classify it.
func printSyncOutcome(title string, resp *api.SyncResponse, err error) error {
	printer := ui.NewPrinter(nil)

	if err == nil && resp != nil && resp.Success {
		details := []ui.Param{}
		if resp.JobID != "" {
			details = append(details, ui.Param{Key: "Job ID", Value: resp.JobID})
		}
		if resp.Message != "" {
			details = append(details, ui.Param{Key: "Message", Value: resp.Message})
		}
		details = append(details, ui.Param{Key: "Track", Value: "netdash jobs"})
		printer.PrintSuccess(title+" job submitted", details...)
		return nil
	}

	troubleshooting := []string{
		"Check the backend is reachable (netdash devices)",
		"Verify credentials if the backend requires authentication",
		"Inspect backend logs for the rejected submission",
	}

	result := ui.NewFailureResult(title+" submission failed", syncFailureError(resp, err), troubleshooting)
	if apiErr := api.AsError(err); apiErr != nil && len(apiErr.Body) > 0 {
		result.SetRaw(apiErr.Body)
	} else if err == nil && resp != nil {
		result.SetRaw(resp.Raw())
	}
	printer.PrintFailureResult(result)

	return fmt.Errorf("%s failed", strings.ToLower(title))
}

// syncFailureError extracts the most useful failure cause, preferring the
// backend's own message over transport error text.
func syncFailureError(resp *api.SyncResponse, err error) error {
	if err == nil && resp != nil {
		switch {
		case resp.Message != "":
			return fmt.Errorf("%s", resp.Message)
		case resp.Err != "":
			return fmt.Errorf("%s", resp.Err)
		default:
			return fmt.Errorf("the backend rejected the sync request")
		}
	}
	return err
}

// jobsCmd lists background jobs once and exits
var jobsCmd = &cobra.Command{
	Use:   "jobs",
	Short: "List background jobs",
	Long: `Fetch and display the backend's background-job records.

Timestamps are rendered in the configured display timezone. For live
tracking use the dashboard's job screen, which polls automatically.`,
	Example: `  netdash jobs

  # Timestamps in a specific zone
  netdash jobs --timezone Australia/Perth

  # JSON for scripting
  netdash jobs --format json`,
	RunE: runJobs,
}

func init() {
	jobsCmd.Flags().StringVar(&outputFormat, "format", "table", "Output format (table, json)")
}

func runJobs(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}
	client := newClient(settings)

	jobs, err := client.GetJobs()
	if err != nil {
		return fmt.Errorf("failed to fetch jobs: %w", err)
	}

	if outputFormat == "json" {
		data, err := json.MarshalIndent(jobs, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	printer := ui.NewPrinter(nil)
	printer.Println(ui.RenderJobTable(jobs, displayLocation(settings), printer.Width()))
	return nil
}

// configOpsCmd fetches a device's stored configuration and operational data
var configOpsCmd = &cobra.Command{
	Use:   "configops <hostname>",
	Short: "Show a device's stored configuration and operational data",
	Long: `Fetch the configuration and operational data the backend has
collected for one device, identified by hostname.`,
	Example: `  netdash configops core-sw1

  # Raw JSON
  netdash configops core-sw1 --format json`,
	Args: cobra.ExactArgs(1),
	RunE: runConfigOps,
}

func init() {
	configOpsCmd.Flags().StringVar(&outputFormat, "format", "text", "Output format (text, json)")
}

func runConfigOps(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}
	client := newClient(settings)
	hostname := args[0]

	ops, err := client.GetDeviceConfigOps(hostname)
	if err != nil {
		return fmt.Errorf("failed to fetch configops for %s: %w", hostname, err)
	}

	if outputFormat == "json" {
		data, err := json.MarshalIndent(ops, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	if !ops.Success || ops.Result == nil {
		msg := ops.Message
		if msg == "" {
			msg = "no stored data for this device"
		}
		return fmt.Errorf("configops for %s: %s", hostname, msg)
	}

	printer := ui.NewPrinter(nil)
	printer.PrintHeader("Device Config & Operational Data", "netdash configops "+hostname,
		ui.Param{Key: "Server", Value: settings.Server.URL},
		ui.Param{Key: "Device", Value: hostname},
	)
	printer.Println(ui.RenderHorizontalDivider(printer.Width()-2, "─"))
	printer.Println("Configuration:")
	printer.Newline()
	printer.Println(ops.Result.Configuration)
	printer.Println(ui.RenderHorizontalDivider(printer.Width()-2, "─"))
	printer.Println("Operational data:")
	printer.Newline()
	printer.Println(ops.Result.OperationalData)
	return nil
}
