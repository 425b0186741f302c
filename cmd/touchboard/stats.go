package touchboard

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/jethrobull/touchboard/db"
	"github.com/jethrobull/touchboard/web"
)

// statsCmd represents the stats command.
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Serve the keystroke usage page",
	Long: `Scan a recorded keystroke store, print a usage summary and serve the
per-key heatmap over HTTP. The layout document is needed to place the
keys on the page.`,
	RunE: func(_ *cobra.Command, _ []string) error {
		reg, err := loadRegistry()
		if err != nil {
			return err
		}

		slog.Info("Statistics file", "path", storagePath)

		storage, err := db.ConnectDB(storagePath)
		if err != nil {
			return fmt.Errorf("could not open %s as sqlite file: %w", storagePath, err)
		}
		defer storage.Close()

		usage, err := storage.ScanUsage()
		if err != nil {
			return err
		}

		slog.Info("History scanned",
			"total", usage.Total,
			"shifted", usage.Shifted,
			"chorded", usage.Chorded,
			"repeated", usage.Repeated)

		return web.StartServer(port, storage, reg)
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)

	statsCmd.Flags().StringVarP(&layoutFile, "layout", "l", "layout.json",
		"Path to the JSON layout document")

	statsCmd.Flags().Float64Var(&surfaceWidth, "width", 1280,
		"Keyboard surface width in pixels")

	statsCmd.Flags().Float64Var(&surfaceHeight, "height", 430,
		"Keyboard surface height in pixels")

	statsCmd.Flags().IntVarP(&port, "port", "p", 3000,
		"Port on which server should be watching")

	statsCmd.Flags().StringVarP(&storagePath, "storage", "s", "./keystrokes.sqlite",
		"Path to the recorded statistics")
}
