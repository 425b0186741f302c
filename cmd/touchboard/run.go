package touchboard

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/jethrobull/touchboard/db"
	"github.com/jethrobull/touchboard/inject"
	"github.com/jethrobull/touchboard/input"
	"github.com/jethrobull/touchboard/keyboard"
	"github.com/jethrobull/touchboard/layout"
	"github.com/jethrobull/touchboard/model"
	"github.com/jethrobull/touchboard/touch"
	"github.com/jethrobull/touchboard/web"
)

// runCmd represents the run command.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Show the keyboard and inject keystrokes",
	Long: `Load a layout document, connect to a touch digitizer (or read pointer
events from stdin) and run the keyboard loop. Keystrokes go to a virtual
uinput device; statistics go to a sqlite file.`,
	RunE: func(_ *cobra.Command, _ []string) error {
		reg, err := loadRegistry()
		if err != nil {
			return err
		}

		var events <-chan model.PointerEvent

		if deviceFile == "" {
			names, err := touch.GetAvailableDevices()
			if err != nil {
				return fmt.Errorf("could not list devices: %w", err)
			}

			slog.Info("No device given, reading pointer events from stdin", "suggested", names)

			events = touch.Stream(touch.ReadFile(os.Stdin))
		} else {
			reader, closer, err := touch.Open(deviceFile)
			if err != nil {
				names, errInner := touch.GetAvailableDevices()
				if errInner != nil {
					return fmt.Errorf("could not open device: %w; could not suggest devices: %w", err, errInner)
				}

				if len(names) > 0 {
					return fmt.Errorf("error opening device: %w. Maybe try instead: %+v", err, names)
				}

				return fmt.Errorf("error opening device: %w. It does not seem like any digitizer is connected", err)
			}
			defer closer()

			events = touch.Stream(touch.ReadFile(reader))
		}

		var injector inject.Injector

		if noInject {
			slog.Info("Injection disabled, logging keystrokes only")

			injector = inject.NewRecorder()
		} else {
			uinput, err := inject.NewUinput("touchboard")
			if err != nil {
				return fmt.Errorf("could not set up keystroke injection: %w", err)
			}
			defer uinput.Close()

			injector = uinput
		}

		slog.Info("Output file", "path", storagePath)

		storage, err := db.ConnectDB(storagePath)
		if err != nil {
			return fmt.Errorf("could not open %s as sqlite file: %w", storagePath, err)
		}
		defer storage.Close()

		if !disableInterface {
			go func() {
				if err := web.StartServer(port, storage, reg); err != nil {
					slog.Error("Web interface stopped", "error", err)
				}
			}()
		}

		loop := &keyboard.Loop{
			Machine:  input.NewMachine(reg),
			Injector: injector,
			Target:   inject.FixedTarget(true),
			Renderer: keyboard.NopRenderer{},
			Storage:  storage,
			Clock:    keyboard.MonotonicClock(),
		}

		slog.Info("Main loop")

		return loop.Run(events)
	},
}

var (
	layoutFile       string
	deviceFile       string
	storagePath      string
	port             int
	surfaceWidth     float64
	surfaceHeight    float64
	disableInterface bool
	noInject         bool
)

func loadRegistry() (*layout.Registry, error) {
	file, err := os.Open(layoutFile)
	if err != nil {
		return nil, fmt.Errorf("could not open layout document %s: %w", layoutFile, err)
	}
	defer file.Close()

	doc, err := layout.LoadDocument(file)
	if err != nil {
		return nil, err
	}

	reg := layout.Compute(doc, surfaceWidth, surfaceHeight)

	for _, warning := range reg.Warnings {
		slog.Warn("Layout problem", "detail", warning)
	}

	slog.Info("Loaded layout", "keys", len(reg.Keys), "rows", reg.Rows, "menuEntries", len(reg.Menu))

	return reg, nil
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&layoutFile, "layout", "l", "layout.json",
		"Path to the JSON layout document")

	runCmd.Flags().StringVarP(&deviceFile, "file", "f", "",
		"Serial device to read pointer events from (stdin when empty)")

	runCmd.Flags().StringVarP(&storagePath, "out", "o", "./keystrokes.sqlite",
		"Output path for statistics")

	runCmd.Flags().Float64Var(&surfaceWidth, "width", 1280,
		"Keyboard surface width in pixels")

	runCmd.Flags().Float64Var(&surfaceHeight, "height", 430,
		"Keyboard surface height in pixels")

	runCmd.Flags().IntVarP(&port, "port", "p", 3000,
		"Port on which server should be watching")

	runCmd.Flags().BoolVar(&disableInterface, "no-interface", false,
		"If provided, no web server will be run with visualization")

	runCmd.Flags().BoolVar(&noInject, "no-inject", false,
		"If provided, keystrokes are logged instead of injected")
}
