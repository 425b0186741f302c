package touch

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"go.bug.st/serial"

	"github.com/jethrobull/touchboard/logging"
	"github.com/jethrobull/touchboard/model"
)

var logCtx = logging.ComponentCtx("touch")

// Open connects to a serial touch digitizer. The returned closer must be
// called once reading is done.
func Open(path string) (io.Reader, func(), error) {
	port, err := serial.Open(path, &serial.Mode{
		BaudRate: 115200,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("could not open port %s: %w", path, err)
	}

	closer := func() {
		if err := port.Close(); err != nil {
			slog.ErrorContext(logCtx, "Could not close port", "path", path, "error", err)
		}
	}

	// TODO make this configurable.
	port.SetReadTimeout(10 * time.Hour)

	return port, closer, nil
}

// ReadFile turns any line-oriented reader into a channel of lines. The
// channel closes when the reader is drained.
func ReadFile(reader io.Reader) <-chan string {
	out := make(chan string)

	go func() {
		defer close(out)

		scanner := bufio.NewScanner(reader)
		for scanner.Scan() {
			out <- scanner.Text()
		}
	}()

	return out
}

// Stream parses digitizer lines into pointer events. Malformed lines are
// logged and skipped; the output channel closes with the input.
func Stream(lines <-chan string) <-chan model.PointerEvent {
	out := make(chan model.PointerEvent)

	go func() {
		defer close(out)

		for line := range lines {
			event, err := ParseLine(line)
			if err != nil {
				slog.WarnContext(logCtx, "Skipping malformed touch line", "line", line, "error", err)

				continue
			}

			if event != nil {
				out <- *event
			}
		}
	}()

	return out
}

// GetAvailableDevices lists serial ports that look like touch digitizers,
// to suggest when the configured one cannot be opened.
func GetAvailableDevices() ([]string, error) {
	names, err := serial.GetPortsList()
	if err != nil {
		return nil, fmt.Errorf("could not get list of serial ports: %w", err)
	}

	result := make([]string, 0)

	for _, name := range names {
		if LooksLikeTouchDevice(name) {
			result = append(result, name)
		}
	}

	return result, nil
}

// LooksLikeTouchDevice: USB CDC device nodes, which is what the supported
// digitizers enumerate as.
func LooksLikeTouchDevice(path string) bool {
	return strings.Contains(path, "ttyACM") ||
		strings.Contains(path, "ttyUSB") ||
		strings.Contains(path, "tty.usbmodem")
}
