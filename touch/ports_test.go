package touch_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jethrobull/touchboard/model"
	"github.com/jethrobull/touchboard/touch"
)

func readChanLines(c <-chan string) []string {
	result := make([]string, 0)

	for line := range c {
		result = append(result, line)
	}

	return result
}

func TestReadFile(t *testing.T) {
	t.Run("should handle non-empty file", func(t *testing.T) {
		r := strings.NewReader("a\nb\nc\n")

		c := touch.ReadFile(r)

		lines := readChanLines(c)

		assert.Equal(t, []string{"a", "b", "c"}, lines)
	})

	t.Run("should handle empty file", func(t *testing.T) {
		r := strings.NewReader("")

		c := touch.ReadFile(r)

		lines := readChanLines(c)

		assert.Equal(t, []string{}, lines)
	})
}

func TestStream(t *testing.T) {
	t.Run("parses events and skips chatter", func(t *testing.T) {
		lines := make(chan string, 4)
		lines <- "touch: x: 10, y: 20, pressed: true"
		lines <- "touch: controller reset"
		lines <- "touch: x: 10, y: 20, pressed: false"
		close(lines)

		events := make([]model.PointerEvent, 0)
		for ev := range touch.Stream(lines) {
			events = append(events, ev)
		}

		assert.Equal(t, []model.PointerEvent{
			{X: 10, Y: 20, Pressed: true},
			{X: 10, Y: 20, Pressed: false},
		}, events)
	})

	t.Run("skips malformed lines without closing", func(t *testing.T) {
		lines := make(chan string, 2)
		lines <- "touch: x: ???, y: 20, pressed: true"
		lines <- "touch: x: 1, y: 2, pressed: true"
		close(lines)

		events := make([]model.PointerEvent, 0)
		for ev := range touch.Stream(lines) {
			events = append(events, ev)
		}

		assert.Equal(t, []model.PointerEvent{{X: 1, Y: 2, Pressed: true}}, events)
	})
}

func TestLooksLikeTouchDevice(t *testing.T) {
	testCases := []struct {
		path     string
		expected bool
	}{
		{"/dev/ttyACM0", true},
		{"/dev/ttyUSB1", true},
		{"/dev/tty.usbmodem14201", true},
		{"/dev/ttyS0", false},
		{"/dev/null", false},
	}

	for _, item := range testCases {
		t.Run(item.path, func(t *testing.T) {
			assert.Equal(t, item.expected, touch.LooksLikeTouchDevice(item.path))
		})
	}
}
