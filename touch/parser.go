package touch

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jethrobull/touchboard/model"
)

// ParseLine decodes one digitizer debug line of the form
//
//	[00:01:02.345] touch: x: 312, y: 88, pressed: true
//
// Lines that do not carry all three fields are not an error; ParseLine
// returns (nil, nil) so callers can skip firmware chatter.
func ParseLine(line string) (*model.PointerEvent, error) {
	splits := strings.Split(line, " ")

	var (
		x, y       float64
		pressed    bool
		foundCount int
		err        error
	)

	ix := 0
	limit := len(splits) - 1 // We always care about the next token, so stop before it's too late

	for ix < limit {
		curItem := splits[ix]
		nextItem := strings.TrimRight(splits[ix+1], ",")

		switch curItem {
		case "x:":
			x, err = strconv.ParseFloat(nextItem, 64)
			if err != nil {
				return nil, fmt.Errorf("could not parse x: %w", err)
			}
			ix++
			foundCount++
		case "y:":
			y, err = strconv.ParseFloat(nextItem, 64)
			if err != nil {
				return nil, fmt.Errorf("could not parse y: %w", err)
			}
			ix++
			foundCount++
		case "pressed:":
			// Trim the reset escape code some firmwares append.
			nextItem = strings.TrimSuffix(nextItem, "\x1b[0m")

			switch nextItem {
			case "true":
				pressed = true
			case "false":
				pressed = false
			default:
				return nil, fmt.Errorf("pressed value unexpected: '%s'", nextItem)
			}
			ix++
			foundCount++
		default:
		}

		ix++
	}

	if foundCount == 3 {
		return &model.PointerEvent{X: x, Y: y, Pressed: pressed}, nil
	}

	return nil, nil
}
