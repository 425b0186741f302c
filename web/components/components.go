package components

import (
	"context"
	"fmt"
	"html"
	"io"

	"github.com/a-h/templ"

	"github.com/jethrobull/touchboard/model"
)

// Item is one key tile on the stats page.
type Item struct {
	Key   model.Key
	Count int
}

type RenderContext struct {
	Width  float64
	Height float64
	Items  []Item
	MaxVal int
}

// StatsPage renders the computed layout as a heatmap: every key at its real
// geometry, shaded by how often it was pressed.
func StatsPage(rc RenderContext) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w,
			`<!DOCTYPE html><html><head><title>touchboard stats</title>
<style>
body { background: #1a1a1f; color: #eee; font-family: sans-serif; }
.surface { position: relative; margin: 2em auto; background: #131316; }
.key { position: absolute; box-sizing: border-box; border-radius: 3px;
       border: 1px solid #444; font-size: 11px; padding: 2px;
       overflow: hidden; color: #ddd; }
</style></head><body>
<h1>Keystroke heatmap</h1>
<div class="surface" style="width:%.0fpx;height:%.0fpx">`,
			rc.Width, rc.Height); err != nil {
			return fmt.Errorf("could not render page header: %w", err)
		}

		for _, item := range rc.Items {
			if err := keyTile(item, rc.MaxVal, w); err != nil {
				return err
			}
		}

		if _, err := io.WriteString(w, `</div></body></html>`); err != nil {
			return fmt.Errorf("could not render page footer: %w", err)
		}

		return nil
	})
}

func keyTile(item Item, maxVal int, w io.Writer) error {
	heat := 0.0
	if maxVal > 0 {
		heat = float64(item.Count) / float64(maxVal)
	}

	rect := item.Key.Rect

	_, err := fmt.Fprintf(w,
		`<div class="key" style="left:%.1fpx;top:%.1fpx;width:%.1fpx;height:%.1fpx;background:rgba(216,117,167,%.2f)" title="%d presses">%s</div>`,
		rect.X, rect.Y, rect.W, rect.H, heat,
		item.Count, html.EscapeString(item.Key.Label))
	if err != nil {
		return fmt.Errorf("could not render key tile: %w", err)
	}

	return nil
}
