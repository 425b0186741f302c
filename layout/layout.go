package layout

import (
	"fmt"
	"math"

	"github.com/jethrobull/touchboard/model"
)

// Fixed gaps between adjacent keys and between rows, in surface pixels.
const (
	GapPx    = 2.0
	RowGapPx = 2.0
)

// span is a horizontal interval a taller key from a row above has claimed.
type span struct {
	start float64
	end   float64
}

// Registry is the placed-key arena for one layout load. Geometry is never
// mutated after Compute returns; a reload builds a fresh Registry and
// invalidates every index into the old one.
type Registry struct {
	Keys     []model.Key
	Rows     int
	Width    float64
	Height   float64
	Menu     []model.MenuEntry
	Warnings []string

	prefIndex int
}

// Compute places every key of the document onto a width×height surface.
// Rows tile the surface top to bottom; within a row, key widths come from
// width multipliers scaled so the row fills the surface, minus pixels
// reserved by taller keys spanning down from earlier rows. Degenerate
// widths are clamped, never reported as errors.
func Compute(doc *Document, width, height float64) *Registry {
	reg := &Registry{
		Rows:      len(doc.Rows),
		Width:     width,
		Height:    height,
		Menu:      doc.Menu,
		Warnings:  doc.Warnings,
		prefIndex: -1,
	}

	rowCount := len(doc.Rows)
	if rowCount == 0 {
		return reg
	}

	rowHeight := height / float64(rowCount)
	reserved := make([][]span, rowCount)

	for r, row := range doc.Rows {
		totalUnits := 0.0
		for _, spec := range row {
			totalUnits += multiplier(spec.Width)
		}

		if totalUnits <= 0 {
			totalUnits = 1.0
		}

		reservedPx := 0.0

		for _, sp := range reserved[r] {
			if sp.end > sp.start {
				reservedPx += sp.end - sp.start
			}
		}

		gapsPx := 0.0
		if len(row) > 0 {
			gapsPx = float64(len(row)-1) * GapPx
		}

		effectivePx := width - reservedPx - gapsPx
		if effectivePx < 1.0 {
			effectivePx = 1.0
		}

		unitWidth := effectivePx / totalUnits
		cursor := 0.0

		for c, spec := range row {
			widthMult := multiplier(spec.Width)
			heightMult := multiplier(spec.Height)

			// Route around pixels claimed by taller keys above.
			for _, sp := range reserved[r] {
				if cursor >= sp.start && cursor < sp.end {
					cursor = sp.end
				}
			}

			code, ok := ResolveKeysym(spec.Keysym)
			if !ok {
				reg.Warnings = append(reg.Warnings,
					fmt.Sprintf("row %d col %d: unknown keysym %q, key will inject nothing", r, c, spec.Keysym))
			}

			key := model.Key{
				KeySpec: spec,
				Row:     r,
				Col:     c,
				Code:    code,
				Rect: model.Rect{
					X: cursor,
					Y: float64(r)*rowHeight + RowGapPx*float64(r),
					W: unitWidth * widthMult,
					H: rowHeight*heightMult + RowGapPx*(heightMult-1),
				},
			}

			// The last key stretches to the row's right edge, unless a
			// reserved span sits in the way: then it stops one gap short
			// of the span.
			if c == len(row)-1 {
				stretched := width - key.Rect.X

				for _, sp := range reserved[r] {
					if key.Rect.X < sp.end {
						stretched = sp.start - key.Rect.X - GapPx

						break
					}
				}

				key.Rect.W = stretched
			}

			if key.Rect.W < 0 {
				key.Rect.W = 0
			}

			cursor = key.Rect.X + key.Rect.W
			if c < len(row)-1 {
				cursor += GapPx
			}

			spansDown := int(math.Floor(heightMult)) - 1
			for dr := 1; dr <= spansDown; dr++ {
				rr := r + dr
				if rr >= rowCount {
					break
				}

				reserved[rr] = append(reserved[rr], span{start: key.Rect.X, end: key.Rect.X + key.Rect.W})
			}

			if code == model.CodePreferences && reg.prefIndex < 0 {
				reg.prefIndex = len(reg.Keys)
			}

			reg.Keys = append(reg.Keys, key)
		}
	}

	return reg
}

// HitTest returns the index of the first key containing the point, in
// registry order, or -1. Keys do not overlap by construction, so order
// only matters for determinism on shared edges.
func (r *Registry) HitTest(x, y float64) int {
	for i := range r.Keys {
		if r.Keys[i].Rect.Contains(x, y) {
			return i
		}
	}

	return -1
}

// PreferencesIndex returns the slot of the designated preferences key, or
// -1 when the layout has none.
func (r *Registry) PreferencesIndex() int {
	return r.prefIndex
}

func (r *Registry) PreferencesKey() (model.Key, bool) {
	if r.prefIndex < 0 {
		return model.Key{}, false
	}

	return r.Keys[r.prefIndex], true
}

func multiplier(v float64) float64 {
	if v <= 0 {
		return 1.0
	}

	return v
}
