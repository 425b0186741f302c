package layout

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jethrobull/touchboard/model"
)

// MaxMenuEntries bounds the preferences popup; entries past the cap are
// silently dropped.
const MaxMenuEntries = 16

type keyJSON struct {
	Label      string  `json:"label"`
	ShiftLabel string  `json:"shift_label"`
	Keysym     string  `json:"keysym"`
	Width      float64 `json:"width"`
	Height     float64 `json:"height"`
}

type menuEntryJSON struct {
	Label  string `json:"label"`
	Action string `json:"action"`
}

type menuJSON struct {
	Preferences []menuEntryJSON `json:"preferences"`
}

type documentJSON struct {
	Rows [][]keyJSON `json:"rows"`
	Menu menuJSON    `json:"menu"`
}

// Document is a parsed layout description: ordered rows of key specs plus
// the preferences menu entries. It carries no geometry; Compute does that.
type Document struct {
	Rows     [][]model.KeySpec
	Menu     []model.MenuEntry
	Warnings []string
}

// LoadDocument decodes a JSON layout description. Malformed JSON is an
// error; individually broken keys (missing label or keysym) are skipped and
// reported as warnings so the rest of the layout still loads.
func LoadDocument(reader io.Reader) (*Document, error) {
	decoder := json.NewDecoder(reader)

	var raw documentJSON

	if err := decoder.Decode(&raw); err != nil {
		return nil, fmt.Errorf("could not decode layout document: %w", err)
	}

	doc := &Document{Rows: make([][]model.KeySpec, 0, len(raw.Rows))}

	for r, row := range raw.Rows {
		specs := make([]model.KeySpec, 0, len(row))

		for c, key := range row {
			if key.Label == "" || key.Keysym == "" {
				doc.Warnings = append(doc.Warnings,
					fmt.Sprintf("row %d col %d: missing label or keysym, key skipped", r, c))

				continue
			}

			specs = append(specs, model.KeySpec{
				Label:      key.Label,
				ShiftLabel: key.ShiftLabel,
				Keysym:     key.Keysym,
				Width:      key.Width,
				Height:     key.Height,
			})
		}

		doc.Rows = append(doc.Rows, specs)
	}

	for i, entry := range raw.Menu.Preferences {
		if i >= MaxMenuEntries {
			doc.Warnings = append(doc.Warnings,
				fmt.Sprintf("menu has %d entries, keeping first %d", len(raw.Menu.Preferences), MaxMenuEntries))

			break
		}

		if entry.Label == "" || entry.Action == "" {
			continue
		}

		doc.Menu = append(doc.Menu, model.MenuEntry{
			Label:  entry.Label,
			Action: model.MenuAction(entry.Action),
		})
	}

	return doc, nil
}
