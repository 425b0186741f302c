package db

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/schollz/progressbar/v3"

	"github.com/jethrobull/touchboard/model"

	_ "github.com/mattn/go-sqlite3"
)

type Storage interface {
	Store(stroke *model.KeyStroke) error
	GatherAll() ([]model.KeyCount, error)
	Close()
}

type SQLiteStorage struct {
	db *sql.DB
}

func NewStorage(db *sql.DB) *SQLiteStorage {
	return &SQLiteStorage{db}
}

func InitDbStorage(db *sql.DB) error {
	sqlStmt := `
	create table if not exists keystrokes(
		code int, label text,
		shift bool, ctrl bool, alt bool, repeat bool,
		ts datetime);`

	if _, err := db.Exec(sqlStmt); err != nil {
		return fmt.Errorf("could not create keystrokes table: %w", err)
	}

	sqlStmt = `create index if not exists keystrokes_tsix on keystrokes (ts ASC);`
	if _, err := db.Exec(sqlStmt); err != nil {
		return fmt.Errorf("could not create timestamp index: %w", err)
	}

	return nil
}

func ConnectDB(path string) (*SQLiteStorage, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("could not open %s: %w", path, err)
	}

	if err := InitDbStorage(db); err != nil {
		return nil, err
	}

	return &SQLiteStorage{db}, nil
}

func (s *SQLiteStorage) Store(stroke *model.KeyStroke) error {
	_, err := s.db.Exec(`insert into keystrokes(code, label, shift, ctrl, alt, repeat, ts)
	    values(?, ?, ?, ?, ?, ?, datetime('now', 'subsec'))`,
		stroke.Code, stroke.Label, stroke.Shift, stroke.Ctrl, stroke.Alt, stroke.Repeat)
	if err != nil {
		return fmt.Errorf("could not store keystroke: %w", err)
	}

	return nil
}

// GatherAll aggregates per-key press counts. Typematic repeats are not
// counted: the stats page shows keys the user actually tapped.
func (s *SQLiteStorage) GatherAll() ([]model.KeyCount, error) {
	rows, err := s.db.Query(
		`select code, label, count(*) as cnt
        from keystrokes
        where repeat = false
        group by code, label
        order by cnt desc`)
	if err != nil {
		return nil, fmt.Errorf("could not gather keystroke counts: %w", err)
	}

	defer rows.Close()

	result := make([]model.KeyCount, 0)

	for rows.Next() {
		var item model.KeyCount

		if err := rows.Scan(&item.Code, &item.Label, &item.Count); err != nil {
			return nil, fmt.Errorf("could not scan keystroke count: %w", err)
		}

		result = append(result, item)
	}

	return result, nil
}

// Usage is what ScanUsage distills out of the full stroke history.
type Usage struct {
	Total    int
	Shifted  int
	Chorded  int
	Repeated int
}

// ScanUsage walks the whole history row by row. Stores grow without bound,
// so this shows progress on the terminal while it runs.
func (s *SQLiteStorage) ScanUsage() (Usage, error) {
	rows, err := s.db.Query(`select shift, ctrl, alt, repeat from keystrokes order by ts`)
	if err != nil {
		return Usage{}, fmt.Errorf("could not scan keystroke history: %w", err)
	}

	defer rows.Close()

	bar := progressbar.Default(-1, "Scanning history...")

	var usage Usage

	for rows.Next() {
		if err := bar.Add(1); err != nil {
			slog.Error("could not update progress bar", "error", err)
		}

		var shift, ctrl, alt, repeat bool

		if err := rows.Scan(&shift, &ctrl, &alt, &repeat); err != nil {
			return Usage{}, fmt.Errorf("could not scan keystroke row: %w", err)
		}

		usage.Total++

		if shift {
			usage.Shifted++
		}

		if ctrl || alt {
			usage.Chorded++
		}

		if repeat {
			usage.Repeated++
		}
	}

	if err := bar.Finish(); err != nil {
		slog.Error("could not finish progress bar", "error", err)
	}

	return usage, nil
}

// Merge copies every stroke from the inputs into output, preserving
// timestamps.
func Merge(inputs []*SQLiteStorage, output *SQLiteStorage) error {
	for _, input := range inputs {
		rows, err := input.db.Query(`select code, label, shift, ctrl, alt, repeat, ts from keystrokes`)
		if err != nil {
			return fmt.Errorf("could not read input store: %w", err)
		}

		for rows.Next() {
			var (
				stroke model.KeyStroke
				ts     string
			)

			err = rows.Scan(&stroke.Code, &stroke.Label, &stroke.Shift, &stroke.Ctrl, &stroke.Alt, &stroke.Repeat, &ts)
			if err != nil {
				rows.Close()

				return fmt.Errorf("could not scan input row: %w", err)
			}

			_, err = output.db.Exec(`insert into keystrokes(code, label, shift, ctrl, alt, repeat, ts)
			    values(?, ?, ?, ?, ?, ?, ?)`,
				stroke.Code, stroke.Label, stroke.Shift, stroke.Ctrl, stroke.Alt, stroke.Repeat, ts)
			if err != nil {
				rows.Close()

				return fmt.Errorf("could not copy row: %w", err)
			}
		}

		rows.Close()
	}

	return nil
}

func (s *SQLiteStorage) Close() {
	s.db.Close()
}
