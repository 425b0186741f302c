package web

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/a-h/templ"

	"github.com/jethrobull/touchboard/db"
	"github.com/jethrobull/touchboard/layout"
	"github.com/jethrobull/touchboard/logging"
	"github.com/jethrobull/touchboard/model"
	cs "github.com/jethrobull/touchboard/web/components"
)

// ServerHandler holds all dependencies needed for the web server handlers.
type ServerHandler struct {
	Storage  db.Storage
	Registry *layout.Registry
}

// SafeRenderTemplate safely renders a templ component to an http.ResponseWriter.
func SafeRenderTemplate(component templ.Component, w http.ResponseWriter) error {
	// Do not write to w because it implies 200 status
	var buf bytes.Buffer

	err := component.Render(context.Background(), &buf)
	if err != nil {
		return fmt.Errorf("could not render template: %w", err)
	}

	// Template executed successfully to the buffer.
	// Now, copy it over to the ResponseWriter
	// This implies a 200 OK status code
	w.Header().Set("Content-Type", "text/html; charset=UTF-8")

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response", "error", err)

		return fmt.Errorf("could not write to response writer: %w", err)
	}

	return nil
}

// BuildStatsRenderContext matches stored press counts to the placed keys.
// Keys that never got pressed still render, with a zero count.
func (s *ServerHandler) BuildStatsRenderContext(counts []model.KeyCount) cs.RenderContext {
	byCode := make(map[model.KeyCode]int, len(counts))
	maxVal := 0

	for _, count := range counts {
		byCode[count.Code] += count.Count

		if byCode[count.Code] > maxVal {
			maxVal = byCode[count.Code]
		}
	}

	items := make([]cs.Item, 0, len(s.Registry.Keys))

	for _, key := range s.Registry.Keys {
		items = append(items, cs.Item{Key: key, Count: byCode[key.Code]})
	}

	return cs.RenderContext{
		Width:  s.Registry.Width,
		Height: s.Registry.Height,
		Items:  items,
		MaxVal: maxVal,
	}
}

func (s *ServerHandler) StatsHandle(w http.ResponseWriter, _ *http.Request) {
	slog.InfoContext(logCtx, "Got request to stats page")

	counts, err := s.Storage.GatherAll()
	if err != nil {
		slog.ErrorContext(logCtx, "Could not gather stats", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	rc := s.BuildStatsRenderContext(counts)

	if err := SafeRenderTemplate(cs.StatsPage(rc), w); err != nil {
		slog.ErrorContext(logCtx, "Could not render stats page", "error", err)
	}
}

// GeometryHandle dumps the placed keys as JSON, mostly for debugging
// layout documents against a real browser window.
func (s *ServerHandler) GeometryHandle(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(s.Registry.Keys); err != nil {
		slog.ErrorContext(logCtx, "Could not encode geometry", "error", err)
	}
}

func BuildServer(storage db.Storage, reg *layout.Registry) *http.ServeMux {
	mux := http.NewServeMux()

	handler := ServerHandler{Storage: storage, Registry: reg}

	mux.Handle("/geometry", http.HandlerFunc(handler.GeometryHandle))
	mux.Handle("/", http.HandlerFunc(handler.StatsHandle))

	return mux
}

// All server log records carry the component tag via ContextHandler.
var logCtx = logging.ComponentCtx("web")

func StartServer(port int, storage db.Storage, reg *layout.Registry) error {
	slog.InfoContext(logCtx, "Running interface", "port", port)

	err := http.ListenAndServe(fmt.Sprintf(":%d", port), BuildServer(storage, reg))
	if err != nil {
		return fmt.Errorf("could not run server: %w", err)
	}

	return nil
}
