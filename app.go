package main

import (
	"context"
	"log"
	"sync"

	"github.com/vellum-cad/vellum/pkg/engine"
	"github.com/vellum-cad/vellum/pkg/entity"
	"github.com/vellum-cad/vellum/pkg/geom"
	"github.com/vellum-cad/vellum/pkg/store"
)

// layerPalette assigns distinct accent colors to layers for display.
var layerPalette = []string{
	"#4A90D9", "#E67E22", "#2ECC71", "#9B59B6",
	"#E74C3C", "#1ABC9C", "#F39C12", "#3498DB",
}

// App is the Wails backend. It exposes methods to the frontend via bindings.
type App struct {
	ctx    context.Context
	engine *engine.Engine

	mu    sync.Mutex
	store *store.Store
}

// EntityRecord is the JSON-serializable entity format sent to the frontend.
type EntityRecord struct {
	ID      string       `json:"id"`
	Kind    string       `json:"kind"`
	Layer   string       `json:"layer"`
	Color   string       `json:"color"`
	Visible bool         `json:"visible"`
	Locked  bool         `json:"locked"`
	Style   entity.Style `json:"style"`
	Data    entity.Data  `json:"data"`
}

// EvalErrorData is a JSON-serializable eval error for the frontend.
type EvalErrorData struct {
	Line    int    `json:"line"`
	Col     int    `json:"col"`
	Message string `json:"message"`
}

// EvalResult is the full result returned to the frontend.
type EvalResult struct {
	Entities []EntityRecord  `json:"entities"`
	Errors   []EvalErrorData `json:"errors"`
}

// NewApp creates a new App with an engine and an empty store.
func NewApp() *App {
	return &App{
		engine: engine.NewEngine(),
		store:  store.New(),
	}
}

// startup is called by Wails on app startup. The context is saved
// so we can call Wails runtime methods later if needed.
func (a *App) startup(ctx context.Context) {
	a.ctx = ctx
}

// Evaluate runs drawing script source and returns the resulting
// entities plus any errors. This is the primary binding called by the
// frontend editor. A successful evaluation replaces the current store.
func (a *App) Evaluate(source string) EvalResult {
	result := EvalResult{
		Entities: []EntityRecord{},
		Errors:   []EvalErrorData{},
	}

	st, evalErrs, err := a.engine.Evaluate(source)
	if err != nil {
		// Fatal error (panic, timeout, etc.)
		log.Printf("Evaluate fatal error: %v", err)
		result.Errors = append(result.Errors, EvalErrorData{Message: err.Error()})
		return result
	}

	if len(evalErrs) > 0 {
		for _, e := range evalErrs {
			result.Errors = append(result.Errors, EvalErrorData{
				Line:    e.Line,
				Col:     e.Col,
				Message: e.Message,
			})
		}
		return result
	}

	a.mu.Lock()
	a.store = st
	a.mu.Unlock()

	result.Entities = a.records(st)
	return result
}

// State returns the current store contents without re-evaluating.
func (a *App) State() []EntityRecord {
	a.mu.Lock()
	st := a.store
	a.mu.Unlock()
	return a.records(st)
}

// HitTest returns the entity under the given world coordinate, if any.
func (a *App) HitTest(x, y, tolerance float64) *EntityRecord {
	a.mu.Lock()
	st := a.store
	a.mu.Unlock()

	e, ok := st.EntityAt(geom.Point{X: x, Y: y}, tolerance)
	if !ok {
		return nil
	}
	rec := a.record(e, a.layerColors(st))
	return &rec
}

func (a *App) records(st *store.Store) []EntityRecord {
	colors := a.layerColors(st)
	all := st.All()
	out := make([]EntityRecord, 0, len(all))
	for _, e := range all {
		out = append(out, a.record(e, colors))
	}
	return out
}

func (a *App) record(e entity.Entity, colors map[string]string) EntityRecord {
	return EntityRecord{
		ID:      string(e.ID),
		Kind:    e.Kind().String(),
		Layer:   e.Layer,
		Color:   colors[e.Layer],
		Visible: e.Visible,
		Locked:  e.Locked,
		Style:   e.Style,
		Data:    e.Data,
	}
}

// layerColors maps each layer to a palette color in first-seen order.
func (a *App) layerColors(st *store.Store) map[string]string {
	colors := make(map[string]string)
	for _, e := range st.All() {
		if _, ok := colors[e.Layer]; !ok {
			colors[e.Layer] = layerPalette[len(colors)%len(layerPalette)]
		}
	}
	return colors
}
