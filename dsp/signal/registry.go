package signal

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/cwbudde/algo-epicycle/dsp/core"
)

// Entry is a named periodic signal.
type Entry struct {
	Name        string
	Func        core.Func
	Period      float64
	Description string
}

// Registry resolves signals by name. The zero value is empty and ready to use.
type Registry struct {
	entries map[string]Entry
}

// NewRegistry returns a registry holding the built-in signals.
func NewRegistry() *Registry {
	r := &Registry{}
	for _, e := range builtins() {
		r.MustRegister(e)
	}
	return r
}

func builtins() []Entry {
	return []Entry{
		{Name: "sine", Func: Sine(1, 2*math.Pi), Period: 2 * math.Pi, Description: "sin(t)"},
		{Name: "square", Func: Square(1, 2*math.Pi), Period: 2 * math.Pi, Description: "sign(sin(t))"},
		{Name: "sawtooth", Func: Sawtooth(1, 1), Period: 1, Description: "t - floor(t)"},
		{Name: "triangle", Func: Triangle(1, 1), Period: 1, Description: "1 - 4|frac(t) - 1/2|"},
	}
}

// Register adds e. Names are case-insensitive and must be unique.
func (r *Registry) Register(e Entry) error {
	key := normalize(e.Name)
	if key == "" {
		return fmt.Errorf("signal name must not be empty: %w", core.ErrDomain)
	}
	if e.Func == nil {
		return fmt.Errorf("signal %q has no function: %w", e.Name, core.ErrDomain)
	}
	if e.Period <= 0 || !core.IsFinite(e.Period) {
		return fmt.Errorf("signal %q period must be finite and > 0: %v: %w", e.Name, e.Period, core.ErrDomain)
	}
	if r.entries == nil {
		r.entries = make(map[string]Entry)
	}
	if _, ok := r.entries[key]; ok {
		return fmt.Errorf("signal %q already registered", e.Name)
	}

	e.Name = key
	r.entries[key] = e
	return nil
}

// MustRegister is like Register but panics on error.
func (r *Registry) MustRegister(e Entry) {
	if err := r.Register(e); err != nil {
		panic(err)
	}
}

// Lookup returns the entry registered under name.
func (r *Registry) Lookup(name string) (Entry, bool) {
	e, ok := r.entries[normalize(name)]
	return e, ok
}

// Names returns all registered names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
