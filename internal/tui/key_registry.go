package tui

import (
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

type KeyHandler func(m MainModel, key string) (MainModel, tea.Cmd, bool)

type KeyBinding struct {
	Key         string
	Handler     KeyHandler
	Description string
	// Enabled gates the binding on widget state. Nil means always.
	Enabled  func(m MainModel) bool
	Priority int
}

func (b KeyBinding) AppliesTo(m MainModel) bool {
	return b.Enabled == nil || b.Enabled(m)
}

type HandlerRegistry struct {
	bindings []KeyBinding
}

func NewHandlerRegistry() *HandlerRegistry {
	return &HandlerRegistry{}
}

func (r *HandlerRegistry) Register(b KeyBinding) {
	r.bindings = append(r.bindings, b)
	sort.SliceStable(r.bindings, func(i, j int) bool {
		return r.bindings[i].Priority > r.bindings[j].Priority
	})
}

func (r *HandlerRegistry) Handle(m MainModel, key string) (MainModel, tea.Cmd, bool) {
	for _, b := range r.bindings {
		if b.Key == key && b.AppliesTo(m) {
			next, cmd, handled := b.Handler(m, key)
			if handled {
				return next, cmd, true
			}
		}
	}
	return m, nil, false
}

func (r *HandlerRegistry) ActiveBindings(m MainModel) []KeyBinding {
	var out []KeyBinding
	for _, b := range r.bindings {
		if b.AppliesTo(m) {
			out = append(out, b)
		}
	}
	return out
}

// Help lists the bindings usable right now, one entry per description.
func (r *HandlerRegistry) Help(m MainModel) string {
	seen := make(map[string]bool)
	var parts []string
	for _, b := range r.ActiveBindings(m) {
		if b.Description == "" || seen[b.Description] {
			continue
		}
		seen[b.Description] = true
		parts = append(parts, "["+displayKey(b.Key)+"]"+b.Description)
	}
	return strings.Join(parts, "|")
}

func displayKey(key string) string {
	if key == " " {
		return "space"
	}
	return key
}
