package menuscript

import (
	"sync"
)

// Session is the entity registry behind one interpreter: the single main
// window plus every style, control, workspace, popup, API config, grid
// and binding the script has defined. All methods are safe for
// concurrent use; API completions and UI callbacks touch the session
// from outside the script goroutine.
type Session struct {
	mu sync.RWMutex

	main       *Window
	styles     map[string]*Style
	controls   map[string]*Control
	workspaces map[string]*Workspace
	popups     map[string]*Popup
	popupOrder []string
	apis       map[string]*APIConfig
	bindings   map[BindingKey]*Binding
	grids      map[string]*GridSpec
	language   string
}

// NewSession creates an empty session. The main window exists from the
// start but is unconfigured until a window command runs.
func NewSession(cfg *Config) *Session {
	s := &Session{language: cfg.DefaultLanguage}
	s.reset(cfg)
	return s
}

// reset reinitializes every map. Caller holds the lock (or owns the
// session exclusively, as in NewSession).
func (s *Session) reset(cfg *Config) {
	s.main = &Window{
		Name:   "main",
		Width:  cfg.DefaultWindowW,
		Height: cfg.DefaultWindowH,
	}
	s.styles = make(map[string]*Style)
	s.controls = make(map[string]*Control)
	s.workspaces = make(map[string]*Workspace)
	s.popups = make(map[string]*Popup)
	s.popupOrder = nil
	s.apis = make(map[string]*APIConfig)
	s.bindings = make(map[BindingKey]*Binding)
	s.grids = make(map[string]*GridSpec)
}

// Clear atomically discards every entity. A partially-visible reset is
// never observable: readers see either the old registry or an empty one.
func (s *Session) Clear(cfg *Config) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reset(cfg)
}

// Main returns the main window
func (s *Session) Main() *Window {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.main
}

// ConfigureMain applies a window command to the main window in place.
// The returned copy is safe to hand to the renderer.
func (s *Session) ConfigureMain(name, title string, width, height int) Window {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.main.Name = name
	s.main.Title = title
	s.main.Width = width
	s.main.Height = height
	s.main.Configured = true
	return *s.main
}

// DefineStyle registers a style, replacing any prior definition
func (s *Session) DefineStyle(st *Style) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, replaced := s.styles[st.Name]
	s.styles[st.Name] = st
	return replaced
}

// StyleByName looks up a style definition
func (s *Session) StyleByName(name string) (*Style, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st, ok := s.styles[name]
	return st, ok
}

// ResolveStyle returns the style for a control class, or a default
// empty style when the class was never defined. Resolution is by name
// at use time, so styles defined after the control still apply.
func (s *Session) ResolveStyle(class string) *Style {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if st, ok := s.styles[class]; ok {
		return st
	}
	return &Style{Name: class}
}

// DefineControl registers a control, replacing any prior one with the
// same name. Controls owned by a popup are tracked on the popup so
// closing it can cascade.
func (s *Session) DefineControl(c *Control) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	prev, replaced := s.controls[c.Name]
	s.controls[c.Name] = c
	if replaced && prev.Container != c.Container {
		if old, ok := s.popups[prev.Container]; ok {
			old.Controls = removeName(old.Controls, c.Name)
		}
	}
	if p, ok := s.popups[c.Container]; ok && !containsName(p.Controls, c.Name) {
		p.Controls = append(p.Controls, c.Name)
	}
	return replaced
}

// ControlByName looks up a control definition
func (s *Session) ControlByName(name string) (*Control, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.controls[name]
	return c, ok
}

// ControlValue is the value a control contributes to template
// substitution: the entered value when there is one, else its text.
func (s *Session) ControlValue(name string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.controls[name]
	if !ok {
		return "", false
	}
	if c.Value != "" {
		return c.Value, true
	}
	return c.Text, true
}

// SetControlGeometry replaces a control's placement and returns a copy
// for the renderer. Geometry writes go through here so placement
// commands and event handlers never mutate a control unlocked.
func (s *Session) SetControlGeometry(name string, g Geometry) (Control, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.controls[name]
	if !ok {
		return Control{}, false
	}
	c.Geometry = g
	return *c, true
}

// removeControlLocked drops a control and any bindings attached to it
func (s *Session) removeControlLocked(name string) {
	delete(s.controls, name)
	for key := range s.bindings {
		if key.Control == name {
			delete(s.bindings, key)
		}
	}
}

// DefineWorkspace registers a workspace, replacing any prior definition
func (s *Session) DefineWorkspace(w *Workspace) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, replaced := s.workspaces[w.Name]
	s.workspaces[w.Name] = w
	return replaced
}

// WorkspaceByName looks up a workspace definition
func (s *Session) WorkspaceByName(name string) (*Workspace, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	w, ok := s.workspaces[name]
	return w, ok
}

// DefinePopup registers a popup. The caller closes any prior popup with
// the same id first, so registration never collides.
func (s *Session) DefinePopup(p *Popup) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.popups[p.ID] = p
	s.popupOrder = append(s.popupOrder, p.ID)
}

// PopupByID looks up a live popup
func (s *Session) PopupByID(id string) (*Popup, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.popups[id]
	return p, ok
}

// RemovePopup drops a popup and cascades to its controls and their
// bindings. Returns the removed control names and whether the popup
// existed; removing an absent popup is a harmless no-op.
func (s *Session) RemovePopup(id string) ([]string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.popups[id]
	if !ok {
		return nil, false
	}
	removed := make([]string, len(p.Controls))
	copy(removed, p.Controls)
	for _, name := range p.Controls {
		s.removeControlLocked(name)
	}
	delete(s.popups, id)
	// A recreated popup must not inherit the old grid
	delete(s.grids, id)
	for i, pid := range s.popupOrder {
		if pid == id {
			s.popupOrder = append(s.popupOrder[:i], s.popupOrder[i+1:]...)
			break
		}
	}
	return removed, true
}

// PopupList returns live popups in creation order
func (s *Session) PopupList() []PopupInfo {
	s.mu.RLock()
	defer s.mu.RUnlock()
	list := make([]PopupInfo, 0, len(s.popupOrder))
	for _, id := range s.popupOrder {
		if p, ok := s.popups[id]; ok {
			list = append(list, PopupInfo{ID: p.ID, Title: p.Title, State: p.State})
		}
	}
	return list
}

// DefineAPI registers an API configuration, replacing any prior one
func (s *Session) DefineAPI(a *APIConfig) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, replaced := s.apis[a.Name]
	s.apis[a.Name] = a
	return replaced
}

// APIByName looks up an API configuration
func (s *Session) APIByName(name string) (*APIConfig, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.apis[name]
	return a, ok
}

// SetBinding attaches an action to a (control, event) pair, replacing
// any existing binding for that pair
func (s *Session) SetBinding(b *Binding) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, replaced := s.bindings[b.Key]
	s.bindings[b.Key] = b
	return replaced
}

// BindingFor looks up the binding for a (control, event) pair
func (s *Session) BindingFor(key BindingKey) (*Binding, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.bindings[key]
	return b, ok
}

// DefineGrid registers a grid spec for a container, replacing any prior one
func (s *Session) DefineGrid(g *GridSpec) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.grids[g.Owner] = g
}

// GridFor looks up the grid spec for a container
func (s *Session) GridFor(owner string) (*GridSpec, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	g, ok := s.grids[owner]
	return g, ok
}

// ActivateGrid marks a container's grid live and returns a copy of it
func (s *Session) ActivateGrid(owner string) (GridSpec, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	g, ok := s.grids[owner]
	if !ok {
		return GridSpec{}, false
	}
	g.Active = true
	return *g, true
}

// ActiveGridFor returns a copy of the grid spec for a container once
// layout-grid has activated it; an inactive or absent grid reports false
func (s *Session) ActiveGridFor(owner string) (GridSpec, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	g, ok := s.grids[owner]
	if !ok || !g.Active {
		return GridSpec{}, false
	}
	return *g, true
}

// GridPlacements snapshots every grid-placed control in a container,
// for re-placement when its grid activates
func (s *Session) GridPlacements(container string) []Control {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var list []Control
	for _, c := range s.controls {
		if c.Container == container && c.Geometry.Mode == GeometryGrid {
			list = append(list, *c)
		}
	}
	return list
}

func removeName(names []string, name string) []string {
	for i, n := range names {
		if n == name {
			return append(names[:i], names[i+1:]...)
		}
	}
	return names
}

func containsName(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}

// Language returns the active display language
func (s *Session) Language() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.language
}

// SetLanguage switches the active display language
func (s *Session) SetLanguage(code string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.language = code
}
