package menuscript

// Renderer receives one-way instructions as the interpreter mutates the
// session. Implementations draw real widgets (the fyne frontend) or
// record instructions (tests). Calls arrive on the goroutine that runs
// the script or drains the task queue; implementations marshal onto
// their own UI thread as needed. No call reports back to the
// interpreter.
type Renderer interface {
	// ConfigureWindow applies title, size and position to the main window
	ConfigureWindow(w *Window)
	// CreatePopup opens a secondary window
	CreatePopup(p *Popup)
	// CreateControl realizes a control in its container with its
	// resolved style
	CreateControl(c *Control, style *Style)
	// UpdateControlAttr pushes a new attribute value into a live widget
	UpdateControlAttr(control, attr, value string)
	// ApplyGeometry re-places a control after its geometry changed
	ApplyGeometry(c *Control)
	// CreateWorkspace realizes a workspace region in the main window
	CreateWorkspace(w *Workspace)
	// SetVisibility shows, hides, minimizes or maximizes a window or
	// popup by name
	SetVisibility(name string, state Visibility)
	// RemoveControl destroys a widget, typically during popup cascade
	RemoveControl(name string)
	// DestroyWindow closes a popup window
	DestroyWindow(id string)
	// Show makes the main window visible; idempotent
	Show()
	// Reset tears down everything after a clear command
	Reset()
}

// NullRenderer discards every instruction. Useful headless: the
// interpreter still maintains full session state without a display.
type NullRenderer struct{}

func (NullRenderer) ConfigureWindow(*Window)             {}
func (NullRenderer) CreatePopup(*Popup)                  {}
func (NullRenderer) CreateControl(*Control, *Style)      {}
func (NullRenderer) UpdateControlAttr(_, _, _ string)    {}
func (NullRenderer) ApplyGeometry(*Control)              {}
func (NullRenderer) CreateWorkspace(*Workspace)          {}
func (NullRenderer) SetVisibility(_ string, _ Visibility) {}
func (NullRenderer) RemoveControl(string)                {}
func (NullRenderer) DestroyWindow(string)                {}
func (NullRenderer) Show()                               {}
func (NullRenderer) Reset()                              {}
