package main

import (
	"image/color"
	"strconv"
	"strings"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	menuscript "github.com/phroun/menuscript"
)

// guiRenderer realizes interpreter render instructions as fyne widgets.
// All fyne mutations are marshaled onto the UI thread with fyne.Do, so
// instructions may arrive from the script goroutine or the pump loop.
type guiRenderer struct {
	mu         sync.RWMutex
	app        fyne.App
	mainWindow fyne.Window
	mainArea   *fyne.Container
	widgets    map[string]fyne.CanvasObject
	areas      map[string]*fyne.Container // container id -> placement area
	popups     map[string]fyne.Window
	interp     *menuscript.Interpreter
}

func newGuiRenderer(app fyne.App, mainWindow fyne.Window) *guiRenderer {
	mainArea := container.NewWithoutLayout()
	mainWindow.SetContent(mainArea)
	return &guiRenderer{
		app:        app,
		mainWindow: mainWindow,
		mainArea:   mainArea,
		widgets:    make(map[string]fyne.CanvasObject),
		areas:      map[string]*fyne.Container{"": mainArea},
		popups:     make(map[string]fyne.Window),
	}
}

// Bind connects the renderer to its interpreter so widget callbacks can
// fire events back into it
func (r *guiRenderer) Bind(in *menuscript.Interpreter) {
	r.interp = in
}

func (r *guiRenderer) ConfigureWindow(w *menuscript.Window) {
	fyne.Do(func() {
		r.mainWindow.SetTitle(w.Title)
		r.mainWindow.Resize(fyne.NewSize(float32(w.Width), float32(w.Height)))
	})
}

func (r *guiRenderer) CreatePopup(p *menuscript.Popup) {
	fyne.Do(func() {
		win := r.app.NewWindow(p.Title)
		win.Resize(fyne.NewSize(float32(p.Width), float32(p.Height)))
		area := container.NewWithoutLayout()
		win.SetContent(area)

		r.mu.Lock()
		r.popups[p.ID] = win
		r.areas[p.ID] = area
		r.mu.Unlock()

		win.Show()
	})
}

func (r *guiRenderer) CreateControl(c *menuscript.Control, style *menuscript.Style) {
	name := c.Name
	var obj fyne.CanvasObject
	switch c.Type {
	case "label":
		obj = widget.NewLabel(c.Text)
	case "button":
		obj = widget.NewButton(c.Text, func() {
			r.interp.FireEvent(name, menuscript.EventClick)
		})
	case "entry":
		e := widget.NewEntry()
		e.SetPlaceHolder(c.Placeholder)
		if c.Value != "" {
			e.SetText(c.Value)
		}
		e.OnChanged = func(s string) {
			r.interp.SetControlValue(name, s)
			r.interp.FireEvent(name, menuscript.EventKeyRelease)
		}
		obj = e
	case "textarea":
		t := widget.NewMultiLineEntry()
		if c.Wrap == "none" {
			t.Wrapping = fyne.TextWrapOff
		} else {
			t.Wrapping = fyne.TextWrapWord
		}
		t.SetText(c.Content)
		t.Disable()
		obj = t
	default:
		return
	}

	if bg := parseColor(style.Background); bg != nil {
		rect := canvas.NewRectangle(bg)
		obj = container.NewStack(rect, obj)
	}

	fyne.Do(func() {
		r.mu.Lock()
		if old, ok := r.widgets[name]; ok {
			if area := r.areas[c.Container]; area != nil {
				area.Remove(old)
			}
		}
		r.widgets[name] = obj
		area := r.areas[c.Container]
		r.mu.Unlock()

		if area == nil {
			return
		}
		area.Add(obj)
		area.Refresh()
	})
}

func (r *guiRenderer) UpdateControlAttr(control, attr, value string) {
	r.mu.RLock()
	obj, ok := r.widgets[control]
	r.mu.RUnlock()
	if !ok {
		return
	}
	fyne.Do(func() {
		setWidgetAttr(unwrap(obj), attr, value)
	})
}

// unwrap digs the widget out of a background stack
func unwrap(obj fyne.CanvasObject) fyne.CanvasObject {
	if c, ok := obj.(*fyne.Container); ok && len(c.Objects) == 2 {
		return c.Objects[1]
	}
	return obj
}

func setWidgetAttr(obj fyne.CanvasObject, attr, value string) {
	switch w := obj.(type) {
	case *widget.Label:
		if attr == "text" {
			w.SetText(value)
		}
	case *widget.Button:
		if attr == "text" {
			w.SetText(value)
		}
	case *widget.Entry:
		switch attr {
		case "text", "value", "content":
			w.SetText(value)
		case "placeholder":
			w.SetPlaceHolder(value)
		}
	}
}

func (r *guiRenderer) ApplyGeometry(c *menuscript.Control) {
	r.mu.RLock()
	obj := r.widgets[c.Name]
	area := r.areas[c.Container]
	r.mu.RUnlock()
	if obj == nil || area == nil {
		return
	}

	fyne.Do(func() {
		areaSize := area.Size()
		if areaSize.Width == 0 {
			areaSize = r.mainWindow.Canvas().Size()
		}
		g := c.Geometry
		switch g.Mode {
		case menuscript.GeometryAbsolute:
			obj.Move(fyne.NewPos(float32(g.X), float32(g.Y)))
			if g.W > 0 && g.H > 0 {
				obj.Resize(fyne.NewSize(float32(g.W), float32(g.H)))
			} else {
				obj.Resize(obj.MinSize())
			}
		case menuscript.GeometryRelative:
			x := float32(g.RelX) * areaSize.Width
			y := float32(g.RelY) * areaSize.Height
			w := float32(g.RelW) * areaSize.Width
			h := float32(g.RelH) * areaSize.Height
			if w == 0 || h == 0 {
				min := obj.MinSize()
				if w == 0 {
					w = min.Width
				}
				if h == 0 {
					h = min.Height
				}
			}
			obj.Move(fyne.NewPos(x, y))
			obj.Resize(fyne.NewSize(w, h))
		case menuscript.GeometryGrid:
			r.placeInGrid(c, obj, areaSize)
		}
		obj.Refresh()
	})
}

// placeInGrid computes a cell rectangle from the container's grid spec
// and the weights defined by grid-setup. Controls stay unplaced until
// layout-grid activates the spec.
func (r *guiRenderer) placeInGrid(c *menuscript.Control, obj fyne.CanvasObject, areaSize fyne.Size) {
	spec, ok := r.interp.Session().ActiveGridFor(c.Container)
	if !ok {
		return
	}
	g := c.Geometry

	colStart, colEnd := spanFraction(spec.ColWeights, g.Col, g.ColSpan)
	rowStart, rowEnd := spanFraction(spec.RowWeights, g.Row, g.RowSpan)

	x := colStart * areaSize.Width
	y := rowStart * areaSize.Height
	w := (colEnd - colStart) * areaSize.Width
	h := (rowEnd - rowStart) * areaSize.Height
	obj.Move(fyne.NewPos(x, y))
	obj.Resize(fyne.NewSize(w, h))
}

// spanFraction converts a weighted cell span into [start, end) fractions
// of the container dimension
func spanFraction(weights []int, index, span int) (float32, float32) {
	total := 0
	for _, w := range weights {
		total += w
	}
	if total == 0 || index >= len(weights) {
		return 0, 0
	}
	before := 0
	for i := 0; i < index && i < len(weights); i++ {
		before += weights[i]
	}
	covered := 0
	for i := index; i < index+span && i < len(weights); i++ {
		covered += weights[i]
	}
	return float32(before) / float32(total), float32(before+covered) / float32(total)
}

func (r *guiRenderer) CreateWorkspace(w *menuscript.Workspace) {
	fyne.Do(func() {
		area := container.NewWithoutLayout()
		var region fyne.CanvasObject = area
		if bg := parseColor(w.Background); bg != nil {
			rect := canvas.NewRectangle(bg)
			region = container.NewStack(rect, area)
		}
		region.Move(fyne.NewPos(float32(w.X), float32(w.Y)))
		region.Resize(fyne.NewSize(float32(w.W), float32(w.H)))

		r.mu.Lock()
		r.areas[w.Name] = area
		r.mu.Unlock()

		r.mainArea.Add(region)
		r.mainArea.Refresh()
	})
}

// SetVisibility maps the abstract states onto what fyne windows
// support: minimized falls back to hiding, maximized to showing at the
// current size.
func (r *guiRenderer) SetVisibility(name string, state menuscript.Visibility) {
	r.mu.RLock()
	win, isPopup := r.popups[name]
	r.mu.RUnlock()
	if !isPopup {
		win = r.mainWindow
	}
	fyne.Do(func() {
		switch state {
		case menuscript.VisibilityHidden, menuscript.VisibilityMinimized:
			win.Hide()
		default:
			win.Show()
		}
	})
}

func (r *guiRenderer) RemoveControl(name string) {
	fyne.Do(func() {
		r.mu.Lock()
		obj, ok := r.widgets[name]
		delete(r.widgets, name)
		r.mu.Unlock()
		if !ok {
			return
		}
		for _, area := range r.areas {
			area.Remove(obj)
		}
	})
}

func (r *guiRenderer) DestroyWindow(id string) {
	fyne.Do(func() {
		r.mu.Lock()
		win, ok := r.popups[id]
		delete(r.popups, id)
		delete(r.areas, id)
		r.mu.Unlock()
		if ok {
			win.Close()
		}
	})
}

func (r *guiRenderer) Show() {
	fyne.Do(func() {
		r.mainWindow.Show()
	})
}

func (r *guiRenderer) Reset() {
	fyne.Do(func() {
		r.mu.Lock()
		popups := r.popups
		r.popups = make(map[string]fyne.Window)
		r.widgets = make(map[string]fyne.CanvasObject)
		r.areas = map[string]*fyne.Container{"": r.mainArea}
		r.mu.Unlock()

		for _, win := range popups {
			win.Close()
		}
		r.mainArea.RemoveAll()
		r.mainArea.Refresh()
	})
}

// parseColor understands #rgb and #rrggbb hex colors plus a few names
// the scripts use
func parseColor(s string) color.Color {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		return nil
	}
	switch s {
	case "white":
		return color.White
	case "black":
		return color.Black
	}
	if !strings.HasPrefix(s, "#") {
		return nil
	}
	hex := s[1:]
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return nil
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return nil
	}
	return color.NRGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 0xff,
	}
}
