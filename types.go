package menuscript

import (
	"time"
)

// Token is one whitespace-delimited unit of a script line. Quoted records
// whether the token began with a quote character; quoted tokens are never
// interpreted as key=value options.
type Token struct {
	Text   string
	Quoted bool
}

// ParsedCommand is one tokenized script line ready for dispatch
type ParsedCommand struct {
	Name   string
	Tokens []Token
	Line   int    // 1-based line in the script, 0 for synthetic lines
	Raw    string // Original line text for diagnostics
}

// Visibility is the display state of a window or popup
type Visibility int

const (
	VisibilityShown Visibility = iota
	VisibilityHidden
	VisibilityMinimized
	VisibilityMaximized
)

func (v Visibility) String() string {
	switch v {
	case VisibilityShown:
		return "shown"
	case VisibilityHidden:
		return "hidden"
	case VisibilityMinimized:
		return "minimized"
	case VisibilityMaximized:
		return "maximized"
	default:
		return "unknown"
	}
}

// GeometryMode selects which positioning fields of a Geometry are live.
// A control is in exactly one mode at a time; assigning a new mode
// replaces the previous placement entirely.
type GeometryMode int

const (
	GeometryNone GeometryMode = iota
	GeometryAbsolute
	GeometryRelative
	GeometryGrid
)

// Geometry is a control placement in one of the three positioning modes
type Geometry struct {
	Mode GeometryMode

	// Absolute placement in pixels
	X, Y, W, H int

	// Relative placement as fractions of the container, each in [0,1]
	RelX, RelY, RelW, RelH float64
	Anchor                 string

	// Grid placement
	Row, Col         int
	RowSpan, ColSpan int
	Sticky           string
}

// Window is the main application window. The interpreter owns exactly one;
// the window command reconfigures it in place.
type Window struct {
	Name       string
	Title      string
	Width      int
	Height     int
	X, Y       int
	State      Visibility
	Configured bool // True once a window command has run
}

// Style is a named bundle of visual attributes referenced by control class
type Style struct {
	Name       string
	Background string
	Color      string
	Font       string // "family,size[,weight]"
}

// Control is a widget definition: label, button, entry, or textarea
type Control struct {
	Name        string
	Type        string
	Text        string
	Value       string
	Content     string // Textarea body
	Placeholder string
	Class       string // Style name, may reference a style defined later
	Container   string // "" for main window, else a workspace or popup id
	Wrap        string // Textarea wrapping, "none" disables word wrap
	Geometry    Geometry
}

// Workspace is a named sub-region of the main window that owns controls
type Workspace struct {
	Name       string
	X, Y, W, H int
	Background string
}

// Popup is a secondary window positioned at a fixed offset from the main
// window's position at creation time
type Popup struct {
	ID       string
	Title    string
	Width    int
	Height   int
	OffsetX  int
	OffsetY  int
	X, Y     int // Resolved screen position
	State    Visibility
	Controls []string // Owned control names in creation order
}

// APIConfig is a named remote endpoint with optional credentials
type APIConfig struct {
	Name       string
	BaseURL    string
	Key        string // Sent as a bearer token unless already prefixed
	Username   string
	Password   string
	ShowSecret bool
}

// GridSpec is a grid definition for a container, created by grid-setup
// and activated by layout-grid
type GridSpec struct {
	Owner      string // "" for main window, else workspace or popup id
	Rows, Cols int
	RowWeights []int
	ColWeights []int
	Active     bool
}

// EventKind is a user interaction a binding can attach to
type EventKind string

const (
	EventClick       EventKind = "click"
	EventDoubleClick EventKind = "doubleclick"
	EventKeyRelease  EventKind = "keyrelease"
)

// BindingKey identifies a binding: one control, one event kind
type BindingKey struct {
	Control string
	Event   EventKind
}

// AttrRef names one attribute of one control, e.g. "title.text" or
// "main.status.text"
type AttrRef struct {
	Control string
	Attr    string
	Main    bool // Explicit main. prefix, used from popup contexts
}

// Assignment is a parsed binding expression: copy a literal into a
// control attribute when the bound event fires
type Assignment struct {
	Target  AttrRef
	Literal string
}

// APICall is a deferred remote request attached to a control's click event
type APICall struct {
	API          string
	Method       string
	Path         string
	BodyTemplate string // May contain {controlName} placeholders
	Target       *AttrRef
}

// Binding is the action attached to a (control, event) pair. Exactly one
// of Assign or API is set.
type Binding struct {
	Key    BindingKey
	Assign *Assignment
	API    *APICall
	Line   int // Script line the binding was declared on
}

// PopupInfo is one row of the popup-list diagnostic output
type PopupInfo struct {
	ID    string
	Title string
	State Visibility
}

// Config holds interpreter configuration
type Config struct {
	Debug             bool
	DefaultWindowW    int
	DefaultWindowH    int
	DefaultPopupW     int
	DefaultPopupH     int
	DefaultPopupOffX  int
	DefaultPopupOffY  int
	DefaultLanguage   string
	APITimeout        time.Duration
	APIConnectTimeout time.Duration
	TaskQueueSize     int
}

// DefaultConfig returns default configuration
func DefaultConfig() *Config {
	return &Config{
		Debug:             false,
		DefaultWindowW:    800,
		DefaultWindowH:    600,
		DefaultPopupW:     400,
		DefaultPopupH:     300,
		DefaultPopupOffX:  50,
		DefaultPopupOffY:  50,
		DefaultLanguage:   "zh-TW",
		APITimeout:        30 * time.Second,
		APIConnectTimeout: 10 * time.Second,
		TaskQueueSize:     256,
	}
}
