package menuscript

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"testing"
)

// recordingRenderer captures render instructions for assertions
type recordingRenderer struct {
	mu      sync.Mutex
	calls   []string
	updates map[string]string // "control.attr" -> last value
	shown   bool
	resets  int
}

func newRecordingRenderer() *recordingRenderer {
	return &recordingRenderer{updates: make(map[string]string)}
}

func (r *recordingRenderer) record(format string, args ...interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, fmt.Sprintf(format, args...))
}

func (r *recordingRenderer) ConfigureWindow(w *Window) { r.record("window %s %dx%d", w.Name, w.Width, w.Height) }
func (r *recordingRenderer) CreatePopup(p *Popup)      { r.record("popup %s at %d,%d", p.ID, p.X, p.Y) }
func (r *recordingRenderer) CreateControl(c *Control, style *Style) {
	r.record("control %s type=%s container=%q style=%q", c.Name, c.Type, c.Container, style.Background)
}
func (r *recordingRenderer) UpdateControlAttr(control, attr, value string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, fmt.Sprintf("update %s.%s", control, attr))
	r.updates[control+"."+attr] = value
}
func (r *recordingRenderer) ApplyGeometry(c *Control)   { r.record("geometry %s mode=%d", c.Name, c.Geometry.Mode) }
func (r *recordingRenderer) CreateWorkspace(w *Workspace) { r.record("workspace %s", w.Name) }
func (r *recordingRenderer) SetVisibility(name string, state Visibility) {
	r.record("visibility %s %s", name, state)
}
func (r *recordingRenderer) RemoveControl(name string) { r.record("remove %s", name) }
func (r *recordingRenderer) DestroyWindow(id string)   { r.record("destroy %s", id) }
func (r *recordingRenderer) Show() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.shown = true
}
func (r *recordingRenderer) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.resets++
}

func (r *recordingRenderer) update(key string) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.updates[key]
}

func (r *recordingRenderer) countCalls(prefix string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, c := range r.calls {
		if strings.HasPrefix(c, prefix) {
			n++
		}
	}
	return n
}

func (r *recordingRenderer) sawCall(prefix string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.calls {
		if strings.HasPrefix(c, prefix) {
			return true
		}
	}
	return false
}

// newTestInterp builds a quiet interpreter over a recording renderer
func newTestInterp(t *testing.T) (*Interpreter, *recordingRenderer) {
	t.Helper()
	r := newRecordingRenderer()
	in := New(nil, r, nil)
	in.logger.SetOutput(io.Discard, io.Discard)
	return in, r
}

func TestWindowCommand(t *testing.T) {
	in, r := newTestInterp(t)
	if err := in.ExecuteLine("window main 800 600 My App", 1); err != nil {
		t.Fatalf("window: %v", err)
	}
	w := in.Session().Main()
	if !w.Configured || w.Width != 800 || w.Height != 600 || w.Title != "My App" {
		t.Errorf("main = %+v", w)
	}
	if !r.sawCall("window main 800x600") {
		t.Errorf("no window instruction, calls: %v", r.calls)
	}
}

func TestWindowRedefinitionIsIdempotent(t *testing.T) {
	in, _ := newTestInterp(t)
	script := "window main 800 600 First\nwindow main 800 600 First\n"
	if errs := in.RunScript(script); errs != 0 {
		t.Fatalf("RunScript reported %d errors", errs)
	}
	w := in.Session().Main()
	if w.Title != "First" || w.Width != 800 {
		t.Errorf("main = %+v", w)
	}
}

func TestWindowRejectsNonPositiveSize(t *testing.T) {
	in, _ := newTestInterp(t)
	err := in.ExecuteLine("window main 0 600", 1)
	if !IsKind(err, ErrArgument) {
		t.Errorf("got %v, want argument error", err)
	}
}

func TestUnknownCommandDoesNotAbortScript(t *testing.T) {
	in, r := newTestInterp(t)
	errs := in.RunScript("menu frobnicate\nmenu show\n")
	if errs != 1 {
		t.Errorf("errs = %d, want 1", errs)
	}
	if !r.shown {
		t.Error("show did not run after the unknown command")
	}
}

func TestCommandAliases(t *testing.T) {
	in, _ := newTestInterp(t)
	script := "win main 640 480 Aliased\nctrl label lbl text=Hi\napi svc localhost:9000\n"
	if errs := in.RunScript(script); errs != 0 {
		t.Fatalf("RunScript reported %d errors", errs)
	}
	if in.Session().Main().Title != "Aliased" {
		t.Error("win alias did not reach the window handler")
	}
	if _, ok := in.Session().ControlByName("lbl"); !ok {
		t.Error("ctrl alias did not create the control")
	}
	if _, ok := in.Session().APIByName("svc"); !ok {
		t.Error("api alias did not create the config")
	}
}

func TestControlWithUndefinedStyleFallsBack(t *testing.T) {
	in, _ := newTestInterp(t)
	if err := in.ExecuteLine("control label title text=Hello class=header", 1); err != nil {
		t.Fatalf("control: %v", err)
	}
	c, ok := in.Session().ControlByName("title")
	if !ok {
		t.Fatal("control not registered")
	}
	if c.Class != "header" {
		t.Errorf("Class = %q", c.Class)
	}
	// Default style now, real style once defined
	if st := in.Session().ResolveStyle("header"); st.Background != "" {
		t.Errorf("fallback style = %+v", st)
	}
	if err := in.ExecuteLine("style header bg=#336699 color=white", 2); err != nil {
		t.Fatalf("style: %v", err)
	}
	if st := in.Session().ResolveStyle("header"); st.Background != "#336699" {
		t.Errorf("resolved style = %+v", st)
	}
}

func TestStyleRejectsMalformedFont(t *testing.T) {
	in, _ := newTestInterp(t)
	if err := in.ExecuteLine("style h font=Arial", 1); !IsKind(err, ErrArgument) {
		t.Errorf("got %v, want argument error", err)
	}
	if err := in.ExecuteLine("style h font=Arial,16,bold", 2); err != nil {
		t.Errorf("valid font rejected: %v", err)
	}
}

func TestControlNameCollisionReplaces(t *testing.T) {
	in, _ := newTestInterp(t)
	in.RunScript("control label x text=One\ncontrol button x text=Two\n")
	c, _ := in.Session().ControlByName("x")
	if c == nil || c.Type != "button" || c.Text != "Two" {
		t.Errorf("control = %+v, want the later definition", c)
	}
}

func TestControlGeometryModes(t *testing.T) {
	in, _ := newTestInterp(t)
	in.RunScript(strings.Join([]string{
		"control label abs x=10 y=20 w=100 h=30",
		"control label rel relx=0.25 rely=0.5 relwidth=0.5 relheight=0.1",
		"grid-setup 2 2",
		"layout-grid 2 2",
		"control label grd row=1 col=0 colspan=2 sticky=ew",
	}, "\n"))

	abs, _ := in.Session().ControlByName("abs")
	if abs.Geometry.Mode != GeometryAbsolute || abs.Geometry.X != 10 {
		t.Errorf("abs geometry = %+v", abs.Geometry)
	}
	rel, _ := in.Session().ControlByName("rel")
	if rel.Geometry.Mode != GeometryRelative || rel.Geometry.RelX != 0.25 {
		t.Errorf("rel geometry = %+v", rel.Geometry)
	}
	grd, _ := in.Session().ControlByName("grd")
	g := grd.Geometry
	if g.Mode != GeometryGrid || g.Row != 1 || g.ColSpan != 2 || g.Sticky != "ew" {
		t.Errorf("grid geometry = %+v", g)
	}
}

func TestGridPosSwitchesMode(t *testing.T) {
	in, _ := newTestInterp(t)
	in.RunScript("control label l x=5 y=5\ngrid-setup 3 3\ngrid-pos l 2 1 rowspan=2\n")
	c, _ := in.Session().ControlByName("l")
	if c.Geometry.Mode != GeometryGrid || c.Geometry.Row != 2 || c.Geometry.RowSpan != 2 {
		t.Errorf("geometry = %+v", c.Geometry)
	}
	// The old absolute placement is gone entirely
	if c.Geometry.X != 0 || c.Geometry.Y != 0 {
		t.Errorf("absolute fields leaked: %+v", c.Geometry)
	}
}

func TestGridWeightMismatchFallsBackToUniform(t *testing.T) {
	in, _ := newTestInterp(t)
	if err := in.ExecuteLine("grid-setup 2 2 row_weight=1,2,3", 1); err != nil {
		t.Fatalf("grid-setup: %v", err)
	}
	g, ok := in.Session().GridFor("")
	if !ok {
		t.Fatal("no grid registered")
	}
	if len(g.RowWeights) != 2 || g.RowWeights[0] != 1 || g.RowWeights[1] != 1 {
		t.Errorf("RowWeights = %v, want uniform [1 1]", g.RowWeights)
	}
	if len(g.ColWeights) != 2 {
		t.Errorf("ColWeights = %v", g.ColWeights)
	}
}

func TestGridSetupNamedForm(t *testing.T) {
	in, _ := newTestInterp(t)
	if err := in.ExecuteLine(`grid-setup rows=3 cols=1 row_weight="1,1"`, 1); err != nil {
		t.Fatalf("grid-setup: %v", err)
	}
	g, ok := in.Session().GridFor("")
	if !ok || g.Rows != 3 || g.Cols != 1 {
		t.Fatalf("grid = %+v", g)
	}
	// Two weights for three rows: uniform fallback
	if len(g.RowWeights) != 3 || g.RowWeights[0] != 1 || g.RowWeights[2] != 1 {
		t.Errorf("RowWeights = %v, want uniform [1 1 1]", g.RowWeights)
	}
}

func TestLayoutGridWithoutSetup(t *testing.T) {
	in, _ := newTestInterp(t)
	if err := in.ExecuteLine("layout-grid 2 2", 1); !IsKind(err, ErrNotFound) {
		t.Errorf("got %v, want not-found error", err)
	}
}

func TestLayoutGridActivatesAndReplaces(t *testing.T) {
	in, r := newTestInterp(t)
	in.RunScript(strings.Join([]string{
		"grid-setup 2 2",
		"control button a row=0 col=0",
		"control button b row=1 col=1",
	}, "\n"))

	if _, ok := in.Session().ActiveGridFor(""); ok {
		t.Error("grid active before layout-grid")
	}
	before := r.countCalls("geometry")

	if err := in.ExecuteLine("layout-grid 2 2", 4); err != nil {
		t.Fatalf("layout-grid: %v", err)
	}
	g, ok := in.Session().ActiveGridFor("")
	if !ok || g.Rows != 2 || g.Cols != 2 {
		t.Fatalf("active grid = %+v, ok %v", g, ok)
	}
	// Activation re-places every grid-mode control in the container
	if got := r.countCalls("geometry"); got != before+2 {
		t.Errorf("geometry instructions = %d, want %d", got, before+2)
	}
}

func TestConcurrentGeometryCommands(t *testing.T) {
	in, _ := newTestInterp(t)
	in.RunScript("control label l x=5 y=5\ngrid-setup 3 3\n")

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 500; i++ {
			in.ExecuteLine("grid-pos l 1 1", 10)
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 500; i++ {
			in.ExecuteLine("relative l relx=0.5", 11)
		}
	}()
	wg.Wait()

	c, _ := in.Session().ControlByName("l")
	if m := c.Geometry.Mode; m != GeometryGrid && m != GeometryRelative {
		t.Errorf("geometry mode = %d", m)
	}
}

func TestRelativeClampsOutOfRange(t *testing.T) {
	in, _ := newTestInterp(t)
	in.RunScript("control label l\nrelative l relx=1.5 rely=-0.2 relwidth=0.5\n")
	c, _ := in.Session().ControlByName("l")
	if c.Geometry.RelX != 1 || c.Geometry.RelY != 0 {
		t.Errorf("geometry = %+v, want clamped", c.Geometry)
	}
}

func TestBindingFiresAssignment(t *testing.T) {
	in, r := newTestInterp(t)
	in.RunScript(strings.Join([]string{
		"control label status text=Idle",
		"control button go text=Go",
		`binding go click "status.text = 'Done'"`,
	}, "\n"))

	in.FireEvent("go", EventClick)

	c, _ := in.Session().ControlByName("status")
	if c.Text != "Done" {
		t.Errorf("status text = %q, want Done", c.Text)
	}
	if r.update("status.text") != "Done" {
		t.Error("no render update for status.text")
	}
}

func TestBindingOverwriteLastWins(t *testing.T) {
	in, _ := newTestInterp(t)
	in.RunScript(strings.Join([]string{
		"control label status",
		"control button go",
		`binding go click "status.text = 'First'"`,
		`binding go click "status.text = 'Second'"`,
	}, "\n"))
	in.FireEvent("go", EventClick)
	c, _ := in.Session().ControlByName("status")
	if c.Text != "Second" {
		t.Errorf("status text = %q, want Second", c.Text)
	}
}

func TestBindingRejectsBadExpression(t *testing.T) {
	in, _ := newTestInterp(t)
	in.ExecuteLine("control button go", 1)

	err := in.ExecuteLine(`binding go click "status.text = unquoted"`, 2)
	if !IsKind(err, ErrBinding) {
		t.Errorf("got %v, want binding error", err)
	}
	if _, ok := in.Session().BindingFor(BindingKey{Control: "go", Event: EventClick}); ok {
		t.Error("bad expression still produced a binding")
	}
}

func TestBindingUnknownControl(t *testing.T) {
	in, _ := newTestInterp(t)
	err := in.ExecuteLine(`binding ghost click "a.text = 'x'"`, 1)
	if !IsKind(err, ErrNotFound) {
		t.Errorf("got %v, want not-found error", err)
	}
}

func TestBindingUnknownEvent(t *testing.T) {
	in, _ := newTestInterp(t)
	in.ExecuteLine("control button go", 1)
	err := in.ExecuteLine(`binding go hover "a.text = 'x'"`, 2)
	if !IsKind(err, ErrArgument) {
		t.Errorf("got %v, want argument error", err)
	}
}

func TestFireEventMissingTargetIsLoggedNotFatal(t *testing.T) {
	in, _ := newTestInterp(t)
	in.RunScript("control button go\n" + `binding go click "ghost.text = 'x'"` + "\n")
	// Must not panic and must leave the session intact
	in.FireEvent("go", EventClick)
	if _, ok := in.Session().ControlByName("ghost"); ok {
		t.Error("firing created a control out of nowhere")
	}
}

func TestPopupLifecycle(t *testing.T) {
	in, r := newTestInterp(t)
	in.RunScript(strings.Join([]string{
		"window main 800 600 Main",
		"popup-window p1 Settings size=300x200 offset_x=40 offset_y=30",
		`popup-content p1 "control label plbl text='In popup'"`,
	}, "\n"))

	p, ok := in.Session().PopupByID("p1")
	if !ok {
		t.Fatal("popup not registered")
	}
	if p.Width != 300 || p.Height != 200 || p.X != 40 || p.Y != 30 {
		t.Errorf("popup = %+v", p)
	}
	c, ok := in.Session().ControlByName("plbl")
	if !ok || c.Container != "p1" {
		t.Fatalf("popup control = %+v", c)
	}
	if c.Text != "In popup" {
		t.Errorf("popup control text = %q", c.Text)
	}

	if err := in.ExecuteLine("popup-close p1", 10); err != nil {
		t.Fatalf("popup-close: %v", err)
	}
	if _, ok := in.Session().PopupByID("p1"); ok {
		t.Error("popup survived close")
	}
	if _, ok := in.Session().ControlByName("plbl"); ok {
		t.Error("popup control survived close")
	}
	if !r.sawCall("destroy p1") {
		t.Error("no destroy instruction")
	}
	if len(in.Session().PopupList()) != 0 {
		t.Error("popup still listed")
	}

	// Closing again is a silent no-op
	if err := in.ExecuteLine("popup-close p1", 11); err != nil {
		t.Errorf("second close errored: %v", err)
	}
}

func TestPopupDefaultsAndReplacement(t *testing.T) {
	in, _ := newTestInterp(t)
	in.ExecuteLine("popup-window p1 First", 1)
	p, _ := in.Session().PopupByID("p1")
	if p.Width != 400 || p.Height != 300 || p.X != 50 || p.Y != 50 {
		t.Errorf("defaults = %+v", p)
	}

	// Same id again replaces the old popup
	in.ExecuteLine(`popup-content p1 "control label old text=x"`, 2)
	in.ExecuteLine("popup-window p1 Second", 3)
	p, _ = in.Session().PopupByID("p1")
	if p.Title != "Second" {
		t.Errorf("title = %q", p.Title)
	}
	if _, ok := in.Session().ControlByName("old"); ok {
		t.Error("old popup's control survived replacement")
	}
	if got := in.Session().PopupList(); len(got) != 1 {
		t.Errorf("popup list = %+v", got)
	}
}

func TestPopupCloseDropsGrid(t *testing.T) {
	in, _ := newTestInterp(t)
	in.ExecuteLine("popup-window p1 Grid", 1)
	in.ExecuteLine(`popup-content p1 "grid-setup 2 2"`, 2)
	if _, ok := in.Session().GridFor("p1"); !ok {
		t.Fatal("popup grid not registered")
	}

	in.ExecuteLine("popup-close p1", 3)
	if _, ok := in.Session().GridFor("p1"); ok {
		t.Error("grid survived popup close")
	}

	// A recreated popup starts with no grid at all
	in.ExecuteLine("popup-window p1 Again", 4)
	in.ExecuteLine(`popup-content p1 "grid-setup 3 3"`, 5)
	g, ok := in.Session().GridFor("p1")
	if !ok || g.Rows != 3 || g.Cols != 3 {
		t.Errorf("recreated grid = %+v, ok %v", g, ok)
	}
	if g.Active {
		t.Error("recreated grid already active")
	}
}

func TestPopupContentMissingPopup(t *testing.T) {
	in, _ := newTestInterp(t)
	err := in.ExecuteLine(`popup-content ghost "control label l"`, 1)
	if !IsKind(err, ErrNotFound) {
		t.Errorf("got %v, want not-found error", err)
	}
}

func TestPopupSendData(t *testing.T) {
	in, _ := newTestInterp(t)
	in.RunScript(strings.Join([]string{
		"control label out text=Empty",
		"popup-window p1 Input",
	}, "\n"))

	if err := in.ExecuteLine(`popup-send-data p1 "hello from popup" -> out.text`, 3); err != nil {
		t.Fatalf("popup-send-data: %v", err)
	}
	c, _ := in.Session().ControlByName("out")
	if c.Text != "hello from popup" {
		t.Errorf("out text = %q", c.Text)
	}

	// Target is mandatory
	if err := in.ExecuteLine(`popup-send-data p1 "x"`, 4); !IsKind(err, ErrArgument) {
		t.Errorf("got %v, want argument error", err)
	}
}

func TestWindowStateCommands(t *testing.T) {
	in, r := newTestInterp(t)
	in.RunScript("window main 800 600 Main\npopup-window p1 P\n")

	if err := in.ExecuteLine("window-hide main", 3); err != nil {
		t.Fatalf("window-hide: %v", err)
	}
	if in.Session().Main().State != VisibilityHidden {
		t.Error("main not hidden")
	}
	if err := in.ExecuteLine("window-maximize p1", 4); err != nil {
		t.Fatalf("window-maximize: %v", err)
	}
	p, _ := in.Session().PopupByID("p1")
	if p.State != VisibilityMaximized {
		t.Error("popup not maximized")
	}
	if !r.sawCall("visibility main hidden") || !r.sawCall("visibility p1 maximized") {
		t.Errorf("visibility calls missing: %v", r.calls)
	}

	if err := in.ExecuteLine("window-show ghost", 5); !IsKind(err, ErrNotFound) {
		t.Errorf("got %v, want not-found error", err)
	}
}

func TestWorkspaceAdd(t *testing.T) {
	in, _ := newTestInterp(t)
	in.RunScript("workspace side x=0 y=0 w=200 h=600 bg=#eeeeee\nworkspace-add side label nav text=Menu\n")
	c, ok := in.Session().ControlByName("nav")
	if !ok || c.Container != "side" {
		t.Errorf("control = %+v", c)
	}

	err := in.ExecuteLine("workspace-add ghost label l2", 3)
	if !IsKind(err, ErrNotFound) {
		t.Errorf("got %v, want not-found error", err)
	}
}

func TestDisplayAreaFlow(t *testing.T) {
	in, r := newTestInterp(t)
	in.RunScript(strings.Join([]string{
		"display-area log 0 400 800 200 bg=#111111",
		"display-content log hello world",
	}, "\n"))

	c, ok := in.Session().ControlByName("log")
	if !ok || c.Type != "textarea" {
		t.Fatalf("display area = %+v", c)
	}
	if c.Content != "hello world" {
		t.Errorf("content = %q", c.Content)
	}
	if r.update("log.content") != "hello world" {
		t.Error("no render update for log.content")
	}

	if err := in.ExecuteLine("clear-display log", 3); err != nil {
		t.Fatalf("clear-display: %v", err)
	}
	c, _ = in.Session().ControlByName("log")
	if c.Content != "" {
		t.Errorf("content after clear = %q", c.Content)
	}

	// display-content refuses non-textarea targets
	in.ExecuteLine("control label plain", 4)
	if err := in.ExecuteLine("display-content plain x", 5); !IsKind(err, ErrArgument) {
		t.Errorf("got %v, want argument error", err)
	}
}

func TestDisplayAreaWrapOption(t *testing.T) {
	in, _ := newTestInterp(t)
	in.RunScript(strings.Join([]string{
		"display-area raw 0 0 800 200 wrap=none",
		"display-area prose 0 200 800 200",
	}, "\n"))

	c, _ := in.Session().ControlByName("raw")
	if c.Wrap != "none" {
		t.Errorf("raw wrap = %q, want none", c.Wrap)
	}
	c, _ = in.Session().ControlByName("prose")
	if c.Wrap != "" {
		t.Errorf("prose wrap = %q, want default", c.Wrap)
	}
}

func TestSetLanguageAndDisplayText(t *testing.T) {
	in, _ := newTestInterp(t)
	in.ExecuteLine("control label status", 1)

	if err := in.ExecuteLine("set-language en", 2); err != nil {
		t.Fatalf("set-language: %v", err)
	}
	if in.Session().Language() != "en" {
		t.Errorf("language = %q", in.Session().Language())
	}
	if err := in.ExecuteLine("display-text ready status", 3); err != nil {
		t.Fatalf("display-text: %v", err)
	}
	c, _ := in.Session().ControlByName("status")
	if c.Text != "Ready" {
		t.Errorf("status text = %q, want Ready", c.Text)
	}

	// Unsupported code warns but does not error or switch
	if err := in.ExecuteLine("set-language xx", 4); err != nil {
		t.Errorf("unsupported language errored: %v", err)
	}
	if in.Session().Language() != "en" {
		t.Error("unsupported language switched anyway")
	}
}

func TestClearResetsEverything(t *testing.T) {
	in, r := newTestInterp(t)
	in.RunScript(strings.Join([]string{
		"window main 800 600 Main",
		"style s bg=#fff",
		"control label l text=Hi",
		"popup-window p1 P",
		"api-set svc localhost:8080",
		"clear",
	}, "\n"))

	s := in.Session()
	if s.Main().Configured {
		t.Error("main window still configured")
	}
	if _, ok := s.ControlByName("l"); ok {
		t.Error("control survived clear")
	}
	if _, ok := s.StyleByName("s"); ok {
		t.Error("style survived clear")
	}
	if _, ok := s.PopupByID("p1"); ok {
		t.Error("popup survived clear")
	}
	if _, ok := s.APIByName("svc"); ok {
		t.Error("api config survived clear")
	}
	if r.resets != 1 {
		t.Errorf("resets = %d, want 1", r.resets)
	}

	// clear on an already-empty session is fine
	if err := in.ExecuteLine("clear", 10); err != nil {
		t.Errorf("second clear: %v", err)
	}
}

func TestRunScriptCountsErrors(t *testing.T) {
	in, _ := newTestInterp(t)
	script := strings.Join([]string{
		"window main 800 600 OK",
		"window main -1 600",
		"nonsense",
		`control label l text="fine"`,
	}, "\n")
	if errs := in.RunScript(script); errs != 2 {
		t.Errorf("errs = %d, want 2", errs)
	}
	if _, ok := in.Session().ControlByName("l"); !ok {
		t.Error("later valid line did not run")
	}
}
