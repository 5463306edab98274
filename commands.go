package menuscript

import (
	"strconv"
	"strings"
)

// registerCommands builds the dispatch table. The command set is
// closed: script text can only ever select one of the handlers below,
// never host code.
func (in *Interpreter) registerCommands() {
	in.register("clear", &schema{}, cmdClear)

	in.register("window", &schema{
		positional: []positional{
			{name: "name", typ: argString, required: true},
			{name: "width", typ: argInt, required: true},
			{name: "height", typ: argInt, required: true},
		},
		restJoin: "title",
	}, cmdWindow)

	in.register("style", &schema{
		positional: []positional{
			{name: "name", typ: argString, required: true},
		},
		named: map[string]argType{
			"bg":    argString,
			"color": argString,
			"font":  argString,
		},
	}, cmdStyle)

	controlNamed := map[string]argType{
		"text":        argString,
		"value":       argString,
		"placeholder": argString,
		"class":       argString,
		"x":           argInt,
		"y":           argInt,
		"w":           argInt,
		"h":           argInt,
		"row":         argInt,
		"col":         argInt,
		"rowspan":     argInt,
		"colspan":     argInt,
		"sticky":      argString,
		"relx":        argFloat,
		"rely":        argFloat,
		"relwidth":    argFloat,
		"relheight":   argFloat,
		"anchor":      argString,
	}

	in.register("control", &schema{
		positional: []positional{
			{name: "type", typ: argString, required: true},
			{name: "name", typ: argString, required: true},
		},
		named: controlNamed,
	}, cmdControl)

	// rows/cols may be given positionally or as options
	in.register("grid-setup", &schema{
		positional: []positional{
			{name: "rows", typ: argInt},
			{name: "cols", typ: argInt},
		},
		named: map[string]argType{
			"rows":       argInt,
			"cols":       argInt,
			"row_weight": argWeights,
			"col_weight": argWeights,
		},
	}, cmdGridSetup)

	in.register("layout-grid", &schema{
		positional: []positional{
			{name: "rows", typ: argInt, required: true},
			{name: "cols", typ: argInt, required: true},
		},
	}, cmdLayoutGrid)

	in.register("grid-pos", &schema{
		positional: []positional{
			{name: "control", typ: argString, required: true},
			{name: "row", typ: argInt, required: true},
			{name: "col", typ: argInt, required: true},
		},
		named: map[string]argType{
			"rowspan": argInt,
			"colspan": argInt,
			"sticky":  argString,
		},
	}, cmdGridPos)

	in.register("relative", &schema{
		positional: []positional{
			{name: "control", typ: argString, required: true},
		},
		named: map[string]argType{
			"relx":      argFloat,
			"rely":      argFloat,
			"relwidth":  argFloat,
			"relheight": argFloat,
			"anchor":    argString,
		},
	}, cmdRelative)

	in.register("binding", &schema{
		positional: []positional{
			{name: "control", typ: argString, required: true},
			{name: "event", typ: argString, required: true},
		},
		restJoin: "expression",
	}, cmdBinding)

	in.register("api-set", &schema{
		positional: []positional{
			{name: "name", typ: argString, required: true},
			{name: "url", typ: argString, required: true},
		},
		named: map[string]argType{
			"key":         argString,
			"username":    argString,
			"password":    argString,
			"show-secret": argBool,
		},
	}, cmdAPISet)

	in.register("api-call", &schema{
		positional: []positional{
			{name: "control", typ: argString, required: true},
			{name: "api", typ: argString, required: true},
			{name: "method", typ: argString, required: true},
			{name: "path", typ: argString, required: true},
		},
		restJoin:    "body",
		allowTarget: true,
	}, cmdAPICall)

	in.register("api-test", &schema{
		positional: []positional{
			{name: "name", typ: argString, required: true},
		},
		allowTarget: true,
	}, cmdAPITest)

	in.register("popup-window", &schema{
		positional: []positional{
			{name: "id", typ: argString, required: true},
		},
		restJoin: "title",
		named: map[string]argType{
			"size":     argDimension,
			"offset_x": argInt,
			"offset_y": argInt,
		},
	}, cmdPopupWindow)

	in.register("popup-content", &schema{
		positional: []positional{
			{name: "id", typ: argString, required: true},
		},
		restList: "commands",
	}, cmdPopupContent)

	in.register("popup-send-data", &schema{
		positional: []positional{
			{name: "id", typ: argString, required: true},
			{name: "data", typ: argString, required: true},
		},
		allowTarget:   true,
		requireTarget: true,
	}, cmdPopupSendData)

	in.register("popup-close", &schema{
		positional: []positional{
			{name: "id", typ: argString, required: true},
		},
	}, cmdPopupClose)

	in.register("popup-list", &schema{}, cmdPopupList)

	windowName := &schema{
		positional: []positional{
			{name: "name", typ: argString, required: true},
		},
	}
	in.register("window-show", windowName, stateHandler(VisibilityShown))
	in.register("window-hide", windowName, stateHandler(VisibilityHidden))
	in.register("window-minimize", windowName, stateHandler(VisibilityMinimized))
	in.register("window-maximize", windowName, stateHandler(VisibilityMaximized))

	in.register("workspace", &schema{
		positional: []positional{
			{name: "name", typ: argString, required: true},
		},
		named: map[string]argType{
			"x":  argInt,
			"y":  argInt,
			"w":  argInt,
			"h":  argInt,
			"bg": argString,
		},
	}, cmdWorkspace)

	in.register("workspace-add", &schema{
		positional: []positional{
			{name: "workspace", typ: argString, required: true},
			{name: "type", typ: argString, required: true},
			{name: "name", typ: argString, required: true},
		},
		named: controlNamed,
	}, cmdWorkspaceAdd)

	in.register("show", &schema{}, cmdShow)

	in.register("display-area", &schema{
		positional: []positional{
			{name: "name", typ: argString, required: true},
			{name: "x", typ: argInt, required: true},
			{name: "y", typ: argInt, required: true},
			{name: "w", typ: argInt, required: true},
			{name: "h", typ: argInt, required: true},
		},
		named: map[string]argType{
			"bg":   argString,
			"wrap": argString,
		},
	}, cmdDisplayArea)

	in.register("display-content", &schema{
		positional: []positional{
			{name: "name", typ: argString, required: true},
		},
		restJoin: "content",
	}, cmdDisplayContent)

	in.register("clear-display", &schema{
		positional: []positional{
			{name: "name", typ: argString, required: true},
		},
	}, cmdClearDisplay)

	in.register("set-language", &schema{
		positional: []positional{
			{name: "code", typ: argString, required: true},
		},
	}, cmdSetLanguage)

	in.register("display-text", &schema{
		positional: []positional{
			{name: "key", typ: argString, required: true},
			{name: "target", typ: argString, required: true},
		},
	}, cmdDisplayText)

	in.alias("win", "window")
	in.alias("ctrl", "control")
	in.alias("api", "api-set")
	in.alias("grid-layout", "grid-setup")
}

// cmdClear discards the whole session and resets the display. Never
// fails, even on an empty session.
func cmdClear(ctx *Context) error {
	ctx.Session().Clear(ctx.Config())
	ctx.Renderer().Reset()
	ctx.Logger().InfoCat(CatRegistry, "session cleared")
	return nil
}

func cmdWindow(ctx *Context) error {
	a := ctx.Args
	width, height := a.Int("width"), a.Int("height")
	if width <= 0 || height <= 0 {
		return argumentErrorf("window", "size %dx%d is not positive", width, height)
	}
	w := ctx.Session().ConfigureMain(a.String("name"), a.String("title"), width, height)
	ctx.Renderer().ConfigureWindow(&w)
	ctx.Logger().DebugCat(CatCommand, "window %q configured %dx%d", w.Name, width, height)
	return nil
}

// validFontSpec checks the "family,size[,weight]" form styles use
func validFontSpec(spec string) bool {
	parts := strings.Split(spec, ",")
	if len(parts) < 2 || len(parts) > 3 {
		return false
	}
	if _, err := strconv.Atoi(strings.TrimSpace(parts[1])); err != nil {
		return false
	}
	return true
}

func cmdStyle(ctx *Context) error {
	a := ctx.Args
	font := a.String("font")
	if font != "" && !validFontSpec(font) {
		return argumentErrorf("style", "font %q is not family,size[,weight]", font)
	}
	st := &Style{
		Name:       a.String("name"),
		Background: a.String("bg"),
		Color:      a.String("color"),
		Font:       font,
	}
	if ctx.Session().DefineStyle(st) {
		ctx.Logger().DebugCat(CatRegistry, "style %q redefined", st.Name)
	}
	return nil
}

// controlTypes maps accepted type names onto canonical ones
var controlTypes = map[string]string{
	"label":    "label",
	"button":   "button",
	"entry":    "entry",
	"edit":     "entry",
	"textarea": "textarea",
	"text":     "textarea",
}

// clamp01 pins a relative coordinate into [0,1], warning when the
// script strayed outside
func clamp01(ctx *Context, name string, v float64) float64 {
	if v < 0 || v > 1 {
		ctx.Logger().CommandWarning(CatArgument, ctx.Args.Command,
			name+"="+strconv.FormatFloat(v, 'g', -1, 64)+" clamped to [0,1]", ctx.Line)
		if v < 0 {
			return 0
		}
		return 1
	}
	return v
}

// geometryFromArgs picks the placement mode from which options were
// supplied: grid wins over relative, relative over absolute. The
// resulting geometry is in exactly one mode.
func geometryFromArgs(ctx *Context) (Geometry, error) {
	a := ctx.Args
	switch {
	case a.Has("row") || a.Has("col"):
		if !a.Has("row") || !a.Has("col") {
			return Geometry{}, argumentErrorf(a.Command, "grid placement needs both row and col")
		}
		g := Geometry{
			Mode:    GeometryGrid,
			Row:     a.Int("row"),
			Col:     a.Int("col"),
			RowSpan: 1,
			ColSpan: 1,
			Sticky:  a.String("sticky"),
		}
		if a.Has("rowspan") {
			g.RowSpan = a.Int("rowspan")
		}
		if a.Has("colspan") {
			g.ColSpan = a.Int("colspan")
		}
		return g, nil
	case a.Has("relx") || a.Has("rely") || a.Has("relwidth") || a.Has("relheight"):
		return Geometry{
			Mode:   GeometryRelative,
			RelX:   clamp01(ctx, "relx", a.Float("relx")),
			RelY:   clamp01(ctx, "rely", a.Float("rely")),
			RelW:   clamp01(ctx, "relwidth", a.Float("relwidth")),
			RelH:   clamp01(ctx, "relheight", a.Float("relheight")),
			Anchor: a.String("anchor"),
		}, nil
	default:
		return Geometry{
			Mode: GeometryAbsolute,
			X:    a.Int("x"),
			Y:    a.Int("y"),
			W:    a.Int("w"),
			H:    a.Int("h"),
		}, nil
	}
}

// defineControl creates or replaces a control in the given container
// and emits the render instructions for it
func defineControl(ctx *Context, typ, name, container string) error {
	canonical, ok := controlTypes[strings.ToLower(typ)]
	if !ok {
		return argumentErrorf(ctx.Args.Command, "unknown control type %q", typ)
	}
	geom, err := geometryFromArgs(ctx)
	if err != nil {
		return err
	}

	a := ctx.Args
	class := a.String("class")
	if class != "" {
		if _, defined := ctx.Session().StyleByName(class); !defined {
			ctx.Logger().CommandWarning(CatRegistry, a.Command,
				"style "+strconv.Quote(class)+" not defined, using defaults", ctx.Line)
		}
	}

	c := &Control{
		Name:        name,
		Type:        canonical,
		Text:        a.String("text"),
		Value:       a.String("value"),
		Placeholder: a.String("placeholder"),
		Class:       class,
		Container:   container,
		Geometry:    geom,
	}
	// The renderer gets a copy taken before the control is published;
	// once registered, other goroutines may mutate it under the lock
	snap := *c
	if ctx.Session().DefineControl(c) {
		ctx.Logger().CommandWarning(CatRegistry, a.Command,
			"control "+strconv.Quote(name)+" replaced", ctx.Line)
	}
	ctx.Renderer().CreateControl(&snap, ctx.Session().ResolveStyle(class))
	ctx.Renderer().ApplyGeometry(&snap)
	return nil
}

func cmdControl(ctx *Context) error {
	return defineControl(ctx, ctx.Args.String("type"), ctx.Args.String("name"), ctx.Container)
}

// uniformWeights is the fallback when a weight list does not match the
// grid dimension: every row or column weighs the same
func uniformWeights(n int) []int {
	w := make([]int, n)
	for i := range w {
		w[i] = 1
	}
	return w
}

func cmdGridSetup(ctx *Context) error {
	a := ctx.Args
	if !a.Has("rows") || !a.Has("cols") {
		return argumentErrorf("grid-setup", "rows and cols are required")
	}
	rows, cols := a.Int("rows"), a.Int("cols")
	if rows <= 0 || cols <= 0 {
		return argumentErrorf("grid-setup", "grid %dx%d is not positive", rows, cols)
	}

	rowWeights := a.Ints("row_weight")
	if rowWeights == nil {
		rowWeights = uniformWeights(rows)
	} else if len(rowWeights) != rows {
		ctx.Logger().CommandWarning(CatArgument, "grid-setup",
			"row_weight has "+strconv.Itoa(len(rowWeights))+" entries for "+strconv.Itoa(rows)+" rows, using uniform weights", ctx.Line)
		rowWeights = uniformWeights(rows)
	}
	colWeights := a.Ints("col_weight")
	if colWeights == nil {
		colWeights = uniformWeights(cols)
	} else if len(colWeights) != cols {
		ctx.Logger().CommandWarning(CatArgument, "grid-setup",
			"col_weight has "+strconv.Itoa(len(colWeights))+" entries for "+strconv.Itoa(cols)+" cols, using uniform weights", ctx.Line)
		colWeights = uniformWeights(cols)
	}

	ctx.Session().DefineGrid(&GridSpec{
		Owner:      ctx.Container,
		Rows:       rows,
		Cols:       cols,
		RowWeights: rowWeights,
		ColWeights: colWeights,
	})
	return nil
}

func cmdLayoutGrid(ctx *Context) error {
	a := ctx.Args
	g, ok := ctx.Session().ActivateGrid(ctx.Container)
	if !ok {
		return notFoundErrorf("layout-grid", "no grid defined for this container, run grid-setup first")
	}
	if g.Rows != a.Int("rows") || g.Cols != a.Int("cols") {
		ctx.Logger().CommandWarning(CatArgument, "layout-grid",
			"requested "+strconv.Itoa(a.Int("rows"))+"x"+strconv.Itoa(a.Int("cols"))+
				" but grid-setup defined "+strconv.Itoa(g.Rows)+"x"+strconv.Itoa(g.Cols), ctx.Line)
	}
	// Activation places every grid-mode control already in the container
	placements := ctx.Session().GridPlacements(ctx.Container)
	for i := range placements {
		ctx.Renderer().ApplyGeometry(&placements[i])
	}
	return nil
}

func cmdGridPos(ctx *Context) error {
	a := ctx.Args
	name := a.String("control")
	g := Geometry{
		Mode:    GeometryGrid,
		Row:     a.Int("row"),
		Col:     a.Int("col"),
		RowSpan: 1,
		ColSpan: 1,
		Sticky:  a.String("sticky"),
	}
	if a.Has("rowspan") {
		g.RowSpan = a.Int("rowspan")
	}
	if a.Has("colspan") {
		g.ColSpan = a.Int("colspan")
	}
	snap, ok := ctx.Session().SetControlGeometry(name, g)
	if !ok {
		return notFoundErrorf("grid-pos", "control %q not found", name)
	}
	ctx.Renderer().ApplyGeometry(&snap)
	return nil
}

func cmdRelative(ctx *Context) error {
	a := ctx.Args
	name := a.String("control")
	g := Geometry{
		Mode:   GeometryRelative,
		RelX:   clamp01(ctx, "relx", a.Float("relx")),
		RelY:   clamp01(ctx, "rely", a.Float("rely")),
		RelW:   clamp01(ctx, "relwidth", a.Float("relwidth")),
		RelH:   clamp01(ctx, "relheight", a.Float("relheight")),
		Anchor: a.String("anchor"),
	}
	snap, ok := ctx.Session().SetControlGeometry(name, g)
	if !ok {
		return notFoundErrorf("relative", "control %q not found", name)
	}
	ctx.Renderer().ApplyGeometry(&snap)
	return nil
}

var eventKinds = map[string]EventKind{
	"click":       EventClick,
	"doubleclick": EventDoubleClick,
	"keyrelease":  EventKeyRelease,
}

func cmdBinding(ctx *Context) error {
	a := ctx.Args
	name := a.String("control")
	if _, ok := ctx.Session().ControlByName(name); !ok {
		return notFoundErrorf("binding", "control %q not found", name)
	}
	event, ok := eventKinds[strings.ToLower(a.String("event"))]
	if !ok {
		return argumentErrorf("binding", "unknown event %q", a.String("event"))
	}
	expr := a.String("expression")
	if expr == "" {
		return argumentErrorf("binding", "missing expression")
	}

	// Expressions are parsed once at bind time. Firing only ever
	// replays the stored assignment.
	assign, err := ParseAssignment(expr)
	if err != nil {
		return err
	}
	replaced := ctx.Session().SetBinding(&Binding{
		Key:    BindingKey{Control: name, Event: event},
		Assign: assign,
		Line:   ctx.Line,
	})
	if replaced {
		ctx.Logger().DebugCat(CatBinding, "%s binding on %q replaced", event, name)
	}
	return nil
}

func cmdAPISet(ctx *Context) error {
	a := ctx.Args
	normalized, err := validateAPIURL(a.String("url"))
	if err != nil {
		return argumentErrorf("api-set", "%v", err)
	}
	cfg := &APIConfig{
		Name:       a.String("name"),
		BaseURL:    normalized,
		Key:        a.String("key"),
		Username:   a.String("username"),
		Password:   a.String("password"),
		ShowSecret: a.Bool("show-secret"),
	}
	ctx.Session().DefineAPI(cfg)

	shownKey := "(none)"
	if cfg.Key != "" {
		shownKey = "****"
		if cfg.ShowSecret {
			shownKey = cfg.Key
		}
	}
	ctx.Logger().InfoCat(CatAPI, "api %q -> %s key=%s", cfg.Name, cfg.BaseURL, shownKey)
	return nil
}

func cmdAPICall(ctx *Context) error {
	a := ctx.Args
	name := a.String("control")
	if _, ok := ctx.Session().ControlByName(name); !ok {
		return notFoundErrorf("api-call", "control %q not found", name)
	}
	if _, ok := ctx.Session().APIByName(a.String("api")); !ok {
		return notFoundErrorf("api-call", "api config %q not found", a.String("api"))
	}
	method := strings.ToUpper(a.String("method"))
	if !allowedMethods[method] {
		return argumentErrorf("api-call", "unsupported HTTP method %q", a.String("method"))
	}

	replaced := ctx.Session().SetBinding(&Binding{
		Key: BindingKey{Control: name, Event: EventClick},
		API: &APICall{
			API:          a.String("api"),
			Method:       method,
			Path:         a.String("path"),
			BodyTemplate: a.String("body"),
			Target:       a.Target,
		},
		Line: ctx.Line,
	})
	if replaced {
		ctx.Logger().DebugCat(CatBinding, "click binding on %q replaced by api-call", name)
	}
	return nil
}

func cmdAPITest(ctx *Context) error {
	ctx.in.fireAPITest(ctx.Args.String("name"), ctx.Args.Target, ctx.Line)
	return nil
}

// closePopup cascades a popup teardown: controls, their bindings, then
// the window itself. Returns false when the popup was already gone.
func (in *Interpreter) closePopup(id string) bool {
	removed, ok := in.session.RemovePopup(id)
	if !ok {
		return false
	}
	for _, name := range removed {
		in.renderer.RemoveControl(name)
	}
	in.renderer.DestroyWindow(id)
	return true
}

func cmdPopupWindow(ctx *Context) error {
	a := ctx.Args
	cfg := ctx.Config()
	id := a.String("id")

	// Reusing a live id closes the old popup first
	if _, exists := ctx.Session().PopupByID(id); exists {
		ctx.Logger().DebugCat(CatPopup, "popup %q already open, replacing", id)
		ctx.in.closePopup(id)
	}

	width, height := cfg.DefaultPopupW, cfg.DefaultPopupH
	if a.Has("size") {
		width, height = a.Dimension("size")
	}
	offX, offY := cfg.DefaultPopupOffX, cfg.DefaultPopupOffY
	if a.Has("offset_x") {
		offX = a.Int("offset_x")
	}
	if a.Has("offset_y") {
		offY = a.Int("offset_y")
	}

	// Position is resolved against the main window once, here. Moving
	// the main window later does not drag popups along.
	main := ctx.Session().Main()
	p := &Popup{
		ID:      id,
		Title:   a.String("title"),
		Width:   width,
		Height:  height,
		OffsetX: offX,
		OffsetY: offY,
		X:       main.X + offX,
		Y:       main.Y + offY,
		State:   VisibilityShown,
	}
	snap := *p
	ctx.Session().DefinePopup(p)
	ctx.Renderer().CreatePopup(&snap)
	ctx.Logger().NoticeCat(CatPopup, "%s: %s", getText(ctx.Session().Language(), "popup_opened"), id)
	return nil
}

func cmdPopupContent(ctx *Context) error {
	a := ctx.Args
	id := a.String("id")
	if _, ok := ctx.Session().PopupByID(id); !ok {
		return notFoundErrorf("popup-content", "popup %q not found", id)
	}
	// Each embedded command runs with the popup as its container.
	// Failures are logged per command and do not stop the rest.
	for _, command := range a.List("commands") {
		_ = ctx.in.executeLineIn(command, ctx.Line, id)
	}
	return nil
}

func cmdPopupSendData(ctx *Context) error {
	a := ctx.Args
	id := a.String("id")
	if _, ok := ctx.Session().PopupByID(id); !ok {
		return notFoundErrorf("popup-send-data", "popup %q not found", id)
	}
	// Synchronous: the write lands before the next script line runs
	return ctx.in.setControlAttr(a.Target, a.String("data"))
}

func cmdPopupClose(ctx *Context) error {
	id := ctx.Args.String("id")
	if !ctx.in.closePopup(id) {
		// Closing twice is routine when bindings and script both close
		ctx.Logger().DebugCat(CatPopup, "popup %q already closed", id)
		return nil
	}
	ctx.Logger().NoticeCat(CatPopup, "%s: %s", getText(ctx.Session().Language(), "popup_closed"), id)
	return nil
}

func cmdPopupList(ctx *Context) error {
	list := ctx.Session().PopupList()
	if len(list) == 0 {
		ctx.Logger().Notice("no open popups")
		return nil
	}
	for i, p := range list {
		ctx.Logger().Notice("popup %d: %s (%q) %s", i+1, p.ID, p.Title, p.State)
	}
	return nil
}

// stateHandler builds the handler for one window-* visibility command
func stateHandler(state Visibility) Handler {
	return func(ctx *Context) error {
		name := ctx.Args.String("name")
		s := ctx.Session()

		if main := s.Main(); name == "main" || name == main.Name {
			s.mu.Lock()
			main.State = state
			s.mu.Unlock()
			ctx.Renderer().SetVisibility(main.Name, state)
			return nil
		}
		if p, ok := s.PopupByID(name); ok {
			s.mu.Lock()
			p.State = state
			s.mu.Unlock()
			ctx.Renderer().SetVisibility(p.ID, state)
			return nil
		}
		return notFoundErrorf(ctx.Args.Command, "window %q not found", name)
	}
}

func cmdWorkspace(ctx *Context) error {
	a := ctx.Args
	w := &Workspace{
		Name:       a.String("name"),
		X:          a.Int("x"),
		Y:          a.Int("y"),
		W:          a.Int("w"),
		H:          a.Int("h"),
		Background: a.String("bg"),
	}
	snap := *w
	if ctx.Session().DefineWorkspace(w) {
		ctx.Logger().DebugCat(CatRegistry, "workspace %q redefined", w.Name)
	}
	ctx.Renderer().CreateWorkspace(&snap)
	return nil
}

func cmdWorkspaceAdd(ctx *Context) error {
	a := ctx.Args
	ws := a.String("workspace")
	if _, ok := ctx.Session().WorkspaceByName(ws); !ok {
		return notFoundErrorf("workspace-add", "workspace %q not found", ws)
	}
	return defineControl(ctx, a.String("type"), a.String("name"), ws)
}

func cmdShow(ctx *Context) error {
	ctx.Renderer().Show()
	return nil
}

func cmdDisplayArea(ctx *Context) error {
	a := ctx.Args
	c := &Control{
		Name:      a.String("name"),
		Type:      "textarea",
		Container: ctx.Container,
		Wrap:      a.String("wrap"),
		Geometry: Geometry{
			Mode: GeometryAbsolute,
			X:    a.Int("x"),
			Y:    a.Int("y"),
			W:    a.Int("w"),
			H:    a.Int("h"),
		},
	}
	snap := *c
	if ctx.Session().DefineControl(c) {
		ctx.Logger().CommandWarning(CatRegistry, "display-area",
			"control "+strconv.Quote(snap.Name)+" replaced", ctx.Line)
	}
	style := &Style{Background: a.String("bg")}
	ctx.Renderer().CreateControl(&snap, style)
	ctx.Renderer().ApplyGeometry(&snap)
	return nil
}

func cmdDisplayContent(ctx *Context) error {
	a := ctx.Args
	name := a.String("name")
	c, ok := ctx.Session().ControlByName(name)
	if !ok {
		return notFoundErrorf("display-content", "display area %q not found", name)
	}
	if c.Type != "textarea" {
		return argumentErrorf("display-content", "control %q is not a display area", name)
	}
	return ctx.in.setControlAttr(&AttrRef{Control: name, Attr: "content"}, a.String("content"))
}

func cmdClearDisplay(ctx *Context) error {
	name := ctx.Args.String("name")
	c, ok := ctx.Session().ControlByName(name)
	if !ok {
		return notFoundErrorf("clear-display", "display area %q not found", name)
	}
	if c.Type != "textarea" {
		return argumentErrorf("clear-display", "control %q is not a display area", name)
	}
	return ctx.in.setControlAttr(&AttrRef{Control: name, Attr: "content"}, "")
}

func cmdSetLanguage(ctx *Context) error {
	code := ctx.Args.String("code")
	if _, ok := SupportedLanguages[code]; !ok {
		// Original behavior: unsupported codes warn and keep the
		// current language rather than failing the line
		ctx.Logger().CommandWarning(CatCommand, "set-language",
			"unsupported language "+strconv.Quote(code), ctx.Line)
		return nil
	}
	ctx.Session().SetLanguage(code)
	ctx.Logger().NoticeCat(CatCommand, "%s: %s", getText(code, "language_changed"), code)
	return nil
}

func cmdDisplayText(ctx *Context) error {
	a := ctx.Args
	name := a.String("target")
	c, ok := ctx.Session().ControlByName(name)
	if !ok {
		return notFoundErrorf("display-text", "control %q not found", name)
	}
	text := getText(ctx.Session().Language(), a.String("key"))
	attr := "text"
	if c.Type == "textarea" {
		attr = "content"
	}
	return ctx.in.setControlAttr(&AttrRef{Control: name, Attr: attr}, text)
}
