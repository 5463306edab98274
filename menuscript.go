package menuscript

import (
	"net/http"
	"os"
)

// Interpreter is the main MenuScript interpreter. It owns the session,
// the dispatch table, the render adapter and the API task queue. One
// interpreter drives one main window.
type Interpreter struct {
	config   *Config
	logger   *Logger
	session  *Session
	renderer Renderer
	http     HTTPDoer
	commands map[string]*commandEntry
	aliases  map[string]string
	tasks    chan func()
}

// Handler executes one resolved command against the session
type Handler func(*Context) error

// commandEntry pairs a handler with the schema its arguments are
// resolved against
type commandEntry struct {
	schema  *schema
	handler Handler
}

// Context carries everything a handler needs for one invocation
type Context struct {
	Args *Args
	Line int
	// Container is the id of the workspace or popup owning controls
	// created by this command; "" means the main window
	Container string
	in        *Interpreter
}

// Session returns the entity registry
func (c *Context) Session() *Session { return c.in.session }

// Logger returns the interpreter's logger
func (c *Context) Logger() *Logger { return c.in.logger }

// Renderer returns the render adapter
func (c *Context) Renderer() Renderer { return c.in.renderer }

// Config returns the interpreter configuration
func (c *Context) Config() *Config { return c.in.config }

// New creates a new MenuScript interpreter. A nil renderer runs
// headless and a nil client gets a default HTTP client with the
// configured timeouts.
func New(config *Config, renderer Renderer, client HTTPDoer) *Interpreter {
	if config == nil {
		config = DefaultConfig()
	}
	if renderer == nil {
		renderer = NullRenderer{}
	}
	if client == nil {
		client = NewHTTPClient(config)
	}

	logger := NewLogger(config.Debug)
	if config.Debug {
		logger.EnableAllCategories()
	}

	in := &Interpreter{
		config:   config,
		logger:   logger,
		session:  NewSession(config),
		renderer: renderer,
		http:     client,
		commands: make(map[string]*commandEntry),
		aliases:  make(map[string]string),
		tasks:    make(chan func(), config.TaskQueueSize),
	}
	in.registerCommands()
	return in
}

// NewHTTPClient builds the production HTTP client with the configured
// request timeout
func NewHTTPClient(config *Config) *http.Client {
	return &http.Client{Timeout: config.APITimeout}
}

// Logger returns the interpreter's logger
func (in *Interpreter) Logger() *Logger { return in.logger }

// Session returns the entity registry
func (in *Interpreter) Session() *Session { return in.session }

// register adds one command to the dispatch table
func (in *Interpreter) register(name string, s *schema, h Handler) {
	in.commands[name] = &commandEntry{schema: s, handler: h}
}

// alias maps a shorthand onto a canonical command name
func (in *Interpreter) alias(short, canonical string) {
	in.aliases[short] = canonical
}

// ExecuteLine parses and dispatches one script line against the main
// window context. The returned error, if any, has already been logged;
// callers that run whole scripts just count it.
func (in *Interpreter) ExecuteLine(line string, lineNo int) error {
	return in.executeLineIn(line, lineNo, "")
}

func (in *Interpreter) executeLineIn(line string, lineNo int, container string) error {
	pc, err := ParseLine(line, lineNo)
	if err != nil {
		in.logScriptError(err, "", lineNo)
		return err
	}
	if pc == nil {
		return nil
	}
	return in.dispatch(pc, container)
}

// dispatch resolves a parsed command's arguments and runs its handler
func (in *Interpreter) dispatch(pc *ParsedCommand, container string) error {
	name := pc.Name
	if canonical, ok := in.aliases[name]; ok {
		name = canonical
	}
	entry, ok := in.commands[name]
	if !ok {
		err := unknownCommandError(pc.Name)
		err.Line = pc.Line
		in.logger.ScriptErrorLog(err)
		return err
	}

	args, err := resolveArgs(name, pc.Tokens, pc.Line, entry.schema)
	if err != nil {
		in.logScriptError(err, name, pc.Line)
		return err
	}

	ctx := &Context{Args: args, Line: pc.Line, Container: container, in: in}
	if err := entry.handler(ctx); err != nil {
		in.logScriptError(err, name, pc.Line)
		return err
	}
	return nil
}

// logScriptError normalizes an error into a positioned ScriptError and
// logs it once
func (in *Interpreter) logScriptError(err error, cmd string, line int) {
	se, ok := err.(*ScriptError)
	if !ok {
		se = &ScriptError{Kind: ErrArgument, Command: cmd, Message: err.Error()}
	}
	if se.Command == "" {
		se.Command = cmd
	}
	if se.Line == 0 {
		se.Line = line
	}
	in.logger.ScriptErrorLog(se)
}

// RunScript executes a whole script. Every line runs regardless of
// earlier failures; the return value is the number of lines that
// errored, for diagnostics and tests.
func (in *Interpreter) RunScript(text string) int {
	errCount := 0
	ParseScript(text, func(pc *ParsedCommand) {
		if err := in.dispatch(pc, ""); err != nil {
			errCount++
		}
	}, func(se *ScriptError) {
		in.logger.ScriptErrorLog(se)
		errCount++
	})
	return errCount
}

// RunFile loads and executes a script file. Only an unreadable file is
// a hard error; script-level problems are logged per line.
func (in *Interpreter) RunFile(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	return in.RunScript(string(data)), nil
}

// FireEvent triggers the binding for a (control, event) pair. UI
// frontends call this from their widget callbacks. Firing never
// returns an error; binding failures are logged and the UI stays
// responsive.
func (in *Interpreter) FireEvent(control string, event EventKind) {
	b, ok := in.session.BindingFor(BindingKey{Control: control, Event: event})
	if !ok {
		in.logger.DebugCat(CatBinding, "no %s binding on %q", event, control)
		return
	}
	switch {
	case b.Assign != nil:
		if err := in.applyAssignment(b.Assign); err != nil {
			in.logScriptError(err, "", b.Line)
		}
	case b.API != nil:
		in.fireAPICall(b.API, b.Line)
	}
}

// SetControlValue records user input from the frontend into the
// session so templates and bindings observe the value the user sees.
// No render instruction is emitted; the widget already shows it.
func (in *Interpreter) SetControlValue(name, value string) {
	c, ok := in.session.ControlByName(name)
	if !ok {
		return
	}
	in.session.mu.Lock()
	c.Value = value
	in.session.mu.Unlock()
}

// enqueue schedules work onto the task queue. Called from API
// completion goroutines; blocks only if the queue is full.
func (in *Interpreter) enqueue(fn func()) {
	in.tasks <- fn
}

// PumpEvents drains the task queue, applying queued API completions in
// arrival order. Frontends call this from their UI tick; headless
// callers (and tests) call it directly. Returns how many tasks ran.
func (in *Interpreter) PumpEvents() int {
	n := 0
	for {
		select {
		case fn := <-in.tasks:
			fn()
			n++
		default:
			return n
		}
	}
}
