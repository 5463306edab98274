package menuscript

import (
	"fmt"
	"strconv"
	"strings"
)

// argType is the coercion applied to a raw token before a handler sees it
type argType int

const (
	argString argType = iota
	argInt
	argFloat
	argBool
	argDimension // "WxH" pair of positive ints
	argWeights   // Comma-separated non-negative ints
)

// positional is one fixed-position slot in a command schema
type positional struct {
	name     string
	typ      argType
	required bool
}

// schema declares what a command accepts. Positional slots fill in order;
// key=value options may appear anywhere on the line. A schema may also
// accept a trailing value: restJoin collects leftover tokens into one
// space-joined string, restList keeps them as a list.
type schema struct {
	positional    []positional
	restJoin      string
	restList      string
	named         map[string]argType
	allowTarget   bool
	requireTarget bool
}

// Args holds resolved, typed arguments for one command invocation
type Args struct {
	Command string
	Line    int
	values  map[string]interface{}
	Target  *AttrRef
}

// Has reports whether the argument was supplied
func (a *Args) Has(name string) bool {
	_, ok := a.values[name]
	return ok
}

// String returns a string argument, "" if absent
func (a *Args) String(name string) string {
	if v, ok := a.values[name].(string); ok {
		return v
	}
	return ""
}

// Int returns an int argument, 0 if absent
func (a *Args) Int(name string) int {
	if v, ok := a.values[name].(int); ok {
		return v
	}
	return 0
}

// Float returns a float argument, 0 if absent
func (a *Args) Float(name string) float64 {
	if v, ok := a.values[name].(float64); ok {
		return v
	}
	return 0
}

// Bool returns a bool argument, false if absent
func (a *Args) Bool(name string) bool {
	if v, ok := a.values[name].(bool); ok {
		return v
	}
	return false
}

// Dimension returns a WxH argument as (width, height)
func (a *Args) Dimension(name string) (int, int) {
	if v, ok := a.values[name].([2]int); ok {
		return v[0], v[1]
	}
	return 0, 0
}

// Ints returns a weights argument, nil if absent
func (a *Args) Ints(name string) []int {
	if v, ok := a.values[name].([]int); ok {
		return v
	}
	return nil
}

// List returns a rest-list argument, nil if absent
func (a *Args) List(name string) []string {
	if v, ok := a.values[name].([]string); ok {
		return v
	}
	return nil
}

// resolveArgs checks the tokens of a parsed command against a schema and
// returns typed arguments. All failures are argument errors carrying the
// command name and line.
func resolveArgs(cmd string, tokens []Token, line int, s *schema) (*Args, error) {
	args := &Args{Command: cmd, Line: line, values: make(map[string]interface{})}

	fail := func(format string, fa ...interface{}) (*Args, error) {
		err := argumentErrorf(cmd, format, fa...)
		err.Line = line
		return nil, err
	}

	// Peel off a trailing "-> target.attr" clause first
	for i, t := range tokens {
		if t.Quoted || t.Text != "->" {
			continue
		}
		if !s.allowTarget {
			return fail("-> target is not supported here")
		}
		rest := tokens[i+1:]
		if len(rest) != 1 {
			return fail("expected exactly one target after ->")
		}
		ref, err := parseAttrRef(rest[0].Text)
		if err != nil {
			return fail("invalid target %q: %v", rest[0].Text, err)
		}
		args.Target = ref
		tokens = tokens[:i]
		break
	}
	if s.requireTarget && args.Target == nil {
		return fail("missing -> target")
	}

	// Positional tokens run left to right until the first key=value
	// option; after that everything must be named
	var posTokens []Token
	seenNamed := false
	for _, t := range tokens {
		key, val, isNamed := splitOption(t)
		if !isNamed {
			if seenNamed {
				return fail("positional argument %q after named options", t.Text)
			}
			posTokens = append(posTokens, t)
			continue
		}
		seenNamed = true
		typ, known := s.named[key]
		if !known {
			return fail("unknown option %q", key)
		}
		coerced, err := coerce(val, typ)
		if err != nil {
			return fail("option %s: %v", key, err)
		}
		args.values[key] = coerced
	}

	for _, p := range s.positional {
		if len(posTokens) == 0 {
			if p.required {
				return fail("missing required argument %q", p.name)
			}
			break
		}
		coerced, err := coerce(posTokens[0].Text, p.typ)
		if err != nil {
			return fail("argument %s: %v", p.name, err)
		}
		args.values[p.name] = coerced
		posTokens = posTokens[1:]
	}

	switch {
	case len(posTokens) == 0:
	case s.restJoin != "":
		parts := make([]string, len(posTokens))
		for i, t := range posTokens {
			parts[i] = t.Text
		}
		args.values[s.restJoin] = strings.Join(parts, " ")
	case s.restList != "":
		parts := make([]string, len(posTokens))
		for i, t := range posTokens {
			parts[i] = t.Text
		}
		args.values[s.restList] = parts
	default:
		return fail("unexpected argument %q", posTokens[0].Text)
	}

	return args, nil
}

// splitOption reports whether a token is a key=value option. Tokens that
// began with a quote are always positional, so quoted literals may
// contain = freely.
func splitOption(t Token) (key, val string, ok bool) {
	if t.Quoted {
		return "", "", false
	}
	eq := strings.IndexByte(t.Text, '=')
	if eq <= 0 {
		return "", "", false
	}
	key = t.Text[:eq]
	if !isIdent(key) {
		return "", "", false
	}
	return key, t.Text[eq+1:], true
}

func isIdent(s string) bool {
	if s == "" {
		return false
	}
	for i, ch := range s {
		switch {
		case ch >= 'a' && ch <= 'z', ch >= 'A' && ch <= 'Z', ch == '_':
		case (ch >= '0' && ch <= '9') || ch == '-':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

func coerce(raw string, typ argType) (interface{}, error) {
	switch typ {
	case argString:
		return raw, nil
	case argInt:
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("%q is not an integer", raw)
		}
		return n, nil
	case argFloat:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("%q is not a number", raw)
		}
		return f, nil
	case argBool:
		switch strings.ToLower(raw) {
		case "true", "1", "yes":
			return true, nil
		case "false", "0", "no":
			return false, nil
		}
		return nil, fmt.Errorf("%q is not a boolean", raw)
	case argDimension:
		return parseDimension(raw)
	case argWeights:
		return parseWeights(raw)
	}
	return nil, fmt.Errorf("unsupported argument type")
}

// parseDimension parses a "WxH" size string into a [width, height] pair
func parseDimension(raw string) ([2]int, error) {
	parts := strings.SplitN(strings.ToLower(raw), "x", 2)
	if len(parts) != 2 {
		return [2]int{}, fmt.Errorf("%q is not a WxH size", raw)
	}
	w, errW := strconv.Atoi(parts[0])
	h, errH := strconv.Atoi(parts[1])
	if errW != nil || errH != nil || w <= 0 || h <= 0 {
		return [2]int{}, fmt.Errorf("%q is not a WxH size", raw)
	}
	return [2]int{w, h}, nil
}

// parseWeights parses a comma-separated weight list like "1,2,1"
func parseWeights(raw string) ([]int, error) {
	parts := strings.Split(raw, ",")
	weights := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || n < 0 {
			return nil, fmt.Errorf("%q is not a weight list", raw)
		}
		weights = append(weights, n)
	}
	return weights, nil
}
