package menuscript

import (
	"fmt"
	"strings"
)

// writable control attributes; anything else is a binding error
var controlAttrs = map[string]bool{
	"text":        true,
	"value":       true,
	"content":     true,
	"placeholder": true,
}

// parseAttrRef parses "control.attr" or "main.control.attr" into an
// AttrRef. Only the shape is checked here; whether the control exists
// and the attribute applies is decided when the reference is used.
func parseAttrRef(s string) (*AttrRef, error) {
	parts := strings.Split(s, ".")
	switch len(parts) {
	case 2:
		if parts[0] == "" || parts[1] == "" {
			return nil, fmt.Errorf("expected control.attr")
		}
		return &AttrRef{Control: parts[0], Attr: parts[1]}, nil
	case 3:
		if parts[0] != "main" {
			return nil, fmt.Errorf("expected main.control.attr, got %q prefix", parts[0])
		}
		if parts[1] == "" || parts[2] == "" {
			return nil, fmt.Errorf("expected main.control.attr")
		}
		return &AttrRef{Control: parts[1], Attr: parts[2], Main: true}, nil
	default:
		return nil, fmt.Errorf("expected control.attr")
	}
}

// ParseAssignment parses the one expression form bindings accept:
//
//	target.attr = 'literal'
//
// The literal must be quoted (either quote kind). Anything outside this
// shape is rejected at bind time; there is no general expression
// evaluator and script text is never executed as code.
func ParseAssignment(expr string) (*Assignment, error) {
	eq := strings.IndexByte(expr, '=')
	if eq < 0 {
		return nil, bindingErrorf("expression %q is not an assignment", expr)
	}
	left := strings.TrimSpace(expr[:eq])
	right := strings.TrimSpace(expr[eq+1:])

	ref, err := parseAttrRef(left)
	if err != nil {
		return nil, bindingErrorf("bad assignment target %q: %v", left, err)
	}
	if !controlAttrs[ref.Attr] {
		return nil, bindingErrorf("unknown attribute %q in assignment target", ref.Attr)
	}

	lit, ok := unquoteLiteral(right)
	if !ok {
		return nil, bindingErrorf("assignment value %q must be a quoted literal", right)
	}
	return &Assignment{Target: *ref, Literal: lit}, nil
}

// unquoteLiteral strips one matched pair of single or double quotes
func unquoteLiteral(s string) (string, bool) {
	if len(s) < 2 {
		return "", false
	}
	q := s[0]
	if q != '\'' && q != '"' {
		return "", false
	}
	if s[len(s)-1] != q {
		return "", false
	}
	return s[1 : len(s)-1], true
}

// substituteTemplate replaces each {controlName} placeholder with that
// control's current value. A placeholder naming no control substitutes
// an empty string and logs a warning; surrounding text is untouched.
// Braces that do not wrap a bare identifier pass through, so JSON
// template bodies survive intact.
func (in *Interpreter) substituteTemplate(tpl string) string {
	var b strings.Builder
	for i := 0; i < len(tpl); {
		if tpl[i] == '{' {
			if j := strings.IndexByte(tpl[i:], '}'); j > 1 {
				name := tpl[i+1 : i+j]
				if isIdent(name) {
					if v, ok := in.session.ControlValue(name); ok {
						b.WriteString(v)
					} else {
						in.logger.WarnCat(CatBinding, "placeholder {%s} names no control, substituting empty string", name)
					}
					i += j + 1
					continue
				}
			}
		}
		b.WriteByte(tpl[i])
		i++
	}
	return b.String()
}

// setControlAttr writes one attribute of one control and pushes the
// change to the renderer. Missing control or inapplicable attribute is
// a binding error; the session is left untouched.
func (in *Interpreter) setControlAttr(ref *AttrRef, value string) error {
	c, ok := in.session.ControlByName(ref.Control)
	if !ok {
		return bindingErrorf("control %q not found", ref.Control)
	}
	if !controlAttrs[ref.Attr] {
		return bindingErrorf("control %q has no attribute %q", ref.Control, ref.Attr)
	}

	in.session.mu.Lock()
	switch ref.Attr {
	case "text":
		c.Text = value
	case "value":
		c.Value = value
	case "content":
		c.Content = value
	case "placeholder":
		c.Placeholder = value
	}
	in.session.mu.Unlock()

	in.renderer.UpdateControlAttr(c.Name, ref.Attr, value)
	return nil
}

// applyAssignment performs a bound assignment at fire time
func (in *Interpreter) applyAssignment(a *Assignment) error {
	return in.setControlAttr(&a.Target, a.Literal)
}
