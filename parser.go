package menuscript

import (
	"strings"
)

// ParseLine tokenizes a single script line. It returns (nil, nil) for
// blank lines and comments. The optional "menu " prefix is stripped so
// scripts pasted from transcript logs still run.
func ParseLine(line string, lineNo int) (*ParsedCommand, error) {
	raw := line
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return nil, nil
	}
	if trimmed == "menu" {
		return nil, nil
	}
	if strings.HasPrefix(trimmed, "menu ") {
		trimmed = strings.TrimSpace(trimmed[len("menu "):])
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			return nil, nil
		}
	}

	tokens, err := tokenizeLine(trimmed, lineNo)
	if err != nil {
		return nil, err
	}
	if len(tokens) == 0 {
		return nil, nil
	}

	name := strings.ToLower(tokens[0].Text)
	return &ParsedCommand{
		Name:   name,
		Tokens: tokens[1:],
		Line:   lineNo,
		Raw:    raw,
	}, nil
}

// tokenizeLine splits a line on whitespace, honoring single and double
// quotes. A quote of one kind inside the other is kept literally. The
// quote characters themselves are stripped; tokens that began with a
// quote are flagged so the argument resolver never treats them as
// key=value options. A bare # starting a token ends the line.
func tokenizeLine(line string, lineNo int) ([]Token, error) {
	var tokens []Token
	var current strings.Builder
	inToken := false
	startedQuoted := false
	var quoteChar rune // 0 when outside quotes

	flush := func() {
		if inToken {
			tokens = append(tokens, Token{Text: current.String(), Quoted: startedQuoted})
			current.Reset()
			inToken = false
			startedQuoted = false
		}
	}

	runes := []rune(line)
	for i := 0; i < len(runes); i++ {
		ch := runes[i]

		if quoteChar != 0 {
			if ch == quoteChar {
				quoteChar = 0
			} else {
				current.WriteRune(ch)
			}
			continue
		}

		switch {
		case ch == '\'' || ch == '"':
			if !inToken {
				inToken = true
				startedQuoted = true
			}
			quoteChar = ch
		case ch == ' ' || ch == '\t':
			flush()
		case ch == '#' && !inToken:
			// Trailing comment
			return tokens, nil
		default:
			inToken = true
			current.WriteRune(ch)
		}
	}

	if quoteChar != 0 {
		err := syntaxErrorf("unterminated %c quote", quoteChar)
		err.Line = lineNo
		return nil, err
	}
	flush()
	return tokens, nil
}

// ParseScript tokenizes a full script, invoking handle for each command.
// Lines that fail to tokenize are reported through handleErr and skipped;
// a bad line never stops the rest of the script.
func ParseScript(text string, handle func(*ParsedCommand), handleErr func(*ScriptError)) {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		pc, err := ParseLine(line, i+1)
		if err != nil {
			var se *ScriptError
			if e, ok := err.(*ScriptError); ok {
				se = e
			} else {
				se = syntaxErrorf("%v", err)
				se.Line = i + 1
			}
			if handleErr != nil {
				handleErr(se)
			}
			continue
		}
		if pc != nil {
			handle(pc)
		}
	}
}
