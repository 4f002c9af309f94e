package diagnostics

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Punkwe1ght/modsync/pkg/errors"
)

// Severity ranks diagnostics; higher is worse.
type Severity int

const (
	Suggestion Severity = iota
	Warning
	Critical
)

var severityNames = map[Severity]string{
	Suggestion: "Suggestion",
	Warning:    "Warning",
	Critical:   "Critical",
}

func (s Severity) String() string {
	if name, ok := severityNames[s]; ok {
		return name
	}
	return "Severity(" + strconv.Itoa(int(s)) + ")"
}

func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Severity) UnmarshalText(text []byte) error {
	for sev, name := range severityNames {
		if strings.EqualFold(name, string(text)) {
			*s = sev
			return nil
		}
	}
	return errors.Newf(errors.ErrInvalidInput, "unknown severity %q", string(text))
}

// ID identifies a diagnostic kind: the emitting source plus a number that
// is stable across releases.
type ID struct {
	Source string
	Number int
}

func (id ID) String() string {
	return id.Source + "#" + strconv.Itoa(id.Number)
}

func (id ID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// ParseID parses the "Source#Number" form.
func ParseID(s string) (ID, error) {
	i := strings.LastIndexByte(s, '#')
	if i <= 0 || i == len(s)-1 {
		return ID{}, errors.Newf(errors.ErrInvalidInput, "diagnostic id %q is not of the form source#number", s)
	}
	n, err := strconv.Atoi(s[i+1:])
	if err != nil {
		return ID{}, errors.Wrapf(err, errors.ErrInvalidInput, "diagnostic id %q has a bad number", s)
	}
	return ID{Source: s[:i], Number: n}, nil
}

// Param is a named value substituted into {Name} placeholders.
type Param struct {
	Name  string
	Value any
}

// With is shorthand for a Param.
func With(name string, value any) Param {
	return Param{Name: name, Value: value}
}

// Diagnostic is one reported problem. Summary and Details keep their
// placeholders; use FormatSummary and FormatDetails to render them.
type Diagnostic struct {
	ID       ID
	Severity Severity
	Title    string
	Summary  string
	Details  string
	Params   map[string]any
}

func (d Diagnostic) FormatSummary() string {
	return substitute(d.Summary, d.Params)
}

func (d Diagnostic) FormatDetails() string {
	return substitute(d.Details, d.Params)
}

// Param returns the value of a named parameter.
func (d Diagnostic) Param(name string) (any, bool) {
	v, ok := d.Params[name]
	return v, ok
}

// substitute replaces {Name} with the formatted parameter. Unknown
// placeholders are left as written. A placeholder is the innermost
// brace pair, so "{{A}}" renders as "{x}".
func substitute(text string, params map[string]any) string {
	if len(params) == 0 || !strings.Contains(text, "{") {
		return text
	}
	var b strings.Builder
	b.Grow(len(text))
	for {
		closing := strings.IndexByte(text, '}')
		if closing < 0 {
			b.WriteString(text)
			break
		}
		open := strings.LastIndexByte(text[:closing], '{')
		if open < 0 {
			b.WriteString(text[:closing+1])
			text = text[closing+1:]
			continue
		}
		name := text[open+1 : closing]
		b.WriteString(text[:open])
		if v, ok := params[name]; ok {
			b.WriteString(fmt.Sprint(v))
		} else {
			b.WriteString(text[open : closing+1])
		}
		text = text[closing+1:]
	}
	return b.String()
}
