package diagnostics

// Template describes a diagnostic kind. Summary and Details may reference
// parameters as {Name}.
type Template struct {
	ID       ID
	Title    string
	Severity Severity
	Summary  string
	Details  string
}

// New creates a Diagnostic from the template.
func (t Template) New(params ...Param) Diagnostic {
	d := Diagnostic{
		ID:       t.ID,
		Severity: t.Severity,
		Title:    t.Title,
		Summary:  t.Summary,
		Details:  t.Details,
	}
	if len(params) > 0 {
		d.Params = make(map[string]any, len(params))
		for _, p := range params {
			d.Params[p.Name] = p.Value
		}
	}
	return d
}
