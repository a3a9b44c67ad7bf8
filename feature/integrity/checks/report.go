package checks

// Issue is one integrity violation.
type Issue struct {
	Collection string `json:"collection"`
	ID         string `json:"id"`
	Field      string `json:"field,omitempty"`
	Value      string `json:"value,omitempty"`
	Message    string `json:"message"`
}

// Report lists the issues found over a number of checked records.
type Report struct {
	Checked int     `json:"checked"`
	Issues  []Issue `json:"issues"`
}

// OK reports whether no issue was found.
func (r Report) OK() bool {
	return len(r.Issues) == 0
}

func (r *Report) add(collection, id, field, value, message string) {
	r.Issues = append(r.Issues, Issue{
		Collection: collection,
		ID:         id,
		Field:      field,
		Value:      value,
		Message:    message,
	})
}

func newReport() Report {
	return Report{Issues: []Issue{}}
}
