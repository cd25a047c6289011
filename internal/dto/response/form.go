package response

// FormView describes a form page: its fields in display order and the
// choices offered by select inputs.
type FormView struct {
	Fields  []string            `json:"fields"`
	Options map[string][]string `json:"options,omitempty"`
}
