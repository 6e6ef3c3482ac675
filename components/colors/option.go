package colors

// Option is one selectable entry shaped for form inputs: the value submitted
// and the label displayed.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}
