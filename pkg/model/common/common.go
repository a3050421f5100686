package common

// LabelValue is a display label / submit value pair for form choice lists.
type LabelValue struct {
	Label string `json:"label"`
	Value string `json:"value"`
}
