package models

// Relationship kind categories. The source data distinguishes family
// ties from social and institutional ones, and the pathway ranking
// prefers kinship when two routes tie on length.
const (
	RelationKinship     = "kinship"
	RelationAssociation = "association"
	RelationOffice      = "office"
)

// Relationship is one typed, weighted link between two people.
type Relationship struct {
	Source     string         `json:"source"`
	Target     string         `json:"target"`
	Kind       string         `json:"kind"`
	Label      string         `json:"label,omitempty"`
	Weight     float64        `json:"weight"`
	Properties map[string]any `json:"properties,omitempty"`
}

// GraphAttrs flattens a relationship into edge attributes.
func (r *Relationship) GraphAttrs() map[string]any {
	attrs := map[string]any{}

	if r.Label != "" {
		attrs["label"] = r.Label
	}

	for k, v := range r.Properties {
		attrs[k] = v
	}

	if len(attrs) == 0 {
		return nil
	}

	return attrs
}
