package locale

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// BaseLocation is one configured source of locale documents. In
// configuration it is written either as a bare string (the base URI) or as
// an object with baseURI and resolver.
type BaseLocation struct {
	BaseURI string `json:"baseURI" yaml:"baseURI" toml:"baseURI"`
	// Resolver names an alternate resolver in the Registry; empty selects
	// the default.
	Resolver string `json:"resolver,omitempty" yaml:"resolver,omitempty" toml:"resolver,omitempty"`
}

func (l BaseLocation) String() string {
	if l.Resolver == "" {
		return l.BaseURI
	}
	return l.BaseURI + " (" + l.Resolver + ")"
}

type plainLocation BaseLocation

// UnmarshalText accepts the bare string form, used for environment values.
func (l *BaseLocation) UnmarshalText(text []byte) error {
	*l = BaseLocation{BaseURI: string(text)}
	return nil
}

func (l *BaseLocation) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*l = BaseLocation{BaseURI: s}
		return nil
	}
	var p plainLocation
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*l = BaseLocation(p)
	return nil
}

func (l *BaseLocation) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		*l = BaseLocation{BaseURI: node.Value}
		return nil
	}
	var p plainLocation
	if err := node.Decode(&p); err != nil {
		return err
	}
	*l = BaseLocation(p)
	return nil
}

// UnmarshalTOML implements toml.Unmarshaler.
func (l *BaseLocation) UnmarshalTOML(data any) error {
	switch v := data.(type) {
	case string:
		*l = BaseLocation{BaseURI: v}
	case map[string]any:
		base, _ := v["baseURI"].(string)
		resolver, _ := v["resolver"].(string)
		*l = BaseLocation{BaseURI: base, Resolver: resolver}
	default:
		return fmt.Errorf("jsonBaseURIs entry must be a string or a table, got %T", data)
	}
	return nil
}
