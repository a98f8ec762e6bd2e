package config

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/lone-faerie/uomgrade/tolerance"
)

// Names of the builtin tolerance profiles.
const (
	ProfileSingle    = "single"
	ProfileRoundTrip = "round-trip"
)

var profiles = map[string]tolerance.Profile{
	ProfileSingle:    tolerance.Single,
	ProfileRoundTrip: tolerance.RoundTrip,
}

// ToleranceConfig selects the profile used to compare answers. In yaml it is
// either the name of a builtin profile:
//
//	tolerance: round-trip
//
// or a custom margin:
//
//	tolerance:
//	  epsilon: 0.01
//	  ulps: 4
type ToleranceConfig struct {
	Name string
	tolerance.Profile
}

// DefaultTolerance is the configuration using [tolerance.Single].
var DefaultTolerance = ToleranceConfig{Name: ProfileSingle, Profile: tolerance.Single}

// ParseTolerance returns the builtin profile with the given name, ignoring
// case. "roundtrip" is accepted for "round-trip".
func ParseTolerance(name string) (ToleranceConfig, error) {
	name = strings.ToLower(name)
	if name == "roundtrip" {
		name = ProfileRoundTrip
	}
	p, ok := profiles[name]
	if !ok {
		return ToleranceConfig{}, fmt.Errorf("unknown tolerance profile %q", name)
	}
	return ToleranceConfig{Name: name, Profile: p}, nil
}

func (tc *ToleranceConfig) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		var s string
		if err := node.Decode(&s); err != nil {
			return err
		}
		parsed, err := ParseTolerance(s)
		if err != nil {
			return err
		}
		*tc = parsed
		return nil
	}
	var p tolerance.Profile
	if err := node.Decode(&p); err != nil {
		return err
	}
	if p.Epsilon < 0 || p.ULPs < 0 {
		return fmt.Errorf("line %d: tolerance must not be negative", node.Line)
	}
	*tc = ToleranceConfig{Profile: p}
	return nil
}

func (tc ToleranceConfig) MarshalYAML() (any, error) {
	if tc.Name != "" {
		return tc.Name, nil
	}
	return tc.Profile, nil
}

func (tc ToleranceConfig) String() string {
	if tc.Name != "" {
		return tc.Name
	}
	return tc.Profile.String()
}
