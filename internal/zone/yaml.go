package zone

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// UnmarshalYAML lets a Type be decoded directly from the rule corpus's
// scalar zone-type names ("city", "state_district", ...), the Go analogue of
// original_source/src/zone_typer.rs deserializing ZoneType from the libpostal
// YAML files via serde.
func (t *Type) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, ok := ParseType(s)
	if !ok {
		return fmt.Errorf("zone: unknown zone type %q", s)
	}
	*t = parsed
	return nil
}
