package convver

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrUnsupportedPropertyType is returned when a property is requested as a
// type the lookup cannot convert to.
var ErrUnsupportedPropertyType = errors.New("unsupported property type")

// Properties is a flat set of string-valued project properties.
type Properties map[string]string

// LoadProperties reads a YAML mapping of scalar values from path.
func LoadProperties(path string) (Properties, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading properties %s: %w", path, err)
	}
	return ParseProperties(data)
}

// ParseProperties decodes a YAML mapping. Scalars are kept in their textual
// form; nested mappings and sequences are rejected.
func ParseProperties(data []byte) (Properties, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing properties: %w", err)
	}
	props := Properties{}
	if len(doc.Content) == 0 {
		return props, nil
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("parsing properties: expected a mapping at line %d", root.Line)
	}
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, val := root.Content[i], root.Content[i+1]
		if val.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("parsing properties: value of %q at line %d is not a scalar", key.Value, val.Line)
		}
		props[key.Value] = val.Value
	}
	return props, nil
}

// PropertyOrNil looks up key and converts it to T. It returns nil when the key
// is absent. Supported types are bool, string, int and int64; any other T
// fails with ErrUnsupportedPropertyType.
func PropertyOrNil[T any](p Properties, key string) (*T, error) {
	raw, ok := p[key]
	if !ok {
		var zero T
		if !supportedPropertyType(zero) {
			return nil, unsupportedProperty(key, zero)
		}
		return nil, nil
	}

	var out any
	var zero T
	switch any(zero).(type) {
	case bool:
		out = strings.EqualFold(raw, "true")
	case string:
		out = raw
	case int:
		n, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return nil, fmt.Errorf("property %s: %w", key, err)
		}
		out = n
	case int64:
		n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("property %s: %w", key, err)
		}
		out = n
	default:
		return nil, unsupportedProperty(key, zero)
	}
	v := out.(T)
	return &v, nil
}

// PropertyOrDefault is PropertyOrNil with def substituted for an absent key.
func PropertyOrDefault[T any](p Properties, key string, def T) (T, error) {
	v, err := PropertyOrNil[T](p, key)
	if err != nil {
		return def, err
	}
	if v == nil {
		return def, nil
	}
	return *v, nil
}

func supportedPropertyType(v any) bool {
	switch v.(type) {
	case bool, string, int, int64:
		return true
	}
	return false
}

func unsupportedProperty(key string, v any) error {
	return fmt.Errorf("can't fetch property %s as %T: %w", key, v, ErrUnsupportedPropertyType)
}
