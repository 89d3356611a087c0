// Package variant resolves declarative styling axes into class strings.
//
// A component declares a Spec once: fixed base classes plus an ordered list of
// axes (variant, size, padding, ...). Each axis maps option keys to class
// fragments and names a default key. Callers pick an option per axis and may
// append their own raw classes, which always come last so they can override.
package variant

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownOption is returned by Strict for a selection key an axis does not declare.
var ErrUnknownOption = errors.New("unknown variant option")

// Axis is one styling dimension with mutually exclusive options.
type Axis struct {
	Name    string
	Default string
	Options map[string]string
}

// Fragment returns the class fragment for key, falling back to the default option.
func (a Axis) Fragment(key string) string {
	if frag, ok := a.Options[key]; ok {
		return frag
	}
	return a.Options[a.Default]
}

// Spec is the immutable styling table of a component.
type Spec struct {
	Base string
	Axes []Axis
}

// Selection maps axis names to the chosen option keys.
type Selection map[string]string

// Resolve builds the class string: base classes, one fragment per axis in
// declaration order, then className verbatim. Unset or unrecognized keys
// silently resolve to the axis default.
func (s Spec) Resolve(sel Selection, className string) string {
	parts := make([]string, 0, len(s.Axes)+2)
	parts = append(parts, s.Base)
	for _, axis := range s.Axes {
		parts = append(parts, axis.Fragment(sel[axis.Name]))
	}

	resolved := Join(parts...)
	if className == "" {
		return resolved
	}
	if resolved == "" {
		return className
	}
	return resolved + " " + className
}

// Strict reports the first selection key that is not declared by its axis.
// Axes left unset are fine; selections naming unknown axes are ignored.
func (s Spec) Strict(sel Selection) error {
	for _, axis := range s.Axes {
		key, ok := sel[axis.Name]
		if !ok || key == "" {
			continue
		}
		if _, known := axis.Options[key]; !known {
			return fmt.Errorf("%w: axis %q has no option %q", ErrUnknownOption, axis.Name, key)
		}
	}
	return nil
}

// Check validates the table itself: unique axis names and a declared default
// that exists among the axis options.
func (s Spec) Check() error {
	seen := make(map[string]bool, len(s.Axes))
	for _, axis := range s.Axes {
		if axis.Name == "" {
			return errors.New("variant axis without a name")
		}
		if seen[axis.Name] {
			return fmt.Errorf("duplicate variant axis %q", axis.Name)
		}
		seen[axis.Name] = true
		if _, ok := axis.Options[axis.Default]; !ok {
			return fmt.Errorf("axis %q: default %q is not a declared option", axis.Name, axis.Default)
		}
	}
	return nil
}

// Join concatenates class lists, collapsing whitespace and skipping empty inputs.
func Join(classes ...string) string {
	var out []string
	for _, c := range classes {
		out = append(out, strings.Fields(c)...)
	}
	return strings.Join(out, " ")
}
