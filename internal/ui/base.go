// Package ui renders the ledger's presentational components as HTML fragments.
//
// Components are pure: the same options always produce the same markup. Every
// visual decision goes through a variant.Spec; callers only pick options and
// may append their own classes or pass extra attributes through.
package ui

import (
	"html/template"
	"regexp"
	"strings"
)

// BaseConfig is embedded in every component config.
type BaseConfig struct {
	Classes []string
	Attrs   []template.HTMLAttr
}

// ConfigProvider lets the generic options below work on any component config.
type ConfigProvider interface {
	GetBase() *BaseConfig
}

// Option modifies a component config.
type Option[T ConfigProvider] func(T)

// Class appends caller classes. They are emitted after the resolved variant
// classes, unmodified.
func Class[T ConfigProvider](c string) Option[T] {
	return func(cfg T) {
		base := cfg.GetBase()
		base.Classes = append(base.Classes, c)
	}
}

// Attr passes an extra attribute through to the component's root element.
// Only data-*, aria-*, role, title, id and lang are accepted; anything else
// (class, href, style, on*) is dropped because the value is only HTML-escaped.
func Attr[T ConfigProvider](name, value string) Option[T] {
	return func(cfg T) {
		if a, ok := attr(name, value); ok {
			base := cfg.GetBase()
			base.Attrs = append(base.Attrs, a)
		}
	}
}

var attrNameRe = regexp.MustCompile(`^[a-zA-Z_:][-a-zA-Z0-9_:.]*$`)

func attr(name, value string) (template.HTMLAttr, bool) {
	if !attrNameRe.MatchString(name) {
		return "", false
	}
	if !passThroughAllowed(strings.ToLower(name)) {
		return "", false
	}
	return template.HTMLAttr(name + `="` + template.HTMLEscapeString(value) + `"`), true
}

func passThroughAllowed(name string) bool {
	switch name {
	case "role", "title", "id", "lang":
		return true
	}
	return (strings.HasPrefix(name, "data-") || strings.HasPrefix(name, "aria-")) &&
		!strings.ContainsAny(name, ":.")
}

// className returns the caller classes as one raw string.
func (b *BaseConfig) className() string {
	return strings.Join(b.Classes, " ")
}
