package ui

import (
	"html/template"

	"gamjatokki/internal/ui/variant"
)

// CharacterKind is one of the two ledger mascots.
type CharacterKind string

const (
	Potato CharacterKind = "potato"
	Rabbit CharacterKind = "rabbit"
)

var characterSpec = variant.Spec{
	Base: "flex flex-col items-center rounded-full",
	Axes: []variant.Axis{
		{
			Name:    "kind",
			Default: string(Potato),
			Options: map[string]string{
				string(Potato): "text-amber-900",
				string(Rabbit): "text-pink-700",
			},
		},
	},
}

var characterLooks = map[CharacterKind]struct{ emoji, label string }{
	Potato: {"🥔", "감자"},
	Rabbit: {"🐰", "토끼"},
}

// Character renders a mascot avatar captioned with name.
func Character(kind CharacterKind, name string) template.HTML {
	look, ok := characterLooks[kind]
	if !ok {
		kind = Potato
		look = characterLooks[Potato]
	}

	return render("character", struct {
		Class, Kind, Emoji, Label, Name string
	}{
		Class: characterSpec.Resolve(variant.Selection{"kind": string(kind)}, ""),
		Kind:  string(kind),
		Emoji: look.emoji,
		Label: look.label,
		Name:  name,
	})
}
