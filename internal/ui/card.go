package ui

import (
	"html/template"

	"gamjatokki/internal/ui/variant"
)

type CardVariant string

const (
	CardDefault  CardVariant = "default"
	CardElevated CardVariant = "elevated"
	CardGradient CardVariant = "gradient"
	CardMinimal  CardVariant = "minimal"
)

type CardPadding string

const (
	CardPaddingNone CardPadding = "none"
	CardPaddingSm   CardPadding = "sm"
	CardPaddingBase CardPadding = "base"
	CardPaddingLg   CardPadding = "lg"
)

// CardSpec is the styling table of Card.
var CardSpec = variant.Spec{
	Base: "rounded-2xl transition-shadow",
	Axes: []variant.Axis{
		{
			Name:    "variant",
			Default: string(CardDefault),
			Options: map[string]string{
				string(CardDefault):  "bg-white border border-stone-200 shadow-sm",
				string(CardElevated): "bg-white shadow-lg hover:shadow-xl",
				string(CardGradient): "bg-gradient-to-br from-amber-50 via-orange-50 to-pink-100 border border-pink-200",
				string(CardMinimal):  "bg-transparent",
			},
		},
		{
			Name:    "padding",
			Default: string(CardPaddingBase),
			Options: map[string]string{
				string(CardPaddingNone): "p-0",
				string(CardPaddingSm):   "p-3",
				string(CardPaddingBase): "p-5",
				string(CardPaddingLg):   "p-8",
			},
		},
	},
}

type CardConfig struct {
	BaseConfig
	Variant CardVariant
	Padding CardPadding
	// Action is fetched with htmx when the card is clicked.
	Action string
	Target string
	// Swap is the hx-swap strategy; empty keeps the htmx default (innerHTML).
	Swap string
}

func (c *CardConfig) GetBase() *BaseConfig { return &c.BaseConfig }

type CardOption = Option[*CardConfig]

func WithCardVariant(v CardVariant) CardOption {
	return func(c *CardConfig) { c.Variant = v }
}

func WithCardPadding(p CardPadding) CardOption {
	return func(c *CardConfig) { c.Padding = p }
}

// OnClick makes the card clickable: url is loaded into target (a CSS selector).
// An empty target swaps the card itself.
func OnClick(url, target string) CardOption {
	return func(c *CardConfig) {
		c.Action = url
		c.Target = target
		if c.Target == "" {
			c.Target = "this"
		}
	}
}

// WithCardSwap sets how the OnClick response replaces its target. Use
// "outerHTML" when the response carries the target element itself.
func WithCardSwap(swap string) CardOption {
	return func(c *CardConfig) { c.Swap = swap }
}

// Card wraps body in a styled container.
func Card(body template.HTML, opts ...CardOption) template.HTML {
	c := &CardConfig{}
	for _, opt := range opts {
		opt(c)
	}

	return render("card", struct {
		Class  string
		Attrs  []template.HTMLAttr
		Action string
		Target string
		Swap   string
		Body   template.HTML
	}{
		Class:  CardClass(c),
		Attrs:  c.Attrs,
		Action: c.Action,
		Target: c.Target,
		Swap:   c.Swap,
		Body:   body,
	})
}

// CardClass resolves the class string Card would render for c.
func CardClass(c *CardConfig) string {
	class := CardSpec.Resolve(variant.Selection{
		"variant": string(c.Variant),
		"padding": string(c.Padding),
	}, c.className())
	if c.Action != "" {
		class = "cursor-pointer " + class
	}
	return class
}
