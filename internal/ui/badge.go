package ui

import (
	"html/template"

	"gamjatokki/internal/ui/variant"
)

type BadgeVariant string

const (
	BadgePotato  BadgeVariant = "potato"
	BadgeRabbit  BadgeVariant = "rabbit"
	BadgeIncome  BadgeVariant = "income"
	BadgeExpense BadgeVariant = "expense"
	BadgeWarning BadgeVariant = "warning"
	BadgeDefault BadgeVariant = "default"
)

type BadgeSize string

const (
	BadgeSizeSm   BadgeSize = "sm"
	BadgeSizeBase BadgeSize = "base"
	BadgeSizeLg   BadgeSize = "lg"
)

// BadgeSpec is the styling table of Badge.
var BadgeSpec = variant.Spec{
	Base: "inline-flex items-center gap-1 rounded-full font-semibold whitespace-nowrap border",
	Axes: []variant.Axis{
		{
			Name:    "variant",
			Default: string(BadgeDefault),
			Options: map[string]string{
				string(BadgePotato):  "bg-amber-100 text-amber-900 border-amber-300",
				string(BadgeRabbit):  "bg-pink-100 text-pink-800 border-pink-300",
				string(BadgeIncome):  "bg-emerald-100 text-emerald-800 border-emerald-300",
				string(BadgeExpense): "bg-rose-100 text-rose-800 border-rose-300",
				string(BadgeWarning): "bg-yellow-100 text-yellow-900 border-yellow-400",
				string(BadgeDefault): "bg-stone-100 text-stone-700 border-stone-300",
			},
		},
		{
			Name:    "size",
			Default: string(BadgeSizeBase),
			Options: map[string]string{
				string(BadgeSizeSm):   "px-2 py-0.5 text-xs",
				string(BadgeSizeBase): "px-2.5 py-1 text-sm",
				string(BadgeSizeLg):   "px-3 py-1.5 text-base",
			},
		},
	},
}

type BadgeConfig struct {
	BaseConfig
	Variant BadgeVariant
	Size    BadgeSize
}

func (c *BadgeConfig) GetBase() *BaseConfig { return &c.BaseConfig }

type BadgeOption = Option[*BadgeConfig]

func WithBadgeVariant(v BadgeVariant) BadgeOption {
	return func(c *BadgeConfig) { c.Variant = v }
}

func WithBadgeSize(s BadgeSize) BadgeOption {
	return func(c *BadgeConfig) { c.Size = s }
}

// Badge renders a small pill label.
func Badge(label string, opts ...BadgeOption) template.HTML {
	c := &BadgeConfig{}
	for _, opt := range opts {
		opt(c)
	}

	return render("badge", struct {
		Class string
		Attrs []template.HTMLAttr
		Label string
	}{
		Class: BadgeClass(c),
		Attrs: c.Attrs,
		Label: label,
	})
}

// BadgeClass resolves the class string Badge would render for c.
func BadgeClass(c *BadgeConfig) string {
	return BadgeSpec.Resolve(variant.Selection{
		"variant": string(c.Variant),
		"size":    string(c.Size),
	}, c.className())
}
