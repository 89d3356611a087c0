package ui

import "html/template"

const (
	DefaultPotatoName = "철수"
	DefaultRabbitName = "영희"
)

const coupleGreetingClass = "flex flex-col items-center py-6 text-center"

type CoupleGreetingConfig struct {
	BaseConfig
	PotatoName string
	RabbitName string
}

func (c *CoupleGreetingConfig) GetBase() *BaseConfig { return &c.BaseConfig }

type CoupleGreetingOption = Option[*CoupleGreetingConfig]

// WithNames overrides the couple's names. Empty names keep the defaults.
func WithNames(potato, rabbit string) CoupleGreetingOption {
	return func(c *CoupleGreetingConfig) {
		if potato != "" {
			c.PotatoName = potato
		}
		if rabbit != "" {
			c.RabbitName = rabbit
		}
	}
}

// CoupleGreeting renders the header greeting with both mascots.
func CoupleGreeting(opts ...CoupleGreetingOption) template.HTML {
	c := &CoupleGreetingConfig{
		PotatoName: DefaultPotatoName,
		RabbitName: DefaultRabbitName,
	}
	for _, opt := range opts {
		opt(c)
	}

	class := coupleGreetingClass
	if extra := c.className(); extra != "" {
		class += " " + extra
	}

	return render("couple_greeting", struct {
		Class      string
		Potato     template.HTML
		Rabbit     template.HTML
		PotatoName string
		RabbitName string
	}{
		Class:      class,
		Potato:     Character(Potato, c.PotatoName),
		Rabbit:     Character(Rabbit, c.RabbitName),
		PotatoName: c.PotatoName,
		RabbitName: c.RabbitName,
	})
}
