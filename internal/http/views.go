package http

import (
	"fmt"
	"html/template"

	"gamjatokki/internal/core"
	"gamjatokki/internal/ui"
)

// LargeExpense is the amount from which an expense is flagged in the list.
const LargeExpense core.Won = 100_000

// entriesID is the id of the entries partial's root element.
const entriesID = "entries"

type indexView struct {
	Title       string
	Year        int
	Month       int
	Greeting    template.HTML
	SummaryCard template.HTML
	ShareCard   template.HTML
	Entries     entriesView
}

type entriesView struct {
	Rows []entryRow
}

type entryRow struct {
	Day         int
	Description string
	Kind        core.Kind
	Amount      string
	KindBadge   template.HTML
	OwnerBadge  template.HTML
	Flag        template.HTML
}

type componentsView struct {
	Title    string
	Greeting template.HTML
	Sections []gallerySection
}

type gallerySection struct {
	Name  string
	Title string
	Items []template.HTML
}

func (s *Server) greeting() template.HTML {
	return ui.CoupleGreeting(ui.WithNames(s.potato, s.rabbit))
}

func (s *Server) names() (potato, rabbit string) {
	potato, rabbit = s.potato, s.rabbit
	if potato == "" {
		potato = ui.DefaultPotatoName
	}
	if rabbit == "" {
		rabbit = ui.DefaultRabbitName
	}
	return potato, rabbit
}

func (s *Server) entriesView(items []core.Entry) entriesView {
	potato, rabbit := s.names()
	v := entriesView{Rows: make([]entryRow, 0, len(items))}
	for _, e := range items {
		row := entryRow{
			Day:         e.Date.Day(),
			Description: e.Description,
			Kind:        e.Kind,
			Amount:      e.Signed().String(),
		}

		if e.Kind == core.Income {
			row.KindBadge = ui.Badge("수입", ui.WithBadgeVariant(ui.BadgeIncome), ui.WithBadgeSize(ui.BadgeSizeSm))
		} else {
			row.KindBadge = ui.Badge("지출", ui.WithBadgeVariant(ui.BadgeExpense), ui.WithBadgeSize(ui.BadgeSizeSm))
			if e.Amount >= LargeExpense {
				row.Flag = ui.Badge("큰 지출", ui.WithBadgeVariant(ui.BadgeWarning), ui.WithBadgeSize(ui.BadgeSizeSm),
					ui.Attr[*ui.BadgeConfig]("data-testid", "large-expense"))
			}
		}

		if e.Owner == core.OwnerRabbit {
			row.OwnerBadge = ui.Badge("🐰 "+rabbit, ui.WithBadgeVariant(ui.BadgeRabbit), ui.WithBadgeSize(ui.BadgeSizeSm))
		} else {
			row.OwnerBadge = ui.Badge("🥔 "+potato, ui.WithBadgeVariant(ui.BadgePotato), ui.WithBadgeSize(ui.BadgeSizeSm))
		}

		v.Rows = append(v.Rows, row)
	}
	return v
}

// summaryCard is the clickable month total; a click reloads the entry list.
func (s *Server) summaryCard(sum core.MonthSummary) (template.HTML, error) {
	status := ui.Badge("흑자", ui.WithBadgeVariant(ui.BadgeIncome))
	if sum.Balance() < 0 {
		status = ui.Badge("적자", ui.WithBadgeVariant(ui.BadgeWarning), ui.Attr[*ui.BadgeConfig]("data-testid", "deficit"))
	}

	body, err := s.fragment("summary", struct {
		Year, Month              int
		Income, Expense, Balance string
		Status                   template.HTML
	}{
		Year:    sum.Year,
		Month:   sum.Month,
		Income:  sum.Income.String(),
		Expense: sum.Expense.String(),
		Balance: sum.Balance().String(),
		Status:  status,
	})
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("/ui/entries?year=%d&month=%d", sum.Year, sum.Month)
	return ui.Card(body,
		ui.WithCardVariant(ui.CardGradient),
		ui.OnClick(url, "#"+entriesID),
		// The partial is rooted at #entries, so it replaces the element.
		ui.WithCardSwap("outerHTML"),
		ui.Attr[*ui.CardConfig]("data-testid", "month-summary"),
	), nil
}

func (s *Server) shareCard(sum core.MonthSummary) (template.HTML, error) {
	potato, rabbit := s.names()
	body, err := s.fragment("share", struct {
		Potato, Rabbit template.HTML
	}{
		Potato: ui.Badge("🥔 "+potato+" "+sum.ByOwner[core.OwnerPotato].String(), ui.WithBadgeVariant(ui.BadgePotato), ui.WithBadgeSize(ui.BadgeSizeLg)),
		Rabbit: ui.Badge("🐰 "+rabbit+" "+sum.ByOwner[core.OwnerRabbit].String(), ui.WithBadgeVariant(ui.BadgeRabbit), ui.WithBadgeSize(ui.BadgeSizeLg)),
	})
	if err != nil {
		return "", err
	}
	return ui.Card(body, ui.WithCardVariant(ui.CardElevated)), nil
}

// gallerySections shows every option of every component axis.
func gallerySections() []gallerySection {
	badges := gallerySection{Name: "badge", Title: "Badge"}
	for _, v := range []ui.BadgeVariant{ui.BadgePotato, ui.BadgeRabbit, ui.BadgeIncome, ui.BadgeExpense, ui.BadgeWarning, ui.BadgeDefault} {
		for _, sz := range []ui.BadgeSize{ui.BadgeSizeSm, ui.BadgeSizeBase, ui.BadgeSizeLg} {
			badges.Items = append(badges.Items, ui.Badge(string(v)+" · "+string(sz), ui.WithBadgeVariant(v), ui.WithBadgeSize(sz)))
		}
	}

	cards := gallerySection{Name: "card", Title: "Card"}
	for _, v := range []ui.CardVariant{ui.CardDefault, ui.CardElevated, ui.CardGradient, ui.CardMinimal} {
		for _, p := range []ui.CardPadding{ui.CardPaddingNone, ui.CardPaddingSm, ui.CardPaddingBase, ui.CardPaddingLg} {
			label := template.HTML(template.HTMLEscapeString(string(v) + " / " + string(p)))
			cards.Items = append(cards.Items, ui.Card(label, ui.WithCardVariant(v), ui.WithCardPadding(p), ui.Class[*ui.CardConfig]("w-40")))
		}
	}

	characters := gallerySection{Name: "character", Title: "Character", Items: []template.HTML{
		ui.Character(ui.Potato, ui.DefaultPotatoName),
		ui.Character(ui.Rabbit, ui.DefaultRabbitName),
	}}

	greetings := gallerySection{Name: "couple-greeting", Title: "CoupleGreeting", Items: []template.HTML{
		ui.CoupleGreeting(),
		ui.CoupleGreeting(ui.WithNames("민수", "지은")),
	}}

	return []gallerySection{badges, cards, characters, greetings}
}
