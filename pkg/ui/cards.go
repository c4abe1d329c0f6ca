package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/kraitsura/folio/pkg/content"
)

const (
	cardsKey          = "contact"
	msgCardCopyFailed = "Failed to copy contact information"
	cardCopiedSuffix  = " copied to clipboard!"
)

// CardsModel is the contact card picker: a huh select over the contact
// values, copying the chosen one.
type CardsModel struct {
	cards []content.Contact
	form  *huh.Form
	theme Theme
}

// NewCardsModel creates a closed picker.
func NewCardsModel(cards []content.Contact, theme Theme) CardsModel {
	return CardsModel{cards: cards, theme: theme}
}

// SetCards replaces the contact cards.
func (m *CardsModel) SetCards(cards []content.Contact) {
	m.cards = cards
}

// SetTheme swaps the colors after a theme change.
func (m *CardsModel) SetTheme(theme Theme) {
	m.theme = theme
}

// IsOpen reports whether the picker is showing.
func (m CardsModel) IsOpen() bool {
	return m.form != nil
}

// Open shows the picker. With no cards it stays closed.
func (m *CardsModel) Open() tea.Cmd {
	if len(m.cards) == 0 {
		return nil
	}
	opts := make([]huh.Option[string], 0, len(m.cards))
	for _, c := range m.cards {
		opts = append(opts, huh.NewOption(c.Label+": "+c.Value, c.Value))
	}
	ht := huh.ThemeDracula()
	if m.theme.GlamourStyle() == "light" {
		ht = huh.ThemeBase()
	}
	m.form = huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Key(cardsKey).
			Title("Copy contact information").
			Options(opts...),
	)).WithShowHelp(false).WithTheme(ht)
	return m.form.Init()
}

// Close hides the picker without copying.
func (m *CardsModel) Close() {
	m.form = nil
}

// Update forwards msg to the picker. When the user picks a card the picker
// closes and the chosen value is returned.
func (m CardsModel) Update(msg tea.Msg) (CardsModel, tea.Cmd, string) {
	if m.form == nil {
		return m, nil, ""
	}
	if k, ok := msg.(tea.KeyMsg); ok && k.String() == "esc" {
		m.form = nil
		return m, nil, ""
	}
	model, cmd := m.form.Update(msg)
	if f, ok := model.(*huh.Form); ok {
		m.form = f
	}
	switch m.form.State {
	case huh.StateCompleted:
		value := m.form.GetString(cardsKey)
		m.form = nil
		return m, cmd, value
	case huh.StateAborted:
		m.form = nil
	}
	return m, cmd, ""
}

// View renders the picker.
func (m CardsModel) View() string {
	if m.form == nil {
		return ""
	}
	return m.theme.FocusedPanelStyle().Render(m.form.View())
}
