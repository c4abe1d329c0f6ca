package ui

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kraitsura/folio/pkg/contact"
)

// Contact form feedback strings.
const (
	msgFixErrors  = "Please fix the errors in the form"
	msgSent       = "Message sent successfully! I'll get back to you soon."
	msgSendFailed = "Failed to send message. Please try again."
)

// submitResultMsg carries the outcome of a submission.
type submitResultMsg struct{ err error }

// submitCmd delivers m through s off the update loop.
func submitCmd(ctx context.Context, s contact.Submitter, m contact.Message) tea.Cmd {
	return func() tea.Msg {
		return submitResultMsg{err: s.Submit(ctx, m)}
	}
}

// ContactFormModel is the contact panel: three single-line inputs, the
// message textarea and a send button. Fields validate when focus leaves
// them and all together on submit.
type ContactFormModel struct {
	form    *contact.Form
	fields  []contact.Field
	inputs  map[string]*textinput.Model
	area    textarea.Model
	spinner spinner.Model

	focus   int // index into fields; len(fields) is the send button
	focused bool
	width   int
	theme   Theme
}

// NewContactFormModel creates an empty form.
func NewContactFormModel(theme Theme) ContactFormModel {
	fields := contact.DefaultFields()
	m := ContactFormModel{
		form:    contact.NewForm(fields),
		fields:  fields,
		inputs:  make(map[string]*textinput.Model),
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
		theme:   theme,
	}
	for _, f := range fields {
		if f.Kind == contact.TextArea {
			ta := textarea.New()
			ta.Placeholder = "Tell me about your project..."
			ta.ShowLineNumbers = false
			ta.CharLimit = 2000
			ta.SetWidth(50)
			ta.SetHeight(5)
			m.area = ta
			continue
		}
		ti := textinput.New()
		ti.Placeholder = f.Label
		ti.CharLimit = 120
		ti.Width = 40
		m.inputs[f.Name] = &ti
	}
	return m
}

// Form exposes the validation state.
func (m ContactFormModel) Form() *contact.Form {
	return m.form
}

// FocusedField returns the name of the field with focus, or "" on the send
// button.
func (m ContactFormModel) FocusedField() string {
	if m.focus < len(m.fields) {
		return m.fields[m.focus].Name
	}
	return ""
}

// SetWidth sets the render width.
func (m *ContactFormModel) SetWidth(width int) {
	m.width = width
	w := width - 8
	if w < 20 {
		w = 20
	}
	if w > 60 {
		w = 60
	}
	for _, in := range m.inputs {
		in.Width = w - 2
	}
	m.area.SetWidth(w)
}

// SetTheme swaps the colors after a theme change.
func (m *ContactFormModel) SetTheme(theme Theme) {
	m.theme = theme
}

// Focus gives the form keyboard focus on its first field.
func (m *ContactFormModel) Focus() tea.Cmd {
	m.focused = true
	m.focus = 0
	return m.focusCurrent()
}

// Blur leaves the form, validating the field that had focus.
func (m *ContactFormModel) Blur() {
	m.blurCurrent()
	m.focused = false
}

func (m *ContactFormModel) focusCurrent() tea.Cmd {
	if m.focus >= len(m.fields) {
		return nil
	}
	f := m.fields[m.focus]
	if f.Kind == contact.TextArea {
		return m.area.Focus()
	}
	return m.inputs[f.Name].Focus()
}

func (m *ContactFormModel) blurCurrent() {
	if m.focus >= len(m.fields) {
		return
	}
	f := m.fields[m.focus]
	if f.Kind == contact.TextArea {
		m.area.Blur()
	} else {
		m.inputs[f.Name].Blur()
	}
	m.form.Blur(f.Name)
}

func (m *ContactFormModel) move(delta int) tea.Cmd {
	m.blurCurrent()
	n := len(m.fields) + 1
	m.focus = (m.focus + delta + n) % n
	return m.focusCurrent()
}

// BeginSubmit validates and, when the form passes, returns the command that
// delivers it. The returned toast text is non-empty when the user needs to
// be told something.
func (m *ContactFormModel) BeginSubmit(ctx context.Context, s contact.Submitter, now time.Time) (tea.Cmd, string) {
	msg, err := m.form.BeginSubmit(now)
	switch {
	case errors.Is(err, contact.ErrInFlight):
		return nil, ""
	case err != nil:
		return nil, msgFixErrors
	}
	return tea.Batch(m.spinner.Tick, submitCmd(ctx, s, msg)), ""
}

// FinishSubmit records the result and returns the toast to show.
func (m *ContactFormModel) FinishSubmit(err error) (string, ToastKind) {
	m.form.FinishSubmit(err)
	if err != nil {
		return msgSendFailed, ToastError
	}
	for _, in := range m.inputs {
		in.Reset()
	}
	m.area.Reset()
	return msgSent, ToastSuccess
}

// Update handles keys while focused and spinner ticks while sending. submit
// is true when the user asked to send.
func (m ContactFormModel) Update(msg tea.Msg) (ContactFormModel, tea.Cmd, bool) {
	if _, ok := msg.(spinner.TickMsg); ok {
		if !m.form.Sending() {
			return m, nil, false
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd, false
	}

	if !m.focused {
		return m, nil, false
	}
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, m.updateField(msg), false
	}

	onArea := m.focus < len(m.fields) && m.fields[m.focus].Kind == contact.TextArea
	switch key.String() {
	case "tab", "down":
		if key.String() == "tab" || !onArea {
			return m, m.move(1), false
		}
	case "shift+tab", "up":
		if key.String() == "shift+tab" || !onArea {
			return m, m.move(-1), false
		}
	case "ctrl+s":
		return m, nil, true
	case "enter":
		if m.focus >= len(m.fields) {
			return m, nil, true
		}
		if !onArea {
			return m, m.move(1), false
		}
	}

	cmd := m.updateField(msg)
	return m, cmd, false
}

// updateField forwards msg to the focused input and mirrors its value into
// the form, which clears that field's error.
func (m *ContactFormModel) updateField(msg tea.Msg) tea.Cmd {
	if m.focus >= len(m.fields) {
		return nil
	}
	f := m.fields[m.focus]
	var cmd tea.Cmd
	var value string
	if f.Kind == contact.TextArea {
		before := m.area.Value()
		m.area, cmd = m.area.Update(msg)
		value = m.area.Value()
		if value == before {
			return cmd
		}
	} else {
		in := m.inputs[f.Name]
		before := in.Value()
		*in, cmd = in.Update(msg)
		value = in.Value()
		if value == before {
			return cmd
		}
	}
	m.form.Set(f.Name, value)
	return cmd
}

// View renders the form.
func (m ContactFormModel) View(focused bool) string {
	r := m.theme.Renderer
	labelStyle := r.NewStyle().Foreground(m.theme.Text).Bold(true)
	errStyle := r.NewStyle().Foreground(m.theme.Danger)
	optStyle := r.NewStyle().Foreground(m.theme.Muted)

	var b strings.Builder
	for i, f := range m.form.Fields() {
		label := labelStyle.Render(f.Label)
		if f.Required {
			label += errStyle.Render(" *")
		} else {
			label += optStyle.Render(" (optional)")
		}
		b.WriteString(label + "\n")

		border := m.theme.Border
		if !f.Valid {
			border = m.theme.Danger
		} else if focused && i == m.focus {
			border = m.theme.Primary
		}
		var input string
		if f.Kind == contact.TextArea {
			input = m.area.View()
		} else {
			input = m.inputs[f.Name].View()
		}
		b.WriteString(r.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(border).Render(input))
		b.WriteString("\n")
		if f.Err != "" {
			b.WriteString(errStyle.Render("  "+f.Err) + "\n")
		}
	}

	button := "[ Send Message ]"
	if m.form.Sending() {
		button = "[ " + m.spinner.View() + " Sending... ]"
	}
	btnStyle := r.NewStyle().Foreground(m.theme.Primary).Bold(true)
	if focused && m.focus == len(m.fields) {
		btnStyle = btnStyle.Reverse(true)
	}
	b.WriteString("\n" + btnStyle.Render(button) + "\n")

	hint := "[enter] interact  [y] copy contact info"
	if focused {
		hint = "[tab] next field  [ctrl+s] send  [esc] leave"
	}
	b.WriteString(r.NewStyle().Faint(true).Render(hint))

	style := m.theme.PanelStyle()
	if focused {
		style = m.theme.FocusedPanelStyle()
	}
	return style.Render(b.String())
}
