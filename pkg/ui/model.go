package ui

import (
	"context"
	"fmt"
	"image"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kraitsura/folio/pkg/config"
	"github.com/kraitsura/folio/pkg/contact"
	"github.com/kraitsura/folio/pkg/content"
	"github.com/kraitsura/folio/pkg/nav"
	"github.com/kraitsura/folio/pkg/prefs"
	"github.com/kraitsura/folio/pkg/resume"
	"github.com/kraitsura/folio/pkg/theme"
	"github.com/kraitsura/folio/pkg/typing"
	"github.com/kraitsura/folio/pkg/watcher"
)

// settleMsg ends the programmatic navigation numbered seq.
type settleMsg struct{ seq uint64 }

// contentReloadedMsg carries a reloaded content file.
type contentReloadedMsg struct {
	content *content.Content
	page    image.Image
	err     error
}

const (
	msgContentReloaded = "Content reloaded"
	msgReloadFailed    = "Content reload failed"
)

// Options configures the root model. Zero values fall back to defaults, so
// tests only set what they exercise.
type Options struct {
	Context   context.Context
	Config    *config.Config
	Content   *content.Content
	Store     prefs.Store
	Mode      theme.Mode
	Resume    image.Image
	Clipboard Clipboard
	Submitter contact.Submitter
	Watcher   *watcher.Watcher
	Renderer  *lipgloss.Renderer
	Now       func() time.Time

	// SkipLoading starts with the loading screen already dismissed.
	SkipLoading bool
}

// Model is the root Bubble Tea model.
type Model struct {
	ctx       context.Context
	cfg       *config.Config
	content   *content.Content
	clip      Clipboard
	submitter contact.Submitter
	watcher   *watcher.Watcher
	now       func() time.Time

	nav    *nav.Navigator
	themes *theme.Controller
	theme  Theme
	keys   keyMap
	help   help.Model

	loading     LoadingModel
	toast       ToastModel
	home        HomeModel
	sections    SectionsModel
	skills      SkillsModel
	playground  PlaygroundModel
	resume      ResumeModel
	contact     ContactFormModel
	cards       CardsModel
	palette     PaletteModel
	helpOverlay HelpOverlayModel

	menuCursor int
	focused    bool
	width      int
	height     int
	ready      bool
	quitting   bool
}

// NewModel creates the root model.
func NewModel(opts Options) Model {
	if opts.Context == nil {
		opts.Context = context.Background()
	}
	if opts.Config == nil {
		opts.Config = config.DefaultConfig()
	}
	if opts.Content == nil {
		opts.Content = content.Default()
	}
	if opts.Store == nil {
		opts.Store = prefs.NewMemoryStore()
	}
	if opts.Mode == "" {
		opts.Mode = theme.Dark
	}
	if opts.Clipboard == nil {
		opts.Clipboard = SystemClipboard{}
	}
	if opts.Submitter == nil {
		opts.Submitter = contact.SimulatedSubmitter{Delay: opts.Config.Contact.SubmitDelay.Duration}
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	cfg, c := opts.Config, opts.Content

	t := NewTheme(opts.Renderer, opts.Mode)
	keys := defaultKeyMap()

	page := opts.Resume
	if page == nil {
		page = resume.Placeholder(c.Name, c.Tagline, c.Headings())
	}

	m := Model{
		ctx:       opts.Context,
		cfg:       cfg,
		content:   c,
		clip:      opts.Clipboard,
		submitter: opts.Submitter,
		watcher:   opts.Watcher,
		now:       opts.Now,

		nav:    nav.NewDefault(),
		themes: theme.NewController(opts.Store, opts.Mode),
		theme:  t,
		keys:   keys,
		help:   help.New(),

		loading:     NewLoadingModel(c.Name, cfg.Timing.LoadingTime.Duration, uint64(opts.Now().UnixNano()), t),
		toast:       NewToastModel(cfg.Timing.ToastTimeout.Duration, t),
		home:        NewHomeModel(c.Name, c.Tagline, c.Phrases, timingFrom(cfg), t),
		sections:    NewSectionsModel(cfg.Timing.ScrollLimit.Duration, t),
		skills:      NewSkillsModel(c.Skills, t),
		playground:  NewPlaygroundModel(cfg.Timing.CopiedReset.Duration, t),
		resume:      NewResumeModel(page, cfg.Resume.MinScale, cfg.Resume.MaxScale, t),
		contact:     NewContactFormModel(t),
		cards:       NewCardsModel(c.Contacts, t),
		palette:     NewPaletteModel(t),
		helpOverlay: NewHelpOverlayModel(keys, t),
	}
	m.skills.now = opts.Now
	m.loading.now = opts.Now
	m.applyTitles()

	if start := cfg.Navigate.StartSection; start != "" && start != m.nav.Active() {
		if !m.nav.NavigateTo(nav.ParseFragment(start)) {
			slog.Warn("ui: unknown start section", "section", start)
		}
		m.nav.Settle(m.nav.Seq())
	}
	if opts.SkipLoading || cfg.Timing.LoadingTime.Duration <= 0 {
		m.loading.Dismiss()
	}
	return m
}

func timingFrom(cfg *config.Config) typing.Timing {
	return typing.Timing{
		Type:  cfg.Timing.TypeDelay.Duration,
		Erase: cfg.Timing.EraseDelay.Duration,
		Hold:  cfg.Timing.HoldDelay.Duration,
		Next:  cfg.Timing.NextDelay.Duration,
	}
}

func (m *Model) applyTitles() {
	titles := m.content.Titles()
	for id, title := range titles {
		m.nav.SetTitle(id, title)
	}
	ids := m.nav.IDs()
	names := make([]string, len(ids))
	for i, id := range ids {
		names[i] = m.nav.Title(id)
	}
	m.palette.SetEntries(ids, names)
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{tea.SetWindowTitle(m.content.Name)}
	if m.loading.IsVisible() {
		cmds = append(cmds, m.loading.Init())
	} else {
		cmds = append(cmds, m.sectionEntered())
	}
	if m.watcher != nil {
		cmds = append(cmds, waitForContent(m.watcher))
	}
	return tea.Batch(cmds...)
}

// waitForContent blocks until the content file changes, then reloads it.
func waitForContent(w *watcher.Watcher) tea.Cmd {
	return func() tea.Msg {
		if _, ok := <-w.Changes(); !ok {
			return nil
		}
		c, err := content.LoadFromFile(w.Path())
		if err != nil {
			return contentReloadedMsg{err: err}
		}
		msg := contentReloadedMsg{content: c}
		if c.Resume != "" {
			page, err := resume.LoadImage(c.Resume)
			if err != nil {
				slog.Warn("ui: resume image reload failed", "path", c.Resume, "err", err)
			} else {
				msg.page = page
			}
		}
		return msg
	}
}

// ActiveSection returns the id of the active section.
func (m Model) ActiveSection() string {
	return m.nav.Active()
}

// Mode returns the display mode.
func (m Model) Mode() theme.Mode {
	return m.themes.Mode()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := m.update(msg)
	m.refresh()
	return m, cmd
}

func (m *Model) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.setSize(msg.Width, msg.Height)
		return nil

	case loadingFrameMsg, loadingDoneMsg:
		wasVisible := m.loading.IsVisible()
		var cmd tea.Cmd
		m.loading, cmd = m.loading.Update(msg)
		if wasVisible && !m.loading.IsVisible() {
			return m.sectionEntered()
		}
		return cmd

	case typingTickMsg:
		var cmd tea.Cmd
		m.home, cmd = m.home.Update(msg)
		return cmd

	case toastHideMsg:
		m.toast, _ = m.toast.Update(msg)
		return nil

	case copiedResetMsg:
		m.playground, _, _ = m.playground.Update(msg)
		return nil

	case skillsTickMsg:
		var cmd tea.Cmd
		m.skills, cmd = m.skills.Update(msg)
		return cmd

	case settleMsg:
		m.nav.Settle(msg.seq)
		return nil

	case scrollFlushMsg:
		if m.sections.Flushed(m.now()) {
			return m.observe()
		}
		return nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.contact, cmd, _ = m.contact.Update(msg)
		return cmd

	case copyResultMsg:
		return m.handleCopy(msg)

	case submitResultMsg:
		text, kind := m.contact.FinishSubmit(msg.err)
		if msg.err != nil {
			slog.Error("contact: submission failed", "err", msg.err)
		}
		return m.toast.Show(text, kind)

	case contentReloadedMsg:
		return m.handleReload(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)
	}

	// Everything else (cursor blinks, huh internals) goes to whatever has
	// the keyboard.
	switch {
	case m.cards.IsOpen():
		return m.updateCards(msg)
	case m.palette.IsVisible():
		var cmd tea.Cmd
		m.palette, cmd, _ = m.palette.Update(msg)
		return cmd
	case m.focused && m.nav.Active() == "contact":
		var cmd tea.Cmd
		m.contact, cmd, _ = m.contact.Update(msg)
		return cmd
	case m.focused && m.nav.Active() == "css-playground":
		var cmd tea.Cmd
		m.playground, cmd, _ = m.playground.Update(msg)
		return cmd
	}
	return nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if msg.String() == "ctrl+c" {
		return m.quit()
	}

	if m.loading.IsVisible() {
		m.loading.Dismiss()
		return m.sectionEntered()
	}

	if m.helpOverlay.IsVisible() {
		m.helpOverlay, _ = m.helpOverlay.Update(msg)
		return nil
	}

	if m.palette.IsVisible() {
		var cmd tea.Cmd
		var id string
		m.palette, cmd, id = m.palette.Update(msg)
		if id != "" {
			return tea.Batch(cmd, m.navigate(id))
		}
		return cmd
	}

	if m.cards.IsOpen() {
		return m.updateCards(msg)
	}

	if m.nav.MenuOpen() {
		return m.handleMenuKey(msg)
	}

	if m.focused {
		return m.handlePanelKey(msg)
	}

	return m.handleGlobalKey(msg)
}

func (m *Model) handleMenuKey(msg tea.KeyMsg) tea.Cmd {
	ids := m.nav.IDs()
	switch msg.String() {
	case "up", "k":
		if m.menuCursor > 0 {
			m.menuCursor--
		}
	case "down", "j":
		if m.menuCursor < len(ids)-1 {
			m.menuCursor++
		}
	case "enter":
		return m.navigate(ids[m.menuCursor])
	case "m", "esc":
		m.nav.HandleKey("esc", false)
	case "q":
		return m.quit()
	default:
		if s := msg.String(); len(s) == 1 && s[0] >= '1' && s[0] <= '9' {
			if i := int(s[0] - '1'); i < len(ids) {
				return m.navigate(ids[i])
			}
		}
	}
	return nil
}

func (m *Model) handlePanelKey(msg tea.KeyMsg) tea.Cmd {
	switch m.nav.Active() {
	case "css-playground":
		if msg.String() == "esc" && !m.playground.Editing() {
			m.focused = false
			return nil
		}
		var cmd tea.Cmd
		var text string
		m.playground, cmd, text = m.playground.Update(msg)
		if text != "" {
			return tea.Batch(cmd, copyCmd(m.clip, copyFromPlayground, text))
		}
		return cmd

	case "resume":
		if msg.String() == "esc" {
			m.resume.Leave()
			m.focused = false
			return nil
		}
		m.resume, _ = m.resume.Update(msg)
		return nil

	case "contact":
		if msg.String() == "esc" {
			m.contact.Blur()
			m.focused = false
			return nil
		}
		var cmd tea.Cmd
		var submit bool
		m.contact, cmd, submit = m.contact.Update(msg)
		if submit {
			send, text := m.contact.BeginSubmit(m.ctx, m.submitter, m.now())
			if text != "" {
				return tea.Batch(cmd, m.toast.Show(text, ToastError))
			}
			return tea.Batch(cmd, send)
		}
		return cmd
	}
	m.focused = false
	return nil
}

func (m *Model) handleGlobalKey(msg tea.KeyMsg) tea.Cmd {
	active := m.nav.Active()
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.Help):
		m.helpOverlay.Toggle()
	case key.Matches(msg, m.keys.Theme):
		return m.toggleTheme()
	case key.Matches(msg, m.keys.Menu):
		m.nav.ToggleMenu()
		m.menuCursor = m.nav.ActiveIndex()
	case key.Matches(msg, m.keys.Palette):
		return m.palette.Show()
	case key.Matches(msg, m.keys.Layout):
		m.sections.ToggleLayout()
		m.refresh()
		m.sections.ScrollTo(active)
	case key.Matches(msg, m.keys.Top):
		m.sections.GotoTop()
		return m.scrolled()
	case key.Matches(msg, m.keys.ScrollUp):
		m.sections.Scroll(-m.scrollStep(msg))
		return m.scrolled()
	case key.Matches(msg, m.keys.ScrollDn):
		m.sections.Scroll(m.scrollStep(msg))
		return m.scrolled()
	case key.Matches(msg, m.keys.Back):
		prev := active
		if m.nav.Back() {
			return m.activated(prev, true)
		}
	case key.Matches(msg, m.keys.Forward):
		prev := active
		if m.nav.Forward() {
			return m.activated(prev, true)
		}
	case key.Matches(msg, m.keys.Focus):
		switch active {
		case "css-playground", "resume":
			m.focused = true
		case "contact":
			m.focused = true
			return m.contact.Focus()
		}
	case key.Matches(msg, m.keys.Cards) && active == "contact":
		return m.cards.Open()
	case key.Matches(msg, m.keys.Projects) && active == "home":
		return m.navigate("projects")
	case key.Matches(msg, m.keys.Contact) && active == "home":
		return m.navigate("contact")
	default:
		seq := m.nav.Seq()
		if m.nav.HandleKey(msg.String(), m.focused) && m.nav.Seq() != seq {
			return m.activated(active, true)
		}
	}
	return nil
}

func (m Model) scrollStep(msg tea.KeyMsg) int {
	if strings.HasPrefix(msg.String(), "pg") {
		return max(1, m.sections.viewport.Height-2)
	}
	return 1
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if m.loading.IsVisible() || m.helpOverlay.IsVisible() {
		return nil
	}
	if m.cards.IsOpen() {
		return m.updateCards(msg)
	}
	if m.focused && m.nav.Active() == "resume" {
		m.resume, _ = m.resume.Update(msg)
		return nil
	}
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.sections.Scroll(-3)
		return m.scrolled()
	case tea.MouseButtonWheelDown:
		m.sections.Scroll(3)
		return m.scrolled()
	}
	return nil
}

func (m *Model) updateCards(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	var value string
	m.cards, cmd, value = m.cards.Update(msg)
	if value != "" {
		return tea.Batch(cmd, copyCmd(m.clip, copyFromContactCard, value))
	}
	return cmd
}

func (m *Model) handleCopy(msg copyResultMsg) tea.Cmd {
	switch msg.source {
	case copyFromPlayground:
		if msg.err != nil {
			slog.Warn("playground: copy failed", "err", msg.err)
			return m.toast.Show(msgCSSCopyFailed, ToastError)
		}
		return tea.Batch(m.playground.Copied(), m.toast.Show(msgCSSCopied, ToastSuccess))
	case copyFromContactCard:
		if msg.err != nil {
			slog.Warn("contact: copy failed", "err", msg.err)
			return m.toast.Show(msgCardCopyFailed, ToastError)
		}
		return m.toast.Show(msg.text+cardCopiedSuffix, ToastSuccess)
	}
	return nil
}

func (m *Model) handleReload(msg contentReloadedMsg) tea.Cmd {
	var rearm tea.Cmd
	if m.watcher != nil {
		rearm = waitForContent(m.watcher)
	}
	if msg.err != nil {
		slog.Error("ui: content reload failed", "err", msg.err)
		return tea.Batch(rearm, m.toast.Show(msgReloadFailed, ToastError))
	}
	c := msg.content
	m.content = c
	m.applyTitles()
	m.skills.SetSkills(c.Skills)
	m.cards.SetCards(c.Contacts)
	m.sections.Invalidate()
	if msg.page != nil {
		m.resume.SetPage(msg.page)
	}
	homeCmd := m.home.SetContent(c.Name, c.Tagline, c.Phrases, timingFrom(m.cfg))
	slog.Info("ui: content reloaded", "name", c.Name)
	return tea.Batch(rearm, homeCmd, m.toast.Show(msgContentReloaded, ToastInfo))
}

// navigate is the programmatic route to a section: nav links, the menu, the
// palette and the call to action shortcuts all come through here.
func (m *Model) navigate(id string) tea.Cmd {
	prev := m.nav.Active()
	if !m.nav.NavigateTo(id) {
		return nil
	}
	return m.activated(prev, true)
}

// activated runs the side effects of a section change. Programmatic changes
// scroll to the section and hold off the observer until they settle.
func (m *Model) activated(prev string, programmatic bool) tea.Cmd {
	active := m.nav.Active()
	if m.focused {
		m.unfocus(prev)
	}
	var cmds []tea.Cmd
	if programmatic {
		m.refresh()
		if m.sections.Continuous() {
			m.sections.ScrollTo(active)
		} else {
			m.sections.GotoTop()
		}
		seq := m.nav.Seq()
		cmds = append(cmds, tea.Tick(m.cfg.Navigate.SettleDelay.Duration, func(time.Time) tea.Msg {
			return settleMsg{seq: seq}
		}))
	}
	if prev == "home" && active != "home" {
		m.home.Stop()
	}
	if active != prev {
		cmds = append(cmds, m.sectionEntered())
	}
	slog.Debug("ui: section active", "section", active, "from", prev)
	return tea.Batch(cmds...)
}

func (m *Model) unfocus(id string) {
	switch id {
	case "contact":
		m.contact.Blur()
	case "resume":
		m.resume.Leave()
	}
	m.focused = false
}

// sectionEntered starts what the active section animates on entry.
func (m *Model) sectionEntered() tea.Cmd {
	if m.loading.IsVisible() {
		return nil
	}
	switch m.nav.Active() {
	case "home":
		return m.home.Start()
	case "skills":
		return m.skills.Animate()
	}
	return nil
}

// scrolled runs the observer, throttled.
func (m *Model) scrolled() tea.Cmd {
	run, flush := m.sections.Scrolled(m.now())
	if run {
		return m.observe()
	}
	return flush
}

func (m *Model) observe() tea.Cmd {
	if !m.sections.Continuous() {
		return nil
	}
	prev := m.nav.Active()
	if _, ok := m.nav.Observe(m.sections.Ratios()); !ok {
		return nil
	}
	return m.activated(prev, false)
}

func (m *Model) toggleTheme() tea.Cmd {
	mode := m.themes.Toggle()
	m.applyTheme(NewTheme(m.theme.Renderer, mode))
	return m.toast.Show(fmt.Sprintf("Switched to %s mode", mode), ToastSuccess)
}

func (m *Model) applyTheme(t Theme) {
	m.theme = t
	m.loading.SetTheme(t)
	m.toast.SetTheme(t)
	m.home.SetTheme(t)
	m.sections.SetTheme(t)
	m.skills.SetTheme(t)
	m.playground.SetTheme(t)
	m.resume.SetTheme(t)
	m.contact.SetTheme(t)
	m.cards.SetTheme(t)
	m.palette.SetTheme(t)
	m.helpOverlay.SetTheme(t)
}

func (m *Model) quit() tea.Cmd {
	m.quitting = true
	m.home.Stop()
	return tea.Quit
}

func (m *Model) setSize(width, height int) {
	m.width, m.height = width, height
	m.ready = true
	m.help.Width = width

	bodyHeight := height - headerHeight - statusHeight
	if bodyHeight < 1 {
		bodyHeight = 1
	}
	m.sections.SetSize(width, bodyHeight)
	m.loading.SetSize(width, height)
	m.toast.SetWidth(width)
	m.home.SetWidth(width)
	m.skills.SetWidth(width)
	m.playground.SetWidth(width - 4)
	m.contact.SetWidth(width)
	m.resume.SetSize(min(width-6, 100), max(bodyHeight-8, 5))
}
