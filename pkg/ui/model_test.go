package ui

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kraitsura/folio/pkg/anim"
	"github.com/kraitsura/folio/pkg/config"
	"github.com/kraitsura/folio/pkg/contact"
	"github.com/kraitsura/folio/pkg/content"
	"github.com/kraitsura/folio/pkg/prefs"
	"github.com/kraitsura/folio/pkg/resume"
	"github.com/kraitsura/folio/pkg/theme"
	"github.com/kraitsura/folio/pkg/watcher"
)

// keyMsg creates a tea.KeyMsg for testing
func keyMsg(key string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
}

type fakeClipboard struct {
	text string
	err  error
}

func (c *fakeClipboard) WriteAll(text string) error {
	if c.err != nil {
		return c.err
	}
	c.text = text
	return nil
}

type fakeSubmitter struct {
	got []contact.Message
	err error
}

func (s *fakeSubmitter) Submit(_ context.Context, m contact.Message) error {
	s.got = append(s.got, m)
	return s.err
}

// fakeClock advances only when told to.
type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time { return c.t }

func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestModel(t *testing.T, opts Options) Model {
	t.Helper()
	if opts.Renderer == nil {
		opts.Renderer = lipgloss.NewRenderer(io.Discard)
	}
	if opts.Clipboard == nil {
		opts.Clipboard = &fakeClipboard{}
	}
	if opts.Submitter == nil {
		opts.Submitter = &fakeSubmitter{}
	}
	m := NewModel(opts)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return next.(Model)
}

func configWithStart(section string) *config.Config {
	cfg := config.DefaultConfig()
	cfg.Navigate.StartSection = section
	return cfg
}

// send delivers msgs in order and returns the model and the last command.
func send(m Model, msgs ...tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		m = next.(Model)
	}
	return m, cmd
}

func TestLoading_AnyKeyDismissesAndStartsTyping(t *testing.T) {
	m := newTestModel(t, Options{})
	if !m.loading.IsVisible() {
		t.Fatal("Expected loading screen at startup")
	}
	if m.home.Running() {
		t.Error("Expected typing to wait for the loading screen")
	}

	m, cmd := send(m, keyMsg("x"))
	if m.loading.IsVisible() {
		t.Error("Expected any key to dismiss the loading screen")
	}
	if !m.home.Running() || cmd == nil {
		t.Error("Expected typing to start after dismissal")
	}
	if m.home.Text() != "A" {
		t.Errorf("Expected first character typed, got %q", m.home.Text())
	}

	// The flame loop stops with the screen
	gen := m.loading.gen - 1
	if _, cmd := send(m, loadingFrameMsg{gen: gen}); cmd != nil {
		t.Error("Expected stale frame to schedule nothing")
	}
}

func TestLoading_TimerDismisses(t *testing.T) {
	m := newTestModel(t, Options{})
	m, _ = send(m, loadingDoneMsg{gen: m.loading.gen})
	if m.loading.IsVisible() {
		t.Error("Expected loading screen hidden after the hold time")
	}
	if !m.home.Running() {
		t.Error("Expected typing to start")
	}
}

func TestLoading_FlameFollowsModelClock(t *testing.T) {
	clock := &fakeClock{t: time.Unix(50, 0)}
	m := newTestModel(t, Options{Now: clock.Now})

	// Frame callbacks at the same instant advance the fire once
	for i := 0; i < 10; i++ {
		m, _ = send(m, loadingFrameMsg{gen: m.loading.gen})
	}
	if got := m.loading.flame.Updates(); got != 1 {
		t.Errorf("Expected 1 flame update without time passing, got %d", got)
	}

	clock.Advance(time.Second / anim.FlameRate)
	m, _ = send(m, loadingFrameMsg{gen: m.loading.gen})
	if got := m.loading.flame.Updates(); got != 2 {
		t.Errorf("Expected a second update after one interval, got %d", got)
	}
}

func TestNavigation_Keys(t *testing.T) {
	m := newTestModel(t, Options{SkipLoading: true})

	m, _ = send(m, tea.KeyMsg{Type: tea.KeyDown})
	if got := m.ActiveSection(); got != "about" {
		t.Errorf("Expected about, got %s", got)
	}
	m, _ = send(m, tea.KeyMsg{Type: tea.KeyEnd})
	if got := m.ActiveSection(); got != "contact" {
		t.Errorf("Expected contact, got %s", got)
	}
	// Clamped at the end
	m, _ = send(m, tea.KeyMsg{Type: tea.KeyRight})
	if got := m.ActiveSection(); got != "contact" {
		t.Errorf("Expected to stay on contact, got %s", got)
	}
	m, _ = send(m, tea.KeyMsg{Type: tea.KeyHome})
	if got := m.ActiveSection(); got != "home" {
		t.Errorf("Expected home, got %s", got)
	}

	// History
	m, _ = send(m, keyMsg("["))
	if got := m.ActiveSection(); got != "contact" {
		t.Errorf("Expected back to contact, got %s", got)
	}
	m, _ = send(m, keyMsg("]"))
	if got := m.ActiveSection(); got != "home" {
		t.Errorf("Expected forward to home, got %s", got)
	}
}

func TestNavigation_CTAShortcuts(t *testing.T) {
	m := newTestModel(t, Options{SkipLoading: true})
	m, _ = send(m, keyMsg("p"))
	if got := m.ActiveSection(); got != "projects" {
		t.Errorf("Expected projects, got %s", got)
	}
	// Only on home
	m, _ = send(m, keyMsg("c"))
	if got := m.ActiveSection(); got != "projects" {
		t.Errorf("Expected c to do nothing off home, got %s", got)
	}
}

func TestNavigation_SettleBySequence(t *testing.T) {
	m := newTestModel(t, Options{SkipLoading: true})
	m, _ = send(m, keyMsg("p"))
	first := m.nav.Seq()
	m, _ = send(m, tea.KeyMsg{Type: tea.KeyDown})
	if !m.nav.Navigating() {
		t.Fatal("Expected navigation in progress")
	}

	m, _ = send(m, settleMsg{seq: first})
	if !m.nav.Navigating() {
		t.Error("Expected stale settle to be ignored")
	}
	m, _ = send(m, settleMsg{seq: m.nav.Seq()})
	if m.nav.Navigating() {
		t.Error("Expected latest settle to clear the flag")
	}
}

func TestNavigation_StartSection(t *testing.T) {
	m := newTestModel(t, Options{SkipLoading: true, Config: configWithStart("#resume")})
	if got := m.ActiveSection(); got != "resume" {
		t.Errorf("Expected resume, got %s", got)
	}
	if m.nav.Navigating() {
		t.Error("Expected start navigation to be settled")
	}
}

func TestTyping_RestartsOnHomeReentry(t *testing.T) {
	m := newTestModel(t, Options{SkipLoading: true})
	m.home.Start()
	for i := 0; i < 5; i++ {
		m, _ = send(m, typingTickMsg{gen: m.home.gen})
	}
	if len(m.home.Text()) < 2 {
		t.Fatalf("Expected headline to progress, got %q", m.home.Text())
	}
	stale := m.home.gen

	m, _ = send(m, tea.KeyMsg{Type: tea.KeyDown})
	if m.home.Running() {
		t.Error("Expected typing to stop off home")
	}
	if _, cmd := send(m, typingTickMsg{gen: stale}); cmd != nil {
		t.Error("Expected stale typing tick to be dropped")
	}

	m, _ = send(m, tea.KeyMsg{Type: tea.KeyUp})
	if !m.home.Running() {
		t.Error("Expected typing to restart on home")
	}
	if m.home.Text() != "A" {
		t.Errorf("Expected headline restarted from empty, got %q", m.home.Text())
	}
}

func TestThemeToggle(t *testing.T) {
	store := prefs.NewMemoryStore()
	m := newTestModel(t, Options{SkipLoading: true, Store: store, Mode: theme.Dark})

	m, _ = send(m, keyMsg("t"))
	if m.Mode() != theme.Light {
		t.Errorf("Expected light mode, got %s", m.Mode())
	}
	if v, _, _ := store.Get(theme.StorageKey); v != "light" {
		t.Errorf("Expected persisted light, got %q", v)
	}
	if m.toast.Message() != "Switched to light mode" || m.toast.Kind() != ToastSuccess {
		t.Errorf("Unexpected toast %q", m.toast.Message())
	}
	if m.theme.Mode != theme.Light {
		t.Error("Expected styles rebuilt for light mode")
	}
	if !strings.Contains(m.View(), "☾") {
		t.Error("Expected moon icon in light mode")
	}

	m, _ = send(m, keyMsg("t"))
	if m.Mode() != theme.Dark {
		t.Errorf("Expected dark after second toggle, got %s", m.Mode())
	}
}

func TestPlayground_CopySuccess(t *testing.T) {
	clip := &fakeClipboard{}
	m := newTestModel(t, Options{SkipLoading: true, Clipboard: clip, Config: configWithStart("css-playground")})

	m, _ = send(m, tea.KeyMsg{Type: tea.KeyEnter})
	if !m.focused {
		t.Fatal("Expected playground focused")
	}
	m, cmd := send(m, keyMsg("y"))
	if cmd == nil {
		t.Fatal("Expected copy command")
	}
	m, _ = send(m, cmd())

	want := "box-shadow: 0px 5px 15px 0px #000000;"
	if clip.text != want {
		t.Errorf("Expected clipboard %q, got %q", want, clip.text)
	}
	if m.toast.Message() != msgCSSCopied || m.toast.Kind() != ToastSuccess {
		t.Errorf("Unexpected toast %q", m.toast.Message())
	}
	if !m.playground.CopiedShown() {
		t.Error("Expected button to show copied state")
	}

	m, _ = send(m, copiedResetMsg{gen: m.playground.copiedGen})
	if m.playground.CopiedShown() {
		t.Error("Expected button reset")
	}
}

func TestPlayground_CopyFailure(t *testing.T) {
	clip := &fakeClipboard{err: errors.New("no clipboard")}
	m := newTestModel(t, Options{SkipLoading: true, Clipboard: clip, Config: configWithStart("css-playground")})

	m, _ = send(m, tea.KeyMsg{Type: tea.KeyEnter})
	m, cmd := send(m, keyMsg("y"))
	m, _ = send(m, cmd())

	if m.toast.Message() != msgCSSCopyFailed || m.toast.Kind() != ToastError {
		t.Errorf("Expected failure toast, got %q", m.toast.Message())
	}
	if m.playground.CopiedShown() {
		t.Error("Expected button state untouched on failure")
	}
}

func TestPlayground_AdjustAndLeave(t *testing.T) {
	m := newTestModel(t, Options{SkipLoading: true, Config: configWithStart("css-playground")})
	m, _ = send(m, tea.KeyMsg{Type: tea.KeyEnter})

	// x offset is the first parameter
	m, _ = send(m, keyMsg("l"), keyMsg("l"), keyMsg("L"))
	if got := m.playground.Current().Number("x"); got != 12 {
		t.Errorf("Expected x=12, got %d", got)
	}
	// Arrow keys adjust the panel, not the section
	m, _ = send(m, tea.KeyMsg{Type: tea.KeyRight})
	if m.ActiveSection() != "css-playground" {
		t.Error("Expected arrows to stay inside the focused panel")
	}

	m, _ = send(m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.focused {
		t.Error("Expected esc to leave the panel")
	}
	m, _ = send(m, tea.KeyMsg{Type: tea.KeyRight})
	if m.ActiveSection() != "resume" {
		t.Errorf("Expected arrows to walk sections again, got %s", m.ActiveSection())
	}
}

func TestPlayground_EditRawValue(t *testing.T) {
	m := newTestModel(t, Options{SkipLoading: true, Config: configWithStart("css-playground")})
	m, _ = send(m, tea.KeyMsg{Type: tea.KeyEnter}, keyMsg("3")) // gradient tab
	m, _ = send(m, keyMsg("e"))
	if !m.playground.Editing() {
		t.Fatal("Expected edit mode")
	}
	m, _ = send(m,
		tea.KeyMsg{Type: tea.KeyBackspace},
		tea.KeyMsg{Type: tea.KeyBackspace},
		keyMsg("45"),
		tea.KeyMsg{Type: tea.KeyEnter},
	)
	if got := m.playground.Current().Declaration(); got != "background: linear-gradient(45deg, #667eea, #764ba2);" {
		t.Errorf("Unexpected declaration %q", got)
	}
}

func typeInto(m Model, text string) Model {
	m, _ = send(m, keyMsg(text))
	return m
}

func TestContact_InvalidSubmit(t *testing.T) {
	sub := &fakeSubmitter{}
	m := newTestModel(t, Options{SkipLoading: true, Submitter: sub, Config: configWithStart("contact")})

	m, _ = send(m, tea.KeyMsg{Type: tea.KeyEnter})
	m = typeInto(m, "Al")
	m, _ = send(m, tea.KeyMsg{Type: tea.KeyCtrlS})

	if m.toast.Message() != msgFixErrors || m.toast.Kind() != ToastError {
		t.Errorf("Expected fix errors toast, got %q", m.toast.Message())
	}
	if m.contact.Form().Sending() {
		t.Error("Expected invalid form not to send")
	}
	errs := m.contact.Form().Errors()
	if errs["email"] != contact.MsgRequired || errs["message"] != contact.MsgRequired {
		t.Errorf("Unexpected errors %v", errs)
	}
	if _, ok := errs["subject"]; ok {
		t.Error("Expected optional subject to pass")
	}
}

func TestContact_BlurValidates(t *testing.T) {
	m := newTestModel(t, Options{SkipLoading: true, Config: configWithStart("contact")})
	m, _ = send(m, tea.KeyMsg{Type: tea.KeyEnter}, tea.KeyMsg{Type: tea.KeyTab})
	m = typeInto(m, "not-an-email")
	m, _ = send(m, tea.KeyMsg{Type: tea.KeyTab})

	if got := m.contact.Form().Errors()["email"]; got != contact.MsgInvalidEmail {
		t.Errorf("Expected invalid email on blur, got %q", got)
	}
	if got := m.contact.Form().Errors()["name"]; got != contact.MsgRequired {
		t.Errorf("Expected blank name flagged on blur, got %q", got)
	}
}

func TestContact_ValidSubmit(t *testing.T) {
	sub := &fakeSubmitter{}
	m := newTestModel(t, Options{SkipLoading: true, Submitter: sub, Config: configWithStart("contact")})

	m, _ = send(m, tea.KeyMsg{Type: tea.KeyEnter})
	m = typeInto(m, "Al")
	m, _ = send(m, tea.KeyMsg{Type: tea.KeyTab})
	m = typeInto(m, "a@b.com")
	m, _ = send(m, tea.KeyMsg{Type: tea.KeyTab}, tea.KeyMsg{Type: tea.KeyTab})
	m = typeInto(m, "1234567890")
	m, cmd := send(m, tea.KeyMsg{Type: tea.KeyCtrlS})

	if cmd == nil || !m.contact.Form().Sending() {
		t.Fatal("Expected submission in flight")
	}
	if m.toast.IsVisible() {
		t.Errorf("Expected no toast yet, got %q", m.toast.Message())
	}

	// A second submit while sending is ignored
	m, _ = send(m, tea.KeyMsg{Type: tea.KeyCtrlS})
	if m.toast.IsVisible() {
		t.Error("Expected second submit to be ignored")
	}

	m, _ = send(m, submitResultMsg{})
	if m.toast.Message() != msgSent || m.toast.Kind() != ToastSuccess {
		t.Errorf("Expected success toast, got %q", m.toast.Message())
	}
	if f, _ := m.contact.Form().Field("name"); f.Value != "" {
		t.Errorf("Expected form reset, got name %q", f.Value)
	}
}

func TestContact_SubmitFailureKeepsValues(t *testing.T) {
	m := newTestModel(t, Options{SkipLoading: true, Config: configWithStart("contact")})
	m, _ = send(m, tea.KeyMsg{Type: tea.KeyEnter})
	m = typeInto(m, "Al")
	m, _ = send(m, tea.KeyMsg{Type: tea.KeyTab})
	m = typeInto(m, "a@b.com")
	m, _ = send(m, tea.KeyMsg{Type: tea.KeyTab}, tea.KeyMsg{Type: tea.KeyTab})
	m = typeInto(m, "1234567890")
	m, _ = send(m, tea.KeyMsg{Type: tea.KeyCtrlS})

	m, _ = send(m, submitResultMsg{err: errors.New("boom")})
	if m.toast.Message() != msgSendFailed || m.toast.Kind() != ToastError {
		t.Errorf("Expected failure toast, got %q", m.toast.Message())
	}
	if f, _ := m.contact.Form().Field("email"); f.Value != "a@b.com" {
		t.Errorf("Expected values kept, got email %q", f.Value)
	}
}

func TestSubmitCmd(t *testing.T) {
	sub := &fakeSubmitter{}
	msg := submitCmd(context.Background(), sub, contact.Message{Name: "Al"})()
	res, ok := msg.(submitResultMsg)
	if !ok || res.err != nil {
		t.Fatalf("Expected successful result, got %#v", msg)
	}
	if len(sub.got) != 1 || sub.got[0].Name != "Al" {
		t.Errorf("Expected message delivered, got %+v", sub.got)
	}
}

func TestContactCards_CopyResult(t *testing.T) {
	m := newTestModel(t, Options{SkipLoading: true})
	m, _ = send(m, copyResultMsg{source: copyFromContactCard, text: "a@b.com"})
	if m.toast.Message() != "a@b.com copied to clipboard!" {
		t.Errorf("Unexpected toast %q", m.toast.Message())
	}
	m, _ = send(m, copyResultMsg{source: copyFromContactCard, err: errors.New("x")})
	if m.toast.Message() != msgCardCopyFailed || m.toast.Kind() != ToastError {
		t.Errorf("Unexpected toast %q", m.toast.Message())
	}
}

func TestContactCards_OpenOnlyOnContact(t *testing.T) {
	m := newTestModel(t, Options{SkipLoading: true})
	m, _ = send(m, keyMsg("y"))
	if m.cards.IsOpen() {
		t.Error("Expected picker closed off the contact section")
	}
	m = newTestModel(t, Options{SkipLoading: true, Config: configWithStart("contact")})
	m, _ = send(m, keyMsg("y"))
	if !m.cards.IsOpen() {
		t.Fatal("Expected picker open")
	}
	m, _ = send(m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.cards.IsOpen() {
		t.Error("Expected esc to close the picker")
	}
}

func TestResumePanel(t *testing.T) {
	m := newTestModel(t, Options{SkipLoading: true, Config: configWithStart("resume")})
	m, _ = send(m, tea.KeyMsg{Type: tea.KeyEnter}, keyMsg("+"))
	v := m.resume.Viewer()
	if v.Scale() != 1.2 {
		t.Errorf("Expected scale 1.2, got %g", v.Scale())
	}
	m, _ = send(m, keyMsg("l"))
	if x, _ := v.Translation(); x != panStep {
		t.Errorf("Expected pan %d, got %g", panStep, x)
	}
	m, _ = send(m, tea.MouseMsg{Button: tea.MouseButtonWheelDown, Action: tea.MouseActionPress})
	if v.Scale() != 1.1 {
		t.Errorf("Expected wheel down to zoom out to 1.1, got %g", v.Scale())
	}

	m, _ = send(m,
		tea.MouseMsg{X: 10, Y: 10, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress},
		tea.MouseMsg{X: 15, Y: 12, Action: tea.MouseActionMotion},
	)
	if x, y := v.Translation(); x != panStep+5 || y != 4 {
		t.Errorf("Expected drag to pan to (%d, 4), got (%g, %g)", panStep+5, x, y)
	}
	m, _ = send(m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.focused {
		t.Error("Expected esc to leave the viewer")
	}
	if v.State() != resume.Idle {
		t.Error("Expected pan gesture ended on leave")
	}

	m, _ = send(m, tea.KeyMsg{Type: tea.KeyEnter}, keyMsg("0"))
	if v.Scale() != 1 || v.Transform() != "translate(0px, 0px) scale(1)" {
		t.Errorf("Expected reset, got %s", v.Transform())
	}
}

func TestPalette_JumpsToSection(t *testing.T) {
	m := newTestModel(t, Options{SkipLoading: true})
	m, _ = send(m, keyMsg("/"))
	if !m.palette.IsVisible() {
		t.Fatal("Expected palette open")
	}
	m, _ = send(m, keyMsg("resu"))
	if got := m.palette.Matches(); len(got) == 0 || got[0] != "resume" {
		t.Fatalf("Expected resume as best match, got %v", got)
	}
	m, _ = send(m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.palette.IsVisible() || m.ActiveSection() != "resume" {
		t.Errorf("Expected jump to resume, got %s", m.ActiveSection())
	}
}

func TestMenu(t *testing.T) {
	m := newTestModel(t, Options{SkipLoading: true})
	m, _ = send(m, keyMsg("m"))
	if !m.nav.MenuOpen() {
		t.Fatal("Expected menu open")
	}
	m, _ = send(m, keyMsg("3"))
	if m.nav.MenuOpen() || m.ActiveSection() != "skills" {
		t.Errorf("Expected menu closed on skills, got %s", m.ActiveSection())
	}

	m, _ = send(m, keyMsg("m"), tea.KeyMsg{Type: tea.KeyEsc})
	if m.nav.MenuOpen() {
		t.Error("Expected esc to close the menu")
	}
}

func TestSkills_AnimateOnce(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	m := newTestModel(t, Options{SkipLoading: true, Now: clock.Now})
	m, cmd := send(m, keyMsg("m"), keyMsg("3"))
	if cmd == nil || !m.skills.Animated() {
		t.Fatal("Expected skills animation to start")
	}
	if m.skills.Value(0) != 0 {
		t.Errorf("Expected counters at zero, got %d", m.skills.Value(0))
	}

	clock.Advance(10 * time.Second)
	m, cmd = send(m, skillsTickMsg{gen: m.skills.gen})
	if cmd != nil {
		t.Error("Expected animation to finish")
	}
	if got, want := m.skills.Value(0), m.content.Skills[0].Level; got != want {
		t.Errorf("Expected %d, got %d", want, got)
	}

	// Leaving and re-entering does not replay
	m, _ = send(m, tea.KeyMsg{Type: tea.KeyUp}, tea.KeyMsg{Type: tea.KeyDown})
	if m.skills.gen != 1 {
		t.Errorf("Expected a single animation run, got %d", m.skills.gen)
	}
	if m.skills.Value(0) != m.content.Skills[0].Level {
		t.Error("Expected counters to stay filled")
	}
}

func TestContinuousLayout_ObserverActivates(t *testing.T) {
	clock := &fakeClock{t: time.Unix(100, 0)}
	m := newTestModel(t, Options{SkipLoading: true, Now: clock.Now})
	m, _ = send(m, keyMsg("v"))
	if !m.sections.Continuous() {
		t.Fatal("Expected continuous layout")
	}

	m.sections.viewport.GotoBottom()
	clock.Advance(time.Second)
	m, _ = send(m, keyMsg("j"))
	if m.ActiveSection() == "home" {
		t.Error("Expected observer to move off home at the bottom of the page")
	}
	if !m.sections.ShowBackToTop() {
		t.Error("Expected back to top hint")
	}

	m, _ = send(m, keyMsg("g"))
	if m.sections.Offset() != 0 {
		t.Errorf("Expected top of page, got offset %d", m.sections.Offset())
	}
}

func TestContinuousLayout_NavigationSuppressesObserver(t *testing.T) {
	clock := &fakeClock{t: time.Unix(100, 0)}
	m := newTestModel(t, Options{SkipLoading: true, Now: clock.Now})
	m, _ = send(m, keyMsg("v"), keyMsg("/"), keyMsg("contact"), tea.KeyMsg{Type: tea.KeyEnter})
	if m.ActiveSection() != "contact" {
		t.Fatalf("Expected contact, got %s", m.ActiveSection())
	}

	// Scrolling back to the top while the jump settles must not steal the
	// active section.
	m.sections.GotoTop()
	clock.Advance(time.Second)
	m, _ = send(m, keyMsg("k"))
	if m.ActiveSection() != "contact" {
		t.Errorf("Expected observer suppressed while navigating, got %s", m.ActiveSection())
	}
}

func TestHelpOverlay(t *testing.T) {
	m := newTestModel(t, Options{SkipLoading: true})
	m, _ = send(m, keyMsg("?"))
	if !strings.Contains(m.View(), "Keyboard Shortcuts") {
		t.Error("Expected help overlay in view")
	}
	m, _ = send(m, keyMsg("x"))
	if m.helpOverlay.IsVisible() {
		t.Error("Expected any key to close help")
	}
}

func TestContentReload(t *testing.T) {
	m := newTestModel(t, Options{SkipLoading: true})
	c, err := content.Parse([]byte("name: Sam\nsections:\n  - {id: about, title: Who}\n"))
	if err != nil {
		t.Fatal(err)
	}
	m, _ = send(m, contentReloadedMsg{content: c})
	if m.nav.Title("about") != "Who" {
		t.Errorf("Expected retitled section, got %q", m.nav.Title("about"))
	}
	if m.toast.Message() != msgContentReloaded {
		t.Errorf("Unexpected toast %q", m.toast.Message())
	}

	m, _ = send(m, contentReloadedMsg{err: errors.New("bad yaml")})
	if m.toast.Message() != msgReloadFailed || m.content.Name != "Sam" {
		t.Error("Expected failed reload to keep the last good content")
	}
}

func TestWaitForContent_ReturnsAfterStop(t *testing.T) {
	w, err := watcher.New(filepath.Join(t.TempDir(), "folio.yaml"), 0)
	if err != nil {
		t.Fatal(err)
	}
	w.Stop()

	done := make(chan tea.Msg, 1)
	go func() { done <- waitForContent(w)() }()
	select {
	case msg := <-done:
		if msg != nil {
			t.Errorf("Expected no reload after stop, got %#v", msg)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Expected reload command to return once the watcher stops")
	}
}

func TestView_StatusBar(t *testing.T) {
	m := newTestModel(t, Options{SkipLoading: true})
	view := m.View()
	if !strings.Contains(view, "#home") {
		t.Error("Expected route fragment in status bar")
	}
	if !strings.Contains(view, m.content.Name) {
		t.Error("Expected name in header")
	}
	m, _ = send(m, tea.KeyMsg{Type: tea.KeyDown})
	if !strings.Contains(m.View(), "#about") {
		t.Error("Expected fragment to follow navigation")
	}
}

func TestQuit(t *testing.T) {
	m := newTestModel(t, Options{SkipLoading: true})
	m, cmd := send(m, keyMsg("q"))
	if cmd == nil || m.View() != "" {
		t.Error("Expected quit")
	}
}
