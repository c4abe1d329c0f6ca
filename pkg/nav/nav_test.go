package nav

import "testing"

func countVisible(n *Navigator) (int, string) {
	count, id := 0, ""
	for _, s := range n.Sections() {
		if s.Visible {
			count++
			id = s.ID
		}
	}
	return count, id
}

func TestNavigateTo_ExactlyOneActive(t *testing.T) {
	n := NewDefault()
	for _, id := range DefaultOrder {
		if !n.NavigateTo(id) {
			t.Fatalf("Expected NavigateTo(%s) to succeed", id)
		}
		count, visible := countVisible(n)
		if count != 1 {
			t.Errorf("Expected exactly 1 visible section, got %d", count)
		}
		if visible != id || n.Active() != id {
			t.Errorf("Expected %s active, got visible=%s active=%s", id, visible, n.Active())
		}
	}
}

func TestNavigateTo_UnknownIsNoop(t *testing.T) {
	n := NewDefault()
	n.NavigateTo("skills")
	seq := n.Seq()

	if n.NavigateTo("blog") {
		t.Error("Expected unknown section to be rejected")
	}
	if n.Active() != "skills" {
		t.Errorf("Expected skills to stay active, got %s", n.Active())
	}
	if n.Seq() != seq {
		t.Error("Expected sequence unchanged after rejected navigation")
	}
}

func TestNavigateTo_ClosesMenu(t *testing.T) {
	n := NewDefault()
	n.ToggleMenu()
	if !n.MenuOpen() {
		t.Fatal("Expected menu open")
	}
	n.NavigateTo("about")
	if n.MenuOpen() {
		t.Error("Expected navigation to close the menu")
	}
}

func TestKeyboardWalk(t *testing.T) {
	n := NewDefault()

	n.HandleKey("left", false)
	if n.Active() != "home" {
		t.Errorf("Expected walk to clamp at home, got %s", n.Active())
	}

	n.HandleKey("down", false)
	n.HandleKey("right", false)
	if n.Active() != "skills" {
		t.Errorf("Expected skills after two steps, got %s", n.Active())
	}

	n.HandleKey("end", false)
	if n.Active() != "contact" {
		t.Errorf("Expected contact after End, got %s", n.Active())
	}
	n.HandleKey("down", false)
	if n.Active() != "contact" {
		t.Errorf("Expected walk to clamp at contact, got %s", n.Active())
	}

	n.HandleKey("up", false)
	if n.Active() != "resume" {
		t.Errorf("Expected resume after Up, got %s", n.Active())
	}

	n.HandleKey("home", false)
	if n.Active() != "home" {
		t.Errorf("Expected home after Home, got %s", n.Active())
	}
}

func TestKeyboardWalk_SkippedInsideInput(t *testing.T) {
	n := NewDefault()
	if n.HandleKey("down", true) {
		t.Error("Expected key to be ignored while an input has focus")
	}
	if n.Active() != "home" {
		t.Errorf("Expected home unchanged, got %s", n.Active())
	}
	if n.HandleKey("x", false) {
		t.Error("Expected unbound key to be unhandled")
	}
}

func TestObserve_SuppressedWhileNavigating(t *testing.T) {
	n := NewDefault()
	n.NavigateTo("projects")

	if _, ok := n.Observe(map[string]float64{"about": 0.9}); ok {
		t.Error("Expected observer to be suppressed during navigation")
	}
	if n.Active() != "projects" {
		t.Errorf("Expected projects to stay active, got %s", n.Active())
	}

	// A stale settle does not clear the flag
	n.Settle(n.Seq() - 1)
	if !n.Navigating() {
		t.Error("Expected stale settle to be ignored")
	}

	n.Settle(n.Seq())
	id, ok := n.Observe(map[string]float64{"about": 0.9, "skills": 0.3})
	if !ok || id != "about" {
		t.Errorf("Expected observer to activate about, got %q ok=%v", id, ok)
	}
	if count, _ := countVisible(n); count != 1 {
		t.Errorf("Expected exactly 1 visible section, got %d", count)
	}
}

func TestObserve_Threshold(t *testing.T) {
	n := NewDefault()
	n.Settle(n.Seq())

	if _, ok := n.Observe(map[string]float64{"about": 0.05}); ok {
		t.Error("Expected ratios below threshold to be ignored")
	}
	if _, ok := n.Observe(map[string]float64{"home": 0.8}); ok {
		t.Error("Expected no change when active section is most visible")
	}
	// Ties go to the earlier section
	id, _ := n.Observe(map[string]float64{"skills": 0.5, "about": 0.5})
	if id != "about" {
		t.Errorf("Expected tie to resolve to about, got %s", id)
	}
}

func TestHistory_BackForward(t *testing.T) {
	n := NewDefault()
	n.NavigateTo("about")
	n.NavigateTo("resume")

	if !n.Back() || n.Active() != "about" {
		t.Errorf("Expected back to about, got %s", n.Active())
	}
	if !n.Back() || n.Active() != "home" {
		t.Errorf("Expected back to home, got %s", n.Active())
	}
	if n.Back() {
		t.Error("Expected no history before home")
	}
	if !n.Forward() || n.Active() != "about" {
		t.Errorf("Expected forward to about, got %s", n.Active())
	}

	// New navigation drops the forward entries
	n.NavigateTo("contact")
	if n.Forward() {
		t.Error("Expected forward history cleared")
	}
	if n.Fragment() != "#contact" {
		t.Errorf("Expected #contact, got %s", n.Fragment())
	}
}

func TestParseFragment(t *testing.T) {
	cases := map[string]string{
		"#about":           "about",
		"/#CSS-Playground": "css-playground",
		"resume":           "resume",
		"  #contact ":      "contact",
	}
	for in, want := range cases {
		if got := ParseFragment(in); got != want {
			t.Errorf("ParseFragment(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestTitleFor(t *testing.T) {
	if got := TitleFor("css-playground"); got != "CSS Playground" {
		t.Errorf("Expected 'CSS Playground', got %q", got)
	}
	if got := TitleFor("experience"); got != "Experience" {
		t.Errorf("Expected 'Experience', got %q", got)
	}
}

func TestNew_DropsDuplicates(t *testing.T) {
	n := New([]Section{{ID: "a"}, {ID: "b"}, {ID: "a"}, {ID: ""}})
	if len(n.Sections()) != 2 {
		t.Errorf("Expected 2 sections, got %d", len(n.Sections()))
	}
	if n.Active() != "a" {
		t.Errorf("Expected a active, got %s", n.Active())
	}
}
