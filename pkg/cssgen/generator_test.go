package cssgen

import (
	"strings"
	"testing"
)

func TestBoxShadow_Declaration(t *testing.T) {
	g := NewBoxShadow()
	g.SetNumber("x", 5)
	g.SetNumber("y", 10)
	g.SetNumber("blur", 15)
	g.SetNumber("spread", 0)
	g.SetColor("color", "#000000")

	want := "box-shadow: 5px 10px 15px 0px #000000;"
	if got := g.Declaration(); got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}

	g.SetFlag("inset", true)
	want = "box-shadow: inset 5px 10px 15px 0px #000000;"
	if got := g.Declaration(); got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
	if got := g.Value(); got != "inset 5px 10px 15px 0px #000000" {
		t.Errorf("Unexpected preview value %q", got)
	}
}

func TestDefaults_NeverBlank(t *testing.T) {
	want := map[string]string{
		BoxShadowID:    "box-shadow: 0px 5px 15px 0px #000000;",
		BorderRadiusID: "border-radius: 8px 8px 8px 8px;",
		GradientID:     "background: linear-gradient(90deg, #667eea, #764ba2);",
		TextShadowID:   "text-shadow: 2px 2px 4px #000000;\ncolor: #333333;",
	}
	for _, g := range All() {
		if g.Value() == "" {
			t.Errorf("%s: expected non-empty preview value", g.ID)
		}
		if got := g.Declaration(); got != want[g.ID] {
			t.Errorf("%s: expected %q, got %q", g.ID, want[g.ID], got)
		}
	}
}

func TestSetNumber_Clamped(t *testing.T) {
	g := NewBorderRadius()
	g.SetNumber("tl", 500)
	g.SetNumber("br", -3)
	if got := g.Declaration(); got != "border-radius: 100px 8px 0px 8px;" {
		t.Errorf("Unexpected clamped declaration %q", got)
	}

	for _, gen := range All() {
		for _, p := range gen.Params() {
			if p.Kind != Number {
				continue
			}
			gen.Step(p.Name, 10000)
			if v := gen.Number(p.Name); v != p.Max {
				t.Errorf("%s.%s: expected max %d, got %d", gen.ID, p.Name, p.Max, v)
			}
			gen.Step(p.Name, -20000)
			if v := gen.Number(p.Name); v != p.Min {
				t.Errorf("%s.%s: expected min %d, got %d", gen.ID, p.Name, p.Min, v)
			}
		}
	}
}

func TestSet_RawInputDefaults(t *testing.T) {
	g := NewGradient()

	sub, err := g.Set("angle", "")
	if err != nil || !sub {
		t.Errorf("Expected empty angle substituted, got sub=%v err=%v", sub, err)
	}
	if g.Number("angle") != 90 {
		t.Errorf("Expected default angle 90, got %d", g.Number("angle"))
	}

	if sub, _ := g.Set("angle", "45.4"); sub {
		t.Error("Expected fractional input accepted")
	}
	if g.Number("angle") != 45 {
		t.Errorf("Expected 45, got %d", g.Number("angle"))
	}

	// Zero is a real value, not a missing one
	g.Set("angle", "0")
	if g.Number("angle") != 0 {
		t.Errorf("Expected 0, got %d", g.Number("angle"))
	}

	if sub, _ := g.Set("color1", "not-a-color"); !sub {
		t.Error("Expected invalid color substituted")
	}
	if g.Color("color1") != "#667eea" {
		t.Errorf("Expected default color, got %s", g.Color("color1"))
	}

	g.Set("color2", "#ABC")
	if g.Color("color2") != "#aabbcc" {
		t.Errorf("Expected normalized #aabbcc, got %s", g.Color("color2"))
	}
	if got := g.Declaration(); got != "background: linear-gradient(0deg, #667eea, #aabbcc);" {
		t.Errorf("Unexpected declaration %q", got)
	}

	if _, err := g.Set("nope", "1"); err == nil {
		t.Error("Expected error for unknown parameter")
	}

	// Truncated, over-long or partly hex input never becomes a new color
	for _, raw := range []string{"#12345", "#12345678", "#abcdefzz", "12", "#ggg"} {
		g.Set("color1", "#112233")
		sub, err := g.Set("color1", raw)
		if err != nil || !sub {
			t.Errorf("%q: expected substitution, got sub=%v err=%v", raw, sub, err)
		}
		if got := g.Color("color1"); got != "#667eea" {
			t.Errorf("%q: expected default #667eea, got %s", raw, got)
		}
	}
	if got := g.Declaration(); got != "background: linear-gradient(0deg, #667eea, #aabbcc);" {
		t.Errorf("Unexpected declaration after bad input %q", got)
	}
}

func TestNormalizeColor(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"#ABC", "#aabbcc", true},
		{"123456", "#123456", true},
		{" #ff00FF ", "#ff00ff", true},
		{"#12345", "", false},
		{"#12345678", "", false},
		{"#abcdefzz", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := NormalizeColor(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("NormalizeColor(%q): expected (%q, %v), got (%q, %v)", tt.in, tt.want, tt.ok, got, ok)
		}
	}
}

func TestRGBA(t *testing.T) {
	c, ok := RGBA("#282a36")
	if !ok || c.R != 0x28 || c.G != 0x2a || c.B != 0x36 || c.A != 0xff {
		t.Errorf("Unexpected color %v (ok=%v)", c, ok)
	}
	if _, ok := RGBA("#28"); ok {
		t.Error("Expected short hex rejected")
	}
}

func TestSet_Toggle(t *testing.T) {
	g := NewBoxShadow()
	g.Set("inset", "on")
	if !g.Flag("inset") {
		t.Error("Expected inset on")
	}
	g.Step("inset", 1)
	if g.Flag("inset") {
		t.Error("Expected Step to flip inset off")
	}
	if !strings.HasPrefix(g.Value(), "0px") {
		t.Errorf("Expected no inset prefix, got %q", g.Value())
	}
}

func TestDisplay(t *testing.T) {
	g := NewGradient()
	if got := g.Display("angle"); got != "90deg" {
		t.Errorf("Expected 90deg, got %q", got)
	}
	s := NewBoxShadow()
	s.SetNumber("y", -7)
	if got := s.Display("y"); got != "-7px" {
		t.Errorf("Expected -7px, got %q", got)
	}
}

func TestTextShadow_TwoLines(t *testing.T) {
	g := NewTextShadow()
	g.SetNumber("x", -3)
	g.SetColor("text", "#ffffff")
	want := "text-shadow: -3px 2px 4px #000000;\ncolor: #ffffff;"
	if got := g.Declaration(); got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestReset(t *testing.T) {
	g := NewBoxShadow()
	g.SetNumber("blur", 99)
	g.SetFlag("inset", true)
	g.Reset()
	if g.Declaration() != "box-shadow: 0px 5px 15px 0px #000000;" {
		t.Errorf("Expected defaults after reset, got %q", g.Declaration())
	}
}

func TestRotateHue(t *testing.T) {
	red := "#ff0000"
	if got := RotateHue(red, 120); got != "#00ff00" {
		t.Errorf("Expected green, got %s", got)
	}
	if got := RotateHue(red, -120); got != "#0000ff" {
		t.Errorf("Expected blue, got %s", got)
	}
	// Achromatic colors get brighter instead
	if got := RotateHue("#000000", 15); got == "#000000" {
		t.Error("Expected black to brighten")
	}
}

func TestBlend_Endpoints(t *testing.T) {
	if got := Blend("#667eea", "#764ba2", 0); got != "#667eea" {
		t.Errorf("Expected start color, got %s", got)
	}
	if got := Blend("#667eea", "#764ba2", 1); got != "#764ba2" {
		t.Errorf("Expected end color, got %s", got)
	}
}
