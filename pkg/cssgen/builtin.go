package cssgen

// Generator identifiers.
const (
	BoxShadowID    = "box-shadow"
	BorderRadiusID = "border-radius"
	GradientID     = "gradient"
	TextShadowID   = "text-shadow"
)

// NewBoxShadow creates the box-shadow generator.
func NewBoxShadow() *Generator {
	params := []Param{
		{Name: "x", Label: "Horizontal offset", Kind: Number, Min: -50, Max: 50, Unit: "px", DefaultNumber: 0},
		{Name: "y", Label: "Vertical offset", Kind: Number, Min: -50, Max: 50, Unit: "px", DefaultNumber: 5},
		{Name: "blur", Label: "Blur radius", Kind: Number, Min: 0, Max: 100, Unit: "px", DefaultNumber: 15},
		{Name: "spread", Label: "Spread radius", Kind: Number, Min: -50, Max: 50, Unit: "px", DefaultNumber: 0},
		{Name: "color", Label: "Shadow color", Kind: Color, DefaultColor: "#000000"},
		{Name: "inset", Label: "Inset", Kind: Toggle},
	}
	return newGenerator(BoxShadowID, "Box Shadow", "box-shadow", params, func(s State) (string, string) {
		v := BoxShadowValue(s.Numbers["x"], s.Numbers["y"], s.Numbers["blur"], s.Numbers["spread"], s.Colors["color"], s.Flags["inset"])
		return v, Declaration("box-shadow", v)
	})
}

// NewBorderRadius creates the border-radius generator.
func NewBorderRadius() *Generator {
	params := []Param{
		{Name: "tl", Label: "Top left", Kind: Number, Min: 0, Max: 100, Unit: "px", DefaultNumber: 8},
		{Name: "tr", Label: "Top right", Kind: Number, Min: 0, Max: 100, Unit: "px", DefaultNumber: 8},
		{Name: "br", Label: "Bottom right", Kind: Number, Min: 0, Max: 100, Unit: "px", DefaultNumber: 8},
		{Name: "bl", Label: "Bottom left", Kind: Number, Min: 0, Max: 100, Unit: "px", DefaultNumber: 8},
	}
	return newGenerator(BorderRadiusID, "Border Radius", "border-radius", params, func(s State) (string, string) {
		v := BorderRadiusValue(s.Numbers["tl"], s.Numbers["tr"], s.Numbers["br"], s.Numbers["bl"])
		return v, Declaration("border-radius", v)
	})
}

// NewGradient creates the linear-gradient generator.
func NewGradient() *Generator {
	params := []Param{
		{Name: "angle", Label: "Angle", Kind: Number, Min: 0, Max: 360, Unit: "deg", DefaultNumber: 90},
		{Name: "color1", Label: "Start color", Kind: Color, DefaultColor: "#667eea"},
		{Name: "color2", Label: "End color", Kind: Color, DefaultColor: "#764ba2"},
	}
	return newGenerator(GradientID, "Gradient", "background", params, func(s State) (string, string) {
		v := GradientValue(s.Numbers["angle"], s.Colors["color1"], s.Colors["color2"])
		return v, Declaration("background", v)
	})
}

// NewTextShadow creates the text-shadow generator. Its declaration carries
// the text color on a second line.
func NewTextShadow() *Generator {
	params := []Param{
		{Name: "x", Label: "Horizontal offset", Kind: Number, Min: -20, Max: 20, Unit: "px", DefaultNumber: 2},
		{Name: "y", Label: "Vertical offset", Kind: Number, Min: -20, Max: 20, Unit: "px", DefaultNumber: 2},
		{Name: "blur", Label: "Blur radius", Kind: Number, Min: 0, Max: 20, Unit: "px", DefaultNumber: 4},
		{Name: "color", Label: "Shadow color", Kind: Color, DefaultColor: "#000000"},
		{Name: "text", Label: "Text color", Kind: Color, DefaultColor: "#333333"},
	}
	return newGenerator(TextShadowID, "Text Shadow", "text-shadow", params, func(s State) (string, string) {
		v := TextShadowValue(s.Numbers["x"], s.Numbers["y"], s.Numbers["blur"], s.Colors["color"])
		return v, Declaration("text-shadow", v) + "\n" + Declaration("color", s.Colors["text"])
	})
}

// All returns a fresh instance of every generator in display order.
func All() []*Generator {
	return []*Generator{NewBoxShadow(), NewBorderRadius(), NewGradient(), NewTextShadow()}
}
