package theme

import (
	"fmt"

	"github.com/gogpu/gg"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"
)

// themeSchema describes the top level of a theme file. All entries are
// optional; anything absent keeps its Default value.
//
//	brand     = "THOR"
//	speed_max = 99
//	rpm_max   = 9000
//	rpm_step  = 500
//
//	palette {
//	  green = "#00DC78"
//	  navy  = "#030615"
//	}
var themeSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "brand"},
		{Name: "speed_max"},
		{Name: "rpm_max"},
		{Name: "rpm_step"},
	},
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "palette"},
	},
}

// Load parses an HCL theme file and returns Default overridden by it.
func Load(path string) (*Theme, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("theme %s: %w", path, diags)
	}

	content, diags := file.Body.Content(themeSchema)
	if diags.HasErrors() {
		return nil, fmt.Errorf("theme %s: %w", path, diags)
	}

	t := Default()
	for name, attr := range content.Attributes {
		if err := decodeAttr(t, name, attr); err != nil {
			return nil, fmt.Errorf("theme %s: %w", path, err)
		}
	}
	for _, block := range content.Blocks {
		if err := decodePalette(&t.Palette, block.Body); err != nil {
			return nil, fmt.Errorf("theme %s: %w", path, err)
		}
	}

	if t.SpeedMax < 1 {
		return nil, fmt.Errorf("theme %s: speed_max must be positive, got %d", path, t.SpeedMax)
	}
	if t.RPMStep < 1 || t.RPMMax < t.RPMStep {
		return nil, fmt.Errorf("theme %s: rpm range %d step %d is invalid", path, t.RPMMax, t.RPMStep)
	}
	return t, nil
}

func decodeAttr(t *Theme, name string, attr *hcl.Attribute) error {
	val, diags := attr.Expr.Value(nil)
	if diags.HasErrors() {
		return diags
	}
	switch name {
	case "brand":
		return fromCty(val, cty.String, &t.Brand)
	case "speed_max":
		return fromCty(val, cty.Number, &t.SpeedMax)
	case "rpm_max":
		return fromCty(val, cty.Number, &t.RPMMax)
	case "rpm_step":
		return fromCty(val, cty.Number, &t.RPMStep)
	}
	return fmt.Errorf("unknown attribute %q", name)
}

func fromCty(val cty.Value, want cty.Type, out any) error {
	if val.Type() != want {
		return fmt.Errorf("expected %s, got %s", want.FriendlyName(), val.Type().FriendlyName())
	}
	return gocty.FromCtyValue(val, out)
}

// decodePalette applies a palette block. Keys name the palette slots;
// values are hex color strings in #RGB, #RRGGBB, or #RRGGBBAA form.
func decodePalette(p *Palette, body hcl.Body) error {
	slots := map[string]*gg.RGBA{
		"background":       &p.Background,
		"white":            &p.White,
		"green":            &p.Green,
		"green_deep":       &p.GreenDeep,
		"yellow":           &p.Yellow,
		"orange":           &p.Orange,
		"red":              &p.Red,
		"gray":             &p.Gray,
		"blue":             &p.Blue,
		"panel_background": &p.PanelBackground,
		"dark":             &p.Dark,
		"dark_slate":       &p.DarkSlate,
		"panel_gray":       &p.PanelGray,
		"navy":             &p.Navy,
		"signal_green":     &p.SignalGreen,
		"signal_edge":      &p.SignalEdge,
		"signal_dim":       &p.SignalDim,
		"signal_ink":       &p.SignalInk,
		"hazard_yellow":    &p.HazardYellow,
	}

	attrs, diags := body.JustAttributes()
	if diags.HasErrors() {
		return diags
	}
	for name, attr := range attrs {
		slot, ok := slots[name]
		if !ok {
			return fmt.Errorf("palette: unknown color %q", name)
		}
		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return diags
		}
		var hex string
		if err := fromCty(val, cty.String, &hex); err != nil {
			return fmt.Errorf("palette %s: %w", name, err)
		}
		col, err := parseHexColor(hex)
		if err != nil {
			return fmt.Errorf("palette %s: %w", name, err)
		}
		*slot = col
	}
	return nil
}

func parseHexColor(s string) (gg.RGBA, error) {
	digits := s
	if len(digits) > 0 && digits[0] == '#' {
		digits = digits[1:]
	}
	switch len(digits) {
	case 3, 6, 8:
	default:
		return gg.RGBA{}, fmt.Errorf("bad hex color %q", s)
	}
	for _, c := range digits {
		switch {
		case c >= '0' && c <= '9', c >= 'a' && c <= 'f', c >= 'A' && c <= 'F':
		default:
			return gg.RGBA{}, fmt.Errorf("bad hex color %q", s)
		}
	}
	return gg.Hex(s), nil
}
