package theme

import (
	"testing"

	"github.com/gogpu/gg"
)

func TestDefault(t *testing.T) {
	th := Default()
	if th.Brand != "THOR" {
		t.Errorf("Brand = %q, want THOR", th.Brand)
	}
	if th.SpeedMax != 80 {
		t.Errorf("SpeedMax = %d, want 80", th.SpeedMax)
	}
	if th.RPMFrames() != 17 {
		t.Errorf("RPMFrames = %d, want 17", th.RPMFrames())
	}
}

func TestSpeedColorThresholds(t *testing.T) {
	th := Default()
	p := th.Palette
	cases := []struct {
		v    int
		want string
	}{
		{0, "green"}, {39, "green"},
		{40, "yellow"}, {59, "yellow"},
		{60, "red"}, {80, "red"},
	}
	colors := map[string]gg.RGBA{"green": p.Green, "yellow": p.Yellow, "red": p.Red}
	for _, c := range cases {
		if got := th.SpeedColor(c.v); got != colors[c.want] {
			t.Errorf("SpeedColor(%d) = %v, want %s", c.v, got, c.want)
		}
	}
}

func TestRPMColorThresholds(t *testing.T) {
	th := Default()
	p := th.Palette
	if th.RPMColor(3999) != p.Green {
		t.Error("RPMColor(3999) not green")
	}
	if th.RPMColor(4000) != p.Yellow {
		t.Error("RPMColor(4000) not yellow")
	}
	if th.RPMColor(5999) != p.Yellow {
		t.Error("RPMColor(5999) not yellow")
	}
	if th.RPMColor(6000) != p.Red {
		t.Error("RPMColor(6000) not red")
	}
}

func TestTempColorThresholds(t *testing.T) {
	th := Default()
	p := th.Palette
	if th.TempColor(49, 100) != p.Green {
		t.Error("TempColor(49) not green")
	}
	if th.TempColor(50, 100) != p.Yellow {
		t.Error("TempColor(50) not yellow")
	}
	if th.TempColor(75, 100) != p.Red {
		t.Error("TempColor(75) not red")
	}
}

func TestSOCColorThresholds(t *testing.T) {
	th := Default()
	p := th.Palette
	if th.SOCColor(61) != p.Green {
		t.Error("SOCColor(61) not green")
	}
	if th.SOCColor(60) != p.Yellow {
		t.Error("SOCColor(60) not yellow")
	}
	if th.SOCColor(21) != p.Yellow {
		t.Error("SOCColor(21) not yellow")
	}
	if th.SOCColor(20) != p.Red {
		t.Error("SOCColor(20) not red")
	}
}
