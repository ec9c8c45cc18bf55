package gradient

import (
	"strconv"
	"testing"
)

func TestHexToAngleBounds(t *testing.T) {
	if angle, err := HexToAngle("00"); err != nil || angle != 0 {
		t.Fatalf(`HexToAngle("00") = %d, %v; want 0`, angle, err)
	}
	if angle, err := HexToAngle("FF"); err != nil || angle != 360 {
		t.Fatalf(`HexToAngle("FF") = %d, %v; want 360`, angle, err)
	}
	for v := 0; v < 256; v++ {
		angle, err := HexToAngle(strconv.FormatInt(int64(v), 16))
		if err != nil {
			t.Fatalf("HexToAngle(%02x): %v", v, err)
		}
		if angle < 0 || angle > 360 {
			t.Fatalf("HexToAngle(%02x) = %d, outside [0,360]", v, angle)
		}
	}
}

func TestHexToAngleRejectsNonHex(t *testing.T) {
	if _, err := HexToAngle("zz"); err == nil {
		t.Fatal("expected error for non-hex input")
	}
}

func TestDeriveDisabledWithoutFlagsOrColors(t *testing.T) {
	spec, err := Derive("device-id-4f", "", "", -1, false, false)
	if err != nil {
		t.Fatalf("derive: %v", err)
	}
	if spec.Enabled {
		t.Fatalf("expected disabled spec, got %+v", spec)
	}
}

func TestDeriveSecondHueWraparound(t *testing.T) {
	// "10" -> round(16/255*360) = 23; hue2 underflows and wraps to 323.
	spec, err := Derive("xxxxxxxx10", "", "", -1, true, false)
	if err != nil {
		t.Fatalf("derive: %v", err)
	}
	if !spec.Enabled {
		t.Fatal("expected enabled spec")
	}
	if spec.Angle != 23 {
		t.Fatalf("derived angle = %d, want 23", spec.Angle)
	}
	if spec.Color2 != hsvHex(323, mutedSaturation, mutedBrightness) {
		t.Fatalf("hue2 did not wrap: %+v", spec)
	}

	// "80" -> round(128/255*360) = 181; hue2 = 121, no wrap.
	spec, err = Derive("xxxxxxxx80", "", "", -1, true, false)
	if err != nil {
		t.Fatalf("derive: %v", err)
	}
	if spec.Angle != 181 {
		t.Fatalf("derived angle = %d, want 181", spec.Angle)
	}
	if spec.Color2 != hsvHex(121, mutedSaturation, mutedBrightness) {
		t.Fatalf("unexpected hue2: %+v", spec)
	}
}

func TestDeriveBrightPresets(t *testing.T) {
	muted, err := Derive("xxxxxxxx80", "", "", -1, true, false)
	if err != nil {
		t.Fatalf("derive muted: %v", err)
	}
	bright, err := Derive("xxxxxxxx80", "", "", -1, false, true)
	if err != nil {
		t.Fatalf("derive bright: %v", err)
	}
	if muted.Color1 == bright.Color1 {
		t.Fatal("bright preset should change the derived color")
	}
	if bright.Color1 != hsvHex(181, brightSaturation, brightBrightness) {
		t.Fatalf("bright color1 = %s", bright.Color1)
	}
}

func TestDeriveExplicitColorsVerbatim(t *testing.T) {
	spec, err := Derive("xxxxxxxx80", "#204060", "602040", 90, false, false)
	if err != nil {
		t.Fatalf("derive: %v", err)
	}
	if spec.Color1 != "#204060" || spec.Color2 != "#602040" {
		t.Fatalf("explicit colors not passed through: %+v", spec)
	}
	if spec.Angle != 90 {
		t.Fatalf("explicit angle not honored: %+v", spec)
	}
}

func TestDeriveExplicitColorWithDerivedSecondStop(t *testing.T) {
	spec, err := Derive("xxxxxxxx80", "#f0a", "", -1, false, false)
	if err != nil {
		t.Fatalf("derive: %v", err)
	}
	if spec.Color1 != "#ff00aa" {
		t.Fatalf("shorthand not expanded: %+v", spec)
	}
	if spec.Color2 != hsvHex(181, mutedSaturation, mutedBrightness) {
		t.Fatalf("second stop should derive from hue1: %+v", spec)
	}
	if spec.Angle != 181 {
		t.Fatalf("angle should derive when not explicit: %+v", spec)
	}
}

func TestDeriveRejectsMalformedHex(t *testing.T) {
	if _, err := Derive("xxxxxxxx80", "#12zz45", "", -1, false, false); err == nil {
		t.Fatal("expected error for malformed hex color")
	}
}

func TestDeriveDeterministic(t *testing.T) {
	first, err := Derive("a1b2c3d4", "", "", -1, true, true)
	if err != nil {
		t.Fatalf("derive: %v", err)
	}
	second, err := Derive("a1b2c3d4", "", "", -1, true, true)
	if err != nil {
		t.Fatalf("derive: %v", err)
	}
	if first != second {
		t.Fatalf("identical inputs produced %+v then %+v", first, second)
	}
}

func TestStops(t *testing.T) {
	spec, err := Derive("xxxxxxxx80", "#204060", "#602040", -1, false, false)
	if err != nil {
		t.Fatalf("derive: %v", err)
	}
	c1, c2, err := spec.Stops()
	if err != nil {
		t.Fatalf("stops: %v", err)
	}
	if c1.Hex() != "#204060" || c2.Hex() != "#602040" {
		t.Fatalf("stop round-trip failed: %s %s", c1.Hex(), c2.Hex())
	}
}
