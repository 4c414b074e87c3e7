package theme

import "testing"

func TestNamed(t *testing.T) {
	for _, name := range []string{"dark", "Light", " dark "} {
		if _, ok := Named(name); !ok {
			t.Errorf("Named(%q) not found", name)
		}
	}
	if _, ok := Named("neon"); ok {
		t.Error("Named(neon) should not resolve")
	}
}

func TestFromPathFallsBackToDefault(t *testing.T) {
	if got := FromPath("themes/light").Name; got != LightName {
		t.Fatalf("FromPath(themes/light) = %q", got)
	}
	if got := FromPath("themes/missing").Name; got != Default().Name {
		t.Fatalf("FromPath(themes/missing) = %q", got)
	}
}

func TestResolveUnknown(t *testing.T) {
	if got := Resolve("solarized").Name; got != Default().Name {
		t.Fatalf("Resolve(solarized) = %q", got)
	}
}

func TestBlendStaysBetweenEndpoints(t *testing.T) {
	got := blend("#000000", "#ffffff", 0.5)
	if got == "#000000" || got == "#ffffff" {
		t.Fatalf("blend at 0.5 = %s", got)
	}
}

func TestBadHexFallsBackToGrey(t *testing.T) {
	c := hex("not a colour")
	if c.R != 0.5 || c.G != 0.5 || c.B != 0.5 {
		t.Fatalf("hex fallback = %+v", c)
	}
}
