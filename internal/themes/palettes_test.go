package themes

import (
	"reflect"
	"testing"
)

func checkNonEmpty(t *testing.T, mc ModeColors, label string) {
	t.Helper()
	v := reflect.ValueOf(mc)
	typ := v.Type()
	for i := 0; i < v.NumField(); i++ {
		if v.Field(i).String() == "" {
			t.Errorf("%s.%s is empty", label, typ.Field(i).Name)
		}
	}
}

func TestRegistryCompleteness(t *testing.T) {
	for _, th := range Builtin().List() {
		if th.Label == "" {
			t.Errorf("%s has no label", th.Name)
		}
		checkNonEmpty(t, th.Dark, th.Name+".Dark")
		checkNonEmpty(t, th.Light, th.Name+".Light")

		c := reflect.ValueOf(th.Colors)
		for i := 0; i < c.NumField(); i++ {
			if _, ok := HexToRGB(c.Field(i).String()); !ok {
				t.Errorf("%s.Colors.%s is not a hex color", th.Name, c.Type().Field(i).Name)
			}
		}
	}
}

func TestRegistryTextAndSurfacesAreHex(t *testing.T) {
	for _, th := range Builtin().List() {
		for _, mc := range []ModeColors{th.Light, th.Dark} {
			for _, hex := range []string{mc.TextPrimary, mc.TextSecondary, mc.TextMuted, mc.BgMain, mc.BgCard, mc.BgCardHover} {
				if _, ok := HexToRGB(hex); !ok {
					t.Errorf("%s: %q should be #rrggbb", th.Name, hex)
				}
			}
		}
	}
}

func TestDefaultsAreRegistered(t *testing.T) {
	if !Builtin().Has(DefaultTheme) {
		t.Fatalf("default theme %q is not registered", DefaultTheme)
	}
	if _, ok := ParseColorMode(string(DefaultMode)); !ok {
		t.Fatalf("default mode %q is not valid", DefaultMode)
	}
}

func TestBuiltinOrder(t *testing.T) {
	want := []string{"breezy", "bosox", "midnight", "evergreen", "sunset", "harbor"}
	if got := Builtin().Names(); !reflect.DeepEqual(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}
	for i, th := range Builtin().List() {
		if th.Name != want[i] {
			t.Errorf("List()[%d] = %s, want %s", i, th.Name, want[i])
		}
	}
}

func TestBreezyLightValues(t *testing.T) {
	th := Builtin().Get("breezy")
	if th == nil {
		t.Fatal("breezy theme not found")
	}
	if th.Light.TextPrimary != "#101820" || th.Light.BgMain != "#fdfcf8" {
		t.Errorf("unexpected breezy light colors: %+v", th.Light)
	}
	if Builtin().Get("bosox").Colors.Primary != "#bd3039" {
		t.Error("bosox primary should be #bd3039")
	}
}

func TestNewRegistryRejectsDuplicates(t *testing.T) {
	_, err := NewRegistry(Theme{Name: "a"}, Theme{Name: "a"})
	if err == nil {
		t.Fatal("expected duplicate name error")
	}
	if _, err := NewRegistry(Theme{}); err == nil {
		t.Fatal("expected empty name error")
	}
}

func TestRegistryHandsOutCopies(t *testing.T) {
	reg := Builtin()

	list := reg.List()
	list[0].Colors.Primary = "#000000"
	if reg.Get(list[0].Name).Colors.Primary == "#000000" {
		t.Fatal("List should not expose registry themes")
	}

	th := reg.Get("bosox")
	th.Light.BgMain = "#000000"
	if reg.Get("bosox").Light.BgMain == "#000000" {
		t.Fatal("Get should not expose registry themes")
	}
}

func TestGetUnknown(t *testing.T) {
	if Builtin().Get("nonexistent") != nil {
		t.Error("unknown theme should be nil")
	}
}
