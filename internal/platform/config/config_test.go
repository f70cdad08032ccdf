package config

import (
	"testing"
	"time"

	kit "mailsift/internal/platform/testkit"
)

func TestPrefixComposition(t *testing.T) {
	t.Setenv("CFGTEST_API_PORT", "4000")
	c := New().Prefix("CFGTEST_").Prefix("API_")
	if got := c.MustString("PORT"); got != "4000" {
		t.Fatalf("got %q", got)
	}
}

func TestMustString_PanicsWhenMissing(t *testing.T) {
	c := New().Prefix("CFGTEST_")
	kit.MustPanic(t, func() { c.MustString("NO_SUCH_KEY") })
}

func TestMustInt(t *testing.T) {
	t.Setenv("CFGTEST_N", "12")
	c := New().Prefix("CFGTEST_")
	if got := c.MustInt("N"); got != 12 {
		t.Fatalf("got %d", got)
	}
	t.Setenv("CFGTEST_BAD", "12x")
	kit.MustPanic(t, func() { c.MustInt("BAD") })
}

func TestMustPort(t *testing.T) {
	t.Setenv("CFGTEST_PORT", "8080")
	c := New().Prefix("CFGTEST_")
	if got := c.MustPort("PORT"); got != ":8080" {
		t.Fatalf("got %q", got)
	}
	t.Setenv("CFGTEST_PORT", "99999")
	kit.MustPanic(t, func() { c.MustPort("PORT") })
}

func TestMayAccessors(t *testing.T) {
	c := New().Prefix("CFGTEST_")

	if got := c.MayString("ABSENT", "dflt"); got != "dflt" {
		t.Fatalf("got %q", got)
	}

	t.Setenv("CFGTEST_I", "5")
	if got := c.MayInt("I", 1); got != 5 {
		t.Fatalf("got %d", got)
	}
	t.Setenv("CFGTEST_I", "xx")
	if got := c.MayInt("I", 1); got != 1 {
		t.Fatalf("invalid int should fall back, got %d", got)
	}

	t.Setenv("CFGTEST_B", "true")
	if !c.MayBool("B", false) {
		t.Fatal("expected true")
	}

	t.Setenv("CFGTEST_D", "250ms")
	if got := c.MayDuration("D", time.Second); got != 250*time.Millisecond {
		t.Fatalf("got %v", got)
	}
	t.Setenv("CFGTEST_D", "soon")
	if got := c.MayDuration("D", time.Second); got != time.Second {
		t.Fatalf("invalid duration should fall back, got %v", got)
	}
}
