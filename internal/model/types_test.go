package model

import "testing"

func TestParseTheme(t *testing.T) {
	if th, err := ParseTheme(" Dark "); err != nil || th != ThemeDark {
		t.Fatalf("expected dark, got %q, %v", th, err)
	}
	if th, err := ParseTheme("light"); err != nil || th != ThemeLight {
		t.Fatalf("expected light, got %q, %v", th, err)
	}
	if _, err := ParseTheme("solarized"); err == nil {
		t.Fatalf("expected error for unknown theme")
	}
}

func TestThemeToggle(t *testing.T) {
	if ThemeLight.Toggle() != ThemeDark || ThemeDark.Toggle() != ThemeLight {
		t.Fatalf("toggle should switch between light and dark")
	}
	if Theme("").Toggle() != ThemeDark {
		t.Fatalf("unset theme behaves as light")
	}
}
