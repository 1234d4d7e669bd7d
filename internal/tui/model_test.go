package tui

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/charcount/internal/limit"
	"github.com/verte-zerg/charcount/internal/metrics"
	"github.com/verte-zerg/charcount/internal/model"
	"github.com/verte-zerg/charcount/internal/report"
	"github.com/verte-zerg/charcount/internal/store"
)

type fakePrefs struct {
	theme  model.Theme
	bools  map[string]bool
	values map[string]string
}

func newFakePrefs() *fakePrefs {
	return &fakePrefs{bools: map[string]bool{}, values: map[string]string{}}
}

func (f *fakePrefs) SaveTheme(_ context.Context, theme model.Theme) error {
	f.theme = theme
	return nil
}

func (f *fakePrefs) SetBool(_ context.Context, key string, value bool) error {
	f.bools[key] = value
	return nil
}

func (f *fakePrefs) Set(_ context.Context, key, value string) error {
	f.values[key] = value
	return nil
}

func newTestModel(settings model.Settings) (*Model, *fakePrefs) {
	prefs := newFakePrefs()
	if settings.WordsPerMinute == 0 {
		settings.WordsPerMinute = metrics.DefaultWordsPerMinute
	}
	return NewModel(settings, prefs, nil), prefs
}

func typeText(m *Model, text string) {
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
}

func press(m *Model, t tea.KeyType) tea.Cmd {
	_, cmd := m.Update(tea.KeyMsg{Type: t})
	return cmd
}

func TestNewModelStartsEmpty(t *testing.T) {
	m, _ := newTestModel(model.Settings{})
	if m.text != "" || m.result.Characters != 0 || m.result.ReadingTime.Display != "0" {
		t.Fatalf("expected zeroed state, got %+v", m.result)
	}
	view := m.View()
	for _, want := range []string{"00", report.EmptyDensityMessage} {
		if !strings.Contains(view, want) {
			t.Fatalf("initial view missing %q", want)
		}
	}
}

func TestTypingRecomputesMetrics(t *testing.T) {
	m, _ := newTestModel(model.Settings{})
	typeText(m, "Hello world. Bye")
	if m.text != "Hello world. Bye" {
		t.Fatalf("unexpected text %q", m.text)
	}
	if m.result.Words != 3 || m.result.Sentences != 1 || m.result.Characters != 16 {
		t.Fatalf("unexpected result %+v", m.result)
	}
	if m.result.ReadingTime.Display != "1" {
		t.Fatalf("unexpected reading time %+v", m.result.ReadingTime)
	}
}

func TestExcludeSpacesToggle(t *testing.T) {
	m, prefs := newTestModel(model.Settings{})
	typeText(m, "a b c")
	if m.result.Characters != 5 {
		t.Fatalf("expected 5 characters, got %d", m.result.Characters)
	}
	press(m, tea.KeyCtrlS)
	if m.result.Characters != 3 {
		t.Fatalf("expected 3 characters without spaces, got %d", m.result.Characters)
	}
	if !prefs.bools[store.KeyExcludeSpaces] {
		t.Fatalf("expected exclude-spaces to be persisted")
	}
}

func TestLimitTruncatesOnTextChange(t *testing.T) {
	m, prefs := newTestModel(model.Settings{})
	press(m, tea.KeyCtrlL)
	if m.limit.State() != limit.EnabledUnset {
		t.Fatalf("expected enabled-unset, got %s", m.limit.State())
	}
	press(m, tea.KeyTab)
	typeText(m, "5")
	if m.limit.State() != limit.EnabledSet {
		t.Fatalf("expected enabled-set, got %s", m.limit.State())
	}
	if prefs.values[store.KeyLimitValue] != "5" || !prefs.bools[store.KeyLimitEnabled] {
		t.Fatalf("expected limit to be persisted: %+v %+v", prefs.values, prefs.bools)
	}
	press(m, tea.KeyTab)
	typeText(m, "abcdefgh")
	if m.text != "abcde" || m.input.Value() != "abcde" {
		t.Fatalf("expected truncation to abcde, got %q / %q", m.text, m.input.Value())
	}
	if m.result.Characters != 5 || !m.truncated {
		t.Fatalf("expected 5 characters after truncation, got %d", m.result.Characters)
	}
	if !strings.Contains(m.View(), "Limit reached") {
		t.Fatalf("expected limit warning in view")
	}
}

func TestInvalidLimitDisablesEnforcement(t *testing.T) {
	m, prefs := newTestModel(model.Settings{LimitEnabled: true})
	press(m, tea.KeyTab)
	typeText(m, "0")
	press(m, tea.KeyTab)
	typeText(m, "abcdefgh")
	if m.text != "abcdefgh" {
		t.Fatalf("invalid limit should not truncate, got %q", m.text)
	}
	if _, ok := prefs.values[store.KeyLimitValue]; ok {
		t.Fatalf("invalid limit should not be persisted")
	}
}

func TestDisabledLimitKeepsText(t *testing.T) {
	m, _ := newTestModel(model.Settings{LimitEnabled: false, LimitValue: 3})
	typeText(m, "abcdef")
	if m.text != "abcdef" {
		t.Fatalf("disabled limit should not truncate, got %q", m.text)
	}
	press(m, tea.KeyCtrlL)
	typeText(m, "g")
	if m.text != "abc" {
		t.Fatalf("enabled limit should truncate on next change, got %q", m.text)
	}
}

func TestThemeTogglePersists(t *testing.T) {
	m, prefs := newTestModel(model.Settings{Theme: model.ThemeLight})
	press(m, tea.KeyCtrlT)
	if m.theme != model.ThemeDark || prefs.theme != model.ThemeDark {
		t.Fatalf("expected dark theme persisted, got %q / %q", m.theme, prefs.theme)
	}
	press(m, tea.KeyCtrlT)
	if prefs.theme != model.ThemeLight {
		t.Fatalf("expected light theme persisted, got %q", prefs.theme)
	}
}

func TestSeeMoreShowsAllLetters(t *testing.T) {
	m, _ := newTestModel(model.Settings{})
	typeText(m, "abcdefg")
	if len(m.result.Letters) != metrics.DensityTop {
		t.Fatalf("expected top %d letters, got %d", metrics.DensityTop, len(m.result.Letters))
	}
	if !strings.Contains(m.View(), "See more (2)") {
		t.Fatalf("expected see more hint")
	}
	press(m, tea.KeyCtrlO)
	if len(m.result.Letters) != 7 {
		t.Fatalf("expected all letters, got %d", len(m.result.Letters))
	}
}

func TestQuit(t *testing.T) {
	m, _ := newTestModel(model.Settings{})
	cmd := press(m, tea.KeyEsc)
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
}

func TestRenderOptionsShowsRemaining(t *testing.T) {
	m, _ := newTestModel(model.Settings{LimitEnabled: true, LimitValue: 10})
	typeText(m, "abc")
	out := m.renderOptions()
	if !strings.Contains(out, "[x] Set Character Limit") || !strings.Contains(out, "7 left") {
		t.Fatalf("unexpected options line: %s", out)
	}
}

func paste(m *Model, text string) {
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text), Paste: true})
}

func TestPasteCountsEnteredText(t *testing.T) {
	m, _ := newTestModel(model.Settings{})
	paste(m, "a\tb")
	if m.text != "a\tb" || m.result.Characters != 3 {
		t.Fatalf("expected tab kept as one character, got %q (%d)", m.text, m.result.Characters)
	}
	if m.input.Value() != "a    b" {
		t.Fatalf("expected textarea to show expanded tab, got %q", m.input.Value())
	}
	typeText(m, "c")
	if m.text != "a\tbc" || m.result.Characters != 4 {
		t.Fatalf("expected typing after paste to append, got %q", m.text)
	}
}

func TestPasteMatchesAnalyzeCounts(t *testing.T) {
	text := "One\ttwo.\r\nThree!"
	m, _ := newTestModel(model.Settings{})
	paste(m, text)
	want := metrics.Analyze(text, metrics.Options{WordsPerMinute: metrics.DefaultWordsPerMinute})
	if m.text != text {
		t.Fatalf("expected %q, got %q", text, m.text)
	}
	if m.result.Characters != want.Characters || m.result.Words != want.Words || m.result.Sentences != want.Sentences {
		t.Fatalf("live counts %+v differ from direct analysis %+v", m.result, want)
	}
}

func TestBackspaceOverPastedTab(t *testing.T) {
	m, _ := newTestModel(model.Settings{})
	paste(m, "a\tb")
	press(m, tea.KeyBackspace)
	if m.text != "a\t" {
		t.Fatalf("expected trailing rune removed, got %q", m.text)
	}
	press(m, tea.KeyBackspace)
	if m.text != "a   " || m.input.Value() != "a   " {
		t.Fatalf("expected partly deleted tab to keep its remaining spaces, got %q / %q", m.text, m.input.Value())
	}
}

func TestLimitAppliesToPastedTabs(t *testing.T) {
	m, _ := newTestModel(model.Settings{LimitEnabled: true, LimitValue: 3})
	paste(m, "\t\t\t\t")
	if m.text != "\t\t\t" || m.result.Characters != 3 || !m.truncated {
		t.Fatalf("expected three tabs after truncation, got %q (%d)", m.text, m.result.Characters)
	}
	if m.input.Value() != strings.Repeat(" ", 12) {
		t.Fatalf("unexpected textarea value %q", m.input.Value())
	}
}

func TestManyLinesAreAccepted(t *testing.T) {
	m, _ := newTestModel(model.Settings{})
	for i := 0; i < 120; i++ {
		typeText(m, "x")
		press(m, tea.KeyEnter)
	}
	if m.result.Words != 120 || m.result.Characters != 240 {
		t.Fatalf("expected 120 words and 240 characters, got %d and %d", m.result.Words, m.result.Characters)
	}
}

func TestDisabledLimitKeepsConfiguredValue(t *testing.T) {
	m, _ := newTestModel(model.Settings{LimitEnabled: false, LimitValue: 280})
	press(m, tea.KeyCtrlL)
	if value, ok := m.limit.Value(); m.limit.State() != limit.EnabledSet || !ok || value != 280 {
		t.Fatalf("expected enabled-set(280), got %s %d", m.limit.State(), value)
	}
}
