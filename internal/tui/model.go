// Package tui provides the Bubble Tea text analysis interface.
package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/verte-zerg/charcount/internal/limit"
	"github.com/verte-zerg/charcount/internal/metrics"
	"github.com/verte-zerg/charcount/internal/model"
	"github.com/verte-zerg/charcount/internal/report"
	"github.com/verte-zerg/charcount/internal/store"
)

const (
	minInputHeight = 3
	densityBarMax  = 30
	sidePadding    = 4
)

// Preferences persists toggles between runs.
type Preferences interface {
	SaveTheme(ctx context.Context, theme model.Theme) error
	SetBool(ctx context.Context, key string, value bool) error
	Set(ctx context.Context, key, value string) error
}

type focusArea int

const (
	focusText focusArea = iota
	focusLimit
)

// Model implements the Bubble Tea analysis UI. It owns the current text,
// limit state, and theme, and recomputes every metric on each text change.
type Model struct {
	prefs  Preferences
	logger *zap.Logger

	opts   metrics.Options
	limit  limit.Limit
	theme  model.Theme
	styles styles

	input      textarea.Model
	limitInput textinput.Model
	focus      focusArea
	keys       keyMap
	help       help.Model

	raw       rawText
	text      string
	result    metrics.Result
	truncated bool

	width  int
	height int
}

// NewModel constructs the analysis TUI. The text area always starts empty.
func NewModel(settings model.Settings, prefs Preferences, logger *zap.Logger) *Model {
	if logger == nil {
		logger = zap.NewNop()
	}
	raw := ""
	if settings.LimitValue > 0 {
		raw = strconv.Itoa(settings.LimitValue)
	}
	theme := settings.Theme
	if theme == "" {
		theme = model.ThemeLight
	}

	input := textarea.New()
	input.Placeholder = "Start typing here... (or paste your text)"
	input.ShowLineNumbers = false
	input.CharLimit = 0
	input.MaxHeight = 0
	input.Focus()

	limitInput := textinput.New()
	limitInput.Prompt = ""
	limitInput.Placeholder = "limit"
	limitInput.CharLimit = 7
	limitInput.Width = 8
	limitInput.SetValue(raw)

	m := &Model{
		prefs:  prefs,
		logger: logger,
		opts: metrics.Options{
			ExcludeSpaces:  settings.ExcludeSpaces,
			WordsPerMinute: settings.WordsPerMinute,
			Scope:          settings.LetterScope,
			AllLetters:     settings.AllLetters,
		},
		limit:      limit.New(settings.LimitEnabled, raw),
		theme:      theme,
		styles:     newStyles(theme),
		input:      input,
		limitInput: limitInput,
		keys:       defaultKeyMap(),
		help:       help.New(),
	}
	m.recompute()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return textarea.Blink
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Theme):
			m.toggleTheme()
			return m, nil
		case key.Matches(msg, m.keys.ExcludeSpace):
			m.toggleExcludeSpaces()
			return m, nil
		case key.Matches(msg, m.keys.ToggleLimit):
			m.toggleLimit()
			return m, nil
		case key.Matches(msg, m.keys.SeeMore):
			m.opts.AllLetters = !m.opts.AllLetters
			m.recompute()
			return m, nil
		case key.Matches(msg, m.keys.SwitchFocus):
			return m, m.switchFocus()
		}
	}
	return m, m.updateFocused(msg)
}

func (m *Model) updateFocused(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	if m.focus == focusLimit {
		before := m.limitInput.Value()
		m.limitInput, cmd = m.limitInput.Update(msg)
		if m.limitInput.Value() != before {
			m.setLimitInput(m.limitInput.Value())
		}
		return cmd
	}
	before := []rune(m.input.Value())
	m.input, cmd = m.input.Update(msg)
	after := []rune(m.input.Value())
	if runesEqual(before, after) {
		return cmd
	}
	var typed []rune
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyRunes {
		typed = keyMsg.Runes
	}
	m.raw.sync(before, after, typed)
	m.onTextChange()
	return cmd
}

// onTextChange applies the character limit to the entered text and
// recomputes every metric.
func (m *Model) onTextChange() {
	text := m.raw.String()
	limited, _, truncated := m.limit.Enforce(text, len([]rune(text)))
	if truncated {
		// SetValue leaves the cursor at the end, which is the truncation point.
		m.input.SetValue(limited)
		m.raw = newRawText(limited)
		m.logger.Debug("text truncated", zap.Int("limit", len([]rune(limited))))
	}
	m.truncated = truncated
	m.text = limited
	m.recompute()
}

func (m *Model) recompute() {
	m.result = metrics.Analyze(m.text, m.opts)
}

func (m *Model) toggleTheme() {
	m.theme = m.theme.Toggle()
	m.styles = newStyles(m.theme)
	m.persist(store.KeyTheme, func(ctx context.Context) error {
		return m.prefs.SaveTheme(ctx, m.theme)
	})
}

func (m *Model) toggleExcludeSpaces() {
	m.opts.ExcludeSpaces = !m.opts.ExcludeSpaces
	m.recompute()
	m.persist(store.KeyExcludeSpaces, func(ctx context.Context) error {
		return m.prefs.SetBool(ctx, store.KeyExcludeSpaces, m.opts.ExcludeSpaces)
	})
}

func (m *Model) toggleLimit() {
	prev := m.limit.State()
	m.limit = m.limit.Toggle(!m.limit.Enabled())
	m.logStateChange(prev)
	m.persist(store.KeyLimitEnabled, func(ctx context.Context) error {
		return m.prefs.SetBool(ctx, store.KeyLimitEnabled, m.limit.Enabled())
	})
}

func (m *Model) setLimitInput(raw string) {
	prev := m.limit.State()
	m.limit = m.limit.WithInput(raw)
	m.logStateChange(prev)
	value, ok := m.limit.Value()
	if !ok {
		return
	}
	m.persist(store.KeyLimitValue, func(ctx context.Context) error {
		return m.prefs.Set(ctx, store.KeyLimitValue, strconv.Itoa(value))
	})
}

func (m *Model) switchFocus() tea.Cmd {
	if m.focus == focusText {
		m.focus = focusLimit
		m.input.Blur()
		return m.limitInput.Focus()
	}
	m.focus = focusText
	m.limitInput.Blur()
	return m.input.Focus()
}

func (m *Model) logStateChange(prev limit.State) {
	if next := m.limit.State(); next != prev {
		m.logger.Debug("limit state changed",
			zap.Stringer("from", prev),
			zap.Stringer("to", next))
	}
}

func (m *Model) persist(what string, save func(ctx context.Context) error) {
	if m.prefs == nil {
		return
	}
	if err := save(context.Background()); err != nil {
		m.logger.Warn("failed to save preference", zap.String("key", what), zap.Error(err))
	}
}

func (m *Model) resize() {
	contentWidth := m.width - sidePadding
	if contentWidth < 20 {
		contentWidth = 20
	}
	m.input.SetWidth(contentWidth)
	// Leave room for header, cards, options, density panel, and footer.
	inputHeight := m.height - 18
	if inputHeight < minInputHeight {
		inputHeight = minInputHeight
	}
	m.input.SetHeight(inputHeight)
	m.help.Width = contentWidth
}

// View implements tea.Model.
func (m *Model) View() string {
	sections := []string{
		m.renderHeader(),
		m.input.View(),
		m.renderCards(),
		m.renderOptions(),
		m.renderDensity(),
		m.renderFooter(),
	}
	body := lipgloss.JoinVertical(lipgloss.Left, sections...)
	if m.width == 0 {
		return body
	}
	return lipgloss.NewStyle().Padding(0, sidePadding/2).Render(body)
}

func (m *Model) renderHeader() string {
	return m.styles.title.Render("Character Counter") + "  " +
		m.styles.muted.Render(fmt.Sprintf("theme: %s", m.theme))
}

func (m *Model) renderCards() string {
	cards := []string{
		m.renderCard("Total Characters", metrics.PadCount(m.result.Characters)),
		m.renderCard("Word Count", metrics.PadCount(m.result.Words)),
		m.renderCard("Sentence Count", metrics.PadCount(m.result.Sentences)),
		m.renderCard("Reading Time", report.ReadingLabel(m.result.ReadingTime)),
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

func (m *Model) renderCard(title, value string) string {
	return m.styles.card.Render(m.styles.cardTitle.Render(title) + "\n" + m.styles.cardValue.Render(value))
}

func (m *Model) renderOptions() string {
	segments := []string{
		checkbox(m.opts.ExcludeSpaces) + " Exclude Spaces",
		checkbox(m.limit.Enabled()) + " Set Character Limit: " + m.limitInput.View(),
	}
	line := m.styles.option.Render(strings.Join(segments, "   "))
	switch m.limit.State() {
	case limit.EnabledUnset:
		line += "  " + m.styles.warn.Render("enter a positive whole number")
	case limit.EnabledSet:
		value, _ := m.limit.Value()
		if m.truncated {
			line += "  " + m.styles.warn.Render(fmt.Sprintf("Limit reached! Your text exceeds %d characters.", value))
		} else if remaining, ok := m.limit.Remaining(m.text); ok {
			line += "  " + m.styles.muted.Render(fmt.Sprintf("%d left", remaining))
		}
	}
	return line
}

func checkbox(on bool) string {
	if on {
		return "[x]"
	}
	return "[ ]"
}

func (m *Model) renderDensity() string {
	var b strings.Builder
	b.WriteString(m.styles.title.Render("Letter Density"))
	b.WriteString("\n")
	if len(m.result.Letters) == 0 {
		b.WriteString(m.styles.muted.Render(report.EmptyDensityMessage))
		return b.String()
	}
	barWidth := report.BarWidthFor(m.width)
	if barWidth > densityBarMax {
		barWidth = densityBarMax
	}
	for i, entry := range m.result.Letters {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(m.styles.letter.Render(string(entry.Letter)))
		b.WriteString(" ")
		b.WriteString(m.styles.bar.Render(report.DensityBar(entry.Percentage, barWidth)))
		b.WriteString(" ")
		b.WriteString(m.styles.muted.Render(report.DensityLabel(entry)))
	}
	if hidden := m.hiddenLetters(); hidden > 0 {
		b.WriteString("\n")
		b.WriteString(m.styles.muted.Render(fmt.Sprintf("See more (%d)", hidden)))
	} else if m.opts.AllLetters && len(m.result.Letters) > metrics.DensityTop {
		b.WriteString("\n")
		b.WriteString(m.styles.muted.Render("See less"))
	}
	return b.String()
}

// hiddenLetters counts distinct letters not shown in top-N mode.
func (m *Model) hiddenLetters() int {
	if m.opts.AllLetters {
		return 0
	}
	all, _ := metrics.LetterDistribution(m.text, m.opts.Scope)
	return len(all) - len(m.result.Letters)
}

func (m *Model) renderFooter() string {
	return m.help.View(m.keys)
}
