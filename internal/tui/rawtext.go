package tui

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// span ties one entered rune to the runes the textarea shows for it.
type span struct {
	raw   rune
	shown []rune
}

// rawText keeps the text exactly as entered. The textarea rewrites input on
// the way in (tabs become four spaces, carriage returns become newlines,
// control runes are dropped), so its Value is not what the user pasted.
type rawText struct {
	spans []span
}

// shownRunes mirrors the textarea input sanitizer for a single rune.
func shownRunes(r rune) []rune {
	switch {
	case r == utf8.RuneError:
		return nil
	case r == '\r' || r == '\n':
		return []rune{'\n'}
	case r == '\t':
		return []rune("    ")
	case unicode.IsControl(r):
		return nil
	default:
		return []rune{r}
	}
}

func spansFor(text []rune) []span {
	out := make([]span, 0, len(text))
	for _, r := range text {
		out = append(out, span{raw: r, shown: shownRunes(r)})
	}
	return out
}

func literalSpans(shown []rune) []span {
	out := make([]span, 0, len(shown))
	for _, r := range shown {
		out = append(out, span{raw: r, shown: []rune{r}})
	}
	return out
}

func newRawText(text string) rawText {
	return rawText{spans: spansFor([]rune(text))}
}

func (t rawText) String() string {
	var b strings.Builder
	for _, s := range t.spans {
		b.WriteRune(s.raw)
	}
	return b.String()
}

func (t rawText) shown() []rune {
	var out []rune
	for _, s := range t.spans {
		out = append(out, s.shown...)
	}
	return out
}

// sync applies the change the textarea made from before to after. typed holds
// the runes of the key message that caused it, if any; when they account for
// the change they are recorded verbatim, otherwise the shown runes are.
func (t *rawText) sync(before, after, typed []rune) {
	if !runesEqual(t.shown(), before) {
		t.spans = literalSpans(before)
	}
	p := commonPrefix(before, after)
	q := commonSuffix(before[p:], after[p:])
	from, to := p, len(before)-q
	repl := literalSpans(after[p : len(after)-q])
	if len(typed) > 0 {
		entered := spansFor(typed)
		if k, ok := insertionPoint(before, after, flatten(entered), p); ok {
			from, to, repl = k, k, entered
		}
	}
	t.edit(from, to, repl)
}

// edit replaces the spans covering shown[from:to] with repl. Spans only
// partly inside the range are split, and their shown runes outside it are
// kept as literal runes.
func (t *rawText) edit(from, to int, repl []span) {
	old := t.shown()
	lo, loStart := len(t.spans), len(old)
	offset := 0
	for i, s := range t.spans {
		if offset+len(s.shown) > from {
			lo, loStart = i, offset
			break
		}
		offset += len(s.shown)
	}
	hi, hiStart := lo, loStart
	for hi < len(t.spans) && hiStart < to {
		hiStart += len(t.spans[hi].shown)
		hi++
	}

	next := make([]span, 0, len(t.spans)+len(repl))
	next = append(next, t.spans[:lo]...)
	next = append(next, literalSpans(old[loStart:from])...)
	next = append(next, repl...)
	if to < hiStart {
		next = append(next, literalSpans(old[to:hiStart])...)
	}
	next = append(next, t.spans[hi:]...)
	t.spans = next
}

// insertionPoint finds k such that after is before with shown inserted at k.
// The common prefix p bounds k from above.
func insertionPoint(before, after, shown []rune, p int) (int, bool) {
	if len(shown) == 0 || len(after)-len(before) != len(shown) {
		return 0, false
	}
	for k := p; k >= 0 && k >= p-len(shown); k-- {
		if runesEqual(after[:k], before[:k]) &&
			runesEqual(after[k:k+len(shown)], shown) &&
			runesEqual(after[k+len(shown):], before[k:]) {
			return k, true
		}
	}
	return 0, false
}

func flatten(spans []span) []rune {
	var out []rune
	for _, s := range spans {
		out = append(out, s.shown...)
	}
	return out
}

func commonPrefix(a, b []rune) int {
	n := 0
	for n < len(a) && n < len(b) && a[n] == b[n] {
		n++
	}
	return n
}

func commonSuffix(a, b []rune) int {
	n := 0
	for n < len(a) && n < len(b) && a[len(a)-1-n] == b[len(b)-1-n] {
		n++
	}
	return n
}

func runesEqual(a, b []rune) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
