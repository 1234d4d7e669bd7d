package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"

	"github.com/verte-zerg/charcount/internal/metrics"
)

func TestRenderTextSummary(t *testing.T) {
	res := metrics.Analyze("aabbbcc. Next one", metrics.Options{})
	var buf bytes.Buffer
	if err := RenderText(&buf, res, TextOptions{Width: 40}); err != nil {
		t.Fatalf("render: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		"Summary",
		"Characters          17",
		"Words               03",
		"Sentences           01",
		"Reading time  1 minute",
		"Letter Density (14 letters)",
		"3 (21.43%)",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "\x1b[") {
		t.Fatalf("expected no color codes without Color option")
	}
}

func TestRenderDensityEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderDensity(&buf, nil, 0, TextOptions{}); err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(buf.String(), EmptyDensityMessage) {
		t.Fatalf("expected empty message, got %q", buf.String())
	}
}

func TestRenderDensityColor(t *testing.T) {
	letters := metrics.LetterDensity("ab", metrics.ScopeASCII)
	var buf bytes.Buffer
	if err := RenderDensity(&buf, letters, 2, TextOptions{Color: true}); err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(buf.String(), barColor) {
		t.Fatalf("expected colored bars")
	}
}

func TestDensityBar(t *testing.T) {
	cases := []struct {
		pct   float64
		width int
		want  string
	}{
		{0, 4, "░░░░"},
		{50, 4, "██░░"},
		{100, 4, "████"},
		{120, 2, "██"},
		{50, 0, ""},
	}
	for _, c := range cases {
		if got := DensityBar(c.pct, c.width); got != c.want {
			t.Fatalf("DensityBar(%v, %d) = %q, want %q", c.pct, c.width, got, c.want)
		}
	}
}

func TestBarWidthFor(t *testing.T) {
	if got := BarWidthFor(0); got != maxBarWidth {
		t.Fatalf("fallback width should clamp to %d, got %d", maxBarWidth, got)
	}
	if got := BarWidthFor(12); got != minBarWidth {
		t.Fatalf("narrow terminal should clamp to %d, got %d", minBarWidth, got)
	}
	if got := BarWidthFor(60); got != 30 {
		t.Fatalf("expected half the width, got %d", got)
	}
}

func TestReadingLabel(t *testing.T) {
	cases := map[string]metrics.ReadingTime{
		"0 minutes":  {Minutes: 0, Display: "0"},
		"< 1 minute": {Minutes: 0, Display: "< 1"},
		"1 minute":   {Minutes: 1, Display: "1"},
		"3 minutes":  {Minutes: 3, Display: "3"},
	}
	for want, rt := range cases {
		if got := ReadingLabel(rt); got != want {
			t.Fatalf("ReadingLabel(%+v) = %q, want %q", rt, got, want)
		}
	}
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{"": FormatText, "JSON": FormatJSON, "yaml": FormatYAML} {
		got, err := ParseFormat(in)
		if err != nil || got != want {
			t.Fatalf("ParseFormat(%q) = %q, %v", in, got, err)
		}
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Fatalf("expected error for xml")
	}
}

func TestEncodeJSON(t *testing.T) {
	doc := NewDocument(metrics.Analyze("aabbbcc", metrics.Options{}), false)
	var buf bytes.Buffer
	if err := Encode(&buf, doc, FormatJSON); err != nil {
		t.Fatalf("encode: %v", err)
	}
	var got Document
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	want := []LetterEntry{
		{Letter: "B", Count: 3, Percentage: 42.86},
		{Letter: "A", Count: 2, Percentage: 28.57},
		{Letter: "C", Count: 2, Percentage: 28.57},
	}
	if diff := cmp.Diff(want, got.Letters); diff != "" {
		t.Fatalf("unexpected letters (-want +got):\n%s", diff)
	}
	if got.Sentences != 1 || got.ReadingTime.Display != "1" {
		t.Fatalf("unexpected document: %+v", got)
	}
	if strings.Contains(buf.String(), "truncated") {
		t.Fatalf("truncated should be omitted when false")
	}
}

func TestEncodeYAML(t *testing.T) {
	doc := NewDocument(metrics.Analyze("", metrics.Options{}), true)
	var buf bytes.Buffer
	if err := Encode(&buf, doc, FormatYAML); err != nil {
		t.Fatalf("encode: %v", err)
	}
	var got map[string]any
	if err := yaml.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got["characters"] != 0 || got["truncated"] != true {
		t.Fatalf("unexpected yaml document: %v", got)
	}
	if !strings.Contains(buf.String(), "letters: []") {
		t.Fatalf("expected empty letter list, got:\n%s", buf.String())
	}
}

func TestEncodeRejectsText(t *testing.T) {
	if err := Encode(&bytes.Buffer{}, Document{}, FormatText); err == nil {
		t.Fatalf("expected error for text format")
	}
}
