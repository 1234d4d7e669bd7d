package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/verte-zerg/charcount/internal/metrics"
)

// Format is an output format for the analyze command.
type Format string

// Supported formats.
const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat parses text, json, or yaml.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	case "":
		return FormatText, nil
	default:
		return "", fmt.Errorf("unknown format %q (expected text, json, or yaml)", s)
	}
}

// Document is the machine-readable form of a metrics result.
type Document struct {
	Characters  int           `json:"characters" yaml:"characters"`
	Words       int           `json:"words" yaml:"words"`
	Sentences   int           `json:"sentences" yaml:"sentences"`
	ReadingTime ReadingDoc    `json:"reading_time" yaml:"reading_time"`
	LetterTotal int           `json:"letter_total" yaml:"letter_total"`
	Letters     []LetterEntry `json:"letters" yaml:"letters"`
	Truncated   bool          `json:"truncated,omitempty" yaml:"truncated,omitempty"`
}

// ReadingDoc mirrors metrics.ReadingTime.
type ReadingDoc struct {
	Minutes int    `json:"minutes" yaml:"minutes"`
	Display string `json:"display" yaml:"display"`
}

// LetterEntry is one letter of the distribution. Percentage is rounded to
// two decimals.
type LetterEntry struct {
	Letter     string  `json:"letter" yaml:"letter"`
	Count      int     `json:"count" yaml:"count"`
	Percentage float64 `json:"percentage" yaml:"percentage"`
}

// NewDocument converts a result for encoding.
func NewDocument(res metrics.Result, truncated bool) Document {
	doc := Document{
		Characters: res.Characters,
		Words:      res.Words,
		Sentences:  res.Sentences,
		ReadingTime: ReadingDoc{
			Minutes: res.ReadingTime.Minutes,
			Display: res.ReadingTime.Display,
		},
		LetterTotal: res.LetterTotal,
		Letters:     make([]LetterEntry, 0, len(res.Letters)),
		Truncated:   truncated,
	}
	for _, entry := range res.Letters {
		doc.Letters = append(doc.Letters, LetterEntry{
			Letter:     string(entry.Letter),
			Count:      entry.Count,
			Percentage: roundPercent(entry.Percentage),
		})
	}
	return doc
}

// Encode writes doc as JSON or YAML.
func Encode(w io.Writer, doc Document, format Format) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("format %q is not a structured format", format)
	}
}

func roundPercent(p float64) float64 {
	v, err := strconv.ParseFloat(metrics.FormatPercent(p), 64)
	if err != nil {
		return p
	}
	return v
}
