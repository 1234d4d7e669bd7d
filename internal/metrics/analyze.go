package metrics

// Options controls Analyze.
type Options struct {
	ExcludeSpaces  bool
	WordsPerMinute int
	Scope          LetterScope
	// AllLetters keeps the full distribution instead of the top DensityTop.
	AllLetters bool
}

// Result holds every metric for one text sample.
type Result struct {
	Characters  int
	Words       int
	Sentences   int
	ReadingTime ReadingTime
	Letters     []LetterFrequency
	LetterTotal int
}

// Analyze computes all metrics for text. Each metric is evaluated
// independently; the result depends only on text and opts.
func Analyze(text string, opts Options) Result {
	letters, total := LetterDistribution(text, opts.Scope)
	if !opts.AllLetters && len(letters) > DensityTop {
		letters = letters[:DensityTop]
	}
	return Result{
		Characters:  CountCharacters(text, opts.ExcludeSpaces),
		Words:       CountWords(text),
		Sentences:   CountSentences(text),
		ReadingTime: EstimateReadingTime(text, opts.WordsPerMinute),
		Letters:     letters,
		LetterTotal: total,
	}
}
