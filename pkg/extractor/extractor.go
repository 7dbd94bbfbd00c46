package extractor

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/rs/zerolog/log"
	"github.com/xhad/headlines/internal/models"
)

// DefaultMinLength drops navigation noise such as "Home" or "SZ Plus".
const DefaultMinLength = 8

// DefaultSelectors are tried in order. A headline keeps the position of the
// first selector that matched it.
var DefaultSelectors = []string{
	"h2",
	"h3",
	"article h2",
	"article h3",
	".teaser__title",
	".headline",
	"[data-testid=headline]",
}

// ExtractorConfig controls which elements are read and how short a headline
// may be. Zero values fall back to DefaultSelectors and DefaultMinLength.
type ExtractorConfig struct {
	Selectors []string
	MinLength int // in runes
}

// Extractor pulls headline text out of an HTML document.
type Extractor struct {
	config   ExtractorConfig
	matchers []goquery.Matcher
}

// NewWithConfig compiles every selector up front and fails on the first one
// that does not parse.
func NewWithConfig(config ExtractorConfig) (*Extractor, error) {
	if len(config.Selectors) == 0 {
		config.Selectors = DefaultSelectors
	}
	if config.MinLength == 0 {
		config.MinLength = DefaultMinLength
	}
	if config.MinLength < 0 {
		return nil, fmt.Errorf("min length must not be negative, got %d", config.MinLength)
	}

	matchers := make([]goquery.Matcher, 0, len(config.Selectors))
	for _, selector := range config.Selectors {
		compiled, err := cascadia.Compile(selector)
		if err != nil {
			return nil, fmt.Errorf("invalid selector %q: %w", selector, err)
		}
		matchers = append(matchers, compiled)
	}

	return &Extractor{
		config:   config,
		matchers: matchers,
	}, nil
}

// New returns an Extractor with the default selectors and minimum length.
func New() *Extractor {
	e, _ := NewWithConfig(ExtractorConfig{})
	return e
}

// Selectors returns a copy of the selectors in the order they are applied.
func (e *Extractor) Selectors() []string {
	return append([]string(nil), e.config.Selectors...)
}

// Extract returns the unique headlines in html. Malformed or empty input
// yields an empty slice, never an error.
func (e *Extractor) Extract(html string) []string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		log.Warn().Err(err).Msg("failed to parse HTML")
		return []string{}
	}

	headlines := models.NewHeadlineSet()
	for i, matcher := range e.matchers {
		matched, kept := 0, 0
		doc.FindMatcher(matcher).Each(func(_ int, selection *goquery.Selection) {
			matched++
			if e.keep(headlines, Normalize(visibleText(selection))) {
				kept++
			}
		})

		log.Debug().
			Str("selector", e.config.Selectors[i]).
			Int("matched", matched).
			Int("kept", kept).
			Msg("applied selector")
	}

	log.Debug().Int("headlines", headlines.Len()).Msg("extraction finished")
	return headlines.Items()
}

func (e *Extractor) keep(headlines *models.HeadlineSet, text string) bool {
	if utf8.RuneCountInString(text) < e.config.MinLength {
		return false
	}
	return headlines.Add(text)
}
