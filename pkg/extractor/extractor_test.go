package extractor_test

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xhad/headlines/pkg/extractor"
)

const homepage = `
<html>
	<head><title>SZ.de</title></head>
	<body>
		<nav><h2>Home</h2><h2>SZ Plus</h2></nav>
		<main>
			<article>
				<h2>Stadtrat beschließt neuen Haushalt</h2>
				<h3 class="teaser__title">Mieten in München steigen weiter</h3>
			</article>
			<article>
				<h3>  Wiesn 2024:
					Alle Termine im Überblick  </h3>
			</article>
			<div class="teaser__title">Neue Tramlinie durch die Innenstadt</div>
			<div class="headline">Stadtrat beschließt neuen Haushalt</div>
			<span data-testid="headline">FC Bayern gewinnt Topspiel</span>
			<h2>Stadtrat beschließt neuen Haushalt</h2>
		</main>
	</body>
</html>`

func TestExtract(t *testing.T) {
	e := extractor.New()

	got := e.Extract(homepage)

	assert.Equal(t, []string{
		"Stadtrat beschließt neuen Haushalt",
		"Mieten in München steigen weiter",
		"Wiesn 2024: Alle Termine im Überblick",
		"Neue Tramlinie durch die Innenstadt",
		"FC Bayern gewinnt Topspiel",
	}, got)
}

func TestExtractCases(t *testing.T) {
	tests := []struct {
		name string
		html string
		want []string
	}{
		{
			name: "short strings filtered",
			html: `<h2>Short</h2><h2>This headline is long enough</h2>`,
			want: []string{"This headline is long enough"},
		},
		{
			name: "duplicate kept at first match",
			html: `<div class="headline">Same text in two places</div><h2>Same text in two places</h2>`,
			want: []string{"Same text in two places"},
		},
		{
			name: "selector order wins over document order",
			html: `<div class="headline">Matched only by class</div><h3>Third level comes later</h3><h2>Second level heading</h2>`,
			want: []string{"Second level heading", "Third level comes later", "Matched only by class"},
		},
		{
			name: "whitespace normalized",
			html: "<h2>  Big   news\n today  </h2>",
			want: []string{"Big news today"},
		},
		{
			name: "inline children joined without separator",
			html: `<h2>Hello <b>big</b> world today</h2><h2><span>Breaking:</span> <a href="#">Flood warning</a></h2>`,
			want: []string{"Hellobigworld today", "Breaking:Flood warning"},
		},
		{
			name: "joined text is the dedup key",
			html: `<h2>Ring <b>frei</b></h2><div class="headline">Ringfrei</div><div class="headline">Ring frei</div>`,
			want: []string{"Ringfrei", "Ring frei"},
		},
		{
			name: "joined text is measured for length",
			html: `<h2>Ab <i>in</i> See</h2>`,
			want: []string{},
		},
		{
			name: "exactly eight characters kept",
			html: `<h2>12345678</h2><h2>1234567</h2>`,
			want: []string{"12345678"},
		},
		{
			name: "length counted in runes",
			html: `<h2>Größe 1</h2><h2>Ümläüte!</h2>`,
			want: []string{"Ümläüte!"},
		},
		{
			name: "data-testid attribute",
			html: `<span data-testid="headline">Headline from test id</span><span data-testid="other">Not a headline at all</span>`,
			want: []string{"Headline from test id"},
		},
		{
			name: "script content ignored",
			html: `<h2><script>trackImpression("x")</script>Short</h2>`,
			want: []string{},
		},
		{
			name: "empty document",
			html: ``,
			want: []string{},
		},
		{
			name: "no headlines",
			html: `<html><body><p>Just a paragraph of text here.</p></body></html>`,
			want: []string{},
		},
		{
			name: "malformed markup",
			html: `<h2>Unclosed headline tag here</span></div><p>`,
			want: []string{"Unclosed headline tag here"},
		},
	}

	e := extractor.New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, e.Extract(tt.html))
		})
	}
}

func TestExtractInvariants(t *testing.T) {
	e := extractor.New()

	first := e.Extract(homepage)
	second := e.Extract(homepage)
	assert.Equal(t, first, second)

	seen := make(map[string]bool)
	for _, h := range first {
		assert.False(t, seen[h], "duplicate headline %q", h)
		seen[h] = true
		assert.GreaterOrEqual(t, utf8.RuneCountInString(h), extractor.DefaultMinLength)
		assert.Equal(t, extractor.Normalize(h), h)
	}
}

func TestExtractorConfig(t *testing.T) {
	e, err := extractor.NewWithConfig(extractor.ExtractorConfig{})
	require.NoError(t, err)
	assert.Equal(t, extractor.DefaultSelectors, e.Selectors())

	e, err = extractor.NewWithConfig(extractor.ExtractorConfig{
		Selectors: []string{"p.lead", "h1"},
		MinLength: 3,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Top", "Lead"}, e.Extract(`<h1>Lead</h1><p class="lead">Top</p><p>No</p>`))

	_, err = extractor.NewWithConfig(extractor.ExtractorConfig{Selectors: []string{"h2["}})
	assert.Error(t, err)

	_, err = extractor.NewWithConfig(extractor.ExtractorConfig{MinLength: -1})
	assert.Error(t, err)
}
