package extractor

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"  Big   news\n today  ", "Big news today"},
		{"\tTabs\tand\r\nnewlines\n", "Tabs and newlines"},
		{"Tram\u00a0line\u00a0extended", "Tram line extended"},
		{"already clean", "already clean"},
		{"   ", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.text))
		})
	}
}

func TestVisibleText(t *testing.T) {
	tests := []struct {
		name string
		html string
		want string
	}{
		{
			name: "nested inline elements",
			html: `<h2><span>Breaking:</span> <a href="#">Flood warning</a></h2>`,
			want: "Breaking:Flood warning",
		},
		{
			name: "script and style skipped",
			html: `<h2>Visible<script>var x = 1;</script><style>h2{}</style> title</h2>`,
			want: "Visibletitle",
		},
		{
			name: "text nodes trimmed before joining",
			html: "<h2>\n  Hello <b> big </b> world today\n</h2>",
			want: "Hellobigworld today",
		},
		{
			name: "noscript text kept",
			html: `<h2>Live<noscript>ticker</noscript></h2>`,
			want: "Liveticker",
		},
		{
			name: "comments skipped",
			html: `<h2>Before<!-- hidden --> after</h2>`,
			want: "Beforeafter",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := goquery.NewDocumentFromReader(strings.NewReader(tt.html))
			require.NoError(t, err)

			assert.Equal(t, tt.want, visibleText(doc.Find("h2")))
		})
	}
}
