package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractTitle(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		want    string
		wantErr bool
	}{
		{name: "simple", doc: "# Title\n\nSome **bold** and *italic* text.", want: "Title"},
		{name: "surrounding whitespace", doc: "\n\n  #   Hello World  \nbody", want: "Hello World"},
		{name: "tab after marker", doc: "#\tTabbed\n\nbody", want: "Tabbed"},
		{name: "crlf", doc: "# Windows\r\n\r\nbody", want: "Windows"},
		{name: "level 2", doc: "## Not a title", wantErr: true},
		{name: "no space", doc: "#Title", wantErr: true},
		{name: "heading not first", doc: "intro\n\n# Title", wantErr: true},
		{name: "empty heading", doc: "#   \nbody", wantErr: true},
		{name: "empty document", doc: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractTitle(tt.doc)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrMissingTitle)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractTitleAgreesWithHeadings(t *testing.T) {
	for _, doc := range []string{"# Spaced", "#\tTabbed", "#  \t Mixed"} {
		title, err := ExtractTitle(doc)
		require.NoError(t, err, doc)

		html, err := ToHTML(doc)
		require.NoError(t, err, doc)
		assert.Equal(t, "<div><h1>"+title+"</h1></div>", html)
	}
}
