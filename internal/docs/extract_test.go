package docs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestExtractTextPlain(t *testing.T) {
	path := writeFile(t, "note.txt", "  plain text body\n")
	out, err := ExtractText(path)
	require.NoError(t, err)
	assert.Equal(t, "plain text body", out)
}

func TestExtractTextHTMLStripsMarkup(t *testing.T) {
	html := `<html><head><style>body{color:red}</style>
<script>alert("no")</script></head>
<body><h1>Dengue</h1>
<p>Avoid   mosquito
bites.</p>
<noscript>enable js</noscript></body></html>`
	path := writeFile(t, "page.html", html)

	out, err := ExtractText(path)
	require.NoError(t, err)

	assert.Equal(t, "Dengue Avoid mosquito bites.", out)
	assert.NotContains(t, out, "alert")
	assert.NotContains(t, out, "color:red")
	assert.NotContains(t, out, "enable js")
}

func TestExtractTextUnsupportedTypeIsEmpty(t *testing.T) {
	path := writeFile(t, "scan.pdf", "%PDF-1.4 binary")
	out, err := ExtractText(path)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestExtractTextMissingFile(t *testing.T) {
	_, err := ExtractText(filepath.Join(t.TempDir(), "gone.md"))
	assert.Error(t, err)
}
