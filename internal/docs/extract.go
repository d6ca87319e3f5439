package docs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ExtractText pulls indexable plain text out of an uploaded file. Plain text
// and markdown are read as-is; HTML is stripped of markup. PDF and image
// files need external extraction (the uploader indexes a pre-extracted .txt
// sidecar when one exists), so they yield an empty string here rather than
// an error.
func ExtractText(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt", ".md":
		raw, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("read file: %w", err)
		}
		return strings.TrimSpace(string(raw)), nil

	case ".html", ".htm":
		f, err := os.Open(path)
		if err != nil {
			return "", fmt.Errorf("open file: %w", err)
		}
		defer f.Close()

		doc, err := goquery.NewDocumentFromReader(f)
		if err != nil {
			return "", fmt.Errorf("parse html: %w", err)
		}
		doc.Find("script, style, noscript").Remove()
		return strings.TrimSpace(collapseWhitespace(doc.Text())), nil

	default:
		return "", nil
	}
}

func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
