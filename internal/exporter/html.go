package exporter

import (
	"fmt"
	"html"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/nikbrunner/bmlite/internal/model"
)

// DefaultExportPath returns the default export file path.
// Format: ~/Downloads/bmlite-export-YYYY-MM-DD.html
func DefaultExportPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	filename := fmt.Sprintf("bmlite-export-%s.html", time.Now().Format("2006-01-02"))
	return filepath.Join(home, "Downloads", filename), nil
}

// ExportHTML exports the collection to Netscape bookmark HTML format,
// one flat list in collection order.
func ExportHTML(c model.Collection) string {
	var b strings.Builder

	// Header
	b.WriteString("<!DOCTYPE NETSCAPE-Bookmark-file-1>\n")
	b.WriteString("<META HTTP-EQUIV=\"Content-Type\" CONTENT=\"text/html; charset=UTF-8\">\n")
	b.WriteString("<TITLE>Bookmarks</TITLE>\n")
	b.WriteString("<H1>Bookmarks</H1>\n")
	b.WriteString("<DL><p>\n")

	for _, bookmark := range c {
		fmt.Fprintf(&b,
			"    <DT><A HREF=\"%s\">%s</A>\n",
			html.EscapeString(bookmark.URL),
			html.EscapeString(bookmark.Title),
		)
	}

	// Footer
	b.WriteString("</DL><p>\n")

	return b.String()
}

// WriteFile exports c to path, creating parent directories.
func WriteFile(path string, c model.Collection) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(ExportHTML(c)), 0644)
}
