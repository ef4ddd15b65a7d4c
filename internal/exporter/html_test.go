package exporter

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nikbrunner/bmlite/internal/importer"
	"github.com/nikbrunner/bmlite/internal/model"
)

func TestExportHTML_Empty(t *testing.T) {
	html := ExportHTML(model.Collection{})

	// Should have basic structure even when empty
	if !strings.Contains(html, "<!DOCTYPE NETSCAPE-Bookmark-file-1>") {
		t.Error("expected DOCTYPE declaration")
	}
	if !strings.Contains(html, "<TITLE>Bookmarks</TITLE>") {
		t.Error("expected TITLE element")
	}
	if !strings.Contains(html, "<H1>Bookmarks</H1>") {
		t.Error("expected H1 element")
	}
	if strings.Contains(html, "<A ") {
		t.Error("expected no links")
	}
}

func TestExportHTML_SingleBookmark(t *testing.T) {
	html := ExportHTML(model.Collection{
		{ID: "b1", Title: "GitHub", URL: "https://github.com"},
	})

	if !strings.Contains(html, `<A HREF="https://github.com"`) {
		t.Error("expected bookmark URL")
	}
	if !strings.Contains(html, "GitHub</A>") {
		t.Error("expected bookmark title")
	}
}

func TestExportHTML_EscapesSpecialCharacters(t *testing.T) {
	html := ExportHTML(model.Collection{
		{Title: `Tom & Jerry's <Show>`, URL: `https://example.com/?a=1&b="2"`},
	})

	if !strings.Contains(html, "Tom &amp; Jerry&#39;s &lt;Show&gt;") {
		t.Errorf("expected escaped title, got:\n%s", html)
	}
	if !strings.Contains(html, "https://example.com/?a=1&amp;b=&#34;2&#34;") {
		t.Errorf("expected escaped URL, got:\n%s", html)
	}
}

func TestExportHTML_KeepsOrder(t *testing.T) {
	html := ExportHTML(model.Seed())

	mdn := strings.Index(html, "MDN Web Docs")
	caniuse := strings.Index(html, "Can I use")
	golang := strings.Index(html, "Go Documentation")
	if !(mdn >= 0 && mdn < caniuse && caniuse < golang) {
		t.Errorf("expected collection order, got:\n%s", html)
	}
}

func TestExportHTML_ImportRoundTrip(t *testing.T) {
	c := model.Collection{
		{Title: "Tom & Jerry", URL: "https://example.com/?a=1&b=2"},
		{Title: "Go", URL: "https://go.dev"},
	}

	back, err := importer.ParseHTMLBookmarks(strings.NewReader(ExportHTML(c)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(back) != len(c) {
		t.Fatalf("expected %d bookmarks, got %d", len(c), len(back))
	}
	for i := range c {
		if back[i].URL != c[i].URL || back[i].Title != c[i].Title {
			t.Errorf("bookmark %d: expected %+v, got %+v", i, c[i], back[i])
		}
	}
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "out.html")
	if err := WriteFile(path, model.Seed()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(string(data), "Can I use") {
		t.Error("expected exported bookmark in file")
	}
}
