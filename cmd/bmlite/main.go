package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/log"
	"github.com/skratchdot/open-golang/open"
	"golang.org/x/term"

	"github.com/nikbrunner/bmlite/internal/command"
	"github.com/nikbrunner/bmlite/internal/config"
	"github.com/nikbrunner/bmlite/internal/exporter"
	"github.com/nikbrunner/bmlite/internal/importer"
	"github.com/nikbrunner/bmlite/internal/logging"
	"github.com/nikbrunner/bmlite/internal/model"
	"github.com/nikbrunner/bmlite/internal/picker"
	"github.com/nikbrunner/bmlite/internal/search"
	"github.com/nikbrunner/bmlite/internal/storage"
	"github.com/nikbrunner/bmlite/internal/tui"
)

func main() {
	if len(os.Args) >= 2 {
		switch os.Args[1] {
		case "help", "--help", "-h":
			printHelp()
			return
		case "import":
			if len(os.Args) < 3 {
				fmt.Fprintf(os.Stderr, "Usage: bmlite import <file.html>\n")
				os.Exit(1)
			}
			runImport(os.Args[2])
			return
		case "export":
			// Export with optional path
			var outputPath string
			if len(os.Args) >= 3 {
				outputPath = os.Args[2]
			}
			runExport(outputPath)
			return
		default:
			// Treat as search query (join all remaining args)
			query := strings.Join(os.Args[1:], " ")
			runQuickSearch(query)
			return
		}
	}

	// No args - run full TUI
	runTUI()
}

const helpText = `# bmlite

A small bookmark manager: add, edit, delete, search.

## Usage

    bmlite                 Open interactive TUI
    bmlite <query>         Quick search, select, open
    bmlite import <file>   Import bookmarks from Netscape HTML
    bmlite export [path]   Export bookmarks to Netscape HTML
    bmlite help            Show this help

## Keys

| Key | Action |
|-----|--------|
| j/k, gg/G | Move, jump to top/bottom |
| Enter, o | Open in browser |
| y | Copy URL |
| / | Search titles (Ctrl+l clears) |
| Tab / Shift+Tab | Cycle list, search, URL, title |
| a | Add bookmark |
| e | Edit (Ctrl+d inside deletes) |
| d | Delete, with confirmation |
| Esc | Cancel, close |
| q | Quit |

## Configuration

~/.config/bmlite/config.yaml, plus an optional .env beside it.
Environment overrides: BMLITE_BACKEND (file, sqlite, postgres, memory),
BMLITE_DATA, BMLITE_DSN, BMLITE_KEY, BMLITE_DEBUG.
`

func printHelp() {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Print(helpText)
		return
	}

	width := 80
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 && w < width {
		width = w
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		fmt.Print(helpText)
		return
	}
	out, err := r.Render(helpText)
	if err != nil {
		fmt.Print(helpText)
		return
	}
	fmt.Print(out)
}

// app holds what every subcommand needs: config, logger and storage.
type app struct {
	cfg     config.Config
	logger  *log.Logger
	store   *storage.Adapter
	handler *command.Handler
	closers []io.Closer
}

// setup loads config, opens the log file and the configured storage.
// Exits on failure.
func setup() *app {
	cfg, err := config.Load()
	if err != nil {
		// Non-fatal: defaults are still usable
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	logger, logCloser, err := logging.New(logging.Params{
		Path:  cfg.ResolveLogFile(),
		Debug: cfg.Debug,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening log file: %v\n", err)
		os.Exit(1)
	}

	dataPath, err := cfg.ResolveDataPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error getting data path: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(storage.OpenParams{
		Backend: cfg.Backend,
		Path:    dataPath,
		DSN:     cfg.DSN,
		Key:     cfg.StorageKey,
		Logger:  logger,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening storage: %v\n", err)
		os.Exit(1)
	}

	return &app{
		cfg:     cfg,
		logger:  logger,
		store:   store,
		handler: command.NewHandler(command.HandlerParams{Storage: store, Logger: logger}),
		closers: []io.Closer{store, logCloser},
	}
}

func (a *app) close() {
	for _, c := range a.closers {
		if err := c.Close(); err != nil {
			a.logger.Warn("close failed", "err", err)
		}
	}
}

// load reads the collection or exits.
func (a *app) load() model.Collection {
	c, err := a.handler.List()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading bookmarks: %v\n", err)
		a.close()
		os.Exit(1)
	}
	return c
}

// runTUI runs the full interactive TUI.
func runTUI() {
	a := setup()
	defer a.close()

	var changes <-chan struct{}
	if paths := a.store.WatchPaths(); a.cfg.Watch && len(paths) > 0 {
		watcher, err := storage.NewWatcher(storage.WatcherParams{Paths: paths, Logger: a.logger})
		if err != nil {
			// Non-fatal: the TUI works without live reload
			a.logger.Warn("watch disabled", "err", err)
		} else {
			a.closers = append([]io.Closer{watcher}, a.closers...)
			changes = watcher.Changes()
		}
	}

	m := tui.NewApp(tui.AppParams{
		Handler:          a.handler,
		Bookmarks:        a.load(),
		Changes:          changes,
		Logger:           a.logger,
		FeedbackDuration: a.cfg.FeedbackDuration,
		NativeValidation: a.cfg.NativeValidation,
	})

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running app: %v\n", err)
		a.close()
		os.Exit(1)
	}
}

// runQuickSearch performs a fuzzy search and opens the selected bookmark.
func runQuickSearch(query string) {
	a := setup()
	defer a.close()

	results := search.Fuzzy(query, a.load())

	if len(results) == 0 {
		fmt.Printf("No bookmarks found for '%s'\n", query)
		return
	}

	selected := results[0].Bookmark
	action := picker.ActionOpen

	if len(results) == 1 {
		// Single result - select it directly
		fmt.Printf("Opening: %s\n", selected.Title)
	} else {
		// Multiple results - show picker
		program := tea.NewProgram(picker.New(results, query, picker.Params{}))
		finalModel, err := program.Run()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running picker: %v\n", err)
			a.close()
			os.Exit(1)
		}

		var ok bool
		selected, action, ok = finalModel.(picker.Picker).Selected()
		if !ok {
			return
		}
	}

	switch action {
	case picker.ActionYank:
		if err := clipboard.WriteAll(selected.URL); err != nil {
			fmt.Fprintf(os.Stderr, "Error copying URL: %v\n", err)
			return
		}
		fmt.Printf("Copied: %s\n", selected.URL)
	default:
		if err := open.Run(selected.URL); err != nil {
			fmt.Fprintf(os.Stderr, "Error opening URL: %v\n", err)
		}
	}
}

// runImport handles the import subcommand.
func runImport(filePath string) {
	file, err := os.Open(filePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening file: %v\n", err)
		os.Exit(1)
	}
	defer file.Close()

	bookmarks, err := importer.ParseHTMLBookmarks(file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing HTML: %v\n", err)
		os.Exit(1)
	}

	a := setup()
	defer a.close()

	res, err := a.handler.Import(bookmarks)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error saving bookmarks: %v\n", err)
		a.close()
		os.Exit(1)
	}

	fmt.Printf("Imported %d bookmarks", res.Added)
	if res.Skipped > 0 {
		fmt.Printf(" (%d duplicates skipped)", res.Skipped)
	}
	if res.Invalid > 0 {
		fmt.Printf(" (%d invalid skipped)", res.Invalid)
	}
	fmt.Println()
}

// runExport handles the export subcommand.
func runExport(outputPath string) {
	// Determine output path
	if outputPath == "" {
		var err error
		outputPath, err = exporter.DefaultExportPath()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting default export path: %v\n", err)
			os.Exit(1)
		}
	}

	a := setup()
	defer a.close()

	c := a.load()
	if err := exporter.WriteFile(outputPath, c); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing file: %v\n", err)
		a.close()
		os.Exit(1)
	}

	fmt.Printf("Exported %d bookmarks to %s\n", len(c), outputPath)
}
