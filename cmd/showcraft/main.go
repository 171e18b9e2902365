package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"golang.org/x/term"

	"github.com/mmcdole/showcraft/internal/config"
	"github.com/mmcdole/showcraft/internal/domain"
	"github.com/mmcdole/showcraft/internal/finalize"
	"github.com/mmcdole/showcraft/internal/log"
	"github.com/mmcdole/showcraft/internal/store"
	"github.com/mmcdole/showcraft/internal/tui"
	"github.com/mmcdole/showcraft/internal/tui/styles"
)

// Version is set at build time via -ldflags
var Version = "dev"

func main() {
	var (
		showVersion bool
		configPath  string
		list        bool
		initConfig  bool
	)
	flag.BoolVar(&showVersion, "v", false, "print version")
	flag.BoolVar(&showVersion, "version", false, "print version")
	flag.StringVar(&configPath, "config", "", "path to config file")
	flag.BoolVar(&list, "list", false, "print saved series matching the optional query and exit")
	flag.BoolVar(&initConfig, "init-config", false, "write the default config file and exit")
	flag.Parse()

	if showVersion {
		fmt.Printf("showcraft %s\n", Version)
		return
	}

	var err error
	switch {
	case initConfig:
		err = writeDefaultConfig()
	case list:
		err = listCatalog(configPath, strings.Join(flag.Args(), " "))
	default:
		err = run(configPath)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	// Load configuration
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return errors.New("showcraft needs an interactive terminal (use -list to query the catalog)")
	}

	// Setup logger
	logger, closer, err := log.SetupLogger(&cfg.Logging)
	if err != nil {
		// Fall back to null logger if file logging fails
		logger, closer = log.NullLogger(), io.NopCloser(nil)
	}
	defer closer.Close()
	slog.SetDefault(logger)

	logger.Info("starting showcraft", "version", Version, "backend", cfg.Catalog.Backend)

	// Only the bolt backend needs the catalog open while the form runs
	var catalog domain.Catalog
	if cfg.Catalog.Backend == config.BackendBolt {
		s, err := store.Open(cfg.Catalog.Path)
		if err != nil {
			return fmt.Errorf("failed to open catalog: %w", err)
		}
		defer s.Close()
		catalog = s
	}

	finalizer, err := finalize.New(cfg.Catalog, catalog, logger)
	if err != nil {
		return err
	}

	// Run the TUI
	p := tea.NewProgram(
		tui.NewModel(finalizer, cfg, logger),
		tea.WithAltScreen(),
	)

	logger.Info("starting TUI")

	if _, err := p.Run(); err != nil {
		logger.Error("TUI error", "error", err)
		return fmt.Errorf("TUI error: %w", err)
	}

	logger.Info("shutting down")
	return nil
}

// listCatalog prints saved series, best match first when query is set
func listCatalog(configPath, query string) error {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	s, err := store.Open(cfg.Catalog.Path)
	if err != nil {
		return fmt.Errorf("failed to open catalog: %w", err)
	}
	defer s.Close()

	var entries []store.Entry
	if query == "" {
		entries, err = s.List()
	} else {
		entries, err = s.Search(query)
	}
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		fmt.Println(styles.DimStyle.Render("No saved series."))
		return nil
	}

	fmt.Println(renderEntries(entries))
	return nil
}

// renderEntries formats catalog entries as a table
func renderEntries(entries []store.Entry) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(styles.DimGray)).
		Headers("ID", "TITLE", "SEASONS", "EPISODES", "RATING", "SAVED").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styles.AccentStyle.Bold(true).Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})

	for _, e := range entries {
		title := styles.Truncate(e.Series.Title, 40)
		if len(e.Markup) > 0 {
			title += " [markup]"
		}
		t.Row(
			e.ID[:min(8, len(e.ID))],
			title,
			strconv.Itoa(len(e.Series.Seasons)),
			strconv.Itoa(e.Series.EpisodeCount()),
			strconv.FormatFloat(e.Series.Rating, 'f', -1, 64),
			time.Unix(e.SavedAt, 0).Format("2006-01-02 15:04"),
		)
	}
	return t.String()
}

// writeDefaultConfig saves the default configuration to the user config directory
func writeDefaultConfig() error {
	if err := config.SaveConfig(config.DefaultConfig()); err != nil {
		return err
	}
	fmt.Println("✓ Configuration saved!")
	return nil
}
