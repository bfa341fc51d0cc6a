package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"tuievent/internal/dispatch"
	"tuievent/internal/telemetry"
	"tuievent/internal/ui"
)

// config holds the parsed CLI configuration for the demo.
type config struct {
	mouse          bool
	altScreen      bool
	fallback       dispatch.Fallback
	redrawConsumed bool
	logPath        string
	envFile        string
}

func parseFlags(args []string, stderr io.Writer) (config, error) {
	var (
		cfg      config
		fallback string
	)
	flags := flag.NewFlagSet("eventdemo", flag.ContinueOnError)
	flags.SetOutput(stderr)

	flags.BoolVar(&cfg.mouse, "mouse", true, "enable mouse cell motion reporting")
	flags.BoolVar(&cfg.altScreen, "alt-screen", true, "run in the alternate screen buffer")
	flags.StringVar(&fallback, "fallback", "none", "where unused keys go before accelerators: none or siblings")
	flags.BoolVar(&cfg.redrawConsumed, "redraw-consumed", false, "redraw after Consumed results as well as Changed")
	flags.StringVar(&cfg.logPath, "log", "", "write dispatch debug log to this file (default $TUIEVENT_LOG)")
	flags.StringVar(&cfg.envFile, "env", ".env", "dotenv file to load; a missing file is ignored")

	flags.Usage = func() {
		fmt.Fprintf(stderr, "Usage: eventdemo [flags]\n\n")
		fmt.Fprintf(stderr, "eventdemo is an interactive playground for the event dispatcher:\n")
		fmt.Fprintf(stderr, "panels, popups and dialogs report what each event did.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		flags.PrintDefaults()
	}

	if err := flags.Parse(args); err != nil {
		return cfg, err
	}

	f, err := dispatch.ParseFallback(fallback)
	if err != nil {
		return cfg, err
	}
	cfg.fallback = f
	return cfg, nil
}

// loadEnv loads the dotenv file. A missing file is not an error.
func loadEnv(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

func run(cfg config) error {
	if err := loadEnv(cfg.envFile); err != nil {
		return err
	}

	logPath := cfg.logPath
	if logPath == "" {
		logPath = os.Getenv("TUIEVENT_LOG")
	}
	var logger *log.Logger
	if logPath != "" {
		f, err := tea.LogToFile(logPath, "eventdemo")
		if err != nil {
			return fmt.Errorf("open log: %w", err)
		}
		defer f.Close()
		logger = log.Default()
		log.Printf("config: mouse=%v alt-screen=%v fallback=%s redraw-consumed=%v",
			cfg.mouse, cfg.altScreen, cfg.fallback, cfg.redrawConsumed)
	}

	ctx := context.Background()
	provider, err := telemetry.NewProvider(ctx)
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := provider.Shutdown(shutdownCtx); err != nil {
			log.Printf("eventdemo: %v", err)
		}
	}()

	demo := ui.NewDemo(ui.DemoConfig{
		KeyFallback:      cfg.fallback,
		RedrawOnConsumed: cfg.redrawConsumed,
		Tracer:           provider.Tracer(),
		Logger:           logger,
		Items:            defaultItems,
	})
	demo.Root.Context = ctx

	var opts []tea.ProgramOption
	if cfg.altScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	if cfg.mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	p := tea.NewProgram(demo.Model(), opts...)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}

var defaultItems = []string{
	"README.md",
	"go.mod",
	"cmd/eventdemo",
	"internal/event",
	"internal/dispatch",
	"internal/mouse",
	"internal/ui",
	"internal/telemetry",
}

func main() {
	cfg, err := parseFlags(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		os.Exit(2)
	}
	if err := run(cfg); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
