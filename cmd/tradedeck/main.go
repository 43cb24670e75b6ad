package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"golang.org/x/term"

	"tradedeck/internal/assist"
	"tradedeck/internal/config"
	"tradedeck/internal/debug"
	"tradedeck/internal/domain"
	appErrors "tradedeck/internal/errors"
	"tradedeck/internal/market"
	"tradedeck/internal/ui"
	"tradedeck/internal/ui/theme"
)

func main() {
	if err := config.Initialize(); err != nil {
		fmt.Printf("Error initializing config: %v\n", err)
		os.Exit(1)
	}

	autoRefreshSecondsDefault := config.GetInt(config.KeyAutoRefreshSeconds)
	if autoRefreshSecondsDefault < 0 {
		autoRefreshSecondsDefault = 0
	}
	dbPathDefault := config.GetString(config.KeyDatabasePath)
	outputFormatDefault := config.GetString(config.KeyOutputFormat)
	themeDefault := config.GetString(config.KeyTheme)
	demoDefault := config.GetBool(config.KeyDemo)

	versionFlag := flag.Bool("version", false, "Print version information and exit")
	summaryFlag := flag.Bool("summary", false, "Print the lead pipeline summary and exit without launching the TUI")
	demoFlag := flag.Bool("demo", demoDefault, "Run against built-in sample leads, no snapshot required")
	autoRefreshSecondsFlag := flag.Int("auto-refresh-seconds", autoRefreshSecondsDefault, "Auto-refresh interval in seconds (0 disables auto refresh)")
	dbPathFlag := flag.String("db-path", dbPathDefault, "Path to the marketplace snapshot file")
	outputFormatFlag := flag.String("output-format", outputFormatDefault, "Detail panel markdown style (rich, light, plain)")
	themeFlag := flag.String("theme", themeDefault, "Color theme name")
	noAssistantFlag := flag.Bool("no-assistant", false, "Disable the quote assistant panel")
	debugFlag := flag.Bool("debug", false, "Write a debug log to ~/.tradedeck/debug.log")
	flag.Parse()

	if *versionFlag {
		printVersion()
		os.Exit(0)
	}

	visited := map[string]struct{}{}
	flag.CommandLine.Visit(func(f *flag.Flag) {
		visited[f.Name] = struct{}{}
	})

	runtime := computeRuntimeOptions(runtimeFlags{
		autoRefreshSeconds: autoRefreshSecondsFlag,
		dbPath:             dbPathFlag,
		outputFormat:       outputFormatFlag,
		themeName:          themeFlag,
		demo:               demoFlag,
		noAssistant:        noAssistantFlag,
	}, visited)

	if err := debug.Init(*debugFlag); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: debug log unavailable: %v\n", err)
	}
	defer debug.Close()

	if runtime.themeName != "" && !theme.SetTheme(runtime.themeName) {
		fmt.Fprintf(os.Stderr, "Warning: unknown theme %q, using %s (available: %s)\n",
			runtime.themeName, theme.CurrentName(), strings.Join(theme.Available(), ", "))
	}

	ctx := context.Background()
	store, builderName, dbPath, err := openStore(ctx, runtime)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *summaryFlag {
		leads, err := store.Leads(ctx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		printSnapshotSummary(os.Stdout, builderName, domain.ComputeStats(leads))
		return
	}

	var assistant assist.Service
	if runtime.assistantEnabled {
		assistant = assist.NewHTTPService(config.GetString(config.KeyAssistantBaseURL))
	}

	display := NewStartupDisplay(os.Stderr)
	display.Stage(ui.StartupStageInit, "Starting...")

	appCfg := ui.Config{
		RefreshInterval: runtime.refreshInterval,
		AutoRefresh:     runtime.autoRefresh,
		DBPath:          dbPath,
		OutputFormat:    runtime.outputFormat,
		StartupReporter: display,
		Store:           store,
		Assistant:       assistant,
		BuilderName:     builderName,
		Version:         Version,
	}

	sessionStart := time.Now()
	var (
		builtApp     *ui.App
		initialStats domain.Stats
	)
	err = runProgram(appCfg, ui.NewApp, func(app *ui.App) programRunner {
		builtApp = app
		initialStats = app.Stats()
		display.Stop()
		return tea.NewProgram(app, tea.WithAltScreen())
	})
	if err != nil {
		display.Stop()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	builtApp.Shutdown()
	printExitSummary(os.Stdout, ExitSummary{
		Version:      Version,
		Builder:      builderName,
		StartTime:    sessionStart,
		InitialStats: initialStats,
		EndStats:     builtApp.Stats(),
	})
}

type programRunner interface {
	Run() (tea.Model, error)
}

type programFactory func(*ui.App) programRunner

func runProgram(cfg ui.Config, builder func(ui.Config) (*ui.App, error), factory programFactory) error {
	app, err := builder(cfg)
	if err != nil {
		return fmt.Errorf("initialize UI: %w", err)
	}
	if factory == nil {
		return fmt.Errorf("program factory is nil")
	}
	prog := factory(app)
	if prog == nil {
		return fmt.Errorf("program is nil")
	}
	if _, err := prog.Run(); err != nil {
		return fmt.Errorf("run UI: %w", err)
	}
	return nil
}

// openStore builds the lead store for this run. Demo mode uses the built-in
// sample leads; otherwise the marketplace snapshot is located and a builder
// profile resolved, rescoping the store when a specific profile is chosen.
func openStore(ctx context.Context, runtime runtimeOptions) (market.Store, string, string, error) {
	if runtime.demo {
		return market.NewMemoryStore(), market.GuestBuilderName, "", nil
	}

	dbPath := runtime.dbPath
	if dbPath == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, "", "", fmt.Errorf("determine working directory: %w", err)
		}
		dbPath, err = market.DiscoverSnapshot(wd)
		if err != nil {
			return nil, "", "", err
		}
	}

	store, err := market.NewSQLiteStore(dbPath)
	if err != nil {
		return nil, "", "", err
	}

	if name := strings.TrimSpace(config.GetString(config.KeyBuilderName)); name != "" {
		return store, name, dbPath, nil
	}

	builder, err := selectBuilder(ctx, store)
	if err != nil {
		return nil, "", "", err
	}
	if builder.ID == "" {
		return store, market.GuestBuilderName, dbPath, nil
	}
	scoped, err := market.NewSQLiteStore(dbPath, market.WithBuilderID(builder.ID))
	if err != nil {
		return nil, "", "", err
	}
	return scoped, builder.Name, dbPath, nil
}

// selectBuilder resolves which builder profile in the snapshot to show. A
// single profile is used as-is; several profiles need an interactive pick,
// which requires a terminal on stdin.
func selectBuilder(ctx context.Context, store market.Store) (domain.Builder, error) {
	builders, err := store.Builders(ctx)
	if err != nil {
		return domain.Builder{}, err
	}
	switch len(builders) {
	case 0:
		return domain.Builder{}, nil
	case 1:
		return builders[0], nil
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return domain.Builder{}, appErrors.New(appErrors.CodeConfigurationError,
			"snapshot has multiple builder profiles; set builder.name in config or run interactively", nil)
	}

	options := make([]huh.Option[string], 0, len(builders))
	byID := make(map[string]domain.Builder, len(builders))
	for _, b := range builders {
		options = append(options, huh.NewOption(b.Name, b.ID))
		byID[b.ID] = b
	}

	var choice string
	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("Select builder profile").
			Options(options...).
			Value(&choice),
	))
	if err := form.Run(); err != nil {
		return domain.Builder{}, fmt.Errorf("select builder profile: %w", err)
	}
	return byID[choice], nil
}

type runtimeFlags struct {
	autoRefreshSeconds *int
	dbPath             *string
	outputFormat       *string
	themeName          *string
	demo               *bool
	noAssistant        *bool
}

type runtimeOptions struct {
	refreshInterval  time.Duration
	autoRefresh      bool
	dbPath           string
	outputFormat     string
	themeName        string
	demo             bool
	assistantEnabled bool
}

func computeRuntimeOptions(flags runtimeFlags, visited map[string]struct{}) runtimeOptions {
	seconds := sanitizeAutoRefreshSeconds(config.GetInt(config.KeyAutoRefreshSeconds))
	if flagWasExplicitlySet("auto-refresh-seconds", visited) {
		seconds = sanitizeAutoRefreshSeconds(*flags.autoRefreshSeconds)
	}
	refreshInterval := time.Duration(seconds) * time.Second
	autoRefresh := seconds > 0

	dbPath := strings.TrimSpace(config.GetString(config.KeyDatabasePath))
	if flagWasExplicitlySet("db-path", visited) {
		dbPath = strings.TrimSpace(*flags.dbPath)
	}

	outputFormat := strings.TrimSpace(config.GetString(config.KeyOutputFormat))
	if flagWasExplicitlySet("output-format", visited) {
		outputFormat = strings.TrimSpace(*flags.outputFormat)
	}

	themeName := strings.TrimSpace(config.GetString(config.KeyTheme))
	if flagWasExplicitlySet("theme", visited) {
		themeName = strings.TrimSpace(*flags.themeName)
	}

	demo := config.GetBool(config.KeyDemo)
	if flagWasExplicitlySet("demo", visited) {
		demo = *flags.demo
	}

	assistantEnabled := config.GetBool(config.KeyAssistantEnabled)
	if flagWasExplicitlySet("no-assistant", visited) && *flags.noAssistant {
		assistantEnabled = false
	}

	return runtimeOptions{
		refreshInterval:  refreshInterval,
		autoRefresh:      autoRefresh,
		dbPath:           dbPath,
		outputFormat:     outputFormat,
		themeName:        themeName,
		demo:             demo,
		assistantEnabled: assistantEnabled,
	}
}

func flagWasExplicitlySet(name string, visited map[string]struct{}) bool {
	if _, ok := visited[name]; ok {
		return true
	}
	f := flag.CommandLine.Lookup(name)
	if f == nil {
		return false
	}
	return f.Value.String() != f.DefValue
}

func sanitizeAutoRefreshSeconds(seconds int) int {
	if seconds < 0 {
		return 0
	}
	return seconds
}
