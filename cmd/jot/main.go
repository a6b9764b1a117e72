package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/marcus/jot/internal/app"
	"github.com/marcus/jot/internal/config"
	"github.com/marcus/jot/internal/keymap"
	"github.com/marcus/jot/internal/note"
	"github.com/marcus/jot/internal/state"
	"github.com/marcus/jot/internal/storage"
)

// Version is set at build time via ldflags
var Version = ""

var (
	configPath   = flag.String("config", "", "path to config file")
	dataDir      = flag.String("data", "", "data directory (overrides config)")
	debugFlag    = flag.Bool("debug", false, "enable debug logging")
	versionFlag  = flag.Bool("version", false, "print version and exit")
	shortVersion = flag.Bool("v", false, "print version and exit (short)")
)

func main() {
	flag.Parse()

	if *versionFlag || *shortVersion {
		fmt.Printf("jot version %s\n", effectiveVersion(Version))
		os.Exit(0)
	}

	// Setup logging
	logLevel := slog.LevelInfo
	if *debugFlag {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))

	// Load configuration
	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *dataDir != "" {
		cfg.Storage.DataDir = config.ExpandPath(*dataDir)
	}

	// Load persistent UI state (ignore errors - state is optional)
	_ = state.Init()

	// Open the storage backend
	kv, watchPath, err := openStore(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open storage: %v\n", err)
		os.Exit(1)
	}
	defer kv.Close()

	store := note.NewStore(note.NewAdapter(kv, logger))

	// Watch the notes file for external edits (file backend only)
	var changes <-chan struct{}
	if watchPath != "" {
		ch, err := storage.Watch(watchPath)
		if err != nil {
			logger.Warn("file watch unavailable", "error", err)
		} else {
			changes = ch
		}
	}

	// Create keymap registry with user overrides
	km := keymap.NewRegistry()
	keymap.RegisterDefaults(km)
	for key, cmdID := range cfg.Keymap.Overrides {
		km.SetUserOverride(key, cmdID)
	}

	model := app.New(cfg, km, store, changes, logger)
	p := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running application: %v\n", err)
		os.Exit(1)
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFrom(path)
	}
	return config.Load()
}

// openStore creates the configured key-value backend. The second return is
// the path to watch for external changes, or "" when watching is not
// applicable.
func openStore(cfg *config.Config) (storage.KV, string, error) {
	switch cfg.Storage.Backend {
	case config.BackendSQLite:
		kv, err := storage.NewSQLiteStore(filepath.Join(cfg.Storage.DataDir, "jot.db"))
		return kv, "", err
	default:
		fs, err := storage.NewFileStore(cfg.Storage.DataDir)
		if err != nil {
			return nil, "", err
		}
		return fs, fs.Path(note.StorageKey), nil
	}
}

// effectiveVersion returns the version string, with fallback to build info.
func effectiveVersion(v string) string {
	if v != "" {
		return v
	}

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown"
	}

	if info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}

	var revision string
	var dirty bool
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			revision = setting.Value
		case "vcs.modified":
			dirty = setting.Value == "true"
		}
	}

	if revision != "" {
		ver := "devel+" + revision
		if len(ver) > 20 {
			ver = ver[:20]
		}
		if dirty {
			ver += "+dirty"
		}
		return ver
	}

	return "devel"
}

func init() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: jot [options]\n\n")
		fmt.Fprintf(os.Stderr, "A local-first notes TUI.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}
}
