// memory is a terminal memory-matching card game.
//
// Usage:
//
//	memory list              - List available game modes
//	memory play [mode]       - Play a mode directly (default: memory)
//	memory menu              - Start menu to pick a mode interactively
//	memory serve             - Start SSH server for remote play
//	memory scores [mode]     - Show achievements and run history
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible deals
//	--db <path>          - Set database path (default: ~/.memory/memory.db)
//	--config <path>      - Custom memory.yaml
//	--difficulty <name>  - easy, normal or hard
//	--log-level <level>  - debug, info, warn or error
//
// Defaults for --db, --log-level and the SSH address can also come from
// MEMORY_DB, MEMORY_LOG_LEVEL and MEMORY_SSH_ADDR, read from the
// environment or a .env file in the working directory.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-memory/internal/achievements"
	"github.com/vovakirdan/tui-memory/internal/config"
	"github.com/vovakirdan/tui-memory/internal/games/memory"
	"github.com/vovakirdan/tui-memory/internal/platform/tui"
	"github.com/vovakirdan/tui-memory/internal/storage"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
)

func main() {
	// A missing .env is fine
	_ = godotenv.Load()

	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", envOr("MEMORY_DB", "~/.memory/memory.db"), "Path to the database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom memory.yaml")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", envOr("MEMORY_LOG_LEVEL", "info"), "Log level: debug, info, warn, error")
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", envOr("MEMORY_SSH_ADDR", ":23234"), "SSH server address (host:port)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "memory",
	Short: "Memory - flip cards and find the pairs",
	Long: `Memory is a terminal card-matching game. Every level deals one more
pair; clear the board before you run out of moves.

Available commands:
  list     - Show all game modes
  play     - Play a mode directly
  menu     - Interactive mode picker
  serve    - Start SSH server for remote play
  scores   - View achievements and run history

Examples:
  memory play
  memory play memory_ascii --difficulty hard
  memory menu
  memory serve --ssh :2222
  memory scores`,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// newLogger builds the process logger. The TUI owns the terminal while a
// game runs, so interactive commands log to ~/.memory/memory.log instead.
func newLogger(toFile bool) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	var w io.Writer = os.Stderr
	closeFn := func() {}
	if toFile {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return nil, nil, fmt.Errorf("cannot get home directory: %w", homeErr)
		}
		dir := filepath.Join(home, ".memory")
		if mkErr := os.MkdirAll(dir, 0o755); mkErr != nil {
			return nil, nil, fmt.Errorf("cannot create log directory: %w", mkErr)
		}
		f, openErr := os.OpenFile(filepath.Join(dir, "memory.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if openErr != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", openErr)
		}
		w = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Level:           level,
		Prefix:          "memory",
	})
	return logger, closeFn, nil
}

// loadConfig resolves memory.yaml, applies the difficulty preset and hands
// the result to the game package.
func loadConfig() (config.MemoryConfig, error) {
	cfg, err := config.LoadMemory(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagDifficulty != "" {
		preset, presetErr := config.ParseDifficulty(flagDifficulty)
		if presetErr != nil {
			return cfg, presetErr
		}
		config.ApplyMemoryPreset(&cfg, preset)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	memory.SetConfig(cfg)
	return cfg, nil
}

// openServices opens the database and the leaderboard on top of it.
// A database that cannot be opened leaves achievements in memory only.
func openServices(cfg config.MemoryConfig, logger *log.Logger) tui.Services {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open database, achievements will not persist", "path", flagDBPath, "error", err)
		store = nil
	}

	var backend achievements.Backend
	if store != nil {
		backend = store
	}
	board := achievements.New(backend,
		achievements.WithKey(cfg.Achievements.Key),
		achievements.WithLimit(cfg.Achievements.Limit),
		achievements.WithLogger(logger),
	)
	board.Load()

	return tui.Services{
		Store:        store,
		Achievements: board,
		Logger:       logger,
	}
}
