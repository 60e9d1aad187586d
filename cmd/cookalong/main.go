package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/cookalong"
	"github.com/fwojciec/cookalong/goquery"
	cookhttp "github.com/fwojciec/cookalong/http"
	"github.com/fwojciec/cookalong/redis"
	"github.com/fwojciec/cookalong/skill"
	cookslog "github.com/fwojciec/cookalong/slog"
	"github.com/fwojciec/cookalong/sqlite"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	goredis "github.com/redis/go-redis/v9"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// SQLite database used by the sqlite session store.
	DB *sqlite.DB

	// Redis client used by the redis session store.
	Redis *goredis.Client

	// Services for end-to-end testing. When nil they are built from the
	// configuration.
	Fetcher  cookalong.Fetcher
	Sessions cookalong.SessionStore
}

// NewMain returns a new instance of Main.
func NewMain() *Main {
	return &Main{}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	var errs []error
	if m.DB != nil {
		errs = append(errs, m.DB.Close())
	}
	if m.Redis != nil {
		errs = append(errs, m.Redis.Close())
	}
	return errors.Join(errs...)
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	if err := loadEnvFile(envFileArg(args)); err != nil {
		return fmt.Errorf("failed to load env file: %w", err)
	}

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		NewID:  uuid.NewString,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("cookalong"),
		kong.Description("Cook along with Skinnytaste recipes by voice."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'cookalong --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cmd = strings.Fields(kongCtx.Command())[0]

	deps.Logger = newLogger(stderr, cli.LogLevel)

	fetcher := m.Fetcher
	if fetcher == nil {
		fetcher = cookhttp.NewFetcher(
			cookhttp.WithTimeout(cli.FetchTimeout),
			cookhttp.WithRateLimit(cli.FetchRPS),
		)
	}
	deps.Fetcher = cookslog.NewLoggingFetcher(fetcher, deps.Logger)
	deps.Searcher = cookslog.NewLoggingSearcher(goquery.NewSearcher(deps.Fetcher, cli.SiteURL), deps.Logger)
	deps.Extractor = goquery.NewExtractor()

	if cmd == "serve" || cmd == "invoke" {
		sessions, err := m.openSessions(ctx, cli, stderr)
		if err != nil {
			return err
		}
		defer m.Close()

		deps.Sessions = cookslog.NewLoggingSessionStore(sessions, deps.Logger)
		deps.Router = skill.NewRouter(
			deps.Searcher,
			deps.Fetcher,
			deps.Extractor,
			skill.NewNavigator(deps.Sessions),
			skill.WithLogger(deps.Logger),
		)
	}

	return kongCtx.Run(deps)
}

// openSessions opens the configured session store.
func (m *Main) openSessions(ctx context.Context, cli *CLI, stderr io.Writer) (cookalong.SessionStore, error) {
	if m.Sessions != nil {
		return m.Sessions, nil
	}

	switch cli.Store {
	case storeRedis:
		m.Redis = goredis.NewClient(&goredis.Options{
			Addr:     cli.RedisAddr,
			Password: cli.RedisPassword,
			DB:       cli.RedisDB,
		})
		if err := m.Redis.Ping(ctx).Err(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set COOKALONG_REDIS_ADDR to point at a running Redis server\n")
			return nil, fmt.Errorf("failed to connect to redis at %q: %w", cli.RedisAddr, err)
		}
		return redis.NewSessionStore(m.Redis, redis.WithTTL(cli.SessionTTL)), nil
	default:
		path := cli.DB
		if path == "" {
			path = defaultDBPath()
		}
		m.DB = sqlite.NewDB(path)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set COOKALONG_DB to use a different database path\n")
			return nil, fmt.Errorf("failed to open database at %q: %w", path, err)
		}
		return sqlite.NewSessionStore(m.DB), nil
	}
}

func newLogger(w io.Writer, level string) *slog.Logger {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		l = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: l}))
}

// envFileArg returns the --env-file value from args or the default.
func envFileArg(args []string) string {
	for i, arg := range args {
		if v, ok := strings.CutPrefix(arg, "--env-file="); ok {
			return v
		}
		if arg == "--env-file" && i+1 < len(args) {
			return args[i+1]
		}
	}
	return defaultEnvFile
}

// loadEnvFile loads variables from path without overriding the environment.
// A missing file is not an error.
func loadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return godotenv.Load(path)
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "cookalong.db"
	}
	dir := filepath.Join(home, ".cookalong")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "cookalong.db")
}
