package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/cookalong"
	"github.com/fwojciec/cookalong/goquery"
)

const (
	storeRedis = "redis"

	defaultEnvFile = ".env"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	Fetcher   cookalong.Fetcher
	Searcher  cookalong.RecipeSearcher
	Extractor *goquery.Extractor
	Sessions  cookalong.SessionStore
	Router    cookalong.TurnHandler

	// NewID generates request and session IDs.
	NewID func() string
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	EnvFile string `name:"env-file" default:".env" help:"Load environment variables from this file if it exists"`

	SiteURL       string        `name:"site-url" env:"COOKALONG_SITE_URL" default:"https://www.skinnytaste.com" help:"Recipe site base URL"`
	Store         string        `enum:"sqlite,redis" env:"COOKALONG_STORE" default:"sqlite" help:"Session store backend (sqlite, redis)"`
	DB            string        `name:"db" env:"COOKALONG_DB" help:"SQLite database path (default ~/.cookalong/cookalong.db)"`
	RedisAddr     string        `env:"COOKALONG_REDIS_ADDR" default:"localhost:6379" help:"Redis address"`
	RedisPassword string        `env:"COOKALONG_REDIS_PASSWORD" help:"Redis password"`
	RedisDB       int           `name:"redis-db" env:"COOKALONG_REDIS_DB" default:"0" help:"Redis database number"`
	SessionTTL    time.Duration `env:"COOKALONG_SESSION_TTL" default:"0s" help:"Redis session expiry (0 keeps sessions forever)"`
	FetchTimeout  time.Duration `env:"COOKALONG_FETCH_TIMEOUT" default:"10s" help:"Timeout for page fetches"`
	FetchRPS      float64       `name:"fetch-rps" env:"COOKALONG_FETCH_RPS" default:"2" help:"Page fetches per second per domain (0 disables pacing)"`
	LogLevel      string        `enum:"debug,info,warn,error" env:"COOKALONG_LOG_LEVEL" default:"info" help:"Log level (debug, info, warn, error)"`

	Serve   ServeCmd   `cmd:"" help:"Serve the skill over HTTP"`
	Search  SearchCmd  `cmd:"" help:"Search the recipe site"`
	Extract ExtractCmd `cmd:"" help:"Extract ingredients and instructions from a recipe page"`
	Invoke  InvokeCmd  `cmd:"" help:"Run one turn through the skill and print the response envelope"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr    string `env:"COOKALONG_ADDR" default:":8080" help:"Listen address"`
	SkillID string `name:"skill-id" env:"COOKALONG_SKILL_ID" help:"Only accept requests for this application ID"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Query []string `arg:"" help:"Search terms"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	URL string `arg:"" help:"Recipe page URL"`
}

// InvokeCmd is the "invoke" subcommand.
type InvokeCmd struct {
	User       string   `arg:"" help:"User ID"`
	Intent     string   `arg:"" help:"Intent name, or 'launch' / 'end' for session requests"`
	Slots      []string `arg:"" optional:"" help:"Slot values as NAME=VALUE"`
	Attributes string   `short:"a" type:"path" help:"Session attributes file carried between invocations"`
}
