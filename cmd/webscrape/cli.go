package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"
)

// CLI defines the command-line interface structure for Kong.
// Every flag falls back to an environment variable.
type CLI struct {
	Host         string        `default:"0.0.0.0" env:"HOST" help:"Interface to listen on"`
	Port         int           `short:"p" default:"8001" env:"PORT" help:"Port to listen on"`
	Timeout      time.Duration `default:"30s" env:"SCRAPE_TIMEOUT" help:"Deadline for a whole scrape, retrieval and extraction"`
	FetchTimeout time.Duration `default:"10s" env:"FETCH_TIMEOUT" help:"Timeout for the outbound HTTP request"`
	Extractor    string        `short:"e" default:"text" enum:"text,article,main,markdown" env:"SCRAPE_EXTRACTOR" help:"Extraction mode: text (all page text), article (readability), main (trafilatura) or markdown"`
	UserAgent    string        `default:"${user_agent}" env:"SCRAPE_USER_AGENT" help:"User-Agent sent with outbound requests"`
	MaxBodySize  int64         `default:"${max_body_size}" env:"SCRAPE_MAX_BODY_SIZE" help:"Maximum bytes read from a page"`
	LogLevel     string        `default:"info" enum:"debug,info,warn,error" env:"LOG_LEVEL" help:"Minimum log level"`
	LogFormat    string        `default:"text" enum:"text,json" env:"LOG_FORMAT" help:"Log output format"`
}

// newLogger builds the process logger from the CLI log flags.
func newLogger(w io.Writer, level, format string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	opts := &slog.HandlerOptions{Level: lvl}

	switch strings.ToLower(format) {
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	case "text", "":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("invalid log format %q", format)
	}
}
