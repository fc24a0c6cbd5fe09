package main

import (
	"context"
	"fmt"
	"io"
	"net"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/webscrape"
	"github.com/fwojciec/webscrape/goquery"
	"github.com/fwojciec/webscrape/htmltomarkdown"
	webhttp "github.com/fwojciec/webscrape/http"
	"github.com/fwojciec/webscrape/readability"
	"github.com/fwojciec/webscrape/scrape"
	webslog "github.com/fwojciec/webscrape/slog"
	"github.com/fwojciec/webscrape/trafilatura"
	"golang.org/x/sync/errgroup"
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
	// Server is set once the listener is bound.
	Server *webhttp.Server

	ready chan struct{}
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{ready: make(chan struct{})}
}

// Ready is closed once the server accepts connections.
func (m *Main) Ready() <-chan struct{} {
	return m.ready
}

// Run parses args, starts the server and blocks until ctx is done.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("webscrape"),
		kong.Description("Serve single-page text extraction over HTTP"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		kong.Vars{
			"user_agent":    webhttp.DefaultUserAgent,
			"max_body_size": strconv.Itoa(webhttp.DefaultMaxBodySize),
		},
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	logger, err := newLogger(stderr, cli.LogLevel, cli.LogFormat)
	if err != nil {
		return err
	}

	// Wire dependencies
	httpFetcher := webhttp.NewFetcher(
		webhttp.WithTimeout(cli.FetchTimeout),
		webhttp.WithUserAgent(cli.UserAgent),
		webhttp.WithMaxBodySize(cli.MaxBodySize),
	)
	defer httpFetcher.Close()
	fetcher := webslog.NewLoggingFetcher(httpFetcher, logger)

	loader := newLoader(cli.Extractor, fetcher)
	pipeline := scrape.NewPipeline(loader, scrape.WithTimeout(cli.Timeout))
	scraper := webslog.NewLoggingScraper(pipeline, logger)

	m.Server = webhttp.NewServer(scraper, logger)
	m.Server.Addr = net.JoinHostPort(cli.Host, strconv.Itoa(cli.Port))
	if err := m.Server.Open(); err != nil {
		return fmt.Errorf("failed to listen on %s: %w", m.Server.Addr, err)
	}
	logger.Info("listening", "url", m.Server.URL(), "extractor", cli.Extractor)
	close(m.ready)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(m.Server.Serve)
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")
		return m.Server.Close()
	})
	return g.Wait()
}

// newLoader selects the extraction strategy for mode.
func newLoader(mode string, fetcher webscrape.Fetcher) *scrape.WebLoader {
	switch mode {
	case "article":
		return scrape.NewWebLoader(fetcher, readability.NewExtractor())
	case "main":
		return scrape.NewWebLoader(fetcher, trafilatura.NewExtractor())
	case "markdown":
		return scrape.NewWebLoader(fetcher, trafilatura.NewExtractor(), scrape.WithConverter(htmltomarkdown.NewConverter()))
	default:
		return scrape.NewWebLoader(fetcher, goquery.NewExtractor())
	}
}
