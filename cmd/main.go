package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/xhad/headlines/internal/models"
	"github.com/xhad/headlines/internal/types"
	cfgPkg "github.com/xhad/headlines/pkg/config"
	"github.com/xhad/headlines/pkg/extractor"
	"github.com/xhad/headlines/pkg/fetcher"
	"github.com/xhad/headlines/pkg/reporter"
)

func main() {
	setupLogger("warn")

	flags, err := parseFlags(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatal().Err(err).Msg("invalid arguments")
	}

	config, err := loadConfig(flags)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	setupLogger(config.Log.Level)

	if err := run(context.Background(), config, flags.Quiet, os.Stdout); err != nil {
		log.Fatal().Err(err).Msg("failed to read headlines")
	}
}

type pipeline struct {
	fetcher   types.Fetcher
	extractor types.Extractor
	reporter  types.Reporter
	spinner   bool
}

func newPipeline(config *cfgPkg.Config, stdout io.Writer) (*pipeline, error) {
	f, err := fetcher.NewWithConfig(fetcher.FetcherConfig{
		UserAgent: config.Fetcher.UserAgent,
		Timeout:   config.Fetcher.Timeout,
		OnFetched: logFetched,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize fetcher: %w", err)
	}

	e, err := extractor.NewWithConfig(extractor.ExtractorConfig{
		Selectors: config.Extractor.Selectors,
		MinLength: config.Extractor.MinLength,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize extractor: %w", err)
	}
	log.Debug().Strs("selectors", e.Selectors()).Msg("extractor ready")

	r := reporter.New(stdout,
		reporter.WithHeader(config.Output.Header),
		reporter.WithColor(useColor(config.Output.Color, stdout)),
	)

	return &pipeline{
		fetcher:   f,
		extractor: e,
		reporter:  r,
	}, nil
}

func logFetched(page *models.Page) {
	log.Debug().
		Str("url", page.URL).
		Str("content_type", page.ContentType).
		Time("fetched_at", page.FetchedAt).
		Int("html_len", len(page.HTML)).
		Msg("page received")
}

func useColor(mode string, w io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		return os.Getenv("NO_COLOR") == "" && isTerminal(w)
	}
}

// Run fetches url once and reports its headlines. Nothing is written to the
// reporter when the fetch fails.
func (p *pipeline) Run(ctx context.Context, url string) error {
	stop := spin(getSpinner(" Fetching "+url, p.spinner))
	page, err := p.fetcher.Fetch(ctx, url)
	stop()
	if err != nil {
		return err
	}

	headlines := p.extractor.Extract(page.HTML)
	log.Info().Str("url", url).Int("headlines", len(headlines)).Msg("extracted headlines")

	return p.reporter.Report(headlines)
}

func run(ctx context.Context, config *cfgPkg.Config, quiet bool, stdout io.Writer) error {
	p, err := newPipeline(config, stdout)
	if err != nil {
		return err
	}
	p.spinner = !quiet && isTerminal(os.Stderr)

	return p.Run(ctx, config.Fetcher.URL)
}
