package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/schollz/progressbar/v3"
	cfgPkg "github.com/xhad/headlines/pkg/config"
)

type Flags struct {
	ConfigPath string
	URL        string
	MinLength  int
	Timeout    time.Duration
	LogLevel   string
	Quiet      bool

	set map[string]bool
}

func parseFlags(args []string) (Flags, error) {
	flags := Flags{set: make(map[string]bool)}

	fs := flag.NewFlagSet("headlines", flag.ContinueOnError)
	fs.StringVar(&flags.ConfigPath, "config", "", "Path to config file")
	fs.StringVar(&flags.URL, "url", "", "Homepage URL to read headlines from")
	fs.IntVar(&flags.MinLength, "min-length", 0, "Minimum headline length in characters")
	fs.DurationVar(&flags.Timeout, "timeout", 0, "HTTP request timeout")
	fs.StringVar(&flags.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.BoolVar(&flags.Quiet, "quiet", false, "Hide the progress spinner")

	if err := fs.Parse(args); err != nil {
		return flags, err
	}
	if fs.NArg() > 0 {
		return flags, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	fs.Visit(func(f *flag.Flag) {
		flags.set[f.Name] = true
	})

	return flags, nil
}

// loadConfig reads the config file and lets explicitly set flags win over it.
func loadConfig(flags Flags) (*cfgPkg.Config, error) {
	config, err := cfgPkg.LoadConfig(flags.ConfigPath)
	if err != nil {
		return nil, err
	}

	if flags.set["url"] {
		config.Fetcher.URL = flags.URL
	}
	if flags.set["min-length"] {
		config.Extractor.MinLength = flags.MinLength
	}
	if flags.set["timeout"] {
		config.Fetcher.Timeout = flags.Timeout
	}
	if flags.set["log-level"] {
		config.Log.Level = flags.LogLevel
	}

	if errs := config.Validate(); len(errs) > 0 {
		msgs := make([]string, 0, len(errs))
		for _, e := range errs {
			msgs = append(msgs, e.Error())
		}
		return nil, fmt.Errorf("invalid configuration: %s", strings.Join(msgs, "; "))
	}

	return config, nil
}

func setupLogger(level string) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.WarnLevel
	}
	zerolog.SetGlobalLevel(lvl)

	log.Logger = zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.Kitchen,
		NoColor:    !isTerminal(os.Stderr),
	}).With().Timestamp().Logger()
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func getSpinner(description string, visible bool) *progressbar.ProgressBar {
	return progressbar.NewOptions(-1,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetDescription(color.CyanString(description)),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionSetWidth(20),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetRenderBlankState(visible),
		progressbar.OptionSetVisibility(visible),
		progressbar.OptionClearOnFinish(),
	)
}

// spin keeps the spinner moving until the returned stop func is called.
func spin(bar *progressbar.ProgressBar) (stop func()) {
	done := make(chan struct{})
	finished := make(chan struct{})

	go func() {
		defer close(finished)
		ticker := time.NewTicker(100 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				bar.Add(1)
			}
		}
	}()

	return func() {
		close(done)
		<-finished
		bar.Finish()
	}
}
