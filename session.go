package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"

	"github.com/rs/xid"
	"github.com/spf13/cobra"

	"github.com/rancher-sandbox/rancher-desktop/src/go/i18n-keycheck/annotation"
	"github.com/rancher-sandbox/rancher-desktop/src/go/i18n-keycheck/callsite"
	"github.com/rancher-sandbox/rancher-desktop/src/go/i18n-keycheck/locale"
)

// session holds what every subcommand needs for one analysis run.
type session struct {
	cfg      *config
	log      *slog.Logger
	runID    string
	registry *locale.Registry
}

func newSession(cmd *cobra.Command) (*session, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}
	cfg, err := loadConfig(path)
	if err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("log-level") {
		if cfg.LogLevel, err = cmd.Flags().GetString("log-level"); err != nil {
			return nil, err
		}
	}
	logger, err := newLogger(os.Stderr, cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	runID := xid.New().String()
	logger = logger.With("run", runID)
	cfg.warnUnknownLocales(logger)

	client := &http.Client{Timeout: cfg.HTTPTimeout}
	return &session{
		cfg:      cfg,
		log:      logger,
		runID:    runID,
		registry: locale.NewRegistry(client),
	}, nil
}

// documents builds the document set once for the run.
func (s *session) documents(ctx context.Context) locale.Set {
	set := locale.Build(ctx, s.registry, s.cfg.Locales, s.cfg.JSONBaseURIs)
	for _, e := range set.Errors {
		s.log.Warn("could not load locale document", "error", e)
	}
	s.log.Debug("loaded locale documents", "documents", len(set.Documents), "errors", len(set.Errors))
	return set
}

// calls finds every translation call under the configured sources.
func (s *session) calls(ctx context.Context) (files []string, calls []callsite.Call, err error) {
	files, err = scanSourceFiles(s.cfg.Sources, s.cfg.Extensions)
	if err != nil {
		return nil, nil, err
	}
	opts := callsite.Options{Namespaces: s.cfg.Namespaces, Methods: s.cfg.Methods}
	calls, err = findCalls(ctx, s.cfg.dir, files, opts, s.cfg.Jobs)
	if err != nil {
		return nil, nil, err
	}
	s.log.Debug("scanned sources", "files", len(files), "calls", len(calls))
	return files, calls, nil
}

func (s *session) parser() annotation.Parser {
	return annotation.NewParser(s.cfg.AnnotationTag)
}
