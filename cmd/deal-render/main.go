package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/martingeoffreyprive-hub/DEAL-sub001/doctemplate"
	"github.com/martingeoffreyprive-hub/DEAL-sub001/internal/config"
	"github.com/martingeoffreyprive-hub/DEAL-sub001/internal/logger"
	"github.com/martingeoffreyprive-hub/DEAL-sub001/locale"
	"github.com/martingeoffreyprive-hub/DEAL-sub001/templatestore"
	"go.uber.org/zap"
)

type renderConfig struct {
	template   string
	templateID string
	userID     string
	data       string
	locale     string
	out        string
	qrSize     int
}

func main() {
	cfg, err := parseFlags()
	if err != nil {
		reportError(err)
	}

	if err := run(context.Background(), cfg); err != nil {
		reportError(err)
	}
}

func reportError(err error) {
	fmt.Fprintf(os.Stderr, "deal-render: %v\n", err)
	os.Exit(1)
}

func parseFlags() (renderConfig, error) {
	var cfg renderConfig

	flag.StringVar(&cfg.template, "template", "quote", "template file (.json, .yaml, .yml) or built-in template type")
	flag.StringVar(&cfg.templateID, "template-id", "", "render a stored template by id (requires DATABASE_URL)")
	flag.StringVar(&cfg.userID, "user", "", "user the stored template is read for")
	flag.StringVar(&cfg.data, "data", "", "JSON or YAML data file (sample data when empty)")
	flag.StringVar(&cfg.locale, "locale", "", "force the locale (fr-BE, fr-FR, fr-CH)")
	flag.StringVar(&cfg.out, "out", "", "output HTML path (stdout when empty)")
	flag.IntVar(&cfg.qrSize, "qr-size", 0, "default QR code size in pixels")

	flag.Parse()

	if cfg.locale != "" {
		code, ok := locale.ParseCode(cfg.locale)
		if !ok {
			return renderConfig{}, fmt.Errorf("unsupported locale %q (want one of %v)", cfg.locale, locale.Codes())
		}
		cfg.locale = string(code)
	}
	if cfg.templateID != "" && cfg.userID == "" {
		return renderConfig{}, errors.New("-user is required with -template-id")
	}
	return cfg, nil
}

func run(ctx context.Context, cfg renderConfig) error {
	env, err := config.Load()
	if err != nil {
		return err
	}
	log, err := logger.New(env.LogLevel)
	if err != nil {
		return err
	}
	defer log.Sync()

	data, err := loadData(cfg.data)
	if err != nil {
		return err
	}
	if _, ok := data["locale"]; !ok && cfg.locale == "" {
		data["locale"] = string(env.DefaultLocale)
	}

	var (
		tpl     doctemplate.DocumentTemplate
		service *templatestore.Service
	)
	if cfg.templateID != "" {
		var closeStore func()
		service, closeStore, err = openService(ctx, env, log)
		if err != nil {
			return err
		}
		defer closeStore()
		tpl, err = service.Get(ctx, cfg.userID, cfg.templateID)
	} else {
		tpl, err = loadTemplate(cfg.template)
	}
	if err != nil {
		return err
	}

	for _, key := range doctemplate.ExtractVariables(tpl) {
		if _, ok := data[key]; !ok {
			log.Warn("placeholder has no value", zap.String("key", key), zap.String("template_id", tpl.ID))
		}
	}

	opts := []doctemplate.Option{doctemplate.WithQRCodeSize(cfg.qrSize)}
	if cfg.locale != "" {
		opts = append(opts, doctemplate.WithLocale(cfg.locale))
	}
	html := doctemplate.GenerateHTMLPreview(tpl, data, opts...)

	if err := writeOutput(cfg.out, html); err != nil {
		return err
	}
	if service != nil {
		if err := service.RecordUsage(ctx, tpl.ID); err != nil {
			log.Warn("usage not recorded", zap.String("template_id", tpl.ID), zap.Error(err))
		}
	}
	log.Info("document rendered",
		zap.String("template_id", tpl.ID),
		zap.String("template", tpl.Name),
		zap.Int("bytes", len(html)),
	)
	return nil
}

func loadData(path string) (map[string]any, error) {
	if path == "" {
		return doctemplate.SampleData(), nil
	}
	data, err := doctemplate.LoadDataFile(path)
	if err != nil {
		return nil, fmt.Errorf("load data: %w", err)
	}
	if data == nil {
		data = map[string]any{}
	}
	return data, nil
}

func loadTemplate(ref string) (doctemplate.DocumentTemplate, error) {
	switch strings.ToLower(filepath.Ext(ref)) {
	case ".json", ".yaml", ".yml":
		tpl, err := doctemplate.LoadTemplateFile(ref)
		if err != nil {
			return doctemplate.DocumentTemplate{}, fmt.Errorf("load template: %w", err)
		}
		return tpl, nil
	}
	tpl, ok := doctemplate.DefaultTemplate(doctemplate.TemplateType(ref))
	if !ok {
		return doctemplate.DocumentTemplate{}, fmt.Errorf("no built-in template %q", ref)
	}
	return tpl, nil
}

func openService(ctx context.Context, env *config.Config, log *zap.Logger) (*templatestore.Service, func(), error) {
	pool, err := templatestore.NewPool(ctx, env.DatabaseURL)
	if err != nil {
		return nil, nil, err
	}
	closers := []func(){pool.Close}

	var store templatestore.RowStore = templatestore.NewPostgresStore(pool)
	if env.RedisURL != "" {
		client, err := templatestore.NewRedisClient(env.RedisURL)
		if err != nil {
			pool.Close()
			return nil, nil, fmt.Errorf("redis: %w", err)
		}
		closers = append(closers, func() { _ = client.Close() })
		store = templatestore.NewCachedStore(store, client, env.CacheTTL, log)
	}

	closeAll := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}
	return templatestore.NewService(store, templatestore.WithLogger(log)), closeAll, nil
}

func writeOutput(path, html string) error {
	var w io.Writer = os.Stdout
	if path != "" {
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return err
			}
		}
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	_, err := io.WriteString(w, html)
	return err
}
