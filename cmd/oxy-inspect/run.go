package main

import (
	"github.com/Carmen-Shannon/oxy-inspect/engine"
	"github.com/Carmen-Shannon/oxy-inspect/engine/config"
	"github.com/Carmen-Shannon/oxy-inspect/engine/loader"
	"github.com/Carmen-Shannon/oxy-inspect/engine/logging"
	"github.com/Carmen-Shannon/oxy-inspect/engine/record"
	"github.com/Carmen-Shannon/oxy-inspect/engine/renderer"
	"github.com/Carmen-Shannon/oxy-inspect/engine/scene"
	"github.com/Carmen-Shannon/oxy-inspect/engine/window"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// resolveConfig loads the configuration file and applies the command-line overrides on top.
func resolveConfig(opts *options, model string) (config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return cfg, err
	}
	if model != "" {
		cfg.Scene.Model = model
	}
	if opts.records != "" {
		cfg.Scene.Records = opts.records
	}
	if opts.logFile != "" {
		cfg.Log.File = opts.logFile
	}
	if opts.logLevel != "" {
		cfg.Log.Level = opts.logLevel
	}
	if opts.policy != "" {
		cfg.Picking.Policy = opts.policy
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	if cfg.Scene.Model == "" {
		return cfg, errors.New("no model given: pass a path or set scene.model")
	}
	return cfg, nil
}

// loadRecords builds the record store. A missing records path yields a store holding only the
// configured default record.
func loadRecords(cfg config.Config, logger *zap.Logger) (record.Store, error) {
	opts := []record.StoreBuilderOption{record.WithDefault(cfg.Scene.DefaultRecord)}
	if cfg.Scene.Records == "" {
		logger.Warn("no records file configured, selections will show no details")
		return record.NewStore(opts...), nil
	}
	records, err := record.Load(cfg.Scene.Records)
	if err != nil {
		return nil, err
	}
	return record.NewStore(append(opts, record.WithRecords(records))...), nil
}

// loadScene reads the model with the configured material override.
func loadScene(cfg config.Config, logger *zap.Logger) (scene.Scene, error) {
	l := loader.NewLoader(loader.BackendTypeGLTF,
		loader.WithSurfaceOverride(cfg.Scene.MaterialRoughness, cfg.Scene.MaterialMetalness),
		loader.WithLogger(logger.Named("loader")),
	)
	return l.Load(cfg.Scene.Model)
}

func runViewer(opts *options, model string) error {
	cfg, err := resolveConfig(opts, model)
	if err != nil {
		return err
	}
	logger, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	scn, err := loadScene(cfg, logger)
	if err != nil {
		return err
	}
	records, err := loadRecords(cfg, logger)
	if err != nil {
		return err
	}
	for _, name := range records.Names() {
		if scn.Get(name) == nil {
			logger.Warn("record has no matching object", zap.String("object", name))
		}
	}

	win := window.NewWindow(
		window.WithTitle(cfg.Window.Title+" - "+scn.Name()),
		window.WithSize(cfg.Window.Width, cfg.Window.Height),
	)
	r, err := renderer.NewRenderer(renderer.BackendTypeWGPU, win,
		renderer.WithBackground(cfg.Scene.Background),
		renderer.WithForceSoftwareRenderer(opts.software),
		renderer.WithLogger(logger.Named("renderer")),
	)
	if err != nil {
		_ = win.Close()
		return errors.Wrap(err, "creating renderer")
	}

	eng := engine.NewEngine(scn,
		engine.WithConfig(cfg),
		engine.WithWindow(win),
		engine.WithRenderer(r),
		engine.WithRecords(records),
		engine.WithProfiling(opts.profile),
		engine.WithLogger(logger),
	)
	return eng.Run()
}
