package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/moai-adk/moai-statusline/internal/config"
	"github.com/moai-adk/moai-statusline/internal/logging"
	"github.com/moai-adk/moai-statusline/internal/paths"
	"github.com/moai-adk/moai-statusline/internal/render"
	"github.com/moai-adk/moai-statusline/internal/task"
)

// appEnv bundles the loaded config and logger shared by subcommands.
type appEnv struct {
	cfg     *config.Config
	logger  *slog.Logger
	cleanup func()
}

// loadConfig reads --config, or the default config path.
func loadConfig() (*config.Config, error) {
	if configFile != "" {
		return config.LoadFromPath(configFile)
	}
	return config.Load()
}

// configPath returns --config, or the default config path.
func configPath() (string, error) {
	if configFile != "" {
		return configFile, nil
	}
	return paths.ConfigPath()
}

// newAppEnv loads config and sets up file logging.
// In lenient mode every failure is logged and replaced by a default, so
// the statusline always renders.
func newAppEnv(lenient bool) (*appEnv, error) {
	cfg, err := loadConfig()
	if err == nil {
		err = cfg.Validate()
	}
	var cfgErr error
	if err != nil {
		if !lenient {
			return nil, fmt.Errorf("load config: %w", err)
		}
		cfgErr = err
		cfg = nil
	}

	level := cfg.GetLogLevel()
	if logLevel != "" {
		level = logLevel
	}
	logger, cleanup := logging.Setup(cfg.GetLogFile(), logging.ParseLevel(level))
	e := &appEnv{cfg: cfg, logger: logger, cleanup: cleanup}

	if cfgErr != nil {
		logger.Warn("config ignored", "error", cfgErr)
	}
	return e, nil
}

func (e *appEnv) close() { e.cleanup() }

// detector builds a task detector from config.
func (e *appEnv) detector() *task.Detector {
	opts := []task.Option{
		task.WithTTL(e.cfg.GetCacheTTL()),
		task.WithLogger(e.logger),
	}
	if p := e.cfg.GetSessionState(); p != "" {
		opts = append(opts, task.WithPath(p))
	}
	return task.NewDetector(opts...)
}

// renderOptions merges render flags over config. An unknown format is
// reported alongside options that fall back to text.
func (e *appEnv) renderOptions() (render.Options, error) {
	name := e.cfg.GetFormat()
	if renderFormat != "" {
		name = renderFormat
	}
	format, err := render.ParseFormat(name)
	if err != nil {
		format = render.FormatText
	}

	width := e.cfg.GetMaxWidth()
	if renderMaxWidth >= 0 {
		width = renderMaxWidth
	}

	return render.Options{
		Format:   format,
		MaxWidth: width,
		Color:    e.cfg.GetColor() && !renderNoColor,
		Icon:     e.cfg.GetIcon(),
	}, err
}

func (e *appEnv) renderer(w io.Writer) (*render.Renderer, error) {
	opts, err := e.renderOptions()
	return render.New(w, opts), err
}
