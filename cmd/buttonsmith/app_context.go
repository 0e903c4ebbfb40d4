package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/buttonsmith/internal/config"
	"github.com/alexisbeaulieu97/buttonsmith/internal/logger"
	"github.com/alexisbeaulieu97/buttonsmith/internal/options"
)

// AppContext carries the loaded configuration and logger for one command.
type AppContext struct {
	Config     *config.Config
	ConfigPath string
	Logger     *logger.Logger

	closers []io.Closer
}

// newAppContext discovers the config file and builds the logger. Interactive
// commands without a log file get a silent logger so the terminal stays clean.
func newAppContext(cmd *cobra.Command, flags *rootFlags, interactive bool) (*AppContext, error) {
	cfg, path, err := config.Discover(flags.configPath)
	if err != nil {
		context := "reading " + path
		if path == "" {
			context = "reading configuration"
		}
		return nil, newCommandError("load configuration", context, err, "Fix the configuration errors shown above or pass --config with another file.")
	}

	app := &AppContext{Config: cfg, ConfigPath: path}

	var writer io.Writer = cmd.ErrOrStderr()
	switch file := cfg.LogFile(); {
	case file != "":
		f, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, newCommandError("open log file", file, err, "Check that the log directory exists and is writable.")
		}
		app.closers = append(app.closers, f)
		writer = f
	case interactive:
		app.Logger = logger.Nop()
		return app, nil
	}

	level := cfg.LogLevel()
	if flags.verbose {
		level = "debug"
	}

	log, err := logger.New(logger.Options{
		Level:         level,
		HumanReadable: cfg.HumanLogs(),
		Writer:        writer,
		Component:     cmd.Name(),
	})
	if err != nil {
		app.Close()
		return nil, newCommandError("create logger", "level "+level, err, "Use one of trace, debug, info, warn or error.")
	}
	app.Logger = log

	if path != "" {
		log.With("path", path).Debug("configuration loaded")
	}
	return app, nil
}

// Initial returns the built-in defaults overlaid with the config file.
func (a *AppContext) Initial() (options.Config, error) {
	initial, err := a.Config.Apply(options.Defaults())
	if err != nil {
		return options.Defaults(), newCommandError("apply configuration", "defaults section", err, "Use one of the listed values.")
	}
	return initial, nil
}

// Close releases any log file opened for this command.
func (a *AppContext) Close() {
	for _, c := range a.closers {
		_ = c.Close()
	}
	a.closers = nil
}
