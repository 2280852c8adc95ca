package main

import (
	"fmt"
	"io"

	"github.com/adammck/legsim/config"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var log = logrus.WithFields(logrus.Fields{
	"pkg": "main",
})

// flagKeys maps command line flags onto config keys.
var flagKeys = map[string]string{
	"log-level":   "log.level",
	"log-format":  "log.format",
	"log-file":    "log.file",
	"fps":         "sim.fps",
	"duration":    "sim.duration",
	"frames":      "sim.frames",
	"fixed-dt":    "sim.fixed_dt",
	"layout":      "sim.layout",
	"gait":        "sim.gait",
	"drive-all":   "sim.drive_all",
	"step-period": "sim.step_period",
	"mounted":     "sim.mounted",
	"body":        "sim.body",
	"format":      "render.format",
	"output":      "render.output",
	"orbit":       "camera.orbit",
	"zoom":        "camera.zoom",
}

// app holds the state shared between the root command and its children. It's
// created fresh for each root command, so tests don't share flags.
type app struct {
	cfgFile string
	cfg     *config.Config
	logs    io.Closer
	runID   string
}

func newRootCommand() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:           "legsim",
		Short:         "Simulate articulated robot legs",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return a.close()
		},
	}

	f := cmd.PersistentFlags()
	f.StringVarP(&a.cfgFile, "config", "c", "", "config file (yaml, toml or json)")
	f.String("log-level", "info", "log level (debug, info, warn, error)")
	f.String("log-format", "text", "log format (text or json)")
	f.String("log-file", "", "also write logs to this file, rotated by size")

	cmd.AddCommand(newRunCommand(a))
	return cmd
}

// init loads the config (defaults, then file, then environment, then any flags
// which were set) and configures logging.
func (a *app) init(cmd *cobra.Command) error {
	v, err := config.New(a.cfgFile)
	if err != nil {
		return err
	}

	for name, key := range flagKeys {
		f := cmd.Flags().Lookup(name)
		if f == nil {
			continue
		}

		err = v.BindPFlag(key, f)
		if err != nil {
			return fmt.Errorf("error binding flag %s: %w", name, err)
		}
	}

	a.cfg, err = config.Load(v)
	if err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	a.logs, err = config.ConfigureLogging(logrus.StandardLogger(), a.cfg.Log)
	if err != nil {
		return err
	}

	a.runID = uuid.NewString()
	logrus.AddHook(&runHook{a.runID})

	if a.cfgFile != "" {
		log.Infof("loaded config from %s", v.ConfigFileUsed())
	}

	return nil
}

func (a *app) close() error {
	if a.logs == nil {
		return nil
	}

	return a.logs.Close()
}

// runHook tags every log entry with the id of this run, so that interleaved
// runs writing to the same log file can be told apart.
type runHook struct {
	id string
}

func (h *runHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (h *runHook) Fire(e *logrus.Entry) error {
	e.Data["run"] = h.id
	return nil
}
