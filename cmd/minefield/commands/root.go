package commands

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/vancomm/minefield-annotator/internal/config"
	"github.com/vancomm/minefield-annotator/internal/logging"
	"github.com/vancomm/minefield-annotator/internal/mines"
)

type globals struct {
	envFile  string
	logLevel string
	logFile  string
	log      *logrus.Logger
}

func NewRootCmd() *cobra.Command {
	g := &globals{}

	root := &cobra.Command{
		Use:           "minefield",
		Short:         "Annotate minefields with adjacent mine counts",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var files []string
			if g.envFile != "" {
				files = append(files, g.envFile)
			}
			if err := config.Load(files...); err != nil {
				return err
			}
			opts := logging.Options{
				Development: config.Development(),
				Level:       config.LogLevel(),
				File:        config.LogFile(),
			}
			if g.logLevel != "" {
				opts.Level = g.logLevel
			}
			if g.logFile != "" {
				opts.File = g.logFile
			}
			log, err := logging.New(opts)
			if err != nil {
				return err
			}
			log.SetOutput(cmd.ErrOrStderr())
			g.log = log
			mines.Log = log
			return nil
		},
	}

	root.PersistentFlags().StringVar(&g.envFile, "env-file", "", "load environment from file (default .env when present)")
	root.PersistentFlags().StringVar(&g.logLevel, "log-level", "", "log level (overrides LOG_LEVEL)")
	root.PersistentFlags().StringVar(&g.logFile, "log-file", "", "rotated JSON log file (overrides LOG_FILE)")

	root.AddCommand(annotateCmd(g), serveCmd(g))
	return root
}

func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := NewRootCmd()
	if err := root.ExecuteContext(ctx); err != nil {
		root.PrintErrln("Error:", err)
		return err
	}
	return nil
}
