// Command paraminfo describes the parameters of catalogued Go functions.
//
// Usage:
//
//	paraminfo list
//	paraminfo describe strings.Repeat --format yaml
//	paraminfo describe            # pick a function interactively
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/goliatone/go-paraminfo/pkg/catalog"
	"github.com/goliatone/go-paraminfo/pkg/prompt"
)

type app struct {
	logger   *zap.Logger
	registry *catalog.Registry
	driver   prompt.Driver
	out      io.Writer

	verbose   bool
	namesFile string
}

func main() {
	a := &app{
		registry: catalog.Default(),
		driver:   prompt.NewSurveyDriver(),
		out:      os.Stdout,
	}
	err := newRootCmd(a).Execute()
	if a.logger != nil {
		_ = a.logger.Sync()
	}
	if err != nil {
		os.Exit(1)
	}
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:          "paraminfo",
		Short:        "Inspect parameter types of Go functions",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := a.initLogger(); err != nil {
				return err
			}
			return a.loadOverlay()
		},
	}
	root.SetOut(a.out)
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().StringVar(&a.namesFile, "names", "", "JSON or YAML file overriding parameter names")

	root.AddCommand(newListCmd(a), newDescribeCmd(a))
	return root
}

func (a *app) initLogger() error {
	if a.logger != nil {
		return nil
	}
	config := zap.NewProductionConfig()
	if a.verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := config.Build()
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	a.logger = logger
	return nil
}

func (a *app) loadOverlay() error {
	if a.namesFile == "" {
		return nil
	}
	dir, file := filepath.Split(a.namesFile)
	if dir == "" {
		dir = "."
	}
	overlay, err := catalog.LoadNames(os.DirFS(dir), file)
	if err != nil {
		return err
	}
	if err := overlay.Apply(a.registry); err != nil {
		return err
	}
	a.logger.Debug("applied name overlay",
		zap.String("file", a.namesFile),
		zap.Int("functions", len(overlay)),
	)
	return nil
}
