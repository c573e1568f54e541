// Command haikupuzzle renders haiku puzzle sheets to PDF.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/tsawler/haikupuzzle/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// defaultInput is read when render is given no input file
const defaultInput = "haikus_input.csv"

// cli holds the state shared by every command
type cli struct {
	out io.Writer

	// Global flags
	configPath string
	verbose    bool

	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd(out io.Writer) *cobra.Command {
	c := &cli{out: out, logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "haikupuzzle",
		Short: "Render haiku puzzle sheets to PDF",
		Long: `haikupuzzle draws haikus read from a semicolon separated table onto
printable PDF sheets, as heart-linked triplets, tags or puzzle pieces.

Settings are read from a YAML file and may be overridden with the
HAIKU_FONT_PATH, HAIKU_FONT_SIZE, HAIKU_PAGE_SIZE and HAIKU_LAYOUT
environment variables.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Initialize logger
			zc := zap.NewProductionConfig()
			if c.verbose {
				zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			logger, err := zc.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			c.logger = logger

			cfg, err := config.Load(c.configPath)
			if err != nil {
				return err
			}
			c.cfg = cfg
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if c.logger != nil {
				_ = c.logger.Sync()
			}
		},
	}
	root.SetOut(out)

	root.PersistentFlags().StringVar(&c.configPath, "config", "haikupuzzle.yaml", "configuration file")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "log page breaks")

	root.AddCommand(c.renderCmd(), c.jigsawCmd())
	return root
}

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}
