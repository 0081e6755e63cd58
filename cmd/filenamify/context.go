package main

import (
	"strings"
	"sync"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tragoedia0722/filenamify/internal/config"
	"github.com/tragoedia0722/filenamify/internal/logging"
)

type commandContext struct {
	configFlag      string
	replacementFlag string
	maxLengthFlag   int
	verboseFlag     bool

	configOnce sync.Once
	config     *config.Config
	configErr  error
	logger     *zap.Logger
}

func newCommandContext() *commandContext {
	return &commandContext{}
}

// ensureConfig loads the config once and applies explicitly set flags on top.
func (c *commandContext) ensureConfig(cmd *cobra.Command) (*config.Config, error) {
	c.configOnce.Do(func() {
		cfg, err := config.Load(strings.TrimSpace(c.configFlag))
		if err != nil {
			c.configErr = err
			return
		}

		flags := cmd.Flags()
		if flags.Changed("replacement") {
			cfg.Replacement = c.replacementFlag
		}
		if flags.Changed("max-length") {
			cfg.MaxLength = c.maxLengthFlag
		}
		if flags.Changed("verbose") {
			cfg.Verbose = c.verboseFlag
		}

		if err := cfg.Validate(); err != nil {
			c.configErr = err
			return
		}

		c.config = cfg
		c.logger = logging.New(cmd.ErrOrStderr(), cfg.Verbose)
		c.logger.Debug("configuration loaded",
			zap.String("replacement", cfg.Replacement),
			zap.Int("max_length", cfg.MaxLength),
		)
	})
	return c.config, c.configErr
}

func (c *commandContext) log() *zap.Logger {
	if c.logger == nil {
		return zap.NewNop()
	}
	return c.logger
}
