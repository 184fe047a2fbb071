// Package cmd implements the timber command line.
package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/willibrandon/timber/core"
)

const (
	optionNameConfig      = "config"
	optionNameEnvironment = "environment"
	optionNameName        = "name"
	optionNameLevel       = "level"
	optionNameTag         = "tag"
	optionNameError       = "error"
)

func init() {
	cobra.EnableCommandSorting = false
}

type command struct {
	root   *cobra.Command
	config *viper.Viper

	// extraSinks are registered on every registry the command builds.
	extraSinks []core.Sink
}

type option func(*command)

func newCommand(opts ...option) (c *command, err error) {
	c = &command{
		root: &cobra.Command{
			Use:           "timber",
			Short:         "Send log and analytics calls through configured sinks",
			SilenceErrors: true,
			SilenceUsage:  true,
		},
	}

	for _, o := range opts {
		o(c)
	}

	c.initConfig()
	c.initGlobalFlags()
	c.initEmitCmd()
	c.initLevelsCmd()

	return c, nil
}

func (c *command) Execute() (err error) {
	return c.root.Execute()
}

// Execute parses command line arguments and runs the selected command.
func Execute() (err error) {
	c, err := newCommand()
	if err != nil {
		return err
	}
	return c.Execute()
}

func (c *command) initGlobalFlags() {
	globalFlags := c.root.PersistentFlags()
	globalFlags.String(optionNameConfig, "", "JSON sink configuration file")
	globalFlags.String(optionNameEnvironment, "", "read timber.json and timber.<environment>.json from the working directory")
	globalFlags.String(optionNameName, "timber", "registry name shown in diagnostics")
	_ = c.config.BindPFlags(globalFlags)
}

func (c *command) initConfig() {
	config := viper.New()
	config.SetEnvPrefix("timber")
	config.AutomaticEnv()
	config.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.config = config
}
