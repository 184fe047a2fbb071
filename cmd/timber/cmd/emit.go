package cmd

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"

	"github.com/willibrandon/timber"
	"github.com/willibrandon/timber/configuration"
	"github.com/willibrandon/timber/core"
	"github.com/willibrandon/timber/sinks"
)

func (c *command) initEmitCmd() {
	cmd := &cobra.Command{
		Use:   "emit <message> [args...]",
		Short: "Dispatch one call to every configured sink",
		Long: `Dispatch one call to every configured sink.

The message is a printf-style template; the remaining arguments fill its
placeholders. Without --config or --environment the call goes to a console
sink on standard output.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			level, err := core.ParseLevel(c.config.GetString(optionNameLevel))
			if err != nil {
				return err
			}
			tags, err := parseTags(c.tagPairs(cmd))
			if err != nil {
				return err
			}
			if len(tags) > 0 && level != core.AnalyticsLevel {
				return errors.Errorf("--%s is only valid with --%s analytics", optionNameTag, optionNameLevel)
			}

			var cause error
			if msg := c.config.GetString(optionNameError); msg != "" {
				cause = errors.New(msg)
			}

			r, err := c.buildRegistry(cmd)
			if err != nil {
				return err
			}
			defer func() {
				err = multierr.Append(err, r.Close())
			}()

			return r.Dispatch(level, args[0], cause, tags, toArgs(args[1:])...)
		},
	}

	cmd.Flags().String(optionNameLevel, "info", "verbose, debug, info, warn, error, assert or analytics")
	cmd.Flags().StringArray(optionNameTag, nil, "analytics tag as key=value, can be repeated")
	cmd.Flags().String(optionNameError, "", "attach an error with this message")
	_ = c.config.BindPFlags(cmd.Flags())

	c.root.AddCommand(cmd)
}

func (c *command) buildRegistry(cmd *cobra.Command) (*timber.Registry, error) {
	var (
		config *configuration.Configuration
		err    error
	)
	switch {
	case c.config.GetString(optionNameConfig) != "":
		config, err = configuration.LoadFromFile(c.config.GetString(optionNameConfig))
	case c.config.GetString(optionNameEnvironment) != "":
		config, err = configuration.LoadForEnvironment("", c.config.GetString(optionNameEnvironment))
	default:
		config = &configuration.Configuration{}
	}
	if err != nil {
		return nil, err
	}
	if config.Timber.Name == "" {
		config.Timber.Name = c.config.GetString(optionNameName)
	}

	r, err := configuration.NewRegistryBuilder().Build(config)
	if err != nil {
		return nil, err
	}

	if len(config.Timber.Sinks) == 0 && len(c.extraSinks) == 0 {
		if err := r.Register(sinks.NewConsoleSinkWithWriter(cmd.OutOrStdout())); err != nil {
			return nil, multierr.Append(err, r.Close())
		}
	}
	if err := r.Register(c.extraSinks...); err != nil {
		return nil, multierr.Append(err, r.Close())
	}
	return r, nil
}

// tagPairs reads --tag verbatim so values may hold commas. Without the
// flag, tags come from the environment through viper.
func (c *command) tagPairs(cmd *cobra.Command) []string {
	if cmd.Flags().Changed(optionNameTag) {
		pairs, err := cmd.Flags().GetStringArray(optionNameTag)
		if err == nil {
			return pairs
		}
	}
	return c.config.GetStringSlice(optionNameTag)
}

func parseTags(pairs []string) (map[string]string, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	tags := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		k, v, ok := strings.Cut(pair, "=")
		if !ok || k == "" {
			return nil, errors.Errorf("invalid tag %q, expected key=value", pair)
		}
		tags[k] = v
	}
	return tags, nil
}

func toArgs(args []string) []any {
	out := make([]any, len(args))
	for i, a := range args {
		out[i] = a
	}
	return out
}
