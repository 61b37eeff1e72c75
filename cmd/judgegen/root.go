package main

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	flag "github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/judgegen/recipe"
)

const (
	cfgSeed       = "seed"
	cfgLogLevel   = "log.level"
	cfgCheck      = "check"
	cfgConfigFile = "config"

	envPrefix = "JUDGEGEN"
)

var (
	logLevels = map[string]logrus.Level{
		"trace": logrus.TraceLevel,
		"debug": logrus.DebugLevel,
		"info":  logrus.InfoLevel,
		"warn":  logrus.WarnLevel,
		"error": logrus.ErrorLevel,
		"off":   logrus.PanicLevel,
	}

	log = logrus.WithField("module", "judgegen")
)

// driver holds the settings shared by every subcommand.
type driver struct {
	v       *viper.Viper
	cfgFile string
}

func newRootCmd() *cobra.Command {
	d := &driver{v: viper.New()}
	d.v.SetEnvPrefix(envPrefix)
	d.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	d.v.AutomaticEnv()

	root := &cobra.Command{
		Use:          "judgegen",
		Short:        "generate randomized test data for programming-contest judges",
		SilenceUsage: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return d.init()
		},
	}

	persistentFlags := flag.NewFlagSet("", flag.ContinueOnError)
	persistentFlags.Uint64(cfgSeed, 0, "seed for a reproducible run (unset: fresh entropy)")
	persistentFlags.String(cfgLogLevel, "warn", "log level (trace debug info warn error off)")
	persistentFlags.Bool(cfgCheck, false, "verify structures before printing them")
	persistentFlags.StringVar(&d.cfgFile, cfgConfigFile, "", "config file")
	if err := d.v.BindPFlags(persistentFlags); err != nil {
		panic(fmt.Sprintf("judgegen: binding persistent flags: %v", err))
	}
	root.PersistentFlags().AddFlagSet(persistentFlags)

	root.AddCommand(
		d.runCmd(),
		d.treeCmd(),
		d.graphCmd(),
		d.permCmd(),
		d.uniqueCmd(),
		d.pointsCmd(),
	)

	return root
}

// init reads the optional config file and applies the log level.
func (d *driver) init() error {
	if d.cfgFile != "" {
		d.v.SetConfigFile(d.cfgFile)
		if err := d.v.ReadInConfig(); err != nil {
			return fmt.Errorf("unable to read config file '%s': %w", d.cfgFile, err)
		}
	}

	name := d.v.GetString(cfgLogLevel)
	level, ok := logLevels[name]
	if !ok {
		return fmt.Errorf("log.level must be one of trace, debug, info, warn, error, off; got %q", name)
	}
	logrus.SetLevel(level)

	return nil
}

// seed returns the configured seed, or nil when neither the flag, the
// environment nor the config file set one.
func (d *driver) seed() *uint64 {
	if !d.v.IsSet(cfgSeed) {
		return nil
	}
	s := d.v.GetUint64(cfgSeed)
	return &s
}

// execute runs rec against the command's output, overriding its seed when one
// is configured.
func (d *driver) execute(cmd *cobra.Command, rec *recipe.Recipe) error {
	if s := d.seed(); s != nil {
		rec.Seed = s
	}
	if rec.Seed != nil {
		log.WithField("seed", *rec.Seed).Info("running seeded")
	}
	return rec.Run(cmd.OutOrStdout(), d.v.GetBool(cfgCheck))
}

// single wraps one step into a recipe and executes it.
func (d *driver) single(cmd *cobra.Command, step recipe.Step) error {
	return d.execute(cmd, &recipe.Recipe{Steps: []recipe.Step{step}})
}
