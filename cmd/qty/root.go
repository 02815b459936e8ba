package main

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// options holds the resolved global settings of one invocation.
type options struct {
	output     string
	precision  int
	verbose    bool
	configPath string

	cpuProfilePath string
	memProfilePath string
	stopCPUProfile func() error
	started        bool

	log    *logrus.Logger
	stdout io.Writer
}

func newRootCommand(opts *options, stdout, stderr io.Writer) *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("QTY")
	v.AutomaticEnv()

	log := logrus.New()
	log.SetOutput(stderr)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	log.SetLevel(logrus.WarnLevel)
	opts.log = log
	opts.stdout = stdout

	root := &cobra.Command{
		Use:   "qty",
		Short: "Parse, convert and compute with physical quantities",
		Long: `qty parses quantity expressions such as "2.5 kg*m/s^2" or "37 tempC",
converts them between compatible units and evaluates arithmetic with unit
cancellation.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.complete(v)
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	flags := root.PersistentFlags()
	flags.StringP("output", "o", "text", "output format: text, json or yaml")
	flags.Int("precision", -1, "round scalars to this many decimals; negative keeps full precision")
	flags.BoolP("verbose", "v", false, "log each step to stderr")
	flags.StringVar(&opts.configPath, "config", "", "YAML file with output and precision defaults")
	flags.StringVar(&opts.cpuProfilePath, "cpuprofile", "", "write CPU profile to file")
	flags.StringVar(&opts.memProfilePath, "memprofile", "", "write memory profile to file")
	bindFlags(v, flags, "output", "precision", "verbose")

	root.AddCommand(
		newParseCommand(opts),
		newConvertCommand(opts),
		newCalcCommand(opts),
		newInverseCommand(opts),
		newKindsCommand(opts),
		newUnitsCommand(opts),
		newAliasesCommand(opts),
	)
	return root
}

// bindFlags makes the named flags resolvable through v, so a flag that was
// not set falls back to the environment and then the config file.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet, names ...string) {
	for _, name := range names {
		if err := v.BindPFlag(name, flags.Lookup(name)); err != nil {
			panic(err)
		}
	}
}

// complete resolves settings from flags, QTY_ environment variables and the
// config file, in that order of precedence.
func (o *options) complete(v *viper.Viper) error {
	if o.configPath != "" {
		v.SetConfigFile(o.configPath)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return failed(fmt.Errorf("read config %s: %w", o.configPath, err))
		}
	}

	o.output = v.GetString("output")
	o.precision = v.GetInt("precision")
	o.verbose = v.GetBool("verbose")
	switch o.output {
	case "text", "json", "yaml":
	default:
		return fmt.Errorf("invalid output format %q: want text, json or yaml", o.output)
	}
	if o.verbose {
		o.log.SetLevel(logrus.DebugLevel)
	}

	if o.cpuProfilePath != "" {
		stop, err := startCPUProfile(o.cpuProfilePath)
		if err != nil {
			return failed(err)
		}
		o.stopCPUProfile = stop
	}
	o.started = true
	return nil
}
