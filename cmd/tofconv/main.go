package main

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"runtime/debug"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/bft-labs/tofconv/internal/cliconfig"
	"github.com/bft-labs/tofconv/pkg/log"
	"github.com/bft-labs/tofconv/pkg/tofconv"
)

const longHelp = `Convert between neutron time-of-flight and neutron kinetic energy.

The conversion uses the non-relativistic relation E = m·L²/(2·t²) with the
neutron mass m = 1.67493e-27 kg and the flight-path length L from source to
detector. Quantities are given as a value followed by a unit.

Units:
  length  cm, m, km
  time    ns, us (µs), ms, s
  energy  eV, keV, MeV, GeV, J`

var exampleUsage = strings.TrimSpace(`
  tofconv to_energy --length-of-flight-path 10 m --time-of-flight 1000 us
  tofconv to_energy -l 20 m -t 1.5 us --unit MeV
  tofconv to_tof --length-of-flight-path 10 m --energy 0.0253 eV --unit ms
`)

// pairFlags are the flags that take two tokens.
var pairFlags = map[string]bool{
	"--length-of-flight-path": true, "-l": true,
	"--time-of-flight": true, "-t": true,
	"--energy": true, "-e": true,
}

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func main() {
	root := newRootCmd(os.Stdout, os.Stderr)
	root.SetArgs(joinPairArgs(os.Args[1:], pairFlags))

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// app carries state shared by the root command and its subcommands.
type app struct {
	cfg     cliconfig.Config
	cfgPath string
	logger  zerolog.Logger
	stderr  io.Writer
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{cfg: cliconfig.DefaultConfig(), stderr: stderr}

	root := &cobra.Command{
		Use:           "tofconv",
		Short:         "Convert between neutron time-of-flight and energy",
		Long:          longHelp,
		Example:       exampleUsage,
		Version:       fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load(cmd)
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	root.PersistentFlags().StringVar(&a.cfgPath, "config", "", "path to a TOML or YAML config file")
	root.PersistentFlags().IntVarP(&a.cfg.Precision, "precision", "p", a.cfg.Precision, "significant digits in the result (1-9)")
	root.PersistentFlags().StringVar(&a.cfg.LogLevel, "log-level", a.cfg.LogLevel, "log level (debug, info, warn, error)")

	root.AddCommand(a.toEnergyCmd(), a.toTOFCmd())
	return root
}

// load applies the config file, validates the result and builds the logger.
// Flags win over the file, the file wins over defaults.
func (a *app) load(cmd *cobra.Command) error {
	changed := map[string]bool{}
	cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

	if a.cfgPath != "" {
		fc, err := cliconfig.LoadFileConfig(a.cfgPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cliconfig.ApplyFileConfig(&a.cfg, fc, changed)
	}

	if err := a.cfg.Validate(); err != nil {
		return err
	}
	lvl, err := a.cfg.Level()
	if err != nil {
		return err
	}
	a.logger = cliconfig.Logger(a.stderr, lvl)
	a.logger.Debug().Interface("config", a.cfg).Msg("configuration")
	return nil
}

func (a *app) converter() *tofconv.Converter {
	return tofconv.New(
		tofconv.WithLogger(log.NewZerologAdapterWithLogger(a.logger)),
		tofconv.WithPrecision(a.cfg.Precision),
	)
}

func (a *app) toEnergyCmd() *cobra.Command {
	var length, tof quantityFlag

	cmd := &cobra.Command{
		Use:     "to_energy",
		Aliases: []string{"to-energy"},
		Short:   "Convert a time-of-flight to neutron energy",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := a.converter().ToEnergy(length.in, tof.in, a.cfg.EnergyUnit)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Energy = %s\n", out)
			return nil
		},
	}

	cmd.Flags().VarP(&length, "length-of-flight-path", "l", "flight path length from source to target: <VALUE> <UNIT>")
	cmd.Flags().VarP(&tof, "time-of-flight", "t", "time-of-flight to convert: <VALUE> <UNIT>")
	cmd.Flags().StringVarP(&a.cfg.EnergyUnit, "unit", "u", a.cfg.EnergyUnit, "energy unit of the result (eV, keV, MeV, GeV, J)")
	mustMarkRequired(cmd, "length-of-flight-path", "time-of-flight")
	return cmd
}

func (a *app) toTOFCmd() *cobra.Command {
	var length, energy quantityFlag

	cmd := &cobra.Command{
		Use:     "to_tof",
		Aliases: []string{"to-tof"},
		Short:   "Convert a neutron energy to time-of-flight",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := a.converter().ToTOF(length.in, energy.in, a.cfg.TimeUnit)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "TOF = %s\n", out)
			return nil
		},
	}

	cmd.Flags().VarP(&length, "length-of-flight-path", "l", "flight path length from source to target: <VALUE> <UNIT>")
	cmd.Flags().VarP(&energy, "energy", "e", "neutron energy to convert: <VALUE> <UNIT>")
	cmd.Flags().StringVarP(&a.cfg.TimeUnit, "unit", "u", a.cfg.TimeUnit, "time unit of the result (ns, us, ms, s)")
	mustMarkRequired(cmd, "length-of-flight-path", "energy")
	return cmd
}

func mustMarkRequired(cmd *cobra.Command, names ...string) {
	for _, name := range names {
		if err := cmd.MarkFlagRequired(name); err != nil {
			panic(err)
		}
	}
}
