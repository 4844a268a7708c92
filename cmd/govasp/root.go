package main

import (
	"fmt"
	"io"
	"os"

	vasp "github.com/rmera/govasp"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const rootLongDescription = `govasp plots the results of VASP calculations post-processed
with vaspkit: band structures (from BAND.dat and KLABELS) and total densities
of states (from TDOS.dat). The Fermi energy is read from OUTCAR.

Settings can be given as flags, in a govasp.yaml file in the current
directory (or the file given with --config), or as GOVASP_* environment
variables (GOVASP_ZERO_FERMI, GOVASP_WINDOW...).`

// app holds what the commands share.
type app struct {
	v       *viper.Viper
	log     *zap.Logger
	logFile io.Closer //nil unless logging to a file.
}

// Execute runs the govasp command line. It is called by main.main().
func Execute() {
	cmd, a := newRoot()
	err := cmd.Execute()
	a.finish(err)
	if err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd, _ := newRoot()
	return cmd
}

func newRoot() (*cobra.Command, *app) {
	a := &app{v: newViper(), log: zap.NewNop()}
	cmd := &cobra.Command{
		Use:          "govasp",
		Short:        "Plot VASP band structures and densities of states",
		Long:         rootLongDescription,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup()
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
	f := cmd.PersistentFlags()
	f.String(configKey, "", "configuration file (default ./govasp.yaml)")
	f.String(outcarKey, defaultOutcar, "log file with the Fermi energy")
	f.String(titleKey, "", "plot title; the Fermi energy is appended to it")
	f.Bool(zeroFermiKey, true, "show energies relative to the Fermi level")
	f.Float64(windowKey, vasp.DefaultWindow, "eV plotted above and below the Fermi level")
	f.StringP(outputDirKey, "o", ".", "directory for the plots")
	f.String(formatKey, "pdf", "plot file format (pdf, png, svg, eps, jpg, tif)")
	f.Float64(widthKey, defaultWidth, "plot width in inches")
	f.Float64(heightKey, defaultHeight, "plot height in inches")
	f.Bool(showKey, false, "open the plots with the desktop viewer once written")
	f.BoolP(verboseKey, "v", false, "log debug information")
	f.String("log-file", "", "also log to this file, rotated")
	for _, key := range []string{configKey, outcarKey, titleKey, zeroFermiKey, windowKey,
		outputDirKey, formatKey, widthKey, heightKey, showKey, verboseKey} {
		bindFlag(a.v, f.Lookup(key), key)
	}
	bindFlag(a.v, f.Lookup("log-file"), logFileKey)

	cmd.AddCommand(newBandCmd(a), newDosCmd(a), newConfigCmd(a))
	return cmd, a
}

// bindFlag wires a flag to a viper key, so config and environment values feed the flag.
func bindFlag(v *viper.Viper, flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}
	cobra.CheckErr(v.BindPFlag(key, flag))
}

func (a *app) setup() error {
	if err := readConfig(a.v); err != nil {
		return err
	}
	logger, logFile, err := newLogger(a.v)
	if err != nil {
		return err
	}
	a.log = logger
	a.logFile = logFile
	if file := a.v.ConfigFileUsed(); file != "" {
		a.log.Debug("Configuration read", zap.String("file", file))
	}
	return nil
}

// finish logs err, if any, and flushes and closes the logs. It runs after
// every command, failed or not.
func (a *app) finish(err error) {
	if err != nil {
		a.log.Error("Command failed", zap.Error(err))
	}
	_ = a.log.Sync()
	if a.logFile != nil {
		_ = a.logFile.Close()
		a.logFile = nil
	}
}
