package main

import (
	"fmt"
	"io"
	"strconv"

	vasp "github.com/rmera/govasp"
	"github.com/rmera/govasp/vplot"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newDosCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dos",
		Short: "Plot a total density of states",
		Long:  "Plot the spin-polarized total density of states in TDOS.dat to fig.pdf.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runDos(cmd.OutOrStdout())
		},
	}
	cmd.Flags().String(tdosKey, defaultTDOS, "density of states table (energy, spin up, spin down)")
	bindFlag(a.v, cmd.Flags().Lookup(tdosKey), tdosKey)
	return cmd
}

func (a *app) runDos(w io.Writer) error {
	outcar := a.v.GetString(outcarKey)
	tdos := a.v.GetString(tdosKey)
	out := output(a.v)
	if err := out.Check(); err != nil {
		return err
	}

	fermi, err := vasp.ReadFermiEnergy(outcar)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, "Fermi energy:", strconv.FormatFloat(fermi, 'f', -1, 64))
	ref, err := vasp.NewReference(fermi, options(a.v))
	if err != nil {
		return err
	}
	table, err := vasp.ReadDosTable(tdos)
	if err != nil {
		return err
	}
	a.log.Debug("Density of states read",
		zap.String("outcar", outcar),
		zap.String("tdos", tdos),
		zap.Float64("fermi", fermi),
		zap.Int("rows", table.Len()))

	path, err := out.Save(vplot.DosFigure(table, ref))
	if err != nil {
		return err
	}
	a.log.Info("Plot written", zap.String("file", path))
	return a.show([]string{path})
}
