package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	vasp "github.com/rmera/govasp"
	"github.com/rmera/govasp/vplot"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const bandLongDescription = `Plot the spin-polarized band structure in BAND.dat, with the
high-symmetry points in KLABELS. If the k-path has discontinuities
(labels such as X|Y), one plot is written for each continuous segment:
fig_0.pdf, fig_1.pdf and so on.`

func newBandCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "band",
		Short: "Plot a band structure",
		Long:  bandLongDescription,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runBand(cmd.OutOrStdout())
		},
	}
	cmd.Flags().String(klabelsKey, defaultKLabels, "high-symmetry points file")
	cmd.Flags().String(bandKey, defaultBand, "band structure table (k, spin up, spin down)")
	bindFlag(a.v, cmd.Flags().Lookup(klabelsKey), klabelsKey)
	bindFlag(a.v, cmd.Flags().Lookup(bandKey), bandKey)
	return cmd
}

func (a *app) runBand(w io.Writer) error {
	outcar := a.v.GetString(outcarKey)
	klabels := a.v.GetString(klabelsKey)
	band := a.v.GetString(bandKey)
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
	labels, err := vasp.ReadKLabels(klabels)
	if err != nil {
		return err
	}
	table, err := vasp.ReadBandTable(band)
	if err != nil {
		return err
	}
	a.log.Debug("Band structure read",
		zap.String("outcar", outcar),
		zap.String("klabels", klabels),
		zap.String("band", band),
		zap.Float64("fermi", fermi),
		zap.Int("labels", len(labels)),
		zap.Int("rows", table.Len()))

	figs := vplot.BandFigures(table, labels, ref)
	writeSegments(w, labels, figs)
	paths, err := out.SaveAll(figs)
	for _, p := range paths {
		a.log.Info("Plot written", zap.String("file", p))
	}
	if err != nil {
		return err
	}
	return a.show(paths)
}

// writeSegments prints the high-symmetry points and the plot where
// each of them appears.
func writeSegments(w io.Writer, labels []vasp.KLabel, figs []vplot.Figure) {
	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"Label", "Position", "Plot"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_LEFT})
	for _, l := range labels {
		table.Append([]string{l.TickLabel(), strconv.FormatFloat(l.Pos, 'f', 3, 64), figsFor(l.Pos, figs)})
	}
	table.SetFooter([]string{"", "", fmt.Sprintf("%d plot(s)", len(figs))})
	table.Render()
}

// figsFor returns the names of the figures whose X range contains pos.
func figsFor(pos float64, figs []vplot.Figure) string {
	var ret string
	for _, f := range figs {
		if pos < f.XMin || pos > f.XMax {
			continue
		}
		if ret != "" {
			ret += ", "
		}
		ret += f.Name
	}
	return ret
}
