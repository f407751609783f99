// Package export writes sweep results to CSV and PNG.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/fluidlab/gasmix/internal/sweep"
)

// WriteCSV writes one row per evaluated temperature: the mixture properties
// followed by per-species diffusivities.
func WriteCSV(w io.Writer, res *sweep.Result) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := []string{"temperature", "density", "viscosity", "conductivity", "cp"}
	for _, name := range res.SpeciesNames {
		header = append(header, fmt.Sprintf("D_%s", name))
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for i := range res.Temperatures {
		row := []string{
			formatValue(res.Temperatures[i]),
			formatValue(res.Density[i]),
			formatValue(res.Viscosity[i]),
			formatValue(res.Conductivity[i]),
			formatValue(res.Cp[i]),
		}
		for _, d := range res.Diffusivities[i] {
			row = append(row, formatValue(d))
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', 9, 64)
}
