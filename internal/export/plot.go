package export

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/fluidlab/gasmix/internal/sweep"
)

// SavePlot renders the named property series against temperature and writes
// it to path; the format follows the file extension (png, svg, pdf).
func SavePlot(path, property string, res *sweep.Result) error {
	series, label := selectSeries(property, res)

	p := plot.New()
	p.Title.Text = "mixture " + label
	p.X.Label.Text = "temperature (K)"
	p.Y.Label.Text = label

	pts := make(plotter.XYs, len(res.Temperatures))
	for i := range pts {
		pts[i].X = res.Temperatures[i]
		pts[i].Y = series[i]
	}

	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	p.Add(line, plotter.NewGrid())

	return p.Save(6*vg.Inch, 4*vg.Inch, path)
}

func selectSeries(property string, res *sweep.Result) ([]float64, string) {
	switch property {
	case "density":
		return res.Density, "density (kg/m^3)"
	case "conductivity":
		return res.Conductivity, "thermal conductivity (W/m/K)"
	case "cp":
		return res.Cp, "specific heat (J/kg/K)"
	default:
		return res.Viscosity, "viscosity (Pa s)"
	}
}
