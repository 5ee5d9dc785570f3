package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/OpenTraceLab/OpenTraceDRC/pkg/connectivity"
)

var plotOutput string

var plotCmd = &cobra.Command{
	Use:   "plot <schematic_file>",
	Short: "Render resolved connectivity as an image",
	Long: `Render the schematic's wire segments, colored per resolved net,
plus the estimated component pin positions. Output format follows the
file extension (.png, .svg, .pdf).`,
	Args: cobra.ExactArgs(1),
	RunE: runPlot,
}

func init() {
	rootCmd.AddCommand(plotCmd)
	plotCmd.Flags().StringVarP(&plotOutput, "output", "o", "connectivity.png", "output image file")
}

func runPlot(cmd *cobra.Command, args []string) error {
	_, result, err := loadGraph(args[0])
	if err != nil {
		return err
	}
	if result == nil {
		return fmt.Errorf("plot requires a .kicad_sch input (netlists carry no geometry)")
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Connectivity: %s", args[0])
	p.X.Label.Text = "X (mm)"
	p.Y.Label.Text = "Y (mm)"

	// Group segments by resolved net so each net gets one color and one
	// legend entry.
	byNet := make(map[string][]connectivity.Segment)
	for i, seg := range result.Segments {
		name := result.NetNames[result.Groups[i]]
		byNet[name] = append(byNet[name], seg)
	}

	var names []string
	for name := range byNet {
		names = append(names, name)
	}
	sort.Strings(names)

	for ci, name := range names {
		color := plotutil.Color(ci)
		first := true
		for _, seg := range byNet[name] {
			line, err := plotter.NewLine(plotter.XYs{
				// Schematic Y grows downward; flip so the render
				// matches the sheet orientation.
				{X: seg.Start.X, Y: -seg.Start.Y},
				{X: seg.End.X, Y: -seg.End.Y},
			})
			if err != nil {
				return err
			}
			line.Color = color
			line.Width = vg.Points(1.5)
			p.Add(line)
			if first {
				p.Legend.Add(name, line)
				first = false
			}
		}
	}

	if pts := pinScatter(result); len(pts) > 0 {
		scatter, err := plotter.NewScatter(pts)
		if err != nil {
			return err
		}
		scatter.GlyphStyle.Shape = draw.CircleGlyph{}
		scatter.GlyphStyle.Radius = vg.Points(2)
		p.Add(scatter)
	}

	if err := p.Save(8*vg.Inch, 8*vg.Inch, plotOutput); err != nil {
		return fmt.Errorf("error writing %s: %w", plotOutput, err)
	}

	fmt.Printf("Wrote %s (%d nets, %d segments)\n", plotOutput, len(names), len(result.Segments))
	return nil
}

func pinScatter(result *connectivity.Result) plotter.XYs {
	var pts plotter.XYs
	for _, conn := range result.Connections {
		pos, ok := result.PinPosition(conn.ComponentRef, conn.PinNumber)
		if !ok {
			continue
		}
		pts = append(pts, plotter.XY{X: pos.X, Y: -pos.Y})
	}
	return pts
}
