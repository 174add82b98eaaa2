package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/spiral-carousel/carousel"
	"github.com/lixenwraith/spiral-carousel/config"
	"github.com/lixenwraith/spiral-carousel/vmath"
)

// snapshot is the engine state the offline commands lay out
type snapshot struct {
	offset float64
	zoom   int
	items  int // <0 keeps the configured count
}

func (s snapshot) apply(car *carousel.Carousel) {
	if s.items >= 0 {
		car.SetItemCount(s.items)
	}
	car.SetZoomLevel(s.zoom)
	car.SetOffset(s.offset)
}

func (s *snapshot) bind(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&s.offset, "offset", 0, "Path offset")
	cmd.Flags().IntVar(&s.zoom, "zoom", 0, "Zoom level (clamped to the valid range)")
	cmd.Flags().IntVar(&s.items, "items", -1, "Override the item count")
}

func newLayoutCmd() *cobra.Command {
	var snap snapshot
	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Print every item's placement for one frame",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, car, err := loadEngine()
			if err != nil {
				return err
			}
			snap.apply(car)
			return writeLayout(cmd.OutOrStdout(), car)
		},
	}
	snap.bind(cmd)
	return cmd
}

func newPathCmd() *cobra.Command {
	var (
		snap    snapshot
		spacing float64
	)
	cmd := &cobra.Command{
		Use:   "path",
		Short: "Print guide curve sample points, one \"x y\" pair per line",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, car, err := loadEngine()
			if err != nil {
				return err
			}
			snap.apply(car)
			return writePath(cmd.OutOrStdout(), car, spacing)
		},
	}
	snap.bind(cmd)
	cmd.Flags().Float64Var(&spacing, "spacing", 0, "Distance between samples (0 uses the default)")
	return cmd
}

func newDefaultsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "defaults",
		Short: "Print the built-in settings as a TOML file",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := config.Default().Encode()
			if err != nil {
				return err
			}
			_, err = io.WriteString(cmd.OutOrStdout(), text)
			return err
		},
	}
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

// writeLayout renders the frame as a table; the centered item's row is starred
func writeLayout(w io.Writer, car *carousel.Carousel) error {
	frame := car.LayoutFrame(vmath.Vec2{})
	center := -1
	if car.Len() > 0 {
		center = car.TailIndex()
	}

	rows := make([][]string, 0, len(frame))
	for _, p := range frame {
		mark := ""
		if p.Index == center {
			mark = "*"
		}
		rows = append(rows, []string{
			mark,
			strconv.Itoa(p.Index),
			p.Item.Label(),
			p.Item.Kind.String(),
			p.Item.Color.Hex(),
			fmt.Sprintf("%.2f", p.Arc),
			fmt.Sprintf("%.4f", p.Theta),
			fmt.Sprintf("%.2f", p.Position.X),
			fmt.Sprintf("%.2f", p.Position.Y),
			fmt.Sprintf("%.3f", p.Fade),
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("", "#", "ID", "KIND", "COLOR", "ARC", "THETA", "X", "Y", "FADE").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	lo, hi := car.ZoomBounds()
	tuned := car.Tuned()
	summary := fmt.Sprintf("items %d  offset %.2f  zoom %d [%d,%d]  spacing %.1f  path %.1f  center %s\n",
		car.Len(), car.Offset(), car.ZoomLevel(), lo, hi, tuned.ItemSpacing, tuned.TotalPathLength(), centerLabel(car))

	if _, err := io.WriteString(w, summary); err != nil {
		return err
	}
	if len(rows) == 0 {
		return nil
	}
	_, err := fmt.Fprintln(w, t.Render())
	return err
}

func centerLabel(car *carousel.Carousel) string {
	it, ok := car.CurrentCenterItem()
	if !ok {
		return "none"
	}
	return fmt.Sprintf("#%d %s", it.Index, it.Label())
}

func writePath(w io.Writer, car *carousel.Carousel, spacing float64) error {
	for _, p := range car.GuidePath(vmath.Vec2{}, spacing) {
		if _, err := fmt.Fprintf(w, "%.3f %.3f\n", p.X, p.Y); err != nil {
			return err
		}
	}
	return nil
}
