package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/johnkit/colorkit/internal/render"
	"github.com/johnkit/colorkit/internal/service"
	"github.com/johnkit/colorkit/pkg/colormap"
	"github.com/spf13/cobra"
)

func newService() *service.ColormapService {
	return service.NewColormapService(service.ColormapServiceConfig{
		Registry: colormap.DefaultRegistry,
		Renderer: render.NewColorbarRenderer(render.Config{Width: 256, Height: 24}),
	})
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered series",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range colormap.SeriesNames() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
		},
	}
}

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <series>",
		Short: "Print the control points of a series as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := colormap.LookupSeries(args[0])
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(s)
		},
	}
}

// rangeFlags holds --min/--max; unset flags keep the [0, 1] default.
type rangeFlags struct {
	min, max float64
}

func (f *rangeFlags) register(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&f.min, "min", 0, "Input range minimum")
	cmd.Flags().Float64Var(&f.max, "max", 1, "Input range maximum")
}

func (f *rangeFlags) pointers(cmd *cobra.Command) (min, max *float64) {
	if cmd.Flags().Changed("min") {
		min = &f.min
	}
	if cmd.Flags().Changed("max") {
		max = &f.max
	}
	return min, max
}

func newInterpolateCmd() *cobra.Command {
	var series string
	var format string
	var asJSON bool
	var rng rangeFlags

	cmd := &cobra.Command{
		Use:   "interpolate <value>...",
		Short: "Map values to colors",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			values := make([]float64, len(args))
			for i, arg := range args {
				v, err := strconv.ParseFloat(arg, 64)
				if err != nil {
					return fmt.Errorf("invalid value %q: %w", arg, err)
				}
				values[i] = v
			}

			min, max := rng.pointers(cmd)
			res, err := newService().Interpolate(service.InterpolateRequest{
				Series: series,
				Min:    min,
				Max:    max,
				Values: values,
				Format: format,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(res)
			}
			for i, c := range res.Colors {
				fmt.Fprintf(out, "%g\t%s\n", values[i], c)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&series, "series", "s", colormap.Rainbow, "Series name")
	cmd.Flags().StringVarP(&format, "format", "f", "byte", "Output format: byte, fraction or hex")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the full result as JSON")
	rng.register(cmd)
	return cmd
}

func newColorbarCmd() *cobra.Command {
	var series string
	var output string
	var width, height int
	var vertical bool
	var rng rangeFlags

	cmd := &cobra.Command{
		Use:   "colorbar",
		Short: "Render a series as a PNG colorbar",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			min, max := rng.pointers(cmd)
			data, err := newService().Colorbar(service.ColorbarRequest{
				Series:   series,
				Width:    width,
				Height:   height,
				Vertical: vertical,
				Min:      min,
				Max:      max,
			})
			if err != nil {
				return err
			}

			if output == "-" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if err := os.WriteFile(output, data, 0644); err != nil {
				return fmt.Errorf("write colorbar: %w", err)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %s (%d bytes)\n", output, len(data))
			return nil
		},
	}
	cmd.Flags().StringVarP(&series, "series", "s", colormap.Rainbow, "Series name")
	cmd.Flags().StringVarP(&output, "output", "o", "colorbar.png", "Output file, or - for stdout")
	cmd.Flags().IntVar(&width, "width", 0, "Width in pixels (default 256, or 24 when vertical)")
	cmd.Flags().IntVar(&height, "height", 0, "Height in pixels (default 24, or 256 when vertical)")
	cmd.Flags().BoolVar(&vertical, "vertical", false, "Render a vertical bar with the maximum on top")
	rng.register(cmd)
	return cmd
}
