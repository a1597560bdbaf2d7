package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/multierr"

	"github.com/ironsheep/mosaic/internal/imaging"
	"github.com/ironsheep/mosaic/internal/mosaic"
)

func (a *app) newStitchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stitch",
		Short: "Composite the tiles of a map file into one image",
		Long: `stitch reads a map file (rows of image paths, relative to the map file) and
composites the tiles into one image. Every cell is as wide as the widest tile
and as tall as the tallest one unless --cellwidth/--cellheight say otherwise.
Tiles of another size are fitted with the fit strategy (1 = crop the top-left
corner, 2 = resize) and centered on the background color when still smaller.

With --dry-run the map is validated and the resulting layout printed, using
only the image headers; no image is written.`,
		Args: cobra.NoArgs,
		RunE: a.runStitch,
	}

	cmd.Flags().StringP("map", "m", "", "map file (required)")
	cmd.Flags().StringP("output", "o", "", "output image; the extension selects the format (required)")
	cmd.Flags().IntP("spacex", "x", 0, "horizontal gap between cells in pixels")
	cmd.Flags().IntP("spacey", "y", 0, "vertical gap between cells in pixels")
	cmd.Flags().StringP("bgcolor", "b", imaging.White, "background color (#RGB or #RRGGBB)")
	cmd.Flags().StringP("bordercolor", "c", imaging.White, "border color (#RGB or #RRGGBB)")
	cmd.Flags().IntP("borderwidth", "w", 0, "border width around every cell in pixels")
	cmd.Flags().StringP("fitstrategy", "s", "2", "fit strategy for tiles of another size: 1 (crop) or 2 (resize)")
	cmd.Flags().Int("cellwidth", 0, "cell width (default: widest tile)")
	cmd.Flags().Int("cellheight", 0, "cell height (default: tallest tile)")
	cmd.Flags().Bool("dry-run", false, "print the layout without writing the image")
	a.bindFlags(cmd)

	return cmd
}

func (a *app) runStitch(cmd *cobra.Command, args []string) error {
	dryRun := a.getBool(cmd, "dry-run")
	required := []string{"map", "output"}
	if dryRun {
		required = required[:1]
	}
	if err := a.require(cmd, required...); err != nil {
		return err
	}
	lib, err := a.library()
	if err != nil {
		return err
	}

	strategy, err := mosaic.ParseFitStrategy(a.getString(cmd, "fitstrategy"))
	g, mErr := mosaic.LoadMap(a.getString(cmd, "map"))
	if err := multierr.Combine(err, mErr); err != nil {
		return err
	}

	opts := mosaic.StitchOptions{
		Output:        a.getString(cmd, "output"),
		HorizontalGap: a.getInt(cmd, "spacex"),
		VerticalGap:   a.getInt(cmd, "spacey"),
		Background:    a.getString(cmd, "bgcolor"),
		BorderColor:   a.getString(cmd, "bordercolor"),
		BorderWidth:   a.getInt(cmd, "borderwidth"),
		Strategy:      strategy,
		CellWidth:     a.getInt(cmd, "cellwidth"),
		CellHeight:    a.getInt(cmd, "cellheight"),
	}
	stitcher := mosaic.NewStitcher(lib)

	if dryRun {
		layout, err := stitcher.Plan(g, opts)
		if err != nil {
			return err
		}
		printLayout(cmd, layout)
		success(cmd, "Stitch dry run")
		return nil
	}

	res, err := stitcher.Stitch(g, opts)
	if err != nil {
		return err
	}
	if a.verbose() {
		printLayout(cmd, &res.Layout)
		fmt.Fprintln(cmd.OutOrStdout(), "wrote", res.Output)
	}
	success(cmd, "Stitch")
	return nil
}

func printLayout(cmd *cobra.Command, l *mosaic.Layout) {
	w, h := l.CanvasSize()
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "grid:   %d x %d\n", l.Columns, l.Rows)
	fmt.Fprintf(out, "cell:   %d x %d (border %d)\n", l.CellWidth, l.CellHeight, l.BorderWidth)
	fmt.Fprintf(out, "gap:    %d x %d\n", l.HorizontalGap, l.VerticalGap)
	fmt.Fprintf(out, "canvas: %d x %d\n", w, h)
}
