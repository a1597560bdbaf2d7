package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ironsheep/mosaic/internal/mosaic"
)

func (a *app) newSliceCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "slice",
		Short: "Cut an image into a grid of equally sized tiles",
		Long: `slice cuts an image into width x height tiles of floor(W/width) x
floor(H/height) pixels; leftover pixels on the right and bottom edges are
dropped. Tiles are named from the mask, where {name} is the source name without
extension, {width} the 1-based column, {height} the 1-based row and {extension}
the source extension. A map.json listing the tiles is written next to them.

With --preview nothing is sliced: the source is written to the given file with
the cut lines drawn on it.`,
		Args: cobra.NoArgs,
		RunE: a.runSlice,
	}

	cmd.Flags().StringP("file", "f", "", "image to slice (required)")
	cmd.Flags().IntP("width", "w", 0, "number of horizontal blocks")
	cmd.Flags().IntP("height", "h", 0, "number of vertical blocks")
	cmd.Flags().StringP("mask", "m", mosaic.DefaultMask, "tile file name template")
	cmd.Flags().StringP("output", "o", "", "existing directory for the tiles (default: working directory)")
	cmd.Flags().String("preview", "", "write the cut lines over the source to this file instead of slicing")
	cmd.Flags().String("linecolor", "#FF0000", "cut line color for --preview")
	a.bindFlags(cmd)

	return cmd
}

func (a *app) runSlice(cmd *cobra.Command, args []string) error {
	if err := a.require(cmd, "file"); err != nil {
		return err
	}
	lib, err := a.library()
	if err != nil {
		return err
	}

	opts := mosaic.SliceOptions{
		Source:    a.getString(cmd, "file"),
		Columns:   a.getInt(cmd, "width"),
		Rows:      a.getInt(cmd, "height"),
		OutputDir: a.getString(cmd, "output"),
		Mask:      a.getString(cmd, "mask"),
	}
	slicer := mosaic.NewSlicer(lib)

	if preview := a.getString(cmd, "preview"); preview != "" {
		img, err := slicer.Preview(opts, a.getString(cmd, "linecolor"), true)
		if err != nil {
			return err
		}
		if err := lib.Save(img, preview); err != nil {
			return err
		}
		if a.verbose() {
			fmt.Fprintln(cmd.OutOrStdout(), "wrote", preview)
		}
		success(cmd, "Slice preview")
		return nil
	}

	res, err := slicer.Slice(opts)
	if err != nil {
		return err
	}
	mapPath, err := mosaic.WriteSliceMap(res.Grid, opts.OutputDir)
	if err != nil {
		return err
	}

	if a.verbose() {
		for _, f := range res.Files {
			fmt.Fprintln(cmd.OutOrStdout(), "wrote", f)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "wrote", mapPath)
	}
	success(cmd, "Slice")
	return nil
}
