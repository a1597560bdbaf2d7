package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ironsheep/mosaic/internal/mosaic"
)

func (a *app) newMapCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "map",
		Short: "List files matching a glob into a grid map file",
		Long: `map walks the files matching a glob pattern in lexical order and lays them
out row by row into a grid of at most width x height entries. Extra files are
ignored and the last row may be short. The grid is written as JSON, or as YAML
when the output ends in .yaml or .yml.`,
		Args: cobra.NoArgs,
		RunE: a.runMap,
	}

	cmd.Flags().StringP("mask", "f", "", "glob pattern of the files to list (required)")
	cmd.Flags().IntP("width", "w", 0, "number of columns")
	cmd.Flags().IntP("height", "h", 0, "number of rows")
	cmd.Flags().StringP("output", "o", "", "map file to write (required)")
	a.bindFlags(cmd)

	return cmd
}

func (a *app) runMap(cmd *cobra.Command, args []string) error {
	if err := a.require(cmd, "mask", "output"); err != nil {
		return err
	}

	g, err := mosaic.BuildMap(mosaic.MapOptions{
		Pattern: a.getString(cmd, "mask"),
		Columns: a.getInt(cmd, "width"),
		Rows:    a.getInt(cmd, "height"),
		Output:  a.getString(cmd, "output"),
	})
	if err != nil {
		return err
	}

	if a.verbose() {
		for i, row := range g {
			fmt.Fprintf(cmd.OutOrStdout(), "row %d: %v\n", i+1, row)
		}
	}
	success(cmd, "Map")
	return nil
}
