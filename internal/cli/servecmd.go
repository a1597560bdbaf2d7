package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ironsheep/mosaic/internal/server"
)

func (a *app) newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve mosaic as MCP tools over stdin/stdout",
		Long: `serve starts a JSON-RPC 2.0 (MCP) server on stdin/stdout exposing
mosaic_dimensions, mosaic_map, mosaic_slice, mosaic_slice_preview,
mosaic_stitch and mosaic_plan. Requests are handled one at a time.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			lib, err := a.library()
			if err != nil {
				return err
			}
			server.Version = Version
			l.Verbose().Println("serving with backend", lib.Name())
			if err := server.New(lib).Serve(cmd.InOrStdin(), cmd.OutOrStdout()); err != nil {
				return fmt.Errorf("server error: %w", err)
			}
			return nil
		},
	}
}

func (a *app) newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "mosaic %s\n", Version)
			fmt.Fprintf(out, "  Build time: %s\n", BuildTime)
			fmt.Fprintf(out, "  Git commit: %s\n", GitCommit)
		},
	}
}
