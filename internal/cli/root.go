// Package cli wires the mosaic operations to cobra commands.
//
// Every command flag is bound to viper under "<command>.<flag>", so a value
// can also come from the config file ($HOME/.mosaic.yaml by default) or from
// the environment (MOSAIC_<COMMAND>_<FLAG>). Command line flags win.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/allape/gogger"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/multierr"

	"github.com/ironsheep/mosaic/internal/imaging"
)

var l = gogger.New("cli")

// Version information - set by main from ldflags
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

type app struct {
	v       *viper.Viper
	cfgFile string
}

// NewRootCommand builds the mosaic command tree with a fresh viper instance.
func NewRootCommand() *cobra.Command {
	a := &app{v: viper.New()}

	root := &cobra.Command{
		Use:   "mosaic",
		Short: "Slice images into tiles and stitch tiles back into one image",
		Long: `mosaic cuts an image into a grid of equally sized tiles, lists files into a
grid-shaped map, and composites a map of tiles into one image with optional
gaps and borders.

Examples:
  # Cut photo.png into 4 columns and 3 rows, tiles and map.json go to ./tiles
  mosaic slice -f photo.png -w 4 -h 3 -o tiles

  # Stitch them back with a 5 pixel gap and a black 2 pixel border
  mosaic stitch -m tiles/map.json -o joined.png -x 5 -y 5 -w 2 -c "#000"

  # Build a 3x3 map from the PNG files of a directory
  mosaic map -f "shots/*.png" -w 3 -h 3 -o shots.json

  # Serve the same operations as MCP tools on stdin/stdout
  mosaic serve`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.initConfig()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return errors.New("a command is required")
		},
	}

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default is $HOME/.mosaic.yaml)")
	root.PersistentFlags().String("backend", imaging.DefaultBackend, "image backend ("+strings.Join(imaging.Backends(), "|")+")")
	root.PersistentFlags().BoolP("verbose", "v", false, "list every file written")
	a.v.BindPFlag("backend", root.PersistentFlags().Lookup("backend"))
	a.v.BindPFlag("verbose", root.PersistentFlags().Lookup("verbose"))

	root.AddCommand(
		a.newMapCommand(),
		a.newSliceCommand(),
		a.newStitchCommand(),
		a.newServeCommand(),
		a.newVersionCommand(),
	)
	return root
}

// Run executes the command line args and returns the process exit code.
// On failure every accumulated error is printed as "Error: <message>",
// followed by the usage of the command that failed.
func Run(args []string, stdout, stderr io.Writer) int {
	root := NewRootCommand()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	cmd, err := root.ExecuteC()
	if err == nil {
		return 0
	}
	for _, e := range multierr.Errors(err) {
		fmt.Fprintf(stderr, "Error: %s\n", e)
	}
	fmt.Fprintln(stderr)
	fmt.Fprint(stderr, cmd.UsageString())
	return 1
}

// initConfig reads in config file and ENV variables if set.
func (a *app) initConfig() error {
	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			a.v.AddConfigPath(home)
		}
		a.v.SetConfigType("yaml")
		a.v.SetConfigName(".mosaic")
	}

	a.v.SetEnvPrefix("MOSAIC")
	a.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	a.v.AutomaticEnv()

	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("failed to read config file: %w", err)
	}
	l.Verbose().Println("using config file", a.v.ConfigFileUsed())
	return nil
}

// bindFlags binds every local flag of cmd to "<command>.<flag>".
func (a *app) bindFlags(cmd *cobra.Command) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		a.v.BindPFlag(cmd.Name()+"."+f.Name, f)
	})
}

// get* read a command flag through viper.
func (a *app) getString(cmd *cobra.Command, flag string) string {
	return a.v.GetString(cmd.Name() + "." + flag)
}

func (a *app) getInt(cmd *cobra.Command, flag string) int {
	return a.v.GetInt(cmd.Name() + "." + flag)
}

func (a *app) getBool(cmd *cobra.Command, flag string) bool {
	return a.v.GetBool(cmd.Name() + "." + flag)
}

// require reports every named string flag that has no value.
func (a *app) require(cmd *cobra.Command, flags ...string) error {
	var err error
	for _, f := range flags {
		if strings.TrimSpace(a.getString(cmd, f)) == "" {
			err = multierr.Append(err, fmt.Errorf("missing required option --%s", f))
		}
	}
	return err
}

func (a *app) library() (imaging.Library, error) {
	return imaging.NewLibrary(a.v.GetString("backend"))
}

func (a *app) verbose() bool {
	return a.v.GetBool("verbose")
}

// success prints the closing line of a successful run.
func success(cmd *cobra.Command, name string) {
	fmt.Fprintf(cmd.OutOrStdout(), "%s executed successfully!\n", name)
}
