package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"

	"tvfov/app"
	"tvfov/config"
	"tvfov/fov"
	"tvfov/log"
	"tvfov/report"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	version      = "0.1.0"
	distanceFlag float64
	diagonalFlag float64
	unitFlag     string
	formatFlag   string
	noColorFlag  bool

	rootCmd = &cobra.Command{
		Use:   "tvfov",
		Short: "tvfov - work out the field of view of a TV from where you sit.",
		Long: "tvfov computes the horizontal and vertical field of view of a 16:9 screen " +
			"from its diagonal and your viewing distance, rates it against the THX and SMPTE " +
			"guidelines and shows the distance that gives a 40° view.",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if noColorFlag {
				lipgloss.SetColorProfile(termenv.Ascii)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Initialize()
			defer log.Close()

			cfg := config.LoadConfig()
			setup, err := resolveSetup(cfg, inputFlagsFrom(cmd))
			if err != nil {
				return err
			}

			// Without a terminal there is nothing to draw on; print the numbers.
			if !term.IsTerminal(int(os.Stdout.Fd())) {
				log.InfoLog.Printf("stdout is not a terminal, printing report")
				return writeReport(cmd.OutOrStdout(), setup, report.FormatText)
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()
			return app.Run(ctx, setup)
		},
	}

	calcCmd = &cobra.Command{
		Use:   "calc",
		Short: "Print the field of view for a distance and screen size",
		Example: "  tvfov calc -d 8 -s 65\n" +
			"  tvfov calc -d 240 -u cm -s 77 --format json",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Initialize()
			defer log.Close()

			format, err := report.ParseFormat(formatFlag)
			if err != nil {
				return err
			}
			setup, err := resolveSetup(config.LoadConfig(), inputFlagsFrom(cmd))
			if err != nil {
				return err
			}
			return writeReport(cmd.OutOrStdout(), setup, format)
		},
	}

	guideCmd = &cobra.Command{
		Use:   "guide",
		Short: "Print the field of view reference bands",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return report.WriteGuide(cmd.OutOrStdout())
		},
	}

	debugCmd = &cobra.Command{
		Use:   "debug",
		Short: "Print debug information like config paths",
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Initialize()
			defer log.Close()

			cfg := config.LoadConfig()

			configDir, err := config.GetConfigDir()
			if err != nil {
				return fmt.Errorf("failed to get config directory: %w", err)
			}
			configJson, _ := json.MarshalIndent(cfg, "", "  ")

			fmt.Fprintf(cmd.OutOrStdout(), "Config: %s\n%s\n", filepath.Join(configDir, config.ConfigFileName), configJson)
			fmt.Fprintf(cmd.OutOrStdout(), "Debug logging: set %s=1\n", log.DebugEnvVar)
			return nil
		},
	}

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number of tvfov",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "tvfov version %s\n", version)
		},
	}
)

// writeReport prints the result for setup, rejecting inputs the calculator
// cannot measure.
func writeReport(w io.Writer, setup fov.ViewingSetup, format report.Format) error {
	if err := setup.Validate(); err != nil {
		return fmt.Errorf("invalid input: %w", err)
	}
	return report.Write(w, report.New(setup), format)
}

// inputFlags are the calculator inputs given on the command line. The *Set
// fields say whether the user passed the flag at all.
type inputFlags struct {
	distance, diagonal       float64
	unit                     string
	distanceSet, diagonalSet bool
	unitSet                  bool
}

func inputFlagsFrom(cmd *cobra.Command) inputFlags {
	flags := cmd.Flags()
	return inputFlags{
		distance:    distanceFlag,
		diagonal:    diagonalFlag,
		unit:        unitFlag,
		distanceSet: flags.Changed("distance"),
		diagonalSet: flags.Changed("diagonal"),
		unitSet:     flags.Changed("unit"),
	}
}

// resolveSetup overlays the command line on the configured defaults. A unit
// given without a distance converts the default distance to that unit.
func resolveSetup(cfg *config.Config, in inputFlags) (fov.ViewingSetup, error) {
	setup := cfg.Setup()

	if in.unitSet {
		unit, err := fov.ParseUnit(in.unit)
		if err != nil {
			return setup, err
		}
		if !in.distanceSet {
			setup.Distance = fov.ConvertDistance(setup.Distance, setup.Unit, unit)
		}
		setup.Unit = unit
	}
	if in.distanceSet {
		setup.Distance = in.distance
	}
	if in.diagonalSet {
		setup.DiagonalInches = in.diagonal
	}
	return setup, nil
}

func addInputFlags(cmd *cobra.Command) {
	cmd.Flags().Float64VarP(&distanceFlag, "distance", "d", 0,
		"Viewing distance in the selected unit (default from config)")
	cmd.Flags().Float64VarP(&diagonalFlag, "diagonal", "s", 0,
		"Screen diagonal in inches (default from config)")
	cmd.Flags().StringVarP(&unitFlag, "unit", "u", "",
		"Distance unit: 'feet' or 'cm' (default from config)")
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&noColorFlag, "no-color", false, "Disable colored output")

	addInputFlags(rootCmd)
	addInputFlags(calcCmd)
	calcCmd.Flags().StringVarP(&formatFlag, "format", "f", string(report.FormatText),
		"Output format: text, json, yaml or toml")

	rootCmd.AddCommand(calcCmd)
	rootCmd.AddCommand(guideCmd)
	rootCmd.AddCommand(debugCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
