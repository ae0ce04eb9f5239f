package main

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"os"
	"strconv"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/NogradThGin/xsatmgr"
	"github.com/NogradThGin/xsatmgr/xrandr"
)

var rootCmd = &cobra.Command{
	Use:   "xsatmgr",
	Short: "xsatmgr adjusts display saturation through DRM color management properties",
	Long: `xsatmgr computes a color transform matrix from a saturation level and
applies it to a display output's CTM property via X11 RandR. It can also
program the output's de/regamma lookup tables.`,
	Version:       xsatmgr.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		outputName, _ := cmd.Flags().GetString("output")
		ctmOpt, _ := cmd.Flags().GetString("ctm")
		degammaOpt, _ := cmd.Flags().GetString("degamma")
		regammaOpt, _ := cmd.Flags().GetString("regamma")
		display, _ := cmd.Flags().GetString("display")
		verbose, _ := cmd.Flags().GetBool("verbose")

		if outputName == "" {
			return errors.New("an output name is required (-o)")
		}
		if ctmOpt == "" && degammaOpt == "" && regammaOpt == "" {
			return errors.New("nothing to apply: give at least one of -c, -d or -g")
		}

		var matrix xsatmgr.ColorMatrix
		haveCTM := ctmOpt != ""
		if haveCTM {
			var err error
			matrix, err = parseCTMRequest(ctmOpt)
			if err != nil {
				return err
			}
			printMatrix(ctmOpt, matrix)
		}

		var degamma, regamma xsatmgr.LUT
		if degammaOpt != "" {
			var err error
			if degamma, err = parseLUTRequest(degammaOpt, false); err != nil {
				return err
			}
		}
		if regammaOpt != "" {
			var err error
			if regamma, err = parseLUTRequest(regammaOpt, true); err != nil {
				return err
			}
		}

		sess, err := xrandr.Open(display)
		if err != nil {
			return err
		}
		defer sess.Close()

		var opts []xsatmgr.Option
		if verbose {
			opts = append(opts, xsatmgr.WithLogger(slog.New(
				slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))))
		}
		client := xsatmgr.New(sess, opts...)

		out, err := client.ResolveOutput(outputName)
		if err != nil {
			return err
		}
		if degamma != nil {
			if err := client.SetDegamma(out, degamma); err != nil {
				return err
			}
		}
		if haveCTM {
			if err := client.SetCTM(out, matrix); err != nil {
				return err
			}
		}
		if regamma != nil {
			if err := client.SetRegamma(out, regamma); err != nil {
				return err
			}
		}
		return nil
	},
}

// parseCTMRequest turns the -c argument into a color matrix. "identity"
// (or the legacy "default") requests the identity transform; anything
// else must parse as a finite saturation level. Zero is a valid level,
// distinct from identity: it desaturates fully to gray.
func parseCTMRequest(opt string) (xsatmgr.ColorMatrix, error) {
	if opt == "identity" || opt == "default" {
		return xsatmgr.Identity(), nil
	}
	level, err := strconv.ParseFloat(opt, 64)
	if err != nil {
		return xsatmgr.ColorMatrix{}, fmt.Errorf("%q is not a valid saturation level", opt)
	}
	if math.IsNaN(level) || math.IsInf(level, 0) {
		return xsatmgr.ColorMatrix{}, fmt.Errorf("saturation level must be finite, got %q", opt)
	}
	return xsatmgr.Saturation(level), nil
}

// parseLUTRequest turns a -d/-g argument into a gamma table. encode
// selects the regamma (linear to sRGB) direction of the sRGB curve.
func parseLUTRequest(opt string, encode bool) (xsatmgr.LUT, error) {
	switch opt {
	case "linear":
		return xsatmgr.LinearLUT(), nil
	case "srgb":
		if encode {
			return xsatmgr.SRGBEncodeLUT(), nil
		}
		return xsatmgr.SRGBDecodeLUT(), nil
	default:
		return nil, fmt.Errorf("unknown gamma curve %q (want srgb or linear)", opt)
	}
}

func printMatrix(opt string, m xsatmgr.ColorMatrix) {
	p := termenv.ColorProfile()
	header := "Using custom CTM:"
	if opt == "identity" || opt == "default" {
		header = "Using identity CTM:"
	}
	fmt.Println(termenv.String(header).Foreground(p.Color("#818cf8")).Bold())
	for row := 0; row < 3; row++ {
		fmt.Printf("    %2.4f:%2.4f:%2.4f\n", m[row*3], m[row*3+1], m[row*3+2])
	}
}

// Execute runs the root command, reporting any failure on stderr with a
// non-zero exit status.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().StringP("output", "o", "", "Name of the output to apply properties to (e.g. DP-1)")
	rootCmd.Flags().StringP("ctm", "c", "", "Saturation level for the CTM, or 'identity'")
	rootCmd.Flags().StringP("degamma", "d", "", "Degamma curve to apply: srgb or linear")
	rootCmd.Flags().StringP("regamma", "g", "", "Regamma curve to apply: srgb or linear")
	rootCmd.Flags().String("display", "", "X display to connect to (defaults to $DISPLAY)")
	rootCmd.Flags().BoolP("verbose", "V", false, "Log protocol steps to stderr")
}
