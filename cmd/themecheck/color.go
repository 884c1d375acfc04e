package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/phyten/themecheck/internal/colorutil"
	"github.com/phyten/themecheck/internal/wcag"
)

func newContrastCmd(a *app) *cobra.Command {
	var require string
	cmd := &cobra.Command{
		Use:   "contrast FOREGROUND BACKGROUND",
		Short: "Print the contrast ratio of two colors",
		Long: `Print the luminance of both colors, their contrast ratio and whether it
meets the normal-text and large-text thresholds. Colors are #rrggbb,
rgb() or rgba().

With --require, exit 1 when the ratio is below that usage's threshold.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			fg, err := colorutil.Parse(args[0])
			if err != nil {
				return fmt.Errorf("foreground: %w", err)
			}
			bg, err := colorutil.Parse(args[1])
			if err != nil {
				return fmt.Errorf("background: %w", err)
			}
			var need wcag.TextUsage
			if require != "" {
				if need, err = wcag.ParseUsage(require); err != nil {
					return err
				}
			}

			ratio := colorutil.ContrastRatio(fg, bg)
			w := tabwriter.NewWriter(a.stdout, 2, 4, 2, ' ', 0)
			fmt.Fprintf(w, "foreground\t%s\tL=%.4f\n", fg.Hex(), colorutil.RelativeLuminance(fg))
			fmt.Fprintf(w, "background\t%s\tL=%.4f\n", bg.Hex(), colorutil.RelativeLuminance(bg))
			fmt.Fprintf(w, "ratio\t%.2f:1\t%s\n", ratio, wcag.Grade(ratio))
			for _, u := range []wcag.TextUsage{wcag.NormalText, wcag.LargeTextOrUIComponent} {
				fmt.Fprintf(w, "%s\t%s\t>= %.1f\n", u, passFail(wcag.MeetsThreshold(ratio, u)), wcag.MinRatio(u))
			}
			if err := w.Flush(); err != nil {
				return err
			}
			if require != "" && !wcag.MeetsThreshold(ratio, need) {
				return errChecksFailed
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&require, "require", "", "exit 1 unless the pair meets this usage: normal|large|decorative")
	return cmd
}

func newLuminanceCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "luminance COLOR...",
		Short: "Print the relative luminance and hue of colors",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(a.stdout, 2, 4, 2, ' ', 0)
			fmt.Fprintln(w, "COLOR\tHEX\tLUMINANCE\tHUE")
			for _, arg := range args {
				c, err := colorutil.Parse(arg)
				if err != nil {
					return fmt.Errorf("%s: %w", arg, err)
				}
				hue := "-"
				if h, ok := colorutil.Hue(c); ok {
					hue = fmt.Sprintf("%.1f", h)
				}
				fmt.Fprintf(w, "%s\t%s\t%.4f\t%s\n", arg, c.Hex(), colorutil.RelativeLuminance(c), hue)
			}
			return w.Flush()
		},
	}
}

func passFail(ok bool) string {
	if ok {
		return "pass"
	}
	return "fail"
}
