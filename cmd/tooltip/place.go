package main

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vango-dev/tooltip/internal/errors"
	"github.com/vango-dev/tooltip/pkg/dom"
	"github.com/vango-dev/tooltip/pkg/tooltip"
)

func placeCmd(flags *globalFlags) *cobra.Command {
	var (
		anchor      string
		popup       string
		orientation string
		viewport    float64
		scrollX     float64
	)

	cmd := &cobra.Command{
		Use:   "place",
		Short: "Compute a popup placement",
		Long: `Compute where a popup of the given size is placed next to an anchor,
using the layout from the configuration, and print the result as JSON.

Examples:
  tooltip place --anchor 100,50,40,20 --popup 80,30
  tooltip place --anchor 700,50,40,20 --popup 300,30 --orientation right`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.load()
			if err != nil {
				return err
			}

			box, err := dom.ParseBox(anchor)
			if err != nil {
				return errors.New("T042").WithDetail("--anchor: " + err.Error())
			}
			width, height, err := parseSize(popup)
			if err != nil {
				return errors.New("T042").WithDetail("--popup: " + err.Error())
			}
			o := tooltip.Orientation(orientation)
			if !o.Valid() {
				return errors.New("T030").WithDetailf("--orientation %q is not one of top, bottom, left, right.", orientation)
			}

			p := cfg.TooltipLayout().Fit(o, tooltip.Geometry{
				Anchor: tooltip.Rect{
					Left:   box.Left,
					Top:    box.Top,
					Width:  box.Width,
					Height: box.Height,
				},
				PopupWidth:    width,
				PopupHeight:   height,
				ViewportWidth: viewport,
				ScrollX:       scrollX,
			})

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(p)
		},
	}

	cmd.Flags().StringVar(&anchor, "anchor", "", "Anchor box as left,top,width,height")
	cmd.Flags().StringVar(&popup, "popup", "", "Popup size as width,height")
	cmd.Flags().StringVarP(&orientation, "orientation", "o", string(tooltip.OrientationTop), "Preferred side: top, bottom, left, right")
	cmd.Flags().Float64Var(&viewport, "viewport", 1024, "Viewport width")
	cmd.Flags().Float64Var(&scrollX, "scroll-x", 0, "Horizontal scroll offset")
	cmd.MarkFlagRequired("anchor")
	cmd.MarkFlagRequired("popup")

	return cmd
}

// parseSize parses "width,height".
func parseSize(s string) (float64, float64, error) {
	w, h, ok := strings.Cut(s, ",")
	if !ok {
		return 0, 0, errors.Newf(errors.CategoryInput, "size %q: want width,height", s)
	}
	width, err := strconv.ParseFloat(strings.TrimSpace(w), 64)
	if err != nil {
		return 0, 0, err
	}
	height, err := strconv.ParseFloat(strings.TrimSpace(h), 64)
	if err != nil {
		return 0, 0, err
	}
	if width < 0 || height < 0 {
		return 0, 0, errors.Newf(errors.CategoryInput, "size %q: negative", s)
	}
	return width, height, nil
}
