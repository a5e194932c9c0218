package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/vango-dev/tooltip/internal/config"
	"github.com/vango-dev/tooltip/internal/errors"
	"github.com/vango-dev/tooltip/pkg/fixture"
	"github.com/vango-dev/tooltip/pkg/render"
	"github.com/vango-dev/tooltip/pkg/tooltip"
)

const tracerName = "github.com/vango-dev/tooltip/cmd/tooltip"

// fixtureExts are the file types render accepts.
var fixtureExts = map[string]bool{
	".yaml": true,
	".yml":  true,
	".json": true,
	".html": true,
	".htm":  true,
}

type renderOptions struct {
	pretty bool
	boxes  bool
	stats  bool
}

func renderCmd(flags *globalFlags) *cobra.Command {
	var opts renderOptions

	cmd := &cobra.Command{
		Use:   "render <pattern>...",
		Short: "Render page fixtures with their tooltips",
		Long: `Load each fixture, create a tooltip for every element carrying a
data-tooltip attribute, apply the fixture's scripted events and print the
resulting HTML.

Patterns may use ** to match directories recursively. Files ending in
.yaml, .yml, .json, .html and .htm are rendered; other matches are skipped.

Examples:
  tooltip render testdata/form.yaml
  tooltip render --pretty 'pages/**/*.html'`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.load()
			if err != nil {
				return err
			}
			return runRender(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg, args, opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.pretty, "pretty", "p", false, "Indent the HTML output")
	cmd.Flags().BoolVar(&opts.boxes, "boxes", false, "Write data-box geometry on sized elements")
	cmd.Flags().BoolVar(&opts.stats, "stats", false, "Print tooltip metrics to stderr when done")

	return cmd
}

func runRender(ctx context.Context, out, errOut io.Writer, cfg *config.Config, patterns []string, opts renderOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}

	files, err := expandPatterns(patterns)
	if err != nil {
		return err
	}

	logger, err := cfg.NewLogger(errOut)
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	collector := tooltip.NewCollector(append(cfg.MetricsOptions(), tooltip.WithRegisterer(reg))...)
	renderer := render.NewRenderer(render.RendererConfig{Pretty: opts.pretty, Boxes: opts.boxes})

	ctx, span := otel.Tracer(tracerName).Start(ctx, "tooltip.render",
		trace.WithAttributes(attribute.Int("tooltip.files", len(files))),
	)
	defer span.End()

	for _, path := range files {
		fileLogger := logger.With("file", path)
		if err := renderFile(ctx, out, path, cfg, fileLogger, collector, renderer, len(files) > 1); err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return err
		}
		fileLogger.Debug("fixture rendered")
	}

	if opts.stats {
		families, err := reg.Gather()
		if err != nil {
			return err
		}
		printStats(errOut, families)
	}
	return nil
}

func renderFile(ctx context.Context, w io.Writer, path string, cfg *config.Config, logger *slog.Logger,
	collector *tooltip.Collector, renderer *render.Renderer, header bool) error {
	f, err := fixture.Load(path)
	if err != nil {
		return err
	}

	registry := tooltip.NewRegistry(cfg.RegistryOptions(logger, collector)...)
	created, err := tooltip.AutoInit(ctx, registry, f.Doc)
	if err != nil {
		return err
	}
	if err := f.Apply(); err != nil {
		return err
	}
	logger.Info("tooltips attached", "created", len(created), "live", registry.Len())

	if header {
		fmt.Fprintf(w, "<!-- %s -->\n", path)
	}
	return renderer.RenderPage(w, f.Doc, render.PageData{Title: filepath.Base(path)})
}

// expandPatterns resolves glob patterns to fixture files, in pattern order
// and without duplicates.
func expandPatterns(patterns []string) ([]string, error) {
	seen := make(map[string]bool)
	var files []string
	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, errors.New("T050").WithDetailf("Bad pattern %q.", pattern).Wrap(err)
		}
		sort.Strings(matches)
		for _, m := range matches {
			if seen[m] || !fixtureExts[strings.ToLower(filepath.Ext(m))] {
				continue
			}
			if st, err := os.Stat(m); err != nil || st.IsDir() {
				continue
			}
			seen[m] = true
			files = append(files, m)
		}
	}
	if len(files) == 0 {
		return nil, errors.New("T050").
			WithDetailf("No fixture matched %s.", strings.Join(patterns, " ")).
			WithSuggestion("Check the pattern; quote it so ** is not expanded by the shell")
	}
	return files, nil
}

// printStats writes one line per counter or gauge sample.
func printStats(w io.Writer, families []*dto.MetricFamily) {
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			var value float64
			switch {
			case m.GetCounter() != nil:
				value = m.GetCounter().GetValue()
			case m.GetGauge() != nil:
				value = m.GetGauge().GetValue()
			default:
				continue
			}
			fmt.Fprintf(w, "%s%s %v\n", mf.GetName(), formatLabels(m.GetLabel()), value)
		}
	}
}

func formatLabels(labels []*dto.LabelPair) string {
	if len(labels) == 0 {
		return ""
	}
	parts := make([]string, len(labels))
	for i, lp := range labels {
		parts[i] = fmt.Sprintf("%s=%q", lp.GetName(), lp.GetValue())
	}
	return "{" + strings.Join(parts, ",") + "}"
}
