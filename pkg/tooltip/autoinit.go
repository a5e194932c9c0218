package tooltip

import (
	"context"
	"encoding/json"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/vango-dev/tooltip/internal/errors"
	"github.com/vango-dev/tooltip/pkg/dom"
)

// DataAttribute marks elements for AutoInit. Its value is empty or a JSON
// encoded Options object.
const DataAttribute = "data-tooltip"

// ParseOptions decodes a data-tooltip value. An empty value (or JSON null)
// yields nil options, meaning defaults.
func ParseOptions(raw string) (*Options, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "null" {
		return nil, nil
	}
	var opts Options
	if err := json.Unmarshal([]byte(raw), &opts); err != nil {
		return nil, errors.New("T020").Wrap(err)
	}
	return &opts, nil
}

// EncodeOptions returns the data-tooltip value for opts. Nil options encode
// to the empty string.
func EncodeOptions(opts *Options) (string, error) {
	if opts == nil {
		return "", nil
	}
	data, err := json.Marshal(opts)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// AutoInit creates a tooltip for every element of doc that carries
// DataAttribute, in document order. Anchors the registry rejects are logged
// and skipped. Malformed options stop the scan: the tooltips created so far
// are returned with the error.
func AutoInit(ctx context.Context, r *Registry, doc *dom.Document) ([]*Tooltip, error) {
	candidates := doc.QueryAttr(DataAttribute)

	_, span := r.tracer.Start(ctx, "tooltip.autoinit",
		trace.WithAttributes(attribute.Int("tooltip.candidates", len(candidates))),
	)
	defer span.End()

	var created []*Tooltip
	for _, el := range candidates {
		raw, _ := el.Attr(DataAttribute)
		opts, err := ParseOptions(raw)
		if err != nil {
			te := errors.FromError(err, "T020").WithDetailf("%s has data-tooltip=%q.", el, raw)
			span.RecordError(te)
			span.SetStatus(codes.Error, te.Message)
			created = liveOnly(created)
			span.SetAttributes(attribute.Int("tooltip.created", len(created)))
			return created, te
		}
		t, err := r.Create(el, opts)
		if err != nil {
			continue
		}
		created = append(created, t)
	}

	created = liveOnly(created)
	span.SetAttributes(attribute.Int("tooltip.created", len(created)))
	return created, nil
}

// liveOnly drops tooltips that were destroyed before the scan finished.
func liveOnly(tips []*Tooltip) []*Tooltip {
	out := tips[:0]
	for _, t := range tips {
		if t.state != StateDestroyed {
			out = append(out, t)
		}
	}
	return out
}
