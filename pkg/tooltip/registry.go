package tooltip

import (
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/vango-dev/tooltip/internal/errors"
	"github.com/vango-dev/tooltip/pkg/dom"
)

const (
	// DefaultZIndexBase is the z-index given to the first shown tooltip.
	DefaultZIndexBase = 6

	// DefaultPlaceholder is the body of a tooltip with no text and no title.
	DefaultPlaceholder = "This tooltip text must be set with title or data-tooltip attribute"

	defaultTracerName = "github.com/vango-dev/tooltip"
)

// Registry tracks the live tooltips of one page.
type Registry struct {
	live   []*Tooltip
	zIndex int

	defaults    Config
	persistent  bool // defaults set Persistent explicitly
	layout      Layout
	placeholder string

	logger  *slog.Logger
	metrics *Collector
	tracer  trace.Tracer
}

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithLogger sets the logger. If nil, slog.Default() is used.
func WithLogger(logger *slog.Logger) RegistryOption {
	return func(r *Registry) {
		r.logger = logger
	}
}

// WithMetrics sets the Prometheus collector.
func WithMetrics(c *Collector) RegistryOption {
	return func(r *Registry) {
		r.metrics = c
	}
}

// WithTracer sets the tracer used by AutoInit.
// Default: the global provider's tracer.
func WithTracer(tracer trace.Tracer) RegistryOption {
	return func(r *Registry) {
		r.tracer = tracer
	}
}

// WithLayout sets the placement measurements.
func WithLayout(l Layout) RegistryOption {
	return func(r *Registry) {
		r.layout = l
	}
}

// WithZIndexBase sets the first z-index handed out.
func WithZIndexBase(base int) RegistryOption {
	return func(r *Registry) {
		r.zIndex = base
	}
}

// WithPlaceholder sets the body used when no text is available.
func WithPlaceholder(text string) RegistryOption {
	return func(r *Registry) {
		r.placeholder = text
	}
}

// WithDefaults overrides the built-in defaults for every tooltip.
func WithDefaults(o *Options) RegistryOption {
	return func(r *Registry) {
		r.defaults = r.defaults.Merge(o)
		if o != nil && o.Persistent != nil {
			r.persistent = true
		}
	}
}

// NewRegistry creates an empty registry.
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{
		zIndex:      DefaultZIndexBase,
		defaults:    DefaultConfig(),
		layout:      DefaultLayout,
		placeholder: DefaultPlaceholder,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.logger == nil {
		r.logger = slog.Default()
	}
	if r.tracer == nil {
		r.tracer = otel.Tracer(defaultTracerName)
	}
	return r
}

// Create attaches a new tooltip to anchor. Failures are logged and
// returned; the registry is left unchanged.
//
// An existing tooltip on the same anchor with the same class is destroyed
// first, so each anchor carries at most one tooltip per class. Tooltips on
// other anchors are never touched.
func (r *Registry) Create(anchor *dom.Element, opts *Options) (*Tooltip, error) {
	if anchor != nil && anchor.Parent() == nil {
		err := errors.New("T003").WithDetailf("%s has no parent element.", anchor)
		r.reportCreate(anchor, err)
		return nil, err
	}
	if err := checkVisible(anchor); err != nil {
		r.reportCreate(anchor, err)
		return nil, err
	}

	cfg := r.defaults.Merge(opts).resolve(r.persistent || (opts != nil && opts.Persistent != nil))
	r.replace(anchor, cfg.Class)

	t := newTooltip(r, anchor, cfg)
	t.build(r.text(anchor, cfg))
	anchor.Parent().InsertBefore(t.popup, anchor.NextSibling())

	if cfg.ShowOn == ShowOnLoad {
		t.Show()
	} else {
		t.conceal()
	}
	t.attachEvents()

	if cfg.Position != PositionAuto {
		t.alignArrow()
	}

	r.live = append(r.live, t)
	r.metrics.recordCreated()
	r.logger.Debug("tooltip created",
		"anchor", anchor.String(),
		"show_on", string(cfg.ShowOn),
		"orientation", string(cfg.Orientation),
	)
	return t, nil
}

// text picks the popup body: explicit text, then the anchor's title, then
// the placeholder.
func (r *Registry) text(anchor *dom.Element, cfg Config) string {
	if cfg.Text != "" {
		return cfg.Text
	}
	if title, ok := anchor.Attr("title"); ok && title != "" {
		return title
	}
	return r.placeholder
}

// replace destroys the live tooltips of anchor that carry class, then
// removes popups with that class left behind by another registry. Those are
// recognised only in the run of popups directly after anchor, where Create
// inserts them.
func (r *Registry) replace(anchor *dom.Element, class string) {
	for _, t := range r.Tooltips() {
		if t.anchor == anchor && t.config.Class == class {
			t.Destroy()
		}
	}

	var stale []*dom.Element
	for node := anchor.NextSibling(); node != nil && node.HasClass(ClassTooltip); node = node.NextSibling() {
		if _, owned := r.Lookup(node); !owned && node.HasClass(class) {
			stale = append(stale, node)
		}
	}
	for _, node := range stale {
		node.Remove()
	}
}

// Lookup resolves a popup node to its live tooltip.
func (r *Registry) Lookup(node *dom.Element) (*Tooltip, bool) {
	for _, t := range r.live {
		if t.popup == node {
			return t, true
		}
	}
	return nil, false
}

// Hide hides a tooltip given as a *Tooltip or as its popup *dom.Element.
func (r *Registry) Hide(target any) error {
	var t *Tooltip
	switch v := target.(type) {
	case *Tooltip:
		t = v
	case *dom.Element:
		found, ok := r.Lookup(v)
		if !ok {
			err := errors.New("T010").WithDetailf("%s is not the popup of a live tooltip.", v)
			r.report("tooltip: hide failed", v, err)
			return err
		}
		t = found
	}
	if t == nil {
		err := errors.New("T011").WithDetailf("got %T.", target)
		r.report("tooltip: hide failed", nil, err)
		return err
	}
	t.Hide()
	return nil
}

// DestroyAll destroys every live tooltip, newest first.
func (r *Registry) DestroyAll() {
	for len(r.live) > 0 {
		t := r.live[len(r.live)-1]
		r.live = r.live[:len(r.live)-1]
		t.Destroy()
	}
}

// Reposition re-runs placement for every visible tooltip.
func (r *Registry) Reposition() {
	for _, t := range r.Tooltips() {
		t.Reposition()
	}
}

// Len returns the number of live tooltips.
func (r *Registry) Len() int {
	return len(r.live)
}

// Tooltips returns the live tooltips in creation order.
func (r *Registry) Tooltips() []*Tooltip {
	return append([]*Tooltip(nil), r.live...)
}

// NextZIndex returns the current stacking value and advances the counter.
// Values are never reused.
func (r *Registry) NextZIndex() int {
	z := r.zIndex
	r.zIndex++
	return z
}

func (r *Registry) forget(t *Tooltip) {
	for i, have := range r.live {
		if have == t {
			r.live = append(r.live[:i], r.live[i+1:]...)
			return
		}
	}
}

func (r *Registry) reportCreate(anchor *dom.Element, err error) {
	r.metrics.recordCreateFailure(errors.CodeOf(err))
	r.report("tooltip: create failed", anchor, err)
}

func (r *Registry) report(msg string, el *dom.Element, err error) {
	r.logger.Error(msg, "code", errors.CodeOf(err), "element", el.String(), "error", err)
}
