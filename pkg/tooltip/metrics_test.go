package tooltip

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"

	"github.com/vango-dev/tooltip/pkg/dom"
)

func gatherValue(t *testing.T, reg *prometheus.Registry, name string, labels map[string]string) float64 {
	t.Helper()
	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather() error: %v", err)
	}
	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}
		for _, m := range mf.GetMetric() {
			if !labelsMatch(m, labels) {
				continue
			}
			if c := m.GetCounter(); c != nil {
				return c.GetValue()
			}
			if g := m.GetGauge(); g != nil {
				return g.GetValue()
			}
		}
	}
	return 0
}

func labelsMatch(m *dto.Metric, labels map[string]string) bool {
	for _, lp := range m.GetLabel() {
		if want, ok := labels[lp.GetName()]; ok && want != lp.GetValue() {
			return false
		}
	}
	return true
}

func TestCollector(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(WithRegisterer(reg), WithNamespace("test"))
	r := newTestRegistry(WithMetrics(c))

	p := newPage(t)
	p.doc.SetMeasurer(popupMeasurer(200, 30))
	tt := mustCreate(t, r, p.anchor, &Options{Orientation: OrientationLeft})
	tt.Show()
	tt.Hide()
	tt.Destroy()

	r.Create(p.addAnchor("hidden", dom.Box{}), nil)
	r.Create(nil, nil)

	tests := []struct {
		name   string
		labels map[string]string
		want   float64
	}{
		{"test_created_total", nil, 1},
		{"test_shown_total", nil, 1},
		// The initial hide in Create is not a transition.
		{"test_hidden_total", nil, 1},
		{"test_destroyed_total", nil, 1},
		{"test_live", nil, 0},
		{"test_orientation_fallbacks_total", nil, 1},
		{"test_create_failures_total", map[string]string{"code": "T002"}, 1},
		{"test_create_failures_total", map[string]string{"code": "T001"}, 1},
	}
	for _, tc := range tests {
		if got := gatherValue(t, reg, tc.name, tc.labels); got != tc.want {
			t.Errorf("%s%v = %v, want %v", tc.name, tc.labels, got, tc.want)
		}
	}
}

func TestCollector_Nil(t *testing.T) {
	var c *Collector
	c.recordCreated()
	c.recordCreateFailure("T001")
	c.recordShown()
	c.recordHidden()
	c.recordDestroyed()
	c.recordFallback()
}
