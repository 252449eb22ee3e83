package prometheus

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marmos91/dittofs-ufs/pkg/metrics"
	"github.com/marmos91/dittofs-ufs/pkg/ufs"
)

// counterValue returns the value of the counter in family name whose labels
// include every pair in labels.
func counterValue(t *testing.T, reg *prometheus.Registry, name string, labels map[string]string) float64 {
	t.Helper()

	families, err := reg.Gather()
	require.NoError(t, err)

	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}
	metricLoop:
		for _, m := range mf.GetMetric() {
			for _, lp := range m.GetLabel() {
				if want, ok := labels[lp.GetName()]; ok && want != lp.GetValue() {
					continue metricLoop
				}
			}
			return m.GetCounter().GetValue()
		}
	}
	t.Fatalf("metric %s%v not found", name, labels)
	return 0
}

func TestNewUFSMetrics_Disabled(t *testing.T) {
	metrics.ResetRegistry()
	assert.Nil(t, NewUFSMetrics())
	assert.Nil(t, metrics.NewUFSMetrics())
}

func TestNewUFSMetrics_Enabled(t *testing.T) {
	metrics.InitRegistry()
	t.Cleanup(metrics.ResetRegistry)

	m := metrics.NewUFSMetrics()
	require.NotNil(t, m, "constructor registered by package init")

	m.ObserveDefaults("SIMPLE", ufs.OutcomeSuccess, 2*time.Millisecond)

	reg := metrics.GetRegistry()
	assert.Equal(t, 1.0, counterValue(t, reg, "dittofs_ufs_defaults_total",
		map[string]string{"auth_type": "SIMPLE", "outcome": "success"}))
}

func TestUFSMetrics_Observations(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := newUFSMetrics(reg)

	m.ObserveDefaults("KERBEROS", ufs.OutcomeError, time.Millisecond)
	m.ObserveDefaults("KERBEROS", ufs.OutcomeError, time.Millisecond)
	m.ObserveWireConversion([]string{"user", "posix_perm"})
	m.ObserveWireConversion([]string{"user"})

	assert.Equal(t, 2.0, counterValue(t, reg, "dittofs_ufs_defaults_total",
		map[string]string{"auth_type": "KERBEROS", "outcome": "error"}))
	assert.Equal(t, 2.0, counterValue(t, reg, "dittofs_ufs_wire_conversions_total", nil))
	assert.Equal(t, 2.0, counterValue(t, reg, "dittofs_ufs_wire_fields_set_total", map[string]string{"field": "user"}))
	assert.Equal(t, 1.0, counterValue(t, reg, "dittofs_ufs_wire_fields_set_total", map[string]string{"field": "posix_perm"}))
	assert.Equal(t, 0.0, counterValue(t, reg, "dittofs_ufs_wire_fields_set_total", map[string]string{"field": "group"}))
}
