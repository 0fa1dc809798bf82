package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDrillObserve(t *testing.T) {
	reg := prometheus.NewRegistry()
	d, err := NewDrill(reg)
	require.NoError(t, err)

	d.Observe(true, false, 4)
	d.Observe(false, false, 4)
	d.Observe(true, true, 5)

	assert.Equal(t, 2.0, testutil.ToFloat64(d.Attempts.WithLabelValues("correct")))
	assert.Equal(t, 1.0, testutil.ToFloat64(d.Attempts.WithLabelValues("wrong")))
	assert.Equal(t, 1.0, testutil.ToFloat64(d.Passes))
	assert.Equal(t, 5.0, testutil.ToFloat64(d.Remaining))
}

func TestDrillDoubleRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := NewDrill(reg)
	require.NoError(t, err)
	_, err = NewDrill(reg)
	assert.Error(t, err)
}

func TestNilDrillIsNoop(t *testing.T) {
	var d *Drill
	assert.NotPanics(t, func() { d.Observe(true, true, 1) })
}
