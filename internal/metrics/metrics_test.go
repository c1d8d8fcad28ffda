package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics(t *testing.T) {

	m := NewMetrics()

	m.Representation("feaclip", 50, time.Millisecond)
	m.Representation("feaclip", 50, time.Millisecond)
	m.Clustering("silhouette", 3, time.Millisecond)
	m.Run("feaclip", nil)
	m.Run("feaclip", errors.New("failed"))
	m.Run("feaclip", nil)

	assert.Equal(t, 100.0, testutil.ToFloat64(m.prometheus.Representations.WithLabelValues("feaclip")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.prometheus.Clusterings.WithLabelValues("silhouette")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.prometheus.Runs.WithLabelValues("feaclip", "ok")))
	assert.Equal(t, 2, m.Runs("ok"))
	assert.Equal(t, 1, m.Runs("error"))

	families, err := m.Registry().Gather()
	require.NoError(t, err)
	assert.Equal(t, 4, len(families))
}
