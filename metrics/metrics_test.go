package metrics_test

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/routecraft/rcgraph/metrics"
)

func TestObserveSearch_CountsByOutcome(t *testing.T) {
	foundBefore := testutil.ToFloat64(metrics.SearchesTotal.WithLabelValues("found"))
	missBefore := testutil.ToFloat64(metrics.SearchesTotal.WithLabelValues("not_found"))

	metrics.ObserveSearch(3*time.Millisecond, 12, 5, true)
	metrics.ObserveSearch(1*time.Millisecond, 40, 9, false)
	metrics.ObserveSearch(2*time.Millisecond, 7, 3, true)

	require.Equal(t, foundBefore+2, testutil.ToFloat64(metrics.SearchesTotal.WithLabelValues("found")))
	require.Equal(t, missBefore+1, testutil.ToFloat64(metrics.SearchesTotal.WithLabelValues("not_found")))
}
