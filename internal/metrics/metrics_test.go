package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveStorageOperation(t *testing.T) {
	initial := testutil.ToFloat64(StorageOperationsTotal.WithLabelValues("memory", "blog", "get", ResultSuccess))

	ObserveStorageOperation("memory", "blog", "get", ResultSuccess, 2*time.Millisecond)

	after := testutil.ToFloat64(StorageOperationsTotal.WithLabelValues("memory", "blog", "get", ResultSuccess))
	assert.Equal(t, initial+1, after, "StorageOperationsTotal should increment by 1")

	count := testutil.CollectAndCount(StorageOperationDuration)
	assert.GreaterOrEqual(t, count, 1, "StorageOperationDuration should have observations")
}

func TestObserveStorageOperationResults(t *testing.T) {
	for _, result := range []string{ResultNotFound, ResultConflict, ResultError} {
		initial := testutil.ToFloat64(StorageOperationsTotal.WithLabelValues("object", "product", "create", result))
		ObserveStorageOperation("object", "product", "create", result, time.Millisecond)
		after := testutil.ToFloat64(StorageOperationsTotal.WithLabelValues("object", "product", "create", result))
		assert.Equal(t, initial+1, after, result)
	}
}

func TestObserveUpload(t *testing.T) {
	initialFiles := testutil.ToFloat64(UploadedFilesTotal.WithLabelValues(ResultSuccess))
	initialBytes := testutil.ToFloat64(UploadedBytesTotal)

	ObserveUpload(ResultSuccess, 3, 1024)

	assert.Equal(t, initialFiles+3, testutil.ToFloat64(UploadedFilesTotal.WithLabelValues(ResultSuccess)))
	assert.Equal(t, initialBytes+1024, testutil.ToFloat64(UploadedBytesTotal))
}

func TestObserveUploadRejectedDoesNotCountBytes(t *testing.T) {
	initialRejected := testutil.ToFloat64(UploadedFilesTotal.WithLabelValues("rejected"))
	initialBytes := testutil.ToFloat64(UploadedBytesTotal)

	ObserveUpload("rejected", 2, 4096)

	assert.Equal(t, initialRejected+2, testutil.ToFloat64(UploadedFilesTotal.WithLabelValues("rejected")))
	assert.Equal(t, initialBytes, testutil.ToFloat64(UploadedBytesTotal))
}

func TestObserveLogin(t *testing.T) {
	initialOK := testutil.ToFloat64(LoginAttemptsTotal.WithLabelValues(ResultSuccess))
	initialBad := testutil.ToFloat64(LoginAttemptsTotal.WithLabelValues("invalid_credentials"))

	ObserveLogin(true)
	ObserveLogin(false)
	ObserveLogin(false)

	assert.Equal(t, initialOK+1, testutil.ToFloat64(LoginAttemptsTotal.WithLabelValues(ResultSuccess)))
	assert.Equal(t, initialBad+2, testutil.ToFloat64(LoginAttemptsTotal.WithLabelValues("invalid_credentials")))
}

func TestObserveModeration(t *testing.T) {
	initial := testutil.ToFloat64(CommentModerationsTotal.WithLabelValues("approve"))
	ObserveModeration("approve")
	assert.Equal(t, initial+1, testutil.ToFloat64(CommentModerationsTotal.WithLabelValues("approve")))
}

func TestHTTPMetricsExist(t *testing.T) {
	assert.NotNil(t, HTTPRequestsTotal)
	assert.NotNil(t, HTTPRequestDuration)
	assert.NotNil(t, HTTPRequestsInFlight)

	initialRequests := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "/health", "200"))
	HTTPRequestsTotal.WithLabelValues("GET", "/health", "200").Inc()
	newRequests := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "/health", "200"))
	assert.Equal(t, initialRequests+1, newRequests)
}

func TestTimerObserveDuration(t *testing.T) {
	timer := NewTimer()

	time.Sleep(20 * time.Millisecond)
	assert.GreaterOrEqual(t, timer.Elapsed(), 20*time.Millisecond)

	testHistogram := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "test_timer_duration_histogram",
		Help:    "Test histogram for timer duration",
		Buckets: []float64{.01, .05, .1, .5, 1},
	})
	prometheus.MustRegister(testHistogram)
	defer prometheus.Unregister(testHistogram)

	timer.ObserveDuration(testHistogram)

	count := testutil.CollectAndCount(testHistogram)
	assert.Equal(t, 1, count, "Histogram should have exactly one observation")
}

func TestPoolStatsCollectorStartStop(t *testing.T) {
	mockProvider := &mockPoolStatsProvider{
		totalConns:    10,
		idleConns:     5,
		acquiredConns: 5,
	}

	collector := NewPoolStatsCollectorWithProvider(mockProvider)
	collector.Start(10 * time.Millisecond)

	time.Sleep(30 * time.Millisecond)

	assert.Equal(t, float64(10), testutil.ToFloat64(DBConnectionPoolSize.WithLabelValues("total")))
	assert.Equal(t, float64(5), testutil.ToFloat64(DBConnectionPoolSize.WithLabelValues("idle")))
	assert.Equal(t, float64(5), testutil.ToFloat64(DBConnectionPoolSize.WithLabelValues("in_use")))

	collector.Stop()
	// second stop must not panic
	collector.Stop()
}

// mockPoolStats implements PoolStats for testing
type mockPoolStats struct {
	total    int32
	idle     int32
	acquired int32
}

func (m *mockPoolStats) TotalConns() int32    { return m.total }
func (m *mockPoolStats) IdleConns() int32     { return m.idle }
func (m *mockPoolStats) AcquiredConns() int32 { return m.acquired }

// mockPoolStatsProvider implements PoolStatsProvider for testing
type mockPoolStatsProvider struct {
	totalConns    int32
	idleConns     int32
	acquiredConns int32
}

func (m *mockPoolStatsProvider) Stat() PoolStats {
	return &mockPoolStats{
		total:    m.totalConns,
		idle:     m.idleConns,
		acquired: m.acquiredConns,
	}
}

func TestHTTPRequestsInFlightGauge(t *testing.T) {
	initial := testutil.ToFloat64(HTTPRequestsInFlight)

	HTTPRequestsInFlight.Inc()
	HTTPRequestsInFlight.Inc()
	assert.Equal(t, initial+2, testutil.ToFloat64(HTTPRequestsInFlight))

	HTTPRequestsInFlight.Dec()
	HTTPRequestsInFlight.Dec()
	assert.Equal(t, initial, testutil.ToFloat64(HTTPRequestsInFlight))
}
