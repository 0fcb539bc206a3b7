package observability

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsObserver_ObserveOperation(t *testing.T) {
	m := NewMetricsObserver(MetricsConfig{ServiceName: "test"})

	m.ObserveOperation(OperationContext{Component: "weaviate", Operation: "GET", Duration: 20 * time.Millisecond, Size: 128})
	m.ObserveOperation(OperationContext{Component: "weaviate", Operation: "GET", Duration: 10 * time.Millisecond, Size: 64})
	m.ObserveOperation(OperationContext{Component: "weaviate", Operation: "POST", Error: errors.New("boom"), Size: -1})

	assert.Equal(t, 2.0, testutil.ToFloat64(m.operationsTotal.WithLabelValues("weaviate", "GET", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.operationsTotal.WithLabelValues("weaviate", "POST", "error")))
	assert.Equal(t, 192.0, testutil.ToFloat64(m.bytesReceived.WithLabelValues("weaviate", "GET")))
	assert.Equal(t, 2, testutil.CollectAndCount(m.operationDuration))
}

func TestMetricsObserver_ServesMetricsWithServiceLabel(t *testing.T) {
	m := NewMetricsObserver(MetricsConfig{ServiceName: "search", Namespace: "app"})
	m.ObserveOperation(OperationContext{Component: "weaviate", Operation: "GET"})

	srv := httptest.NewServer(m.Server.Handler)
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Contains(t, string(body), `app_operations_total{component="weaviate",operation="GET",service="search",status="success"} 1`)
	assert.False(t, strings.Contains(string(body), "go_goroutines"), "default collectors are disabled")
}

func TestNewMetricsObserver_DefaultAddress(t *testing.T) {
	assert.Equal(t, DefaultMetricsAddress, NewMetricsObserver(MetricsConfig{}).Server.Addr)
	assert.Equal(t, ":9100", NewMetricsObserver(MetricsConfig{Address: ":9100"}).Server.Addr)
}

func TestMulti(t *testing.T) {
	var got []string
	a := ObserverFunc(func(ctx OperationContext) { got = append(got, "a:"+ctx.Operation) })
	b := ObserverFunc(func(ctx OperationContext) { got = append(got, "b:"+ctx.Operation) })

	Multi(a, nil, b).ObserveOperation(OperationContext{Operation: "GET"})

	assert.Equal(t, []string{"a:GET", "b:GET"}, got)
}
