package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iho/goassets/internal/adapter/http/handler"
	apimiddleware "github.com/iho/goassets/internal/adapter/http/middleware"
	"github.com/iho/goassets/internal/adapter/repository/memory"
	"github.com/iho/goassets/internal/domain"
	"github.com/iho/goassets/internal/infrastructure/memstore"
	"github.com/iho/goassets/internal/infrastructure/metrics"
	"github.com/iho/goassets/internal/usecase"
)

func newRouterConfig(opts ...func(*RouterConfig)) RouterConfig {
	repo := memory.NewAssetsListRepository(memstore.New[*domain.AssetsList]())
	saveUC := usecase.NewSaveAssetsListUseCase(repo, domain.NewInterestRateAvgCalculator(), nil)
	avgUC := usecase.NewGetAverageInterestRateUseCase(repo)

	cfg := RouterConfig{
		AssetsHandler: handler.NewAssetsHandler(saveUC, avgUC),
		HealthHandler: handler.NewHealthHandler(nil),
		Logger:        zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

func postAssets(t *testing.T, router http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/asset", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func getAverage(t *testing.T, router http.Handler) *float64 {
	t.Helper()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/interest_rate", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		AverageInterestRate *float64 `json:"average_interest_rate"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp.AverageInterestRate
}

func TestNewRouter_HealthEndpointAvailable(t *testing.T) {
	router := NewRouter(newRouterConfig())

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestNewRouter_RegistersKeyRoutes(t *testing.T) {
	router := NewRouter(newRouterConfig(func(cfg *RouterConfig) {
		cfg.Metrics = promhttp.HandlerFor(prometheus.NewRegistry(), promhttp.HandlerOpts{})
	}))

	chiRoutes, ok := router.(chi.Router)
	require.True(t, ok, "router does not implement chi.Routes")

	seen := map[string]bool{}
	err := chi.Walk(chiRoutes, func(method string, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		seen[method+" "+route] = true
		return nil
	})
	require.NoError(t, err)

	for _, route := range []string{
		"GET /health",
		"GET /ready",
		"GET /metrics",
		"POST /asset",
		"GET /interest_rate",
	} {
		assert.True(t, seen[route], "expected route %s to be registered", route)
	}
}

func TestAssetsAPI_GetBeforeAnySave(t *testing.T) {
	router := NewRouter(newRouterConfig())

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/interest_rate", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"average_interest_rate":null}`, rec.Body.String())
}

func TestAssetsAPI_SaveThenGet(t *testing.T) {
	tests := []struct {
		name string
		body string
		want float64
	}{
		{
			name: "three assets",
			body: `{"assets":[{"id":"id_1","interest_rate":5},{"id":"id_2","interest_rate":10},{"id":"id_3","interest_rate":15}]}`,
			want: 10,
		},
		{
			name: "single asset",
			body: `{"assets":[{"id":"id_1","interest_rate":7}]}`,
			want: 7,
		},
		{
			name: "zero rates",
			body: `{"assets":[{"id":"id_1","interest_rate":0},{"id":"id_2","interest_rate":0},{"id":"id_3","interest_rate":0}]}`,
			want: 0,
		},
		{
			name: "negative rates",
			body: `{"assets":[{"id":"id_1","interest_rate":-5},{"id":"id_2","interest_rate":10},{"id":"id_3","interest_rate":-2}]}`,
			want: 1,
		},
		{
			name: "large numbers",
			body: `{"assets":[{"id":"id_1","interest_rate":1000000},{"id":"id_2","interest_rate":2000000},{"id":"id_3","interest_rate":3000000}]}`,
			want: 2000000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := NewRouter(newRouterConfig())

			rec := postAssets(t, router, tt.body)
			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
			assert.JSONEq(t, `{"message":"Assets list saved successfully"}`, rec.Body.String())

			avg := getAverage(t, router)
			require.NotNil(t, avg)
			assert.Equal(t, tt.want, *avg)
		})
	}
}

func TestAssetsAPI_SecondSaveReplacesFirst(t *testing.T) {
	router := NewRouter(newRouterConfig())

	require.Equal(t, http.StatusOK, postAssets(t, router,
		`{"assets":[{"id":"id_1","interest_rate":5},{"id":"id_2","interest_rate":10}]}`).Code)
	require.Equal(t, http.StatusOK, postAssets(t, router,
		`{"assets":[{"id":"id_1","interest_rate":20},{"id":"id_2","interest_rate":30}]}`).Code)

	avg := getAverage(t, router)
	require.NotNil(t, avg)
	assert.Equal(t, 25.0, *avg)
}

func TestAssetsAPI_RejectedSaveKeepsPreviousList(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantDetail string
	}{
		{name: "empty list", body: `{"assets":[]}`, wantDetail: "Empty list is not a valid list"},
		{name: "null list", body: `{"assets":null}`, wantDetail: "A valid assets list is required"},
		{name: "missing list", body: `{}`, wantDetail: "A valid assets list is required"},
		{name: "missing rate", body: `{"assets":[{"id":"id_9"}]}`, wantDetail: "Validation error: assets[0].interest_rate: field required"},
		{name: "null rate", body: `{"assets":[{"id":"id_9","interest_rate":null}]}`, wantDetail: "Validation error: assets[0].interest_rate: field required"},
		{name: "non numeric rate", body: `{"assets":[{"id":"id_9","interest_rate":"abc"}]}`},
		{
			name:       "trailing garbage",
			body:       `{"assets":[{"id":"a","interest_rate":1}]} trailing`,
			wantDetail: "Validation error: request body must contain a single JSON object",
		},
		{
			name:       "second json value",
			body:       `{"assets":[{"id":"a","interest_rate":1}]}{"assets":[]}`,
			wantDetail: "Validation error: request body must contain a single JSON object",
		},
		{name: "numeric string rate", body: `{"assets":[{"id":"id_9","interest_rate":"5"}]}`},
		{
			name:       "duplicate ids",
			body:       `{"assets":[{"id":"a","interest_rate":1},{"id":"b","interest_rate":2},{"id":"a","interest_rate":3},{"id":"b","interest_rate":4},{"id":"a","interest_rate":5}]}`,
			wantDetail: "Duplicate asset IDs found: a, b",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := NewRouter(newRouterConfig())

			require.Equal(t, http.StatusOK, postAssets(t, router, `{"assets":[{"id":"id_1","interest_rate":4}]}`).Code)

			rec := postAssets(t, router, tt.body)
			require.Equal(t, http.StatusUnprocessableEntity, rec.Code, rec.Body.String())

			var resp struct {
				Error  string `json:"error"`
				Detail string `json:"detail"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.NotEmpty(t, resp.Detail)
			if tt.wantDetail != "" {
				assert.Equal(t, tt.wantDetail, resp.Detail)
			}

			avg := getAverage(t, router)
			require.NotNil(t, avg)
			assert.Equal(t, 4.0, *avg)
		})
	}
}

func TestAssetsAPI_ConcurrentSavesLeaveOneWholeList(t *testing.T) {
	router := NewRouter(newRouterConfig())

	bodies := []string{
		`{"assets":[{"id":"id_1","interest_rate":5},{"id":"id_2","interest_rate":10}]}`,
		`{"assets":[{"id":"id_1","interest_rate":20},{"id":"id_2","interest_rate":30}]}`,
	}

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(body string) {
			defer wg.Done()
			postAssets(t, router, body)
		}(bodies[i%2])
	}
	wg.Wait()

	avg := getAverage(t, router)
	require.NotNil(t, avg)
	assert.Contains(t, []float64{7.5, 25}, *avg)
}

func TestAverageInterestRateGaugeMatchesStoreAfterConcurrentSaves(t *testing.T) {
	registry := prometheus.NewRegistry()
	repo := memory.NewAssetsListRepository(memstore.New[*domain.AssetsList]())
	gauge := metrics.NewAverageInterestRateGauge(registry, repo.GetAverageInterestRate)

	router := NewRouter(newRouterConfig(func(cfg *RouterConfig) {
		cfg.AssetsHandler = handler.NewAssetsHandler(
			usecase.NewSaveAssetsListUseCase(repo, domain.NewInterestRateAvgCalculator(), metrics.New(registry)),
			usecase.NewGetAverageInterestRateUseCase(repo),
		)
	}))

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(rate int) {
			defer wg.Done()
			postAssets(t, router, fmt.Sprintf(`{"assets":[{"id":"id_1","interest_rate":%d}]}`, rate))
		}(i)
	}
	wg.Wait()

	avg := getAverage(t, router)
	require.NotNil(t, avg)
	assert.Equal(t, *avg, testutil.ToFloat64(gauge))
}

func TestNewRouter_RateLimiterBlocksExcessRequests(t *testing.T) {
	router := NewRouter(newRouterConfig(func(cfg *RouterConfig) {
		cfg.RateLimiter = apimiddleware.NewRateLimiter(1, 1)
	}))

	call := func() int {
		req := httptest.NewRequest(http.MethodGet, "/interest_rate", nil)
		req.RemoteAddr = "1.2.3.4:1234"
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, call())
	assert.Equal(t, http.StatusTooManyRequests, call())

	// Health checks are not throttled.
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.RemoteAddr = "1.2.3.4:1234"
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestNewRouter_MetricsExposed(t *testing.T) {
	registry := prometheus.NewRegistry()
	domainMetrics := metrics.New(registry)

	router := NewRouter(newRouterConfig(func(cfg *RouterConfig) {
		repo := memory.NewAssetsListRepository(memstore.New[*domain.AssetsList]())
		cfg.AssetsHandler = handler.NewAssetsHandler(
			usecase.NewSaveAssetsListUseCase(repo, domain.NewInterestRateAvgCalculator(), domainMetrics),
			usecase.NewGetAverageInterestRateUseCase(repo),
		)
		metrics.NewAverageInterestRateGauge(registry, repo.GetAverageInterestRate)
		cfg.HTTPMetrics = apimiddleware.NewHTTPMetrics(registry)
		cfg.Metrics = promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
	}))

	require.Equal(t, http.StatusOK, postAssets(t, router, `{"assets":[{"id":"id_1","interest_rate":3}]}`).Code)
	require.Equal(t, http.StatusUnprocessableEntity, postAssets(t, router, `{"assets":[]}`).Code)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, "goassets_assets_lists_saved_total 1")
	assert.Contains(t, body, "goassets_average_interest_rate 3")
	assert.Contains(t, body, `goassets_assets_lists_rejected_total{reason="empty_list"} 1`)
	assert.Contains(t, body, `http_requests_total{method="POST",path="/asset",status="200"} 1`)
}

func TestNewRouter_ReadinessUsesChecks(t *testing.T) {
	router := NewRouter(newRouterConfig(func(cfg *RouterConfig) {
		cfg.HealthHandler = handler.NewHealthHandler(map[string]handler.PingFunc{
			"redis": func(ctx context.Context) error { return context.DeadlineExceeded },
		})
	}))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
