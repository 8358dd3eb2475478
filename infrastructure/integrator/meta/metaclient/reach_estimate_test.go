package metaclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	metadomain "github.com/vfg2006/performance-forecast-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/performance-forecast-api/internal/config"
)

func newTestClient(serverURL, token string) *MetaClient {
	cfg := &config.Config{Meta: config.Meta{URL: serverURL, AccessToken: token, AdAccountID: "123"}}
	return NewClient(cfg, NewTokenManager(cfg)).(*MetaClient)
}

func testParams() ReachEstimateParams {
	return ReachEstimateParams{
		AdAccountID: "act_123",
		TargetingSpec: metadomain.TargetingSpec{
			GeoLocations: metadomain.GeoLocations{Cities: []metadomain.CityTarget{{Name: "Austin", Radius: 25, DistanceUnit: "mile"}}},
			AgeMin:       25,
			AgeMax:       65,
		},
		OptimizationGoal:   "LINK_CLICKS",
		DailyBudgetInCents: 5000,
	}
}

func TestGetReachEstimate_SendsExpectedQuery(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/act_123/reachestimate", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "token", q.Get("access_token"))
		assert.Equal(t, "LINK_CLICKS", q.Get("optimization_goal"))
		assert.Equal(t, "5000", q.Get("daily_budget_amount_cents"))
		assert.Equal(t, "USD", q.Get("currency"))
		assert.JSONEq(t,
			`{"geo_locations":{"cities":[{"name":"Austin","radius":25,"distance_unit":"mile"}]},"age_min":25,"age_max":65}`,
			q.Get("targeting_spec"))

		_, _ = w.Write([]byte(`{"data":[{"users_lower_bound":1200,"users_upper_bound":3400,"estimate_ready":true}]}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL, "token")

	estimates, err := client.GetReachEstimate(context.Background(), testParams())
	require.NoError(t, err)
	require.Len(t, estimates, 1)
	assert.Equal(t, int64(1200), estimates[0].UsersLowerBound)
	assert.Equal(t, int64(3400), estimates[0].UsersUpperBound)
	assert.True(t, estimates[0].EstimateReady)
}

func TestGetReachEstimate_AcceptsObjectData(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":{"users_lower_bound":10,"users_upper_bound":20,"estimate_ready":false}}`))
	}))
	defer server.Close()

	estimates, err := newTestClient(server.URL, "token").GetReachEstimate(context.Background(), testParams())
	require.NoError(t, err)
	require.Len(t, estimates, 1)
	assert.Equal(t, int64(20), estimates[0].UsersUpperBound)
	assert.False(t, estimates[0].EstimateReady)
}

func TestGetReachEstimate_Errors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		check  func(t *testing.T, err error)
	}{
		{
			name:   "erro da api",
			status: http.StatusBadRequest,
			body:   `{"error":{"message":"Invalid parameter","type":"OAuthException","code":100}}`,
			check: func(t *testing.T, err error) {
				var respErr *ResponseError
				require.True(t, errors.As(err, &respErr))
				assert.Equal(t, http.StatusBadRequest, respErr.StatusCode)
				require.NotNil(t, respErr.Meta)
				assert.Equal(t, 100, respErr.Meta.Error.Code)
			},
		},
		{
			name:   "status sem corpo json",
			status: http.StatusBadGateway,
			body:   `upstream down`,
			check: func(t *testing.T, err error) {
				var respErr *ResponseError
				require.True(t, errors.As(err, &respErr))
				assert.Nil(t, respErr.Meta)
			},
		},
		{
			name:   "erro com status 200",
			status: http.StatusOK,
			body:   `{"error":{"message":"Unsupported","type":"GraphMethodException","code":100}}`,
			check: func(t *testing.T, err error) {
				var respErr *ResponseError
				assert.True(t, errors.As(err, &respErr))
			},
		},
		{
			name:   "sem campo data",
			status: http.StatusOK,
			body:   `{}`,
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, ErrMalformedResponse)
			},
		},
		{
			name:   "json inválido",
			status: http.StatusOK,
			body:   `{"data":[`,
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, ErrMalformedResponse)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			_, err := newTestClient(server.URL, "token").GetReachEstimate(context.Background(), testParams())
			require.Error(t, err)
			tt.check(t, err)
		})
	}
}

func TestGetReachEstimate_MissingToken(t *testing.T) {
	_, err := newTestClient("http://unused.local", "").GetReachEstimate(context.Background(), testParams())
	assert.ErrorIs(t, err, ErrMissingToken)
}

func TestGetReachEstimate_ContextDeadline(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := newTestClient(server.URL, "token").GetReachEstimate(ctx, testParams())
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
