package rest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/unicsmcr/hs_employees/config"
	"github.com/unicsmcr/hs_employees/services"
	"go.uber.org/zap"
)

func setupClientTest(t *testing.T, handler http.HandlerFunc) (*Client, func()) {
	server := httptest.NewServer(handler)

	client := NewClient(zap.NewNop(), &config.AppConfig{
		API: config.APIConfig{
			BaseURL: server.URL + "/api/",
			Timeout: time.Second,
		},
	})

	return client, server.Close
}

func Test_NewClient__should_trim_trailing_slash_of_base_URL(t *testing.T) {
	client := NewClient(zap.NewNop(), &config.AppConfig{API: config.APIConfig{BaseURL: "http://localhost/api/"}})

	assert.Equal(t, "http://localhost/api", client.baseURL)
}

func Test_Get__should_send_token_and_query(t *testing.T) {
	client, cleanup := setupClientTest(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/employees", r.URL.Path)
		assert.Equal(t, "bob", r.URL.Query().Get("search"))
		assert.Equal(t, "Bearer token123", r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"ok":true}`))
	})
	defer cleanup()

	res, err := client.Get(context.Background(), "/employees", url.Values{"search": {"bob"}}, "token123")
	require.NoError(t, err)

	var body struct {
		OK bool `json:"ok"`
	}
	err = DecodeResponse(res, &body)
	assert.NoError(t, err)
	assert.True(t, body.OK)
}

func Test_Post__should_not_send_authorization_header_without_token(t *testing.T) {
	client, cleanup := setupClientTest(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.WriteHeader(http.StatusCreated)
	})
	defer cleanup()

	res, err := client.Post(context.Background(), "/users/signup", JSON(map[string]string{"a": "b"}), "")
	require.NoError(t, err)
	DiscardResponse(res)
}

func Test_do__should_map_response_status_to_service_error(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
		wantMsg string
	}{
		{
			name:    "401",
			status:  http.StatusUnauthorized,
			wantErr: services.ErrUnauthorized,
		},
		{
			name:    "403",
			status:  http.StatusForbidden,
			wantErr: services.ErrUnauthorized,
		},
		{
			name:    "404",
			status:  http.StatusNotFound,
			wantErr: services.ErrNotFound,
		},
		{
			name:    "400 with JSON message",
			status:  http.StatusBadRequest,
			body:    `{"message":"username already exists"}`,
			wantErr: services.ErrRejected,
			wantMsg: "username already exists",
		},
		{
			name:    "409 with plain text",
			status:  http.StatusConflict,
			body:    "duplicate email",
			wantErr: services.ErrRejected,
			wantMsg: "duplicate email",
		},
		{
			name:    "500",
			status:  http.StatusInternalServerError,
			body:    `{"error":"db down"}`,
			wantErr: services.ErrUnavailable,
			wantMsg: "db down",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, cleanup := setupClientTest(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			})
			defer cleanup()

			res, err := client.Delete(context.Background(), "/employees/delete/1", "token")

			assert.Nil(t, res)
			assert.Equal(t, tt.wantErr, errors.Cause(err))
			if tt.wantMsg != "" {
				assert.Contains(t, err.Error(), tt.wantMsg)
			}
		})
	}
}

func Test_do__should_return_ErrUnavailable_when_API_is_unreachable(t *testing.T) {
	client, cleanup := setupClientTest(t, func(w http.ResponseWriter, r *http.Request) {})
	cleanup()

	res, err := client.Get(context.Background(), "/employees", nil, "token")

	assert.Nil(t, res)
	assert.Equal(t, services.ErrUnavailable, errors.Cause(err))
}

func Test_do__should_return_ErrUnavailable_when_context_is_cancelled(t *testing.T) {
	client, cleanup := setupClientTest(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	defer cleanup()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.Get(ctx, "/employees", nil, "token")

	assert.Equal(t, services.ErrUnavailable, errors.Cause(err))
}

func Test_do__should_count_API_requests(t *testing.T) {
	client, cleanup := setupClientTest(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	defer cleanup()

	before := testutil.ToFloat64(apiRequestsTotal.WithLabelValues(http.MethodPut, "418"))

	_, err := client.Put(context.Background(), "/employees/edit/1", NewMultipartBody(), "token")
	assert.Error(t, err)

	assert.Equal(t, before+1, testutil.ToFloat64(apiRequestsTotal.WithLabelValues(http.MethodPut, "418")))
}

func Test_DecodeResponse__should_return_ErrUnavailable_on_malformed_body(t *testing.T) {
	client, cleanup := setupClientTest(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("<html>"))
	})
	defer cleanup()

	res, err := client.Get(context.Background(), "/employees", nil, "")
	require.NoError(t, err)

	var out map[string]interface{}
	err = DecodeResponse(res, &out)
	assert.Equal(t, services.ErrUnavailable, errors.Cause(err))
}
