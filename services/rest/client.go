package rest

import (
	"context"
	"fmt"
	"io"
	"io/ioutil"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/unicsmcr/hs_employees/config"
	"github.com/unicsmcr/hs_employees/services"
	"go.uber.org/zap"
)

const (
	authHeaderName    = "Authorization"
	bearerPrefix      = "Bearer "
	maxErrMessageSize = 512
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var (
	apiRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "hs_employees",
		Name:      "api_requests_total",
		Help:      "Requests sent to the employees API by method and response code.",
	}, []string{"method", "code"})
	apiRequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "hs_employees",
		Name:      "api_request_duration_seconds",
		Help:      "Latency of requests sent to the employees API.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method"})
)

func init() {
	prometheus.MustRegister(apiRequestsTotal, apiRequestDuration)
}

// APIError is a non-2xx response of the employees API
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("employees API responded with status %d", e.Status)
	}
	return fmt.Sprintf("employees API responded with status %d: %s", e.Status, e.Message)
}

// Client is a thin wrapper around the employees API.
// Non-2xx responses and transport failures are returned as errors wrapping one of
// the services errors; requests are never retried
type Client struct {
	logger     *zap.Logger
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a Client for the API at the configured base URL
func NewClient(logger *zap.Logger, cfg *config.AppConfig) *Client {
	return &Client{
		logger:  logger,
		baseURL: strings.TrimRight(cfg.API.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: cfg.API.Timeout,
		},
	}
}

// Get sends a GET request to path with the given query
func (c *Client) Get(ctx context.Context, path string, query url.Values, token string) (*http.Response, error) {
	if len(query) > 0 {
		path = path + "?" + query.Encode()
	}
	return c.do(ctx, http.MethodGet, path, nil, token)
}

// Post sends a POST request to path with the given body
func (c *Client) Post(ctx context.Context, path string, body RequestBody, token string) (*http.Response, error) {
	return c.do(ctx, http.MethodPost, path, body, token)
}

// Put sends a PUT request to path with the given body
func (c *Client) Put(ctx context.Context, path string, body RequestBody, token string) (*http.Response, error) {
	return c.do(ctx, http.MethodPut, path, body, token)
}

// Delete sends a DELETE request to path
func (c *Client) Delete(ctx context.Context, path string, token string) (*http.Response, error) {
	return c.do(ctx, http.MethodDelete, path, nil, token)
}

func (c *Client) do(ctx context.Context, method, path string, body RequestBody, token string) (*http.Response, error) {
	var (
		reader      io.Reader
		contentType string
	)
	if body != nil {
		var err error
		reader, contentType, err = body.encode()
		if err != nil {
			return nil, errors.Wrap(err, "could not encode request body")
		}
	}

	req, err := http.NewRequest(method, c.baseURL+path, reader)
	if err != nil {
		return nil, errors.Wrapf(err, "could not create %s request to %s", method, path)
	}
	req = req.WithContext(ctx)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")
	if token != "" {
		req.Header.Set(authHeaderName, bearerPrefix+token)
	}

	start := time.Now()
	res, err := c.httpClient.Do(req)
	apiRequestDuration.WithLabelValues(method).Observe(time.Since(start).Seconds())
	if err != nil {
		apiRequestsTotal.WithLabelValues(method, "error").Inc()
		c.logger.Debug("employees API request failed", zap.String("method", method), zap.String("path", path), zap.Error(err))
		return nil, errors.Wrap(services.ErrUnavailable, err.Error())
	}
	apiRequestsTotal.WithLabelValues(method, strconv.Itoa(res.StatusCode)).Inc()
	c.logger.Debug("employees API responded", zap.String("method", method), zap.String("path", path), zap.Int("status", res.StatusCode))

	if res.StatusCode < 200 || res.StatusCode > 299 {
		defer res.Body.Close()
		apiErr := &APIError{
			Status:  res.StatusCode,
			Message: readErrorMessage(res.Body),
		}
		return nil, errors.Wrap(causeForStatus(res.StatusCode), apiErr.Error())
	}

	return res, nil
}

// DecodeResponse decodes the JSON body of res into out and closes the body
func DecodeResponse(res *http.Response, out interface{}) error {
	defer res.Body.Close()

	err := json.NewDecoder(res.Body).Decode(out)
	if err != nil {
		return errors.Wrap(services.ErrUnavailable, fmt.Sprintf("could not decode response: %s", err))
	}
	return nil
}

// DiscardResponse drains and closes the body of res
func DiscardResponse(res *http.Response) {
	_, _ = io.Copy(ioutil.Discard, res.Body)
	_ = res.Body.Close()
}

func causeForStatus(status int) error {
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return services.ErrUnauthorized
	case status == http.StatusNotFound:
		return services.ErrNotFound
	case status >= 400 && status < 500:
		return services.ErrRejected
	default:
		return services.ErrUnavailable
	}
}

func readErrorMessage(body io.Reader) string {
	raw, err := ioutil.ReadAll(io.LimitReader(body, maxErrMessageSize))
	if err != nil || len(raw) == 0 {
		return ""
	}

	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
		Msg     string `json:"msg"`
	}
	if err := json.Unmarshal(raw, &payload); err == nil {
		for _, msg := range []string{payload.Message, payload.Error, payload.Msg} {
			if msg != "" {
				return msg
			}
		}
	}

	return strings.TrimSpace(string(raw))
}
