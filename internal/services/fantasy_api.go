package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/franciscosanchezn/fbb-mcp/internal/metrics"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
)

var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetLevel(logrus.InfoLevel)
}

// SetLogger replaces the package logger.
func SetLogger(l *logrus.Logger) {
	if l != nil {
		log = l
	}
}

// FantasyAPI is the fantasy data backend. Responses are decoded into out.
type FantasyAPI interface {
	Get(ctx context.Context, path string, params map[string]string, out any) error
	Post(ctx context.Context, path string, body map[string]string, out any) error
}

// APIError is returned when the backend answers with a non-2xx status.
type APIError struct {
	Status     int
	StatusText string
	Body       string
}

func (e *APIError) Error() string {
	msg := "API error: " + strconv.Itoa(e.Status) + " " + e.StatusText
	if e.Body != "" {
		msg += " - " + e.Body
	}
	return msg
}

type fantasyAPI struct {
	baseURL *url.URL
	client  *http.Client
	metrics *metrics.Metrics
	group   singleflight.Group
}

// NewFantasyAPI creates a client for the backend at baseURL. A nil
// httpClient uses a client with a 30 second timeout.
func NewFantasyAPI(baseURL string, httpClient *http.Client, m *metrics.Metrics) (FantasyAPI, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid backend url %q: %w", baseURL, err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("invalid backend url %q: scheme and host are required", baseURL)
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &fantasyAPI{baseURL: parsed, client: httpClient, metrics: m}, nil
}

func (a *fantasyAPI) endpoint(path string, params map[string]string) string {
	u := a.baseURL.ResolveReference(&url.URL{Path: path})
	query := url.Values{}
	for key, value := range params {
		if value != "" {
			query.Set(key, value)
		}
	}
	u.RawQuery = query.Encode()
	return u.String()
}

// Get issues a GET request. Identical concurrent requests share one round
// trip; the shared request ignores cancellation, and each caller stops
// waiting when its own ctx is done.
func (a *fantasyAPI) Get(ctx context.Context, path string, params map[string]string, out any) error {
	target := a.endpoint(path, params)
	shareCtx := context.WithoutCancel(ctx)
	ch := a.group.DoChan(target, func() (any, error) {
		req, err := http.NewRequestWithContext(shareCtx, http.MethodGet, target, nil)
		if err != nil {
			return nil, err
		}
		return a.do(req)
	})

	select {
	case <-ctx.Done():
		return ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return res.Err
		}
		if res.Shared {
			log.WithField("url", target).Debug("Backend GET shared with a concurrent caller")
		}
		return decode(res.Val.([]byte), out)
	}
}

// Post sends body as JSON.
func (a *fantasyAPI) Post(ctx context.Context, path string, body map[string]string, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to encode request body: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.endpoint(path, nil), bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	raw, err := a.do(req)
	if err != nil {
		return err
	}
	return decode(raw, out)
}

func (a *fantasyAPI) do(req *http.Request) ([]byte, error) {
	start := time.Now()
	resp, err := a.client.Do(req)
	if err != nil {
		a.metrics.ObserveBackend(req.Method, 0, time.Since(start))
		log.WithFields(logrus.Fields{
			"method": req.Method,
			"path":   req.URL.Path,
		}).WithError(err).Warn("Backend request failed")
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	a.metrics.ObserveBackend(req.Method, resp.StatusCode, time.Since(start))
	if err != nil {
		return nil, fmt.Errorf("failed to read backend response: %w", err)
	}

	log.WithFields(logrus.Fields{
		"method": req.Method,
		"path":   req.URL.Path,
		"status": resp.StatusCode,
	}).Debug("Backend request completed")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &APIError{
			Status:     resp.StatusCode,
			StatusText: statusText(resp),
			Body:       string(body),
		}
	}
	return body, nil
}

// statusText returns the reason phrase of resp.Status without the code.
func statusText(resp *http.Response) string {
	text := strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode))
	text = strings.TrimSpace(text)
	if text == "" {
		text = http.StatusText(resp.StatusCode)
	}
	return text
}

func decode(raw []byte, out any) error {
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to decode backend response: %w", err)
	}
	return nil
}
