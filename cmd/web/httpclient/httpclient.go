package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/Nandeeswar7/chrysalis-web/cmd/internal/logger"
	"github.com/Nandeeswar7/chrysalis-web/cmd/web/trace"
)

const (
	defaultTimeout       = 10 * time.Second
	defaultSlowThreshold = 2 * time.Second
	maxBodyLog           = 1024
)

// Config 는 lookup service 호출용 http.Client 설정이다.
type Config struct {
	// Timeout 이 0 이면 10초.
	Timeout time.Duration
	// SlowThreshold 보다 오래 걸린 호출은 warn 으로 남긴다. 0 이면 2초.
	SlowThreshold time.Duration
	// Transport 가 nil 이면 http.DefaultTransport.
	Transport http.RoundTripper
}

// tracingTransport 는 outbound 요청마다 새 span 을 발급해 X-Request-Id / X-Span-Id 를 붙이고
// 결과를 구조화 로그로 남긴다. 원본 요청은 수정하지 않는다.
type tracingTransport struct {
	inner http.RoundTripper
	slow  time.Duration
}

func (t *tracingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()

	requestID, spanID := trace.NextSpanID(req.Context())
	out := req.Clone(req.Context())
	out.Header.Set("X-Request-Id", requestID)
	out.Header.Set("X-Span-Id", spanID)

	fields := logger.Fields{
		"method":     out.Method,
		"url":        out.URL.String(),
		"request_id": requestID,
		"span_id":    spanID,
	}
	if snippet := bodySnippet(req); snippet != "" {
		fields["body"] = snippet
	}

	resp, err := t.inner.RoundTrip(out)
	elapsed := time.Since(start)
	fields["duration"] = elapsed.String()
	if err != nil {
		fields["error"] = err.Error()
		logger.ErrorWithFields("lookup call failed", fields)
		return nil, err
	}

	fields["status"] = resp.StatusCode
	switch {
	case elapsed > t.slow:
		logger.WarnWithFields("lookup call slow", fields)
	case resp.StatusCode >= http.StatusInternalServerError:
		logger.WarnWithFields("lookup call returned server error", fields)
	default:
		logger.DebugWithFields("lookup call done", fields)
	}
	return resp, nil
}

// bodySnippet 은 GetBody 로 바디 사본을 읽는다. GetBody 가 없으면 로깅하지 않는다.
func bodySnippet(req *http.Request) string {
	if req.GetBody == nil || req.ContentLength == 0 {
		return ""
	}
	rc, err := req.GetBody()
	if err != nil {
		return ""
	}
	defer rc.Close()
	b, err := io.ReadAll(io.LimitReader(rc, maxBodyLog))
	if err != nil {
		return ""
	}
	return string(b)
}

// New 는 tracingTransport 를 끼운 http.Client 를 만든다.
func New(cfg Config) *http.Client {
	if cfg.Timeout == 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.SlowThreshold == 0 {
		cfg.SlowThreshold = defaultSlowThreshold
	}
	if cfg.Transport == nil {
		cfg.Transport = http.DefaultTransport
	}
	return &http.Client{
		Timeout:   cfg.Timeout,
		Transport: &tracingTransport{inner: cfg.Transport, slow: cfg.SlowThreshold},
	}
}

func NewDefault() *http.Client {
	return New(Config{})
}

// BaseClient 는 http.Client 와 baseURL 을 묶어 상대 경로 요청을 만든다.
type BaseClient struct {
	HTTPClient *http.Client
	BaseURL    string
}

// NewBaseClientWithClient 는 httpClient 가 nil 이면 NewDefault 를 쓴다.
func NewBaseClientWithClient(httpClient *http.Client, baseURL string) *BaseClient {
	if httpClient == nil {
		httpClient = NewDefault()
	}
	return &BaseClient{HTTPClient: httpClient, BaseURL: strings.TrimRight(baseURL, "/")}
}

// NewRequest 는 BaseURL 의 path 뒤에 relPath 를 붙인 요청을 만든다.
// relPath 에 쿼리가 섞이면 path.Join 이 '?' 를 이스케이프하지 못하므로 거부한다. 쿼리는 query 로 넘긴다.
func (c *BaseClient) NewRequest(ctx context.Context, method, relPath string, query url.Values, body io.Reader) (*http.Request, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if strings.Contains(relPath, "?") {
		return nil, fmt.Errorf("httpclient: relPath must not contain query string (use query parameter instead): %s", relPath)
	}
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("httpclient: invalid base url %q: %w", c.BaseURL, err)
	}
	if relPath != "" {
		u.Path = path.Join(u.Path, relPath)
	}
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	return req, nil
}

// NewJSONRequest 는 payload 를 JSON 으로 직렬화해 바디로 쓰는 요청을 만든다.
func (c *BaseClient) NewJSONRequest(ctx context.Context, method, relPath string, payload any) (*http.Request, error) {
	buf, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("httpclient: encode %s body: %w", relPath, err)
	}
	req, err := c.NewRequest(ctx, method, relPath, nil, bytes.NewReader(buf))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	return req, nil
}

func (c *BaseClient) Do(req *http.Request) (*http.Response, error) {
	return c.HTTPClient.Do(req)
}
