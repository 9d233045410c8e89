package middleware

import (
	"bytes"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Nandeeswar7/chrysalis-web/cmd/internal/logger"
	"github.com/Nandeeswar7/chrysalis-web/cmd/web/trace"
)

const (
	headerRequestID = "X-Request-Id"
	headerSpanID    = "X-Span-Id"

	maxBodyLog = 1024
)

// RequestTrace 는 모든 inbound 요청에 Request ID 와 Span ID 를 보장하고
// 컨텍스트/헤더에 저장한 뒤 완료 로그에 포함시킨다.
// lookup service 호출은 같은 Request ID 로 span 1,2,3,... 을 사용한다.
func RequestTrace() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		req := c.Request

		requestID := trace.AcceptRequestID(req.Header.Get(headerRequestID))

		ctx := trace.WithRequestAndSpan(req.Context(), requestID, 0)
		c.Request = req.WithContext(ctx)

		currentSpan := trace.CurrentSpanID(ctx)
		c.Request.Header.Set(headerRequestID, requestID)
		c.Request.Header.Set(headerSpanID, currentSpan)
		c.Writer.Header().Set(headerRequestID, requestID)
		c.Writer.Header().Set(headerSpanID, currentSpan)

		queryParams := map[string][]string{}
		for key, values := range c.Request.URL.Query() {
			if len(values) > 0 {
				queryParams[key] = values
			}
		}

		bodySnippet := readBodySnippet(c.Request)

		c.Next()

		fields := logger.Fields{
			"method":       c.Request.Method,
			"path":         c.Request.URL.Path,
			"query_params": queryParams,
			"status":       c.Writer.Status(),
			"duration":     time.Since(start).String(),
			"request_id":   requestID,
			"span_id":      trace.CurrentSpanID(c.Request.Context()),
		}
		if bodySnippet != "" {
			fields["body"] = bodySnippet
		}
		if len(c.Errors) > 0 {
			fields["errors"] = c.Errors.String()
		}
		logger.InfoWithFields("completed request", fields)
	}
}

// readBodySnippet 은 로그용으로 바디 앞부분을 읽고, 핸들러가 다시 읽을 수 있도록 Body 를 복원한다.
func readBodySnippet(req *http.Request) string {
	if req.Body == nil || req.ContentLength == 0 {
		return ""
	}
	switch req.Method {
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
	default:
		return ""
	}
	bodyBytes, err := io.ReadAll(req.Body)
	if err != nil {
		return ""
	}
	req.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))
	if len(bodyBytes) > maxBodyLog {
		bodyBytes = bodyBytes[:maxBodyLog]
	}
	return string(bodyBytes)
}
