package trace

import (
	"context"
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"
)

type traceKey struct{}

// Span 은 inbound 요청 하나의 추적 상태다.
// seq 0 은 inbound 요청 자신이고, lookup service 호출마다 1 씩 증가한다.
type Span struct {
	requestID string
	seq       atomic.Int64
}

const maxRequestIDLen = 64

// GenerateID 는 새 Request ID 를 만든다.
func GenerateID() string {
	return uuid.NewString()
}

// AcceptRequestID 는 클라이언트가 보낸 X-Request-Id 를 그대로 써도 되는지 확인하고,
// 비어 있거나 허용하지 않는 문자가 있으면 새 ID 를 돌려준다.
func AcceptRequestID(incoming string) string {
	if incoming == "" || len(incoming) > maxRequestIDLen {
		return GenerateID()
	}
	for _, r := range incoming {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case r == '-', r == '_', r == '.', r == ':':
		default:
			return GenerateID()
		}
	}
	return incoming
}

// WithRequestAndSpan 은 requestID 와 시작 span 값을 담은 컨텍스트를 돌려준다.
func WithRequestAndSpan(ctx context.Context, requestID string, initialSpan int64) context.Context {
	s := &Span{requestID: requestID}
	s.seq.Store(initialSpan)
	return context.WithValue(ctx, traceKey{}, s)
}

func spanFrom(ctx context.Context) *Span {
	if ctx == nil {
		return nil
	}
	s, _ := ctx.Value(traceKey{}).(*Span)
	return s
}

func RequestIDFromContext(ctx context.Context) string {
	if s := spanFrom(ctx); s != nil {
		return s.requestID
	}
	return ""
}

// CurrentSpanID 는 마지막으로 발급된 span 번호다. 증가시키지 않는다.
func CurrentSpanID(ctx context.Context) string {
	s := spanFrom(ctx)
	if s == nil {
		return "0"
	}
	return strconv.FormatInt(max(s.seq.Load(), 0), 10)
}

// NextSpanID 는 다음 span 번호를 발급하고 (requestID, spanID) 를 돌려준다.
// RequestTrace 밖(예: 기동 시 health 확인)에서는 매번 새 requestID 의 span 1 이다.
func NextSpanID(ctx context.Context) (string, string) {
	s := spanFrom(ctx)
	if s == nil {
		return GenerateID(), "1"
	}
	return s.requestID, strconv.FormatInt(max(s.seq.Add(1), 1), 10)
}
