package dishclient

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation 은 네트워크 호출 전에 입력이 거부된 경우다.
	ErrValidation = errors.New("invalid lookup request")
	// ErrUpstream 은 non-2xx 응답 또는 네트워크 수준 실패다.
	ErrUpstream = errors.New("lookup service failure")
	// ErrMalformedResponse 는 응답 바디를 기대한 형태로 해석하지 못한 경우다.
	ErrMalformedResponse = errors.New("malformed lookup service response")
	// ErrNotFound 는 404 응답이다. ErrUpstream 과 함께 매칭된다.
	ErrNotFound = errors.New("resource not found")
)

// UpstreamError 는 lookup service 가 non-2xx 로 응답한 경우의 상세 정보다.
type UpstreamError struct {
	Op         string
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("lookup-service %s: status=%d body=%s", e.Op, e.StatusCode, e.Body)
}

func (e *UpstreamError) Unwrap() error {
	return ErrUpstream
}

// IsFailure 는 화면에 "something went wrong" 상태로 보여줘야 하는 에러인지 판단한다.
// 잘못된 응답은 upstream 실패와 동일하게 취급한다.
func IsFailure(err error) bool {
	return errors.Is(err, ErrUpstream) || errors.Is(err, ErrMalformedResponse)
}

func validationError(op, msg string) error {
	return fmt.Errorf("lookup-service %s: %w: %s", op, ErrValidation, msg)
}
