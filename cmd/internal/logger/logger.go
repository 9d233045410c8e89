package logger

import (
	"os"
	"strings"

	"github.com/gookit/slog"
	"github.com/gookit/slog/handler"
)

// DefaultServiceName 은 SERVICE_NAME 환경변수가 없을 때 service_name 필드 값이다.
const DefaultServiceName = "chrysalis-web"

// Logger 는 printf 스타일 로깅에 쓰는 최소 인터페이스다. *slog.Logger 가 구현한다.
type Logger interface {
	Debug(args ...any)
	Info(args ...any)
	Warn(args ...any)
	Error(args ...any)
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// Fields 는 JSON 로그의 top-level 키가 된다.
type Fields map[string]any

// Log 는 전역 로거다. Init 전에는 info 레벨이다.
var Log Logger = NewLogger("info")

// Init 은 config.yaml 의 logging.level 로 전역 로거를 다시 만든다. 빈 값은 info 다.
func Init(level string) {
	level = strings.ToLower(strings.TrimSpace(level))
	if level == "" {
		level = "info"
	}
	Log = NewLogger(level)
}

// NewLogger 는 level 이상만 stdout 으로 내보내는 JSON 로거를 만든다.
// 출력 키는 datetime, level, message 와 Fields 뿐이다.
func NewLogger(level string) *slog.Logger {
	h := handler.NewConsoleHandler(enabledLevels(slog.LevelByName(level)))
	h.SetFormatter(slog.NewJSONFormatter(func(f *slog.JSONFormatter) {
		f.Fields = []string{slog.FieldKeyDatetime, slog.FieldKeyLevel, slog.FieldKeyMessage}
		f.Aliases = slog.StringMap{
			slog.FieldKeyDatetime: "datetime",
			slog.FieldKeyLevel:    "level",
			slog.FieldKeyMessage:  "message",
		}
		f.TimeFormat = "2006-01-02T15:04:05"
	}))
	return slog.NewWithHandlers(h)
}

// gookit/slog 는 숫자가 작을수록 심각한 레벨이다.
func enabledLevels(maxLevel slog.Level) slog.Levels {
	var levels slog.Levels
	for _, lv := range slog.AllLevels {
		if lv <= maxLevel {
			levels = append(levels, lv)
		}
	}
	return levels
}

func withServiceName(fields Fields) Fields {
	out := make(Fields, len(fields)+1)
	for k, v := range fields {
		out[k] = v
	}
	if _, ok := out["service_name"]; !ok {
		out["service_name"] = serviceName()
	}
	return out
}

func serviceName() string {
	if sn := os.Getenv("SERVICE_NAME"); sn != "" {
		return sn
	}
	return DefaultServiceName
}

func logWithFields(level slog.Level, msg string, fields Fields) {
	lg, ok := Log.(*slog.Logger)
	if !ok {
		switch level {
		case slog.DebugLevel:
			Log.Debug(msg)
		case slog.WarnLevel:
			Log.Warn(msg)
		case slog.ErrorLevel:
			Log.Error(msg)
		default:
			Log.Info(msg)
		}
		return
	}
	rec := lg.WithFields(slog.M(withServiceName(fields)))
	switch level {
	case slog.DebugLevel:
		rec.Debug(msg)
	case slog.WarnLevel:
		rec.Warn(msg)
	case slog.ErrorLevel:
		rec.Error(msg)
	default:
		rec.Info(msg)
	}
}

// InfoWithFields 는 request_id, span_id 같은 구조화 필드와 함께 info 로그를 남긴다.
func InfoWithFields(msg string, fields Fields) { logWithFields(slog.InfoLevel, msg, fields) }

func DebugWithFields(msg string, fields Fields) { logWithFields(slog.DebugLevel, msg, fields) }

func WarnWithFields(msg string, fields Fields) { logWithFields(slog.WarnLevel, msg, fields) }

func ErrorWithFields(msg string, fields Fields) { logWithFields(slog.ErrorLevel, msg, fields) }
