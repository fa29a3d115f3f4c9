package logger

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
)

type Logger struct {
	sugar *zap.SugaredLogger
}

// New builds a production (JSON) logger for "prod"/"production" and a console one otherwise.
func New(mode string) (*Logger, error) {
	var cfg zap.Config
	switch strings.ToLower(mode) {
	case "prod", "production":
		cfg = zap.NewProductionConfig()
	default:
		cfg = zap.NewDevelopmentConfig()
	}
	z, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return &Logger{sugar: z.Sugar()}, nil
}

// Nop discards everything. Used by tests.
func Nop() *Logger {
	return &Logger{sugar: zap.NewNop().Sugar()}
}

func (l *Logger) Sync() {
	_ = l.sugar.Sync()
}

func (l *Logger) Debug(msg string, kv ...interface{}) { l.sugar.Debugw(msg, redact(kv)...) }
func (l *Logger) Info(msg string, kv ...interface{})  { l.sugar.Infow(msg, redact(kv)...) }
func (l *Logger) Warn(msg string, kv ...interface{})  { l.sugar.Warnw(msg, redact(kv)...) }
func (l *Logger) Error(msg string, kv ...interface{}) { l.sugar.Errorw(msg, redact(kv)...) }
func (l *Logger) Fatal(msg string, kv ...interface{}) { l.sugar.Fatalw(msg, redact(kv)...) }

func (l *Logger) With(kv ...interface{}) *Logger {
	return &Logger{sugar: l.sugar.With(redact(kv)...)}
}

func redact(kv []interface{}) []interface{} {
	if len(kv) == 0 {
		return kv
	}
	out := make([]interface{}, len(kv))
	copy(out, kv)
	for i := 0; i+1 < len(out); i += 2 {
		if secretKey(fmt.Sprint(out[i])) {
			out[i+1] = "[REDACTED]"
		}
	}
	return out
}

func secretKey(key string) bool {
	key = strings.ToLower(strings.TrimSpace(key))
	for _, s := range []string{"password", "token", "secret", "cookie", "authorization"} {
		if strings.Contains(key, s) {
			return true
		}
	}
	return false
}
