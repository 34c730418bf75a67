package logger

import (
	"context"
	"io"
	"net"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// base - логгер процесса; до Init ничего не пишет
var base = zerolog.Nop()

// Init настраивает логгер сервиса с выводом JSON в stdout
func Init(serviceName, level string) {
	base = build(os.Stdout, serviceName, level)
}

// InitWithWriter - то же, что Init, но в произвольный writer (тесты)
func InitWithWriter(serviceName, level string, w io.Writer) {
	base = build(w, serviceName, level)
}

// InitLogstash пишет одновременно в stdout и в TCP input Logstash
func InitLogstash(addr, serviceName, level string) error {
	conn, err := net.DialTimeout("tcp", addr, 5*time.Second)
	if err != nil {
		return err
	}

	base = build(zerolog.MultiLevelWriter(os.Stdout, conn), serviceName, level)
	return nil
}

func build(w io.Writer, serviceName, level string) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339Nano

	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	return zerolog.New(w).Level(lvl).With().
		Timestamp().
		Str("service", serviceName).
		Logger()
}

func Info() *zerolog.Event  { return base.Info() }
func Warn() *zerolog.Event  { return base.Warn() }
func Error() *zerolog.Event { return base.Error() }
func Debug() *zerolog.Event { return base.Debug() }
func Fatal() *zerolog.Event { return base.Fatal() }

// Get отдает логгер процесса сторонним библиотекам (cron и т.п.)
func Get() *zerolog.Logger {
	return &base
}

// Ctx возвращает логгер запроса, положенный GinLoggerMiddleware,
// или логгер процесса, если контекст пришел не из HTTP запроса
func Ctx(ctx context.Context) *zerolog.Logger {
	if l := zerolog.Ctx(ctx); l.GetLevel() != zerolog.Disabled {
		return l
	}
	return &base
}
