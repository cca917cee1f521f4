// Package logger는 CLI용 구조화된 로깅을 설정합니다.
package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/insajin/nativelib/internal/config"
)

// Setup은 전역 로거를 초기화하고 라이브러리에 주입할 로거를 반환합니다.
// 명령 출력과 섞이지 않도록 기본 출력은 stderr입니다.
func Setup(cfg config.LoggingConfig) zerolog.Logger {
	return SetupWriter(cfg, nil)
}

// SetupWriter는 out이 nil이 아니면 out으로 출력하는 로거를 설정합니다.
func SetupWriter(cfg config.LoggingConfig, out io.Writer) zerolog.Logger {
	level := parseLevel(cfg.Level)
	zerolog.SetGlobalLevel(level)
	zerolog.TimeFieldFormat = time.RFC3339

	output := out
	if output == nil {
		output = os.Stderr
		if cfg.File != "" {
			file, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
			if err != nil {
				// 파일 열기 실패 시 stderr 사용
				log.Warn().Err(err).Str("file", cfg.File).Msg("로그 파일을 열 수 없어 stderr를 사용합니다")
			} else {
				output = file
			}
		}
	}

	if cfg.Format == "text" {
		output = zerolog.ConsoleWriter{
			Out:        output,
			TimeFormat: time.RFC3339,
		}
	}

	log.Logger = zerolog.New(output).Level(level).With().Timestamp().Logger()
	return log.Logger
}

// parseLevel은 문자열 레벨을 zerolog.Level로 변환합니다.
func parseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// WithComponent는 component 필드를 추가한 로거를 반환합니다.
func WithComponent(name string) zerolog.Logger {
	return log.With().Str("component", name).Logger()
}
