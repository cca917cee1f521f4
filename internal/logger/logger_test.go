package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/insajin/nativelib/internal/config"
)

// TestParseLevel은 로그 레벨 문자열 변환을 테스트합니다.
func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected zerolog.Level
	}{
		{input: "debug", expected: zerolog.DebugLevel},
		{input: "INFO", expected: zerolog.InfoLevel},
		{input: "warn", expected: zerolog.WarnLevel},
		{input: "warning", expected: zerolog.WarnLevel},
		{input: "error", expected: zerolog.ErrorLevel},
		{input: "unknown", expected: zerolog.InfoLevel},
		{input: "", expected: zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := parseLevel(tt.input); got != tt.expected {
				t.Errorf("parseLevel(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

// TestSetupWriter_JSON은 JSON 포맷과 레벨 필터링을 테스트합니다.
func TestSetupWriter_JSON(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.TraceLevel)

	var buf bytes.Buffer
	l := SetupWriter(config.LoggingConfig{Level: "warn", Format: "json"}, &buf)

	l.Info().Msg("숨겨져야 함")
	l.Warn().Str("path", "/tmp/libfoo.so").Msg("경고")

	out := buf.String()
	if strings.Contains(out, "숨겨져야 함") {
		t.Errorf("info 로그가 출력되었습니다: %s", out)
	}
	if !strings.Contains(out, `"level":"warn"`) || !strings.Contains(out, `"path":"/tmp/libfoo.so"`) {
		t.Errorf("warn 로그가 JSON으로 출력되지 않았습니다: %s", out)
	}
}

// TestSetupWriter_Text는 콘솔 포맷 출력을 테스트합니다.
func TestSetupWriter_Text(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.TraceLevel)

	var buf bytes.Buffer
	l := SetupWriter(config.LoggingConfig{Level: "debug", Format: "text"}, &buf)

	l.Debug().Msg("디버그 메시지")

	out := buf.String()
	if !strings.Contains(out, "디버그 메시지") {
		t.Errorf("텍스트 로그가 출력되지 않았습니다: %s", out)
	}
	if strings.HasPrefix(strings.TrimSpace(out), "{") {
		t.Errorf("텍스트 포맷인데 JSON이 출력되었습니다: %s", out)
	}
}
