// Package config는 nativelib CLI의 설정 관리를 담당합니다.
// 설정 우선순위: 플래그 > 환경변수 > 설정파일 > 기본값
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config는 전체 애플리케이션 설정을 나타냅니다.
type Config struct {
	Loader  LoaderConfig  `mapstructure:"loader"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// LoaderConfig는 네이티브 라이브러리 로드 설정입니다.
type LoaderConfig struct {
	// Manifest는 라이브러리 항목을 기술한 YAML 매니페스트 경로입니다.
	Manifest string `mapstructure:"manifest"`
	// TargetDir는 추출 대상 디렉토리입니다. 비어 있으면 매니페스트 값 또는 현재 디렉토리를 사용합니다.
	TargetDir string `mapstructure:"target_dir"`
	// ExplicitLoad는 추출 후 OS 로더로 명시적으로 로드할지 여부입니다.
	// 설정 파일이나 환경변수에 값이 없으면 nil이며 매니페스트 값을 따릅니다.
	ExplicitLoad *bool `mapstructure:"-"`
}

// LoggingConfig는 로깅 설정입니다.
type LoggingConfig struct {
	// Level은 로그 레벨입니다 (debug, info, warn, error).
	Level string `mapstructure:"level"`
	// Format은 로그 포맷입니다 (json, text).
	Format string `mapstructure:"format"`
	// File은 로그 파일 경로입니다. 비어있으면 stderr로 출력합니다.
	File string `mapstructure:"file"`
}

// SetDefaults는 기본 설정값을 v에 정의합니다.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("loader.manifest", "nativelib.yaml")
	v.SetDefault("loader.target_dir", "")
	// loader.explicit_load는 기본값을 두지 않음 (미설정 여부를 구분)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")
	v.SetDefault("logging.file", "")
}

// Load는 전역 viper 인스턴스에서 설정을 로드합니다.
func Load() (*Config, error) {
	return LoadFrom(viper.GetViper())
}

// LoadFrom은 v에서 설정을 로드하고 Config 구조체를 반환합니다.
func LoadFrom(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("설정 파싱 실패: %w", err)
	}
	if v.IsSet("loader.explicit_load") {
		explicit := v.GetBool("loader.explicit_load")
		cfg.Loader.ExplicitLoad = &explicit
	}

	// 홈 디렉토리 경로 확장
	cfg.Loader.Manifest = expandPath(cfg.Loader.Manifest)
	cfg.Loader.TargetDir = expandPath(cfg.Loader.TargetDir)
	cfg.Logging.File = expandPath(cfg.Logging.File)

	return &cfg, nil
}

// Validate는 설정의 유효성을 검사합니다.
func (c *Config) Validate() error {
	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[c.Logging.Level] {
		return fmt.Errorf("유효하지 않은 로그 레벨: %s (debug, info, warn, error 중 하나)", c.Logging.Level)
	}

	validFormats := map[string]bool{
		"json": true,
		"text": true,
	}
	if !validFormats[c.Logging.Format] {
		return fmt.Errorf("유효하지 않은 로그 포맷: %s (json, text 중 하나)", c.Logging.Format)
	}

	if c.Loader.Manifest == "" {
		return fmt.Errorf("매니페스트 경로가 설정되지 않았습니다")
	}

	return nil
}

// expandPath는 ~를 홈 디렉토리로 확장합니다.
func expandPath(path string) string {
	if path == "" {
		return ""
	}
	if path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[1:])
	}
	return path
}

// DefaultConfigDir는 기본 설정 디렉토리 경로를 반환합니다.
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "nativelib")
}
