// Package cmd는 nativelib CLI의 명령어를 정의합니다.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/insajin/nativelib/internal/config"
	"github.com/insajin/nativelib/internal/logger"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	// 전역 플래그
	cfgFile string
	verbose bool

	// 버전 정보 (main에서 주입)
	appVersion   string
	appCommit    string
	appBuildDate string

	// libLogger는 Manager에 주입되는 로거입니다.
	libLogger = zerolog.Nop()
)

// rootCmd는 CLI의 루트 명령어입니다.
var rootCmd = &cobra.Command{
	Use:   "nativelib",
	Short: "네이티브 라이브러리 추출 및 로드 도구",
	Long: `nativelib는 현재 운영체제와 아키텍처를 판별하고
매니페스트에 등록된 네이티브 라이브러리 중 일치하는 바이너리를
대상 디렉토리에 추출한 뒤 필요하면 OS 로더로 로드합니다.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// 로거 초기화
		return initLogger()
	},
}

// Execute는 루트 명령어를 실행합니다.
func Execute() error {
	return rootCmd.Execute()
}

// SetVersionInfo는 버전 정보를 설정합니다.
func SetVersionInfo(version, commit, buildDate string) {
	appVersion = version
	appCommit = commit
	appBuildDate = buildDate
}

// GetVersionInfo는 버전 정보를 반환합니다.
func GetVersionInfo() (version, commit, buildDate string) {
	return appVersion, appCommit, appBuildDate
}

func init() {
	cobra.OnInitialize(initConfig)

	// 전역 플래그 정의
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"설정 파일 경로 (기본값: ~/.config/nativelib/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"상세 로그 출력 (debug 레벨)")
}

// initConfig는 설정 파일을 초기화합니다.
// 설정 우선순위: 플래그 > 환경변수 > 설정파일 > 기본값
func initConfig() {
	if cfgFile != "" {
		// 명시적 설정 파일 사용
		viper.SetConfigFile(cfgFile)
	} else if dir := config.DefaultConfigDir(); dir != "" {
		// 기본 설정 경로: ~/.config/nativelib/config.yaml
		viper.AddConfigPath(dir)
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	// 환경변수 자동 바인딩 (NATIVELIB_ 접두사, loader.target_dir -> NATIVELIB_LOADER_TARGET_DIR)
	viper.SetEnvPrefix("NATIVELIB")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	config.SetDefaults(viper.GetViper())

	if err := readInConfig(viper.GetViper()); err != nil {
		fmt.Fprintf(os.Stderr, "설정 파일 읽기 실패: %v\n", err)
	}
}

// readInConfig는 설정 파일을 읽습니다.
// 기본 경로에 설정 파일이 없는 경우는 오류가 아닙니다.
func readInConfig(v *viper.Viper) error {
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// 설정 파일이 있지만 읽기 실패한 경우만 오류
			return err
		}
	}
	return nil
}

// initLogger는 로거를 초기화합니다.
func initLogger() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("설정 로드 실패: %w", err)
	}

	// verbose 플래그가 설정되면 debug 레벨로 오버라이드
	if verbose {
		cfg.Logging.Level = "debug"
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("설정 검증 실패: %w", err)
	}

	logger.Setup(cfg.Logging)
	libLogger = logger.WithComponent("nativelib")
	return nil
}
