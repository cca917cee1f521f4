package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/insajin/nativelib/platform"
	"github.com/spf13/cobra"
)

// PlatformInfo는 platform 명령의 출력입니다.
type PlatformInfo struct {
	Platform            string `json:"platform"`
	OSArchitecture      string `json:"os_architecture"`
	ProcessArchitecture string `json:"process_architecture"`
	Architecture        string `json:"architecture"`
}

var platformJSON bool

// platformCmd는 현재 호스트의 플랫폼과 아키텍처를 출력합니다.
var platformCmd = &cobra.Command{
	Use:   "platform",
	Short: "현재 플랫폼과 아키텍처를 출력합니다",
	Long: `현재 호스트의 운영체제 계열과 아키텍처를 판별해 출력합니다.

라이브러리 매칭에는 OS 아키텍처가 x64이면 프로세스 아키텍처를,
그렇지 않으면 OS 아키텍처를 사용합니다.`,
	RunE: runPlatform,
}

func init() {
	rootCmd.AddCommand(platformCmd)

	platformCmd.Flags().BoolVar(&platformJSON, "json", false, "JSON 형식으로 출력")
}

// runPlatform은 platform 명령의 실행 로직입니다.
func runPlatform(cmd *cobra.Command, args []string) error {
	p, err := platform.Resolve()
	if err != nil {
		return fmt.Errorf("플랫폼 판별 실패: %w", err)
	}

	osArch := platform.OSArchitecture()
	procArch := platform.ProcessArchitecture()
	info := PlatformInfo{
		Platform:            p.String(),
		OSArchitecture:      osArch.String(),
		ProcessArchitecture: procArch.String(),
		Architecture:        platform.ResolveArchitecture(osArch, procArch).String(),
	}

	libLogger.Debug().Str("platform", info.Platform).Str("arch", info.Architecture).Msg("플랫폼 판별 완료")

	out := cmd.OutOrStdout()
	if platformJSON {
		data, err := json.MarshalIndent(info, "", "  ")
		if err != nil {
			return fmt.Errorf("JSON 직렬화 실패: %w", err)
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	printTitle(out, "플랫폼")
	printField(out, "플랫폼", info.Platform)
	printField(out, "OS 아키텍처", info.OSArchitecture)
	printField(out, "프로세스 아키텍처", info.ProcessArchitecture)
	printField(out, "매칭 아키텍처", info.Architecture)
	return nil
}
