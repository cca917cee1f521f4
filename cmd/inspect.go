package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/insajin/nativelib/internal/config"
	"github.com/spf13/cobra"
)

// InspectInfo는 inspect 명령의 출력입니다.
type InspectInfo struct {
	Platform     string `json:"platform"`
	Architecture string `json:"architecture"`
	Name         string `json:"name"`
	Resource     string `json:"resource"`
	SHA256       string `json:"sha256,omitempty"`
	TargetDir    string `json:"target_dir"`
	ExplicitLoad bool   `json:"explicit_load"`
}

var (
	inspectManifest string
	inspectPlatform string
	inspectArch     string
	inspectJSON     bool
)

// inspectCmd는 추출 없이 선택될 라이브러리 항목을 보여줍니다.
var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "현재 환경에서 선택될 라이브러리를 출력합니다",
	Long: `매니페스트에서 현재 플랫폼과 아키텍처에 일치하는 항목을 찾아 출력합니다.
파일을 추출하거나 로드하지 않습니다.

--platform, --arch로 다른 환경을 가정해 확인할 수 있습니다.`,
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)

	inspectCmd.Flags().StringVarP(&inspectManifest, "manifest", "m", "", "매니페스트 파일 경로 (기본값: 설정의 loader.manifest)")
	inspectCmd.Flags().StringVar(&inspectPlatform, "platform", "", "가정할 플랫폼 (windows, linux, macos)")
	inspectCmd.Flags().StringVar(&inspectArch, "arch", "", "가정할 아키텍처 (x86, x64, arm, arm64 등)")
	inspectCmd.Flags().BoolVar(&inspectJSON, "json", false, "JSON 형식으로 출력")
}

// runInspect는 inspect 명령의 실행 로직입니다.
func runInspect(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("설정 로드 실패: %w", err)
	}

	mgr, err := newManager(cfg.Loader, managerFlags{
		manifest: inspectManifest,
		platform: inspectPlatform,
		arch:     inspectArch,
	})
	if err != nil {
		return err
	}

	item, err := mgr.FindItem()
	if err != nil {
		return err
	}

	info := InspectInfo{
		Platform:     item.Platform.String(),
		Architecture: item.Architecture.String(),
		Name:         item.File.Name,
		Resource:     item.File.Resource,
		SHA256:       item.File.SHA256,
		TargetDir:    mgr.TargetDir(),
		ExplicitLoad: mgr.ExplicitLoad(),
	}

	out := cmd.OutOrStdout()
	if inspectJSON {
		data, err := json.MarshalIndent(info, "", "  ")
		if err != nil {
			return fmt.Errorf("JSON 직렬화 실패: %w", err)
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	printTitle(out, "선택된 라이브러리")
	printField(out, "플랫폼", info.Platform)
	printField(out, "아키텍처", info.Architecture)
	printField(out, "파일 이름", info.Name)
	printField(out, "리소스", info.Resource)
	if info.SHA256 != "" {
		printField(out, "SHA-256", info.SHA256)
	}
	printField(out, "대상 디렉토리", info.TargetDir)
	printField(out, "명시적 로드", info.ExplicitLoad)
	return nil
}
