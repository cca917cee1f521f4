package cmd

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// 터미널 출력 스타일
var (
	// titleStyle은 명령 결과 제목 스타일입니다.
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#4C1D95")).
			Padding(0, 1)

	// labelStyle은 키-값 출력의 키 스타일입니다.
	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A1A1AA")).
			Width(18)

	// valueStyle은 키-값 출력의 값 스타일입니다.
	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF"))

	// okStyle은 성공 상태 스타일입니다.
	okStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#14B8A6")).
		Bold(true)

	// failStyle은 실패 상태 스타일입니다.
	failStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#E11D48")).
			Bold(true)
)

// printTitle은 제목 한 줄을 출력합니다.
func printTitle(w io.Writer, title string) {
	fmt.Fprintln(w, titleStyle.Render(title))
}

// printField는 정렬된 키-값 한 줄을 출력합니다.
func printField(w io.Writer, label string, value any) {
	fmt.Fprintln(w, labelStyle.Render(label)+valueStyle.Render(fmt.Sprint(value)))
}
