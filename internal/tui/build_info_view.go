package tui

import (
	"strings"

	"github.com/MKhiriev/go-pass-vault/models"
)

func renderBuildInfoWindow(info models.AppBuildInfo) string {
	var b strings.Builder

	b.WriteString("Название приложения: GoPassVault\n")
	b.WriteString("Версия: ")
	b.WriteString(info.BuildVersion())
	b.WriteString("\nДата: ")
	b.WriteString(info.BuildDate())
	b.WriteString("\nКоммит: ")
	b.WriteString(info.BuildCommit())

	return renderPage("ИНФОРМАЦИЯ О ПРОГРАММЕ", b.String(), "esc: назад")
}
