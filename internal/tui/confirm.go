package tui

type confirmModel struct {
	title string
}

func (m confirmModel) View() string {
	content := "Удалить \"" + m.title + "\"?\n\n"
	content += "y да    n нет"
	return overlayBoxStyle.Render(content)
}
