package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-pass-vault/models"
)

const (
	fieldTitle = iota
	fieldUsername
	fieldPassword
	fieldURL
	fieldNotes
	fieldCount
)

var formLabels = [fieldCount]string{
	"Название ",
	"Логин    ",
	"Пароль   ",
	"URL      ",
	"Заметки  ",
}

// itemForm edits one vault item. Notes use a textarea, every other field a
// single-line input.
type itemForm struct {
	id     string
	inputs [fieldNotes]textinput.Model
	notes  textarea.Model
	focus  int
	reveal bool
	errMsg string
	saving bool
}

func newItemForm(item models.VaultItemPlaintext) itemForm {
	f := itemForm{id: item.ID}

	placeholders := [fieldNotes]string{"Название", "Логин (можно пусто)", "Пароль", "https://..."}
	values := [fieldNotes]string{item.Title, item.Username, item.Password, item.URL}
	for i := range f.inputs {
		in := textinput.New()
		in.Placeholder = placeholders[i]
		in.Width = 40
		in.CharLimit = 512
		in.SetValue(values[i])
		f.inputs[i] = in
	}
	f.inputs[fieldPassword].EchoMode = textinput.EchoPassword
	f.inputs[fieldPassword].EchoCharacter = '*'

	f.notes = textarea.New()
	f.notes.Placeholder = "Заметки (можно пусто)"
	f.notes.SetWidth(40)
	f.notes.SetHeight(4)
	f.notes.ShowLineNumbers = false
	f.notes.SetValue(item.Notes)

	f.inputs[fieldTitle].Focus()
	return f
}

func (f itemForm) editing() bool {
	return f.id != ""
}

func (f itemForm) item() models.VaultItemPlaintext {
	return models.VaultItemPlaintext{
		ID:       f.id,
		Title:    strings.TrimSpace(f.inputs[fieldTitle].Value()),
		Username: strings.TrimSpace(f.inputs[fieldUsername].Value()),
		Password: f.inputs[fieldPassword].Value(),
		URL:      strings.TrimSpace(f.inputs[fieldURL].Value()),
		Notes:    f.notes.Value(),
	}
}

func (f *itemForm) setPassword(v string) {
	f.inputs[fieldPassword].SetValue(v)
}

func (f *itemForm) toggleReveal() {
	f.reveal = !f.reveal
	if f.reveal {
		f.inputs[fieldPassword].EchoMode = textinput.EchoNormal
	} else {
		f.inputs[fieldPassword].EchoMode = textinput.EchoPassword
	}
}

func (f *itemForm) move(delta int) {
	f.blur()
	f.focus = (f.focus + delta + fieldCount) % fieldCount
	if f.focus == fieldNotes {
		f.notes.Focus()
		return
	}
	f.inputs[f.focus].Focus()
}

func (f *itemForm) blur() {
	if f.focus == fieldNotes {
		f.notes.Blur()
		return
	}
	f.inputs[f.focus].Blur()
}

func (f itemForm) updateFocused(msg tea.Msg) (itemForm, tea.Cmd) {
	var cmd tea.Cmd
	if f.focus == fieldNotes {
		f.notes, cmd = f.notes.Update(msg)
		return f, cmd
	}
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return f, cmd
}

func (f itemForm) view() string {
	var b strings.Builder
	for i := range f.inputs {
		b.WriteString(formLabels[i])
		b.WriteString("│ [")
		b.WriteString(f.inputs[i].View())
		b.WriteString("]\n")
	}
	b.WriteString(formLabels[fieldNotes])
	b.WriteString("│\n")
	b.WriteString(f.notes.View())
	b.WriteString("\n")

	if f.saving {
		b.WriteString("\n[Сохранение...]\n")
	}
	if f.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Ошибка: " + f.errMsg))
		b.WriteString("\n")
	}

	title := "НОВАЯ ЗАПИСЬ"
	if f.editing() {
		title = "ИЗМЕНЕНИЕ ЗАПИСИ"
	}
	return renderPage(title, strings.TrimRight(b.String(), "\n"),
		"tab: след. поле │ ctrl+g: сгенерировать │ ctrl+r: показать пароль │ ctrl+s: сохранить │ esc: отмена")
}
