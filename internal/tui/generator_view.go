package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-pass-vault/internal/generator"
)

// generatorModel is the password generator screen. It can be opened from the
// list or from the item form; in the latter case enter hands the value back.
type generatorModel struct {
	opts       generator.PasswordOptions
	passphrase bool
	words      int

	value  string
	errMsg string
}

func newGeneratorModel() generatorModel {
	m := generatorModel{
		opts:  generator.DefaultPasswordOptions(),
		words: generator.DefaultWords,
	}
	m.regenerate()
	return m
}

func (m *generatorModel) regenerate() {
	var (
		v   string
		err error
	)
	if m.passphrase {
		v, err = generator.Passphrase(m.words, "-")
	} else {
		v, err = generator.Password(m.opts)
	}
	if err != nil {
		m.value = ""
		m.errMsg = humanizeError(err)
		return
	}
	m.value = v
	m.errMsg = ""
}

// update handles generator hotkeys. It reports whether the key was consumed.
func (m generatorModel) update(msg tea.KeyMsg) (generatorModel, bool) {
	switch msg.String() {
	case "+", "=":
		if m.passphrase {
			m.words = min(m.words+1, generator.MaxWords)
		} else {
			m.opts.Length = min(m.opts.Length+1, generator.MaxLength)
		}
	case "-":
		if m.passphrase {
			m.words = max(m.words-1, generator.MinWords)
		} else {
			m.opts.Length = max(m.opts.Length-1, generator.MinLength)
		}
	case "1":
		m.opts.Uppercase = !m.opts.Uppercase
	case "2":
		m.opts.Lowercase = !m.opts.Lowercase
	case "3":
		m.opts.Digits = !m.opts.Digits
	case "4":
		m.opts.Symbols = !m.opts.Symbols
	case "x":
		m.opts.ExcludeSimilar = !m.opts.ExcludeSimilar
	case "p":
		m.passphrase = !m.passphrase
	case "r":
	default:
		return m, false
	}

	m.regenerate()
	return m, true
}

func (m generatorModel) view(fromForm bool) string {
	var b strings.Builder

	if m.passphrase {
		fmt.Fprintf(&b, "Режим:     фраза (diceware)\n")
		fmt.Fprintf(&b, "Слов:      %d\n", m.words)
	} else {
		fmt.Fprintf(&b, "Режим:     пароль\n")
		fmt.Fprintf(&b, "Длина:     %d\n", m.opts.Length)
		fmt.Fprintf(&b, "[%s] 1 A-Z   [%s] 2 a-z   [%s] 3 0-9   [%s] 4 !@#\n",
			check(m.opts.Uppercase), check(m.opts.Lowercase), check(m.opts.Digits), check(m.opts.Symbols))
		fmt.Fprintf(&b, "[%s] x без похожих символов (I l O 0 1)\n", check(m.opts.ExcludeSimilar))
	}

	b.WriteString("\n")
	if m.errMsg != "" {
		b.WriteString(errorStyle.Render("Ошибка: " + m.errMsg))
	} else {
		b.WriteString(selectedStyle.Render(m.value))
	}

	hot := "+/-: длина │ p: пароль/фраза │ r: ещё │ c: копировать │ esc: назад"
	if fromForm {
		hot = "+/-: длина │ p: пароль/фраза │ r: ещё │ enter: использовать │ esc: назад"
	}
	return renderPage("ГЕНЕРАТОР ПАРОЛЕЙ", b.String(), hot)
}

func check(on bool) string {
	if on {
		return "x"
	}
	return " "
}
