// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/models"
)

// unlockModel asks for the master password, derives the key and checks it by
// loading the vault. A password that decrypts none of the stored items is
// rejected and the derived key is thrown away.
type unlockModel struct {
	ctx       context.Context
	userID    string
	keys      service.VaultKeyService
	items     service.VaultItemService
	buildInfo models.AppBuildInfo

	input         textinput.Model
	submitting    bool
	errMsg        string
	showBuildInfo bool

	key    *crypto.Key
	result models.VaultLoadResult
	quit   bool
}

func newUnlockModel(ctx context.Context, userID string, services *service.ClientServices, info models.AppBuildInfo) unlockModel {
	input := textinput.New()
	input.Placeholder = "мастер-пароль"
	input.CharLimit = 256
	input.Width = 40
	input.EchoMode = textinput.EchoPassword
	input.EchoCharacter = '*'
	input.Focus()

	return unlockModel{
		ctx:       ctx,
		userID:    userID,
		keys:      services.Keys,
		items:     services.Items,
		buildInfo: info,
		input:     input,
	}
}

func (m unlockModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m unlockModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if res, ok := msg.(unlockDoneMsg); ok {
		m.submitting = false
		if res.err != nil {
			m.errMsg = humanizeError(res.err)
			m.input.SetValue("")
			return m, nil
		}
		m.key = res.key
		m.result = res.result
		return m, tea.Quit
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case keyMsg.String() == "ctrl+c":
			m.quit = true
			return m, tea.Quit
		case key.Matches(keyMsg, keys.info):
			m.showBuildInfo = !m.showBuildInfo
			return m, nil
		case m.showBuildInfo && key.Matches(keyMsg, keys.esc):
			m.showBuildInfo = false
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.submitting {
				return m, nil
			}
			password := m.input.Value()
			if strings.TrimSpace(password) == "" {
				m.errMsg = humanizeError(service.ErrEmptyMasterPassword)
				return m, nil
			}
			m.errMsg = ""
			m.submitting = true
			return m, m.cmdUnlock(password)
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m unlockModel) View() string {
	if m.showBuildInfo {
		return renderBuildInfoWindow(m.buildInfo)
	}

	var b strings.Builder
	b.WriteString("Пользователь │ ")
	b.WriteString(m.userID)
	b.WriteString("\n")
	b.WriteString("Пароль       │ [")
	b.WriteString(m.input.View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\n[Разблокировка...]\n")
	} else {
		b.WriteString("\n[Разблокировать]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Ошибка: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("РАЗБЛОКИРОВКА ХРАНИЛИЩА", strings.TrimRight(b.String(), "\n"), "enter: подтвердить │ ctrl+v: о программе")
}

func (m unlockModel) cmdUnlock(password string) tea.Cmd {
	ctx, userID, keySvc, items := m.ctx, m.userID, m.keys, m.items

	return func() tea.Msg {
		k, err := keySvc.Unlock(ctx, userID, password)
		if err != nil {
			return unlockDoneMsg{err: err}
		}

		res, err := items.LoadAll(ctx, userID, k)
		if err == nil && res.AllFailed() {
			err = errWrongMasterPassword
		}
		if err != nil {
			_ = keySvc.Lock(ctx, userID, k)
			return unlockDoneMsg{err: err}
		}

		return unlockDoneMsg{key: k, result: res}
	}
}
