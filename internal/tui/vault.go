// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/models"
)

type vaultMode int

const (
	modeList vaultMode = iota
	modeDetail
	modeForm
	modeConfirmDelete
	modeGenerator
)

const statusTTL = 3 * time.Second

// vaultModel is the unlocked vault: item list with search, detail view,
// add/edit form, delete confirmation and the password generator.
type vaultModel struct {
	ctx    context.Context
	userID string
	key    *crypto.Key
	keys   service.VaultKeyService
	items  service.VaultItemService
	copy   func(string) error

	all     []models.VaultItemPlaintext
	failed  []models.FailedItem
	visible []models.VaultItemPlaintext
	idx     int

	search    textinput.Model
	searching bool

	mode    vaultMode
	reveal  bool
	form    itemForm
	gen     generatorModel
	genForm bool

	status string
	errMsg string

	locked bool
}

func newVaultModel(ctx context.Context, userID string, k *crypto.Key, services *service.ClientServices, initial models.VaultLoadResult) vaultModel {
	search := textinput.New()
	search.Placeholder = "поиск по названию, логину, URL"
	search.Width = 40

	m := vaultModel{
		ctx:    ctx,
		userID: userID,
		key:    k,
		keys:   services.Keys,
		items:  services.Items,
		copy:   clipboard.WriteAll,
		search: search,
	}
	m.applyResult(initial)
	return m
}

func (m vaultModel) Init() tea.Cmd {
	return nil
}

func (m *vaultModel) applyResult(res models.VaultLoadResult) {
	m.all = res.Items
	m.failed = res.Failed
	m.refilter()
}

func (m *vaultModel) refilter() {
	m.visible = m.items.Filter(m.all, m.search.Value())
	if m.idx >= len(m.visible) {
		m.idx = len(m.visible) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m vaultModel) current() (models.VaultItemPlaintext, bool) {
	if m.idx < 0 || m.idx >= len(m.visible) {
		return models.VaultItemPlaintext{}, false
	}
	return m.visible[m.idx], true
}

func (m vaultModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case vaultLoadedMsg:
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.applyResult(msg.result)
		return m, nil
	case itemSavedMsg:
		m.form.saving = false
		if msg.err != nil {
			m.form.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.mode = modeList
		if msg.created {
			return m.withStatus("Запись добавлена"), m.cmdReload()
		}
		return m.withStatus("Запись обновлена"), m.cmdReload()
	case itemDeletedMsg:
		m.mode = modeList
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		return m.withStatus("Запись удалена"), m.cmdReload()
	case lockDoneMsg:
		m.locked = true
		return m, tea.Quit
	case clearStatusMsg:
		m.status = ""
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.forward(msg)
	}
	if keyMsg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.mode {
	case modeForm:
		return m.updateForm(keyMsg)
	case modeGenerator:
		return m.updateGenerator(keyMsg)
	case modeConfirmDelete:
		return m.updateConfirm(keyMsg)
	case modeDetail:
		return m.updateDetail(keyMsg)
	}

	if m.searching {
		return m.updateSearch(keyMsg)
	}
	return m.updateList(keyMsg)
}

// forward passes non-key messages (cursor blink) to the focused widget.
func (m vaultModel) forward(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch {
	case m.mode == modeForm:
		m.form, cmd = m.form.updateFocused(msg)
	case m.searching:
		m.search, cmd = m.search.Update(msg)
	}
	return m, cmd
}

func (m vaultModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.errMsg = ""

	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(m.visible)-1 {
			m.idx++
		}
	case key.Matches(msg, keys.search):
		m.searching = true
		return m, m.search.Focus()
	case key.Matches(msg, keys.esc):
		if m.search.Value() != "" {
			m.search.SetValue("")
			m.refilter()
		}
	case key.Matches(msg, keys.enter):
		if _, ok := m.current(); ok {
			m.mode = modeDetail
			m.reveal = false
		}
	case key.Matches(msg, keys.newItem):
		m.form = newItemForm(models.VaultItemPlaintext{})
		m.mode = modeForm
		return m, textinput.Blink
	case key.Matches(msg, keys.edit):
		if item, ok := m.current(); ok {
			m.form = newItemForm(item)
			m.mode = modeForm
			return m, textinput.Blink
		}
	case key.Matches(msg, keys.delete):
		if _, ok := m.current(); ok {
			m.mode = modeConfirmDelete
		}
	case key.Matches(msg, keys.copy):
		return m.copyCurrent(false)
	case key.Matches(msg, keys.copyUser):
		return m.copyCurrent(true)
	case key.Matches(msg, keys.generator):
		m.gen = newGeneratorModel()
		m.genForm = false
		m.mode = modeGenerator
	case key.Matches(msg, keys.lock):
		return m, m.cmdLock()
	}
	return m, nil
}

func (m vaultModel) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.enter):
		m.searching = false
		m.search.Blur()
		return m, nil
	case key.Matches(msg, keys.esc):
		m.searching = false
		m.search.Blur()
		m.search.SetValue("")
		m.refilter()
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.refilter()
	return m, cmd
}

func (m vaultModel) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	item, ok := m.current()
	if !ok {
		m.mode = modeList
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.esc):
		m.mode = modeList
		m.reveal = false
	case key.Matches(msg, keys.reveal):
		m.reveal = !m.reveal
	case key.Matches(msg, keys.edit):
		m.form = newItemForm(item)
		m.mode = modeForm
		return m, textinput.Blink
	case key.Matches(msg, keys.delete):
		m.mode = modeConfirmDelete
	case key.Matches(msg, keys.copy):
		return m.copyCurrent(false)
	case key.Matches(msg, keys.copyUser):
		return m.copyCurrent(true)
	}
	return m, nil
}

func (m vaultModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.yes):
		if item, ok := m.current(); ok {
			return m, m.cmdDelete(item.ID)
		}
		m.mode = modeList
	case key.Matches(msg, keys.no):
		m.mode = modeList
	}
	return m, nil
}

func (m vaultModel) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.form.saving {
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.esc):
		m.mode = modeList
		return m, nil
	case key.Matches(msg, keys.tab):
		m.form.move(1)
		return m, nil
	case key.Matches(msg, keys.backtab):
		m.form.move(-1)
		return m, nil
	case key.Matches(msg, keys.generate):
		m.gen = newGeneratorModel()
		m.genForm = true
		m.mode = modeGenerator
		return m, nil
	case msg.String() == "ctrl+r":
		m.form.toggleReveal()
		return m, nil
	case key.Matches(msg, keys.save):
		m.form.errMsg = ""
		m.form.saving = true
		return m, m.cmdSave(m.form.item())
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.updateFocused(msg)
	return m, cmd
}

func (m vaultModel) updateGenerator(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	back := modeList
	if m.genForm {
		back = modeForm
	}

	switch {
	case key.Matches(msg, keys.esc):
		m.mode = back
		return m, nil
	case m.genForm && key.Matches(msg, keys.enter):
		if m.gen.value != "" {
			m.form.setPassword(m.gen.value)
		}
		m.mode = modeForm
		return m, nil
	case !m.genForm && key.Matches(msg, keys.copy):
		if err := m.copy(m.gen.value); err != nil {
			m.errMsg = fmt.Sprintf("Ошибка копирования: %v", err)
			return m, nil
		}
		return m.withStatus("Скопировано"), clearStatusAfter()
	}

	m.gen, _ = m.gen.update(msg)
	return m, nil
}

func (m vaultModel) copyCurrent(username bool) (tea.Model, tea.Cmd) {
	item, ok := m.current()
	if !ok {
		return m, nil
	}

	v := item.Password
	if username {
		v = item.Username
	}
	if v == "" {
		return m.withStatus("Нечего копировать"), clearStatusAfter()
	}
	if err := m.copy(v); err != nil {
		m.errMsg = fmt.Sprintf("Ошибка копирования: %v", err)
		return m, nil
	}
	return m.withStatus("Скопировано"), clearStatusAfter()
}

func (m vaultModel) withStatus(s string) vaultModel {
	m.status = s
	m.errMsg = ""
	return m
}

func clearStatusAfter() tea.Cmd {
	return tea.Tick(statusTTL, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

func (m vaultModel) cmdReload() tea.Cmd {
	ctx, userID, k, items := m.ctx, m.userID, m.key, m.items
	return func() tea.Msg {
		res, err := items.LoadAll(ctx, userID, k)
		return vaultLoadedMsg{result: res, err: err}
	}
}

func (m vaultModel) cmdSave(item models.VaultItemPlaintext) tea.Cmd {
	ctx, userID, k, items := m.ctx, m.userID, m.key, m.items
	return func() tea.Msg {
		if item.ID == "" {
			saved, err := items.Create(ctx, userID, k, item)
			return itemSavedMsg{item: saved, created: true, err: err}
		}
		saved, err := items.Update(ctx, userID, k, item)
		return itemSavedMsg{item: saved, err: err}
	}
}

func (m vaultModel) cmdDelete(id string) tea.Cmd {
	ctx, userID, items := m.ctx, m.userID, m.items
	return func() tea.Msg {
		return itemDeletedMsg{id: id, err: items.Delete(ctx, userID, id)}
	}
}

func (m vaultModel) cmdLock() tea.Cmd {
	ctx, userID, k, keySvc := m.ctx, m.userID, m.key, m.keys
	return func() tea.Msg {
		return lockDoneMsg{err: keySvc.Lock(ctx, userID, k)}
	}
}

func (m vaultModel) View() string {
	switch m.mode {
	case modeForm:
		return m.form.view()
	case modeGenerator:
		return m.gen.view(m.genForm)
	case modeDetail:
		return m.detailView()
	case modeConfirmDelete:
		item, _ := m.current()
		return m.listView() + "\n\n" + confirmModel{title: item.Title}.View()
	}
	return m.listView()
}

func (m vaultModel) listView() string {
	var b strings.Builder

	if m.searching || m.search.Value() != "" {
		b.WriteString("Поиск: ")
		b.WriteString(m.search.View())
		b.WriteString("\n\n")
	}

	if len(m.visible) == 0 {
		if len(m.all) == 0 {
			b.WriteString("Нет записей\n")
		} else {
			b.WriteString("Ничего не найдено\n")
		}
	}
	for i, item := range m.visible {
		line := fmt.Sprintf("%-28s %s", fitText(item.Title, 28), fitText(item.Username, 24))
		if i == m.idx {
			b.WriteString(selectedStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "\nЗаписей: %d", len(m.all))
	if len(m.failed) > 0 {
		fmt.Fprintf(&b, " │ не расшифровано: %d", len(m.failed))
	}
	b.WriteString("\n")

	m.writeStatus(&b)

	return renderPage("ХРАНИЛИЩЕ", strings.TrimRight(b.String(), "\n"),
		"enter: открыть │ /: поиск │ n: новая │ e: изменить │ d: удалить │ c: копир. пароль │ g: генератор │ L: заблокировать │ q: выход")
}

func (m vaultModel) detailView() string {
	item, _ := m.current()

	password := mask(item.Password)
	if m.reveal {
		password = item.Password
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Название: %s\n", item.Title)
	fmt.Fprintf(&b, "Логин:    %s\n", valueOrDash(item.Username))
	fmt.Fprintf(&b, "Пароль:   %s\n", password)
	fmt.Fprintf(&b, "URL:      %s\n", valueOrDash(item.URL))
	fmt.Fprintf(&b, "Заметки:  %s\n", valueOrDash(item.Notes))
	fmt.Fprintf(&b, "Изменено: %s\n", item.UpdatedAt.Local().Format("2006-01-02 15:04"))

	m.writeStatus(&b)

	return renderPage(strings.ToUpper(item.Title), strings.TrimRight(b.String(), "\n"),
		"space: показать │ c: копир. пароль │ u: копир. логин │ e: изменить │ d: удалить │ esc: назад")
}

func (m vaultModel) writeStatus(b *strings.Builder) {
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Ошибка: " + m.errMsg))
		b.WriteString("\n")
	}
}
