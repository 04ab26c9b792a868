package tui

import (
	"bytes"
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/mock"
	"github.com/MKhiriev/go-pass-vault/internal/service"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func testKey(t *testing.T) *crypto.Key {
	t.Helper()
	k, err := crypto.ImportKey(bytes.Repeat([]byte{0x42}, crypto.KeySize))
	require.NoError(t, err)
	return k
}

type testServices struct {
	keys  *mock.MockVaultKeyService
	items *mock.MockVaultItemService
	svc   *service.ClientServices
}

func newTestServices(ctrl *gomock.Controller) testServices {
	keys := mock.NewMockVaultKeyService(ctrl)
	items := mock.NewMockVaultItemService(ctrl)
	return testServices{
		keys:  keys,
		items: items,
		svc:   &service.ClientServices{Keys: keys, Items: items},
	}
}

// exec runs cmd synchronously and returns the message it produces.
func exec(t *testing.T, cmd tea.Cmd) tea.Msg {
	t.Helper()
	require.NotNil(t, cmd)
	return cmd()
}

var testCtx = context.Background()
