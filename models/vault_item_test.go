package models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVaultItemPlaintext_Matches(t *testing.T) {
	item := VaultItemPlaintext{Title: "GitHub", Username: "octocat", URL: "https://github.com"}

	tests := []struct {
		name  string
		query string
		want  bool
	}{
		{name: "empty query", query: "", want: true},
		{name: "whitespace query", query: "   ", want: true},
		{name: "title case-insensitive", query: "gItHuB", want: true},
		{name: "username", query: "OCTO", want: true},
		{name: "url", query: "https://", want: true},
		{name: "no match", query: "gitlab", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, item.Matches(tt.query))
		})
	}
}

func TestOptionalString(t *testing.T) {
	assert.Nil(t, OptionalString(""))
	got := OptionalString("x")
	if assert.NotNil(t, got) {
		assert.Equal(t, "x", *got)
	}
	assert.Equal(t, "", StringValue(nil))
	assert.Equal(t, "x", StringValue(got))
}

func TestVaultLoadResult(t *testing.T) {
	empty := VaultLoadResult{}
	assert.False(t, empty.AllFailed())
	assert.Equal(t, 0, empty.Total())

	allFailed := VaultLoadResult{Failed: []FailedItem{{ID: "a", Err: errors.New("x")}, {ID: "b"}}}
	assert.True(t, allFailed.AllFailed())
	assert.Equal(t, []string{"a", "b"}, allFailed.FailedIDs())

	partial := VaultLoadResult{
		Items:  []VaultItemPlaintext{{ID: "c"}},
		Failed: []FailedItem{{ID: "a"}},
	}
	assert.False(t, partial.AllFailed())
	assert.Equal(t, 2, partial.Total())
}
