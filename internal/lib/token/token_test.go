package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaker_GenerateResolve(t *testing.T) {
	maker := NewMaker("test-secret", time.Hour)

	tok, err := maker.Generate("42")
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	clientID, ok := maker.Resolve(tok)
	assert.True(t, ok)
	assert.Equal(t, "42", clientID)
}

func TestMaker_Resolve(t *testing.T) {
	maker := NewMaker("test-secret", time.Hour)

	tests := []struct {
		name   string
		raw    string
		wantID string
		wantOK bool
	}{
		{
			name:   "legacy mock-префикс с идентификатором",
			raw:    "mock-jwt-token-42",
			wantID: "42",
			wantOK: true,
		},
		{
			name:   "legacy session-префикс с идентификатором",
			raw:    "legacy-session-abc123",
			wantID: "abc123",
			wantOK: true,
		},
		{
			name:   "голый mock-префикс без идентификатора",
			raw:    "mock-jwt-token-",
			wantOK: false,
		},
		{
			name:   "голый session-префикс без идентификатора",
			raw:    "legacy-session-",
			wantOK: false,
		},
		{
			name:   "пустая строка",
			raw:    "",
			wantOK: false,
		},
		{
			name:   "произвольный мусор",
			raw:    "not-a-token-at-all",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clientID, ok := maker.Resolve(tt.raw)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantID, clientID)
		})
	}
}

func TestMaker_Resolve_WrongSecret(t *testing.T) {
	maker := NewMaker("test-secret", time.Hour)
	other := NewMaker("other-secret", time.Hour)

	tok, err := maker.Generate("42")
	require.NoError(t, err)

	_, ok := other.Resolve(tok)
	assert.False(t, ok, "токен с чужой подписью должен отклоняться")
}

func TestMaker_Resolve_Expired(t *testing.T) {
	maker := NewMaker("test-secret", -time.Minute)

	tok, err := maker.Generate("42")
	require.NoError(t, err)

	_, ok := maker.Resolve(tok)
	assert.False(t, ok, "просроченный токен должен отклоняться")
}
