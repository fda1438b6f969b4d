package document

import (
	"testing"
	"time"

	"github.com/dkrasnov/inkpress/internal/cryptox"
	"github.com/dkrasnov/inkpress/internal/unlock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func TestAssemble_Plain(t *testing.T) {
	plaintext := []byte("the quick brown fox jumps over the lazy dog")

	p, err := Assemble(plaintext, "Fox", "alice", unlock.Immediate(), nil, now)
	require.NoError(t, err)

	assert.Equal(t, SchemaVersion, p.Version)
	assert.Equal(t, now.UnixMilli(), p.Timestamp)
	assert.Equal(t, "alice", p.Author)
	assert.Equal(t, plaintext, p.Content)
	assert.False(t, p.Encrypted)
	assert.Nil(t, p.Envelope)
	assert.Equal(t, 9, p.WordCount)
	assert.Equal(t, len(plaintext), p.CharacterCount)
	assert.NoError(t, p.VerifyContent(plaintext))
}

func TestAssemble_Encrypted(t *testing.T) {
	plaintext := []byte("secret draft")
	cipher := cryptox.PasswordCipher{Password: []byte("pw")}

	p, err := Assemble(plaintext, "Draft", "alice", unlock.Immediate(), cipher, now)
	require.NoError(t, err)

	assert.True(t, p.Encrypted)
	assert.NotEqual(t, plaintext, p.Content)
	// Hash is of the plaintext, computed before encryption.
	assert.Equal(t, HashContent(plaintext), p.ContentHash)
	// Counts come from the plaintext, never the ciphertext.
	assert.Equal(t, 2, p.WordCount)

	got, err := p.Decrypt(Secrets{Password: []byte("pw")})
	require.NoError(t, err)
	assert.Equal(t, plaintext, got)
	assert.NoError(t, p.VerifyContent(got))
}

func TestAssemble_RejectsPastSchedule(t *testing.T) {
	cond := unlock.Conditions{Method: unlock.MethodTimed, UnlockTime: now.Add(-time.Second)}

	// Fail fast: schedule is checked before any cipher work.
	_, err := Assemble([]byte("doc"), "t", "a", cond, failingCipher{t: t}, now)
	assert.ErrorIs(t, err, unlock.ErrInvalidSchedule)
}

// failingCipher fails the test if the assembler reaches for it.
type failingCipher struct{ t *testing.T }

func (failingCipher) Method() cryptox.Method { return cryptox.MethodPassword }
func (c failingCipher) Seal([]byte) ([]byte, cryptox.Envelope, error) {
	c.t.Fatal("cipher must not run for an invalid schedule")
	return nil, nil, nil
}

func TestDecrypt_NotEncrypted(t *testing.T) {
	p, err := Assemble([]byte("open doc"), "t", "a", unlock.Immediate(), nil, now)
	require.NoError(t, err)

	_, err = p.Decrypt(Secrets{})
	assert.ErrorIs(t, err, ErrNotEncrypted)
}

func TestDecrypt_Timelock(t *testing.T) {
	unlockAt := now.Add(time.Hour)
	cond := unlock.Conditions{Method: unlock.MethodTimed, UnlockTime: unlockAt}

	p, err := Assemble([]byte("embargoed"), "t", "a", cond, cryptox.TimelockCipher{UnlockTime: unlockAt}, now)
	require.NoError(t, err)

	_, err = p.Decrypt(Secrets{Now: now})
	assert.ErrorIs(t, err, cryptox.ErrStillLocked)

	got, err := p.Decrypt(Secrets{Now: unlockAt})
	require.NoError(t, err)
	assert.Equal(t, []byte("embargoed"), got)
}

func TestVerifyContent_Mismatch(t *testing.T) {
	p, err := Assemble([]byte("original"), "t", "a", unlock.Immediate(), nil, now)
	require.NoError(t, err)

	assert.ErrorIs(t, p.VerifyContent([]byte("tampered")), ErrHashMismatch)
}

func TestCountWords(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"   ", 0},
		{"one", 1},
		{"  spaced   out\ttext\n", 3},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CountWords([]byte(tt.in)), "%q", tt.in)
	}
}
