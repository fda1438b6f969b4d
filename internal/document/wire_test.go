package document

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/dkrasnov/inkpress/internal/cryptox"
	"github.com/dkrasnov/inkpress/internal/unlock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWire_PlainPackage(t *testing.T) {
	p, err := Assemble([]byte("public text"), "Title", "alice", unlock.Immediate(), nil, now)
	require.NoError(t, err)
	p.Metadata = Metadata{Description: "a note", Tags: []string{"essay"}, Category: "writing"}

	data, err := p.Encode()
	require.NoError(t, err)

	// Wire shape: no envelope key on an unencrypted package.
	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.NotContains(t, raw, "encryptionEnvelope")
	assert.Equal(t, SchemaVersion, raw["version"])

	got, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, p, got)
}

func TestWire_PasswordEnvelope(t *testing.T) {
	cipher := cryptox.PasswordCipher{Password: []byte("pw")}
	p, err := Assemble([]byte("private text"), "Title", "alice", unlock.Immediate(), cipher, now)
	require.NoError(t, err)

	data, err := p.Encode()
	require.NoError(t, err)

	got, err := Decode(data)
	require.NoError(t, err)
	require.True(t, got.Encrypted)

	// The decoded package still decrypts.
	plaintext, err := got.Decrypt(Secrets{Password: []byte("pw")})
	require.NoError(t, err)
	assert.Equal(t, []byte("private text"), plaintext)
}

func TestWire_TimelockEnvelopeKeepsSeconds(t *testing.T) {
	unlockAt := now.Add(90 * time.Minute)
	cond := unlock.Conditions{Method: unlock.MethodTimed, UnlockTime: unlockAt}
	p, err := Assemble([]byte("embargo"), "T", "a", cond, cryptox.TimelockCipher{UnlockTime: unlockAt}, now)
	require.NoError(t, err)

	data, err := p.Encode()
	require.NoError(t, err)
	got, err := Decode(data)
	require.NoError(t, err)

	env := got.Envelope.(cryptox.TimelockEnvelope)
	assert.Equal(t, unlockAt.Unix(), env.UnlockTime.Unix())

	plaintext, err := got.Decrypt(Secrets{Now: unlockAt})
	require.NoError(t, err)
	assert.Equal(t, []byte("embargo"), plaintext)
}

func TestWire_MultipartyEnvelope(t *testing.T) {
	p, err := Assemble([]byte("shared"), "T", "a", unlock.Conditions{
		Method: unlock.MethodMultiparty, RequiredKeys: 3,
	}, cryptox.MultipartyCipher{RequiredKeys: 3}, now)
	require.NoError(t, err)

	data, err := p.Encode()
	require.NoError(t, err)
	got, err := Decode(data)
	require.NoError(t, err)

	env := got.Envelope.(cryptox.MultipartyEnvelope)
	require.Len(t, env.KeyShares, 3)

	plaintext, err := got.Decrypt(Secrets{Shares: env.KeyShares})
	require.NoError(t, err)
	assert.Equal(t, []byte("shared"), plaintext)
}

func TestDecode_Malformed(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want error
	}{
		{
			name: "encrypted without envelope",
			in:   `{"version":"2.0","encrypted":true}`,
			want: ErrMalformedPackage,
		},
		{
			name: "envelope without encrypted flag",
			in:   `{"version":"2.0","encrypted":false,"encryptionEnvelope":{"method":"password"}}`,
			want: ErrMalformedPackage,
		},
		{
			name: "unknown method",
			in:   `{"version":"2.0","encrypted":true,"encryptionEnvelope":{"method":"rot13"}}`,
			want: ErrUnknownEnvelope,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.in))
			assert.ErrorIs(t, err, tt.want)
		})
	}
}
