package cryptox

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ownIdentity = Identity{
	Handle:           "alice",
	PaymentAddress:   "alice@pay.example",
	CredentialPrefix: "tok-prefix-0123456789abcdef",
}

// TestRoundTrip checks decrypt(encrypt(p)) == p for all four methods.
func TestRoundTrip(t *testing.T) {
	unlockAt := time.Now().Add(-time.Minute) // already unlockable
	plaintexts := [][]byte{
		[]byte("hello ledger"),
		[]byte(""),
		[]byte("unicode: привет мир ✒️"),
		make([]byte, 64*1024),
	}

	for _, plaintext := range plaintexts {
		t.Run("password", func(t *testing.T) {
			ct, env, err := PasswordCipher{Password: []byte("s3cret")}.Seal(plaintext)
			require.NoError(t, err)

			got, err := OpenPassword(ct, env.(PasswordEnvelope), []byte("s3cret"))
			require.NoError(t, err)
			assert.Equal(t, plaintext, got)
		})

		t.Run("identity", func(t *testing.T) {
			ct, env, err := IdentityCipher{Identity: ownIdentity}.Seal(plaintext)
			require.NoError(t, err)

			got, err := OpenIdentity(ct, env.(IdentityEnvelope), ownIdentity)
			require.NoError(t, err)
			assert.Equal(t, plaintext, got)
		})

		t.Run("timelock", func(t *testing.T) {
			ct, env, err := TimelockCipher{UnlockTime: unlockAt}.Seal(plaintext)
			require.NoError(t, err)

			got, err := OpenTimelock(ct, env.(TimelockEnvelope), time.Now())
			require.NoError(t, err)
			assert.Equal(t, plaintext, got)
		})

		t.Run("multiparty", func(t *testing.T) {
			ct, env, err := MultipartyCipher{RequiredKeys: 3}.Seal(plaintext)
			require.NoError(t, err)

			menv := env.(MultipartyEnvelope)
			got, err := OpenMultiparty(ct, menv, menv.KeyShares)
			require.NoError(t, err)
			assert.Equal(t, plaintext, got)
		})
	}
}

func TestOpenPassword_WrongPassword(t *testing.T) {
	ct, env, err := PasswordCipher{Password: []byte("correct")}.Seal([]byte("doc"))
	require.NoError(t, err)

	_, err = OpenPassword(ct, env.(PasswordEnvelope), []byte("wrong"))
	assert.ErrorIs(t, err, ErrInvalidPassword)
}

func TestOpenPassword_CorruptedCiphertext(t *testing.T) {
	ct, env, err := PasswordCipher{Password: []byte("pw")}.Seal([]byte("doc"))
	require.NoError(t, err)

	ct[0] ^= 0xff
	_, err = OpenPassword(ct, env.(PasswordEnvelope), []byte("pw"))
	assert.ErrorIs(t, err, ErrInvalidPassword)
}

func TestPasswordCipher_FreshSaltAndNonce(t *testing.T) {
	c := PasswordCipher{Password: []byte("pw")}
	_, env1, err := c.Seal([]byte("doc"))
	require.NoError(t, err)
	_, env2, err := c.Seal([]byte("doc"))
	require.NoError(t, err)

	assert.NotEqual(t, env1.(PasswordEnvelope).Salt, env2.(PasswordEnvelope).Salt)
	assert.NotEqual(t, env1.(PasswordEnvelope).IV, env2.(PasswordEnvelope).IV)
}

func TestOpenIdentity_Mismatch(t *testing.T) {
	ct, env, err := IdentityCipher{Identity: ownIdentity}.Seal([]byte("doc"))
	require.NoError(t, err)

	other := ownIdentity
	other.Handle = "mallory"

	_, err = OpenIdentity(ct, env.(IdentityEnvelope), other)
	assert.ErrorIs(t, err, ErrIdentityMismatch)
}

func TestOpenIdentity_SameHandleDifferentCredential(t *testing.T) {
	ct, env, err := IdentityCipher{Identity: ownIdentity}.Seal([]byte("doc"))
	require.NoError(t, err)

	// Handle digest matches but the derived key does not: caught by the
	// authentication tag, not the digest check.
	other := ownIdentity
	other.CredentialPrefix = "different-token-prefix"

	_, err = OpenIdentity(ct, env.(IdentityEnvelope), other)
	assert.ErrorIs(t, err, ErrIdentityMismatch)
}

func TestOpenTimelock_BeforeUnlock(t *testing.T) {
	unlockAt := time.Now().Add(time.Hour)
	ct, env, err := TimelockCipher{UnlockTime: unlockAt}.Seal([]byte("doc"))
	require.NoError(t, err)

	_, err = OpenTimelock(ct, env.(TimelockEnvelope), unlockAt.Add(-time.Second))
	require.ErrorIs(t, err, ErrStillLocked)

	var locked *StillLockedError
	require.ErrorAs(t, err, &locked)
	assert.Greater(t, locked.Remaining, time.Duration(0))
}

func TestOpenTimelock_AtBoundary(t *testing.T) {
	unlockAt := time.Now().Add(time.Hour).Truncate(time.Second)
	ct, env, err := TimelockCipher{UnlockTime: unlockAt}.Seal([]byte("doc"))
	require.NoError(t, err)

	// now == unlockTime is unlocked, not locked.
	got, err := OpenTimelock(ct, env.(TimelockEnvelope), unlockAt)
	require.NoError(t, err)
	assert.Equal(t, []byte("doc"), got)
}

func TestOpenMultiparty_WrongShareCount(t *testing.T) {
	ct, env, err := MultipartyCipher{RequiredKeys: 3}.Seal([]byte("doc"))
	require.NoError(t, err)
	menv := env.(MultipartyEnvelope)

	_, err = OpenMultiparty(ct, menv, menv.KeyShares[:2])
	require.ErrorIs(t, err, ErrInsufficientKeys)

	var insufficient *InsufficientKeysError
	require.ErrorAs(t, err, &insufficient)
	assert.Equal(t, 2, insufficient.Have)
	assert.Equal(t, 3, insufficient.Need)
}

func TestOpenMultiparty_WrongShares(t *testing.T) {
	ct, env, err := MultipartyCipher{RequiredKeys: 2}.Seal([]byte("doc"))
	require.NoError(t, err)
	menv := env.(MultipartyEnvelope)

	bogus := [][]byte{make([]byte, keySize), make([]byte, keySize)}
	_, err = OpenMultiparty(ct, menv, bogus)
	assert.Error(t, err)
}

func TestMultipartyCipher_TooFewShares(t *testing.T) {
	_, _, err := MultipartyCipher{RequiredKeys: 1}.Seal([]byte("doc"))
	assert.ErrorIs(t, err, ErrTooFewShares)
}

func TestMultipartyCipher_ShareCountMatchesEnvelope(t *testing.T) {
	_, env, err := MultipartyCipher{RequiredKeys: 4}.Seal([]byte("doc"))
	require.NoError(t, err)

	menv := env.(MultipartyEnvelope)
	assert.Equal(t, 4, menv.RequiredKeys)
	assert.Len(t, menv.KeyShares, 4)
	assert.Len(t, menv.RecoveryMaterial, keySize)
}
