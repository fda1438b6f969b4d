// Package document assembles plaintext, its digest, an optional encryption
// envelope and an unlock policy into the one unit of record that is handed
// to the ledger. Packages are append-only: a content change produces a new
// package with a new hash and a fresh timestamp, never a mutation.
package document

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/dkrasnov/inkpress/internal/cryptox"
	"github.com/dkrasnov/inkpress/internal/unlock"
)

// SchemaVersion tags the package wire shape for forward compatibility.
const SchemaVersion = "2.0"

var (
	// ErrNotEncrypted is returned when a decrypt is requested on a plaintext
	// package.
	ErrNotEncrypted = errors.New("package is not encrypted")

	// ErrMalformedPackage rejects wire data whose fields contradict each
	// other (e.g. encrypted flag without an envelope).
	ErrMalformedPackage = errors.New("malformed document package")

	// ErrUnknownEnvelope rejects an envelope method this version does not
	// understand.
	ErrUnknownEnvelope = errors.New("unknown envelope method")

	// ErrHashMismatch is returned by VerifyContent when the decrypted
	// plaintext does not match the recorded content hash.
	ErrHashMismatch = errors.New("content hash mismatch")
)

// Metadata is optional descriptive data carried alongside the content.
type Metadata struct {
	Description string   `json:"description,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	Category    string   `json:"category,omitempty"`
}

// Package is the unit of record persisted to the ledger. Immutable once
// assembled. Content holds the ciphertext when Encrypted, otherwise the
// plaintext; ContentHash is always the digest of the plaintext, so integrity
// stays verifiable after decryption.
type Package struct {
	Version        string
	Timestamp      int64 // Unix milliseconds
	Author         string
	Title          string
	Content        []byte
	ContentHash    string
	Encrypted      bool
	Envelope       cryptox.Envelope // nil unless Encrypted
	Unlock         unlock.Conditions
	WordCount      int
	CharacterCount int
	Metadata       Metadata
}

// Assemble builds a package from plaintext. The unlock policy is validated
// first so an invalid schedule fails before any cipher work. A nil cipher
// produces an unencrypted package.
func Assemble(plaintext []byte, title, author string, cond unlock.Conditions, cipher cryptox.Cipher, now time.Time) (*Package, error) {
	if err := cond.Validate(now); err != nil {
		return nil, err
	}

	p := &Package{
		Version:        SchemaVersion,
		Timestamp:      now.UnixMilli(),
		Author:         author,
		Title:          title,
		Content:        plaintext,
		ContentHash:    HashContent(plaintext),
		Unlock:         cond,
		WordCount:      CountWords(plaintext),
		CharacterCount: utf8.RuneCount(plaintext),
	}

	if cipher != nil {
		ciphertext, env, err := cipher.Seal(plaintext)
		if err != nil {
			return nil, err
		}
		p.Content = ciphertext
		p.Envelope = env
		p.Encrypted = true
	}

	return p, nil
}

// Secrets carries the decrypt-side inputs for all envelope variants. Only
// the fields matching the package's envelope are consulted. Secrets are
// passed per call and never retained.
type Secrets struct {
	Password []byte
	Identity cryptox.Identity
	Shares   [][]byte
	Now      time.Time
}

// Decrypt reverses the package's envelope with the matching secret and
// returns the plaintext. The caller should follow up with VerifyContent.
func (p *Package) Decrypt(s Secrets) ([]byte, error) {
	if !p.Encrypted {
		return nil, ErrNotEncrypted
	}

	switch env := p.Envelope.(type) {
	case cryptox.PasswordEnvelope:
		return cryptox.OpenPassword(p.Content, env, s.Password)
	case cryptox.IdentityEnvelope:
		return cryptox.OpenIdentity(p.Content, env, s.Identity)
	case cryptox.TimelockEnvelope:
		return cryptox.OpenTimelock(p.Content, env, s.Now)
	case cryptox.MultipartyEnvelope:
		return cryptox.OpenMultiparty(p.Content, env, s.Shares)
	default:
		return nil, ErrUnknownEnvelope
	}
}

// VerifyContent re-hashes plaintext against the recorded content hash.
func (p *Package) VerifyContent(plaintext []byte) error {
	if HashContent(plaintext) != p.ContentHash {
		return ErrHashMismatch
	}
	return nil
}

// HashContent returns the hex SHA-256 digest of plaintext.
func HashContent(plaintext []byte) string {
	sum := sha256.Sum256(plaintext)
	return hex.EncodeToString(sum[:])
}

// CountWords counts whitespace-separated words in the plaintext.
func CountWords(plaintext []byte) int {
	return len(strings.Fields(string(plaintext)))
}
