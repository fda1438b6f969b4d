package document

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dkrasnov/inkpress/internal/cryptox"
	"github.com/dkrasnov/inkpress/internal/unlock"
)

// envelopeWire flattens the envelope sum type into the persisted shape:
// a method tag plus only the fields that method needs. Byte fields are hex
// encoded.
type envelopeWire struct {
	Method           string   `json:"method"`
	Salt             string   `json:"salt,omitempty"`
	IV               string   `json:"iv,omitempty"`
	HandleDigest     string   `json:"handleDigest,omitempty"`
	UnlockTimestamp  int64    `json:"unlockTimestamp,omitempty"` // epoch seconds
	RequiredKeys     int      `json:"requiredKeys,omitempty"`
	RecoveryMaterial string   `json:"recoveryMaterial,omitempty"`
	KeyShares        []string `json:"keyShares,omitempty"`
}

// packageWire is the persisted/transmitted package shape. Content is
// base64 (encoding/json default for byte slices).
type packageWire struct {
	Version            string            `json:"version"`
	Timestamp          int64             `json:"timestamp"`
	Author             string            `json:"author"`
	Title              string            `json:"title"`
	Content            []byte            `json:"content"`
	ContentHash        string            `json:"contentHash"`
	Encrypted          bool              `json:"encrypted"`
	EncryptionEnvelope *envelopeWire     `json:"encryptionEnvelope,omitempty"`
	UnlockConditions   unlock.Conditions `json:"unlockConditions"`
	WordCount          int               `json:"wordCount"`
	CharacterCount     int               `json:"characterCount"`
	Metadata           Metadata          `json:"metadata"`
}

func (p *Package) MarshalJSON() ([]byte, error) {
	w := packageWire{
		Version:          p.Version,
		Timestamp:        p.Timestamp,
		Author:           p.Author,
		Title:            p.Title,
		Content:          p.Content,
		ContentHash:      p.ContentHash,
		Encrypted:        p.Encrypted,
		UnlockConditions: p.Unlock,
		WordCount:        p.WordCount,
		CharacterCount:   p.CharacterCount,
		Metadata:         p.Metadata,
	}

	if p.Encrypted {
		env, err := envelopeToWire(p.Envelope)
		if err != nil {
			return nil, err
		}
		w.EncryptionEnvelope = env
	}

	return json.Marshal(w)
}

func (p *Package) UnmarshalJSON(data []byte) error {
	var w packageWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	if w.Encrypted != (w.EncryptionEnvelope != nil) {
		return ErrMalformedPackage
	}

	p.Version = w.Version
	p.Timestamp = w.Timestamp
	p.Author = w.Author
	p.Title = w.Title
	p.Content = w.Content
	p.ContentHash = w.ContentHash
	p.Encrypted = w.Encrypted
	p.Unlock = w.UnlockConditions
	p.WordCount = w.WordCount
	p.CharacterCount = w.CharacterCount
	p.Metadata = w.Metadata
	p.Envelope = nil

	if w.EncryptionEnvelope != nil {
		env, err := envelopeFromWire(w.EncryptionEnvelope)
		if err != nil {
			return err
		}
		p.Envelope = env
	}

	return nil
}

// Encode serializes the package to its wire form.
func (p *Package) Encode() ([]byte, error) {
	return json.Marshal(p)
}

// Decode parses a package from its wire form.
func Decode(data []byte) (*Package, error) {
	var p Package
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func envelopeToWire(env cryptox.Envelope) (*envelopeWire, error) {
	switch e := env.(type) {
	case cryptox.PasswordEnvelope:
		return &envelopeWire{
			Method: string(cryptox.MethodPassword),
			Salt:   hex.EncodeToString(e.Salt),
			IV:     hex.EncodeToString(e.IV),
		}, nil
	case cryptox.IdentityEnvelope:
		return &envelopeWire{
			Method:       string(cryptox.MethodIdentity),
			HandleDigest: e.HandleDigest,
		}, nil
	case cryptox.TimelockEnvelope:
		return &envelopeWire{
			Method:          string(cryptox.MethodTimelock),
			UnlockTimestamp: e.UnlockTime.Unix(),
		}, nil
	case cryptox.MultipartyEnvelope:
		shares := make([]string, len(e.KeyShares))
		for i, s := range e.KeyShares {
			shares[i] = hex.EncodeToString(s)
		}
		return &envelopeWire{
			Method:           string(cryptox.MethodMultiparty),
			RequiredKeys:     e.RequiredKeys,
			RecoveryMaterial: hex.EncodeToString(e.RecoveryMaterial),
			KeyShares:        shares,
			IV:               hex.EncodeToString(e.IV),
		}, nil
	default:
		return nil, ErrUnknownEnvelope
	}
}

func envelopeFromWire(w *envelopeWire) (cryptox.Envelope, error) {
	switch cryptox.Method(w.Method) {
	case cryptox.MethodPassword:
		salt, err := hex.DecodeString(w.Salt)
		if err != nil {
			return nil, fmt.Errorf("decode salt: %w", err)
		}
		iv, err := hex.DecodeString(w.IV)
		if err != nil {
			return nil, fmt.Errorf("decode iv: %w", err)
		}
		return cryptox.PasswordEnvelope{Salt: salt, IV: iv}, nil

	case cryptox.MethodIdentity:
		return cryptox.IdentityEnvelope{HandleDigest: w.HandleDigest}, nil

	case cryptox.MethodTimelock:
		return cryptox.TimelockEnvelope{UnlockTime: time.Unix(w.UnlockTimestamp, 0).UTC()}, nil

	case cryptox.MethodMultiparty:
		recovery, err := hex.DecodeString(w.RecoveryMaterial)
		if err != nil {
			return nil, fmt.Errorf("decode recovery material: %w", err)
		}
		iv, err := hex.DecodeString(w.IV)
		if err != nil {
			return nil, fmt.Errorf("decode iv: %w", err)
		}
		shares := make([][]byte, len(w.KeyShares))
		for i, s := range w.KeyShares {
			if shares[i], err = hex.DecodeString(s); err != nil {
				return nil, fmt.Errorf("decode key share %d: %w", i, err)
			}
		}
		return cryptox.MultipartyEnvelope{
			RequiredKeys:     w.RequiredKeys,
			RecoveryMaterial: recovery,
			KeyShares:        shares,
			IV:               iv,
		}, nil

	default:
		return nil, ErrUnknownEnvelope
	}
}
