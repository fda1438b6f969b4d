package services

import (
	"context"
	"fmt"
	"time"

	"github.com/dkrasnov/inkpress/internal/client/client"
	"github.com/dkrasnov/inkpress/internal/cryptox"
	"github.com/dkrasnov/inkpress/internal/document"
	"github.com/dkrasnov/inkpress/internal/identity"
	"github.com/dkrasnov/inkpress/internal/unlock"
)

// Secrets carries the reader-side inputs for the encrypted variants. Only
// the fields matching the package are consulted.
type Secrets struct {
	Password []byte
	Shares   [][]byte
}

// ReadResult is the outcome of one read attempt. While Status.State is
// Locked, Plaintext is nil and Status describes what would unlock the
// content.
type ReadResult struct {
	Package   *document.Package
	Status    unlock.Status
	Plaintext []byte
}

type ReadService interface {
	Read(ctx context.Context, txID string, secrets Secrets) (*ReadResult, error)
	Status(ctx context.Context, txID string) (*ReadResult, error)
	Pay(ctx context.Context, txID string, amountUSD float64) error
}

type readService struct {
	client client.Client
}

func NewReadService(client client.Client) ReadService {
	return &readService{client: client}
}

// Read retrieves a package, evaluates its unlock policy against the ledger's
// payment oracle, and decrypts when both the policy and the envelope allow
// it. Integrity of the recovered plaintext is always verified against the
// recorded content hash.
func (s *readService) Read(ctx context.Context, txID string, secrets Secrets) (*ReadResult, error) {
	result, err := s.evaluate(ctx, txID, len(secrets.Shares))
	if err != nil {
		return nil, err
	}
	if result.Status.State == unlock.Locked {
		return result, nil
	}

	pkg := result.Package
	plaintext := pkg.Content
	if pkg.Encrypted {
		plaintext, err = pkg.Decrypt(s.decryptSecrets(pkg, secrets, time.Now()))
		if err != nil {
			return nil, err
		}
	}

	if err := pkg.VerifyContent(plaintext); err != nil {
		return nil, err
	}

	result.Plaintext = plaintext
	return result, nil
}

// Status evaluates a package's unlock policy without attempting decryption.
// Plaintext in the result is always nil.
func (s *readService) Status(ctx context.Context, txID string) (*ReadResult, error) {
	return s.evaluate(ctx, txID, 0)
}

func (s *readService) evaluate(ctx context.Context, txID string, providedKeys int) (*ReadResult, error) {
	payload, err := s.client.Retrieve(ctx, txID)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve package: %w", err)
	}

	pkg, err := document.Decode(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to decode package: %w", err)
	}

	in := unlock.Input{Now: time.Now(), ProvidedKeys: providedKeys}
	if pkg.Unlock.Price() > 0 {
		paid, err := s.client.HasPaid(ctx, txID)
		if err != nil {
			return nil, fmt.Errorf("failed to check payment: %w", err)
		}
		in.PaymentReceived = paid
	}

	return &ReadResult{Package: pkg, Status: unlock.Evaluate(pkg.Unlock, in)}, nil
}

// decryptSecrets adapts reader inputs to the package's envelope. Identity
// envelopes draw on the active session.
func (s *readService) decryptSecrets(pkg *document.Package, secrets Secrets, now time.Time) document.Secrets {
	out := document.Secrets{
		Password: secrets.Password,
		Shares:   secrets.Shares,
		Now:      now,
	}
	if _, ok := pkg.Envelope.(cryptox.IdentityEnvelope); ok {
		if provider, err := identity.NewSessionProvider(s.client.AccessToken()); err == nil {
			if id, err := identity.CipherIdentity(provider); err == nil {
				out.Identity = id
			}
		}
	}
	return out
}

// Pay settles the unlock price for a package on the ledger.
func (s *readService) Pay(ctx context.Context, txID string, amountUSD float64) error {
	return s.client.RecordPayment(ctx, txID, amountUSD)
}
