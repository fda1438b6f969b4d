package services

import (
	"context"
	"fmt"
	"time"

	"github.com/dkrasnov/inkpress/internal/client/client"
	"github.com/dkrasnov/inkpress/internal/client/models"
	"github.com/dkrasnov/inkpress/internal/client/repositories/outbox"
	"github.com/dkrasnov/inkpress/internal/client/repositories/published"
	"github.com/dkrasnov/inkpress/internal/common"
	"github.com/dkrasnov/inkpress/internal/cryptox"
	"github.com/dkrasnov/inkpress/internal/document"
	"github.com/dkrasnov/inkpress/internal/identity"
	"github.com/dkrasnov/inkpress/internal/pricing"
	"github.com/dkrasnov/inkpress/internal/unlock"
	"github.com/google/uuid"
)

// Protection selects the encryption applied to a document before it is
// assembled. A zero Method publishes plaintext.
type Protection struct {
	Method       cryptox.Method
	Password     []byte
	UnlockTime   time.Time
	RequiredKeys int
}

// PublishResult reports a successful broadcast. KeyShares is populated only
// for multiparty protection; the author is responsible for distributing the
// shares, they are not stored locally.
type PublishResult struct {
	TxID      string
	Quote     pricing.Quote
	KeyShares [][]byte
}

// RetryReport summarizes one outbox drain pass.
type RetryReport struct {
	Sent   int
	Failed int
}

type PublishService interface {
	Quote(plaintext []byte, encrypted bool) pricing.Quote
	Publish(ctx context.Context, title string, plaintext []byte, cond unlock.Conditions, prot Protection, confirmed bool) (*PublishResult, error)
	RetryPending(ctx context.Context) (*RetryReport, error)
	ListPending(ctx context.Context) ([]*models.Draft, error)
	ListPublished(ctx context.Context) ([]*models.PublishedWork, error)
}

type publishService struct {
	client        client.Client
	outboxRepo    outbox.Repository
	publishedRepo published.Repository
	rates         pricing.Rates
	budgetUSD     float64
}

// NewPublishService constructs a PublishService. budgetUSD <= 0 falls back
// to the default ceiling in rates.
func NewPublishService(client client.Client, outboxRepo outbox.Repository, publishedRepo published.Repository, rates pricing.Rates, budgetUSD float64) PublishService {
	return &publishService{
		client:        client,
		outboxRepo:    outboxRepo,
		publishedRepo: publishedRepo,
		rates:         rates,
		budgetUSD:     budgetUSD,
	}
}

// Quote prices a document at its current size without publishing anything.
func (s *publishService) Quote(plaintext []byte, encrypted bool) pricing.Quote {
	return s.rates.Quote(document.CountWords(plaintext), encrypted, s.budgetUSD)
}

// buildCipher maps a Protection to the concrete cipher. Identity protection
// derives the key from the logged-in session.
func (s *publishService) buildCipher(prot Protection) (cryptox.Cipher, error) {
	switch prot.Method {
	case "":
		return nil, nil
	case cryptox.MethodPassword:
		return cryptox.PasswordCipher{Password: prot.Password}, nil
	case cryptox.MethodIdentity:
		provider, err := identity.NewSessionProvider(s.client.AccessToken())
		if err != nil {
			return nil, err
		}
		id, err := identity.CipherIdentity(provider)
		if err != nil {
			return nil, err
		}
		return cryptox.IdentityCipher{Identity: id}, nil
	case cryptox.MethodTimelock:
		return cryptox.TimelockCipher{UnlockTime: prot.UnlockTime}, nil
	case cryptox.MethodMultiparty:
		return cryptox.MultipartyCipher{RequiredKeys: prot.RequiredKeys}, nil
	default:
		return nil, fmt.Errorf("unknown protection method: %s", prot.Method)
	}
}

// author resolves the publishing handle from the active session.
func (s *publishService) author() (string, error) {
	provider, err := identity.NewSessionProvider(s.client.AccessToken())
	if err != nil {
		return "", err
	}
	return provider.Handle()
}

// Publish quotes, assembles and broadcasts a document in one pass.
//
// When the quote exceeds the spending ceiling and the caller has not
// confirmed, it stops with common.ErrBudgetExceeded before any cipher work;
// the caller re-invokes with confirmed=true to proceed. A failed broadcast
// parks the assembled package in the outbox and surfaces
// common.ErrBroadcastFailure; the package is never re-broadcast within the
// same call.
func (s *publishService) Publish(ctx context.Context, title string, plaintext []byte, cond unlock.Conditions, prot Protection, confirmed bool) (*PublishResult, error) {
	encrypted := prot.Method != ""

	quote := s.rates.Quote(document.CountWords(plaintext), encrypted, s.budgetUSD)
	if quote.Budget.RequiresIncrease && !confirmed {
		return &PublishResult{Quote: quote}, common.ErrBudgetExceeded
	}

	author, err := s.author()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve author: %w", err)
	}

	cipher, err := s.buildCipher(prot)
	if err != nil {
		return nil, err
	}

	pkg, err := document.Assemble(plaintext, title, author, cond, cipher, time.Now())
	if err != nil {
		return nil, fmt.Errorf("failed to assemble package: %w", err)
	}

	payload, err := pkg.Encode()
	if err != nil {
		return nil, fmt.Errorf("failed to encode package: %w", err)
	}

	txID, err := s.client.Broadcast(ctx, payload)
	if err != nil {
		draft := &models.Draft{ID: uuid.NewString(), Title: title, Payload: payload, Attempts: 1}
		if saveErr := s.outboxRepo.Add(ctx, draft); saveErr != nil {
			return nil, fmt.Errorf("%w: %v (outbox save failed: %v)", common.ErrBroadcastFailure, err, saveErr)
		}
		return nil, fmt.Errorf("%w: %v", common.ErrBroadcastFailure, err)
	}

	work := &models.PublishedWork{
		TxID:      txID,
		Title:     title,
		WordCount: int64(pkg.WordCount),
		TotalUSD:  quote.TotalUSD,
		Encrypted: pkg.Encrypted,
	}
	if err := s.publishedRepo.Add(ctx, work); err != nil {
		return nil, fmt.Errorf("failed to record published work: %w", err)
	}

	result := &PublishResult{TxID: txID, Quote: quote}
	if env, ok := pkg.Envelope.(cryptox.MultipartyEnvelope); ok {
		result.KeyShares = env.KeyShares
	}
	return result, nil
}

// RetryPending drains the outbox: every parked package is re-broadcast
// once. Successes move to the published catalog; failures stay parked with
// a bumped attempt counter.
func (s *publishService) RetryPending(ctx context.Context) (*RetryReport, error) {
	drafts, err := s.outboxRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read outbox: %w", err)
	}

	report := &RetryReport{}
	for _, draft := range drafts {
		txID, err := s.client.Broadcast(ctx, draft.Payload)
		if err != nil {
			report.Failed++
			if bumpErr := s.outboxRepo.IncrementAttempts(ctx, draft.ID); bumpErr != nil {
				return report, bumpErr
			}
			continue
		}

		work := &models.PublishedWork{TxID: txID, Title: draft.Title}
		if pkg, decErr := document.Decode(draft.Payload); decErr == nil {
			work.WordCount = int64(pkg.WordCount)
			work.Encrypted = pkg.Encrypted
			work.TotalUSD = s.rates.Quote(pkg.WordCount, pkg.Encrypted, s.budgetUSD).TotalUSD
		}
		if err := s.publishedRepo.Add(ctx, work); err != nil {
			return report, fmt.Errorf("failed to record published work: %w", err)
		}
		if err := s.outboxRepo.DeleteByID(ctx, draft.ID); err != nil {
			return report, err
		}
		report.Sent++
	}
	return report, nil
}

func (s *publishService) ListPending(ctx context.Context) ([]*models.Draft, error) {
	return s.outboxRepo.GetAll(ctx)
}

func (s *publishService) ListPublished(ctx context.Context) ([]*models.PublishedWork, error) {
	return s.publishedRepo.GetAll(ctx)
}
