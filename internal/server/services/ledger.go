package services

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/dkrasnov/inkpress/internal/netx"
	sc "github.com/dkrasnov/inkpress/internal/server/config"
	"github.com/dkrasnov/inkpress/internal/server/models"
	"github.com/dkrasnov/inkpress/internal/server/repositories/repomanager"
)

// uploadToPresignedURL is a seam for testing the archive upload path.
var uploadToPresignedURL = netx.UploadToPresignedURL

// LedgerService accepts document packages for broadcast, serves them back by
// transaction id, and tracks unlock payments. Transaction ids are content
// addresses: the hex SHA-256 of the broadcast payload, so re-broadcasting the
// same bytes always lands on the same id.
type LedgerService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	archive     *ArchiveService
	config      *sc.Config
}

func NewLedgerService(db *sql.DB, m repomanager.RepositoryManager, archive *ArchiveService, cfg *sc.Config) *LedgerService {
	return &LedgerService{
		db:          db,
		repomanager: m,
		archive:     archive,
		config:      cfg,
	}
}

// TransactionID computes the content address of a payload.
func TransactionID(payload []byte) string {
	sum := sha256.Sum256(payload)
	return hex.EncodeToString(sum[:])
}

// Broadcast stores the payload and returns its transaction id. Payloads over
// the configured inline limit are pushed to object storage and only their
// storage key is recorded.
func (s *LedgerService) Broadcast(ctx context.Context, userID string, payload []byte) (string, error) {
	if len(payload) == 0 {
		return "", fmt.Errorf("empty payload")
	}

	txID := TransactionID(payload)
	doc := &models.Document{TxID: txID, UserID: userID, ByteSize: int64(len(payload))}

	if int64(len(payload)) > s.config.InlinePayloadLimit {
		key, url, err := s.archive.GetPresignedPutUrl(ctx)
		if err != nil {
			return "", fmt.Errorf("error presigning upload: %w", err)
		}
		if err := uploadToPresignedURL(ctx, url, payload); err != nil {
			return "", fmt.Errorf("error archiving payload: %w", err)
		}
		doc.StorageKey = key
	} else {
		doc.Payload = payload
	}

	repo := s.repomanager.Documents(s.db)
	if err := repo.Create(ctx, doc); err != nil {
		return "", fmt.Errorf("error storing document: %v", err)
	}

	return txID, nil
}

// Retrieve returns the stored payload for a transaction id, or a presigned
// download URL when the payload was archived to object storage. Exactly one
// of the two return values is populated.
func (s *LedgerService) Retrieve(ctx context.Context, txID string) ([]byte, string, error) {
	repo := s.repomanager.Documents(s.db)
	doc, err := repo.GetByTxID(ctx, txID)
	if err != nil {
		return nil, "", err
	}

	if doc.StorageKey != "" {
		url, err := s.archive.GetPresignedGetUrl(ctx, doc.StorageKey)
		if err != nil {
			return nil, "", fmt.Errorf("error presigning download: %w", err)
		}
		return nil, url, nil
	}

	return doc.Payload, "", nil
}

// RecordPayment settles an unlock payment against an existing document.
func (s *LedgerService) RecordPayment(ctx context.Context, txID string, amountUSD float64) error {
	if amountUSD <= 0 {
		return fmt.Errorf("invalid payment amount: %v", amountUSD)
	}

	docRepo := s.repomanager.Documents(s.db)
	if _, err := docRepo.GetByTxID(ctx, txID); err != nil {
		return err
	}

	repo := s.repomanager.Payments(s.db)
	if err := repo.Create(ctx, &models.Payment{TxID: txID, AmountUSD: amountUSD}); err != nil {
		return fmt.Errorf("error recording payment: %v", err)
	}
	return nil
}

// HasPaid reports whether any unlock payment has been settled against the
// document. Unknown transaction ids report false rather than an error.
func (s *LedgerService) HasPaid(ctx context.Context, txID string) (bool, error) {
	repo := s.repomanager.Payments(s.db)
	total, err := repo.TotalPaid(ctx, txID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	return total > 0, nil
}
