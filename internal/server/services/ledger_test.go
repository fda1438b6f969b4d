package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"testing"

	"github.com/dkrasnov/inkpress/internal/common"
	"github.com/dkrasnov/inkpress/internal/server/config"
	"github.com/dkrasnov/inkpress/internal/server/models"
)

func newLedgerService(t *testing.T, rm *fakeRepoManager, inlineLimit int64) *LedgerService {
	t.Helper()
	db, _ := newSQLMockDB(t)
	t.Cleanup(func() { db.Close() })

	cfg := &config.Config{InlinePayloadLimit: inlineLimit}
	return NewLedgerService(db, rm, NewArchiveService(cfg), cfg)
}

func TestTransactionID_ContentAddressed(t *testing.T) {
	payload := []byte("some package bytes")
	sum := sha256.Sum256(payload)

	if got := TransactionID(payload); got != hex.EncodeToString(sum[:]) {
		t.Fatalf("unexpected txid: %s", got)
	}
	if TransactionID(payload) != TransactionID(payload) {
		t.Fatal("txid must be deterministic")
	}
	if TransactionID([]byte("other")) == TransactionID(payload) {
		t.Fatal("different payloads must not collide")
	}
}

func TestBroadcast_InlinePayload(t *testing.T) {
	rm := &fakeRepoManager{d: &fakeDocsRepo{}}
	svc := newLedgerService(t, rm, 1024)

	payload := []byte("small payload")
	txID, err := svc.Broadcast(context.Background(), "u-1", payload)
	if err != nil {
		t.Fatalf("Broadcast error: %v", err)
	}
	if txID != TransactionID(payload) {
		t.Fatalf("unexpected txid: %s", txID)
	}

	doc := rm.d.created
	if doc == nil {
		t.Fatal("expected document to be stored")
	}
	if string(doc.Payload) != "small payload" || doc.StorageKey != "" {
		t.Fatalf("expected inline storage, got %+v", doc)
	}
	if doc.ByteSize != int64(len(payload)) {
		t.Fatalf("unexpected byte size: %d", doc.ByteSize)
	}
}

func TestBroadcast_EmptyPayload(t *testing.T) {
	rm := &fakeRepoManager{d: &fakeDocsRepo{}}
	svc := newLedgerService(t, rm, 1024)

	if _, err := svc.Broadcast(context.Background(), "u-1", nil); err == nil {
		t.Fatal("expected error for empty payload")
	}
}

func TestBroadcast_OversizedPayload_Archived(t *testing.T) {
	rm := &fakeRepoManager{d: &fakeDocsRepo{}}
	svc := newLedgerService(t, rm, 4)
	stubPresignClient(t)

	origPut := presignPutObject
	origUpload := uploadToPresignedURL
	t.Cleanup(func() {
		presignPutObject = origPut
		uploadToPresignedURL = origUpload
	})

	presignPutObject = presignPutStub("http://storage.example/put")

	var uploaded []byte
	uploadToPresignedURL = func(ctx context.Context, url string, data []byte) error {
		if url != "http://storage.example/put" {
			t.Fatalf("unexpected upload url: %s", url)
		}
		uploaded = data
		return nil
	}

	payload := []byte("payload over the limit")
	txID, err := svc.Broadcast(context.Background(), "u-1", payload)
	if err != nil {
		t.Fatalf("Broadcast error: %v", err)
	}
	if txID != TransactionID(payload) {
		t.Fatalf("unexpected txid: %s", txID)
	}
	if string(uploaded) != string(payload) {
		t.Fatal("expected payload to be uploaded to storage")
	}

	doc := rm.d.created
	if doc.StorageKey == "" || doc.Payload != nil {
		t.Fatalf("expected archived storage, got %+v", doc)
	}
}

func TestBroadcast_UploadError(t *testing.T) {
	rm := &fakeRepoManager{d: &fakeDocsRepo{}}
	svc := newLedgerService(t, rm, 4)
	stubPresignClient(t)

	origPut := presignPutObject
	origUpload := uploadToPresignedURL
	t.Cleanup(func() {
		presignPutObject = origPut
		uploadToPresignedURL = origUpload
	})

	presignPutObject = presignPutStub("http://storage.example/put")
	uploadToPresignedURL = func(ctx context.Context, url string, data []byte) error {
		return errors.New("storage down")
	}

	if _, err := svc.Broadcast(context.Background(), "u-1", []byte("payload over the limit")); err == nil {
		t.Fatal("expected error")
	}
	if rm.d.created != nil {
		t.Fatal("document must not be recorded when archiving fails")
	}
}

func TestRetrieve_InlinePayload(t *testing.T) {
	rm := &fakeRepoManager{d: &fakeDocsRepo{getOut: &models.Document{
		TxID: "tx-1", Payload: []byte("bytes"),
	}}}
	svc := newLedgerService(t, rm, 1024)

	payload, url, err := svc.Retrieve(context.Background(), "tx-1")
	if err != nil {
		t.Fatalf("Retrieve error: %v", err)
	}
	if string(payload) != "bytes" || url != "" {
		t.Fatalf("unexpected result: %q %q", payload, url)
	}
}

func TestRetrieve_ArchivedPayload(t *testing.T) {
	rm := &fakeRepoManager{d: &fakeDocsRepo{getOut: &models.Document{
		TxID: "tx-1", StorageKey: "documents/1/2/3/key",
	}}}
	svc := newLedgerService(t, rm, 1024)
	stubPresignClient(t)

	origGet := presignGetObject
	t.Cleanup(func() { presignGetObject = origGet })
	presignGetObject = presignGetStub("http://storage.example/get")

	payload, url, err := svc.Retrieve(context.Background(), "tx-1")
	if err != nil {
		t.Fatalf("Retrieve error: %v", err)
	}
	if payload != nil || url != "http://storage.example/get" {
		t.Fatalf("unexpected result: %q %q", payload, url)
	}
}

func TestRetrieve_NotFound(t *testing.T) {
	rm := &fakeRepoManager{d: &fakeDocsRepo{getErr: common.ErrNotFound}}
	svc := newLedgerService(t, rm, 1024)

	_, _, err := svc.Retrieve(context.Background(), "tx-missing")
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRecordPayment_Success(t *testing.T) {
	rm := &fakeRepoManager{
		d: &fakeDocsRepo{getOut: &models.Document{TxID: "tx-1"}},
		p: &fakePaymentsRepo{},
	}
	svc := newLedgerService(t, rm, 1024)

	if err := svc.RecordPayment(context.Background(), "tx-1", 0.05); err != nil {
		t.Fatalf("RecordPayment error: %v", err)
	}
	if rm.p.created == nil || rm.p.created.AmountUSD != 0.05 {
		t.Fatalf("unexpected payment: %+v", rm.p.created)
	}
}

func TestRecordPayment_UnknownDocument(t *testing.T) {
	rm := &fakeRepoManager{
		d: &fakeDocsRepo{getErr: common.ErrNotFound},
		p: &fakePaymentsRepo{},
	}
	svc := newLedgerService(t, rm, 1024)

	if err := svc.RecordPayment(context.Background(), "tx-missing", 0.05); !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRecordPayment_NonPositiveAmount(t *testing.T) {
	rm := &fakeRepoManager{p: &fakePaymentsRepo{}}
	svc := newLedgerService(t, rm, 1024)

	if err := svc.RecordPayment(context.Background(), "tx-1", 0); err == nil {
		t.Fatal("expected error")
	}
}

func TestHasPaid(t *testing.T) {
	rm := &fakeRepoManager{p: &fakePaymentsRepo{total: 0.05}}
	svc := newLedgerService(t, rm, 1024)

	paid, err := svc.HasPaid(context.Background(), "tx-1")
	if err != nil {
		t.Fatalf("HasPaid error: %v", err)
	}
	if !paid {
		t.Fatal("expected paid=true")
	}

	rm.p.total = 0
	paid, err = svc.HasPaid(context.Background(), "tx-1")
	if err != nil {
		t.Fatalf("HasPaid error: %v", err)
	}
	if paid {
		t.Fatal("expected paid=false")
	}
}
