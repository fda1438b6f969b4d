package grpc

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/dkrasnov/inkpress/internal/common"
	pb "github.com/dkrasnov/inkpress/internal/proto"
	"github.com/dkrasnov/inkpress/internal/server/models"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ---- fakes ----

type fakeUser struct {
	regResp *models.User
	regErr  error

	loginResp string
	loginErr  error
}

func (f *fakeUser) Register(ctx context.Context, handle string, password []byte, paymentAddress string) (*models.User, error) {
	return f.regResp, f.regErr
}
func (f *fakeUser) Login(ctx context.Context, handle string, password []byte) (string, error) {
	return f.loginResp, f.loginErr
}

type fakeLedger struct {
	txID         string
	broadcastErr error

	payload     []byte
	downloadURL string
	retrieveErr error

	recordErr error

	paid    bool
	paidErr error
}

func (f *fakeLedger) Broadcast(ctx context.Context, userID string, payload []byte) (string, error) {
	return f.txID, f.broadcastErr
}
func (f *fakeLedger) Retrieve(ctx context.Context, txID string) ([]byte, string, error) {
	return f.payload, f.downloadURL, f.retrieveErr
}
func (f *fakeLedger) RecordPayment(ctx context.Context, txID string, amountUSD float64) error {
	return f.recordErr
}
func (f *fakeLedger) HasPaid(ctx context.Context, txID string) (bool, error) {
	return f.paid, f.paidErr
}

// ---- helpers ----

func newServer(u userSvc, l ledgerSvc) *GRPCServer {
	return &GRPCServer{
		address:   "127.0.0.1:0",
		users:     u,
		ledger:    l,
		logger:    nopLogger{},
		jwtSecret: []byte("k"),
	}
}

func authedCtx(userID string) context.Context {
	return context.WithValue(context.Background(), userIDKey, userID)
}

// ---- tests ----

func TestPing_OK(t *testing.T) {
	s := newServer(&fakeUser{}, &fakeLedger{})
	resp, err := s.Ping(context.Background(), &pb.PingRequest{})
	if err != nil {
		t.Fatalf("Ping error: %v", err)
	}
	if resp.GetStatus() != "OK" {
		t.Fatalf("unexpected status: %q", resp.GetStatus())
	}
}

func TestRegister_OK(t *testing.T) {
	u := &fakeUser{regResp: &models.User{ID: "42"}}
	s := newServer(u, &fakeLedger{})
	resp, err := s.Register(context.Background(), &pb.RegisterRequest{
		Handle: "alice", Password: "pw", PaymentAddress: "addr",
	})
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}
	if resp.GetUserId() != "42" {
		t.Fatalf("unexpected user id: %q", resp.GetUserId())
	}
}

func TestRegister_InternalOnError(t *testing.T) {
	u := &fakeUser{regErr: errors.New("db down")}
	s := newServer(u, &fakeLedger{})
	_, err := s.Register(context.Background(), &pb.RegisterRequest{Handle: "alice", Password: "pw"})
	if status.Code(err) != codes.Internal {
		t.Fatalf("want Internal, got %v", status.Code(err))
	}
}

func TestLogin_OK(t *testing.T) {
	u := &fakeUser{loginResp: "ACCESS"}
	s := newServer(u, &fakeLedger{})
	resp, err := s.Login(context.Background(), &pb.LoginRequest{Handle: "alice", Password: "pw"})
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}
	if resp.GetAccessToken() != "ACCESS" {
		t.Fatalf("unexpected token: %q", resp.GetAccessToken())
	}
}

func TestLogin_UnauthorizedAndInternal(t *testing.T) {
	s := newServer(&fakeUser{loginErr: common.ErrUnauthorized}, &fakeLedger{})
	_, err := s.Login(context.Background(), &pb.LoginRequest{Handle: "alice", Password: "x"})
	if status.Code(err) != codes.Unauthenticated {
		t.Fatalf("want Unauthenticated, got %v", status.Code(err))
	}

	s2 := newServer(&fakeUser{loginErr: errors.New("boom")}, &fakeLedger{})
	_, err = s2.Login(context.Background(), &pb.LoginRequest{Handle: "alice", Password: "x"})
	if status.Code(err) != codes.Internal {
		t.Fatalf("want Internal, got %v", status.Code(err))
	}
}

func TestBroadcast_OK(t *testing.T) {
	l := &fakeLedger{txID: "tx-1"}
	s := newServer(&fakeUser{}, l)

	resp, err := s.Broadcast(authedCtx("u-1"), &pb.BroadcastRequest{Payload: []byte("bytes")})
	if err != nil {
		t.Fatalf("Broadcast error: %v", err)
	}
	if resp.GetTransactionId() != "tx-1" {
		t.Fatalf("unexpected txid: %q", resp.GetTransactionId())
	}
}

func TestBroadcast_MissingUserID(t *testing.T) {
	s := newServer(&fakeUser{}, &fakeLedger{})
	_, err := s.Broadcast(context.Background(), &pb.BroadcastRequest{Payload: []byte("bytes")})
	if status.Code(err) != codes.Unauthenticated {
		t.Fatalf("want Unauthenticated, got %v", status.Code(err))
	}
}

func TestBroadcast_InternalOnError(t *testing.T) {
	s := newServer(&fakeUser{}, &fakeLedger{broadcastErr: errors.New("boom")})
	_, err := s.Broadcast(authedCtx("u-1"), &pb.BroadcastRequest{Payload: []byte("bytes")})
	if status.Code(err) != codes.Internal {
		t.Fatalf("want Internal, got %v", status.Code(err))
	}
}

func TestRetrieve_InlineAndArchived(t *testing.T) {
	s := newServer(&fakeUser{}, &fakeLedger{payload: []byte("bytes")})
	resp, err := s.Retrieve(context.Background(), &pb.RetrieveRequest{TransactionId: "tx-1"})
	if err != nil {
		t.Fatalf("Retrieve error: %v", err)
	}
	if !bytes.Equal(resp.GetPayload(), []byte("bytes")) || resp.GetDownloadUrl() != "" {
		t.Fatalf("unexpected response: %+v", resp)
	}

	s2 := newServer(&fakeUser{}, &fakeLedger{downloadURL: "http://dl"})
	resp, err = s2.Retrieve(context.Background(), &pb.RetrieveRequest{TransactionId: "tx-1"})
	if err != nil {
		t.Fatalf("Retrieve error: %v", err)
	}
	if resp.GetPayload() != nil || resp.GetDownloadUrl() != "http://dl" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestRetrieve_NotFound(t *testing.T) {
	s := newServer(&fakeUser{}, &fakeLedger{retrieveErr: common.ErrNotFound})
	_, err := s.Retrieve(context.Background(), &pb.RetrieveRequest{TransactionId: "tx-missing"})
	if status.Code(err) != codes.NotFound {
		t.Fatalf("want NotFound, got %v", status.Code(err))
	}
}

func TestHasPaid_OK_and_Error(t *testing.T) {
	s := newServer(&fakeUser{}, &fakeLedger{paid: true})
	resp, err := s.HasPaid(context.Background(), &pb.HasPaidRequest{TransactionId: "tx-1"})
	if err != nil {
		t.Fatalf("HasPaid error: %v", err)
	}
	if !resp.GetPaid() {
		t.Fatal("expected paid=true")
	}

	s2 := newServer(&fakeUser{}, &fakeLedger{paidErr: errors.New("db")})
	_, err = s2.HasPaid(context.Background(), &pb.HasPaidRequest{TransactionId: "tx-1"})
	if status.Code(err) != codes.Internal {
		t.Fatalf("want Internal, got %v", status.Code(err))
	}
}

func TestRecordPayment_OK(t *testing.T) {
	s := newServer(&fakeUser{}, &fakeLedger{})
	if _, err := s.RecordPayment(authedCtx("u-1"), &pb.RecordPaymentRequest{TransactionId: "tx-1", AmountUsd: 0.05}); err != nil {
		t.Fatalf("RecordPayment error: %v", err)
	}
}

func TestRecordPayment_NotFoundAndMissingToken(t *testing.T) {
	s := newServer(&fakeUser{}, &fakeLedger{recordErr: common.ErrNotFound})
	_, err := s.RecordPayment(authedCtx("u-1"), &pb.RecordPaymentRequest{TransactionId: "tx-x", AmountUsd: 0.05})
	if status.Code(err) != codes.NotFound {
		t.Fatalf("want NotFound, got %v", status.Code(err))
	}

	s2 := newServer(&fakeUser{}, &fakeLedger{})
	_, err = s2.RecordPayment(context.Background(), &pb.RecordPaymentRequest{TransactionId: "tx-1", AmountUsd: 0.05})
	if status.Code(err) != codes.Unauthenticated {
		t.Fatalf("want Unauthenticated, got %v", status.Code(err))
	}
}
