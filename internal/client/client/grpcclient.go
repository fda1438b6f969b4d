package client

import (
	"context"
	"fmt"
	"time"

	"github.com/dkrasnov/inkpress/internal/common"
	"github.com/dkrasnov/inkpress/internal/netx"
	pb "github.com/dkrasnov/inkpress/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// seam for tests
var downloadFromPresignedURL = netx.DownloadFromPresignedURL

type GRPCClient struct {
	endpointURL    string
	conn           *grpc.ClientConn
	client         pb.LedgerServiceClient
	accessToken    string
	requestTimeout time.Duration
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Delete(common.AccessTokenHeaderName)
	md.Set(common.AccessTokenHeaderName, token)

	return metadata.NewOutgoingContext(ctx, md)
}

func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply interface{},
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	ctx = withAccessToken(ctx, s.accessToken)
	return invoker(ctx, method, req, reply, cc, opts...)
}

func NewLedgerClientService(endpointURL string, requestTimeout time.Duration) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL, requestTimeout: requestTimeout}
	err := c.InitGRPCClient()
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) InitGRPCClient() error {

	conn, err := grpc.NewClient(s.endpointURL, grpc.WithTransportCredentials(insecure.NewCredentials()), grpc.WithUnaryInterceptor(s.accessTokenInterceptor))
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = pb.NewLedgerServiceClient(conn)
	return nil
}

func (s *GRPCClient) Close() error {
	return s.conn.Close()
}

// SetAccessToken restores a token from a previous session.
func (s *GRPCClient) SetAccessToken(token string) {
	s.accessToken = token
}

func (s *GRPCClient) AccessToken() string {
	return s.accessToken
}

func (s *GRPCClient) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.requestTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.requestTimeout)
}

func (s *GRPCClient) Register(ctx context.Context, handle string, password string, paymentAddress string) (string, error) {

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	req := &pb.RegisterRequest{Handle: handle, Password: password, PaymentAddress: paymentAddress}

	resp, err := s.client.Register(ctx, req)

	if err != nil {
		return "", s.mapError(err)
	}

	return resp.UserId, nil

}

func (s *GRPCClient) Login(ctx context.Context, handle string, password string) (string, error) {

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	req := &pb.LoginRequest{Handle: handle, Password: password}

	resp, err := s.client.Login(ctx, req)

	if err != nil {
		return "", s.mapError(err)
	}

	s.accessToken = resp.AccessToken

	return resp.AccessToken, nil

}

func (s *GRPCClient) Ping(ctx context.Context) error {

	req := &pb.PingRequest{}

	resp, err := s.client.Ping(ctx, req)
	if err != nil {
		return s.mapError(err)
	}

	if resp.Status != "OK" {
		return ErrUnavailable
	}

	return nil

}

// Broadcast submits an assembled document package to the ledger and returns
// its transaction id.
func (s *GRPCClient) Broadcast(ctx context.Context, payload []byte) (string, error) {

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	req := &pb.BroadcastRequest{Payload: payload}

	resp, err := s.client.Broadcast(ctx, req)
	if err != nil {
		return "", s.mapError(err)
	}

	return resp.TransactionId, nil

}

// Retrieve fetches a document package by transaction id. Payloads archived
// to object storage come back as a presigned URL and are downloaded here, so
// the caller always receives raw bytes.
func (s *GRPCClient) Retrieve(ctx context.Context, txID string) ([]byte, error) {

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	req := &pb.RetrieveRequest{TransactionId: txID}

	resp, err := s.client.Retrieve(ctx, req)
	if err != nil {
		return nil, s.mapError(err)
	}

	if resp.DownloadUrl != "" {
		payload, err := downloadFromPresignedURL(ctx, resp.DownloadUrl)
		if err != nil {
			return nil, fmt.Errorf("failed to download payload: %w", err)
		}
		return payload, nil
	}

	return resp.Payload, nil

}

func (s *GRPCClient) HasPaid(ctx context.Context, txID string) (bool, error) {

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	req := &pb.HasPaidRequest{TransactionId: txID}

	resp, err := s.client.HasPaid(ctx, req)
	if err != nil {
		return false, s.mapError(err)
	}

	return resp.Paid, nil

}

func (s *GRPCClient) RecordPayment(ctx context.Context, txID string, amountUSD float64) error {

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	req := &pb.RecordPaymentRequest{TransactionId: txID, AmountUsd: amountUSD}

	_, err := s.client.RecordPayment(ctx, req)
	if err != nil {
		return s.mapError(err)
	}

	return nil

}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.Unauthenticated, codes.PermissionDenied:
		return ErrUnauthorized
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}
