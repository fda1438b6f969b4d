package grpc

import (
	"context"
	"errors"

	"github.com/dkrasnov/inkpress/internal/common"
	pb "github.com/dkrasnov/inkpress/internal/proto"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func (s *GRPCServer) Register(ctx context.Context, req *pb.RegisterRequest) (*pb.RegisterResponse, error) {

	s.logger.Info(ctx, "Registration request", "handle", req.Handle)

	user, err := s.users.Register(ctx, req.Handle, []byte(req.Password), req.PaymentAddress)
	if err != nil {
		s.logger.Error(ctx, err.Error())
		return nil, status.Error(codes.Internal, "internal error")
	}

	s.logger.Info(ctx, "Registered", "handle", req.Handle)
	return &pb.RegisterResponse{UserId: user.ID}, nil

}

func (s *GRPCServer) Login(ctx context.Context, req *pb.LoginRequest) (*pb.LoginResponse, error) {

	token, err := s.users.Login(ctx, req.Handle, []byte(req.Password))
	if err != nil {
		if errors.Is(err, common.ErrUnauthorized) {
			return nil, status.Error(codes.Unauthenticated, "unauthorized")
		}
		return nil, status.Error(codes.Internal, "internal error")
	}

	return &pb.LoginResponse{AccessToken: token}, nil

}

func (s *GRPCServer) Ping(ctx context.Context, req *pb.PingRequest) (*pb.PingResponse, error) {

	return &pb.PingResponse{Status: "OK"}, nil

}

func (s *GRPCServer) Broadcast(ctx context.Context, req *pb.BroadcastRequest) (*pb.BroadcastResponse, error) {

	userID, ok := userIDFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "missing token")
	}

	txID, err := s.ledger.Broadcast(ctx, userID, req.Payload)
	if err != nil {
		s.logger.Error(ctx, err.Error())
		return nil, status.Error(codes.Internal, "internal error")
	}

	s.logger.Info(ctx, "Broadcast accepted", "txid", txID, "bytes", len(req.Payload))
	return &pb.BroadcastResponse{TransactionId: txID}, nil

}

func (s *GRPCServer) Retrieve(ctx context.Context, req *pb.RetrieveRequest) (*pb.RetrieveResponse, error) {

	payload, url, err := s.ledger.Retrieve(ctx, req.TransactionId)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, status.Error(codes.NotFound, "not found")
		}
		s.logger.Error(ctx, err.Error())
		return nil, status.Error(codes.Internal, "internal error")
	}

	return &pb.RetrieveResponse{Payload: payload, DownloadUrl: url}, nil

}

func (s *GRPCServer) HasPaid(ctx context.Context, req *pb.HasPaidRequest) (*pb.HasPaidResponse, error) {

	paid, err := s.ledger.HasPaid(ctx, req.TransactionId)
	if err != nil {
		s.logger.Error(ctx, err.Error())
		return nil, status.Error(codes.Internal, "internal error")
	}

	return &pb.HasPaidResponse{Paid: paid}, nil

}

func (s *GRPCServer) RecordPayment(ctx context.Context, req *pb.RecordPaymentRequest) (*pb.RecordPaymentResponse, error) {

	if _, ok := userIDFromContext(ctx); !ok {
		return nil, status.Error(codes.Unauthenticated, "missing token")
	}

	if err := s.ledger.RecordPayment(ctx, req.TransactionId, req.AmountUsd); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, status.Error(codes.NotFound, "not found")
		}
		s.logger.Error(ctx, err.Error())
		return nil, status.Error(codes.Internal, "internal error")
	}

	return &pb.RecordPaymentResponse{}, nil

}
