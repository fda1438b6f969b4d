package grpc

import (
	"context"
	"net"

	"github.com/dkrasnov/inkpress/internal/logging"
	pb "github.com/dkrasnov/inkpress/internal/proto"
	"github.com/dkrasnov/inkpress/internal/server/models"
	"google.golang.org/grpc"
)

// userSvc and ledgerSvc describe the slices of the service layer the gRPC
// handlers need; the concrete services satisfy them.
type userSvc interface {
	Register(ctx context.Context, handle string, password []byte, paymentAddress string) (*models.User, error)
	Login(ctx context.Context, handle string, password []byte) (string, error)
}

type ledgerSvc interface {
	Broadcast(ctx context.Context, userID string, payload []byte) (string, error)
	Retrieve(ctx context.Context, txID string) ([]byte, string, error)
	RecordPayment(ctx context.Context, txID string, amountUSD float64) error
	HasPaid(ctx context.Context, txID string) (bool, error)
}

type GRPCServer struct {
	pb.UnimplementedLedgerServiceServer
	address   string
	users     userSvc
	ledger    ledgerSvc
	logger    logging.Logger
	jwtSecret []byte
}

func NewGRPCServer(a string, l logging.Logger, us userSvc, ls ledgerSvc, secretKey string) (*GRPCServer, error) {
	return &GRPCServer{
		address:   a,
		logger:    l.With("module", "grpc_server"),
		users:     us,
		ledger:    ls,
		jwtSecret: []byte(secretKey),
	}, nil
}

func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	// creates gRPC-server
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.accessTokenInterceptor))

	// registers service
	pb.RegisterLedgerServiceServer(srv, s)

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", s.address)

	// starts accepting incoming connections
	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}
