package grpc

import (
	"context"

	"github.com/dkrasnov/inkpress/internal/common"
	pb "github.com/dkrasnov/inkpress/internal/proto"
	"github.com/dkrasnov/inkpress/internal/server/auth"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type ctxKey string

const userIDKey ctxKey = "userID"

// guardedMethods are the RPCs that mutate state on behalf of a user and
// therefore require a valid access token.
var guardedMethods = map[string]bool{
	pb.LedgerService_Broadcast_FullMethodName:     true,
	pb.LedgerService_RecordPayment_FullMethodName: true,
}

func (s *GRPCServer) accessTokenInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {

	if guardedMethods[info.FullMethod] {

		var accessToken string
		if md, ok := metadata.FromIncomingContext(ctx); ok {
			values := md.Get(common.AccessTokenHeaderName)
			if len(values) > 0 {
				accessToken = values[0]
			}
		}
		if len(accessToken) == 0 {
			return nil, status.Error(codes.Unauthenticated, "missing token")
		}

		claims, err := auth.ParseToken(accessToken, s.jwtSecret)
		if err != nil {
			return nil, status.Error(codes.Unauthenticated, err.Error())
		}

		ctx = context.WithValue(ctx, userIDKey, claims.UserID)

	}

	return handler(ctx, req)
}

// userIDFromContext extracts the authenticated user id set by the interceptor.
func userIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDKey).(string)
	return id, ok
}
