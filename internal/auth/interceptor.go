package auth

import (
	"context"
	"log/slog"
	"strings"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// publicPrefixes skip authentication.
var publicPrefixes = []string{
	"/grpc.health.v1.",
	"/grpc.reflection.",
}

// UnaryServerInterceptor verifies the bearer token in the "authorization"
// metadata and stores the subject in the request context.
func UnaryServerInterceptor(v *Verifier, log *slog.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		for _, p := range publicPrefixes {
			if strings.HasPrefix(info.FullMethod, p) {
				return handler(ctx, req)
			}
		}

		token, err := bearerToken(ctx)
		if err != nil {
			log.Debug("rejected call", "method", info.FullMethod, "err", err)
			return nil, err
		}
		userID, err := v.Verify(token)
		if err != nil {
			log.Debug("rejected call", "method", info.FullMethod, "err", err)
			return nil, status.Error(codes.Unauthenticated, "invalid token")
		}
		return handler(WithUserID(ctx, userID), req)
	}
}

func bearerToken(ctx context.Context) (string, error) {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return "", status.Error(codes.Unauthenticated, "missing metadata")
	}
	values := md.Get("authorization")
	if len(values) == 0 || !strings.HasPrefix(values[0], "Bearer ") {
		return "", status.Error(codes.Unauthenticated, "missing or invalid token")
	}
	return strings.TrimPrefix(values[0], "Bearer "), nil
}
