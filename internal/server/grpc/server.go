// Package grpc exposes the authenticator over gRPC using the authrpc
// service description.
package grpc

import (
	"context"
	"net"

	"github.com/dmitrijs2005/authshell/internal/authrpc"
	"github.com/dmitrijs2005/authshell/internal/logging"
	"github.com/dmitrijs2005/authshell/internal/server/services"
	"google.golang.org/grpc"
)

// UserService is the slice of services.UserService the transport needs.
type UserService interface {
	Login(ctx context.Context, userName, password string) (*services.Session, error)
	Register(ctx context.Context, in services.RegisterInput) (*services.Session, error)
	Logout(ctx context.Context, userID string) error
	ForgotPassword(ctx context.Context, email string) (bool, error)
}

type GRPCServer struct {
	address   string
	users     UserService
	logger    logging.Logger
	jwtSecret []byte
}

func NewGRPCServer(a string, l logging.Logger, us UserService, secretKey string) *GRPCServer {
	return &GRPCServer{
		address:   a,
		logger:    l.With("module", "grpc_server"),
		users:     us,
		jwtSecret: []byte(secretKey),
	}
}

func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	return s.Serve(ctx, listen)
}

// Serve accepts connections on lis until ctx is cancelled, then stops
// gracefully.
func (s *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {

	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.accessTokenInterceptor))

	authrpc.RegisterAuthServer(srv, s)

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", lis.Addr().String())

	// starts accepting incoming connections
	if err := srv.Serve(lis); err != nil {
		return err
	}

	return nil
}
