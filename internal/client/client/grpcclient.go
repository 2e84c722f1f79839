package client

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/authshell/internal/authrpc"
	"github.com/dmitrijs2005/authshell/internal/client/models"
	"github.com/dmitrijs2005/authshell/internal/common"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

const callTimeout = 10 * time.Second

type tokenKey struct{}

// contextWithToken makes the interceptor send token instead of the one
// remembered from the last successful login.
func contextWithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey{}, token)
}

// GRPCClient is the network Authenticator backed by the authrpc service.
type GRPCClient struct {
	endpointURL string
	conn        grpc.ClientConnInterface
	closer      func() error

	mu          sync.RWMutex
	accessToken string
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

func (s *GRPCClient) token(ctx context.Context) string {
	if t, ok := ctx.Value(tokenKey{}).(string); ok {
		return t
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accessToken
}

func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply interface{},
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	if token := s.token(ctx); token != "" {
		ctx = withAccessToken(ctx, token)
	}
	return invoker(ctx, method, req, reply, cc, opts...)
}

// NewGRPCClient prepares a lazy connection to endpointURL. No network
// traffic happens until the first call.
func NewGRPCClient(endpointURL string, opts ...grpc.DialOption) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL}

	dialOpts := append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(c.accessTokenInterceptor),
	}, opts...)

	conn, err := grpc.NewClient(endpointURL, dialOpts...)
	if err != nil {
		return nil, fmt.Errorf("grpc client %s: %w", endpointURL, err)
	}
	c.conn = conn
	c.closer = conn.Close
	return c, nil
}

func (s *GRPCClient) invoke(ctx context.Context, method string, req *structpb.Struct) (*structpb.Struct, error) {
	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	resp := new(structpb.Struct)
	if err := s.conn.Invoke(ctx, method, req, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (s *GRPCClient) authResult(resp *structpb.Struct) *models.AuthResult {
	r := authrpc.DecodeAuthResponse(resp)

	s.mu.Lock()
	s.accessToken = r.Token
	s.mu.Unlock()

	u := r.User
	return &models.AuthResult{
		User: models.User{
			ID:              u.ID,
			Username:        u.Username,
			Email:           u.Email,
			FirstName:       u.FirstName,
			LastName:        u.LastName,
			Avatar:          u.Avatar,
			Role:            u.Role,
			IsEmailVerified: u.EmailVerified,
			CreatedAt:       u.CreatedAt,
			UpdatedAt:       u.UpdatedAt,
		},
		Token:        r.Token,
		RefreshToken: r.RefreshToken,
	}
}

func (s *GRPCClient) Login(ctx context.Context, creds models.LoginCredentials) (*models.AuthResult, error) {
	req := authrpc.LoginRequest{Username: creds.Username, Password: creds.Password}

	resp, err := s.invoke(ctx, authrpc.MethodLogin, req.Encode())
	if err != nil {
		err = s.mapError(err)
		if err == ErrUnauthorized {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	return s.authResult(resp), nil
}

func (s *GRPCClient) Register(ctx context.Context, creds models.RegisterCredentials) (*models.AuthResult, error) {
	req := authrpc.RegisterRequest{
		Username:        creds.Username,
		Email:           creds.Email,
		Password:        creds.Password,
		ConfirmPassword: creds.ConfirmPassword,
		FirstName:       creds.FirstName,
		LastName:        creds.LastName,
	}

	resp, err := s.invoke(ctx, authrpc.MethodRegister, req.Encode())
	if err != nil {
		return nil, s.mapError(err)
	}
	return s.authResult(resp), nil
}

func (s *GRPCClient) Logout(ctx context.Context, token string) error {
	_, err := s.invoke(contextWithToken(ctx, token), authrpc.MethodLogout, authrpc.Empty())

	s.mu.Lock()
	s.accessToken = ""
	s.mu.Unlock()

	if err != nil {
		return s.mapError(err)
	}
	return nil
}

func (s *GRPCClient) ForgotPassword(ctx context.Context, email string) (bool, error) {
	req := authrpc.ForgotPasswordRequest{Email: email}

	resp, err := s.invoke(ctx, authrpc.MethodForgotPassword, req.Encode())
	if err != nil {
		return false, s.mapError(err)
	}
	return authrpc.DecodeForgotPasswordResponse(resp).Sent, nil
}

func (s *GRPCClient) Ping(ctx context.Context) error {
	resp, err := s.invoke(ctx, authrpc.MethodPing, authrpc.Empty())
	if err != nil {
		return s.mapError(err)
	}

	if authrpc.DecodePingResponse(resp).Status != authrpc.StatusOK {
		return ErrUnavailable
	}

	return nil
}

func (s *GRPCClient) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer()
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, ok := status.FromError(err)
	if !ok {
		return err
	}
	switch st.Code() {
	case codes.Unauthenticated, codes.PermissionDenied:
		return ErrUnauthorized
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	case codes.InvalidArgument, codes.AlreadyExists, codes.FailedPrecondition:
		return rejected(st.Message())
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}
