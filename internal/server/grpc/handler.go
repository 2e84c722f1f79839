package grpc

import (
	"context"
	"errors"
	"time"

	"github.com/dmitrijs2005/authshell/internal/authrpc"
	"github.com/dmitrijs2005/authshell/internal/common"
	"github.com/dmitrijs2005/authshell/internal/server/models"
	"github.com/dmitrijs2005/authshell/internal/server/services"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

var validationErrors = []error{
	common.ErrorUsernameTooShort,
	common.ErrorEmptyPassword,
	common.ErrorPasswordsMismatch,
	common.ErrorInvalidEmail,
}

// toStatus maps service errors onto gRPC status codes. Only validation
// messages reach the caller verbatim.
func toStatus(err error) error {
	switch {
	case errors.Is(err, common.ErrorUnauthorized):
		return status.Error(codes.Unauthenticated, "invalid username or password")
	case errors.Is(err, common.ErrorAlreadyExists):
		return status.Error(codes.AlreadyExists, "username is already taken")
	}
	for _, v := range validationErrors {
		if errors.Is(err, v) {
			return status.Error(codes.InvalidArgument, v.Error())
		}
	}
	return status.Error(codes.Internal, "internal error")
}

func wireUser(u *models.User) authrpc.User {
	return authrpc.User{
		ID:            u.ID,
		Username:      u.UserName,
		Email:         u.Email,
		FirstName:     u.FirstName,
		LastName:      u.LastName,
		Avatar:        u.Avatar,
		Role:          u.Role,
		EmailVerified: u.EmailVerified,
		CreatedAt:     u.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:     u.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func authResponse(s *services.Session) *structpb.Struct {
	return authrpc.AuthResponse{
		User:         wireUser(s.User),
		Token:        s.AccessToken,
		RefreshToken: s.RefreshToken,
	}.Encode()
}

func (s *GRPCServer) Login(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {

	in := authrpc.DecodeLoginRequest(req)

	result, err := s.users.Login(ctx, in.Username, in.Password)
	if err != nil {
		if !errors.Is(err, common.ErrorUnauthorized) {
			s.logger.Error(ctx, "login failed", "username", in.Username, "error", err)
		}
		return nil, toStatus(err)
	}

	s.logger.Info(ctx, "Logged in", "username", in.Username)
	return authResponse(result), nil
}

func (s *GRPCServer) Register(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {

	s.logger.Info(ctx, "Registration request")

	in := authrpc.DecodeRegisterRequest(req)

	result, err := s.users.Register(ctx, services.RegisterInput{
		UserName:        in.Username,
		Email:           in.Email,
		Password:        in.Password,
		ConfirmPassword: in.ConfirmPassword,
		FirstName:       in.FirstName,
		LastName:        in.LastName,
	})
	if err != nil {
		s.logger.Warn(ctx, "registration rejected", "username", in.Username, "error", err)
		return nil, toStatus(err)
	}

	s.logger.Info(ctx, "Registered", "username", in.Username)
	return authResponse(result), nil
}

func (s *GRPCServer) Logout(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {

	userID, ok := ctx.Value(userIDKey).(string)
	if !ok || userID == "" {
		return nil, status.Error(codes.Unauthenticated, "missing token")
	}

	if err := s.users.Logout(ctx, userID); err != nil {
		return nil, toStatus(err)
	}

	return authrpc.Empty(), nil
}

func (s *GRPCServer) ForgotPassword(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {

	in := authrpc.DecodeForgotPasswordRequest(req)

	sent, err := s.users.ForgotPassword(ctx, in.Email)
	if err != nil {
		return nil, toStatus(err)
	}

	return authrpc.ForgotPasswordResponse{Sent: sent}.Encode(), nil
}

func (s *GRPCServer) Ping(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {

	return authrpc.PingResponse{Status: authrpc.StatusOK}.Encode(), nil

}
