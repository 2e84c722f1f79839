package authrpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

const ServiceName = "authshell.v1.AuthService"

const (
	MethodLogin          = "/" + ServiceName + "/Login"
	MethodRegister       = "/" + ServiceName + "/Register"
	MethodLogout         = "/" + ServiceName + "/Logout"
	MethodForgotPassword = "/" + ServiceName + "/ForgotPassword"
	MethodPing           = "/" + ServiceName + "/Ping"
)

// AuthServer is implemented by the authenticator server.
type AuthServer interface {
	Login(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	Register(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	Logout(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	ForgotPassword(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	Ping(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
}

type unaryCall func(AuthServer, context.Context, *structpb.Struct) (*structpb.Struct, error)

func unary(name string, call unaryCall) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(structpb.Struct)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(AuthServer), ctx, in)
			}
			info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + ServiceName + "/" + name}
			handler := func(ctx context.Context, req any) (any, error) {
				return call(srv.(AuthServer), ctx, req.(*structpb.Struct))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*AuthServer)(nil),
	Methods: []grpc.MethodDesc{
		unary("Login", AuthServer.Login),
		unary("Register", AuthServer.Register),
		unary("Logout", AuthServer.Logout),
		unary("ForgotPassword", AuthServer.ForgotPassword),
		unary("Ping", AuthServer.Ping),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "auth.proto",
}

func RegisterAuthServer(s grpc.ServiceRegistrar, srv AuthServer) {
	s.RegisterService(&ServiceDesc, srv)
}
