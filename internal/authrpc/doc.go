// Package authrpc is the gRPC contract between the client and the
// authenticator server.
//
// Messages travel as google.protobuf.Struct values, so the contract needs no
// generated code: each request/response type here knows how to encode itself
// into a *structpb.Struct and how to be decoded from one. Unknown fields are
// ignored and missing fields decode to zero values, which keeps old clients
// and newer servers compatible.
//
// auth.proto is the written contract. ServiceDesc must list the same RPCs in
// the same order.
package authrpc
