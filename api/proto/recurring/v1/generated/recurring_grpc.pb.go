// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: api/proto/recurring/v1/recurring.proto

package recurringv1

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
	emptypb "google.golang.org/protobuf/types/known/emptypb"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	RecurringService_CreateTemplate_FullMethodName    = "/recurring.v1.RecurringService/CreateTemplate"
	RecurringService_GetTemplate_FullMethodName       = "/recurring.v1.RecurringService/GetTemplate"
	RecurringService_ListTemplates_FullMethodName     = "/recurring.v1.RecurringService/ListTemplates"
	RecurringService_UpdateTemplate_FullMethodName    = "/recurring.v1.RecurringService/UpdateTemplate"
	RecurringService_SetTemplateActive_FullMethodName = "/recurring.v1.RecurringService/SetTemplateActive"
	RecurringService_DeleteTemplate_FullMethodName    = "/recurring.v1.RecurringService/DeleteTemplate"
	RecurringService_GenerateInstances_FullMethodName = "/recurring.v1.RecurringService/GenerateInstances"
)

// RecurringServiceClient is the client API for RecurringService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type RecurringServiceClient interface {
	CreateTemplate(ctx context.Context, in *CreateTemplateRequest, opts ...grpc.CallOption) (*CreateTemplateResponse, error)
	GetTemplate(ctx context.Context, in *GetTemplateRequest, opts ...grpc.CallOption) (*GetTemplateResponse, error)
	ListTemplates(ctx context.Context, in *ListTemplatesRequest, opts ...grpc.CallOption) (*ListTemplatesResponse, error)
	UpdateTemplate(ctx context.Context, in *UpdateTemplateRequest, opts ...grpc.CallOption) (*UpdateTemplateResponse, error)
	SetTemplateActive(ctx context.Context, in *SetTemplateActiveRequest, opts ...grpc.CallOption) (*SetTemplateActiveResponse, error)
	DeleteTemplate(ctx context.Context, in *DeleteTemplateRequest, opts ...grpc.CallOption) (*emptypb.Empty, error)
	GenerateInstances(ctx context.Context, in *GenerateInstancesRequest, opts ...grpc.CallOption) (*GenerateInstancesResponse, error)
}

type recurringServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewRecurringServiceClient(cc grpc.ClientConnInterface) RecurringServiceClient {
	return &recurringServiceClient{cc}
}

func (c *recurringServiceClient) CreateTemplate(ctx context.Context, in *CreateTemplateRequest, opts ...grpc.CallOption) (*CreateTemplateResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CreateTemplateResponse)
	err := c.cc.Invoke(ctx, RecurringService_CreateTemplate_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *recurringServiceClient) GetTemplate(ctx context.Context, in *GetTemplateRequest, opts ...grpc.CallOption) (*GetTemplateResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetTemplateResponse)
	err := c.cc.Invoke(ctx, RecurringService_GetTemplate_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *recurringServiceClient) ListTemplates(ctx context.Context, in *ListTemplatesRequest, opts ...grpc.CallOption) (*ListTemplatesResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListTemplatesResponse)
	err := c.cc.Invoke(ctx, RecurringService_ListTemplates_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *recurringServiceClient) UpdateTemplate(ctx context.Context, in *UpdateTemplateRequest, opts ...grpc.CallOption) (*UpdateTemplateResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(UpdateTemplateResponse)
	err := c.cc.Invoke(ctx, RecurringService_UpdateTemplate_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *recurringServiceClient) SetTemplateActive(ctx context.Context, in *SetTemplateActiveRequest, opts ...grpc.CallOption) (*SetTemplateActiveResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(SetTemplateActiveResponse)
	err := c.cc.Invoke(ctx, RecurringService_SetTemplateActive_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *recurringServiceClient) DeleteTemplate(ctx context.Context, in *DeleteTemplateRequest, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(emptypb.Empty)
	err := c.cc.Invoke(ctx, RecurringService_DeleteTemplate_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *recurringServiceClient) GenerateInstances(ctx context.Context, in *GenerateInstancesRequest, opts ...grpc.CallOption) (*GenerateInstancesResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GenerateInstancesResponse)
	err := c.cc.Invoke(ctx, RecurringService_GenerateInstances_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// RecurringServiceServer is the server API for RecurringService service.
// All implementations must embed UnimplementedRecurringServiceServer
// for forward compatibility.
type RecurringServiceServer interface {
	CreateTemplate(context.Context, *CreateTemplateRequest) (*CreateTemplateResponse, error)
	GetTemplate(context.Context, *GetTemplateRequest) (*GetTemplateResponse, error)
	ListTemplates(context.Context, *ListTemplatesRequest) (*ListTemplatesResponse, error)
	UpdateTemplate(context.Context, *UpdateTemplateRequest) (*UpdateTemplateResponse, error)
	SetTemplateActive(context.Context, *SetTemplateActiveRequest) (*SetTemplateActiveResponse, error)
	DeleteTemplate(context.Context, *DeleteTemplateRequest) (*emptypb.Empty, error)
	GenerateInstances(context.Context, *GenerateInstancesRequest) (*GenerateInstancesResponse, error)
	mustEmbedUnimplementedRecurringServiceServer()
}

// UnimplementedRecurringServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedRecurringServiceServer struct{}

func (UnimplementedRecurringServiceServer) CreateTemplate(context.Context, *CreateTemplateRequest) (*CreateTemplateResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CreateTemplate not implemented")
}
func (UnimplementedRecurringServiceServer) GetTemplate(context.Context, *GetTemplateRequest) (*GetTemplateResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetTemplate not implemented")
}
func (UnimplementedRecurringServiceServer) ListTemplates(context.Context, *ListTemplatesRequest) (*ListTemplatesResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListTemplates not implemented")
}
func (UnimplementedRecurringServiceServer) UpdateTemplate(context.Context, *UpdateTemplateRequest) (*UpdateTemplateResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method UpdateTemplate not implemented")
}
func (UnimplementedRecurringServiceServer) SetTemplateActive(context.Context, *SetTemplateActiveRequest) (*SetTemplateActiveResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SetTemplateActive not implemented")
}
func (UnimplementedRecurringServiceServer) DeleteTemplate(context.Context, *DeleteTemplateRequest) (*emptypb.Empty, error) {
	return nil, status.Errorf(codes.Unimplemented, "method DeleteTemplate not implemented")
}
func (UnimplementedRecurringServiceServer) GenerateInstances(context.Context, *GenerateInstancesRequest) (*GenerateInstancesResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GenerateInstances not implemented")
}
func (UnimplementedRecurringServiceServer) mustEmbedUnimplementedRecurringServiceServer() {}
func (UnimplementedRecurringServiceServer) testEmbeddedByValue()                          {}

// UnsafeRecurringServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to RecurringServiceServer will
// result in compilation errors.
type UnsafeRecurringServiceServer interface {
	mustEmbedUnimplementedRecurringServiceServer()
}

func RegisterRecurringServiceServer(s grpc.ServiceRegistrar, srv RecurringServiceServer) {
	// If the following call pancis, it indicates UnimplementedRecurringServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&RecurringService_ServiceDesc, srv)
}

func _RecurringService_CreateTemplate_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreateTemplateRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RecurringServiceServer).CreateTemplate(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: RecurringService_CreateTemplate_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RecurringServiceServer).CreateTemplate(ctx, req.(*CreateTemplateRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _RecurringService_GetTemplate_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetTemplateRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RecurringServiceServer).GetTemplate(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: RecurringService_GetTemplate_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RecurringServiceServer).GetTemplate(ctx, req.(*GetTemplateRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _RecurringService_ListTemplates_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListTemplatesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RecurringServiceServer).ListTemplates(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: RecurringService_ListTemplates_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RecurringServiceServer).ListTemplates(ctx, req.(*ListTemplatesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _RecurringService_UpdateTemplate_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(UpdateTemplateRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RecurringServiceServer).UpdateTemplate(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: RecurringService_UpdateTemplate_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RecurringServiceServer).UpdateTemplate(ctx, req.(*UpdateTemplateRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _RecurringService_SetTemplateActive_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SetTemplateActiveRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RecurringServiceServer).SetTemplateActive(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: RecurringService_SetTemplateActive_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RecurringServiceServer).SetTemplateActive(ctx, req.(*SetTemplateActiveRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _RecurringService_DeleteTemplate_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DeleteTemplateRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RecurringServiceServer).DeleteTemplate(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: RecurringService_DeleteTemplate_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RecurringServiceServer).DeleteTemplate(ctx, req.(*DeleteTemplateRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _RecurringService_GenerateInstances_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GenerateInstancesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RecurringServiceServer).GenerateInstances(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: RecurringService_GenerateInstances_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RecurringServiceServer).GenerateInstances(ctx, req.(*GenerateInstancesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// RecurringService_ServiceDesc is the grpc.ServiceDesc for RecurringService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var RecurringService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "recurring.v1.RecurringService",
	HandlerType: (*RecurringServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "CreateTemplate",
			Handler:    _RecurringService_CreateTemplate_Handler,
		},
		{
			MethodName: "GetTemplate",
			Handler:    _RecurringService_GetTemplate_Handler,
		},
		{
			MethodName: "ListTemplates",
			Handler:    _RecurringService_ListTemplates_Handler,
		},
		{
			MethodName: "UpdateTemplate",
			Handler:    _RecurringService_UpdateTemplate_Handler,
		},
		{
			MethodName: "SetTemplateActive",
			Handler:    _RecurringService_SetTemplateActive_Handler,
		},
		{
			MethodName: "DeleteTemplate",
			Handler:    _RecurringService_DeleteTemplate_Handler,
		},
		{
			MethodName: "GenerateInstances",
			Handler:    _RecurringService_GenerateInstances_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "api/proto/recurring/v1/recurring.proto",
}
