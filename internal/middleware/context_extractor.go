// internal/middleware/context_extractor.go
package middleware

import (
	"context"
	"net"
	"strings"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/status"
)

// ContextKeys for storing request metadata
type ContextKey string

const (
	ContextKeyIPAddress ContextKey = "ip_address"
	ContextKeyUserAgent ContextKey = "user_agent"
	ContextKeyOwnerID   ContextKey = "owner_id"
)

// Metadata header carrying the authenticated owner id. Authentication itself
// happens upstream; this engine only scopes by the id it is handed.
const ownerIDHeader = "x-owner-id"

// Infrastructure endpoints that carry no owner.
var ownerExemptServices = []string{
	"/grpc.health.v1.Health/",
	"/grpc.reflection.",
}

func ownerExempt(fullMethod string) bool {
	for _, prefix := range ownerExemptServices {
		if strings.HasPrefix(fullMethod, prefix) {
			return true
		}
	}
	return false
}

// OwnerExtractorInterceptor pulls the owner id and client metadata into the
// request context. Every core operation requires an explicit owner; requests
// without one are rejected rather than falling back to a default.
type OwnerExtractorInterceptor struct{}

// NewOwnerExtractorInterceptor creates a new owner extractor interceptor
func NewOwnerExtractorInterceptor() *OwnerExtractorInterceptor {
	return &OwnerExtractorInterceptor{}
}

// Unary returns a unary server interceptor for owner extraction
func (m *OwnerExtractorInterceptor) Unary() grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context,
		req interface{},
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (interface{}, error) {
		if ownerExempt(info.FullMethod) {
			return handler(ctx, req)
		}
		enrichedCtx, err := m.enrichContext(ctx)
		if err != nil {
			return nil, err
		}
		return handler(enrichedCtx, req)
	}
}

// Stream returns a stream server interceptor for owner extraction
func (m *OwnerExtractorInterceptor) Stream() grpc.StreamServerInterceptor {
	return func(
		srv interface{},
		stream grpc.ServerStream,
		info *grpc.StreamServerInfo,
		handler grpc.StreamHandler,
	) error {
		if ownerExempt(info.FullMethod) {
			return handler(srv, stream)
		}
		enrichedCtx, err := m.enrichContext(stream.Context())
		if err != nil {
			return err
		}

		wrappedStream := &enrichedServerStream{
			ServerStream: stream,
			ctx:          enrichedCtx,
		}

		return handler(srv, wrappedStream)
	}
}

func (m *OwnerExtractorInterceptor) enrichContext(ctx context.Context) (context.Context, error) {
	if ip := extractIPAddress(ctx); ip != "" {
		ctx = context.WithValue(ctx, ContextKeyIPAddress, ip)
	}
	if ua := extractUserAgent(ctx); ua != "" {
		ctx = context.WithValue(ctx, ContextKeyUserAgent, ua)
	}

	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "missing request metadata")
	}
	values := md.Get(ownerIDHeader)
	if len(values) == 0 || values[0] == "" {
		return nil, status.Errorf(codes.Unauthenticated, "missing %s metadata", ownerIDHeader)
	}
	ownerID, err := uuid.Parse(values[0])
	if err != nil {
		return nil, status.Errorf(codes.Unauthenticated, "invalid %s metadata", ownerIDHeader)
	}

	return WithOwnerID(ctx, ownerID), nil
}

// WithOwnerID returns a context carrying the owner id. Exported for tests
// and in-process callers such as the scheduler.
func WithOwnerID(ctx context.Context, ownerID uuid.UUID) context.Context {
	return context.WithValue(ctx, ContextKeyOwnerID, ownerID)
}

// OwnerIDFromContext extracts the owner id from context. Operations invoked
// without an owner are a programming error and surface as Unauthenticated.
func OwnerIDFromContext(ctx context.Context) (uuid.UUID, error) {
	if ownerID, ok := ctx.Value(ContextKeyOwnerID).(uuid.UUID); ok && ownerID != uuid.Nil {
		return ownerID, nil
	}
	return uuid.Nil, status.Error(codes.Unauthenticated, "no owner in request context")
}

// extractIPAddress extracts the client IP address from the context
func extractIPAddress(ctx context.Context) string {
	p, ok := peer.FromContext(ctx)
	if !ok {
		return ""
	}

	if tcpAddr, ok := p.Addr.(*net.TCPAddr); ok {
		return tcpAddr.IP.String()
	}

	addr := p.Addr.String()
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		return addr
	}
	return host
}

// extractUserAgent extracts the user agent from gRPC metadata
func extractUserAgent(ctx context.Context) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}

	userAgentHeaders := []string{
		"user-agent",
		"grpc-user-agent",
		"x-user-agent",
	}

	for _, header := range userAgentHeaders {
		if values := md.Get(header); len(values) > 0 {
			return values[0]
		}
	}

	return ""
}

// enrichedServerStream wraps grpc.ServerStream with enriched context
type enrichedServerStream struct {
	grpc.ServerStream
	ctx context.Context
}

func (s *enrichedServerStream) Context() context.Context {
	return s.ctx
}

// GetIPAddressFromContext extracts IP address from context
func GetIPAddressFromContext(ctx context.Context) string {
	if ip, ok := ctx.Value(ContextKeyIPAddress).(string); ok {
		return ip
	}
	return ""
}

// GetUserAgentFromContext extracts user agent from context
func GetUserAgentFromContext(ctx context.Context) string {
	if ua, ok := ctx.Value(ContextKeyUserAgent).(string); ok {
		return ua
	}
	return ""
}

// ClientInfo carries request metadata for logging
type ClientInfo struct {
	IPAddress string
	UserAgent string
	OwnerID   string
}

// GetClientInfoFromContext extracts all client information from context
func GetClientInfoFromContext(ctx context.Context) *ClientInfo {
	info := &ClientInfo{
		IPAddress: GetIPAddressFromContext(ctx),
		UserAgent: GetUserAgentFromContext(ctx),
	}
	if ownerID, err := OwnerIDFromContext(ctx); err == nil {
		info.OwnerID = ownerID.String()
	}
	return info
}
