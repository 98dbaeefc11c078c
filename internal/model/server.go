package model

import (
	"context"
	"net"
)

// SecurityLayer opens the listener a server accepts connections on (plain TCP or TLS).
type SecurityLayer interface {
	Listen(protocol, addr string) (net.Listener, error)
}

// Server is a long-running network server (HTTP API or ops gRPC).
type Server interface {
	Start(securityLayer SecurityLayer) error
	Stop(ctx context.Context) error
	Address() string
	Name() string
}
