package config

import (
	"flag"
	"fmt"
	"net"
	"strconv"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses the server command-line flags from args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-grpc-address grpc server address in format [host]:[port]
//	-d database DSN
//	-c/-config json or yaml file path with configs
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "168h")
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-session-secret OAuth state cookie secret
//	-frontend-url frontend origin
//	-demo-user demo user id served from local storage
func ParseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("go-photo-album", flag.ContinueOnError)

	var serverAddress, grpcServerAddress NetAddress
	var databaseDSN string
	var configPath string
	var tokenSignKey string
	var tokenIssuer string
	var tokenDuration time.Duration
	var requestTimeout time.Duration
	var sessionSecret string
	var frontendURL string
	var demoUserID string

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.Var(&grpcServerAddress, "grpc-address", "Net grpc server address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&configPath, "c", "", "JSON or YAML config file path")
	fs.StringVar(&configPath, "config", "", "JSON or YAML config file path (alias)")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 168h)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&sessionSecret, "session-secret", "", "OAuth state cookie secret")
	fs.StringVar(&frontendURL, "frontend-url", "", "Frontend origin")
	fs.StringVar(&demoUserID, "demo-user", "", "Demo user id")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
			SessionSecret: sessionSecret,
			FrontendURL:   frontendURL,
			DemoUserID:    demoUserID,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			GRPCAddress:    grpcServerAddress.String(),
			RequestTimeout: requestTimeout,
		},
		FilePath: configPath,
	}, nil
}

// String returns host:port, or "" for the zero value.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}
	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set implements flag.Value. The host must be empty, "localhost" or an IP
// literal; IPv6 hosts are written in brackets.
func (a *NetAddress) Set(s string) error {
	host, rawPort, err := net.SplitHostPort(s)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidNetAddress, err)
	}

	port, err := strconv.Atoi(rawPort)
	if err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("%w: port %q is not in 1..65535", ErrInvalidNetAddress, rawPort)
	}

	if host != "" && host != "localhost" && net.ParseIP(host) == nil {
		return fmt.Errorf("%w: %q is not an IP address", ErrInvalidNetAddress, host)
	}

	a.Host, a.Port = host, port
	return nil
}
