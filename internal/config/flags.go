package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags from args (normally os.Args[1:]).
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-grpc-address grpc health server address in format [host]:[port]
//	-d database DSN
//	-db-driver database driver (postgres, sqlite)
//	-c/-config json file path with configs
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "1h", "30m")
//	-password-hash-cost bcrypt cost factor
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-log-level minimum log level
//	-cookie-name session cookie name
//	-cookie-domain session cookie domain
//	-cookie-same-site session cookie SameSite mode (strict, lax, none)
//	-cookie-insecure drop the Secure cookie attribute
func ParseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress, grpcServerAddress NetAddress
	var databaseDSN, databaseDriver string
	var jsonConfigPath string
	var tokenSignKey, tokenIssuer string
	var tokenDuration, requestTimeout time.Duration
	var passwordHashCost int
	var logLevel string
	var cookieName, cookieDomain, cookieSameSite string
	var cookieInsecure bool

	fs := flag.NewFlagSet("go-session-auth", flag.ContinueOnError)

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.Var(&grpcServerAddress, "grpc-address", "Net grpc health server address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&databaseDriver, "db-driver", "", "Database driver (postgres, sqlite)")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	fs.IntVar(&passwordHashCost, "password-hash-cost", 0, "Bcrypt cost factor")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&logLevel, "log-level", "", "Minimum log level")
	fs.StringVar(&cookieName, "cookie-name", "", "Session cookie name")
	fs.StringVar(&cookieDomain, "cookie-domain", "", "Session cookie domain")
	fs.StringVar(&cookieSameSite, "cookie-same-site", "", "Session cookie SameSite mode")
	fs.BoolVar(&cookieInsecure, "cookie-insecure", false, "Drop the Secure cookie attribute")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			TokenSignKey:     tokenSignKey,
			TokenIssuer:      tokenIssuer,
			TokenDuration:    tokenDuration,
			PasswordHashCost: passwordHashCost,
			LogLevel:         logLevel,
		},
		Storage: Storage{
			DB: DB{
				Driver: databaseDriver,
				DSN:    databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			GRPCAddress:    grpcServerAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Cookie: Cookie{
			Name:     cookieName,
			Domain:   cookieDomain,
			SameSite: cookieSameSite,
			Insecure: cookieInsecure,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is empty or "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	// empty host listens on all interfaces
	if host != "" && host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
