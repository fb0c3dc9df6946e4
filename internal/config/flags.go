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

// ParseFlags parses the gateway command-line flags from args
// (normally os.Args[1:]).
//
// Flags:
//
//	-a                   HTTP server address in format [host]:[port]
//	-grpc-address        gRPC server address in format [host]:[port]
//	-request-timeout     inbound request timeout (e.g. "30s")
//	-c/-config           JSON config file path
//	-d                   dispatch ledger DSN
//	-lalamove-host       provider hostname
//	-lalamove-key        provider app key
//	-lalamove-secret     provider app secret
//	-lalamove-market     provider market
//	-dispatch-timeout    outbound per-attempt timeout (e.g. "10s")
//	-connect-timeout     outbound connect timeout (e.g. "3s")
//	-external-api        generic external API base URL
//	-debug               keep debug logs enabled
//	-issue-token         print a bearer token for the given subject and exit
func ParseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("gateway", flag.ContinueOnError)

	var serverAddress, grpcServerAddress NetAddress
	var requestTimeout, dispatchTimeout, connectTimeout time.Duration
	var jsonConfigPath, databaseDSN string
	var lalamoveHost, lalamoveKey, lalamoveSecret, lalamoveMarket string
	var externalAPI, issueTokenFor string
	var debug bool

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.Var(&grpcServerAddress, "grpc-address", "Net grpc server address host:port")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Inbound request timeout (e.g., 30s, 1m)")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&databaseDSN, "d", "", "Dispatch ledger DSN")
	fs.StringVar(&lalamoveHost, "lalamove-host", "", "Lalamove API hostname")
	fs.StringVar(&lalamoveKey, "lalamove-key", "", "Lalamove app key")
	fs.StringVar(&lalamoveSecret, "lalamove-secret", "", "Lalamove app secret")
	fs.StringVar(&lalamoveMarket, "lalamove-market", "", "Lalamove market")
	fs.DurationVar(&dispatchTimeout, "dispatch-timeout", 0, "Outbound request timeout (e.g., 10s)")
	fs.DurationVar(&connectTimeout, "connect-timeout", 0, "Outbound connect timeout (e.g., 3s)")
	fs.StringVar(&externalAPI, "external-api", "", "Generic external API base URL")
	fs.BoolVar(&debug, "debug", false, "Keep debug logs enabled")
	fs.StringVar(&issueTokenFor, "issue-token", "", "Print a bearer token for this subject and exit")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			DebugMode: debug,
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			GRPCAddress:    grpcServerAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Dispatcher: Dispatcher{
			ConnectTimeout: connectTimeout,
			RequestTimeout: dispatchTimeout,
		},
		Lalamove: Lalamove{
			Hostname:  lalamoveHost,
			AppKey:    lalamoveKey,
			AppSecret: lalamoveSecret,
			Market:    lalamoveMarket,
		},
		ExternalAPI: ExternalAPI{
			BaseURL: externalAPI,
		},
		Security: Security{
			IssueTokenFor: issueTokenFor,
		},
		Storage: Storage{
			DB: DB{DSN: databaseDSN},
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
// It validates the port range, checks IP correctness unless host is
// "localhost" or empty, and returns an error if the format or values are
// invalid.
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

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" && host != "" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
