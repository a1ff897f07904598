package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
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

// parseFlags parses configuration flags from args (without the program name).
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-db-driver database driver (sqlite3 or pgx)
//	-f avatar directory
//	-c/-config json file path with configs
//	-secret-key token signing key
//	-token-issuer token issuer name
//	-session-duration session lifetime (e.g., "24h")
//	-remember-duration remembered session lifetime (e.g., "8760h")
//	-reset-token-duration password reset link lifetime (e.g., "30m")
//	-page-size posts per page
//	-base-url external base URL used in mail links
//	-log-level log level
//	-request-timeout request timeout (e.g., "30s", "1m")
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("go-blog", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var serverAddress NetAddress
	var databaseDSN, databaseDriver string
	var avatarDir string
	var jsonConfigPath string
	var secretKey, tokenIssuer string
	var sessionDuration, rememberDuration, resetTokenDuration time.Duration
	var pageSize int
	var baseURL, logLevel string
	var requestTimeout time.Duration

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&databaseDriver, "db-driver", "", "Database driver (sqlite3 or pgx)")
	fs.StringVar(&avatarDir, "f", "", "Avatar directory")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&secretKey, "secret-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&sessionDuration, "session-duration", 0, "Session duration (e.g., 24h)")
	fs.DurationVar(&rememberDuration, "remember-duration", 0, "Remembered session duration (e.g., 8760h)")
	fs.DurationVar(&resetTokenDuration, "reset-token-duration", 0, "Password reset token duration (e.g., 30m)")
	fs.IntVar(&pageSize, "page-size", 0, "Posts per page")
	fs.StringVar(&baseURL, "base-url", "", "External base URL")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			SecretKey:          secretKey,
			TokenIssuer:        tokenIssuer,
			SessionDuration:    sessionDuration,
			RememberDuration:   rememberDuration,
			ResetTokenDuration: resetTokenDuration,
			PageSize:           pageSize,
			BaseURL:            baseURL,
			LogLevel:           logLevel,
		},
		Storage: Storage{
			DB: DB{
				Driver: databaseDriver,
				DSN:    databaseDSN,
			},
			Avatars: Avatars{
				Dir: avatarDir,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
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
// An empty host means all interfaces. Any other host must be "localhost" or
// a literal IP.
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

	if host != "" && host != "localhost" && net.ParseIP(host) == nil {
		return errors.New("incorrect IP-address provided")
	}

	a.Host = host
	a.Port = port
	return nil
}
