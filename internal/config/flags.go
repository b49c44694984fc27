package config

import (
	"errors"
	"flag"
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

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a control surface address in format [host]:[port]
//	-d local database DSN
//	-r remote service base URL
//	-c/-config json file path with configs
//	-request-timeout replay request timeout (e.g., "30s", "1m")
//	-tick-interval control loop tick period (e.g., "200ms")
//	-sync-interval background sync period (e.g., "5s")
//	-debounce-window publish debounce window (e.g., "200ms")
//	-log-file log file path (stdout when empty)
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var databaseDSN string
	var remoteAddress string
	var jsonConfigPath string
	var requestTimeout time.Duration
	var tickInterval time.Duration
	var syncInterval time.Duration
	var debounceWindow time.Duration
	var logFile string

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&remoteAddress, "r", "", "Remote service base URL")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Replay request timeout (e.g., 30s, 1m)")
	flag.DurationVar(&tickInterval, "tick-interval", 0, "Control loop tick period (e.g., 200ms)")
	flag.DurationVar(&syncInterval, "sync-interval", 0, "Background sync period (e.g., 5s)")
	flag.DurationVar(&debounceWindow, "debounce-window", 0, "Publish debounce window (e.g., 200ms)")
	flag.StringVar(&logFile, "log-file", "", "Log file path (stdout when empty)")

	flag.Parse()

	return &StructuredConfig{
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress: serverAddress.String(),
		},
		Adapter: Adapter{
			RemoteAddress:  remoteAddress,
			RequestTimeout: requestTimeout,
		},
		Workers: Workers{
			TickInterval:   tickInterval,
			SyncInterval:   syncInterval,
			DebounceWindow: debounceWindow,
		},
		Logging: Logging{
			File: logFile,
		},
		JSONFilePath: jsonConfigPath,
	}
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
// It validates the port range, checks IP correctness unless host is "localhost",
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

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
