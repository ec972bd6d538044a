package config

import (
	"errors"
	"flag"
	"net"
	"os"
	"strconv"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses the process command line into a partial config.
//
// Flags:
//
//	-c/-config json file path with configs
//	-registry-file configuration store export used on non-Windows hosts
//	-documents-folder folder name created inside the user's documents
//	-db settings database DSN
//	-directory-url city directory base URL
//	-request-timeout directory request timeout (e.g., "10s")
//	-a directory server listen address in format [host]:[port]
//	-cities-file city list served by the directory server
//	-executable client binary inside the startup path
//	-reporter notice reporter kind ("dialog" or "log")
//	-cities print the city list and exit
//	-log-level logger level
//	-log-file JSON log file path
//
// Positional arguments remaining after the flags end up in Args.
func ParseFlags() *StructuredConfig {
	fs := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	return parseFlags(fs, os.Args[1:])
}

func parseFlags(fs *flag.FlagSet, args []string) *StructuredConfig {
	var directoryServerAddress NetAddress
	var jsonConfigPath string
	var registryFile string
	var documentsFolder string
	var databaseDSN string
	var directoryURL string
	var requestTimeout time.Duration
	var citiesFile string
	var executable string
	var reporter string
	var listCities bool
	var logLevel string
	var logFile string

	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&registryFile, "registry-file", "", "Configuration store export (JSON)")
	fs.StringVar(&documentsFolder, "documents-folder", "", "Folder name inside the user's documents")
	fs.StringVar(&databaseDSN, "db", "", "Settings database DSN")
	fs.StringVar(&directoryURL, "directory-url", "", "City directory base URL")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Directory request timeout (e.g., 10s)")
	fs.Var(&directoryServerAddress, "a", "Directory server address host:port")
	fs.StringVar(&citiesFile, "cities-file", "", "City list served by the directory server")
	fs.StringVar(&executable, "executable", "", "Client executable inside the startup path")
	fs.StringVar(&reporter, "reporter", "", "Notice reporter: dialog or log")
	fs.BoolVar(&listCities, "cities", false, "Print the city list and exit")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&logFile, "log-file", "", "JSON log file path")

	// ExitOnError sets exit on failure; the error is unreachable otherwise.
	_ = fs.Parse(args)

	return &StructuredConfig{
		Registry: Registry{FilePath: registryFile},
		Paths:    Paths{DocumentsFolder: documentsFolder},
		Storage:  Storage{DSN: databaseDSN},
		Directory: Directory{
			URL:            directoryURL,
			RequestTimeout: requestTimeout,
		},
		DirectoryServer: DirectoryServer{
			Address:    directoryServerAddress.String(),
			CitiesFile: citiesFile,
		},
		Launcher: Launcher{
			Executable: executable,
			Reporter:   reporter,
			ListCities: listCities,
		},
		Log: Log{
			Level:    logLevel,
			FilePath: logFile,
		},
		JSONFilePath: jsonConfigPath,
		Args:         fs.Args(),
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	host, rawPort, err := net.SplitHostPort(s)
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(rawPort)
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number is an integer in range 1..65535")
	}

	if host != "localhost" && net.ParseIP(host) == nil {
		return errors.New("incorrect IP-address provided")
	}

	a.Host = host
	a.Port = port
	return nil
}
