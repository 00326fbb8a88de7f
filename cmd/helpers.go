package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/rafiki270/XCUIDebug/internal/config"
	"github.com/rafiki270/XCUIDebug/internal/host"
)

// newProvider builds the host provider from flags, falling back to the
// optional config file for unset values. A dump file wins over a host URL as
// the source; when both are given the URL still serves state probes, so an
// offline dump can be re-checked against a live host.
func newProvider(cmd *cobra.Command) (*host.Provider, error) {
	file, _ := cmd.Flags().GetString("file")
	hostURL, _ := cmd.Flags().GetString("host")
	timeoutMs, _ := cmd.Flags().GetInt("timeout")

	cfg := loadConfig()
	if file == "" {
		file = cfg.File
	}
	if hostURL == "" {
		hostURL = cfg.Host
	}
	if !cmd.Flags().Changed("timeout") && cfg.TimeoutMS > 0 {
		timeoutMs = cfg.TimeoutMS
	}
	timeout := time.Duration(timeoutMs) * time.Millisecond

	switch {
	case file != "":
		p := &host.Provider{Source: host.FileSource{Path: file}}
		if hostURL != "" {
			p.Prober = host.NewClient(hostURL, timeout)
		}
		return p, nil
	case hostURL != "":
		client := host.NewClient(hostURL, timeout)
		return &host.Provider{Source: client, Prober: client}, nil
	default:
		return nil, host.ErrNoSource
	}
}

func loadConfig() config.Config {
	path, err := config.Path()
	if err != nil {
		return config.Config{}
	}
	cfg, err := config.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: ignoring config file: %v\n", err)
		return config.Config{}
	}
	return cfg
}
