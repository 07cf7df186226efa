package client

import (
	"net/http"
	"os"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/simplecontainer/apimethod/pkg/cache"
	"github.com/simplecontainer/apimethod/pkg/configuration"
	"github.com/simplecontainer/apimethod/pkg/contracts/itransport"
	"github.com/simplecontainer/apimethod/pkg/logger"
	"github.com/simplecontainer/apimethod/pkg/metrics"
	"github.com/simplecontainer/apimethod/pkg/network"
	"github.com/simplecontainer/apimethod/pkg/transport"
	"github.com/spf13/viper"
)

func New(v *viper.Viper) *Client {
	return &Client{
		Registry: prometheus.NewRegistry(),
		Viper:    v,
		Out:      os.Stdout,
		Err:      os.Stderr,
	}
}

// Load reads the configuration at configPath, or the default location when
// configPath is empty.
func (cli *Client) Load(configPath string) error {
	config, err := configuration.Load(cli.Viper, configPath)

	if err != nil {
		return err
	}

	cli.Configuration = config

	return nil
}

// Wire builds the executor from the loaded configuration.
func (cli *Client) Wire() error {
	if cli.Configuration == nil {
		return errors.New("configuration is not loaded")
	}

	config := cli.Configuration

	httpClient, err := transport.NewHttpClient(config.Transport)

	if err != nil {
		return errors.Wrap(err, "failed to create http client")
	}

	var next itransport.Transport = httpClient

	if config.Metrics {
		cli.Metrics, err = metrics.NewRequests(cli.Registry)

		if err != nil {
			return errors.Wrap(err, "failed to register metrics")
		}

		next = transport.NewInstrumented(httpClient, cli.Metrics, logger.Log)
	}

	opts := []network.Option{network.WithLogger(logger.Log)}

	if config.Cache.Enabled {
		cli.Cache = cache.New(config.Cache.CleanupInterval)
		opts = append(opts, network.WithCache(cli.Cache))
	}

	cli.Executor = network.New(next, opts...)

	return nil
}

// Descriptor layers the configured default headers under the descriptor's own.
func (cli *Client) Descriptor(descriptor network.Descriptor) network.Descriptor {
	merged := descriptor.Clone()

	if cli.Configuration == nil || len(cli.Configuration.Headers) == 0 {
		return merged
	}

	headers := make(map[string]string, len(cli.Configuration.Headers)+len(descriptor.Headers))

	for key, value := range cli.Configuration.Headers {
		headers[http.CanonicalHeaderKey(key)] = value
	}

	for key, value := range descriptor.Headers {
		headers[http.CanonicalHeaderKey(key)] = value
	}

	merged.Headers = headers

	return merged
}
