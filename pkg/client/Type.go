package client

import (
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/simplecontainer/apimethod/pkg/cache"
	"github.com/simplecontainer/apimethod/pkg/configuration"
	"github.com/simplecontainer/apimethod/pkg/metrics"
	"github.com/simplecontainer/apimethod/pkg/network"
	"github.com/spf13/viper"
)

type Client struct {
	Configuration *configuration.Configuration
	Executor      *network.Executor
	Cache         *cache.Store
	Metrics       *metrics.Requests
	Registry      *prometheus.Registry
	Viper         *viper.Viper
	Version       string
	Out           io.Writer
	Err           io.Writer
}
