package transport

import (
	"crypto/tls"
	"crypto/x509"
	"net/http"
	"os"

	"github.com/pkg/errors"
	"github.com/simplecontainer/apimethod/pkg/configuration"
)

func NewHttpClient(config *configuration.Transport) (*http.Client, error) {
	if config == nil {
		return &http.Client{}, nil
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()

	if config.CAFile != "" || config.Insecure {
		tlsConfig := &tls.Config{
			InsecureSkipVerify: config.Insecure,
		}

		if config.CAFile != "" {
			PEMCertificate, err := os.ReadFile(config.CAFile)

			if err != nil {
				return nil, errors.Wrapf(err, "failed to read CA bundle %s", config.CAFile)
			}

			CAPool := x509.NewCertPool()

			if !CAPool.AppendCertsFromPEM(PEMCertificate) {
				return nil, errors.Errorf("no certificates found in %s", config.CAFile)
			}

			tlsConfig.RootCAs = CAPool
		}

		transport.TLSClientConfig = tlsConfig
	}

	return &http.Client{
		Timeout:   config.Timeout,
		Transport: transport,
	}, nil
}
