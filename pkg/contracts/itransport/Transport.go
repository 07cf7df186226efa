package itransport

import "net/http"

//go:generate mockgen -source=Transport.go -destination=mock/Transport.go

// Transport issues a single HTTP round trip. *http.Client satisfies it.
type Transport interface {
	Do(req *http.Request) (*http.Response, error)
}
