package network

import (
	"time"

	"github.com/simplecontainer/apimethod/pkg/cache"
	"github.com/simplecontainer/apimethod/pkg/contracts/itransport"
	"go.uber.org/zap"
)

type Method string

const (
	GET     Method = "GET"
	HEAD    Method = "HEAD"
	OPTIONS Method = "OPTIONS"
	CONNECT Method = "CONNECT"
	TRACE   Method = "TRACE"
	POST    Method = "POST"
	PUT     Method = "PUT"
	PATCH   Method = "PATCH"
	DELETE  Method = "DELETE"
)

// Descriptor is the static configuration of one request. The executor never
// mutates it.
type Descriptor struct {
	URL     string            `yaml:"url" json:"url" validate:"required,http_url"`
	Method  Method            `yaml:"method" json:"method" validate:"required,oneof=GET HEAD OPTIONS CONNECT TRACE POST PUT PATCH DELETE"`
	Headers map[string]string `yaml:"headers,omitempty" json:"headers,omitempty"`
	Cache   *Cache            `yaml:"cache,omitempty" json:"cache,omitempty" validate:"omitempty"`
}

// Cache is an explicit cache or revalidation directive. Without it no
// response is ever reused.
type Cache struct {
	Revalidate time.Duration `yaml:"revalidate,omitempty" json:"revalidate,omitempty" validate:"gte=0"`
	NoStore    bool          `yaml:"noStore,omitempty" json:"noStore,omitempty"`
	Tags       []string      `yaml:"tags,omitempty" json:"tags,omitempty" validate:"dive,required"`
}

// Body is the optional request payload; nil means absent.
type Body map[string]any

// File is the on-disk form of a descriptor together with the body to send.
type File struct {
	Descriptor `yaml:",inline"`
	Body       Body `yaml:"body,omitempty"`
}

type Executor struct {
	transport itransport.Transport
	cache     *cache.Store
	logger    *zap.Logger
}

type Option func(*Executor)

// APIMethod binds a descriptor to an executor with declared input and output
// shapes. Output decoding is not validated against TOutput beyond what the
// JSON decoder enforces.
type APIMethod[TInput any, TOutput any] struct {
	executor   *Executor
	descriptor Descriptor
}
