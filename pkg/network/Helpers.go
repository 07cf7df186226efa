package network

import (
	"fmt"
	"net/http"
	"reflect"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/simplecontainer/apimethod/pkg/cache"
	"github.com/simplecontainer/apimethod/pkg/static"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func (method Method) HasBody() bool {
	switch method {
	case GET, HEAD, OPTIONS, CONNECT, TRACE:
		return false
	default:
		return true
	}
}

func (method Method) Cacheable() bool {
	return method == GET || method == HEAD
}

func ParseMethod(method string) Method {
	return Method(strings.ToUpper(strings.TrimSpace(method)))
}

// Reusable reports whether a response may be served again inside the
// revalidation window.
func (c *Cache) Reusable() bool {
	return c != nil && !c.NoStore && c.Revalidate > 0
}

func (c *Cache) Directive() string {
	switch {
	case c == nil:
		return ""
	case c.NoStore:
		return "no-store"
	case c.Revalidate > 0:
		return fmt.Sprintf("max-age=%d", int64(c.Revalidate.Seconds()))
	default:
		return ""
	}
}

// Header applies the default content type first and then every descriptor
// header on top of it.
func (descriptor Descriptor) Header() http.Header {
	header := http.Header{}
	header.Set(static.HEADER_CONTENT_TYPE, static.CONTENT_TYPE_JSON)

	for key, value := range descriptor.Headers {
		header.Set(key, value)
	}

	if directive := descriptor.Cache.Directive(); directive != "" && header.Get(static.HEADER_CACHE_CONTROL) == "" {
		header.Set(static.HEADER_CACHE_CONTROL, directive)
	}

	return header
}

// SendsBody reports whether body would be attached for this descriptor.
func (descriptor Descriptor) SendsBody(body any) bool {
	return descriptor.Method.HasBody() && !Absent(body)
}

func (descriptor Descriptor) CacheKey() string {
	return cache.Key(string(descriptor.Method), descriptor.URL, descriptor.Header())
}

func (descriptor Descriptor) Clone() Descriptor {
	clone := descriptor

	if descriptor.Headers != nil {
		clone.Headers = make(map[string]string, len(descriptor.Headers))
		for key, value := range descriptor.Headers {
			clone.Headers[key] = value
		}
	}

	if descriptor.Cache != nil {
		directive := *descriptor.Cache
		directive.Tags = append([]string(nil), descriptor.Cache.Tags...)
		clone.Cache = &directive
	}

	return clone
}

func Absent(body any) bool {
	if body == nil {
		return true
	}

	value := reflect.ValueOf(body)

	switch value.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return value.IsNil()
	default:
		return false
	}
}

func Ok(statusCode int) bool {
	return statusCode >= http.StatusOK && statusCode < http.StatusMultipleChoices
}

func ErrorMessage(err error) string {
	if err == nil || err.Error() == "" {
		return static.UNKNOWN_ERROR_MESSAGE
	}

	return err.Error()
}

func recovered(value any) string {
	if err, ok := value.(error); ok {
		return ErrorMessage(err)
	}

	return static.UNKNOWN_ERROR_MESSAGE
}

// message extracts the human readable error of a failed call. A missing or
// non-string message falls back to the status text.
func message(statusCode int, payload any) string {
	if fields, ok := payload.(map[string]any); ok {
		if msg, ok := fields[static.MESSAGE_FIELD].(string); ok && msg != "" {
			return msg
		}
	}

	if text := http.StatusText(statusCode); text != "" {
		return text
	}

	return static.UNKNOWN_ERROR_MESSAGE
}
