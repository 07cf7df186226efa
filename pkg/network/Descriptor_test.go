package network

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadDescriptor(t *testing.T) {
	definition := `
url: https://example.com/api/blogs
method: post
headers:
  Authorization: Bearer token
cache:
  revalidate: 30s
  tags:
    - blogs
body:
  title: New Blog
  tags:
    - go
`

	file, err := ReadDescriptor(strings.NewReader(definition))
	require.NoError(t, err)

	assert.Equal(t, "https://example.com/api/blogs", file.URL)
	assert.Equal(t, POST, file.Method)
	assert.Equal(t, map[string]string{"Authorization": "Bearer token"}, file.Headers)
	assert.Equal(t, &Cache{Revalidate: 30 * time.Second, Tags: []string{"blogs"}}, file.Cache)
	assert.Equal(t, "New Blog", file.Body["title"])
	assert.NoError(t, file.Validate())
}

func TestReadDescriptorUnknownField(t *testing.T) {
	_, err := ReadDescriptor(strings.NewReader("url: https://example.com\nverb: GET\n"))
	assert.Error(t, err)
}

func TestLoadDescriptorMissing(t *testing.T) {
	_, err := LoadDescriptor("/nonexistent/descriptor.yaml")
	assert.ErrorContains(t, err, "failed to open descriptor")
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		name       string
		descriptor Descriptor
		valid      bool
	}{
		{"Valid", Descriptor{URL: "http://localhost:8080/api", Method: GET}, true},
		{"Missing URL", Descriptor{Method: GET}, false},
		{"Relative URL", Descriptor{URL: "/api/blogs", Method: GET}, false},
		{"Unsupported scheme", Descriptor{URL: "ftp://example.com/file", Method: GET}, false},
		{"Unknown method", Descriptor{URL: "https://example.com", Method: "FETCH"}, false},
		{"Invalid header name", Descriptor{URL: "https://example.com", Method: GET, Headers: map[string]string{"Bad Header": "1"}}, false},
		{"Invalid header value", Descriptor{URL: "https://example.com", Method: GET, Headers: map[string]string{"X-A": "a\nb"}}, false},
		{"Conflicting cache", Descriptor{URL: "https://example.com", Method: GET, Cache: &Cache{NoStore: true, Revalidate: time.Second}}, false},
		{"Negative revalidate", Descriptor{URL: "https://example.com", Method: GET, Cache: &Cache{Revalidate: -time.Second}}, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.descriptor.Validate()

			if tc.valid {
				assert.NoError(t, err)
			} else {
				assert.ErrorContains(t, err, "invalid descriptor")
			}
		})
	}
}

func TestHeader(t *testing.T) {
	descriptor := Descriptor{
		URL:     "https://example.com",
		Method:  GET,
		Headers: map[string]string{"Cache-Control": "no-cache"},
		Cache:   &Cache{Revalidate: time.Minute},
	}

	assert.Equal(t, http.Header{
		"Content-Type":  []string{"application/json"},
		"Cache-Control": []string{"no-cache"},
	}, descriptor.Header())
}

func TestAbsent(t *testing.T) {
	var typed *item
	var body Body

	assert.True(t, Absent(nil))
	assert.True(t, Absent(typed))
	assert.True(t, Absent(body))
	assert.False(t, Absent(Body{}))
	assert.False(t, Absent(item{}))
	assert.False(t, Absent(0))
}

func TestParseMethod(t *testing.T) {
	assert.Equal(t, PATCH, ParseMethod(" patch "))
	assert.True(t, POST.HasBody())
	assert.False(t, TRACE.HasBody())
	assert.True(t, HEAD.Cacheable())
	assert.False(t, PUT.Cacheable())
}
