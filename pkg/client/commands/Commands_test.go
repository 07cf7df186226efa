package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/simplecontainer/apimethod/pkg/client"
	"github.com/simplecontainer/apimethod/pkg/static"
	"github.com/simplecontainer/apimethod/pkg/tests/stub"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type Wanted struct {
	err    error
	failed bool
	out    []string
}

func writeFile(t *testing.T, name string, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	return path
}

func runCli(t *testing.T, config string, args ...string) (*client.Client, string, error) {
	t.Helper()

	out := &bytes.Buffer{}

	cli := client.New(viper.New())
	cli.Version = "v0.0.1-test"
	cli.Out = out
	cli.Err = &bytes.Buffer{}

	root := &cobra.Command{Use: static.CLI_NAME}
	root.SetArgs(append(args, "--config", config, "--log", "error"))

	SetupGlobalFlags(root)
	PreloadCommands()

	err := Run(cli, root)

	return cli, out.String(), err
}

func TestCommands(t *testing.T) {
	server := stub.New()
	defer server.Close()

	config := writeFile(t, "config.yaml", "headers:\n  X-Client: apictl\n")

	descriptor := writeFile(t, "request.yaml", `
url: `+server.URL+`/echo
method: PATCH
headers:
  Content-Type: application/merge-patch+json
body:
  title: New Blog
`)

	testCases := []struct {
		name   string
		args   []string
		wanted Wanted
	}{
		{
			"Call success",
			[]string{"call", "GET", server.URL + "/items/4"},
			Wanted{nil, false, []string{`{"data":{"id":4},"statusCode":200}`}},
		},
		{
			"Call application error",
			[]string{"call", "get", server.URL + "/items/0"},
			Wanted{ErrRequestFailed, true, []string{`{"data":null,"statusCode":404,"errMsg":"not found"}`}},
		},
		{
			"Call with body",
			[]string{"call", "POST", server.URL + "/echo", "-d", `{"title":"New Blog"}`},
			Wanted{nil, false, []string{`"body":"{\"title\":\"New Blog\"}"`, `"contentType":"application/json"`}},
		},
		{
			"Call rejects non object body",
			[]string{"call", "POST", server.URL + "/echo", "-d", `[1,2]`},
			Wanted{nil, true, nil},
		},
		{
			"Call rejects malformed header",
			[]string{"call", "GET", server.URL + "/echo", "-H", "broken"},
			Wanted{nil, true, nil},
		},
		{
			"Run descriptor file",
			[]string{"run", descriptor},
			Wanted{nil, false, []string{`"method":"PATCH"`, `"contentType":"application/merge-patch+json"`, `"body":"{\"title\":\"New Blog\"}"`}},
		},
		{
			"Describe descriptor file",
			[]string{"describe", descriptor},
			Wanted{nil, false, []string{"PATCH " + server.URL + "/echo", "application/merge-patch+json", "X-Client", "body: sent", "cache: none"}},
		},
		{
			"Image",
			[]string{"image", "https://cdn.example.com/a.png", "320"},
			Wanted{nil, false, []string{"https://cdn.example.com/a.png?w=320&q=75"}},
		},
		{
			"Image with quality",
			[]string{"image", "https://cdn.example.com/a.png", "320", "-q", "40"},
			Wanted{nil, false, []string{"https://cdn.example.com/a.png?w=320&q=40"}},
		},
		{
			"Version",
			[]string{"version"},
			Wanted{nil, false, []string{"v0.0.1-test"}},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, out, err := runCli(t, config, tc.args...)

			if tc.wanted.failed {
				require.Error(t, err)

				if tc.wanted.err != nil {
					assert.ErrorIs(t, err, tc.wanted.err)
				}
			} else {
				require.NoError(t, err)
			}

			for _, expected := range tc.wanted.out {
				assert.Contains(t, out, expected)
			}
		})
	}
}

func TestCallCachedWithMetrics(t *testing.T) {
	server := stub.New()
	defer server.Close()

	config := writeFile(t, "config.yaml", "metrics: true\ncache:\n  enabled: true\n")

	cli, out, err := runCli(t, config, "call", "GET", server.URL+"/items/2", "--revalidate", "1m", "--tag", "items")
	require.NoError(t, err)

	assert.Contains(t, out, `"statusCode":200`)
	assert.NotNil(t, cli.Cache)
	assert.NotNil(t, cli.Metrics)
	assert.Equal(t, 1, cli.Cache.Len())
	assert.Contains(t, cli.Err.(*bytes.Buffer).String(), "apimethod_requests_total")
}

func TestInvalidLogLevel(t *testing.T) {
	config := writeFile(t, "config.yaml", "logLevel: loud\n")

	out := &bytes.Buffer{}
	cli := client.New(viper.New())
	cli.Out = out
	cli.Err = &bytes.Buffer{}

	root := &cobra.Command{Use: static.CLI_NAME}
	root.SetArgs([]string{"version", "--config", config})

	SetupGlobalFlags(root)
	PreloadCommands()

	err := Run(cli, root)
	assert.ErrorContains(t, err, "invalid log level")
}

func TestParseHeaders(t *testing.T) {
	headers, err := ParseHeaders([]string{"X-A: 1", "Accept: a, b", "Empty:"})
	require.NoError(t, err)

	assert.Equal(t, map[string]string{"X-A": "1", "Accept": "a, b", "Empty": ""}, headers)

	_, err = ParseHeaders([]string{": value"})
	assert.Error(t, err)

	headers, err = ParseHeaders(nil)
	assert.NoError(t, err)
	assert.Nil(t, headers)
}
