package commands

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"github.com/simplecontainer/apimethod/pkg/client"
	"github.com/simplecontainer/apimethod/pkg/command"
	"github.com/simplecontainer/apimethod/pkg/network"
	"github.com/simplecontainer/apimethod/pkg/static"
	"github.com/spf13/cobra"
)

func Call() {
	Commands = append(Commands,
		command.NewBuilder().
			Parent(static.CLI_NAME).
			Name("call").
			Use("call METHOD URL").
			Short("Execute one request and print the response envelope").
			Args(cobra.ExactArgs(2)).
			Flags(func(cmd *cobra.Command) {
				cmd.Flags().StringArrayP("header", "H", nil, "Request header as 'Name: value' (repeatable)")
				cmd.Flags().StringP("data", "d", "", "JSON object sent as the request body")
				cmd.Flags().Duration("revalidate", 0, "Allow reusing the response for this long")
				cmd.Flags().Bool("no-store", false, "Never reuse the response")
				cmd.Flags().StringSlice("tag", nil, "Cache tags for the response")
			}).
			Function(func(cli *client.Client, c *cobra.Command, args []string) error {
				descriptor := network.Descriptor{
					URL:    args[1],
					Method: network.ParseMethod(args[0]),
				}

				headerFlags, _ := c.Flags().GetStringArray("header")
				headers, err := ParseHeaders(headerFlags)

				if err != nil {
					return err
				}

				descriptor.Headers = headers
				descriptor.Cache = cacheFlags(c)

				data, _ := c.Flags().GetString("data")
				body, err := ParseBody(data)

				if err != nil {
					return err
				}

				return execute(c.Context(), cli, descriptor, body)
			}).
			BuildWithValidation(),
	)
}

func RunFile() {
	Commands = append(Commands,
		command.NewBuilder().
			Parent(static.CLI_NAME).
			Name("run").
			Use("run FILE").
			Short("Execute the request described in a YAML file").
			Args(cobra.ExactArgs(1)).
			Function(func(cli *client.Client, c *cobra.Command, args []string) error {
				file, err := network.LoadDescriptor(args[0])

				if err != nil {
					return err
				}

				return execute(c.Context(), cli, file.Descriptor, file.Body)
			}).
			BuildWithValidation(),
	)
}

func execute(ctx context.Context, cli *client.Client, descriptor network.Descriptor, body network.Body) error {
	if ctx == nil {
		ctx = context.Background()
	}

	response := network.Execute[any](ctx, cli.Executor, cli.Descriptor(descriptor), body)

	if err := PrintResponse(cli, response); err != nil {
		return err
	}

	if cli.Metrics != nil {
		if err := PrintMetrics(cli); err != nil {
			return err
		}
	}

	if response.Failed() {
		return ErrRequestFailed
	}

	return nil
}

func ParseHeaders(values []string) (map[string]string, error) {
	if len(values) == 0 {
		return nil, nil
	}

	headers := make(map[string]string, len(values))

	for _, value := range values {
		name, content, ok := strings.Cut(value, ":")

		if !ok || strings.TrimSpace(name) == "" {
			return nil, errors.Errorf("invalid header %q, expected 'Name: value'", value)
		}

		headers[strings.TrimSpace(name)] = strings.TrimSpace(content)
	}

	return headers, nil
}

func ParseBody(data string) (network.Body, error) {
	if strings.TrimSpace(data) == "" {
		return nil, nil
	}

	body := network.Body{}

	if err := json.Unmarshal([]byte(data), &body); err != nil {
		return nil, errors.Wrap(err, "request body must be a JSON object")
	}

	return body, nil
}

func cacheFlags(c *cobra.Command) *network.Cache {
	revalidate, _ := c.Flags().GetDuration("revalidate")
	noStore, _ := c.Flags().GetBool("no-store")
	tags, _ := c.Flags().GetStringSlice("tag")

	if revalidate == 0 && !noStore && len(tags) == 0 {
		return nil
	}

	return &network.Cache{
		Revalidate: revalidate,
		NoStore:    noStore,
		Tags:       tags,
	}
}
