package commands

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"
	"github.com/simplecontainer/apimethod/pkg/client"
	"github.com/simplecontainer/apimethod/pkg/command"
	"github.com/simplecontainer/apimethod/pkg/imageloader"
	"github.com/simplecontainer/apimethod/pkg/network"
	"github.com/simplecontainer/apimethod/pkg/static"
	"github.com/spf13/cobra"
)

func Describe() {
	Commands = append(Commands,
		command.NewBuilder().
			Parent(static.CLI_NAME).
			Name("describe").
			Use("describe FILE").
			Short("Show the request a descriptor file produces without sending it").
			Args(cobra.ExactArgs(1)).
			Function(func(cli *client.Client, c *cobra.Command, args []string) error {
				file, err := network.LoadDescriptor(args[0])

				if err != nil {
					return err
				}

				descriptor := cli.Descriptor(file.Descriptor)

				if err = descriptor.Validate(); err != nil {
					return err
				}

				PrintDescriptor(cli, descriptor, file.Body)
				return nil
			}).
			BuildWithValidation(),
	)
}

func Image() {
	Commands = append(Commands,
		command.NewBuilder().
			Parent(static.CLI_NAME).
			Name("image").
			Use("image SRC WIDTH").
			Short("Print the sized image URL").
			Args(cobra.ExactArgs(2)).
			Flags(func(cmd *cobra.Command) {
				cmd.Flags().IntP("quality", "q", static.DEFAULT_IMAGE_QUALITY, "Image quality")
			}).
			Function(func(cli *client.Client, c *cobra.Command, args []string) error {
				width, err := strconv.Atoi(args[1])

				if err != nil || width <= 0 {
					return errors.Errorf("invalid width %q", args[1])
				}

				quality, _ := c.Flags().GetInt("quality")

				fmt.Fprintln(cli.Out, imageloader.Load(imageloader.Props{
					Src:     args[0],
					Width:   width,
					Quality: quality,
				}))

				return nil
			}).
			BuildWithValidation(),
	)
}

func Version() {
	Commands = append(Commands,
		command.NewBuilder().
			Parent(static.CLI_NAME).
			Name("version").
			Short("Print the version").
			Function(func(cli *client.Client, c *cobra.Command, args []string) error {
				fmt.Fprintln(cli.Out, cli.Version)
				return nil
			}).
			BuildWithValidation(),
	)
}
