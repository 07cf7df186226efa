package commands

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/simplecontainer/apimethod/pkg/client"
	"github.com/simplecontainer/apimethod/pkg/command"
	"github.com/simplecontainer/apimethod/pkg/logger"
	"github.com/simplecontainer/apimethod/pkg/static"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// ErrRequestFailed is returned when the executed request resolved to an
// envelope carrying an error message.
var ErrRequestFailed = errors.New("request failed")

var Commands []command.Command

func PreloadCommands() {
	Commands = nil

	Call()
	RunFile()
	Describe()
	Image()
	Version()
}

func Run(cli *client.Client, c *cobra.Command) error {
	c.SilenceUsage = true
	c.SilenceErrors = true

	c.SetHelpCommand(&cobra.Command{
		Use:    "help",
		Hidden: true,
	})

	c.SetOut(cli.Out)
	c.SetErr(cli.Err)

	c.PersistentPreRunE = func(c *cobra.Command, args []string) error {
		return setup(cli, c)
	}

	for _, cmd := range Commands {
		cmd := cmd

		cobraCmd := &cobra.Command{
			Use:   cmd.Use,
			Short: cmd.Short,
			Args:  cmd.Args,
			RunE: func(c *cobra.Command, args []string) error {
				if !cmd.Condition(cli) {
					return fmt.Errorf("condition failed for command %s", c.Use)
				}

				return cmd.Command(cli, c, args)
			},
		}

		cmd.Flags(cobraCmd)

		if cmd.Parent == static.CLI_NAME || cmd.Parent == "" {
			c.AddCommand(cobraCmd)
		} else {
			parent := findCommand(c, cmd.Parent)

			if parent != nil {
				parent.AddCommand(cobraCmd)
			} else {
				fmt.Fprintf(cli.Err, "warning: parent command '%s' not found for '%s'\n", cmd.Parent, cmd.Name)
			}
		}
	}

	err := c.Execute()

	if err != nil && !errors.Is(err, ErrRequestFailed) {
		fmt.Fprintf(cli.Err, "error: %s\n", err)
	}

	return err
}

func SetupGlobalFlags(rootCmd *cobra.Command) {
	rootCmd.PersistentFlags().String("config", "", "Configuration file (default ~/.apictl/config.yaml)")
	rootCmd.PersistentFlags().String("log", "", "Log level: debug, info, warn, error, dpanic, panic, fatal")
}

func setup(cli *client.Client, c *cobra.Command) error {
	configPath, _ := c.Flags().GetString("config")

	if err := cli.Load(configPath); err != nil {
		return err
	}

	level := cli.Configuration.LogLevel

	if env := os.Getenv("LOG_LEVEL"); env != "" {
		level = env
	}

	if flag, _ := c.Flags().GetString("log"); flag != "" {
		level = flag
	}

	if _, err := zap.ParseAtomicLevel(level); err != nil {
		return errors.Wrapf(err, "invalid log level %s", level)
	}

	cli.Configuration.LogLevel = level
	logger.Log = logger.NewLogger(level, []string{"stderr"}, []string{"stderr"})

	return cli.Wire()
}

func findCommand(cmd *cobra.Command, name string) *cobra.Command {
	if cmd.Name() == name {
		return cmd
	}
	for _, c := range cmd.Commands() {
		if result := findCommand(c, name); result != nil {
			return result
		}
	}
	return nil
}
