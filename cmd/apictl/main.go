package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/joho/godotenv"
	"github.com/simplecontainer/apimethod/pkg/client"
	"github.com/simplecontainer/apimethod/pkg/client/commands"
	"github.com/simplecontainer/apimethod/pkg/static"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// VERSION is overridden at build time with -ldflags.
var VERSION = "dev"

func main() {
	_ = godotenv.Load(static.DOTENV_FILE)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cli := client.New(viper.New())
	cli.Version = VERSION

	cmd := &cobra.Command{
		Use:   static.CLI_NAME,
		Short: "Declarative JSON API caller",
	}

	cmd.SetContext(ctx)

	commands.SetupGlobalFlags(cmd)
	commands.PreloadCommands()

	if err := commands.Run(cli, cmd); err != nil {
		stop()
		os.Exit(1)
	}
}
