package command

import (
	"github.com/simplecontainer/apimethod/pkg/client"
	"github.com/spf13/cobra"
)

type Command struct {
	Parent    string
	Name      string
	Use       string
	Short     string
	Args      func(*cobra.Command, []string) error
	Condition func(*client.Client) bool
	Command   func(*client.Client, *cobra.Command, []string) error
	Flags     func(*cobra.Command)
}

type Builder struct {
	parent    string
	name      string
	use       string
	short     string
	flags     func(cmd *cobra.Command)
	args      func(*cobra.Command, []string) error
	condition func(*client.Client) bool
	command   func(*client.Client, *cobra.Command, []string) error
}

var (
	EmptyCondition = func(*client.Client) bool { return true }
	EmptyFunction  = func(*client.Client, *cobra.Command, []string) error { return nil }
	EmptyFlag      = func(cmd *cobra.Command) {}
)
