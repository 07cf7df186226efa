package command

import (
	"fmt"

	"github.com/simplecontainer/apimethod/pkg/client"
	"github.com/spf13/cobra"
)

func NewBuilder() *Builder {
	return &Builder{
		args:      cobra.NoArgs,
		flags:     EmptyFlag,
		condition: EmptyCondition,
		command:   EmptyFunction,
	}
}

func (cb *Builder) Parent(parent string) *Builder {
	cb.parent = parent
	return cb
}

func (cb *Builder) Name(name string) *Builder {
	cb.name = name
	return cb
}

func (cb *Builder) Use(use string) *Builder {
	cb.use = use
	return cb
}

func (cb *Builder) Short(short string) *Builder {
	cb.short = short
	return cb
}

func (cb *Builder) Flags(flags func(cmd *cobra.Command)) *Builder {
	cb.flags = flags
	return cb
}

func (cb *Builder) Args(args func(*cobra.Command, []string) error) *Builder {
	cb.args = args
	return cb
}

func (cb *Builder) Function(fn func(*client.Client, *cobra.Command, []string) error) *Builder {
	cb.command = fn
	return cb
}

func (cb *Builder) Condition(fn func(*client.Client) bool) *Builder {
	cb.condition = fn
	return cb
}

func (cb *Builder) Build() Command {
	use := cb.use

	if use == "" {
		use = cb.name
	}

	return Command{
		Parent:    cb.parent,
		Name:      cb.name,
		Use:       use,
		Short:     cb.short,
		Args:      cb.args,
		Flags:     cb.flags,
		Command:   cb.command,
		Condition: cb.condition,
	}
}

func (cb *Builder) Validate() error {
	if cb.name == "" {
		return fmt.Errorf("command name is required")
	}
	if cb.parent == "" {
		return fmt.Errorf("command parent is required")
	}
	return nil
}

func (cb *Builder) BuildWithValidation() Command {
	if err := cb.Validate(); err != nil {
		panic(err)
	}

	return cb.Build()
}
