// Command dbustype validates and explains DBus type signatures and
// names.
package main

import (
	"fmt"
	"os"

	"github.com/creachadair/command"
	"github.com/creachadair/flax"
	"github.com/danderson/dbustype"
)

var globalArgs = struct {
	Format string `flag:"format,Output format of explain commands: text, yaml or go"`
}{
	Format: "text",
}

func main() {
	root := &command.C{
		Name:     "dbustype",
		Usage:    "command args...",
		Help:     "Validate and explain DBus type signatures and names.",
		SetFlags: command.Flags(flax.MustBind, &globalArgs),
		Commands: []*command.C{
			{
				Name:  "signature",
				Usage: "signature args...",
				Commands: []*command.C{
					{
						Name:  "validate",
						Usage: "validate sig...",
						Help:  "Check that each argument is a valid type signature.",
						Run:   runValidate(dbustype.ValidateSignature),
					},
					{
						Name:  "explain",
						Usage: "explain sig...",
						Help: `Parse each argument as a type signature and print its structure.

For example, "a{sv}" explains as a dict with string keys and variant
values.`,
						Run: runExplain(explainSignature),
					},
				},
			},
			{
				Name:  "interface",
				Usage: "interface args...",
				Commands: []*command.C{
					{
						Name:  "validate",
						Usage: "validate name...",
						Help:  "Check that each argument is a valid interface name.",
						Run:   runValidate(dbustype.ValidateInterface),
					},
					{
						Name:  "explain",
						Usage: "explain name...",
						Help:  "Parse each argument as an interface name and print its elements.",
						Run:   runExplain(explainInterface),
					},
				},
			},
			{
				Name:  "member",
				Usage: "member args...",
				Commands: []*command.C{
					{
						Name:  "validate",
						Usage: "validate name...",
						Help:  "Check that each argument is a valid method, signal or property name.",
						Run:   runValidate(dbustype.ValidateMember),
					},
				},
			},
			{
				Name:  "busname",
				Usage: "busname args...",
				Commands: []*command.C{
					{
						Name:  "validate",
						Usage: "validate name...",
						Help:  "Check that each argument is a valid bus name.",
						Run:   runValidate(dbustype.ValidateBusName),
					},
					{
						Name:  "explain",
						Usage: "explain name...",
						Help:  "Parse each argument as a bus name and print its parts.",
						Run:   runExplain(explainBusName),
					},
				},
			},
			command.HelpCommand(nil),
			command.VersionCommand(),
		},
	}

	env := root.NewEnv(nil)
	command.RunOrFail(env, os.Args[1:])
}

func runValidate(validate func(string) error) func(*command.Env) error {
	return func(env *command.Env) error {
		if len(env.Args) == 0 {
			return env.Usagef("at least one argument is required.")
		}
		return validateAll(os.Stdout, env.Args, validate)
	}
}

func runExplain(explain func(string) (any, error)) func(*command.Env) error {
	return func(env *command.Env) error {
		if len(env.Args) == 0 {
			return env.Usagef("at least one argument is required.")
		}
		for _, arg := range env.Args {
			v, err := explain(arg)
			if err != nil {
				return err
			}
			if err := render(os.Stdout, globalArgs.Format, v); err != nil {
				return fmt.Errorf("rendering %q: %w", arg, err)
			}
		}
		return nil
	}
}
