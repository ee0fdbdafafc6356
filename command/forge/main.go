package main

import (
	"github.com/alecthomas/kong"
	"go.scnd.dev/open/forge/command/forge/app"
	"go.scnd.dev/open/forge/command/forge/subcommand/check"
	"go.scnd.dev/open/forge/command/forge/subcommand/generate"
	"go.scnd.dev/open/forge/command/forge/subcommand/preview"
	"go.scnd.dev/open/forge/command/forge/subcommand/serve"
	"go.scnd.dev/open/forge/command/forge/subcommand/token"
	"go.scnd.dev/open/forge/command/forge/subcommand/validate"
)

type Command struct {
	Verbose  bool              `help:"Enable verbose output." short:"v"`
	Config   string            `help:"Configuration file." type:"path" env:"FORGE_CONFIG_PATH"`
	Validate *validate.Command `cmd:"validate" help:"Validate a specification."`
	Preview  *preview.Command  `cmd:"preview" help:"Print the structure a specification derives."`
	Generate *generate.Command `cmd:"generate" help:"Create the structure of a specification on disk."`
	Check    *check.Command    `cmd:"check" help:"Report drift between a module on disk and its specification."`
	Serve    *serve.Command    `cmd:"serve" help:"Serve the http api."`
	Token    *token.Command    `cmd:"token" help:"Sign an api token with the configured secret."`
}

func main() {
	command := new(Command)
	ctx := kong.Parse(
		command,
		kong.Name("forge"),
		kong.Description("Forge derives module layouts from project specifications."),
		kong.UsageOnError(),
	)
	err := ctx.Run(&app.App{
		Verbose:    command.Verbose,
		ConfigPath: command.Config,
	})
	ctx.FatalIfErrorf(err)
}
