package generate

import (
	"context"
	"errors"

	"go.scnd.dev/open/forge"
	"go.scnd.dev/open/forge/command/forge/app"
	"go.scnd.dev/open/forge/command/forge/procedure/printer"
	"go.scnd.dev/open/forge/command/forge/subcommand/validate"
	"go.scnd.dev/open/forge/procedure/scaffold"
)

type Command struct {
	Source   string `arg:"" help:"Specification file, - for stdin, or s3://bucket/key."`
	Format   string `help:"Specification format (yaml, json, toml)."`
	Output   string `help:"Base directory for the module (defaults to the configured output)." short:"o"`
	Validate bool   `help:"Validate the specification before writing anything."`
}

func (r *Command) Run(app *app.App) error {
	return Run(app, r)
}

func Run(app *app.App, command *Command) error {
	instance, err := app.Forge()
	if err != nil {
		return err
	}
	defer func() {
		_ = instance.Shutdown(context.Background())
	}()

	ctx := context.Background()
	s, ctx := forge.With(ctx)
	defer s.End()

	// * resolve output
	output := command.Output
	if output == "" {
		c, err := app.Config()
		if err != nil {
			return err
		}
		output = c.GetOutput()
	}

	// * load source
	src, err := app.Loader().Load(ctx, command.Source)
	if err != nil {
		return s.Error("unable to load specification", err)
	}
	format, err := validate.Format(command.Format, src.Format)
	if err != nil {
		return err
	}

	// * generate
	generation, err := scaffold.New(instance).Generate(ctx, src.Content, format, output, command.Validate)
	var invalid *scaffold.InvalidSpecificationError
	if errors.As(err, &invalid) {
		if err := printer.Issues(app.Out(), invalid.Result); err != nil {
			return err
		}
		return validate.ErrInvalid
	}
	if err != nil {
		return s.Error("unable to generate structure", err)
	}

	return printer.Paths(app.Out(), generation.Paths)
}
