package preview

import (
	"context"

	"go.scnd.dev/open/forge"
	"go.scnd.dev/open/forge/command/forge/app"
	"go.scnd.dev/open/forge/command/forge/procedure/printer"
	"go.scnd.dev/open/forge/command/forge/subcommand/validate"
	"go.scnd.dev/open/forge/procedure/scaffold"
)

type Command struct {
	Source string `arg:"" help:"Specification file, - for stdin, or s3://bucket/key."`
	Format string `help:"Specification format (yaml, json, toml)."`
	Json   bool   `help:"Print the structure as json."`
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

	// * load source
	src, err := app.Loader().Load(ctx, command.Source)
	if err != nil {
		return s.Error("unable to load specification", err)
	}
	format, err := validate.Format(command.Format, src.Format)
	if err != nil {
		return err
	}

	// * derive
	derived, err := scaffold.New(instance).Preview(ctx, src.Content, format)
	if err != nil {
		return s.Error("unable to parse specification", err)
	}

	if command.Json {
		return printer.Json(app.Out(), derived)
	}
	return printer.Tree(app.Out(), derived)
}
