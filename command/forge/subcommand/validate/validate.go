package validate

import (
	"context"
	"errors"

	"go.scnd.dev/open/forge"
	"go.scnd.dev/open/forge/command/forge/app"
	"go.scnd.dev/open/forge/command/forge/procedure/printer"
	"go.scnd.dev/open/forge/package/spec"
	"go.scnd.dev/open/forge/procedure/scaffold"
)

var ErrInvalid = errors.New("specification is invalid")

type Command struct {
	Source string `arg:"" help:"Specification file, - for stdin, or s3://bucket/key."`
	Format string `help:"Specification format (yaml, json, toml)."`
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
	format, err := Format(command.Format, src.Format)
	if err != nil {
		return err
	}

	// * validate
	result, err := scaffold.New(instance).Validate(ctx, src.Content, format)
	if err != nil {
		return s.Error("unable to parse specification", err)
	}
	if err := printer.Issues(app.Out(), result); err != nil {
		return err
	}
	if !result.Valid() {
		return ErrInvalid
	}

	return nil
}

// Format prefers the explicit flag over the format guessed from the source.
func Format(flag string, guessed spec.Format) (spec.Format, error) {
	if flag == "" {
		return guessed, nil
	}
	return spec.ParseFormat(flag)
}
