package check

import (
	"context"
	"errors"
	"path/filepath"

	"github.com/go-git/go-billy/v5/osfs"
	"go.scnd.dev/open/forge"
	"go.scnd.dev/open/forge/command/forge/app"
	"go.scnd.dev/open/forge/command/forge/procedure/printer"
	"go.scnd.dev/open/forge/command/forge/subcommand/validate"
	"go.scnd.dev/open/forge/procedure/scaffold"
	"go.scnd.dev/open/forge/procedure/tree"
	"go.uber.org/zap"
)

var ErrDrift = errors.New("module does not match its specification")

type Command struct {
	Source string `arg:"" help:"Specification file, - for stdin, or s3://bucket/key."`
	Format string `help:"Specification format (yaml, json, toml)."`
	Output string `help:"Base directory of the module (defaults to the configured output)." short:"o"`
	Json   bool   `help:"Print the report as json."`
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
	base, err := filepath.Abs(output)
	if err != nil {
		return s.Error("unable to resolve output path", err)
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

	// * derive and inspect
	derived, err := scaffold.New(instance).Preview(ctx, src.Content, format)
	if err != nil {
		return s.Error("unable to parse specification", err)
	}
	report, err := tree.Inspect(osfs.New(base), derived)
	if err != nil {
		return s.Error("unable to inspect module", err)
	}
	instance.Logger().Debug("inspected module",
		zap.String("module", report.ModuleName),
		zap.Int("drift", len(report.Drift())),
	)

	// * print report
	if command.Json {
		err = printer.Json(app.Out(), report)
	} else {
		err = printer.Report(app.Out(), report)
	}
	if err != nil {
		return err
	}
	if !report.Complete() {
		return ErrDrift
	}

	return nil
}
