package token

import (
	"fmt"
	"time"

	"go.scnd.dev/open/forge/command/forge/app"
	"go.scnd.dev/open/forge/compat/predefine"
	"go.scnd.dev/open/forge/package/span"
)

type Command struct {
	Subject string        `help:"Token subject." default:"forge"`
	Scope   []string      `help:"Granted scopes, e.g. generate." short:"s"`
	Ttl     time.Duration `help:"Token lifetime, zero for no expiry." default:"24h"`
}

func (r *Command) Run(app *app.App) error {
	return Run(app, r)
}

func Run(app *app.App, command *Command) error {
	c, err := app.Config()
	if err != nil {
		return err
	}

	secret := c.GetApiSecret()
	if secret == "" {
		return span.NewError(nil, "api.secret is not configured", nil)
	}

	token, err := predefine.SignApiClaims(secret, predefine.NewApiClaims(command.Subject, command.Scope, command.Ttl))
	if err != nil {
		return span.NewError(nil, "unable to sign token", err)
	}

	_, err = fmt.Fprintln(app.Out(), token)
	return err
}
