package app

import (
	"io"
	"os"

	"github.com/minio/minio-go/v7"
	"go.scnd.dev/open/forge"
	"go.scnd.dev/open/forge/command/forge/common/config"
	"go.scnd.dev/open/forge/compat/common"
	"go.scnd.dev/open/forge/core"
	"go.scnd.dev/open/forge/procedure/source"
)

type App struct {
	Verbose    bool
	ConfigPath string
	Stdin      io.Reader
	Stdout     io.Writer

	config *config.Config
	forge  forge.Forge
}

func (r *App) Config() (*config.Config, error) {
	if r.config != nil {
		return r.config, nil
	}

	c, err := config.New[config.Config](config.Path(r.ConfigPath))
	if err != nil {
		return nil, err
	}
	r.config = c
	return c, nil
}

func (r *App) Forge() (forge.Forge, error) {
	if r.forge != nil {
		return r.forge, nil
	}

	c, err := r.Config()
	if err != nil {
		return nil, err
	}

	instance, err := core.New(c.Forge(r.Verbose))
	if err != nil {
		return nil, err
	}
	r.forge = instance
	return instance, nil
}

func (r *App) Loader() *source.Loader {
	stdin := r.Stdin
	if stdin == nil {
		stdin = os.Stdin
	}

	return source.New(stdin, func() (*minio.Client, error) {
		c, err := r.Config()
		if err != nil {
			return nil, err
		}
		return common.Minio(c)
	})
}

func (r *App) Out() io.Writer {
	if r.Stdout == nil {
		return os.Stdout
	}
	return r.Stdout
}
