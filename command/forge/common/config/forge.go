package config

import (
	"go.scnd.dev/open/forge"
)

type Config struct {
	Listen    *string    `yaml:"listen" validate:"omitempty,hostname_port"`
	Output    *string    `yaml:"output"`
	Log       *Log       `yaml:"log"`
	Api       *Api       `yaml:"api"`
	Generate  *Generate  `yaml:"generate"`
	Telemetry *Telemetry `yaml:"telemetry"`
	Minio     *Minio     `yaml:"minio"`
}

type Log struct {
	Level *string `yaml:"level" validate:"omitempty,oneof=debug info warn error"`
	Json  *bool   `yaml:"json"`
}

type Api struct {
	Secret *string `yaml:"secret"`
}

type Generate struct {
	Root *string `yaml:"root"`
}

type Telemetry struct {
	Name         *string `yaml:"name"`
	Version      *string `yaml:"version"`
	Url          *string `yaml:"url"`
	Organization *string `yaml:"organization"`
}

type Minio struct {
	Endpoint  *string `yaml:"endpoint" validate:"omitempty,url"`
	AccessKey *string `yaml:"access_key"`
	SecretKey *string `yaml:"secret_key"`
	Region    *string `yaml:"region"`
}

func (r *Config) GetWebListen() *string {
	if r.Listen == nil || *r.Listen == "" {
		listen := DefaultListen
		return &listen
	}
	return r.Listen
}

func (r *Config) GetOutput() string {
	if r.Output == nil || *r.Output == "" {
		return DefaultOutput
	}
	return *r.Output
}

func (r *Config) GetApiSecret() string {
	if r.Api == nil || r.Api.Secret == nil {
		return ""
	}
	return *r.Api.Secret
}

func (r *Config) GetGenerateRoot() string {
	if r.Generate == nil || r.Generate.Root == nil {
		return ""
	}
	return *r.Generate.Root
}

func (r *Config) GetMinioEndpoint() *string {
	if r.Minio == nil {
		return nil
	}
	return r.Minio.Endpoint
}

func (r *Config) GetMinioAccessKey() *string {
	if r.Minio == nil {
		return nil
	}
	return r.Minio.AccessKey
}

func (r *Config) GetMinioSecretKey() *string {
	if r.Minio == nil {
		return nil
	}
	return r.Minio.SecretKey
}

func (r *Config) GetMinioRegion() *string {
	if r.Minio == nil {
		return nil
	}
	return r.Minio.Region
}

// Forge maps the file configuration onto the instance configuration.
func (r *Config) Forge(verbose bool) *forge.Config {
	name := "forge"
	config := &forge.Config{
		AppName: &name,
		Verbose: &verbose,
	}
	if r.Log != nil {
		config.LogLevel = r.Log.Level
		config.LogJson = r.Log.Json
	}
	if r.Telemetry != nil {
		if r.Telemetry.Name != nil {
			config.AppName = r.Telemetry.Name
		}
		config.AppVersion = r.Telemetry.Version
		config.TelemetryUrl = r.Telemetry.Url
		config.TelemetryOrganization = r.Telemetry.Organization
	}
	return config
}
