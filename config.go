package forge

type Config struct {
	AppName               *string
	AppVersion            *string
	AppNamespace          *string
	TelemetryUrl          *string
	TelemetryOrganization *string
	LogLevel              *string
	LogJson               *bool
	Verbose               *bool
}
