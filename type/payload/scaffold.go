package payload

import (
	"go.scnd.dev/open/forge/package/structure"
	"go.scnd.dev/open/forge/package/validation"
)

type SpecRequest struct {
	YamlContent *string `json:"yaml_content" validate:"required"`
	Format      *string `json:"format,omitempty" validate:"omitempty,oneof=yaml yml json toml"`
}

type GenerateRequest struct {
	YamlContent *string `json:"yaml_content" validate:"required"`
	OutputPath  *string `json:"output_path" validate:"required"`
	Format      *string `json:"format,omitempty" validate:"omitempty,oneof=yaml yml json toml"`
	Validate    *bool   `json:"validate,omitempty"`
}

type HealthResponse struct {
	Status  *string `json:"status"`
	Service *string `json:"service"`
}

type ValidateResponse struct {
	Valid  *bool               `json:"valid"`
	Errors []string            `json:"errors"`
	Issues []*validation.Issue `json:"issues"`
}

type PreviewResponse struct {
	Success    *bool                `json:"success"`
	ModuleName *string              `json:"module_name"`
	Structure  *structure.Structure `json:"structure"`
}

type GenerateResponse struct {
	Success      *bool                `json:"success"`
	ModuleName   *string              `json:"module_name"`
	CreatedPaths []string             `json:"created_paths"`
	Structure    *structure.Structure `json:"structure"`
}

type RejectedResponse struct {
	Success *bool               `json:"success"`
	Message *string             `json:"message"`
	Errors  []string            `json:"errors"`
	Issues  []*validation.Issue `json:"issues"`
}
