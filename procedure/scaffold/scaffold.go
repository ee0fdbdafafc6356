package scaffold

import (
	"context"
	"errors"
	"strings"

	"go.scnd.dev/open/forge"
	"go.scnd.dev/open/forge/package/materialize"
	"go.scnd.dev/open/forge/package/span"
	"go.scnd.dev/open/forge/package/spec"
	"go.scnd.dev/open/forge/package/structure"
	"go.scnd.dev/open/forge/package/validation"
	"go.uber.org/zap"
)

var ErrInvalidSpecification = errors.New("invalid specification")

// InvalidSpecificationError aborts a generation whose explicit validation failed.
type InvalidSpecificationError struct {
	Result *validation.Result
}

func (r *InvalidSpecificationError) Error() string {
	return ErrInvalidSpecification.Error() + ": " + strings.Join(r.Result.Errors(), ", ")
}

func (r *InvalidSpecificationError) Is(target error) bool {
	return target == ErrInvalidSpecification
}

type Generation struct {
	ModuleName string               `json:"module_name"`
	Structure  *structure.Structure `json:"structure"`
	Paths      []string             `json:"created_paths"`
}

type Scaffold struct {
	forge   forge.Forge
	layer   forge.Layer
	options []materialize.Option
}

func New(forge forge.Forge, options ...materialize.Option) *Scaffold {
	return &Scaffold{
		forge:   forge,
		layer:   forge.Layer("scaffold", "procedure"),
		options: options,
	}
}

func (r *Scaffold) Parse(ctx context.Context, content []byte, format spec.Format) (*spec.Tree, error) {
	s, _ := r.layer.With(ctx)
	defer s.End()
	s.Variable("format", format)

	tree, err := spec.Parse(content, format)
	if err != nil {
		r.forge.Logger().Debug("unable to parse specification", zap.String("format", string(format)), zap.Error(err))
		return nil, err
	}

	return tree, nil
}

func (r *Scaffold) Validate(ctx context.Context, content []byte, format spec.Format) (*validation.Result, error) {
	s, ctx := r.layer.With(ctx)
	defer s.End()

	// * parse specification
	tree, err := r.Parse(ctx, content, format)
	if err != nil {
		return nil, err
	}

	// * validate
	result := validation.Validate(tree)
	s.Variable("issues", len(result.Issues))
	r.forge.Logger().Info("validated specification",
		zap.Bool("valid", result.Valid()),
		zap.Strings("errors", result.Errors()),
	)

	return result, nil
}

func (r *Scaffold) Preview(ctx context.Context, content []byte, format spec.Format) (*structure.Structure, error) {
	s, ctx := r.layer.With(ctx)
	defer s.End()

	// * parse specification
	tree, err := r.Parse(ctx, content, format)
	if err != nil {
		return nil, err
	}

	return r.derive(ctx, tree), nil
}

// Generate derives the structure and writes it under output. Validation only runs when asked for.
func (r *Scaffold) Generate(ctx context.Context, content []byte, format spec.Format, output string, validate bool) (*Generation, error) {
	s, ctx := r.layer.With(span.NewContext(r.forge, ctx))
	defer s.End()
	s.Variable("output", output)

	// * parse specification
	tree, err := r.Parse(ctx, content, format)
	if err != nil {
		return nil, err
	}

	// * validate when requested
	if validate {
		result := validation.Validate(tree)
		if !result.Valid() {
			return nil, &InvalidSpecificationError{Result: result}
		}
	}

	// * derive and materialize
	derived := r.derive(ctx, tree)
	options := append([]materialize.Option{
		materialize.WithLogger(r.forge.Logger()),
		materialize.WithLayer(r.forge.Layer("materialize", "package")),
	}, r.options...)
	result, err := materialize.Materialize(ctx, derived, output, options...)
	if err != nil {
		return nil, s.Error("unable to materialize structure", err)
	}

	r.forge.Logger().Info("generated structure",
		zap.String("module", derived.ModuleName),
		zap.String("output", output),
		zap.Int("paths", len(result.Paths)),
	)

	return &Generation{
		ModuleName: derived.ModuleName,
		Structure:  derived,
		Paths:      result.Paths,
	}, nil
}

func (r *Scaffold) derive(ctx context.Context, tree *spec.Tree) *structure.Structure {
	derived := structure.Derive(tree)
	if instrument := r.forge.Instrument(); instrument != nil {
		instrument.DerivationCount(ctx, derived.ModuleName, len(derived.Folders))
	}
	r.forge.Logger().Debug("derived structure",
		zap.String("module", derived.ModuleName),
		zap.Strings("folders", derived.Folders),
		zap.Strings("files", derived.Files),
	)
	return derived
}
