package materialize

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"go.scnd.dev/open/forge"
	"go.scnd.dev/open/forge/package/span"
	"go.scnd.dev/open/forge/package/structure"
	"go.uber.org/zap"
)

const (
	DirectoryPerm = 0o755
	FilePerm      = 0o644
)

var layer = span.NewLayer(nil, "materialize", "package")

// Result lists the absolute paths a materialization touched: module root,
// every folder, then every newly created file.
type Result struct {
	Paths []string `json:"paths"`
}

type Materializer struct {
	fs     billy.Filesystem
	clock  func() time.Time
	logger *zap.Logger
	layer  forge.Layer
}

type Option func(*Materializer)

func WithClock(clock func() time.Time) Option {
	return func(r *Materializer) {
		r.clock = clock
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(r *Materializer) {
		r.logger = logger
	}
}

func WithLayer(layer forge.Layer) Option {
	return func(r *Materializer) {
		r.layer = layer
	}
}

func New(fs billy.Filesystem, options ...Option) *Materializer {
	materializer := &Materializer{
		fs:     fs,
		clock:  time.Now,
		logger: zap.NewNop(),
		layer:  layer,
	}
	for _, option := range options {
		option(materializer)
	}
	return materializer
}

// Materialize creates structure under basePath on the local disk.
func Materialize(ctx context.Context, structure *structure.Structure, basePath string, options ...Option) (*Result, error) {
	base, err := filepath.Abs(basePath)
	if err != nil {
		return nil, span.NewError(nil, "unable to resolve base path", err)
	}

	return New(osfs.New(base), options...).Materialize(ctx, structure)
}

func (r *Materializer) Materialize(ctx context.Context, structure *structure.Structure) (*Result, error) {
	s, ctx := r.layer.With(ctx)
	defer s.End()
	s.Variable("module", structure.ModuleName)

	result := &Result{
		Paths: make([]string, 0, 1+len(structure.Folders)+len(structure.Files)),
	}

	// * create module root
	if err := r.fs.MkdirAll(structure.ModuleName, DirectoryPerm); err != nil {
		return nil, s.Error("unable to create module root", err)
	}
	result.Paths = append(result.Paths, r.absolute(structure.ModuleName))

	// * create folders
	for _, folder := range structure.Folders {
		path := r.fs.Join(structure.ModuleName, folder)
		if err := r.fs.MkdirAll(path, DirectoryPerm); err != nil {
			return nil, s.Error("unable to create folder", err)
		}
		result.Paths = append(result.Paths, r.absolute(path))
	}

	// * create seed files
	now := r.clock()
	for _, file := range structure.Files {
		path := r.fs.Join(structure.ModuleName, file)
		created, err := r.create(path, Seed(structure.ModuleName, file, now))
		if err != nil {
			return nil, s.Error("unable to create file", err)
		}
		if created {
			result.Paths = append(result.Paths, r.absolute(path))
		}
	}

	r.logger.Debug("materialized structure",
		zap.String("module", structure.ModuleName),
		zap.String("root", r.fs.Root()),
		zap.Int("paths", len(result.Paths)),
	)

	if f := span.FromContext(ctx); f != nil && f.Instrument() != nil {
		f.Instrument().MaterializedPathCount(ctx, structure.ModuleName, len(result.Paths))
	}

	return result, nil
}

// create writes content to a new file. An existing file is left untouched and reported as not created.
func (r *Materializer) create(path string, content []byte) (bool, error) {
	if err := r.fs.MkdirAll(filepath.Dir(path), DirectoryPerm); err != nil {
		return false, err
	}

	if _, err := r.fs.Lstat(path); err == nil {
		return false, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return false, err
	}

	file, err := r.fs.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, FilePerm)
	if errors.Is(err, fs.ErrExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if _, err := file.Write(content); err != nil {
		_ = file.Close()
		return false, err
	}

	return true, file.Close()
}

func (r *Materializer) absolute(path string) string {
	return r.fs.Join(r.fs.Root(), path)
}
