package source

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/minio/minio-go/v7"
	"go.scnd.dev/open/forge/package/span"
	"go.scnd.dev/open/forge/package/spec"
)

const (
	Stdin    = "-"
	SchemeS3 = "s3://"
)

type Source struct {
	Name    string
	Content []byte
	Format  spec.Format
}

type Loader struct {
	stdin io.Reader
	minio func() (*minio.Client, error)
}

// New builds a loader. The minio client is only constructed for s3 locations.
func New(stdin io.Reader, minio func() (*minio.Client, error)) *Loader {
	return &Loader{
		stdin: stdin,
		minio: minio,
	}
}

// Load reads a specification from a file path, "-" for stdin, or s3://bucket/key.
func (r *Loader) Load(ctx context.Context, location string) (*Source, error) {
	switch {
	case location == Stdin:
		content, err := io.ReadAll(r.stdin)
		if err != nil {
			return nil, span.NewError(nil, "unable to read standard input", err)
		}
		return &Source{
			Name:    "stdin",
			Content: content,
			Format:  spec.FormatYaml,
		}, nil
	case strings.HasPrefix(location, SchemeS3):
		return r.object(ctx, location)
	default:
		content, err := os.ReadFile(location)
		if err != nil {
			return nil, span.NewError(nil, "unable to read specification file", err)
		}
		return &Source{
			Name:    location,
			Content: content,
			Format:  spec.FormatFromPath(location),
		}, nil
	}
}

func (r *Loader) object(ctx context.Context, location string) (*Source, error) {
	bucket, key, ok := ParseObject(location)
	if !ok {
		return nil, span.NewError(nil, "object location must be s3://bucket/key", nil)
	}

	// * construct client
	if r.minio == nil {
		return nil, span.NewError(nil, "object storage is not configured", nil)
	}
	client, err := r.minio()
	if err != nil {
		return nil, err
	}

	// * fetch object
	object, err := client.GetObject(ctx, bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, span.NewError(nil, "unable to fetch specification object", err)
	}
	defer func() {
		_ = object.Close()
	}()

	content, err := io.ReadAll(object)
	if err != nil {
		return nil, span.NewError(nil, "unable to read specification object", err)
	}

	return &Source{
		Name:    location,
		Content: content,
		Format:  spec.FormatFromPath(key),
	}, nil
}

// ParseObject splits s3://bucket/key.
func ParseObject(location string) (string, string, bool) {
	bucket, key, ok := strings.Cut(strings.TrimPrefix(location, SchemeS3), "/")
	if !ok || bucket == "" || key == "" {
		return "", "", false
	}
	return bucket, key, true
}
