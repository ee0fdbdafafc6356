package common

import (
	"net/url"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.scnd.dev/open/forge/package/span"
)

type MinioConfig interface {
	GetMinioEndpoint() *string
	GetMinioAccessKey() *string
	GetMinioSecretKey() *string
	GetMinioRegion() *string
}

func Minio(config MinioConfig) (*minio.Client, error) {
	if config.GetMinioEndpoint() == nil || *config.GetMinioEndpoint() == "" {
		return nil, span.NewError(nil, "minio endpoint is not configured", nil)
	}

	// * initialize minio client
	parsed, err := url.Parse(*config.GetMinioEndpoint())
	if err != nil {
		return nil, span.NewError(nil, "failed to parse minio endpoint", err)
	}

	options := &minio.Options{
		Creds:  credentials.NewStaticV4(value(config.GetMinioAccessKey()), value(config.GetMinioSecretKey()), ""),
		Secure: parsed.Scheme == "https",
	}
	if region := config.GetMinioRegion(); region != nil {
		options.Region = *region
	}

	client, err := minio.New(parsed.Host, options)
	if err != nil {
		return nil, span.NewError(nil, "failed to initialize minio", err)
	}

	return client, nil
}

func value(pointer *string) string {
	if pointer == nil {
		return ""
	}
	return *pointer
}
