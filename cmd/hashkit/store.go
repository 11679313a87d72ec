package main

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/hupe1980/hashkit/blobstore"
	"github.com/hupe1980/hashkit/blobstore/minio"
	"github.com/hupe1980/hashkit/blobstore/s3"
)

// openStore resolves a --store value:
//
//	./dir                              local directory
//	s3://bucket/prefix                 AWS S3 (default credential chain)
//	minio://endpoint/bucket/prefix     MinIO over TLS
//	minio+http://endpoint/bucket/...   MinIO without TLS
func openStore(ctx context.Context, loc string) (blobstore.BlobStore, error) {
	scheme, _, ok := strings.Cut(loc, "://")
	if !ok {
		return blobstore.NewLocalStore(loc), nil
	}

	u, err := url.Parse(loc)
	if err != nil {
		return nil, fmt.Errorf("store %q: %w", loc, err)
	}

	switch scheme {
	case "s3":
		if u.Host == "" {
			return nil, fmt.Errorf("store %q: missing bucket", loc)
		}
		return s3.New(ctx, u.Host, s3.WithPrefix(strings.TrimPrefix(u.Path, "/")))
	case "minio", "minio+http":
		bucket, prefix, _ := strings.Cut(strings.TrimPrefix(u.Path, "/"), "/")
		if u.Host == "" || bucket == "" {
			return nil, fmt.Errorf("store %q: want %s://endpoint/bucket[/prefix]", loc, scheme)
		}
		return minio.Dial(u.Host, bucket, prefix, scheme == "minio")
	default:
		return nil, fmt.Errorf("store %q: unsupported scheme %q", loc, scheme)
	}
}

// listOrNames returns names, or every blob under prefix when names is empty.
func listOrNames(ctx context.Context, store blobstore.BlobStore, names []string, prefix string) ([]string, error) {
	if len(names) > 0 {
		return names, nil
	}
	return store.List(ctx, prefix)
}
