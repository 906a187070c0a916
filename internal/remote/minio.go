// Package remote mirrors CSV exports from an S3-compatible bucket into the
// local source directory so the locator can pick them up.
package remote

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/JonMunkholm/foodseed/internal/config"
	"github.com/JonMunkholm/foodseed/internal/logging"
)

// Fetcher downloads matching objects from one bucket.
type Fetcher struct {
	client  *minio.Client
	bucket  string
	prefix  string
	pattern string
	log     *logging.Logger
}

// NewFetcher constructs a Fetcher from config. pattern is the glob matched
// against the base name of each object key.
func NewFetcher(cfg config.RemoteConfig, pattern string, log *logging.Logger) (*Fetcher, error) {
	if strings.TrimSpace(cfg.Endpoint) == "" {
		return nil, errors.New("remote endpoint is required")
	}
	if strings.TrimSpace(cfg.AccessKey) == "" || strings.TrimSpace(cfg.SecretKey) == "" {
		return nil, errors.New("remote access key and secret key are required")
	}
	if strings.TrimSpace(cfg.Bucket) == "" {
		return nil, errors.New("remote bucket is required")
	}
	if _, err := filepath.Match(pattern, ""); err != nil {
		return nil, fmt.Errorf("remote pattern %q: %w", pattern, err)
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, err
	}

	if log == nil {
		log = logging.Nop()
	}

	return &Fetcher{
		client:  client,
		bucket:  cfg.Bucket,
		prefix:  cfg.Prefix,
		pattern: pattern,
		log:     log,
	}, nil
}

// Fetch downloads every object under the prefix whose base name matches the
// pattern into dir and returns the local paths. A local file with the same
// size as the object is left alone. A failed download is logged and skipped;
// a failed listing aborts the fetch.
func (f *Fetcher) Fetch(ctx context.Context, dir string) ([]string, error) {
	log := f.log.FromContext(ctx).WithFields("bucket", f.bucket)

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create source dir: %w", err)
	}

	var fetched []string

	objects := f.client.ListObjects(ctx, f.bucket, minio.ListObjectsOptions{
		Prefix:    f.prefix,
		Recursive: true,
	})

	for obj := range objects {
		if obj.Err != nil {
			return fetched, fmt.Errorf("list objects: %w", obj.Err)
		}

		name, ok := localName(obj.Key, f.pattern)
		if !ok {
			continue
		}
		dst := filepath.Join(dir, name)

		if info, err := os.Stat(dst); err == nil && info.Size() == obj.Size {
			log.Debug().Str("key", obj.Key).Msg("local copy up to date")
			fetched = append(fetched, dst)
			continue
		}

		if err := f.client.FGetObject(ctx, f.bucket, obj.Key, dst, minio.GetObjectOptions{}); err != nil {
			log.Warn().Err(err).Str("key", obj.Key).Msg("download failed")
			continue
		}

		log.Info().Str("key", obj.Key).Int64("bytes", obj.Size).Msg("object downloaded")
		fetched = append(fetched, dst)
	}

	return fetched, nil
}

// localName returns the file name an object key is stored under, or false
// when the key is a directory marker or does not match pattern.
func localName(key, pattern string) (string, bool) {
	if key == "" || strings.HasSuffix(key, "/") {
		return "", false
	}

	name := path.Base(key)
	if ok, _ := filepath.Match(pattern, name); !ok {
		return "", false
	}
	return name, true
}
