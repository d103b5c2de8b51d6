package dao

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/smartlisting/smartlisting/internal/aws"
)

// ObjectStore reads documents from S3.
type ObjectStore interface {
	GetObject(ctx context.Context, bucket, key string) ([]byte, error)
}

// DocumentFetcher reads screen documents from local files or S3, caching
// results for a TTL.
type DocumentFetcher struct {
	store ObjectStore
	cache *DocumentCache
}

// NewDocumentFetcher returns a fetcher. A nil store disables s3:// locations.
func NewDocumentFetcher(store ObjectStore, cache *DocumentCache) *DocumentFetcher {
	if cache == nil {
		cache = NewDocumentCache(DefaultCacheTTL)
	}
	return &DocumentFetcher{
		store: store,
		cache: cache,
	}
}

// Fetch returns the document at location.
func (f *DocumentFetcher) Fetch(ctx context.Context, location string) ([]byte, error) {
	if bb, ok := f.cache.Get(location); ok {
		slog.Debug("Document cache hit", "location", location)
		return bb, nil
	}

	var (
		bb  []byte
		err error
	)
	if aws.IsS3URL(location) {
		bb, err = f.fetchS3(ctx, location)
	} else {
		bb, err = os.ReadFile(location)
	}
	if err != nil {
		return nil, err
	}
	f.cache.Set(location, bb)

	return bb, nil
}

// Invalidate drops a cached document so the next fetch reads it again.
func (f *DocumentFetcher) Invalidate(location string) {
	f.cache.Invalidate(location)
}

func (f *DocumentFetcher) fetchS3(ctx context.Context, location string) ([]byte, error) {
	if f.store == nil {
		return nil, fmt.Errorf("%w: no S3 client for %q", ErrNoSource, location)
	}
	bucket, key, err := aws.ParseS3URL(location)
	if err != nil {
		return nil, err
	}

	return f.store.GetObject(ctx, bucket, key)
}
