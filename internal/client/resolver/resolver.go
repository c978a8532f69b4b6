// Package resolver turns a product identifier plus optional caller-supplied
// details into a complete ProductDetails value, fetching from the product API
// when needed and memoizing resolved products for the process lifetime.
package resolver

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/iudanet/cartsync/internal/models"
	"github.com/iudanet/cartsync/internal/productid"
	"github.com/iudanet/cartsync/pkg/api"
)

// ProductSource fetches a product record by candidate id.
// internal/client/api.ClientAPI satisfies it.
type ProductSource interface {
	GetProduct(ctx context.Context, id string) (api.ProductRecord, error)
}

// Resolver resolves and caches product details.
type Resolver struct {
	source ProductSource
	logger *slog.Logger
	cache  map[string]models.ProductDetails
	group  singleflight.Group
	mu     sync.RWMutex
}

// New creates a Resolver backed by source.
func New(source ProductSource, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Resolver{
		source: source,
		logger: logger,
		cache:  make(map[string]models.ProductDetails),
	}
}

type fetchResult struct {
	details  models.ProductDetails
	resolved bool
}

// Resolve returns complete details for productID.
//
// Provided details that carry anything beyond the fallback win without a
// network call and are cached. Otherwise the cache is consulted, then every
// candidate id is fetched in order. When nothing resolves the sanitized
// fallback is returned and nothing is cached. The only error is ctx's.
func (r *Resolver) Resolve(ctx context.Context, productID string, provided *models.PartialDetails) (models.ProductDetails, error) {
	if err := ctx.Err(); err != nil {
		return models.ProductDetails{}, err
	}

	sanitized := provided.Sanitize(productID)
	if !sanitized.IsFallbackFor(productID) {
		r.store(productID, sanitized)
		return sanitized.Clone(), nil
	}

	if cached, ok := r.Cached(productID); ok {
		return cached, nil
	}

	// Ожидающие вызовы не должны отменяться контекстом первого вызывающего,
	// сам запрос ограничен таймаутом HTTP клиента.
	fetchCtx := context.WithoutCancel(ctx)
	ch := r.group.DoChan(productID, func() (interface{}, error) {
		if cached, ok := r.Cached(productID); ok {
			return fetchResult{details: cached, resolved: true}, nil
		}
		details, ok := r.fetch(fetchCtx, productID)
		if ok {
			r.store(productID, details)
		}
		return fetchResult{details: details, resolved: ok}, nil
	})

	select {
	case <-ctx.Done():
		return models.ProductDetails{}, ctx.Err()
	case res := <-ch:
		fr := res.Val.(fetchResult)
		if !fr.resolved {
			return sanitized, nil
		}
		return fr.details.Clone(), nil
	}
}

// fetch tries every candidate id and maps the first usable record.
func (r *Resolver) fetch(ctx context.Context, productID string) (models.ProductDetails, bool) {
	for _, candidate := range productid.Parse(productID).Candidates() {
		record, err := r.source.GetProduct(ctx, candidate)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				r.logger.Debug("Product fetch aborted", "product_id", productID, "candidate", candidate, "error", err)
				return models.ProductDetails{}, false
			}
			r.logger.Debug("Product fetch failed", "product_id", productID, "candidate", candidate, "error", err)
			continue
		}
		if !record.Usable() {
			r.logger.Debug("Product record unusable", "product_id", productID, "candidate", candidate)
			continue
		}

		details := models.PartialFromMap(record).Sanitize(productID)
		r.logger.Debug("Product resolved", "product_id", productID, "candidate", candidate, "name", details.Name)
		return details, true
	}

	r.logger.Warn("Product details unavailable, using fallback", "product_id", productID)
	return models.ProductDetails{}, false
}

// Cached returns the cached details for productID, if any.
func (r *Resolver) Cached(productID string) (models.ProductDetails, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	d, ok := r.cache[productID]
	if !ok {
		return models.ProductDetails{}, false
	}
	return d.Clone(), true
}

// Len returns the number of cached products.
func (r *Resolver) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.cache)
}

func (r *Resolver) store(productID string, d models.ProductDetails) {
	r.mu.Lock()
	r.cache[productID] = d.Clone()
	r.mu.Unlock()
}
