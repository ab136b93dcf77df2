package fetch

import (
	"context"
	"fmt"
	"sync"

	"github.com/bestiary/creaturedex/model"
	"github.com/bestiary/creaturedex/services"
)

// maxPoolEntries bounds the name pool to the catalog's large-but-finite
// listing; paging stops here even if the repository keeps producing pages.
const maxPoolEntries = 2000

// NamePool lazily loads and caches the full catalog name listing the fuzzy
// ranker works against. The listing is fetched once through the repository,
// page by page, and then served read-only; Refresh drops the cache so the
// next access reloads.
type NamePool struct {
	repo     services.Repository
	pageSize int

	mu     sync.Mutex
	loaded bool
	names  []model.NamedRef
	byID   map[int]string
}

// NewNamePool creates a NamePool loading pages of pageSize entries.
func NewNamePool(repo services.Repository, pageSize int) *NamePool {
	if pageSize < 1 {
		pageSize = 1
	}
	return &NamePool{repo: repo, pageSize: pageSize}
}

// Names returns the cached listing, loading it on first use. A load failure
// is returned to the caller and nothing is cached, so a later call retries.
func (p *NamePool) Names(ctx context.Context) ([]model.NamedRef, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.loadLocked(ctx); err != nil {
		return nil, err
	}
	return p.names, nil
}

// DisplayName returns the cached display name for an id, loading the pool on
// first use. ok is false when the id is not in the listing.
func (p *NamePool) DisplayName(ctx context.Context, id int) (string, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.loadLocked(ctx); err != nil {
		return "", false
	}
	name, ok := p.byID[id]
	return name, ok
}

// Refresh drops the cached listing so the next access reloads it.
func (p *NamePool) Refresh() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.loaded = false
	p.names = nil
	p.byID = nil
}

func (p *NamePool) loadLocked(ctx context.Context) error {
	if p.loaded {
		return nil
	}

	names := make([]model.NamedRef, 0, p.pageSize)
	for offset := 0; offset < maxPoolEntries; offset += p.pageSize {
		page, err := p.repo.ListNames(ctx, p.pageSize, offset)
		if err != nil {
			return fmt.Errorf("loading name pool at offset %d: %w", offset, err)
		}
		names = append(names, page...)
		if len(page) < p.pageSize {
			break
		}
	}

	byID := make(map[int]string, len(names))
	for _, ref := range names {
		byID[ref.ID] = ref.Name
	}

	p.loaded = true
	p.names = names
	p.byID = byID
	return nil
}
