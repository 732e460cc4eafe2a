package db

import (
	"context"
	"fmt"
	"log"

	"github.com/redis/go-redis/v9"

	"github.com/ahmedshifathedataengineer/IS601-Final-Project/internal/cache"
	"github.com/ahmedshifathedataengineer/IS601-Final-Project/internal/models"
)

// CachedItemRepository is a read-through cache over ItemRepository.
// It only serves the item read endpoints; order validation always reads
// the database directly, so a stale cache entry can never admit an
// order against a deleted item.
type CachedItemRepository struct {
	repo  *ItemRepository
	cache *cache.RedisCache
}

func NewCachedItemRepository(repo *ItemRepository, cache *cache.RedisCache) *CachedItemRepository {
	return &CachedItemRepository{repo: repo, cache: cache}
}

func itemKey(id int) string {
	return fmt.Sprintf("item:%d", id)
}

func allItemsKey() string {
	return "items:all"
}

// GetAll returns all items, from cache when possible.
func (r *CachedItemRepository) GetAll(ctx context.Context) ([]models.Item, error) {
	cacheKey := allItemsKey()

	var items []models.Item
	if err := r.cache.Get(ctx, cacheKey, &items); err == nil {
		log.Println("📦 Cache HIT: all items")
		return items, nil
	}

	items, err := r.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	if err := r.cache.Set(ctx, cacheKey, items); err != nil {
		log.Printf("⚠️ Failed to cache items: %v", err)
	}

	return items, nil
}

// GetByID returns a single item, from cache when possible.
func (r *CachedItemRepository) GetByID(ctx context.Context, id int) (*models.Item, error) {
	cacheKey := itemKey(id)

	var item models.Item
	err := r.cache.Get(ctx, cacheKey, &item)
	if err == nil {
		log.Printf("📦 Cache HIT: item %d", id)
		return &item, nil
	}
	if err != redis.Nil {
		log.Printf("⚠️ Cache error: %v", err)
	}

	i, err := r.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if i == nil {
		return nil, nil
	}

	if err := r.cache.Set(ctx, cacheKey, i); err != nil {
		log.Printf("⚠️ Failed to cache item: %v", err)
	}

	return i, nil
}

// Create inserts a new item and invalidates the list cache.
func (r *CachedItemRepository) Create(ctx context.Context, req models.CreateItemRequest) (*models.Item, error) {
	item, err := r.repo.Create(ctx, req)
	if err != nil {
		return nil, err
	}

	if err := r.cache.Delete(ctx, allItemsKey()); err != nil {
		log.Printf("⚠️ Failed to invalidate cache: %v", err)
	}

	return item, nil
}

// Update writes through and invalidates both caches for the item.
func (r *CachedItemRepository) Update(ctx context.Context, id int, req models.UpdateItemRequest) (*models.Item, error) {
	item, err := r.repo.Update(ctx, id, req)
	if err != nil {
		return nil, err
	}

	if err := r.cache.Delete(ctx, itemKey(id), allItemsKey()); err != nil {
		log.Printf("⚠️ Failed to invalidate cache: %v", err)
	}

	return item, nil
}

// Delete removes an item and invalidates both caches.
func (r *CachedItemRepository) Delete(ctx context.Context, id int) error {
	if err := r.repo.Delete(ctx, id); err != nil {
		return err
	}

	if err := r.cache.Delete(ctx, itemKey(id), allItemsKey()); err != nil {
		log.Printf("⚠️ Failed to invalidate cache: %v", err)
	}

	return nil
}
