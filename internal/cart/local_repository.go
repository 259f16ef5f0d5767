package cart

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"dudhiya-app/internal/catalog"
	"dudhiya-app/internal/logger"
	"dudhiya-app/internal/store"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const cartKeyPrefix = "cart:"

// LocalRepository keeps guest carts in the device key-value store as a
// JSON record {items, total_items, sub_total}. Totals are recomputed and
// persisted with every mutation so reads never re-aggregate.
type LocalRepository struct {
	store store.Store
}

func NewLocalRepository(s store.Store) *LocalRepository {
	return &LocalRepository{store: s}
}

func cartKey(ownerKey string) string {
	return cartKeyPrefix + ownerKey
}

func (r *LocalRepository) load(ctx context.Context, ownerKey string) (*Cart, error) {
	data, err := r.store.Get(ctx, cartKey(ownerKey))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedFetchCart, err)
	}
	if data == nil {
		return &Cart{Items: []CartItem{}}, nil
	}

	var c Cart
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("%w: corrupt cart record: %v", ErrFailedFetchCart, err)
	}
	if c.Items == nil {
		c.Items = []CartItem{}
	}
	return &c, nil
}

func (r *LocalRepository) persist(ctx context.Context, ownerKey string, c *Cart) error {
	data, err := json.Marshal(c)
	if err != nil {
		return err
	}
	return r.store.Set(ctx, cartKey(ownerKey), data)
}

// recompute re-resolves each item's unit price from its snapshot and then
// refreshes the stored totals. Guest prices always come from the snapshot:
// size sale price first, then top-level sale price, then 0.
func recompute(c *Cart) {
	for i := range c.Items {
		item := &c.Items[i]
		if item.Snapshot == nil {
			continue
		}
		item.UnitPrice = catalog.SalePriceFor(item.Snapshot, item.SizeID)
		item.OriginalUnitPrice = catalog.MRPFor(item.Snapshot, item.SizeID)
	}
	c.TotalItems = TotalQuantity(c.Items)
	c.SubTotal = TotalPrice(c.Items)
}

func (r *LocalRepository) Fetch(ctx context.Context, ownerKey string) (*Cart, error) {
	return r.load(ctx, ownerKey)
}

func (r *LocalRepository) Add(ctx context.Context, ownerKey string, params AddItemParams) (*Cart, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "LocalRepository.Add"),
		zap.String("owner", ownerKey),
		zap.String("product_id", params.ProductID),
	)

	if params.Quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	c, err := r.load(ctx, ownerKey)
	if err != nil {
		return nil, err
	}

	merged := false
	for i := range c.Items {
		if c.Items[i].SameVariant(params.ProductID, params.SizeID) {
			c.Items[i].Quantity += params.Quantity
			c.Items[i].UpdatedAt = time.Now()
			merged = true
			break
		}
	}

	if !merged {
		// A guest cart cannot resolve catalog data on its own, so a brand
		// new item must arrive with its snapshot.
		if params.Snapshot == nil {
			return nil, ErrSnapshotRequired
		}

		now := time.Now()
		item := CartItem{
			ID:                uuid.New().String(),
			ProductID:         params.ProductID,
			SizeID:            params.SizeID,
			Name:              params.Snapshot.Name,
			Quantity:          params.Quantity,
			UnitPrice:         catalog.SalePriceFor(params.Snapshot, params.SizeID),
			OriginalUnitPrice: catalog.MRPFor(params.Snapshot, params.SizeID),
			Snapshot:          params.Snapshot,
			CreatedAt:         now,
			UpdatedAt:         now,
		}
		if err := ValidateItem(item); err != nil {
			return nil, err
		}
		c.Items = append(c.Items, item)
	}

	recompute(c)

	if err := r.persist(ctx, ownerKey, c); err != nil {
		log.Error("persist failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrFailedAddItem, err)
	}

	log.Debug("item added", zap.Bool("merged", merged), zap.Int("total_items", c.TotalItems))
	return c, nil
}

func (r *LocalRepository) Update(ctx context.Context, ownerKey string, itemID string, quantity int) (*Cart, error) {
	// Quantity zero or below means removal, in every mode.
	if quantity <= 0 {
		return r.Remove(ctx, ownerKey, itemID)
	}

	c, err := r.load(ctx, ownerKey)
	if err != nil {
		return nil, err
	}

	item, ok := FindItem(c.Items, itemID)
	if !ok {
		return nil, ErrItemNotFound
	}
	item.Quantity = quantity
	item.UpdatedAt = time.Now()

	recompute(c)

	if err := r.persist(ctx, ownerKey, c); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedUpdateItem, err)
	}
	return c, nil
}

func (r *LocalRepository) Remove(ctx context.Context, ownerKey string, itemID string) (*Cart, error) {
	c, err := r.load(ctx, ownerKey)
	if err != nil {
		return nil, err
	}

	kept := c.Items[:0]
	for _, item := range c.Items {
		if item.ID != itemID {
			kept = append(kept, item)
		}
	}
	if len(kept) == len(c.Items) {
		return nil, ErrItemNotFound
	}
	c.Items = kept

	recompute(c)

	if err := r.persist(ctx, ownerKey, c); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedRemoveItem, err)
	}
	return c, nil
}

// Clear deletes the record outright rather than writing an emptied cart, so
// the next fetch rebuilds a fresh one instead of reading stale zeroed totals.
func (r *LocalRepository) Clear(ctx context.Context, ownerKey string) error {
	if err := r.store.Remove(ctx, cartKey(ownerKey)); err != nil {
		return fmt.Errorf("%w: %v", ErrFailedClearCart, err)
	}
	return nil
}

func (r *LocalRepository) Count(ctx context.Context, ownerKey string) (int, error) {
	c, err := r.load(ctx, ownerKey)
	if err != nil {
		return 0, err
	}
	return c.TotalItems, nil
}
