package locker

import (
	"context"
	"fmt"

	"github.com/legolocker/backend/internal/domain"
)

// Starter rows shown to a brand-new user so the lists are not empty.
var (
	starterInventory = []domain.InventoryItem{
		{ID: "75192", Name: "Millennium Falcon", Type: domain.ItemTypeSet, Quantity: 1},
		{ID: "21336", Name: "The Office", Type: domain.ItemTypeSet, Quantity: 1},
		{ID: "3001", Name: "Brick 2x4", Type: domain.ItemTypePart, Quantity: 64},
	}

	starterWishlist = []domain.WishlistItem{
		{ID: "10316", Title: "Rivendell", Subtitle: "The Lord of the Rings"},
		{ID: "31154", Title: "Red Fox", Subtitle: "Creator 3-in-1"},
	}
)

// StarterInventory returns a copy of the starter inventory rows. The remote
// client renders them display-only for accounts with no data.
func StarterInventory() []domain.InventoryItem {
	out := make([]domain.InventoryItem, len(starterInventory))
	copy(out, starterInventory)
	return out
}

// StarterWishlist returns a copy of the starter wishlist rows.
func StarterWishlist() []domain.WishlistItem {
	out := make([]domain.WishlistItem, len(starterWishlist))
	copy(out, starterWishlist)
	return out
}

// seedStarterRows inserts the starter data. Rows get descending timestamps
// so list order matches the declaration order. Callers hold the mutex.
func (s *Store) seedStarterRows(ctx context.Context) error {
	base := domain.NowMillis()

	for i, it := range starterInventory {
		_, err := s.db.ExecContext(ctx,
			`INSERT INTO inventory (id, name, type, quantity, notes, createdAt) VALUES (?, ?, ?, ?, ?, ?)`,
			it.ID, it.Name, it.Type, it.Quantity, it.Notes, base-int64(i))
		if err != nil {
			return fmt.Errorf("locker: seed inventory: %w", err)
		}
	}

	for i, it := range starterWishlist {
		_, err := s.db.ExecContext(ctx,
			`INSERT INTO wishlist (id, title, subtitle, createdAt) VALUES (?, ?, ?, ?)`,
			it.ID, it.Title, it.Subtitle, base-int64(i))
		if err != nil {
			return fmt.Errorf("locker: seed wishlist: %w", err)
		}
	}

	return nil
}
