package domain

import (
	"fmt"
	"strings"
)

// Item types. The tracker only distinguishes whole sets from loose parts.
const (
	ItemTypeSet  = "set"
	ItemTypePart = "part"
)

// InventoryItem is one owned set or part. RowID is the engine's opaque row
// reference (sqlite rowid locally, document id remotely) used as the
// deletion key; it is zero-valued until the item has been persisted.
type InventoryItem struct {
	RowID     int64
	DocID     string // set when backed by the remote document store
	ID        string // catalog number, e.g. "75192" or "3001"
	Name      string
	Type      string
	Quantity  int
	Notes     string
	CreatedAt int64
}

// WishlistItem is one wanted set or part. Like InventoryItem, RowID/DocID
// are the opaque deletion keys.
type WishlistItem struct {
	RowID     int64
	DocID     string
	ID        string
	Title     string
	Subtitle  string
	CreatedAt int64
}

// NormalizeQuantity clamps a quantity to the default of 1 when it is not a
// valid positive number.
func NormalizeQuantity(q int) int {
	if q < 1 {
		return 1
	}
	return q
}

// WishlistFromInventory derives a wishlist entry from an owned item:
// title is the item's name, subtitle summarizes type and quantity,
// e.g. "PART • 64 pcs".
func WishlistFromInventory(it InventoryItem) WishlistItem {
	return WishlistItem{
		ID:       it.ID,
		Title:    it.Name,
		Subtitle: fmt.Sprintf("%s • %d pcs", strings.ToUpper(it.Type), it.Quantity),
	}
}
