package rebrickable

import "github.com/legolocker/backend/internal/domain"

// ImportNote is stamped on inventory items created from a catalog result.
const ImportNote = "Imported from Rebrickable."

// SearchResult is the structured result of a catalog search. Count is the
// total match count upstream, which can exceed len(Sets) when the page size
// truncates the list.
type SearchResult struct {
	Count int
	Sets  []Set
}

// Set is one catalog entry.
type Set struct {
	SetNum   string
	Name     string
	Year     int
	NumParts int
}

// AsInventoryItem converts a catalog entry into an owned set with the
// default import quantity.
func (s Set) AsInventoryItem() domain.InventoryItem {
	return domain.InventoryItem{
		ID:       s.SetNum,
		Name:     s.Name,
		Type:     domain.ItemTypeSet,
		Quantity: 1,
		Notes:    ImportNote,
	}
}

// searchResponse mirrors the API's JSON envelope.
type searchResponse struct {
	Count   int         `json:"count"`
	Results []setResult `json:"results"`
}

type setResult struct {
	SetNum   string `json:"set_num"`
	Name     string `json:"name"`
	Year     int    `json:"year"`
	NumParts int    `json:"num_parts"`
}
