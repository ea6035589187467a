// Package locker implements the embedded client database. Rows live in a
// sqlite engine opened on a scratch file; durability comes from snapshotting
// the whole engine image into a substrate after every mutation.
package locker

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"sync"

	_ "modernc.org/sqlite"

	"github.com/legolocker/backend/internal/config"
	"github.com/legolocker/backend/internal/domain"
	"github.com/legolocker/backend/internal/locker/substrate"
)

// State is the store lifecycle phase.
type State string

const (
	StateUninitialized State = "uninitialized"
	StateLoading       State = "loading"
	StateReady         State = "ready"
	StatePersisting    State = "persisting"
	StateUnavailable   State = "unavailable"
)

// Status describes the store's persistence situation.
type Status struct {
	State     State
	Substrate string
	// Dirty reports that the last snapshot save failed, so the engine holds
	// rows the substrate does not.
	Dirty bool
}

// Store is the local inventory and wishlist database.
type Store struct {
	mu  sync.Mutex
	db  *sql.DB
	sub substrate.Substrate
	cfg config.LockerConfig
	log *slog.Logger

	scratch string
	state   State
	dirty   bool
}

const schema = `
CREATE TABLE IF NOT EXISTS inventory (
	id TEXT NOT NULL,
	name TEXT NOT NULL,
	type TEXT NOT NULL,
	quantity INTEGER NOT NULL DEFAULT 1,
	notes TEXT NOT NULL DEFAULT '',
	createdAt INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS wishlist (
	id TEXT NOT NULL,
	title TEXT NOT NULL,
	subtitle TEXT NOT NULL DEFAULT '',
	createdAt INTEGER NOT NULL
);`

// Open loads the snapshot from the substrate, boots the engine on a scratch
// file and ensures the schema. A nil substrate opens the engine memory-only:
// everything works but nothing survives the process, and Status reports
// StateUnavailable. firstRun seeding follows cfg.SeedOnFirstRun and
// cfg.SeedWhenEmpty.
func Open(ctx context.Context, cfg config.LockerConfig, sub substrate.Substrate, logger *slog.Logger) (*Store, error) {
	s := &Store{
		sub:   sub,
		cfg:   cfg,
		log:   logger.With("component", "locker"),
		state: StateLoading,
	}

	scratch, err := os.CreateTemp("", "legolocker-*.db")
	if err != nil {
		return nil, fmt.Errorf("locker: scratch file: %w", err)
	}
	s.scratch = scratch.Name()

	var hadSnapshot bool
	if sub != nil {
		data, found, err := sub.Load(ctx)
		if err != nil {
			scratch.Close()
			os.Remove(s.scratch)
			return nil, fmt.Errorf("locker: load snapshot: %w", err)
		}
		if found {
			if _, err := scratch.Write(data); err != nil {
				scratch.Close()
				os.Remove(s.scratch)
				return nil, fmt.Errorf("locker: seed scratch: %w", err)
			}
		}
		hadSnapshot = found
	}
	if err := scratch.Close(); err != nil {
		os.Remove(s.scratch)
		return nil, fmt.Errorf("locker: scratch file: %w", err)
	}

	db, err := sql.Open("sqlite", s.scratch)
	if err != nil {
		os.Remove(s.scratch)
		return nil, fmt.Errorf("locker: open engine: %w", err)
	}
	s.db = db

	if _, err := db.ExecContext(ctx, schema); err != nil {
		s.closeQuietly()
		return nil, fmt.Errorf("locker: ensure schema: %w", err)
	}

	if err := s.maybeSeed(ctx, hadSnapshot); err != nil {
		s.closeQuietly()
		return nil, err
	}

	if sub == nil {
		s.state = StateUnavailable
		s.log.Warn("no snapshot substrate, data is memory-only")
	} else {
		s.state = StateReady
	}

	return s, nil
}

func (s *Store) maybeSeed(ctx context.Context, hadSnapshot bool) error {
	seed := false
	switch {
	case !hadSnapshot && s.cfg.SeedOnFirstRun:
		seed = true
	case s.cfg.SeedWhenEmpty:
		var n int
		if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM inventory`).Scan(&n); err != nil {
			return fmt.Errorf("locker: count rows: %w", err)
		}
		seed = n == 0
	}
	if !seed {
		return nil
	}

	if err := s.seedStarterRows(ctx); err != nil {
		return err
	}
	s.log.Info("seeded starter rows")
	return nil
}

// Status reports the persistence state. Safe to call concurrently.
func (s *Store) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()

	name := ""
	if s.sub != nil {
		name = s.sub.Name()
	}
	return Status{State: s.state, Substrate: name, Dirty: s.dirty}
}

// ListInventory returns owned items newest first.
func (s *Store) ListInventory(ctx context.Context) ([]domain.InventoryItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.db.QueryContext(ctx,
		`SELECT rowid, id, name, type, quantity, notes, createdAt
		 FROM inventory ORDER BY createdAt DESC, rowid DESC`)
	if err != nil {
		return nil, fmt.Errorf("locker: list inventory: %w", err)
	}
	defer rows.Close()

	items := []domain.InventoryItem{}
	for rows.Next() {
		var it domain.InventoryItem
		if err := rows.Scan(&it.RowID, &it.ID, &it.Name, &it.Type, &it.Quantity, &it.Notes, &it.CreatedAt); err != nil {
			return nil, fmt.Errorf("locker: scan inventory row: %w", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("locker: list inventory: %w", err)
	}
	return items, nil
}

// AddInventoryItem inserts an owned item and snapshots. Quantity is clamped
// to at least 1.
func (s *Store) AddInventoryItem(ctx context.Context, item domain.InventoryItem) (domain.InventoryItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item.Quantity = domain.NormalizeQuantity(item.Quantity)
	if item.CreatedAt == 0 {
		item.CreatedAt = domain.NowMillis()
	}

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO inventory (id, name, type, quantity, notes, createdAt) VALUES (?, ?, ?, ?, ?, ?)`,
		item.ID, item.Name, item.Type, item.Quantity, item.Notes, item.CreatedAt)
	if err != nil {
		return domain.InventoryItem{}, fmt.Errorf("locker: add inventory item: %w", err)
	}
	item.RowID, _ = res.LastInsertId()

	s.persist(ctx)
	return item, nil
}

// ListWishlist returns wanted items newest first.
func (s *Store) ListWishlist(ctx context.Context) ([]domain.WishlistItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.db.QueryContext(ctx,
		`SELECT rowid, id, title, subtitle, createdAt
		 FROM wishlist ORDER BY createdAt DESC, rowid DESC`)
	if err != nil {
		return nil, fmt.Errorf("locker: list wishlist: %w", err)
	}
	defer rows.Close()

	items := []domain.WishlistItem{}
	for rows.Next() {
		var it domain.WishlistItem
		if err := rows.Scan(&it.RowID, &it.ID, &it.Title, &it.Subtitle, &it.CreatedAt); err != nil {
			return nil, fmt.Errorf("locker: scan wishlist row: %w", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("locker: list wishlist: %w", err)
	}
	return items, nil
}

// AddWishlistItem inserts a wanted item and snapshots.
func (s *Store) AddWishlistItem(ctx context.Context, item domain.WishlistItem) (domain.WishlistItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if item.CreatedAt == 0 {
		item.CreatedAt = domain.NowMillis()
	}

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO wishlist (id, title, subtitle, createdAt) VALUES (?, ?, ?, ?)`,
		item.ID, item.Title, item.Subtitle, item.CreatedAt)
	if err != nil {
		return domain.WishlistItem{}, fmt.Errorf("locker: add wishlist item: %w", err)
	}
	item.RowID, _ = res.LastInsertId()

	s.persist(ctx)
	return item, nil
}

// RemoveWishlistItem deletes by row reference. Removing an absent row is a
// no-op; acquiring and removing are the same deletion.
func (s *Store) RemoveWishlistItem(ctx context.Context, rowID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.db.ExecContext(ctx, `DELETE FROM wishlist WHERE rowid = ?`, rowID); err != nil {
		return fmt.Errorf("locker: remove wishlist item: %w", err)
	}

	s.persist(ctx)
	return nil
}

// Reset drops the snapshot and all rows, recreates the schema and reseeds
// per the first-run setting.
func (s *Store) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.sub != nil {
		if err := s.sub.Drop(ctx); err != nil {
			return fmt.Errorf("locker: reset: %w", err)
		}
	}

	if _, err := s.db.ExecContext(ctx, `DROP TABLE IF EXISTS inventory; DROP TABLE IF EXISTS wishlist;`); err != nil {
		return fmt.Errorf("locker: reset: %w", err)
	}
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("locker: reset: %w", err)
	}

	if s.cfg.SeedOnFirstRun {
		if err := s.seedStarterRows(ctx); err != nil {
			return err
		}
	}

	s.persist(ctx)
	return nil
}

// Close shuts the engine down and removes the scratch file. The substrate
// keeps its last saved snapshot.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closeQuietly()
}

func (s *Store) closeQuietly() error {
	var err error
	if s.db != nil {
		err = s.db.Close()
		s.db = nil
	}
	if s.scratch != "" {
		os.Remove(s.scratch)
	}
	s.state = StateUninitialized
	return err
}

// persist snapshots the engine image into the substrate. Failures are logged
// and flip the dirty flag; the in-engine rows stay intact. Callers hold the
// mutex.
func (s *Store) persist(ctx context.Context) {
	if s.sub == nil {
		return
	}
	s.state = StatePersisting
	defer func() { s.state = StateReady }()

	data, err := os.ReadFile(s.scratch)
	if err != nil {
		s.dirty = true
		s.log.Error("snapshot read failed", slog.String("error", err.Error()))
		return
	}
	if err := s.sub.Save(ctx, data); err != nil {
		s.dirty = true
		s.log.Error("snapshot save failed",
			slog.String("substrate", s.sub.Name()),
			slog.String("error", err.Error()),
		)
		return
	}
	s.dirty = false
}
