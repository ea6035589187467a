// Command locker is the LEGO inventory tracker CLI. By default it works
// against the embedded local database; -remote switches to the sync backend.
//
// Usage:
//
//	locker [flags] inventory list
//	locker [flags] inventory add -id 75192 -name "Millennium Falcon" [-type set] [-qty 1] [-notes ...]
//	locker [flags] wishlist list
//	locker [flags] wishlist add <inventory-row>
//	locker [flags] wishlist remove|acquired <row>
//	locker [flags] search <query>
//	locker [flags] search add <set_num>
//	locker [flags] reset
//	locker [flags] status
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/legolocker/backend/internal/adapter/provider/rebrickable"
	"github.com/legolocker/backend/internal/app"
	"github.com/legolocker/backend/internal/config"
	"github.com/legolocker/backend/internal/domain"
	"github.com/legolocker/backend/internal/locker"
	"github.com/legolocker/backend/internal/locker/remote"
	"github.com/legolocker/backend/internal/locker/substrate"
)

// backend is the slice of locker operations shared by the local store and
// the remote client. remove takes the listed item so each backend can use
// its own row reference.
type backend interface {
	ListInventory(ctx context.Context) ([]domain.InventoryItem, error)
	AddInventoryItem(ctx context.Context, item domain.InventoryItem) (domain.InventoryItem, error)
	ListWishlist(ctx context.Context) ([]domain.WishlistItem, error)
	AddWishlistItem(ctx context.Context, item domain.WishlistItem) (domain.WishlistItem, error)
	RemoveWishlist(ctx context.Context, item domain.WishlistItem) error
}

type localBackend struct{ store *locker.Store }

func (b localBackend) ListInventory(ctx context.Context) ([]domain.InventoryItem, error) {
	return b.store.ListInventory(ctx)
}
func (b localBackend) AddInventoryItem(ctx context.Context, item domain.InventoryItem) (domain.InventoryItem, error) {
	return b.store.AddInventoryItem(ctx, item)
}
func (b localBackend) ListWishlist(ctx context.Context) ([]domain.WishlistItem, error) {
	return b.store.ListWishlist(ctx)
}
func (b localBackend) AddWishlistItem(ctx context.Context, item domain.WishlistItem) (domain.WishlistItem, error) {
	return b.store.AddWishlistItem(ctx, item)
}
func (b localBackend) RemoveWishlist(ctx context.Context, item domain.WishlistItem) error {
	return b.store.RemoveWishlistItem(ctx, item.RowID)
}

type remoteBackend struct{ client *remote.Client }

func (b remoteBackend) ListInventory(ctx context.Context) ([]domain.InventoryItem, error) {
	return b.client.ListInventory(ctx)
}
func (b remoteBackend) AddInventoryItem(ctx context.Context, item domain.InventoryItem) (domain.InventoryItem, error) {
	return b.client.AddInventoryItem(ctx, item)
}
func (b remoteBackend) ListWishlist(ctx context.Context) ([]domain.WishlistItem, error) {
	return b.client.ListWishlist(ctx)
}
func (b remoteBackend) AddWishlistItem(ctx context.Context, item domain.WishlistItem) (domain.WishlistItem, error) {
	return b.client.AddWishlistItem(ctx, item)
}
func (b remoteBackend) RemoveWishlist(ctx context.Context, item domain.WishlistItem) error {
	return b.client.RemoveWishlistItem(ctx, item.DocID)
}

type cliConfig struct {
	Locker      config.LockerConfig      `yaml:"locker"`
	Rebrickable config.RebrickableConfig `yaml:"rebrickable"`
	Log         config.LogConfig         `yaml:"log"`
}

func main() {
	remoteMode := flag.Bool("remote", false, "use the sync backend instead of the local store")
	email := flag.String("email", "", "sync account email (remote mode)")
	password := flag.String("password", "", "sync account password (remote mode)")
	flag.Parse()

	var cfg cliConfig
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		fatal("load configuration: %v", err)
	}
	logger := app.NewLogger(cfg.Log)

	ctx := context.Background()
	args := flag.Args()
	if len(args) == 0 {
		flag.Usage()
		os.Exit(2)
	}

	c := cli{
		cfg:     cfg,
		log:     logger,
		catalog: rebrickable.NewClient(cfg.Rebrickable, logger),
		remote:  *remoteMode,
	}

	if *remoteMode {
		client := remote.NewClient(cfg.Locker.ServerURL, logger)
		if *email == "" || *password == "" {
			fatal("remote mode needs -email and -password")
		}
		if err := client.SignIn(ctx, *email, *password); err != nil {
			fatal("sign in: %v", err)
		}
		c.backend = remoteBackend{client: client}
	} else {
		sub, err := substrate.Probe(cfg.Locker.Substrates, cfg.Locker.DataDir, logger)
		if err != nil {
			logger.Warn("no substrate available, running memory-only", slog.String("error", err.Error()))
			sub = nil
		}
		store, err := locker.Open(ctx, cfg.Locker, sub, logger)
		if err != nil {
			fatal("open local store: %v", err)
		}
		defer store.Close()
		c.store = store
		c.backend = localBackend{store: store}
	}

	if err := c.run(ctx, args); err != nil {
		fatal("%v", err)
	}
}

type cli struct {
	cfg     cliConfig
	log     *slog.Logger
	backend backend
	store   *locker.Store // nil in remote mode
	catalog *rebrickable.Client
	remote  bool
}

func (c *cli) run(ctx context.Context, args []string) error {
	switch args[0] {
	case "inventory":
		return c.runInventory(ctx, args[1:])
	case "wishlist":
		return c.runWishlist(ctx, args[1:])
	case "search":
		return c.runSearch(ctx, args[1:])
	case "reset":
		return c.runReset(ctx)
	case "status":
		return c.runStatus()
	default:
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func (c *cli) runInventory(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("inventory needs a subcommand: list, add")
	}

	switch args[0] {
	case "list":
		items, err := c.backend.ListInventory(ctx)
		if err != nil {
			return err
		}
		c.printInventory(items)
		return nil

	case "add":
		fs := flag.NewFlagSet("inventory add", flag.ExitOnError)
		id := fs.String("id", "", "catalog number, e.g. 75192 or 3001")
		name := fs.String("name", "", "item name")
		typ := fs.String("type", domain.ItemTypeSet, "set or part")
		qty := fs.Int("qty", 1, "quantity")
		notes := fs.String("notes", "", "free-form notes")
		fs.Parse(args[1:])

		if *id == "" || *name == "" {
			return fmt.Errorf("inventory add needs -id and -name")
		}

		item, err := c.addInventory(ctx, domain.InventoryItem{
			ID:       *id,
			Name:     *name,
			Type:     *typ,
			Quantity: *qty,
			Notes:    *notes,
		})
		if err != nil {
			return err
		}
		fmt.Printf("Added %s (%s) x%d to inventory.\n", item.Name, item.ID, item.Quantity)
		return nil

	default:
		return fmt.Errorf("unknown inventory subcommand %q", args[0])
	}
}

func (c *cli) runWishlist(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("wishlist needs a subcommand: list, add, remove, acquired")
	}

	switch args[0] {
	case "list":
		items, err := c.backend.ListWishlist(ctx)
		if err != nil {
			return err
		}
		c.printWishlist(items)
		return nil

	case "add":
		if len(args) < 2 {
			return fmt.Errorf("wishlist add needs an inventory row number")
		}
		row, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid row number %q", args[1])
		}

		inv, err := c.backend.ListInventory(ctx)
		if err != nil {
			return err
		}
		if row < 1 || row > len(inv) {
			return fmt.Errorf("row %d out of range, inventory has %d rows", row, len(inv))
		}

		derived := domain.WishlistFromInventory(inv[row-1])
		added, err := c.addWishlist(ctx, derived)
		if err != nil {
			return err
		}
		fmt.Printf("Added %s to wishlist.\n", added.Title)
		return nil

	case "remove", "acquired":
		// Acquiring and removing are the same deletion.
		if len(args) < 2 {
			return fmt.Errorf("wishlist %s needs a row number", args[0])
		}
		row, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid row number %q", args[1])
		}

		items, err := c.backend.ListWishlist(ctx)
		if err != nil {
			return err
		}
		if row < 1 || row > len(items) {
			return fmt.Errorf("row %d out of range, wishlist has %d rows", row, len(items))
		}

		if err := c.removeWishlist(ctx, items[row-1]); err != nil {
			return err
		}
		fmt.Printf("Removed %s from wishlist.\n", items[row-1].Title)
		return nil

	default:
		return fmt.Errorf("unknown wishlist subcommand %q", args[0])
	}
}

func (c *cli) runSearch(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("search needs a query or the add subcommand")
	}

	if args[0] == "add" {
		if len(args) < 2 {
			return fmt.Errorf("search add needs a set number")
		}
		return c.importSet(ctx, args[1])
	}

	result, err := c.catalog.SearchSets(ctx, strings.Join(args, " "))
	if err != nil {
		return err
	}

	if len(result.Sets) == 0 {
		fmt.Println("No sets found.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "#\tSET\tNAME\tYEAR\tPARTS")
	for i, s := range result.Sets {
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%d\n", i+1, s.SetNum, s.Name, s.Year, s.NumParts)
	}
	w.Flush()
	fmt.Printf("%d of %d matches shown.\n", len(result.Sets), result.Count)
	return nil
}

func (c *cli) importSet(ctx context.Context, setNum string) error {
	result, err := c.catalog.SearchSets(ctx, setNum)
	if err != nil {
		return err
	}
	if len(result.Sets) == 0 {
		return fmt.Errorf("no catalog entry for %q", setNum)
	}

	item, err := c.addInventory(ctx, result.Sets[0].AsInventoryItem())
	if err != nil {
		return err
	}
	fmt.Printf("Imported %s (%s) to inventory.\n", item.Name, item.ID)
	return nil
}

func (c *cli) runReset(ctx context.Context) error {
	if c.store == nil {
		return fmt.Errorf("reset only applies to the local store")
	}
	if err := c.store.Reset(ctx); err != nil {
		return err
	}
	fmt.Println("Local store reset.")
	return nil
}

func (c *cli) runStatus() error {
	if c.store == nil {
		fmt.Println("Mode: remote sync")
		return nil
	}

	st := c.store.Status()
	fmt.Printf("Mode: local\nState: %s\n", st.State)
	if st.Substrate != "" {
		fmt.Printf("Substrate: %s\n", st.Substrate)
	}
	if st.Dirty {
		fmt.Println("Warning: last snapshot save failed, recent changes are not persisted.")
	}
	return nil
}

// addInventory applies the write. In remote mode write failures are logged
// and the item is still rendered, so the CLI stays responsive when the
// backend is flaky.
func (c *cli) addInventory(ctx context.Context, item domain.InventoryItem) (domain.InventoryItem, error) {
	added, err := c.backend.AddInventoryItem(ctx, item)
	if err != nil {
		if !c.remote {
			return domain.InventoryItem{}, err
		}
		c.log.Warn("remote write failed", slog.String("error", err.Error()))
		item.Quantity = domain.NormalizeQuantity(item.Quantity)
		return item, nil
	}
	return added, nil
}

func (c *cli) addWishlist(ctx context.Context, item domain.WishlistItem) (domain.WishlistItem, error) {
	added, err := c.backend.AddWishlistItem(ctx, item)
	if err != nil {
		if !c.remote {
			return domain.WishlistItem{}, err
		}
		c.log.Warn("remote write failed", slog.String("error", err.Error()))
		return item, nil
	}
	return added, nil
}

func (c *cli) removeWishlist(ctx context.Context, item domain.WishlistItem) error {
	if err := c.backend.RemoveWishlist(ctx, item); err != nil {
		if !c.remote {
			return err
		}
		c.log.Warn("remote write failed", slog.String("error", err.Error()))
	}
	return nil
}

func (c *cli) printInventory(items []domain.InventoryItem) {
	starter := false
	if len(items) == 0 && c.remote {
		// A fresh account has no rows; show the starter rows display-only.
		items = locker.StarterInventory()
		starter = true
	}
	if len(items) == 0 {
		fmt.Println("Inventory is empty.")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "#\tID\tNAME\tTYPE\tQTY\tNOTES")
	for i, it := range items {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%d\t%s\n", i+1, it.ID, it.Name, it.Type, it.Quantity, it.Notes)
	}
	w.Flush()
	if starter {
		fmt.Println("(starter data, not yet saved to your account)")
	}
}

func (c *cli) printWishlist(items []domain.WishlistItem) {
	starter := false
	if len(items) == 0 && c.remote {
		items = locker.StarterWishlist()
		starter = true
	}
	if len(items) == 0 {
		fmt.Println("Wishlist is empty.")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "#\tID\tTITLE\tSUBTITLE")
	for i, it := range items {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", i+1, it.ID, it.Title, it.Subtitle)
	}
	w.Flush()
	if starter {
		fmt.Println("(starter data, not yet saved to your account)")
	}
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
