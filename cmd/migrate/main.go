package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/ims/backend/internal/domain/identity"
	"github.com/ims/backend/internal/domain/inventory"
	"github.com/ims/backend/internal/domain/partner"
	"github.com/ims/backend/internal/domain/trade"
	"github.com/ims/backend/internal/infrastructure/config"
	"github.com/ims/backend/internal/infrastructure/logger"
	"github.com/ims/backend/internal/infrastructure/persistence"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

func main() {
	var logLevel string
	flag.StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		printUsage()
		os.Exit(1)
	}
	command := args[0]

	log, err := logger.New(&logger.Config{
		Level:      logLevel,
		Format:     "console",
		Output:     "stdout",
		TimeFormat: "2006-01-02 15:04:05",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration", zap.Error(err))
	}

	db, err := persistence.NewDatabase(&cfg.Database)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		_ = db.Close()
	}()

	switch command {
	case "up":
		if err := db.Migrate(); err != nil {
			log.Fatal("Migration failed", zap.Error(err))
		}
		log.Info("Schema migrated")

	case "seed-admin":
		if len(args) < 4 {
			log.Fatal("Usage: migrate seed-admin <username> <email> <password>")
		}
		if err := seedAdmin(db, args[1], args[2], args[3]); err != nil {
			log.Fatal("Admin seed failed", zap.Error(err))
		}
		log.Info("Admin account ready", zap.String("username", args[1]))

	case "seed-demo":
		if err := db.Migrate(); err != nil {
			log.Fatal("Migration failed", zap.Error(err))
		}
		if err := seedDemo(db, log); err != nil {
			log.Fatal("Demo seed failed", zap.Error(err))
		}
		log.Info("Demo data seeded")

	default:
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("Usage: migrate [flags] <command>")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  up                                      Run schema migration")
	fmt.Println("  seed-admin <username> <email> <password>  Create an admin account")
	fmt.Println("  seed-demo                               Migrate and load sample data")
	fmt.Println()
	fmt.Println("Flags:")
	flag.PrintDefaults()
}

// seedAdmin creates an administrator account. Re-running with an
// existing username is a no-op.
func seedAdmin(db *persistence.Database, username, email, password string) error {
	ctx := context.Background()
	users := persistence.NewGormUserRepository(db.DB)

	exists, err := users.ExistsByUsername(ctx, username)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	user, err := identity.NewUser("System", "Administrator", email, username, password, password)
	if err != nil {
		return err
	}
	user.UserType = identity.UserTypeAdmin

	return users.Save(ctx, user)
}

// seedDemo loads a small data set: a customer, a supplier, a few
// items, one completed order and its sale rows for the dashboard.
func seedDemo(db *persistence.Database, log *zap.Logger) error {
	ctx := context.Background()
	customers := persistence.NewGormCustomerRepository(db.DB)
	suppliers := persistence.NewGormSupplierRepository(db.DB)
	items := persistence.NewGormItemRepository(db.DB)
	orders := persistence.NewGormOrderRepository(db.DB)
	sales := persistence.NewGormSaleRepository(db.DB)

	customer, err := partner.NewCustomer("Acme Hardware", "purchasing@acme.example", "555-0100", "12 Depot Road", 0)
	if err != nil {
		return err
	}
	if err := customers.Save(ctx, customer); err != nil {
		return err
	}

	supplier, err := partner.NewSupplier("Northside Wholesale", "Pat Miller", "sales@northside.example", "555-0190", "4 Dock Street", 0)
	if err != nil {
		return err
	}
	if err := suppliers.Save(ctx, supplier); err != nil {
		return err
	}

	demoItems := []struct {
		name     string
		sku      string
		category string
		quantity int
		price    string
	}{
		{"Claw Hammer", "TOOL-001", "Tools", 40, "12.50"},
		{"Wood Screws 4x40 (box)", "FIX-010", "Fixings", 120, "3.20"},
		{"Safety Goggles", "PPE-003", "Safety", 8, "7.90"},
	}

	created := make([]*inventory.Item, 0, len(demoItems))
	for _, d := range demoItems {
		price, err := decimal.NewFromString(d.price)
		if err != nil {
			return err
		}
		item, err := inventory.NewItem(d.name, d.sku, d.category, d.quantity, nil, &price, 0)
		if err != nil {
			return err
		}
		if err := items.Save(ctx, item); err != nil {
			return err
		}
		created = append(created, item)
	}

	order, err := trade.NewOrder(customer.ID, 0)
	if err != nil {
		return err
	}
	order.Status = trade.StatusCompleted
	for _, item := range created[:2] {
		qty := 2
		item.Allocate(qty)
		if err := items.Save(ctx, item); err != nil {
			return err
		}
		order.AddAllocatedItem(item.ID, qty, item.EffectivePrice())
	}
	order.RecalculateTotal()
	if err := orders.Create(ctx, order); err != nil {
		return err
	}

	for _, line := range order.Items {
		sale := &trade.Sale{
			OrderID:    order.ID,
			ProductID:  line.InventoryID,
			Quantity:   line.Quantity,
			SaleAmount: line.TotalPrice(),
		}
		if err := sales.Create(ctx, sale); err != nil {
			return err
		}
	}

	log.Info("Seeded demo records",
		zap.Uint("customer_id", customer.ID),
		zap.Uint("order_id", order.ID),
		zap.Int("items", len(created)),
	)
	return nil
}
