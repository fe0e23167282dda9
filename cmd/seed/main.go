// Command seed loads the restaurant menu and an optional demo customer into
// the configured store.
package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"romeo/internal/config"
	"romeo/internal/model"
	"romeo/internal/repository"
	"romeo/internal/service"
	"romeo/internal/store"
)

func main() {
	withDemoUser := flag.Bool("demo-user", false, "also create the demo customer account")
	flag.Parse()

	cfg := config.Load()

	backend, err := newBackend(cfg)
	if err != nil {
		log.Fatalf("store init: %v", err)
	}
	st := store.Namespaced(backend, cfg.StoreNamespace)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	menuRepo := repository.NewMenuRepository(st)
	menuService := service.NewMenuService(menuRepo)
	if err := menuService.Replace(ctx, defaultMenu()); err != nil {
		log.Fatalf("seed menu: %v", err)
	}
	log.Printf("seeded %d menu items", len(defaultMenu()))

	if *withDemoUser {
		if err := seedDemoUser(ctx, st); err != nil {
			log.Fatalf("seed demo user: %v", err)
		}
		log.Println("seeded demo customer demo@romeo.example (password: letmein)")
	}
}

func defaultMenu() []model.MenuItem {
	return []model.MenuItem{
		{ID: "margherita", Name: "Margherita Pizza", Description: "Tomato, mozzarella, basil", Price: decimal.NewFromFloat(12.00), Category: "mains"},
		{ID: "diavola", Name: "Diavola Pizza", Description: "Spicy salami, chili oil", Price: decimal.NewFromFloat(14.50), Category: "mains"},
		{ID: "carbonara", Name: "Spaghetti Carbonara", Description: "Guanciale, pecorino, egg", Price: decimal.NewFromFloat(13.00), Category: "mains"},
		{ID: "caesar", Name: "Caesar Salad", Description: "Romaine, parmesan, croutons", Price: decimal.NewFromFloat(6.50), Category: "starters"},
		{ID: "bruschetta", Name: "Bruschetta", Description: "Grilled bread, tomato, garlic", Price: decimal.NewFromFloat(5.00), Category: "starters"},
		{ID: "tiramisu", Name: "Tiramisu", Description: "Espresso, mascarpone, cocoa", Price: decimal.NewFromFloat(7.00), Category: "desserts"},
	}
}

func seedDemoUser(ctx context.Context, st store.Store) error {
	users := repository.NewUserRepository(st)
	if _, err := users.FindByEmail(ctx, "demo@romeo.example"); err == nil {
		return nil // already present
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("letmein"), 10)
	if err != nil {
		return err
	}
	return users.Append(ctx, model.User{
		ID:           uuid.New().String(),
		Name:         "Demo Customer",
		Email:        "demo@romeo.example",
		Phone:        "+1-555-0100",
		PasswordHash: string(hashed),
		CreatedAt:    time.Now(),
	})
}

func newBackend(cfg *config.Config) (store.Store, error) {
	switch cfg.StoreBackend {
	case "mysql":
		return store.NewMySQL(cfg.MySQLDSN)
	case "memory":
		return store.NewMemory(), nil
	default:
		return store.NewRedis(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB), nil
	}
}
