package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"storefront/internal/database"
	"storefront/internal/domain"
	"storefront/internal/repository"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file, relying on process environment")
	}

	db, err := database.Connect(getDSN())
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := repository.Migrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	users := repository.NewUserRepository(db)
	ctx := context.Background()

	seed := func(name, email, password string, role domain.UserRole) {
		exists, err := users.ExistsByEmail(ctx, email)
		if err != nil {
			log.Fatal(err)
		}
		if exists {
			log.Printf("skip %s: already present", email)
			return
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			log.Fatal(err)
		}
		u := &domain.User{
			Name:         name,
			Email:        email,
			PasswordHash: string(hash),
			Role:         role,
		}
		if err := users.Create(ctx, u); err != nil {
			log.Fatal(err)
		}
		log.Printf("created %s (%s)", email, role)
	}

	seed("Store Admin", "admin@storefront.local", "admin123", domain.RoleAdmin)
	for i := 1; i <= 3; i++ {
		seed(
			fmt.Sprintf("Demo Customer %d", i),
			fmt.Sprintf("customer%d@storefront.local", i),
			"customer123",
			domain.RoleCustomer,
		)
	}

	log.Println("Seed completed")
	log.Println("Admin: admin@storefront.local / admin123")
	log.Println("Customers: customer1..3@storefront.local / customer123")
}

func getDSN() string {
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		return dsn
	}
	return "storefront.db"
}
