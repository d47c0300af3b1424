package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"github.com/kingrain94/notes-api/internal/auth"
	"github.com/kingrain94/notes-api/internal/config"
	"github.com/kingrain94/notes-api/internal/domain"
	"github.com/kingrain94/notes-api/pkg/logger"
)

// Seeds the database with two tenants and an admin plus a member for each,
// all sharing the password "password". Safe to run repeatedly.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found")
	}

	appLogger := logger.NewLogger(os.Getenv("APP_ENV"))

	dbConnections, err := config.NewDatabaseConnections()
	if err != nil {
		appLogger.Fatal("Failed to connect to database", err)
	}
	defer dbConnections.Close()

	db := dbConnections.Writer

	if err := db.AutoMigrate(&domain.Tenant{}, &domain.User{}, &domain.Note{}); err != nil {
		appLogger.Fatal("Failed to migrate schema", err)
	}

	passwordHash, err := auth.HashPassword("password", auth.DefaultBcryptCost)
	if err != nil {
		appLogger.Fatal("Failed to hash password", err)
	}

	tenants := []domain.Tenant{
		{Slug: "acme", Name: "Acme", Plan: domain.PlanFree},
		{Slug: "globex", Name: "Globex", Plan: domain.PlanFree},
	}

	for i := range tenants {
		tenant := &tenants[i]
		if err := upsertTenant(db, tenant); err != nil {
			appLogger.Fatal("Failed to seed tenant", err)
		}

		users := []domain.User{
			{TenantID: tenant.ID, Email: "admin@" + tenant.Slug + ".test", PasswordHash: passwordHash, Role: domain.RoleAdmin},
			{TenantID: tenant.ID, Email: "user@" + tenant.Slug + ".test", PasswordHash: passwordHash, Role: domain.RoleMember},
		}
		for j := range users {
			if err := upsertUser(db, &users[j]); err != nil {
				appLogger.Fatal("Failed to seed user", err)
			}
		}

		if err := seedWelcomeNote(db, tenant, &users[0]); err != nil {
			appLogger.Fatal("Failed to seed note", err)
		}

		appLogger.Infof("Seeded tenant %s with %d users", tenant.Slug, len(users))
	}

	appLogger.Info("Seeding complete")
	appLogger.Sync()
}

func upsertTenant(db *gorm.DB, tenant *domain.Tenant) error {
	return db.Where(domain.Tenant{Slug: tenant.Slug}).
		Attrs(domain.Tenant{Name: tenant.Name, Plan: tenant.Plan}).
		FirstOrCreate(tenant).Error
}

func upsertUser(db *gorm.DB, user *domain.User) error {
	return db.Where(domain.User{Email: user.Email}).
		Attrs(domain.User{TenantID: user.TenantID, PasswordHash: user.PasswordHash, Role: user.Role}).
		FirstOrCreate(user).Error
}

func seedWelcomeNote(db *gorm.DB, tenant *domain.Tenant, author *domain.User) error {
	note := domain.Note{
		TenantID: tenant.ID,
		UserID:   author.ID,
		Title:    "Welcome to " + tenant.Name,
		Content:  "This note was created by the seeder.",
	}
	return db.Where(domain.Note{TenantID: tenant.ID, Title: note.Title}).
		Attrs(note).
		FirstOrCreate(&note).Error
}
