package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"adminpanel/internal/config"
	"adminpanel/internal/db"
	"adminpanel/internal/model"
	"adminpanel/internal/repository"
	"adminpanel/internal/service"
)

func main() {
	log.Println("Starting seed script...")

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if cfg.SeedAdminPass == "" {
		log.Fatal("SEED_ADMIN_PASSWORD environment variable is required")
	}

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := db.Migrate(gormDB); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	repos := repository.New(gormDB)
	ctx := context.Background()

	if err := seedSuperAdmin(ctx, repos, cfg); err != nil {
		log.Fatalf("Failed to seed super admin: %v", err)
	}

	created, updated, err := seedUsers(ctx, repos.Users)
	if err != nil {
		log.Fatalf("Failed to seed users: %v", err)
	}
	log.Printf("Users seeded: %d created, %d updated", created, updated)

	posts, err := seedPosts(ctx, repos.Posts)
	if err != nil {
		log.Fatalf("Failed to seed posts: %v", err)
	}
	log.Printf("Posts seeded: %d created", posts)

	log.Println("Seed completed successfully!")
}

// seedSuperAdmin creates or updates the bootstrap SUPER_ADMIN account.
func seedSuperAdmin(ctx context.Context, repos *repository.Repositories, cfg *config.Config) error {
	hashed, err := service.HashPassword(cfg.SeedAdminPass)
	if err != nil {
		return err
	}

	existing, err := repos.Admins.FindByEmail(ctx, cfg.SeedAdminEmail)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("check admin %s: %w", cfg.SeedAdminEmail, err)
	}
	if existing != nil {
		existing.Name = cfg.SeedAdminName
		existing.PasswordHash = hashed
		existing.Role = model.RoleSuperAdmin
		existing.IsActive = true
		if err := repos.Admins.Update(ctx, existing); err != nil {
			return fmt.Errorf("update admin %s: %w", cfg.SeedAdminEmail, err)
		}
		log.Printf("Super admin updated: %s", cfg.SeedAdminEmail)
		return nil
	}

	admin := &model.Admin{
		Name:         cfg.SeedAdminName,
		Email:        cfg.SeedAdminEmail,
		PasswordHash: hashed,
		Role:         model.RoleSuperAdmin,
		IsActive:     true,
	}
	if err := repos.Admins.Create(ctx, admin); err != nil {
		return fmt.Errorf("create admin %s: %w", cfg.SeedAdminEmail, err)
	}
	log.Printf("Super admin created: %s", cfg.SeedAdminEmail)
	return nil
}

// seedUsers upserts the sample users by email.
func seedUsers(ctx context.Context, repo repository.UserRepository) (created int, updated int, err error) {
	users := []model.User{
		{Name: "John Doe", Email: "john@example.com", Role: "Admin", IsActive: true},
		{Name: "Jane Smith", Email: "jane@example.com", Role: "User", IsActive: true},
		{Name: "Bob Johnson", Email: "bob@example.com", Role: "User", IsActive: true},
	}

	for _, user := range users {
		existing, err := repo.FindByEmail(ctx, user.Email)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return created, updated, fmt.Errorf("check user %s: %w", user.Email, err)
		}
		if existing != nil {
			existing.Name = user.Name
			existing.Role = user.Role
			if err := repo.Update(ctx, existing); err != nil {
				return created, updated, fmt.Errorf("update user %s: %w", user.Email, err)
			}
			updated++
			continue
		}
		user := user
		if err := repo.Create(ctx, &user); err != nil {
			return created, updated, fmt.Errorf("create user %s: %w", user.Email, err)
		}
		created++
	}

	return created, updated, nil
}

// seedPosts creates the sample posts when none exist yet.
func seedPosts(ctx context.Context, repo repository.PostRepository) (int, error) {
	total, err := repo.Count(ctx, "")
	if err != nil {
		return 0, fmt.Errorf("count posts: %w", err)
	}
	if total > 0 {
		return 0, nil
	}

	posts := []model.Post{
		{
			Title:    "Getting Started",
			Excerpt:  "Learn how to build modern web applications...",
			Author:   "John Doe",
			Category: "Tutorial",
			Status:   model.PostStatusPublished,
			Date:     time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			Title:    "TypeScript Best Practices",
			Excerpt:  "Explore advanced patterns and techniques for better code...",
			Author:   "Jane Smith",
			Category: "Development",
			Status:   model.PostStatusPublished,
			Date:     time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC),
		},
		{
			Title:    "CSS Tips",
			Excerpt:  "Discover useful utilities and customization options...",
			Author:   "Bob Johnson",
			Category: "Design",
			Status:   model.PostStatusDraft,
			Date:     time.Date(2024, 1, 25, 0, 0, 0, 0, time.UTC),
		},
	}

	for i := range posts {
		if err := repo.Create(ctx, &posts[i]); err != nil {
			return i, fmt.Errorf("create post %q: %w", posts[i].Title, err)
		}
	}
	return len(posts), nil
}
