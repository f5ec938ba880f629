// Command seedthemes loads theme presets from a YAML file into a tenant.
// Usage: go run ./cmd/seedthemes -file themes.yaml -tenant <tenant-uuid> -user <user-uuid>
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"sentrydesk/internal/config"
	"sentrydesk/internal/domain"
	"sentrydesk/internal/repository/postgres"
)

type themeSeed struct {
	Name         string `yaml:"name"`
	PrimaryColor string `yaml:"primary_color"`
	AccentColor  string `yaml:"accent_color"`
	FontFamily   string `yaml:"font_family"`
	IsDefault    bool   `yaml:"is_default"`
}

type seedFile struct {
	Themes []themeSeed `yaml:"themes"`
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	filePath := flag.String("file", "themes.yaml", "path to the theme seed YAML file")
	tenantStr := flag.String("tenant", "", "tenant id to seed into")
	userStr := flag.String("user", "", "user id recorded as creator")
	flag.Parse()

	tenantID, err := uuid.Parse(*tenantStr)
	if err != nil {
		return fmt.Errorf("invalid -tenant: %w", err)
	}
	userID, err := uuid.Parse(*userStr)
	if err != nil {
		return fmt.Errorf("invalid -user: %w", err)
	}

	data, err := os.ReadFile(*filePath)
	if err != nil {
		return fmt.Errorf("reading seed file: %w", err)
	}
	var seeds seedFile
	if err := yaml.Unmarshal(data, &seeds); err != nil {
		return fmt.Errorf("parsing seed file: %w", err)
	}
	if len(seeds.Themes) == 0 {
		return fmt.Errorf("no themes found in %s", *filePath)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	themeRepo := postgres.NewThemeRepo(db)
	ctx := context.Background()

	for _, seed := range seeds.Themes {
		theme := &domain.ThemePreset{
			TenantID:     tenantID,
			Name:         seed.Name,
			PrimaryColor: seed.PrimaryColor,
			AccentColor:  seed.AccentColor,
			FontFamily:   seed.FontFamily,
			CreatedBy:    userID,
		}
		if err := themeRepo.Create(ctx, theme); err != nil {
			return fmt.Errorf("seeding theme %q: %w", seed.Name, err)
		}
		if seed.IsDefault {
			if err := themeRepo.SetDefault(ctx, tenantID, theme.ID); err != nil {
				return fmt.Errorf("setting default theme %q: %w", seed.Name, err)
			}
		}
		log.Printf("seeded theme %q (%s)", seed.Name, theme.ID)
	}

	log.Printf("seeded %d theme(s) for tenant %s", len(seeds.Themes), tenantID)
	return nil
}
