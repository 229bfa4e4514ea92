package seed

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"time"

	"wetrade/internal/domain/entities"
	"wetrade/internal/usecase/interfaces"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalog []byte

// Catalog is the YAML document shape of a seed file.
type Catalog struct {
	Listings   []entities.Listing         `yaml:"listings"`
	Promotions []entities.Promotion       `yaml:"promotions"`
	Services   []entities.ServiceOffering `yaml:"services"`
}

// Load parses the seed at path, or the embedded demo catalog when path is empty.
func Load(path string) (Catalog, error) {
	data := defaultCatalog
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return Catalog{}, fmt.Errorf("read seed: %w", err)
		}
		data = b
	}
	return Parse(data)
}

func Parse(data []byte) (Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Catalog{}, fmt.Errorf("parse seed: %w", err)
	}
	for i, l := range c.Listings {
		if l.ID == "" || l.Name == "" {
			return Catalog{}, fmt.Errorf("seed listing %d: id and name are required", i)
		}
		if !l.Category.Valid() {
			return Catalog{}, fmt.Errorf("seed listing %s: unknown category %q", l.ID, l.Category)
		}
	}
	return c, nil
}

// Apply writes the catalog into repo so that listing order matches the document.
// The repository prepends, hence the reverse walk.
func Apply(ctx context.Context, repo interfaces.ICatalogRepository, c Catalog) error {
	now := time.Now().UTC()
	for i := len(c.Listings) - 1; i >= 0; i-- {
		l := c.Listings[i]
		l.CreatedAt = now
		if _, err := repo.AddListing(ctx, l); err != nil {
			return err
		}
	}
	for i := len(c.Promotions) - 1; i >= 0; i-- {
		p := c.Promotions[i]
		p.CreatedAt = now
		if _, err := repo.AddPromotion(ctx, p); err != nil {
			return err
		}
	}
	for i := len(c.Services) - 1; i >= 0; i-- {
		s := c.Services[i]
		s.CreatedAt = now
		if _, err := repo.AddService(ctx, s); err != nil {
			return err
		}
	}
	return nil
}
