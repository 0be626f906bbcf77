package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/Abeygunawardhanahs/spiceslink/internal/client/models"
	"github.com/Abeygunawardhanahs/spiceslink/internal/common"
)

// List prints the cached catalog. Products that only exist locally (seeded
// from registration, not yet created remotely) are marked as such.
func (a *App) List(ctx context.Context) error {
	products := a.store.Products()
	if len(products) == 0 {
		printlnFn("No products yet. Use 'add' to create one.")
		return nil
	}

	for i, p := range products {
		id := p.ID
		if !p.Persisted() {
			id = "local only"
		}
		printlnFn(fmt.Sprintf("%d. %s [%s] price=%s category=%s", i+1, p.Name, id, p.Price, p.Category))
	}
	return nil
}

// Add prompts for product details and creates the product.
//
// The name is required and must not collide (case-insensitively) with an
// existing catalog entry. A local image path is uploaded first and replaced
// with the resulting URL.
func (a *App) Add(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter product name", os.Stdout)
	if err != nil {
		return err
	}
	if strings.TrimSpace(name) == "" {
		return common.ErrNameRequired
	}
	for _, existing := range a.store.Products() {
		if existing.EqualName(name) {
			return common.ErrDuplicateName
		}
	}

	description, err := getSimpleText(a.reader, "Enter description", os.Stdout)
	if err != nil {
		return err
	}
	price, err := getSimpleText(a.reader, "Enter price", os.Stdout)
	if err != nil {
		return err
	}
	category, err := getSimpleText(a.reader, "Enter category", os.Stdout)
	if err != nil {
		return err
	}
	image, err := getSimpleText(a.reader, "Enter image path or URL (optional)", os.Stdout)
	if err != nil {
		return err
	}
	if image != "" {
		image, err = a.images.Resolve(ctx, image)
		if err != nil {
			return fmt.Errorf("image upload: %w", err)
		}
	}

	created, err := a.store.AddProduct(ctx, models.Product{
		Name:        strings.TrimSpace(name),
		Description: description,
		Price:       price,
		Category:    category,
		Image:       image,
	})
	if err != nil {
		return err
	}

	printlnFn(fmt.Sprintf("Added %s [%s]", created.Name, created.ID))
	return nil
}

// Update prompts for a product id and the fields to change. Empty answers
// leave the corresponding field untouched.
func (a *App) Update(ctx context.Context) error {
	productID, err := getSimpleText(a.reader, "Enter product id", os.Stdout)
	if err != nil {
		return err
	}

	updates := map[string]any{}
	fields := []struct {
		prompt string
		key    string
	}{
		{"New name (empty to keep)", "name"},
		{"New description (empty to keep)", "description"},
		{"New price (empty to keep)", "price"},
		{"New category (empty to keep)", "category"},
	}
	for _, f := range fields {
		v, err := getSimpleText(a.reader, f.prompt, os.Stdout)
		if err != nil {
			return err
		}
		if v != "" {
			updates[f.key] = v
		}
	}
	if len(updates) == 0 {
		printlnFn("Nothing to update.")
		return nil
	}

	updated, err := a.store.UpdateProduct(ctx, productID, updates)
	if err != nil {
		return err
	}

	printlnFn(fmt.Sprintf("Updated %s [%s]", updated.Name, updated.ID))
	return nil
}

// Delete prompts for a product id and removes the product. The catalog is
// updated immediately; a reconciling refetch follows shortly after.
func (a *App) Delete(ctx context.Context) error {
	productID, err := getSimpleText(a.reader, "Enter product id", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.store.DeleteProduct(ctx, productID); err != nil {
		return err
	}

	printlnFn("Deleted.")
	return nil
}
