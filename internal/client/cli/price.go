package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/Abeygunawardhanahs/spiceslink/internal/client/models"
)

func (a *App) promptPricePoint() (models.PricePoint, error) {
	var p models.PricePoint

	priceStr, err := getSimpleText(a.reader, "Enter price per 100g", os.Stdout)
	if err != nil {
		return p, err
	}
	p.PricePer100g, err = strconv.ParseFloat(priceStr, 64)
	if err != nil {
		return p, fmt.Errorf("invalid price: %w", err)
	}

	qtyStr, err := getSimpleText(a.reader, "Enter weekly quantity (kg)", os.Stdout)
	if err != nil {
		return p, err
	}
	p.WeeklyQuantity, err = strconv.ParseFloat(qtyStr, 64)
	if err != nil {
		return p, fmt.Errorf("invalid quantity: %w", err)
	}

	p.Availability, err = getSimpleText(a.reader, "Enter availability (e.g. In Stock)", os.Stdout)
	if err != nil {
		return p, err
	}

	return p, nil
}

// Prices prints the price history of a product, newest first as returned
// by the server.
func (a *App) Prices(ctx context.Context) error {
	productID, err := getSimpleText(a.reader, "Enter product id", os.Stdout)
	if err != nil {
		return err
	}

	history, err := a.priceService.History(ctx, productID)
	if err != nil {
		return err
	}
	if len(history) == 0 {
		printlnFn("No price history for this product.")
		return nil
	}

	for _, p := range history {
		printlnFn(fmt.Sprintf("%s  Rs %.2f/100g  %.1fkg/week  %s", p.Date, p.PricePer100g, p.WeeklyQuantity, p.Availability))
	}
	return nil
}

// AddPrice records a new price point for a product. The date is stamped by
// the service if left empty.
func (a *App) AddPrice(ctx context.Context) error {
	productID, err := getSimpleText(a.reader, "Enter product id", os.Stdout)
	if err != nil {
		return err
	}

	p, err := a.promptPricePoint()
	if err != nil {
		return err
	}

	added, err := a.priceService.Add(ctx, productID, p)
	if err != nil {
		return err
	}

	printlnFn(fmt.Sprintf("Recorded Rs %.2f/100g on %s", added.PricePer100g, added.Date))
	return nil
}

// UpdatePrice modifies an existing price point.
func (a *App) UpdatePrice(ctx context.Context) error {
	productID, err := getSimpleText(a.reader, "Enter product id", os.Stdout)
	if err != nil {
		return err
	}
	priceID, err := getSimpleText(a.reader, "Enter price entry id", os.Stdout)
	if err != nil {
		return err
	}

	p, err := a.promptPricePoint()
	if err != nil {
		return err
	}

	updated, err := a.priceService.Update(ctx, productID, priceID, p)
	if err != nil {
		return err
	}

	printlnFn(fmt.Sprintf("Updated price entry %s", updated.ID))
	return nil
}
