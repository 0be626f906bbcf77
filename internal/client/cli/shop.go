package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/Abeygunawardhanahs/spiceslink/internal/client/models"
)

// Shop prints the shop details for a product, as shown on the shop
// discovery screen of the mobile app.
func (a *App) Shop(ctx context.Context) error {
	shopID, err := getSimpleText(a.reader, "Enter shop id", os.Stdout)
	if err != nil {
		return err
	}
	productName, err := getSimpleText(a.reader, "Enter product name", os.Stdout)
	if err != nil {
		return err
	}

	details, err := a.shopService.Details(ctx, shopID, productName)
	if err != nil {
		return err
	}

	printlnFn(fmt.Sprintf("Shop: %s (%s)", details.ShopName, details.ShopOwnerName))
	printlnFn(fmt.Sprintf("Location: %s", details.ShopLocation))
	printlnFn(fmt.Sprintf("Contact: %s / %s", details.ContactNumber, details.Telephone))
	printlnFn(fmt.Sprintf("Price: %s  Availability: %s  Weekly quantity: %s", details.Price, details.Availability, details.WeeklyQuantity))
	if details.Description != "" {
		printlnFn(details.Description)
	}
	return nil
}

// Reserve collects reservation details and submits them. Validation
// happens locally before any network call.
func (a *App) Reserve(ctx context.Context) error {
	r := models.Reservation{}

	fields := []struct {
		prompt string
		dst    *string
	}{
		{"Enter your name", &r.Name},
		{"Enter mobile number", &r.MobileNo},
		{"Enter delivery location", &r.Location},
		{"Enter total quantity", &r.TotalQuantity},
		{"Enter payment method", &r.PaymentMethod},
		{"Enter product name", &r.ProductName},
		{"Enter shop id", &r.ShopID},
	}
	for _, f := range fields {
		v, err := getSimpleText(a.reader, f.prompt, os.Stdout)
		if err != nil {
			return err
		}
		*f.dst = v
	}

	created, err := a.shopService.Reserve(ctx, r)
	if err != nil {
		return err
	}

	printlnFn(fmt.Sprintf("Reservation placed for %s (%s)", created.ProductName, created.TotalQuantity))
	return nil
}
