package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/Abeygunawardhanahs/spiceslink/internal/client/models"
	"github.com/Abeygunawardhanahs/spiceslink/internal/common"
)

// getSimpleText, getPassword and getList are indirections used to
// facilitate testing. They point to interactive input helpers and can be
// swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword
var getList = GetList

// Register prompts for the buyer account details and an optional list of
// product names, then creates the account via the AuthService.
//
// On success the collected product names seed the local catalog so the
// buyer sees their products immediately after logging in. The password byte
// slice is securely wiped before returning.
func (a *App) Register(ctx context.Context) error {
	reg := models.Registration{}

	fields := []struct {
		prompt string
		dst    *string
	}{
		{"Enter shop name", &reg.ShopName},
		{"Enter shop owner name", &reg.ShopOwnerName},
		{"Enter contact number", &reg.ContactNumber},
		{"Enter email", &reg.EmailAddress},
		{"Enter shop location", &reg.ShopLocation},
	}
	for _, f := range fields {
		v, err := getSimpleText(a.reader, f.prompt, os.Stdout)
		if err != nil {
			return err
		}
		*f.dst = v
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)
	reg.Password = string(password)

	names, err := getList(a.reader, "Enter product names to track", os.Stdout)
	if err != nil {
		return err
	}
	reg.ProductNames = names

	userID, err := a.authService.Register(ctx, reg)
	if err != nil {
		return err
	}

	printlnFn(fmt.Sprintf("Success! Account %s created, you can now log in.", userID))
	return nil
}

// Login prompts the user for credentials and tries to authenticate.
//
// On success the session store holds the user and token (persisted
// best-effort) and an initial catalog fetch has been triggered. The
// password is securely wiped before returning.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	user, err := a.authService.Login(ctx, email, password)
	if err != nil {
		return err
	}

	a.setMode(ModeOnline)
	printlnFn(fmt.Sprintf("Welcome back, %s!", user.ShopName))
	return nil
}

// Logout clears the session, both in memory and persisted. The server-side
// token is not invalidated.
func (a *App) Logout(ctx context.Context) error {
	a.authService.Logout(ctx)
	printlnFn("Logged out.")
	return nil
}
