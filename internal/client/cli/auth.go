package cli

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/dkrasnov/inkpress/internal/common"
)

// getSimpleText, getPassword and getMultiline are indirections used to
// facilitate testing. They point to interactive input helpers and can be
// swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword
var getMultiline = GetMultiline

// Register prompts the user for a handle, password and payment address and
// attempts to create a new account via the AuthService.
//
// On success it prints "Success!" and returns nil. The password byte slice
// is securely wiped before returning. Any I/O or service error is returned
// unchanged.
func (a *App) Register(ctx context.Context) error {
	handle, err := getSimpleText(a.reader, "Enter handle", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	address, err := getSimpleText(a.reader, "Enter payment address", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.authService.Register(ctx, handle, password, address); err != nil {
		log.Printf("Registration unsuccessful: %s", err.Error())
		return err
	}

	fmt.Println("Success!")
	return nil
}

// Login prompts the user for credentials and tries to authenticate. On
// success it sets a.userName and switches to online mode. The password is
// securely wiped before returning.
func (a *App) Login(ctx context.Context) error {
	handle, err := getSimpleText(a.reader, "Enter handle", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.authService.Login(ctx, handle, password); err != nil {
		log.Printf("Login unsuccessful: %s", err.Error())
		return err
	}

	log.Printf("Login successful")
	a.userName = handle
	a.setMode(ModeOnline)
	return nil
}

// restoreSession picks up a session stored by a previous run.
func (a *App) restoreSession(ctx context.Context) error {
	handle, err := a.authService.RestoreSession(ctx)
	if err != nil {
		return err
	}
	a.userName = handle
	return nil
}

// Logout wipes the stored session and removes the in-memory user name.
func (a *App) Logout(ctx context.Context) error {
	if err := a.authService.Logout(ctx); err != nil {
		return err
	}
	a.userName = ""
	return nil
}
