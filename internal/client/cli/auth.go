package cli

import (
	"context"
	"fmt"

	"github.com/vibelook/vibelook/internal/client/services"
	"github.com/vibelook/vibelook/internal/common"
)

// Register collects the registration form and creates the account. The
// user still logs in explicitly afterwards.
func (a *App) Register(ctx context.Context) error {
	firstname, err := GetSimpleText(a.reader, "Enter first name", a.out)
	if err != nil {
		return err
	}
	lastname, err := GetSimpleText(a.reader, "Enter last name", a.out)
	if err != nil {
		return err
	}
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	gender, err := GetSimpleText(a.reader, "Enter gender (MALE/FEMALE, empty to skip)", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	err = a.auth.Register(ctx, services.RegisterInput{
		Firstname: firstname,
		Lastname:  lastname,
		Email:     email,
		Password:  password,
		Gender:    gender,
	})
	if err != nil {
		fmt.Fprintf(a.out, "Registration failed: %s\n", err)
		return err
	}
	fmt.Fprintln(a.out, "Registered. You can now log in.")
	return nil
}

// Login exchanges credentials for a session.
func (a *App) Login(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.auth.Login(ctx, email, password); err != nil {
		fmt.Fprintf(a.out, "Login failed: %s\n", err)
		return err
	}
	fmt.Fprintln(a.out, "Logged in.")
	return nil
}

// Logout clears the durable session.
func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		fmt.Fprintf(a.out, "Logout failed: %s\n", err)
		return err
	}
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}
