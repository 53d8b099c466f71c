package cli

import (
	"context"
	"fmt"
	"log"
)

// Whoami prints the current user's profile.
func (a *App) Whoami(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Println("Not logged in")
		return nil
	}

	user, err := a.session.CurrentUser(ctx)
	if err != nil {
		log.Printf("Could not fetch profile: %s", err.Error())
		return err
	}

	fmt.Printf("%s <%s>\n", user.Name, user.Email)
	return nil
}
