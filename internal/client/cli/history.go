package cli

import (
	"context"
	"fmt"
	"log"
)

// History lists the user's recent generations, newest first.
func (a *App) History(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Println("Not logged in")
		return nil
	}

	rows, err := a.client.History(ctx)
	if err != nil {
		log.Printf("Could not fetch history: %s", err.Error())
		return err
	}

	if len(rows) == 0 {
		fmt.Println("No generations yet")
		return nil
	}

	for _, row := range rows {
		fmt.Printf("%s  %s\n    %s\n", row.CreatedAt.Format("2006-01-02 15:04"), row.Prompt, row.URL)
	}
	return nil
}
