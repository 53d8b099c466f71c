package cli

import (
	"context"
	"fmt"
	"log"
	"os"
)

// Generate prompts for a description and submits one generation request.
// The call can take minutes; the API client's generation timeout applies.
func (a *App) Generate(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Println("Not logged in")
		return nil
	}

	prompt, err := getSimpleText(a.reader, "Describe the image", os.Stdout)
	if err != nil {
		return err
	}
	if prompt == "" {
		fmt.Println("Nothing to generate")
		return nil
	}

	fmt.Println("Generating, this can take a while...")

	result, err := a.client.GenerateImage(ctx, prompt)
	if err != nil {
		log.Printf("Generation unsuccessfull: %s", err.Error())
		return err
	}

	if result.RevisedPrompt != "" {
		fmt.Printf("Revised prompt: %s\n", result.RevisedPrompt)
	}
	fmt.Println(result.URL)
	return nil
}
