package cli

import (
	"context"
	"fmt"
)

// Brands prints the partner brand catalog.
func (a *App) Brands(ctx context.Context) error {
	for _, brand := range a.brands.List() {
		fmt.Fprintf(a.out, "%s (%.1f, %s)\n  %s\n  %s\n", brand.Name, brand.Rating, brand.Category, brand.Description, brand.URL)
	}
	return nil
}
