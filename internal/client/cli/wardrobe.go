package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/vibelook/vibelook/internal/client/models"
	"github.com/vibelook/vibelook/internal/client/services"
)

// Wardrobe reloads the wardrobe and lists it, optionally filtered by a
// category the user enters.
func (a *App) Wardrobe(ctx context.Context) error {
	if err := a.wardrobe.Load(ctx); err != nil {
		fmt.Fprintf(a.out, "Could not load wardrobe: %s\n", err)
		return err
	}
	category, err := GetSimpleText(a.reader, "Category filter (empty for all)", a.out)
	if err != nil {
		return err
	}

	items := a.wardrobe.Filter(category)
	if len(items) == 0 {
		fmt.Fprintln(a.out, "No items.")
		return nil
	}
	for _, item := range items {
		fmt.Fprintln(a.out, formatItem(item))
	}
	return nil
}

func formatItem(item models.ClothingItem) string {
	photo := "placeholder"
	if strings.HasPrefix(item.Image, "data:") {
		photo = "photo"
	}
	name := item.Name
	if name == "" {
		name = "(unnamed)"
	}
	return fmt.Sprintf("#%d  %s / %s  %s  %s  [%s]", item.ID, item.Type, item.Subtype, name, item.Color, photo)
}

// AddItem collects the add-item form and submits it.
func (a *App) AddItem(ctx context.Context) error {
	itemType, err := GetSimpleText(a.reader, "Enter category (Shirts/Pants/Shoes/Accessories/...)", a.out)
	if err != nil {
		return err
	}
	subtype, err := GetSimpleText(a.reader, "Enter subtype (empty to skip)", a.out)
	if err != nil {
		return err
	}
	name, err := GetSimpleText(a.reader, "Enter name (empty to skip)", a.out)
	if err != nil {
		return err
	}
	color, err := GetSimpleText(a.reader, "Enter color", a.out)
	if err != nil {
		return err
	}
	path, err := GetSimpleText(a.reader, "Photo file path (empty to skip)", a.out)
	if err != nil {
		return err
	}

	item, err := a.wardrobe.Add(ctx, services.AddItemInput{
		Type:     itemType,
		Subtype:  subtype,
		Name:     name,
		Color:    color,
		FilePath: path,
	})
	if err != nil {
		fmt.Fprintf(a.out, "Could not add item: %s\n", err)
		return err
	}
	fmt.Fprintf(a.out, "Added %s\n", formatItem(*item))
	return nil
}

// DeleteItem prompts for an item id and deletes it.
func (a *App) DeleteItem(ctx context.Context) error {
	id, err := GetID(a.reader, "Enter item id", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "%s\n", err)
		return err
	}
	if err := a.wardrobe.Delete(ctx, id); err != nil {
		fmt.Fprintf(a.out, "Could not delete item: %s\n", err)
		return err
	}
	fmt.Fprintln(a.out, "Deleted.")
	return nil
}
