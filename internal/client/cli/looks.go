package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/vibelook/vibelook/internal/client/models"
	"github.com/vibelook/vibelook/internal/client/services"
)

func formatLook(look models.Look) string {
	names := make([]string, 0, len(look.Items))
	for _, item := range look.Items {
		names = append(names, item.Name)
	}
	state := ""
	if look.Saving {
		state = "  [saving...]"
	} else if look.Saved {
		state = "  [saved]"
	}
	return fmt.Sprintf("#%d  %s  (%d photos)  %s%s", look.ID, look.Name, len(look.Images), strings.Join(names, ", "), state)
}

// Suggest reloads and lists the AI-suggested looks.
func (a *App) Suggest(ctx context.Context) error {
	if err := a.suggestions.Load(ctx); err != nil {
		fmt.Fprintf(a.out, "Could not load suggestions: %s\n", err)
		return err
	}
	looks := a.suggestions.Looks()
	if len(looks) == 0 {
		fmt.Fprintln(a.out, "No suggestions yet. Try 'generate'.")
		return nil
	}
	for _, look := range looks {
		fmt.Fprintln(a.out, formatLook(look))
	}
	return nil
}

// Generate requests a fresh suggestion and lists the result.
func (a *App) Generate(ctx context.Context) error {
	err := a.suggestions.Generate(ctx)
	if errors.Is(err, services.ErrGenerationInFlight) {
		fmt.Fprintln(a.out, "A generation is already running.")
		return err
	}
	if err != nil {
		fmt.Fprintf(a.out, "Could not generate a look: %s\n", err)
		return err
	}
	for _, look := range a.suggestions.Looks() {
		fmt.Fprintln(a.out, formatLook(look))
	}
	return nil
}

// SaveLook prompts for a suggested look id and persists it.
func (a *App) SaveLook(ctx context.Context) error {
	id, err := GetID(a.reader, "Enter look id", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "%s\n", err)
		return err
	}
	err = a.suggestions.Save(ctx, id)
	if errors.Is(err, services.ErrSaveInFlight) {
		fmt.Fprintln(a.out, "That look is already being saved.")
		return err
	}
	if err != nil {
		fmt.Fprintf(a.out, "Could not save look: %s\n", err)
		return err
	}
	fmt.Fprintln(a.out, "Saved.")
	return nil
}

// Saved reloads and lists the saved looks.
func (a *App) Saved(ctx context.Context) error {
	if err := a.looks.Load(ctx); err != nil {
		fmt.Fprintf(a.out, "Could not load saved looks: %s\n", err)
		return err
	}
	looks := a.looks.Looks()
	if len(looks) == 0 {
		fmt.Fprintln(a.out, "No saved looks.")
		return nil
	}
	for _, look := range looks {
		fmt.Fprintln(a.out, formatLook(look))
	}
	return nil
}

// RenameLook renames a saved look. The change is local and lasts until the
// next reload.
func (a *App) RenameLook(ctx context.Context) error {
	id, err := GetID(a.reader, "Enter look id", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "%s\n", err)
		return err
	}
	name, err := GetSimpleText(a.reader, "Enter new name", a.out)
	if err != nil {
		return err
	}
	if err := a.looks.Rename(id, name); err != nil {
		fmt.Fprintf(a.out, "Could not rename look: %s\n", err)
		return err
	}
	fmt.Fprintln(a.out, "Renamed (until next reload).")
	return nil
}

// DeleteLook removes a saved look locally.
func (a *App) DeleteLook(ctx context.Context) error {
	id, err := GetID(a.reader, "Enter look id", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "%s\n", err)
		return err
	}
	a.looks.Delete(id)
	fmt.Fprintln(a.out, "Removed (until next reload).")
	return nil
}
