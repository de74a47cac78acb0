package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/vibelook/vibelook/internal/client/models"
	"github.com/vibelook/vibelook/internal/client/services"
)

func formatProfile(p models.Profile, photo string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s <%s>\n", p.Firstname, p.Lastname, p.Email)
	if p.Gender != "" {
		fmt.Fprintf(&b, "Gender: %s\n", models.FormatEnum(p.Gender))
	}
	if p.MemberStatus != "" {
		fmt.Fprintf(&b, "Member status: %s\n", models.FormatEnum(p.MemberStatus))
	}
	fmt.Fprintf(&b, "Wardrobe items: %d, saved looks: %d\n", p.WardrobeItemsAmount, p.SavedLooksAmount)
	if p.UserPreferences != nil {
		if len(p.UserPreferences.StylePreferences) > 0 {
			fmt.Fprintf(&b, "Styles: %s\n", strings.Join(p.UserPreferences.StylePreferences, ", "))
		}
		if len(p.UserPreferences.ColorPreferences) > 0 {
			fmt.Fprintf(&b, "Colors: %s\n", strings.Join(p.UserPreferences.ColorPreferences, ", "))
		}
	}
	if strings.HasPrefix(photo, "data:") {
		b.WriteString("Photo: set\n")
	} else {
		b.WriteString("Photo: none\n")
	}
	return b.String()
}

// Profile reloads and prints the profile.
func (a *App) Profile(ctx context.Context) error {
	if err := a.profile.Load(ctx); err != nil {
		fmt.Fprintf(a.out, "Could not load profile: %s\n", err)
		return err
	}
	p, ok := a.profile.Profile()
	if !ok {
		fmt.Fprintln(a.out, "No profile.")
		return nil
	}
	fmt.Fprint(a.out, formatProfile(p, a.profile.Photo()))
	return nil
}

// EditProfile runs the interactive edit flow on a draft: empty answers keep
// the current values, and only an explicit save submits anything.
func (a *App) EditProfile(ctx context.Context) error {
	if !a.profile.Editing() {
		if _, ok := a.profile.Profile(); !ok {
			if err := a.profile.Load(ctx); err != nil {
				fmt.Fprintf(a.out, "Could not load profile: %s\n", err)
				return err
			}
		}
		if err := a.profile.BeginEdit(); err != nil {
			fmt.Fprintf(a.out, "Could not start editing: %s\n", err)
			return err
		}
	}

	draft, _ := a.profile.Draft()
	if v, err := GetSimpleText(a.reader, fmt.Sprintf("First name [%s]", draft.Firstname), a.out); err != nil {
		return err
	} else if v != "" {
		_ = a.profile.SetFirstname(v)
	}
	if v, err := GetSimpleText(a.reader, fmt.Sprintf("Last name [%s]", draft.Lastname), a.out); err != nil {
		return err
	} else if v != "" {
		_ = a.profile.SetLastname(v)
	}
	if v, err := GetSimpleText(a.reader, fmt.Sprintf("Email [%s]", draft.Email), a.out); err != nil {
		return err
	} else if v != "" {
		_ = a.profile.SetEmail(v)
	}

	if err := a.editTags(services.PreferenceStyle, "style"); err != nil {
		return err
	}
	if err := a.editTags(services.PreferenceColor, "color"); err != nil {
		return err
	}

	answer, err := GetSimpleText(a.reader, "Save changes? (y/n)", a.out)
	if err != nil {
		return err
	}
	if !strings.EqualFold(answer, "y") {
		a.profile.CancelEdit()
		fmt.Fprintln(a.out, "Changes discarded.")
		return nil
	}
	if err := a.profile.Save(ctx); err != nil {
		fmt.Fprintf(a.out, "Could not save profile, still editing: %s\n", err)
		return err
	}
	fmt.Fprintln(a.out, "Profile saved.")
	return nil
}

// editTags prompts add/remove loops for one tag set; an empty answer ends
// each loop.
func (a *App) editTags(kind services.PreferenceKind, label string) error {
	for {
		v, err := GetSimpleText(a.reader, fmt.Sprintf("Add %s tag (empty to continue)", label), a.out)
		if err != nil {
			return err
		}
		if v == "" {
			break
		}
		_ = a.profile.AddPreference(kind, v)
	}
	for {
		v, err := GetSimpleText(a.reader, fmt.Sprintf("Remove %s tag (empty to continue)", label), a.out)
		if err != nil {
			return err
		}
		if v == "" {
			break
		}
		_ = a.profile.RemovePreference(kind, v)
	}
	return nil
}

// UploadPhoto prompts for a local file and uploads it as the profile photo.
func (a *App) UploadPhoto(ctx context.Context) error {
	path, err := GetSimpleText(a.reader, "Photo file path", a.out)
	if err != nil {
		return err
	}
	if err := a.profile.UploadPhoto(ctx, path); err != nil {
		fmt.Fprintf(a.out, "Could not upload photo: %s\n", err)
		return err
	}
	fmt.Fprintln(a.out, "Photo updated.")
	return nil
}
