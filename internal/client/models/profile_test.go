package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAddTag_AppendsNewValue(t *testing.T) {
	set := []string{"CASUAL"}
	set = AddTag(set, "STREETWEAR")
	require.Equal(t, []string{"CASUAL", "STREETWEAR"}, set)
}

func TestAddTag_DuplicateIsNoop(t *testing.T) {
	set := []string{"CASUAL"}
	set = AddTag(set, "casual")
	require.Equal(t, []string{"CASUAL"}, set)
}

func TestRemoveTag_RemovesValue(t *testing.T) {
	set := []string{"RED", "BLUE", "GREEN"}
	set = RemoveTag(set, "blue")
	require.Equal(t, []string{"RED", "GREEN"}, set)
}

func TestRemoveTag_AbsentIsNoop(t *testing.T) {
	set := []string{"RED"}
	set = RemoveTag(set, "BLACK")
	require.Equal(t, []string{"RED"}, set)
}

func TestPreferencesClone_IsDeep(t *testing.T) {
	p := Preferences{
		ColorPreferences: []string{"RED"},
		StylePreferences: []string{"CASUAL"},
	}
	c := p.Clone()
	c.ColorPreferences[0] = "BLUE"
	c.StylePreferences = append(c.StylePreferences, "FORMAL")

	require.Equal(t, []string{"RED"}, p.ColorPreferences)
	require.Equal(t, []string{"CASUAL"}, p.StylePreferences)
}

func TestProfileClone_CopiesNestedPreferences(t *testing.T) {
	p := Profile{
		ID:              7,
		Firstname:       "Aliya",
		UserPreferences: &Preferences{StylePreferences: []string{"CASUAL"}},
	}
	c := p.Clone()
	c.UserPreferences.StylePreferences[0] = "FORMAL"

	require.Equal(t, "CASUAL", p.UserPreferences.StylePreferences[0])
}

func TestFormatEnum(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"NOT_SPECIFIED", "Not Specified"},
		{"PREMIUM", "Premium"},
		{"", ""},
		{"old_money", "Old Money"},
	}
	for _, tc := range tests {
		require.Equal(t, tc.want, FormatEnum(tc.in), "input %q", tc.in)
	}
}
