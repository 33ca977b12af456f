package dnd5e

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// titleCase turns a snake_case key into display text: "sleight_of_hand" -> "Sleight Of Hand".
// A Caser keeps state between calls, so each call builds its own.
func titleCase(key string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(key, "_", " "))
}
