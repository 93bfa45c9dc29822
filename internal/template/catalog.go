// Package template holds the static catalog of prompt starters the user
// can pick to pre-fill an outgoing message.
package template

import "fmt"

// Template is one selectable prompt starter.
type Template struct {
	Label  string `json:"label"`
	Prompt string `json:"prompt"`
}

var catalog = []Template{
	{Label: "Tweet Reply", Prompt: "Reply to this tweet as Guloku: "},
	{Label: "Commission Open", Prompt: "Draft a commission opening tweet for Live2D rigging slots."},
	{Label: "Translate to ID", Prompt: "Terjemahkan ini ke Bahasa Indonesia dengan nada Guloku: "},
	{Label: "Stream Schedule", Prompt: "Create a cute text for this week's stream schedule."},
}

// Catalog returns the ordered template list.
func Catalog() []Template {
	out := make([]Template, len(catalog))
	copy(out, catalog)
	return out
}

// Select returns the prompt text at the given index. The only validation
// is a bounds check.
func Select(index int) (string, error) {
	if index < 0 || index >= len(catalog) {
		return "", fmt.Errorf("template index %d out of range [0,%d)", index, len(catalog))
	}
	return catalog[index].Prompt, nil
}
