package models

// PoemTemplate is a reusable structure a poem can be started from.
type PoemTemplate struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Structure string `json:"structure"`
	Example   string `json:"example"`
	IsCustom  bool   `json:"isCustom"`
}

// BuiltinTemplates returns the seed templates stored on first
// initialization. Users may edit or delete the seeds afterwards.
func BuiltinTemplates() []PoemTemplate {
	return []PoemTemplate{
		{
			ID:        "tpl_haiku",
			Name:      "Haiku",
			Structure: "Three lines: 5 syllables / 7 syllables / 5 syllables",
			Example:   "An old silent pond\nA frog jumps into the pond—\nSplash! Silence again.",
		},
		{
			ID:        "tpl_sonnet",
			Name:      "Sonnet",
			Structure: "Fourteen lines of iambic pentameter, rhyme scheme ABAB CDCD EFEF GG",
			Example:   "Shall I compare thee to a summer's day?\nThou art more lovely and more temperate…",
		},
		{
			ID:        "tpl_free_verse",
			Name:      "Free Verse",
			Structure: "No fixed meter or rhyme; line breaks follow breath and emphasis",
			Example:   "The fog comes\non little cat feet.",
		},
	}
}
