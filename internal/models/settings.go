package models

// DefaultMoods is the built-in mood vocabulary; user-defined moods from
// Settings.CustomMoods extend it.
var DefaultMoods = []string{
	"joyful", "melancholic", "reflective", "hopeful",
	"angry", "peaceful", "nostalgic", "inspired",
}

// Settings is the single configuration record. Every mutation overwrites
// the stored record wholesale.
type Settings struct {
	Theme          string   `json:"theme"`
	Font           string   `json:"font"`
	FontSize       int      `json:"fontSize"`
	Layout         string   `json:"layout"`
	ShowStats      bool     `json:"showStats"`
	AutoBackup     bool     `json:"autoBackup"`
	SpeechToText   bool     `json:"speechToText"`
	CustomMoods    []string `json:"customMoods"`
	DefaultPrivate bool     `json:"defaultPrivate"`
}

// DefaultSettings returns a fully-populated settings record.
func DefaultSettings() Settings {
	return Settings{
		Theme:       "light",
		Font:        "serif",
		FontSize:    16,
		Layout:      "list",
		ShowStats:   true,
		AutoBackup:  false,
		CustomMoods: []string{},
	}
}

// Backfilled returns a copy of s with every unset field that has a default
// replaced by that default, so callers never see a partially-populated
// record read from an older store.
func (s Settings) Backfilled() Settings {
	def := DefaultSettings()
	if s.Theme == "" {
		s.Theme = def.Theme
	}
	if s.Font == "" {
		s.Font = def.Font
	}
	if s.FontSize == 0 {
		s.FontSize = def.FontSize
	}
	if s.Layout == "" {
		s.Layout = def.Layout
	}
	if s.CustomMoods == nil {
		s.CustomMoods = []string{}
	}
	return s
}

// Moods returns the effective mood vocabulary: defaults plus custom moods.
func (s Settings) Moods() []string {
	out := make([]string, 0, len(DefaultMoods)+len(s.CustomMoods))
	out = append(out, DefaultMoods...)
	out = append(out, s.CustomMoods...)
	return out
}
