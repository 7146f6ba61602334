package types

// MoodType names one of the fixed set of moods an entry can carry. Storage
// never enforces the set; anything outside it just renders with the fallback
// glyph.
type MoodType string

const (
	MoodHappy    MoodType = "happy"
	MoodCalm     MoodType = "calm"
	MoodPeaceful MoodType = "peaceful"
	MoodExcited  MoodType = "excited"
	MoodTired    MoodType = "tired"
	MoodSad      MoodType = "sad"
)

// DefaultMood is what a fresh draft starts with.
const DefaultMood = MoodCalm

// Mood is purely presentational metadata for a MoodType.
type Mood struct {
	Type  MoodType
	Label string
	Emoji string
	Color string
}

var Moods = []Mood{
	{Type: MoodHappy, Label: "开心", Emoji: "😊", Color: "mood-yellow"},
	{Type: MoodCalm, Label: "平静", Emoji: "😌", Color: "mood-blue"},
	{Type: MoodPeaceful, Label: "安宁", Emoji: "🌿", Color: "mood-green"},
	{Type: MoodExcited, Label: "激动", Emoji: "✨", Color: "mood-orange"},
	{Type: MoodTired, Label: "疲惫", Emoji: "😴", Color: "mood-purple"},
	{Type: MoodSad, Label: "难过", Emoji: "☁️", Color: "mood-gray"},
}

// MoodByType returns the presentation row for a stored mood string, falling
// back to a neutral face for anything it does not recognize.
func MoodByType(t string) Mood {
	for _, m := range Moods {
		if string(m.Type) == t {
			return m
		}
	}
	return Mood{Type: MoodType(t), Label: t, Emoji: "😶", Color: "mood-gray"}
}
