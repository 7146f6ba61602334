package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMoodByTypeKnown(t *testing.T) {
	m := MoodByType("happy")
	assert.Equal(t, MoodHappy, m.Type)
	assert.Equal(t, "😊", m.Emoji)
	assert.Equal(t, "mood-yellow", m.Color)
}

func TestMoodByTypeUnknownFallsBack(t *testing.T) {
	m := MoodByType("grumpy")
	assert.Equal(t, MoodType("grumpy"), m.Type)
	assert.Equal(t, "😶", m.Emoji)
	assert.Equal(t, "mood-gray", m.Color)
}

func TestEveryMoodHasPresentation(t *testing.T) {
	for _, m := range Moods {
		assert.NotEmpty(t, m.Label, "mood %s", m.Type)
		assert.NotEmpty(t, m.Emoji, "mood %s", m.Type)
		assert.NotEmpty(t, m.Color, "mood %s", m.Type)
	}
}
