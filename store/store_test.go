package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	_ "github.com/ncruces/go-sqlite3/embed"
	sqlite "github.com/ncruces/go-sqlite3/gormlite"

	"techo/types"
)

func newTestStore(t *testing.T) *EntryStore {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "techo.db")), &gorm.Config{})
	require.NoError(t, err)

	s := New(db)
	require.NoError(t, s.Migrate())
	return s
}

func str(s string) *string {
	return &s
}

func input(date, title, content, mood, tags string) types.EntryInput {
	return types.EntryInput{
		Date:    str(date),
		Title:   str(title),
		Content: str(content),
		Mood:    str(mood),
		Tags:    str(tags),
	}
}

func TestListOrdersByDateDescending(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Create(input("2024-02-10", "middle", "", "calm", ""))
	require.NoError(t, err)
	_, err = s.Create(input("2024-03-01", "newest", "", "happy", ""))
	require.NoError(t, err)

	// Created last, dated earliest: must come back last.
	_, err = s.Create(input("2024-01-05", "oldest", "", "sad", ""))
	require.NoError(t, err)

	entries, err := s.List()
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.Equal(t, "newest", entries[0].Title)
	assert.Equal(t, "middle", entries[1].Title)
	assert.Equal(t, "oldest", entries[2].Title)
}

func TestListBreaksDateTiesByInsertionOrder(t *testing.T) {
	s := newTestStore(t)

	first, err := s.Create(input("2024-02-10", "first", "", "calm", ""))
	require.NoError(t, err)
	second, err := s.Create(input("2024-02-10", "second", "", "calm", ""))
	require.NoError(t, err)

	entries, err := s.List()
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, first, entries[0].ID)
	assert.Equal(t, second, entries[1].ID)
}

func TestCreateAssignsIncreasingIDsAndStampsCreatedAt(t *testing.T) {
	s := newTestStore(t)
	before := time.Now().Add(-time.Second)

	id1, err := s.Create(input("2024-02-10", "Morning Walk", "it was rainy", "happy", "rain, calm"))
	require.NoError(t, err)
	id2, err := s.Create(input("2024-02-11", "", "", "calm", ""))
	require.NoError(t, err)

	assert.Greater(t, id2, id1)

	entries, err := s.List()
	require.NoError(t, err)
	require.Len(t, entries, 2)

	got := entries[1]
	assert.Equal(t, id1, got.ID)
	assert.Equal(t, "2024-02-10", got.Date)
	assert.Equal(t, "Morning Walk", got.Title)
	assert.Equal(t, "it was rainy", got.Content)
	assert.Equal(t, "happy", got.Mood)
	assert.Equal(t, "rain, calm", got.Tags)
	assert.False(t, got.CreatedAt.Before(before))
}

func TestUpdateOverwritesOnlyMutableFields(t *testing.T) {
	s := newTestStore(t)

	id, err := s.Create(input("2024-02-10", "old title", "old content", "sad", "old"))
	require.NoError(t, err)

	entries, err := s.List()
	require.NoError(t, err)
	createdAt := entries[0].CreatedAt

	// No tags field in the update: the column gets cleared, not kept.
	rows, err := s.Update(id, types.EntryInput{
		Title:   str("new title"),
		Content: str("new content"),
		Mood:    str("happy"),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), rows)

	entries, err = s.List()
	require.NoError(t, err)
	require.Len(t, entries, 1)

	got := entries[0]
	assert.Equal(t, id, got.ID)
	assert.Equal(t, "new title", got.Title)
	assert.Equal(t, "new content", got.Content)
	assert.Equal(t, "happy", got.Mood)
	assert.Equal(t, "", got.Tags)
	assert.Equal(t, "2024-02-10", got.Date)
	assert.WithinDuration(t, createdAt, got.CreatedAt, time.Second)
}

func TestUpdateUnknownIDIsSilentSuccess(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Create(input("2024-02-10", "keep me", "", "calm", ""))
	require.NoError(t, err)

	rows, err := s.Update(9999, input("", "ghost", "", "", ""))
	require.NoError(t, err)
	assert.Equal(t, int64(0), rows)

	entries, err := s.List()
	require.NoError(t, err)
	assert.Len(t, entries, 1)
	assert.Equal(t, "keep me", entries[0].Title)
}

func TestDeleteIsIdempotent(t *testing.T) {
	s := newTestStore(t)

	id, err := s.Create(input("2024-02-10", "doomed", "", "tired", ""))
	require.NoError(t, err)
	_, err = s.Create(input("2024-02-11", "survivor", "", "calm", ""))
	require.NoError(t, err)

	rows, err := s.Delete(id)
	require.NoError(t, err)
	assert.Equal(t, int64(1), rows)

	rows, err = s.Delete(id)
	require.NoError(t, err)
	assert.Equal(t, int64(0), rows)

	entries, err := s.List()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "survivor", entries[0].Title)
}

func TestIDsAreNotReusedAfterDelete(t *testing.T) {
	s := newTestStore(t)

	id1, err := s.Create(input("2024-02-10", "", "", "", ""))
	require.NoError(t, err)

	_, err = s.Delete(id1)
	require.NoError(t, err)

	id2, err := s.Create(input("2024-02-11", "", "", "", ""))
	require.NoError(t, err)

	assert.Greater(t, id2, id1)
}
