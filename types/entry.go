package types

import (
	"time"
)

// Entry is one journal record. Deleting an entry removes the row outright, so
// this deliberately does not embed gorm.Model (its DeletedAt field would turn
// deletes into soft deletes).
type Entry struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Date      string    `gorm:"not null" json:"date"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Mood      string    `json:"mood"`
	Tags      string    `json:"tags"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Entry) TableName() string {
	return "entries"
}

// EntryInput is the mutable subset of an entry as it arrives on the wire.
// Fields are pointers so that a field absent from the request body reads as
// nil and clears the column on update, the same as the original full-field
// replacement contract.
type EntryInput struct {
	Date    *string `json:"date"`
	Title   *string `json:"title"`
	Content *string `json:"content"`
	Mood    *string `json:"mood"`
	Tags    *string `json:"tags"`
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func (in EntryInput) DateValue() string    { return deref(in.Date) }
func (in EntryInput) TitleValue() string   { return deref(in.Title) }
func (in EntryInput) ContentValue() string { return deref(in.Content) }
func (in EntryInput) MoodValue() string    { return deref(in.Mood) }
func (in EntryInput) TagsValue() string    { return deref(in.Tags) }
