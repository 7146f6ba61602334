package store

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"techo/types"
)

// EntryStore is durable CRUD for journal entries. It carries no business
// rules beyond persistence; every operation is a single statement.
type EntryStore struct {
	db *gorm.DB
}

func New(db *gorm.DB) *EntryStore {
	return &EntryStore{db: db}
}

// Migrate creates the entries table if it does not exist. Failure here is
// fatal at startup: the process cannot run without its schema.
func (s *EntryStore) Migrate() error {
	return errors.Wrap(s.db.AutoMigrate(&types.Entry{}), "migrating entries table")
}

// List returns every entry ordered by date descending. Ties on the same date
// come back in insertion order.
func (s *EntryStore) List() ([]types.Entry, error) {
	ret := []types.Entry{}
	result := s.db.Order("date DESC, id ASC").Find(&ret)
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, "listing entries")
	}
	return ret, nil
}

// Create inserts a new entry and returns its assigned id. The date is stored
// as given; the store does not validate its format.
func (s *EntryStore) Create(in types.EntryInput) (uint, error) {
	entry := types.Entry{
		Date:    in.DateValue(),
		Title:   in.TitleValue(),
		Content: in.ContentValue(),
		Mood:    in.MoodValue(),
		Tags:    in.TagsValue(),
	}

	if err := s.db.Create(&entry).Error; err != nil {
		return 0, errors.Wrap(err, "saving entry to db")
	}

	return entry.ID, nil
}

// Update overwrites the four mutable fields of the entry with that id,
// leaving date, created_at and the id itself untouched. A field absent from
// the input clears the column. Updating an id that does not exist is not an
// error; the caller can inspect the returned rows-affected count.
func (s *EntryStore) Update(id uint, in types.EntryInput) (int64, error) {
	result := s.db.Model(&types.Entry{}).Where("id = ?", id).Updates(map[string]any{
		"title":   in.TitleValue(),
		"content": in.ContentValue(),
		"mood":    in.MoodValue(),
		"tags":    in.TagsValue(),
	})
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "updating entry in db")
	}

	return result.RowsAffected, nil
}

// Delete removes the entry with that id outright. Deleting an unknown id is
// a no-op reported as success with zero rows affected.
func (s *EntryStore) Delete(id uint) (int64, error) {
	result := s.db.Delete(&types.Entry{}, id)
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "deleting entry from db")
	}

	return result.RowsAffected, nil
}
