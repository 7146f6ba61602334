package journal

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"techo/types"
)

// EntryAPI is the slice of the entry store the view model needs. It is
// satisfied by journalclient.Client over the wire and by any in-process
// adapter over the store.
type EntryAPI interface {
	ListEntries(ctx context.Context) ([]types.Entry, error)
	CreateEntry(ctx context.Context, in types.EntryInput) (uint, error)
	UpdateEntry(ctx context.Context, id uint, in types.EntryInput) error
	DeleteEntry(ctx context.Context, id uint) error
}

// Draft is an entry being composed or edited. A zero ID means the entry has
// not been saved yet and Save will create it rather than update it.
type Draft struct {
	ID      uint
	Date    string
	Title   string
	Content string
	Mood    string
	Tags    string
}

// ViewModel caches the full entry list and derives the calendar, date index
// and search-filtered views from it. All mutations round-trip through the
// EntryAPI and end in a full re-fetch; the cache is replaced wholesale, never
// patched.
type ViewModel struct {
	api EntryAPI

	// Now stamps fresh drafts and picks the initial viewed month. Tests
	// override it to pin the calendar.
	Now func() time.Time

	mu        sync.Mutex
	entries   []types.Entry
	query     string
	draft     *Draft
	viewYear  int
	viewMonth time.Month
	fetchSeq  uint64
	fetchDone uint64
}

func New(api EntryAPI) *ViewModel {
	vm := &ViewModel{
		api: api,
		Now: time.Now,
	}
	now := vm.Now()
	vm.viewYear, vm.viewMonth = now.Year(), now.Month()
	return vm
}

// Refresh re-fetches the full entry list. Fetches are numbered so that when
// two overlap, a response that lost the race to a newer one is discarded
// instead of overwriting fresh state with stale state.
func (vm *ViewModel) Refresh(ctx context.Context) error {
	vm.mu.Lock()
	vm.fetchSeq++
	seq := vm.fetchSeq
	vm.mu.Unlock()

	entries, err := vm.api.ListEntries(ctx)

	vm.mu.Lock()
	defer vm.mu.Unlock()

	if err != nil {
		logrus.Error(errors.Wrap(err, "Failed to fetch entries"))
		return err
	}
	if seq < vm.fetchDone {
		logrus.Debugf("Discarding stale entry fetch %d (newest applied: %d)", seq, vm.fetchDone)
		return nil
	}

	vm.fetchDone = seq
	vm.entries = entries
	return nil
}

// Entries returns the cached list in store order (date descending).
func (vm *ViewModel) Entries() []types.Entry {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return append([]types.Entry{}, vm.entries...)
}

func (vm *ViewModel) SetQuery(q string) {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	vm.query = q
}

func (vm *ViewModel) Query() string {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.query
}

// Filtered returns the entries whose title or content contains the search
// query, case-insensitively. An empty query matches everything.
func (vm *ViewModel) Filtered() []types.Entry {
	vm.mu.Lock()
	defer vm.mu.Unlock()

	q := strings.ToLower(vm.query)
	ret := []types.Entry{}
	for _, e := range vm.entries {
		if strings.Contains(strings.ToLower(e.Title), q) || strings.Contains(strings.ToLower(e.Content), q) {
			ret = append(ret, e)
		}
	}
	return ret
}

// ByDate groups the cached entries by their date string, preserving list
// order within each day. The calendar uses it to mark populated days and to
// pick the first entry when a day is clicked.
func (vm *ViewModel) ByDate() map[string][]types.Entry {
	vm.mu.Lock()
	defer vm.mu.Unlock()

	ret := map[string][]types.Entry{}
	for _, e := range vm.entries {
		ret[e.Date] = append(ret[e.Date], e)
	}
	return ret
}

// EntriesOn returns the entries for one date, in list order.
func (vm *ViewModel) EntriesOn(date string) []types.Entry {
	vm.mu.Lock()
	defer vm.mu.Unlock()

	ret := []types.Entry{}
	for _, e := range vm.entries {
		if e.Date == date {
			ret = append(ret, e)
		}
	}
	return ret
}

// Compose starts a fresh draft for the given date, or for today when the
// date is empty, with the default mood preselected.
func (vm *ViewModel) Compose(date string) Draft {
	if date == "" {
		date = vm.Now().Format("2006-01-02")
	}
	d := Draft{Date: date, Mood: string(types.DefaultMood)}

	vm.mu.Lock()
	defer vm.mu.Unlock()
	vm.draft = &d
	return d
}

// Edit starts a draft from an existing entry, id included.
func (vm *ViewModel) Edit(e types.Entry) Draft {
	d := Draft{
		ID:      e.ID,
		Date:    e.Date,
		Title:   e.Title,
		Content: e.Content,
		Mood:    e.Mood,
		Tags:    e.Tags,
	}

	vm.mu.Lock()
	defer vm.mu.Unlock()
	vm.draft = &d
	return d
}

// OpenDay opens the first entry on that date for editing, or a fresh draft
// when the day is empty.
func (vm *ViewModel) OpenDay(date string) Draft {
	existing := vm.EntriesOn(date)
	if len(existing) > 0 {
		return vm.Edit(existing[0])
	}
	return vm.Compose(date)
}

// UpdateDraft replaces the in-progress draft, keeping the editor open.
func (vm *ViewModel) UpdateDraft(d Draft) {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	vm.draft = &d
}

// Draft returns a copy of the in-progress draft, if any.
func (vm *ViewModel) Draft() (Draft, bool) {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	if vm.draft == nil {
		return Draft{}, false
	}
	return *vm.draft, true
}

func (vm *ViewModel) EditorOpen() bool {
	_, ok := vm.Draft()
	return ok
}

// Discard closes the editor and drops the draft without saving.
func (vm *ViewModel) Discard() {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	vm.draft = nil
}

// Save sends the draft to the store: create when it has no id, update when
// it does. On success the editor closes and the list is re-fetched; on
// failure the draft stays as it was so the save can be retried by hand.
func (vm *ViewModel) Save(ctx context.Context) error {
	vm.mu.Lock()
	if vm.draft == nil {
		vm.mu.Unlock()
		return errors.New("no draft to save")
	}
	d := *vm.draft
	vm.mu.Unlock()

	if d.Date == "" {
		d.Date = vm.Now().Format("2006-01-02")
	}

	in := types.EntryInput{
		Date:    &d.Date,
		Title:   &d.Title,
		Content: &d.Content,
		Mood:    &d.Mood,
		Tags:    &d.Tags,
	}

	var err error
	if d.ID == 0 {
		_, err = vm.api.CreateEntry(ctx, in)
	} else {
		err = vm.api.UpdateEntry(ctx, d.ID, in)
	}
	if err != nil {
		logrus.Error(errors.Wrap(err, "Failed to save entry"))
		return err
	}

	vm.mu.Lock()
	vm.draft = nil
	vm.mu.Unlock()

	return vm.Refresh(ctx)
}

// Delete removes an entry by id and re-fetches the list. On failure the
// cache is left as it was; the error is logged and returned, nothing more.
func (vm *ViewModel) Delete(ctx context.Context, id uint) error {
	if err := vm.api.DeleteEntry(ctx, id); err != nil {
		logrus.Error(errors.Wrap(err, "Failed to delete entry"))
		return err
	}
	return vm.Refresh(ctx)
}

// SplitTags splits a comma-separated tag string, trimming whitespace around
// each segment but discarding none of them, so a trailing comma yields a
// final empty tag. An empty string has no tags at all.
func SplitTags(tags string) []string {
	if tags == "" {
		return nil
	}
	parts := strings.Split(tags, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}
