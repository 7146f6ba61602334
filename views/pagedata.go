package views

import (
	"time"

	"techo/types"
)

// PageData is everything the home page renders: the filtered entry list, the
// calendar for the viewed month, and the date index that marks populated
// days.
type PageData struct {
	Query   string
	Entries []types.Entry
	Year    int
	Month   time.Month
	Grid    []int
	ByDate  map[string][]types.Entry
	Today   string
}

func NewPageData() PageData {
	return PageData{ByDate: map[string][]types.Entry{}}
}

func (d PageData) WithQuery(q string) PageData {
	d.Query = q
	return d
}

func (d PageData) WithEntries(entries []types.Entry) PageData {
	d.Entries = append(d.Entries, entries...)
	return d
}

func (d PageData) WithCalendar(year int, month time.Month, grid []int) PageData {
	d.Year = year
	d.Month = month
	d.Grid = grid
	return d
}

func (d PageData) WithDateIndex(byDate map[string][]types.Entry) PageData {
	d.ByDate = byDate
	return d
}

func (d PageData) WithToday(date string) PageData {
	d.Today = date
	return d
}

// FirstEntryOn is the entry a populated calendar day opens when clicked.
func (d PageData) FirstEntryOn(date string) (types.Entry, bool) {
	entries := d.ByDate[date]
	if len(entries) == 0 {
		return types.Entry{}, false
	}
	return entries[0], true
}
