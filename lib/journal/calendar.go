package journal

import (
	"fmt"
	"time"
)

// MonthGrid lays out a month for a Sunday-first calendar: one zero cell per
// leading blank (the weekday index of day 1), then the day numbers 1 through
// the last day of the month. The length of the month falls out of asking for
// day 0 of the following month, which time.Date normalizes to the last day
// of this one.
func MonthGrid(year int, month time.Month) []int {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	days := time.Date(year, month+1, 0, 0, 0, 0, 0, time.Local).Day()

	cells := make([]int, 0, int(first.Weekday())+days)
	for i := 0; i < int(first.Weekday()); i++ {
		cells = append(cells, 0)
	}
	for d := 1; d <= days; d++ {
		cells = append(cells, d)
	}
	return cells
}

// ViewDate is the year and month the calendar is showing.
func (vm *ViewModel) ViewDate() (int, time.Month) {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.viewYear, vm.viewMonth
}

func (vm *ViewModel) SetViewDate(year int, month time.Month) {
	// Normalize out-of-range months so month arithmetic rolls the year.
	t := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)

	vm.mu.Lock()
	defer vm.mu.Unlock()
	vm.viewYear, vm.viewMonth = t.Year(), t.Month()
}

// PrevMonth steps the viewed month back one, rolling January into December
// of the previous year.
func (vm *ViewModel) PrevMonth() {
	year, month := vm.ViewDate()
	vm.SetViewDate(year, month-1)
}

// NextMonth steps the viewed month forward one, rolling December into
// January of the next year.
func (vm *ViewModel) NextMonth() {
	year, month := vm.ViewDate()
	vm.SetViewDate(year, month+1)
}

// Grid is the month grid for the viewed month.
func (vm *ViewModel) Grid() []int {
	year, month := vm.ViewDate()
	return MonthGrid(year, month)
}

// DateString formats a calendar cell as the date key entries are stored
// under, e.g. 2024-02-09.
func DateString(year int, month time.Month, day int) string {
	return fmt.Sprintf("%04d-%02d-%02d", year, int(month), day)
}

// IsToday reports whether a calendar cell is the current day.
func (vm *ViewModel) IsToday(year int, month time.Month, day int) bool {
	now := vm.Now()
	return now.Year() == year && now.Month() == month && now.Day() == day
}

// FormatDate renders a stored date for display, e.g. 2月9日. Dates that do
// not parse come back unchanged.
func FormatDate(date string) string {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return fmt.Sprintf("%d月%d日", int(t.Month()), t.Day())
}
