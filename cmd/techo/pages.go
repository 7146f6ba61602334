package main

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"techo/lib/journal"
	"techo/store"
	"techo/types"
	"techo/views"
)

// storeAPI lets a view model talk to the entry store in-process. Remote
// callers get the same interface over HTTP from lib/journalclient.
type storeAPI struct {
	entries *store.EntryStore
}

func (a storeAPI) ListEntries(ctx context.Context) ([]types.Entry, error) {
	return a.entries.List()
}

func (a storeAPI) CreateEntry(ctx context.Context, in types.EntryInput) (uint, error) {
	return a.entries.Create(in)
}

func (a storeAPI) UpdateEntry(ctx context.Context, id uint, in types.EntryInput) error {
	_, err := a.entries.Update(id, in)
	return err
}

func (a storeAPI) DeleteEntry(ctx context.Context, id uint) error {
	_, err := a.entries.Delete(id)
	return err
}

func newViewModel(entries *store.EntryStore) *journal.ViewModel {
	return journal.New(storeAPI{entries: entries})
}

// The viewed month and the search query live in the cookie session so the
// calendar stays where the reader left it between requests.

func loadViewState(c echo.Context, vm *journal.ViewModel) {
	sess, _ := session.Get(SessionKey, c)

	year, okYear := sess.Values[SessionYearKey].(int)
	month, okMonth := sess.Values[SessionMonthKey].(int)
	if okYear && okMonth {
		vm.SetViewDate(year, time.Month(month))
	}

	if q, ok := sess.Values[SessionQueryKey].(string); ok {
		vm.SetQuery(q)
	}
}

func saveViewState(c echo.Context, vm *journal.ViewModel) error {
	sess, _ := session.Get(SessionKey, c)
	sess.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   3600 * 24 * 365,
		HttpOnly: true,
	}

	year, month := vm.ViewDate()
	sess.Values[SessionYearKey] = year
	sess.Values[SessionMonthKey] = int(month)
	sess.Values[SessionQueryKey] = vm.Query()

	return sess.Save(c.Request(), c.Response())
}

func homePageHandler(entries *store.EntryStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		vm := newViewModel(entries)
		loadViewState(c, vm)

		// A failed refresh is already logged by the view model; the page
		// renders with an empty list rather than an error banner.
		_ = vm.Refresh(c.Request().Context())

		year, month := vm.ViewDate()
		data := views.NewPageData().
			WithQuery(vm.Query()).
			WithEntries(vm.Filtered()).
			WithCalendar(year, month, vm.Grid()).
			WithDateIndex(vm.ByDate()).
			WithToday(vm.Now().Format("2006-01-02"))

		return render(c, http.StatusOK, views.Index(data))
	}
}

func searchHandler(entries *store.EntryStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		vm := newViewModel(entries)
		loadViewState(c, vm)
		vm.SetQuery(c.QueryParam("q"))

		if err := saveViewState(c, vm); err != nil {
			logrus.Error(err)
		}
		return c.Redirect(http.StatusFound, "/")
	}
}

func monthNavHandler(entries *store.EntryStore, delta int) echo.HandlerFunc {
	return func(c echo.Context) error {
		vm := newViewModel(entries)
		loadViewState(c, vm)

		if delta < 0 {
			vm.PrevMonth()
		} else {
			vm.NextMonth()
		}

		if err := saveViewState(c, vm); err != nil {
			logrus.Error(err)
		}
		return c.Redirect(http.StatusFound, "/")
	}
}

func newEntryHandler(entries *store.EntryStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		vm := newViewModel(entries)
		draft := vm.Compose(c.QueryParam("date"))
		return render(c, http.StatusOK, views.EditorPage(draft, nil))
	}
}

func editEntryHandler(entries *store.EntryStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := entryIDParam(c)
		if err != nil {
			return err
		}

		vm := newViewModel(entries)
		if err := vm.Refresh(c.Request().Context()); err != nil {
			return c.Redirect(http.StatusFound, "/")
		}

		for _, e := range vm.Entries() {
			if e.ID == id {
				draft := vm.Edit(e)
				return render(c, http.StatusOK, views.EditorPage(draft, nil))
			}
		}

		logrus.Debugf("No entry %d to edit", id)
		return c.Redirect(http.StatusFound, "/")
	}
}

func saveEntryHandler(entries *store.EntryStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		draft := journal.Draft{
			Date:    c.FormValue("date"),
			Title:   c.FormValue("title"),
			Content: c.FormValue("content"),
			Mood:    c.FormValue("mood"),
			Tags:    c.FormValue("tags"),
		}
		if rawID := c.FormValue("id"); rawID != "" {
			id, err := strconv.ParseUint(rawID, 10, 32)
			if err != nil {
				return echo.NewHTTPError(http.StatusBadRequest, "invalid entry id")
			}
			draft.ID = uint(id)
		}

		vm := newViewModel(entries)
		vm.UpdateDraft(draft)

		if err := vm.Save(c.Request().Context()); err != nil {
			return render(c, http.StatusUnprocessableEntity, views.EditorPage(draft, err))
		}

		return c.Redirect(http.StatusFound, "/")
	}
}

func deleteEntryHandler(entries *store.EntryStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := entryIDParam(c)
		if err != nil {
			return err
		}

		vm := newViewModel(entries)
		// Failure is logged by the view model; the page just shows the
		// list as it was.
		_ = vm.Delete(c.Request().Context(), id)

		return c.Redirect(http.StatusFound, "/")
	}
}
