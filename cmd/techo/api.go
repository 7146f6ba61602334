package main

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"techo/store"
	"techo/types"
)

// The JSON API mirrors the wire contract the browser client speaks: list and
// create on the collection, update and delete by id. Updating or deleting an
// id that does not exist still reports success; the store only tells us zero
// rows matched, and the contract does not distinguish that from a hit.

func listEntriesAPI(entries *store.EntryStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		ret, err := entries.List()
		if err != nil {
			return errors.Wrap(err, "listing entries")
		}
		return c.JSON(http.StatusOK, ret)
	}
}

func createEntryAPI(entries *store.EntryStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		var in types.EntryInput
		if err := c.Bind(&in); err != nil {
			return errors.Wrap(err, "binding entry")
		}

		id, err := entries.Create(in)
		if err != nil {
			return errors.Wrap(err, "creating entry")
		}

		return c.JSON(http.StatusOK, echo.Map{"id": id})
	}
}

func entryIDParam(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid entry id")
	}
	return uint(id), nil
}

func updateEntryAPI(entries *store.EntryStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := entryIDParam(c)
		if err != nil {
			return err
		}

		var in types.EntryInput
		if err := c.Bind(&in); err != nil {
			return errors.Wrap(err, "binding entry")
		}

		rows, err := entries.Update(id, in)
		if err != nil {
			return errors.Wrap(err, "updating entry")
		}
		if rows == 0 {
			logrus.Debugf("Update of entry %d matched no rows", id)
		}

		return c.JSON(http.StatusOK, echo.Map{"success": true})
	}
}

func deleteEntryAPI(entries *store.EntryStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := entryIDParam(c)
		if err != nil {
			return err
		}

		rows, err := entries.Delete(id)
		if err != nil {
			return errors.Wrap(err, "deleting entry")
		}
		if rows == 0 {
			logrus.Debugf("Delete of entry %d matched no rows", id)
		}

		return c.JSON(http.StatusOK, echo.Map{"success": true})
	}
}
