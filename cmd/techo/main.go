package main

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/a-h/templ"
	"github.com/gorilla/sessions"
	"github.com/joho/godotenv"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/oliverisaac/goli"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"techo/static"
	"techo/store"
	"techo/types"

	_ "github.com/ncruces/go-sqlite3/embed"
	sqlite "github.com/ncruces/go-sqlite3/gormlite"
	"gorm.io/gorm"
)

func init() {
	goli.InitLogrus(logrus.DebugLevel)
}

const SessionKey = "session"
const SessionYearKey = "view-year"
const SessionMonthKey = "view-month"
const SessionQueryKey = "search-query"

func render(ctx echo.Context, status int, t templ.Component) error {
	ctx.Response().Writer.WriteHeader(status)

	err := t.Render(ctx.Request().Context(), ctx.Response().Writer)
	if err != nil {
		return ctx.String(http.StatusInternalServerError, "failed to render response template")
	}

	return nil
}

func main() {
	err := run()
	if err != nil {
		logrus.Fatal(err)
	}
}

func run() error {
	err := godotenv.Load(".env")
	if err != nil {
		logrus.Error(errors.Wrap(err, "Failed to load .env"))
	}

	tz := os.Getenv("TZ")
	if tz != "" {
		loc, err := time.LoadLocation(tz)
		if err != nil {
			return errors.Wrap(err, "failed to load timezone")
		}
		time.Local = loc
	}

	cfg, err := types.ConfigFromEnv()
	if err != nil {
		return errors.Wrap(err, "Loading config from env")
	}

	e := echo.New()

	if cfg.DevMode {
		// Serve assets from disk so edits show up without a rebuild.
		e.Static("/static", "static")
	} else {
		e.StaticFS("/static", static.FS)
	}

	origErrHandler := e.HTTPErrorHandler
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		logrus.Error(err)
		origErrHandler(err, c)
	}

	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		Skipper:           middleware.DefaultSkipper,
		StackSize:         4 << 10, // 4 KB
		DisableStackAll:   false,
		DisablePrintStack: false,
		LogLevel:          log.ERROR,
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			logrus.Error(errors.Wrap(err, "recovered panic:"))
			for _, l := range strings.Split(string(stack), "\n") {
				logrus.Errorf("stack: %s", strings.ReplaceAll(l, "\t", "  "))
			}
			return nil
		},
		DisableErrorHandler: false,
	}))

	e.Use(middleware.Secure())

	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "method=${method}, uri=${uri}, status=${status}\n",
		Skipper: func(c echo.Context) bool {
			return c.Request().URL.Path == "/healthz"
		},
	}))

	db, err := gorm.Open(sqlite.Open(cfg.DBPath), &gorm.Config{})
	if err != nil {
		return errors.Wrap(err, "failed to connect database")
	}

	entries := store.New(db)
	if err := entries.Migrate(); err != nil {
		return errors.Wrap(err, "Failed to migrate")
	}

	cookieStore := sessions.NewCookieStore(cfg.CookeSecret)
	e.Use(session.Middleware(cookieStore))

	registerRoutes(e, entries)

	return e.Start(cfg.BindAddr)
}

func registerRoutes(e *echo.Echo, entries *store.EntryStore) {
	// Pages
	e.GET("/", homePageHandler(entries))
	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	// Blocks
	e.GET("/search", searchHandler(entries))
	e.GET("/view/prev", monthNavHandler(entries, -1))
	e.GET("/view/next", monthNavHandler(entries, +1))
	e.GET("/entries/new", newEntryHandler(entries))
	e.GET("/entries/:id/edit", editEntryHandler(entries))
	e.POST("/entries/save", saveEntryHandler(entries))
	e.POST("/entries/:id/delete", deleteEntryHandler(entries))

	// JSON API
	e.GET("/api/entries", listEntriesAPI(entries))
	e.POST("/api/entries", createEntryAPI(entries))
	e.PUT("/api/entries/:id", updateEntryAPI(entries))
	e.DELETE("/api/entries/:id", deleteEntryAPI(entries))
}
