package types

import (
	errs "errors"
	"fmt"
	"os"
	"path"
	"strconv"

	"github.com/oliverisaac/goli"
	"github.com/pkg/errors"
)

type Config struct {
	BindAddr    string
	DBPath      string
	CookeSecret []byte
	DevMode     bool
}

func ConfigFromEnv() (Config, error) {
	ret := Config{}
	var retErr error
	var err error

	ret.DevMode, err = strconv.ParseBool(goli.DefaultEnv("TECHO_DEV_MODE", "false"))
	if err != nil {
		retErr = errs.Join(retErr, errors.Wrap(err, "parsing TECHO_DEV_MODE"))
	}

	cookieSecret, ok := os.LookupEnv("TECHO_COOKIE_STORE_SECRET")
	if !ok {
		retErr = errs.Join(retErr, fmt.Errorf("You must define env TECHO_COOKIE_STORE_SECRET"))
	} else {
		ret.CookeSecret = []byte(cookieSecret)
	}

	ret.DBPath = goli.DefaultEnv("TECHO_DB_PATH", "techo.db")
	if _, err := os.Stat(path.Dir(ret.DBPath)); err != nil {
		retErr = errs.Join(retErr, errors.Wrap(err, "Directory for TECHO_DB_PATH must exist"))
	}

	ret.BindAddr = goli.DefaultEnv("TECHO_BIND_ADDR", ":3000")

	return ret, retErr
}
