// Command polypathserver runs the HTTP face of the routing graph: bridge
// intake, path routing, and graph inspection, behind a single mux.Router.
package main

import (
	"os"

	"github.com/sirupsen/logrus"

	cmdconfig "polypath/cmd/config"
	"polypath/cmd/polypathserver/server"
)

func main() {
	log := logrus.StandardLogger()

	env := os.Getenv("POLYPATH_ENV")
	cmdconfig.LoadConfig(env)
	cfg := cmdconfig.AppConfig

	if lvl, err := logrus.ParseLevel(cfg.Global.LogLevel); err == nil {
		log.SetLevel(lvl)
	}

	addr := os.Getenv("POLYPATH_API_ADDR")
	if addr == "" {
		addr = ":8090"
	}

	srv := server.New(server.Options{
		Addr:        addr,
		MaxHops:     4,
		MaxPaths:    5,
		CacheSize:   1024,
		CacheTTLSec: int64(cfg.Global.CacheTTL),
		Bridges:     cfg.Bridges,
		Log:         log,
	})

	log.WithField("addr", addr).Info("polypath server listening")
	if err := srv.Start(); err != nil {
		log.WithError(err).Fatal("server exited")
	}
}
