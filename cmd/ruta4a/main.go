// Command ruta4a runs the animated bus route visualization.
package main

import (
	"context"
	"flag"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/johnnoDev/Ruta-4A/guide"
	"github.com/johnnoDev/Ruta-4A/icon"
	"github.com/johnnoDev/Ruta-4A/layout"
	"github.com/johnnoDev/Ruta-4A/ui"
	"github.com/johnnoDev/Ruta-4A/web"
)

const fetchTimeout = 10 * time.Second

func main() {
	defer zap.S().Sync()
	level := zap.LevelFlag("log-level", zap.InfoLevel, "set log level")
	logPath := flag.String("log", "ruta4a.log", "log file (termui owns the terminal)")
	httpAddr := flag.String("http", "", "serve snapshots over HTTP on this address (empty = off)")
	iconURL := flag.String("icon-url", icon.DefaultURL, "bus icon to fetch")
	noFetch := flag.Bool("no-fetch", false, "skip the icon download and use the fallback icon")
	flag.Parse()
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(*level)
	cfg.OutputPaths = []string{*logPath}
	cfg.ErrorOutputPaths = []string{*logPath}
	dev, err := cfg.Build()
	if err != nil {
		panic(err)
	}
	zap.ReplaceGlobals(dev)

	n, err := layout.InitCiudad()
	if err != nil {
		zap.S().Fatalf("init map: %s", err)
	}
	g := guide.NewGuide(n)

	mask := icon.Fallback()
	if !*noFetch {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		m, err := icon.Fetch(ctx, *iconURL)
		cancel()
		if err != nil {
			zap.S().Errorf("load bus icon: %s", err)
		} else {
			mask = m
		}
	}

	if *httpAddr != "" {
		srv := web.NewServer(g)
		go func() {
			zap.S().Infof("serving on %s", *httpAddr)
			err := http.ListenAndServe(*httpAddr, srv)
			zap.S().Errorf("http serve: %s", err)
		}()
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go g.Run(ctx)
	err = ui.Main(g, mask)
	if err != nil {
		zap.S().Fatalf("ui: %s", err)
	}
}
