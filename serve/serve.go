// Copyright © 2021-2026 The Gomon Project.

package serve

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/zosmac/gocore"
	"github.com/zosmac/procmon/system"

	// enable web server to handle /debug/pprof queries
	_ "net/http/pprof"
)

// shutdownTimeout bounds the wait for in-flight requests when the server stops.
const shutdownTimeout = 5 * time.Second

// Handler routes the procmon endpoints:
//   - /metrics: Prometheus exposition of the system and top processes
//   - /snapshot: the JSON Report
func Handler(r *system.Reader) http.Handler {
	registry := prometheus.NewRegistry()
	registry.MustRegister(&prometheusCollector{reader: r})

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	mux.HandleFunc("/snapshot", func(w http.ResponseWriter, req *http.Request) {
		rpt, err := BuildReport(r)
		if n := Failures(err); n > 0 {
			gocore.Error("snapshot", errUnreadable, map[string]string{
				"failures": strconv.Itoa(n),
			}).Warn()
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(rpt); err != nil {
			gocore.Error("snapshot encode", err).Err()
		}
	})
	mux.Handle("/debug/pprof/", http.DefaultServeMux)

	return mux
}

// Serve runs the procmon metrics server on localhost until ctx is cancelled.
func Serve(ctx context.Context, r *system.Reader) error {
	server := &http.Server{
		Addr:    "localhost:" + strconv.Itoa(flags.port),
		Handler: Handler(r),
	}

	go func() {
		<-ctx.Done()
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(sctx); err != nil {
			gocore.Error("procmon server shutdown", err).Warn()
		}
	}()

	gocore.Error("procmon server", nil, map[string]string{
		"listen": "http://" + server.Addr,
		"root":   r.Config().Root,
	}).Info()

	if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return gocore.Error("procmon server", err)
	}
	return nil
}
