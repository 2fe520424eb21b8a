package dashboard

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"time"

	api "github.com/uhppoted/uhppoted-lib/acl"

	"github.com/predicto/predicto-ads-dashboard/ads"
	"github.com/predicto/predicto-ads-dashboard/dashboard/html"
	"github.com/predicto/predicto-ads-dashboard/facebook"
)

// Worksheet names are fixed by the upstream ETL.
const (
	RulesSheet         = "Rules"
	ROASSheet          = "ROAS"
	ManualControlSheet = "Manual Control"
)

const TITLE = "Predicto Ads Dashboard"

// Source produces a fresh tabular snapshot of a named worksheet. Every call
// authenticates and reads anew - nothing is cached or shared across page
// loads.
type Source interface {
	Fetch(ctx context.Context, worksheet string) (*api.Table, error)
}

// AdSets applies pending ad set updates to the Marketing API.
type AdSets interface {
	ApplyAll(ctx context.Context, updates []facebook.Update) facebook.Result
}

type Server struct {
	source    Source
	adsets    AdSets
	templates *template.Template
	now       func() time.Time
	debug     bool
}

func NewServer(source Source, adsets AdSets, debug bool) (*Server, error) {
	functions := template.FuncMap{
		"band":  ads.Band,
		"roas":  ads.FormatROAS,
		"money": func(v float64) string { return fmt.Sprintf("$%.2f", v) },
		"upper": func(v string) string { return strings.ToUpper(strings.TrimSpace(v)) },
	}

	templates, err := template.New("dashboard").Funcs(functions).ParseFS(html.HTML, "*.html")
	if err != nil {
		return nil, fmt.Errorf("unable to parse page templates (%v)", err)
	}

	return &Server{
		source:    source,
		adsets:    adsets,
		templates: templates,
		now:       time.Now,
		debug:     debug,
	}, nil
}

func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/", s.dashboard)
	mux.HandleFunc("/rules", s.rules)
	mux.HandleFunc("/rules/export", s.export)
	mux.HandleFunc("/adsets/update", s.update)

	return mux
}

// Run serves the dashboard until the process is interrupted and then shuts
// the server down cleanly.
func (s *Server) Run(addr string) error {
	srv := &http.Server{
		Addr:    addr,
		Handler: s.Routes(),
	}

	failed := make(chan error)

	go func() {
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			failed <- err
		}
	}()

	interrupt := make(chan os.Signal, 1)

	signal.Notify(interrupt, os.Interrupt)

	select {
	case err := <-failed:
		return err

	case <-interrupt:
		info("interrupt - shutting down dashboard server")
	}

	return srv.Shutdown(context.Background())
}

func (s *Server) render(w http.ResponseWriter, page string, data any) {
	var b bytes.Buffer

	if err := s.templates.ExecuteTemplate(&b, page, data); err != nil {
		warn(fmt.Sprintf("error formatting %s (%v)", page, err))
		http.Error(w, "Internal error formatting page", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(b.Bytes())
}

func debug(msg string) {
	log.Printf("%-5s %s", "DEBUG", msg)
}

func info(msg string) {
	log.Printf("%-5s %s", "INFO", msg)
}

func warn(msg string) {
	log.Printf("%-5s %s", "WARN", msg)
}
