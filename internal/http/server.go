// Package http serves the ledger pages and the component gallery.
package http

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"strconv"
	"sync"
	"time"

	"gamjatokki/internal/cache"
	"gamjatokki/internal/core"
	"gamjatokki/internal/ledger"
	applog "gamjatokki/internal/log"
	"gamjatokki/internal/middleware/security"
	"gamjatokki/internal/middleware/trace"
	appweb "gamjatokki/web"
)

// Options configure NewServer.
type Options struct {
	Addr    string
	Entries ledger.EntryLister

	// Names shown in the greeting; empty uses the component defaults.
	PotatoName string
	RabbitName string

	CacheSize int
	CacheTTL  time.Duration

	Logger *applog.Logger
	// Now defaults to time.Now; tests pin it.
	Now func() time.Time
}

type Server struct {
	http.Server
	templates *template.Template
	entries   ledger.EntryLister
	potato    string
	rabbit    string
	logger    *applog.Logger
	now       func() time.Time

	entryCache *cache.LRUCache[[]core.Entry]
	caches     *cache.Manager
	tracer     *trace.Middleware

	shutdownOnce sync.Once
}

// NewServer configures routes and templates, returning a ready-to-run http.Server.
func NewServer(opts Options) (*Server, error) {
	logger := opts.Logger
	if logger == nil {
		logger = applog.FromContext(context.Background())
	}
	logger = logger.WithComponent(applog.ComponentHTTP)

	if opts.CacheSize < 1 {
		opts.CacheSize = 100
	}
	if opts.CacheTTL <= 0 {
		opts.CacheTTL = 5 * time.Minute
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	t, err := template.ParseFS(appweb.TemplatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	mux := http.NewServeMux()
	s := &Server{
		Server: http.Server{
			Addr:              opts.Addr,
			ReadHeaderTimeout: 10 * time.Second,
		},
		templates:  t,
		entries:    opts.Entries,
		potato:     opts.PotatoName,
		rabbit:     opts.RabbitName,
		logger:     logger,
		now:        opts.Now,
		entryCache: cache.NewLRUCache[[]core.Entry](opts.CacheSize, opts.CacheTTL),
		caches:     cache.NewManager(logger),
		tracer:     trace.NewMiddleware(logger),
	}
	s.caches.Register(s.entryCache)
	s.caches.StartCleanup(10 * time.Minute)

	sub, err := fs.Sub(appweb.StaticFS, "static")
	if err != nil {
		return nil, fmt.Errorf("mount static assets: %w", err)
	}
	static := http.StripPrefix("/static/", http.FileServer(http.FS(sub)))
	mux.Handle("GET /static/", security.StaticAssetMiddleware(3600)(static))

	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("GET /ui/entries", s.handleEntries)
	mux.HandleFunc("GET /ui/components", s.handleComponents)
	mux.HandleFunc("GET /healthz", handleHealth)
	mux.HandleFunc("GET /readyz", s.handleReady)

	headers := security.NewHeadersMiddleware(security.DefaultHeadersConfig())
	s.Handler = s.tracer.Middleware(headers.Middleware(mux))

	return s, nil
}

// Shutdown stops the cache cleanup and gracefully shuts down the listener.
func (s *Server) Shutdown(ctx context.Context) error {
	var shutdownErr error
	s.shutdownOnce.Do(func() {
		s.caches.Stop()
		shutdownErr = s.Server.Shutdown(ctx)
	})
	return shutdownErr
}

// Metrics exposes request counters collected by the trace middleware.
func (s *Server) Metrics() trace.Metrics {
	return s.tracer.GetMetrics()
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

type pinger interface {
	Ping(ctx context.Context) error
}

// handleReady pings the entry source when it supports it.
func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	if p, ok := s.entries.(pinger); ok {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := p.Ping(ctx); err != nil {
			applog.FromContext(r.Context()).WarnContext(r.Context(), "Readiness check failed", applog.FieldError, err)
			http.Error(w, "not ready", http.StatusServiceUnavailable)
			return
		}
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ready"))
}

func cacheKey(year, month int) string {
	return strconv.Itoa(year) + "-" + strconv.Itoa(month)
}

// getEntries lists a month's entries through the cache. The returned slice is
// a copy the caller may modify.
func (s *Server) getEntries(ctx context.Context, year, month int) ([]core.Entry, error) {
	key := cacheKey(year, month)
	logger := applog.FromContext(ctx)

	if items, found := s.entryCache.Get(key); found {
		logger.DebugContext(ctx, "Entries cache hit", applog.FieldYear, year, applog.FieldMonth, month, applog.FieldCount, len(items))
		return append([]core.Entry(nil), items...), nil
	}

	if s.entries == nil {
		return nil, nil
	}
	cctx, cancel := context.WithTimeout(ctx, 7*time.Second)
	defer cancel()
	items, err := s.entries.ListEntries(cctx, year, month)
	if err != nil {
		return nil, fmt.Errorf("list entries (year=%d, month=%d): %w", year, month, err)
	}

	s.entryCache.Set(key, items)
	logger.DebugContext(ctx, "Entries cached", applog.FieldYear, year, applog.FieldMonth, month, applog.FieldCount, len(items))
	return append([]core.Entry(nil), items...), nil
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	year, month := s.parseYearMonth(r)

	items, err := s.getEntries(ctx, year, month)
	if err != nil {
		applog.FromContext(ctx).ErrorContext(ctx, "List entries failed", applog.FieldError, err, applog.FieldYear, year, applog.FieldMonth, month)
		http.Error(w, "가계부를 불러오지 못했어요", http.StatusInternalServerError)
		return
	}

	summary := core.Summarize(year, month, items)
	data := indexView{
		Title:    "감자토끼 가계부",
		Year:     year,
		Month:    month,
		Greeting: s.greeting(),
		Entries:  s.entriesView(items),
	}
	if data.SummaryCard, err = s.summaryCard(summary); err == nil {
		data.ShareCard, err = s.shareCard(summary)
	}
	if err != nil {
		applog.FromContext(ctx).ErrorContext(ctx, "Summary render failed", applog.FieldError, err)
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}

	s.execute(w, r, "index.html", data)
}

// handleEntries renders the entry list partial that the summary card swaps in.
func (s *Server) handleEntries(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	year, month := s.parseYearMonth(r)

	items, err := s.getEntries(ctx, year, month)
	if err != nil {
		applog.FromContext(ctx).ErrorContext(ctx, "List entries failed", applog.FieldError, err, applog.FieldYear, year, applog.FieldMonth, month)
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`<div id="entries" class="text-rose-700">내역을 불러오지 못했어요</div>`))
		return
	}

	s.execute(w, r, "entries.html", s.entriesView(items))
}

func (s *Server) handleComponents(w http.ResponseWriter, r *http.Request) {
	s.execute(w, r, "components.html", componentsView{
		Title:    "컴포넌트 갤러리",
		Greeting: s.greeting(),
		Sections: gallerySections(),
	})
}

// execute renders into a buffer first so a failing template never leaves a
// half-written 200 response.
func (s *Server) execute(w http.ResponseWriter, r *http.Request, name string, data any) {
	var buf bytes.Buffer
	if err := s.templates.ExecuteTemplate(&buf, name, data); err != nil {
		applog.FromContext(r.Context()).ErrorContext(r.Context(), "Template execution failed", applog.FieldError, err, "template", name)
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

func (s *Server) fragment(name string, data any) (template.HTML, error) {
	var buf bytes.Buffer
	if err := s.templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	return template.HTML(buf.String()), nil
}
