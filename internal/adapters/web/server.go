package web

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/a-h/templ"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/VilnaCRM-Org/website-sub001/internal/adapters/web/components"
	"github.com/VilnaCRM-Org/website-sub001/internal/domain/entities"
	"github.com/VilnaCRM-Org/website-sub001/internal/infrastructure/i18n"
	"github.com/VilnaCRM-Org/website-sub001/internal/ports/input"
	"github.com/VilnaCRM-Org/website-sub001/pkg/screen"
)

const (
	// ShutdownTimeout bounds graceful shutdown once the context ends.
	ShutdownTimeout   = 10 * time.Second
	readHeaderTimeout = 5 * time.Second

	schemaRoute = "/swagger-schema.json"
)

// Options configures the website server.
type Options struct {
	Addr             string
	MainLanguage     string
	FallbackLanguage string
	StaticDir        string
	// SchemaPath is the fetched OpenAPI JSON served at /swagger-schema.json.
	SchemaPath string
	// CanonicalURL is the public origin used for <link rel="canonical">.
	CanonicalURL string
	// Now is the clock used for the footer year; defaults to time.Now.
	Now func() time.Time
}

// Server is the website: landing page, API docs viewer and sign-up form.
type Server struct {
	opts       Options
	logger     *zap.Logger
	users      input.UserUseCase
	languages  *LanguageResolver
	localizers map[string]*i18n.Localizer
	copies     map[string]*pageCopy
	handler    http.Handler
}

// NewServer resolves every page string for every locale up front and fails
// on the first missing translation.
func NewServer(opts Options, catalog *i18n.Catalog, users input.UserUseCase, logger *zap.Logger) (*Server, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	languages, err := NewLanguageResolver(catalog, opts.MainLanguage)
	if err != nil {
		return nil, err
	}

	s := &Server{
		opts:       opts,
		logger:     logger,
		users:      users,
		languages:  languages,
		localizers: make(map[string]*i18n.Localizer),
		copies:     make(map[string]*pageCopy),
	}
	locales := languages.Locales()
	for _, locale := range locales {
		l, err := catalog.Localizer(locale, opts.FallbackLanguage)
		if err != nil {
			return nil, err
		}
		c, err := loadPageCopy(l, locales)
		if err != nil {
			return nil, err
		}
		s.localizers[locale] = l
		s.copies[locale] = c
	}
	s.handler = s.routes()
	return s, nil
}

func (s *Server) Handler() http.Handler { return s.handler }

func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleHome)
	mux.HandleFunc("POST /signup", s.handleSignup)
	mux.HandleFunc("GET /swagger", s.handleSwagger)
	mux.HandleFunc("GET "+schemaRoute, s.handleSchema)
	mux.HandleFunc("GET /healthz", HandleHealth)
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.Dir(s.opts.StaticDir))))
	mux.HandleFunc("/", s.handleNotFound)

	return Chain(Route(mux),
		RequestID(),
		Trace(),
		AccessLog(s.logger),
		Recover(s.logger),
		s.localize,
	)
}

// ListenAndServe serves on opts.Addr until ctx ends.
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.opts.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", s.opts.Addr, err)
	}
	return Serve(ctx, &http.Server{Handler: s.handler, ReadHeaderTimeout: readHeaderTimeout}, ln, s.logger)
}

// Serve runs srv on ln until ctx ends, then shuts it down gracefully.
func Serve(ctx context.Context, srv *http.Server, ln net.Listener, logger *zap.Logger) error {
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("http server listening", zap.String("addr", ln.Addr().String()))
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve http: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		logger.Info("http server stopped")
		return nil
	})
	return g.Wait()
}

type localeKey struct{}

// localize resolves the request locale and viewport category into the
// request context.
func (s *Server) localize(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		locale, persist := s.languages.Resolve(r)
		if persist {
			SetLanguageCookie(w, locale)
		}
		ctx := context.WithValue(r.Context(), localeKey{}, locale)
		ctx = components.WithScreen(ctx, screen.FromRequest(r))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (s *Server) locale(r *http.Request) string {
	if l, ok := r.Context().Value(localeKey{}).(string); ok {
		return l
	}
	return s.opts.MainLanguage
}

func (s *Server) layoutFor(r *http.Request, title string) layoutData {
	locale := s.locale(r)
	c := s.copies[locale]
	if title == "" {
		title = c.MetaTitle
	} else {
		title = title + " | " + c.MetaTitle
	}
	return layoutData{
		Locale:    locale,
		Title:     title,
		Copy:      c,
		Languages: languageOptions(r, s.languages.Locales(), locale, c.LanguageNames),
		Copyright: s.localizers[locale].T("footer.copyright", map[string]any{"Year": s.opts.Now().Year()}),
		Canonical: s.canonical(r),
	}
}

func (s *Server) canonical(r *http.Request) string {
	if s.opts.CanonicalURL == "" {
		return ""
	}
	return strings.TrimSuffix(s.opts.CanonicalURL, "/") + r.URL.Path
}

// render buffers the page so a rendering failure can still become a 500.
func (s *Server) render(w http.ResponseWriter, r *http.Request, status int, c templ.Component) {
	var buf bytes.Buffer
	if err := c.Render(r.Context(), &buf); err != nil {
		s.logger.Error("render page", zap.String("path", r.URL.Path), zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Accept-CH", "Sec-CH-Viewport-Width")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusOK, landingPage(s.layoutFor(r, ""), signupView{}))
}

func (s *Server) handleSignup(w http.ResponseWriter, r *http.Request) {
	locale := s.locale(r)
	c := s.copies[locale]
	l := s.localizers[locale]

	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	if err := r.ParseForm(); err != nil {
		s.render(w, r, http.StatusBadRequest, landingPage(s.layoutFor(r, ""), signupView{FormError: errorMessage(l, err)}))
		return
	}
	form := signupForm{
		Initials: strings.TrimSpace(r.PostForm.Get(fieldInitials)),
		Email:    strings.TrimSpace(r.PostForm.Get(fieldEmail)),
		Password: r.PostForm.Get(fieldPassword),
		Privacy:  r.PostForm.Get(fieldPrivacy) != "",
	}
	view := signupView{Initials: form.Initials, Email: form.Email, Privacy: form.Privacy}

	if problems := form.validate(); len(problems) > 0 {
		view.Errors = make(map[string]string, len(problems))
		for field, key := range problems {
			view.Errors[field] = c.Validation[key]
		}
		s.render(w, r, http.StatusUnprocessableEntity, landingPage(s.layoutFor(r, ""), view))
		return
	}

	requestID := RequestIDFrom(r.Context())
	payload, err := s.users.CreateUser(r.Context(), entities.CreateUserInput{
		Email:            form.Email,
		Initials:         form.Initials,
		Password:         form.Password,
		ClientMutationID: &requestID,
	})
	if err != nil {
		s.logger.Warn("sign-up failed", zap.String("request_id", RequestIDFrom(r.Context())), zap.Error(err))
		view.FormError = errorMessage(l, err)
		s.render(w, r, http.StatusInternalServerError, landingPage(s.layoutFor(r, ""), view))
		return
	}
	s.render(w, r, http.StatusOK, landingPage(s.layoutFor(r, ""), signupView{
		Success: l.T("sign_up.form.success", map[string]any{"Email": payload.User.Email}),
	}))
}

func (s *Server) schemaAvailable() bool {
	info, err := os.Stat(s.opts.SchemaPath)
	return err == nil && !info.IsDir()
}

func (s *Server) handleSwagger(w http.ResponseWriter, r *http.Request) {
	c := s.copies[s.locale(r)]
	s.render(w, r, http.StatusOK, swaggerPage(s.layoutFor(r, c.SwaggerTitle), schemaRoute, s.schemaAvailable()))
}

func (s *Server) handleSchema(w http.ResponseWriter, r *http.Request) {
	if !s.schemaAvailable() {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "schema not fetched"})
		return
	}
	w.Header().Set("Content-Type", "application/json")
	http.ServeFile(w, r, s.opts.SchemaPath)
}

func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	c := s.copies[s.locale(r)]
	s.render(w, r, http.StatusNotFound, notFoundPage(s.layoutFor(r, c.NotFoundTitle)))
}

// HandleHealth reports liveness.
func HandleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
