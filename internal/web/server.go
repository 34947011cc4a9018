package web

import (
	"context"
	"encoding/json"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"homeboard/internal/chat"
	"homeboard/internal/commute"
)

const (
	sessionCookie = "homeboard_session"
	recentLimit   = 50
)

// Server renders the two-mode dashboard: the LLM chat transcript and the
// commute tracker. Each request re-evaluates its whole view; the only
// blocking call is the webhook exchange inside /chat/send.
type Server struct {
	chat      *chat.Service
	store     *commute.Store
	server    *http.Server
	port      int
	startTime time.Time
}

func NewServer(chatSvc *chat.Service, store *commute.Store, port int) *Server {
	return &Server{
		chat:      chatSvc,
		store:     store,
		port:      port,
		startTime: time.Now(),
	}
}

// Handler builds the route table. Exposed separately from Start so tests
// can drive it through httptest.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/static/", s.handleStatic)
	mux.HandleFunc("/api/status", s.handleStatus)
	mux.HandleFunc("/chat", s.handleChat)
	mux.HandleFunc("/chat/send", s.handleChatSend)
	mux.HandleFunc("/commute", s.handleCommute)
	mux.HandleFunc("/commute/add", s.handleCommuteAdd)
	mux.HandleFunc("/commute/export.csv", s.handleExportCSV)
	mux.HandleFunc("/", s.handleRoot)
	return mux
}

// Start runs the HTTP server until it is shut down.
func (s *Server) Start() error {
	s.server = &http.Server{
		Addr:        fmt.Sprintf(":%d", s.port),
		Handler:     s.Handler(),
		ReadTimeout: 15 * time.Second,
		// No WriteTimeout: the chat exchange blocks on the webhook for as
		// long as the webhook takes.
		IdleTimeout: 60 * time.Second,
	}

	log.Printf("starting dashboard on http://localhost:%d", s.port)
	return s.server.ListenAndServe()
}

// Stop shuts the server down gracefully.
func (s *Server) Stop() error {
	if s.server == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.server.Shutdown(ctx)
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	http.Redirect(w, r, "/chat", http.StatusFound)
}

// ensureSession returns the browser's chat session id, creating the
// session and the cookie on first contact. An existing id is never
// regenerated and its history is never cleared.
func (s *Server) ensureSession(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(sessionCookie); err == nil && c.Value != "" {
		s.chat.Sessions().Ensure(c.Value)
		return c.Value
	}
	id := s.chat.Sessions().NewSession()
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
	})
	return id
}

type chatPageData struct {
	Messages  []chat.Message
	ErrorText string
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	id := s.ensureSession(w, r)
	s.renderChat(w, chatPageData{Messages: s.chat.Sessions().History(id)})
}

func (s *Server) handleChatSend(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	id := s.ensureSession(w, r)

	text := strings.TrimSpace(r.FormValue("message"))
	if text == "" {
		// The input widget convention: empty submissions do nothing.
		http.Redirect(w, r, "/chat", http.StatusSeeOther)
		return
	}

	if _, err := s.chat.Send(r.Context(), id, text); err != nil {
		// Transport or decode failure. The user message is already in the
		// transcript; surface the failure as a visible banner.
		log.Printf("webhook exchange failed for session %s: %v", id, err)
		s.renderChat(w, chatPageData{
			Messages:  s.chat.Sessions().History(id),
			ErrorText: err.Error(),
		})
		return
	}
	http.Redirect(w, r, "/chat", http.StatusSeeOther)
}

type commutePageData struct {
	Entries     []commute.Entry
	Summary     []commute.RouteSummary
	Saved       bool
	Warning     string
	DefaultDate string
	DefaultTime string
}

func (s *Server) handleCommute(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	ctx := r.Context()
	if err := s.store.EnsureSchema(ctx); err != nil {
		log.Printf("failed to ensure commute schema: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	entries, err := s.store.Recent(ctx, recentLimit)
	if err != nil {
		log.Printf("failed to load commute logs: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	summary, err := s.store.Summarize(ctx)
	if err != nil {
		log.Printf("failed to load route summary: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	now := time.Now()
	data := commutePageData{
		Entries:     entries,
		Summary:     summary,
		Saved:       r.URL.Query().Get("saved") == "1",
		DefaultDate: now.Format("2006-01-02"),
		DefaultTime: now.Format("15:04"),
	}
	switch r.URL.Query().Get("warn") {
	case "route":
		data.Warning = "Route name is required."
	case "duration":
		data.Warning = "Duration must be a whole number of minutes, at least 1."
	}
	s.renderCommute(w, data)
}

func (s *Server) handleCommuteAdd(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	ctx := r.Context()
	if err := s.store.EnsureSchema(ctx); err != nil {
		log.Printf("failed to ensure commute schema: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	route := strings.TrimSpace(r.FormValue("route_name"))
	if route == "" {
		http.Redirect(w, r, "/commute?warn=route", http.StatusSeeOther)
		return
	}
	duration, err := strconv.Atoi(strings.TrimSpace(r.FormValue("duration_minutes")))
	if err != nil || duration < 1 {
		http.Redirect(w, r, "/commute?warn=duration", http.StatusSeeOther)
		return
	}

	entry := commute.Entry{
		TravelDate:      r.FormValue("travel_date"),
		TravelTime:      r.FormValue("travel_time"),
		RouteName:       route,
		DurationMinutes: duration,
		Notes:           strings.TrimSpace(r.FormValue("notes")),
	}
	if err := s.store.Insert(ctx, entry); err != nil {
		log.Printf("failed to insert commute log: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/commute?saved=1", http.StatusSeeOther)
}

func (s *Server) handleExportCSV(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	ctx := r.Context()
	if err := s.store.EnsureSchema(ctx); err != nil {
		log.Printf("failed to ensure commute schema: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	entries, err := s.store.Recent(ctx, recentLimit)
	if err != nil {
		log.Printf("failed to load commute logs for export: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="commute_logs.csv"`)
	if _, err := w.Write([]byte(commute.BuildCSV(entries))); err != nil {
		log.Printf("failed to write csv export: %v", err)
	}
}

func (s *Server) handleStatic(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/static/")
	switch path {
	case "style.css":
		w.Header().Set("Content-Type", "text/css")
		w.Write([]byte(getCSS()))
	default:
		http.NotFound(w, r)
	}
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	response := map[string]interface{}{
		"status":    "healthy",
		"service":   "homeboard",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"uptime":    time.Since(s.startTime).String(),
	}
	if err := json.NewEncoder(w).Encode(response); err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

var (
	chatTmpl    = template.Must(template.New("chat").Parse(getChatHTML()))
	commuteTmpl = template.Must(template.New("commute").Parse(getCommuteHTML()))
)

func (s *Server) renderChat(w http.ResponseWriter, data chatPageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := chatTmpl.Execute(w, data); err != nil {
		log.Printf("error rendering chat template: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

func (s *Server) renderCommute(w http.ResponseWriter, data commutePageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := commuteTmpl.Execute(w, data); err != nil {
		log.Printf("error rendering commute template: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}
