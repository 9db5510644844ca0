package http

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/fwojciec/skim"
	"github.com/google/uuid"
)

// ShutdownTimeout is how long Close waits for in-flight requests.
const ShutdownTimeout = 5 * time.Second

// DefaultMaxRequestSize caps request bodies, in bytes.
const DefaultMaxRequestSize = 1 << 20

// DefaultRecordsLimit is the page size used by GET /api/records.
const DefaultRecordsLimit = 20

// Server is the JSON API for summarization requests and stored records.
type Server struct {
	ln     net.Listener
	server *http.Server
	mux    *http.ServeMux

	// Addr is the bind address, such as ":8080".
	Addr string

	SummaryService skim.SummaryService
	RecordService  skim.RecordService // Optional; record routes return 404 without it

	Logger         *slog.Logger
	MaxRequestSize int64
}

// NewServer returns a new Server with its routes registered.
func NewServer() *Server {
	s := &Server{
		mux:            http.NewServeMux(),
		Logger:         slog.New(slog.DiscardHandler),
		MaxRequestSize: DefaultMaxRequestSize,
	}
	s.server = &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	s.mux.HandleFunc("GET /health", s.handleHealth)
	s.mux.HandleFunc("POST /api/summarize", s.handleSummarize)
	s.mux.HandleFunc("GET /api/records", s.handleRecordIndex)
	s.mux.HandleFunc("GET /api/records/{id}", s.handleRecordView)
	s.mux.HandleFunc("DELETE /api/records/{id}", s.handleRecordDelete)

	return s
}

// Handler returns the server's routes wrapped in request logging.
func (s *Server) Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		reqID := r.Header.Get("X-Request-ID")
		if reqID == "" {
			reqID = uuid.New().String()
		}
		w.Header().Set("X-Request-ID", reqID)

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		s.mux.ServeHTTP(rec, r)

		s.Logger.Info("http request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start),
			"request_id", reqID,
		)
	})
}

// Open starts listening on Addr and serves requests in the background.
func (s *Server) Open() (err error) {
	if s.ln, err = net.Listen("tcp", s.Addr); err != nil {
		return err
	}
	go func() { _ = s.server.Serve(s.ln) }()
	return nil
}

// Close gracefully shuts down the server.
func (s *Server) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	return s.server.Shutdown(ctx)
}

// Port returns the TCP port for the running server.
// Useful when Addr requests a random port (":0").
func (s *Server) Port() int {
	if s.ln == nil {
		return 0
	}
	return s.ln.Addr().(*net.TCPAddr).Port
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleSummarize(w http.ResponseWriter, r *http.Request) {
	var req skim.Request
	if err := decodeJSON(w, r, &req, s.MaxRequestSize); err != nil {
		s.Error(w, r, err)
		return
	}

	result, err := s.SummaryService.Summarize(r.Context(), req)
	if err != nil {
		s.Error(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleRecordIndex(w http.ResponseWriter, r *http.Request) {
	if s.RecordService == nil {
		s.Error(w, r, skim.Errorf(skim.ENOTFOUND, "history is disabled"))
		return
	}

	filter := skim.RecordFilter{Limit: DefaultRecordsLimit}
	q := r.URL.Query()
	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			s.Error(w, r, skim.Errorf(skim.EINVALID, "invalid limit %q", v))
			return
		}
		filter.Limit = n
	}
	if v := q.Get("offset"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			s.Error(w, r, skim.Errorf(skim.EINVALID, "invalid offset %q", v))
			return
		}
		filter.Offset = n
	}
	if v := q.Get("url"); v != "" {
		filter.SourceURL = &v
	}

	records, err := s.RecordService.FindRecords(r.Context(), filter)
	if err != nil {
		s.Error(w, r, err)
		return
	}
	if records == nil {
		records = []*skim.Record{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"records": records})
}

func (s *Server) handleRecordView(w http.ResponseWriter, r *http.Request) {
	if s.RecordService == nil {
		s.Error(w, r, skim.Errorf(skim.ENOTFOUND, "history is disabled"))
		return
	}

	record, err := s.RecordService.FindRecordByID(r.Context(), r.PathValue("id"))
	if err != nil {
		s.Error(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, record)
}

func (s *Server) handleRecordDelete(w http.ResponseWriter, r *http.Request) {
	if s.RecordService == nil {
		s.Error(w, r, skim.Errorf(skim.ENOTFOUND, "history is disabled"))
		return
	}

	if err := s.RecordService.DeleteRecord(r.Context(), r.PathValue("id")); err != nil {
		s.Error(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}
