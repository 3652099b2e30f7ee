package dashboard

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"html/template"
	"net"
	"net/http"
	"path"
	"strings"
	"time"

	"spacex-dashboard/models"
	"spacex-dashboard/render"
	"spacex-dashboard/services"
	"spacex-dashboard/storage"
	"spacex-dashboard/utils"
)

const maxUpdateBody = 1 << 20

// Server exposes the dashboard page, the runtime and the rendered charts.
type Server struct {
	runtime *Runtime
	layout  *models.Layout
	charts  *services.ChartService
	summary *models.LaunchSummary
	logger  *utils.Logger
	mux     *http.ServeMux
}

// NewServer builds the route table.
func NewServer(rt *Runtime, layout *models.Layout, charts *services.ChartService,
	summary *models.LaunchSummary, logger *utils.Logger) *Server {
	s := &Server{
		runtime: rt,
		layout:  layout,
		charts:  charts,
		summary: summary,
		logger:  logger,
		mux:     http.NewServeMux(),
	}

	s.mux.HandleFunc("GET /{$}", s.handlePage)
	s.mux.HandleFunc("GET /_dash-layout", s.handleLayout)
	s.mux.HandleFunc("GET /_dash-dependencies", s.handleDependencies)
	s.mux.HandleFunc("POST /_dash-update-component", s.handleUpdate)
	s.mux.HandleFunc("GET /_dash-render/{file}", s.handleRender)
	s.mux.HandleFunc("GET /api/summary", s.handleSummary)
	s.mux.HandleFunc("GET /api/launches.csv", s.handleLaunchesCSV)
	s.mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Write([]byte("ok\n"))
	})
	return s
}

// Handler returns the root handler with request logging.
func (s *Server) Handler() http.Handler {
	return s.logRequests(s.mux)
}

// Serve accepts connections on ln until ctx is done, then shuts down
// gracefully.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(ln) }()
	s.logger.Info("[http] Dash is running on http://%s/", ln.Addr())

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	s.logger.Info("[http] server stopped")
	return nil
}

// selection reads the site and payload query parameters, defaulting to the
// layout's initial widget values.
func (s *Server) selection(r *http.Request) (string, models.PayloadRange, error) {
	q := r.URL.Query()

	site := s.layout.Dropdown.Value
	if q.Has("site") {
		site = q.Get("site")
	}

	payload := s.layout.Slider.Value
	if raw := q.Get("payload"); raw != "" {
		p, err := ParseRange(raw)
		if err != nil {
			return "", models.PayloadRange{}, err
		}
		payload = p
	}
	return site, payload, nil
}

func selectionInputs(site string, payload models.PayloadRange) Inputs {
	return Inputs{
		models.SiteDropdownID:  site,
		models.PayloadSliderID: payload,
	}
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	site, payload, err := s.selection(r)
	if err != nil {
		s.fail(w, r, http.StatusBadRequest, err)
		return
	}
	if !s.layout.Dropdown.Has(site) {
		s.fail(w, r, http.StatusBadRequest, errors.New("unknown site "+site))
		return
	}

	d, err := s.runtime.Update(r.Context(), "", selectionInputs(site, payload))
	if err != nil {
		s.fail(w, r, statusFor(err), err)
		return
	}

	graph := func(id string) pageGraph {
		g := pageGraph{ID: id, Src: template.URL(renderURL(id, site, payload))}
		if fig := d.Figures[id]; fig != nil {
			g.Alt = render.Describe(fig)
		}
		return g
	}

	body, err := renderPage(&pageData{
		Layout:   s.layout,
		Site:     site,
		Payload:  payload,
		Pie:      graph(s.layout.PieGraph.ID),
		Scatter:  graph(s.layout.ScatterGraph.ID),
		Dropdown: s.layout.Dropdown.ID,
		Slider:   s.layout.Slider.ID,
	})
	if err != nil {
		s.fail(w, r, http.StatusInternalServerError, err)
		return
	}
	writeBody(w, r, http.StatusOK, "text/html; charset=utf-8", body)
}

func (s *Server) handleLayout(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, s.layout)
}

func (s *Server) handleDependencies(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, s.runtime.Dependencies())
}

type updateRequest struct {
	Changed string `json:"changed"`
	Inputs  Inputs `json:"inputs"`
}

func (s *Server) handleUpdate(w http.ResponseWriter, r *http.Request) {
	var req updateRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxUpdateBody))
	if err := dec.Decode(&req); err != nil {
		s.fail(w, r, http.StatusBadRequest, err)
		return
	}

	d, err := s.runtime.Update(r.Context(), req.Changed, req.Inputs)
	if err != nil {
		s.fail(w, r, statusFor(err), err)
		return
	}
	writeJSON(w, r, http.StatusOK, d)
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	file := r.PathValue("file")
	ext := path.Ext(file)
	output := strings.TrimSuffix(file, ext)

	format, err := render.ParseFormat(ext)
	if err != nil {
		s.fail(w, r, http.StatusNotFound, err)
		return
	}
	site, payload, err := s.selection(r)
	if err != nil {
		s.fail(w, r, http.StatusBadRequest, err)
		return
	}

	fig, err := s.runtime.Evaluate(r.Context(), output, selectionInputs(site, payload))
	if err != nil {
		s.fail(w, r, statusFor(err), err)
		return
	}

	var buf bytes.Buffer
	if err := render.Render(&buf, fig, format, render.DefaultOptions); err != nil {
		s.fail(w, r, http.StatusInternalServerError, err)
		return
	}

	w.Header().Set("Cache-Control", "no-cache")
	if format == render.PNG {
		w.Header().Set("Content-Type", format.ContentType())
		w.Write(buf.Bytes())
		return
	}
	writeBody(w, r, http.StatusOK, format.ContentType(), buf.Bytes())
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, s.summary)
}

func (s *Server) handleLaunchesCSV(w http.ResponseWriter, r *http.Request) {
	site, payload, err := s.selection(r)
	if err != nil {
		s.fail(w, r, http.StatusBadRequest, err)
		return
	}

	var buf bytes.Buffer
	cw, err := storage.NewCSVWriter(&buf)
	if err == nil {
		err = cw.Write(s.charts.Filter(site, payload))
	}
	if err != nil {
		s.fail(w, r, http.StatusInternalServerError, err)
		return
	}

	w.Header().Set("Content-Disposition", `attachment; filename="launches.csv"`)
	writeBody(w, r, http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, status int, err error) {
	if status >= http.StatusInternalServerError {
		s.logger.Error("[http] %s %s: %v", r.Method, r.URL.Path, err)
	} else {
		s.logger.Debug("[http] %s %s: %v", r.Method, r.URL.Path, err)
	}
	writeJSON(w, r, status, errorBody{Error: err.Error()})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, ErrUnknownOutput):
		return http.StatusNotFound
	case errors.Is(err, ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, ErrStopped), errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (sr *statusRecorder) WriteHeader(code int) {
	sr.status = code
	sr.ResponseWriter.WriteHeader(code)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.logger.Debug("[http] %s %s %d %v", r.Method, r.URL.RequestURI(), rec.status, time.Since(start))
	})
}
