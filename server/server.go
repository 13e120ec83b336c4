package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/jsphweid/handsplit/config"
	"github.com/jsphweid/handsplit/hands"
	"github.com/jsphweid/handsplit/model"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

const maxBodyBytes = 8 << 20

type Server struct {
	cfg    config.Config
	logger *zap.Logger
	router *mux.Router
}

func New(cfg config.Config, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{cfg: cfg, logger: logger}

	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/split", s.HandleSplit).Methods(http.MethodPost)
	router.HandleFunc("/compare", s.HandleCompare).Methods(http.MethodPost)
	router.HandleFunc("/healthz", s.HandleHealth).Methods(http.MethodGet)
	s.router = router
	return s
}

func (s *Server) Handler() http.Handler {
	return cors.Default().Handler(s.router)
}

// ListenAndServe serves until ctx is done, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", zap.String("addr", s.cfg.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutting down: %w", err)
		}
		if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}

func (s *Server) HandleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"engines": hands.EngineNames(),
	})
}

func (s *Server) HandleSplit(w http.ResponseWriter, r *http.Request) {
	id := requestID(w)
	input, params, ok := s.decode(w, r, id)
	if !ok {
		return
	}

	engine := input.Engine
	if engine == "" {
		engine = s.defaultEngine()
	}
	p, err := hands.Split(engine, input.Notes, params, hands.WithLogger(s.logger))
	if err != nil {
		s.fail(w, id, err)
		return
	}

	s.logger.Info("split",
		zap.String("request_id", id),
		zap.String("engine", engine),
		zap.Int("notes", len(input.Notes)),
		zap.Float64("cost", p.Cost))
	writeJSON(w, http.StatusOK, model.SplitResponse{RequestId: id, Partition: *p})
}

func (s *Server) HandleCompare(w http.ResponseWriter, r *http.Request) {
	id := requestID(w)
	input, params, ok := s.decode(w, r, id)
	if !ok {
		return
	}

	greedy, err := hands.Split(hands.GreedyName, input.Notes, params, hands.WithLogger(s.logger))
	if err != nil {
		s.fail(w, id, err)
		return
	}
	optimal, err := hands.Split(hands.OptimalName, input.Notes, params, hands.WithLogger(s.logger))
	if err != nil {
		s.fail(w, id, err)
		return
	}
	disagree, err := hands.Disagreements(greedy, optimal)
	if err != nil {
		s.fail(w, id, err)
		return
	}

	writeJSON(w, http.StatusOK, model.CompareResponse{
		RequestId: id,
		Greedy:    *greedy,
		Optimal:   *optimal,
		Disagree:  disagree,
		Summary:   append(hands.Summarize(greedy), hands.Summarize(optimal)...),
	})
}

func (s *Server) decode(w http.ResponseWriter, r *http.Request, id string) (model.SplitRequestBody, hands.Params, bool) {
	var input model.SplitRequestBody
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(&input); err != nil {
		s.logger.Debug("bad request body", zap.String("request_id", id), zap.Error(err))
		writeJSON(w, http.StatusBadRequest, model.ErrorResponse{Error: "could not decode request body: " + err.Error()})
		return input, hands.Params{}, false
	}
	return input, s.params(input.Params), true
}

func (s *Server) params(overrides model.SplitParams) hands.Params {
	p := s.cfg.Params()
	if overrides.MaxFingers != nil {
		p.MaxFingers = *overrides.MaxFingers
	}
	if overrides.AllowedSpread != nil {
		p.AllowedSpread = *overrides.AllowedSpread
	}
	if overrides.Hysteresis != nil {
		p.Hysteresis = *overrides.Hysteresis
	}
	return p
}

func (s *Server) defaultEngine() string {
	if s.cfg.Engine == "" || s.cfg.Engine == "both" {
		return hands.OptimalName
	}
	return s.cfg.Engine
}

func (s *Server) fail(w http.ResponseWriter, id string, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, hands.ErrInvalidNote),
		errors.Is(err, hands.ErrInvalidParams),
		errors.Is(err, hands.ErrUnknownEngine):
		status = http.StatusBadRequest
	default:
		s.logger.Error("split failed", zap.String("request_id", id), zap.Error(err))
	}
	writeJSON(w, status, model.ErrorResponse{Error: err.Error()})
}

func requestID(w http.ResponseWriter) string {
	id := uuid.New().String()
	w.Header().Set("X-Request-Id", id)
	return id
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
