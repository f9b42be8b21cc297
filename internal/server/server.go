// Package server exposes the aes256 ECB pipeline over HTTP.
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	aes256 "github.com/hiae-aead/go-aes256"
)

type apiError struct {
	Where  string
	What   string
	Err    error
	Status int
}

func (e *apiError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Where, e.What, e.Err)
}

type apiHandler func(http.ResponseWriter, *http.Request) *apiError

type Server struct {
	log        *slog.Logger
	maxBody    int64
	defaultKey string
}

type Options struct {
	Logger *slog.Logger
	// MaxBody caps request bodies, in bytes.
	MaxBody int64
	// DefaultKey is used by requests that carry no key. Empty disables it.
	DefaultKey string
}

type encryptRequest struct {
	Plaintext string `json:"plaintext"`
	Key       string `json:"key,omitempty"`
}

type encryptResponse struct {
	Ciphertext string `json:"ciphertext"`
}

type decryptRequest struct {
	Ciphertext string `json:"ciphertext"`
	Key        string `json:"key,omitempty"`
}

type decryptResponse struct {
	Plaintext string `json:"plaintext"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func New(opts Options) *Server {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return &Server{
		log:        opts.Logger,
		maxBody:    opts.MaxBody,
		defaultKey: opts.DefaultKey,
	}
}

// Routes builds the router: POST /v1/encrypt, POST /v1/decrypt and GET /healthz.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.healthz)
	r.Route("/v1", func(r chi.Router) {
		r.Method(http.MethodPost, "/encrypt", s.handle(s.encrypt))
		r.Method(http.MethodPost, "/decrypt", s.handle(s.decrypt))
	})
	return r
}

func (s *Server) handle(fn apiHandler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := fn(w, r); err != nil {
			s.log.Warn("request failed", "err", err.Error(), "status", err.Status,
				"request_id", middleware.GetReqID(r.Context()))
			msg := http.StatusText(err.Status)
			if err.Status < http.StatusInternalServerError && err.Err != nil {
				msg = err.Err.Error()
			}
			writeJSON(w, err.Status, errorResponse{Error: msg})
		}
	})
}

func (s *Server) healthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":       "ok",
		"hardware_aes": aes256.SupportsHardwareAES(),
	})
}

func (s *Server) encrypt(w http.ResponseWriter, r *http.Request) *apiError {
	var req encryptRequest
	if err := s.decode(w, r, &req); err != nil {
		return &apiError{"encrypt", "failed to decode request", err, decodeStatus(err)}
	}

	ct, err := aes256.Encrypt(req.Plaintext, s.key(req.Key))
	if err != nil {
		return &apiError{"encrypt", "failed to encrypt", err, statusFor(err)}
	}

	writeJSON(w, http.StatusOK, encryptResponse{Ciphertext: ct})
	return nil
}

func (s *Server) decrypt(w http.ResponseWriter, r *http.Request) *apiError {
	var req decryptRequest
	if err := s.decode(w, r, &req); err != nil {
		return &apiError{"decrypt", "failed to decode request", err, decodeStatus(err)}
	}

	pt, err := aes256.Decrypt(req.Ciphertext, s.key(req.Key))
	if err != nil {
		return &apiError{"decrypt", "failed to decrypt", err, statusFor(err)}
	}

	writeJSON(w, http.StatusOK, decryptResponse{Plaintext: pt})
	return nil
}

func (s *Server) key(k string) string {
	if k == "" {
		return s.defaultKey
	}
	return k
}

func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any) error {
	body := r.Body
	if s.maxBody > 0 {
		body = http.MaxBytesReader(w, r.Body, s.maxBody)
	}
	dec := json.NewDecoder(body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

func decodeStatus(err error) int {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return http.StatusRequestEntityTooLarge
	}
	return http.StatusBadRequest
}

// statusFor maps library errors to client errors; anything else is ours.
func statusFor(err error) int {
	switch {
	case errors.Is(err, aes256.ErrInvalidKeyLength),
		errors.Is(err, aes256.ErrInvalidCiphertext),
		errors.Is(err, aes256.ErrInvalidPadding),
		errors.Is(err, aes256.ErrInvalidText):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
