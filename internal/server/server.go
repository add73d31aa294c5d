// Package server exposes the generators over HTTP and websocket.
//
// GET /render returns one encoded image per request. /ws upgrades to a
// websocket on which every JSON Request is answered by a JSON Response and,
// when it succeeded, a binary PNG message.
package server

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	"github.com/fractkit/fract"
	"github.com/fractkit/fract/internal/cache"
	"github.com/fractkit/fract/internal/imageio"
)

// Defaults applied to a zero Config.
const (
	DefaultMaxSize      = 4096
	DefaultMaxWorkers   = 256
	DefaultCacheEntries = 32
)

// ErrTooLarge is returned for sizes or worker counts above the server limits.
var ErrTooLarge = errors.New("server: request exceeds limit")

// Request describes one image to generate.
type Request struct {
	Generator string  `json:"generator"`
	Size      int     `json:"size"`
	Strategy  string  `json:"strategy,omitempty"`
	Workers   int     `json:"workers,omitempty"`
	Seed      *uint64 `json:"seed,omitempty"`
}

// Response precedes the image on the websocket. Bytes is the length of the
// binary message that follows; it is zero when Error is set and no image is
// sent.
type Response struct {
	Generator string `json:"generator"`
	Size      int    `json:"size"`
	Strategy  string `json:"strategy"`
	Bytes     int    `json:"bytes"`
	Error     string `json:"error,omitempty"`
}

// Config configures a Server.
type Config struct {
	// MaxSize bounds the requested side length. Zero means DefaultMaxSize.
	MaxSize int

	// MaxWorkers bounds the requested worker count. Zero means
	// DefaultMaxWorkers.
	MaxWorkers int

	// CacheEntries is the number of encoded images kept for repeated
	// deterministic requests. Zero means DefaultCacheEntries; negative
	// disables the cache.
	CacheEntries int

	// OriginPatterns lists hosts allowed to open cross-origin websockets.
	OriginPatterns []string
}

// Server is an http.Handler serving the generators.
type Server struct {
	cfg    Config
	mux    *http.ServeMux
	images *cache.Cache[key, []byte]
}

// key identifies a deterministic encoded render.
type key struct {
	generator fract.Generator
	size      int
	strategy  fract.Strategy
	workers   int
	seed      uint64
	format    imageio.Format
}

// New returns a server with its routes registered.
func New(cfg Config) *Server {
	if cfg.MaxSize <= 0 {
		cfg.MaxSize = DefaultMaxSize
	}
	if cfg.MaxWorkers <= 0 {
		cfg.MaxWorkers = DefaultMaxWorkers
	}
	if cfg.CacheEntries == 0 {
		cfg.CacheEntries = DefaultCacheEntries
	}
	s := &Server{
		cfg:    cfg,
		mux:    http.NewServeMux(),
		images: cache.New[key, []byte](cfg.CacheEntries),
	}
	s.mux.HandleFunc("GET /render", s.handleRender)
	s.mux.HandleFunc("GET /ws", s.handleWS)
	return s
}

// ServeHTTP routes r to the render and websocket handlers. Every response
// carries a Server header with the library version.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Server", "fract/"+fract.Version)
	s.mux.ServeHTTP(w, r)
}

// CacheStats reports the encoded image cache counters.
func (s *Server) CacheStats() cache.Stats {
	return s.images.Stats()
}

// render validates req against the server limits, runs the generator and
// encodes the result. Mandelbrot renders and seeded noise are cached.
func (s *Server) render(req Request, format imageio.Format) ([]byte, fract.Strategy, error) {
	gen, err := fract.ParseGenerator(req.Generator)
	if err != nil {
		return nil, 0, err
	}
	strategy := fract.Sequential
	if req.Strategy != "" {
		if strategy, err = fract.ParseStrategy(req.Strategy); err != nil {
			return nil, 0, err
		}
	}
	if req.Size > s.cfg.MaxSize {
		return nil, 0, fmt.Errorf("%w: size %d > %d", ErrTooLarge, req.Size, s.cfg.MaxSize)
	}
	if req.Workers > s.cfg.MaxWorkers {
		return nil, 0, fmt.Errorf("%w: workers %d > %d", ErrTooLarge, req.Workers, s.cfg.MaxWorkers)
	}

	k, cacheable := key{generator: gen, size: req.Size, format: format}, false
	switch {
	case gen == fract.Mandelbrot:
		// Output does not depend on the strategy or worker count.
		cacheable = true
	case req.Seed != nil:
		k.strategy, k.workers, k.seed = strategy, req.Workers, *req.Seed
		cacheable = true
	}
	if cacheable {
		if data, ok := s.images.Get(k); ok {
			return data, strategy, nil
		}
	}

	opts := []fract.Option{fract.WithStrategy(strategy)}
	if req.Workers != 0 {
		opts = append(opts, fract.WithWorkers(req.Workers))
	}
	if req.Seed != nil {
		opts = append(opts, fract.WithSeed(*req.Seed))
	}

	start := time.Now()
	buf, err := gen.Generate(req.Size, opts...)
	if err != nil {
		return nil, 0, err
	}
	fract.Logger().Debug("server: generated",
		"generator", gen.String(),
		"size", req.Size,
		"strategy", strategy.String(),
		"elapsed", time.Since(start))

	var out bytes.Buffer
	if err := imageio.Encode(&out, buf, format); err != nil {
		return nil, 0, err
	}
	data := out.Bytes()
	if cacheable {
		s.images.Set(k, data)
	}
	return data, strategy, nil
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	req := Request{Generator: q.Get("generator"), Strategy: q.Get("strategy")}
	var err error
	if req.Size, err = strconv.Atoi(q.Get("size")); err != nil {
		http.Error(w, "invalid size", http.StatusBadRequest)
		return
	}
	if v := q.Get("workers"); v != "" {
		if req.Workers, err = strconv.Atoi(v); err != nil {
			http.Error(w, "invalid workers", http.StatusBadRequest)
			return
		}
	}
	if v := q.Get("seed"); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			http.Error(w, "invalid seed", http.StatusBadRequest)
			return
		}
		req.Seed = &seed
	}
	format := imageio.PNG
	if v := q.Get("format"); v != "" {
		if format, err = imageio.ParseFormat(v); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	}

	data, _, err := s.render(req, format)
	if err != nil {
		status := statusOf(err)
		if status == http.StatusInternalServerError {
			fract.Logger().Warn("server: render failed", "err", err)
		}
		http.Error(w, err.Error(), status)
		return
	}

	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	_, _ = w.Write(data)
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	c, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: s.cfg.OriginPatterns,
	})
	if err != nil {
		fract.Logger().Warn("server: websocket accept", "err", err)
		return
	}
	defer c.CloseNow()

	ctx := r.Context()
	for {
		var req Request
		if err := wsjson.Read(ctx, c, &req); err != nil {
			if websocket.CloseStatus(err) != websocket.StatusNormalClosure {
				fract.Logger().Debug("server: websocket read", "err", err)
			}
			return
		}

		resp, data := s.answer(req)
		if err := wsjson.Write(ctx, c, resp); err != nil {
			return
		}
		if resp.Error != "" {
			continue
		}
		if err := c.Write(ctx, websocket.MessageBinary, data); err != nil {
			return
		}
	}
}

// answer builds the websocket reply for req.
func (s *Server) answer(req Request) (Response, []byte) {
	resp := Response{Generator: req.Generator, Size: req.Size, Strategy: req.Strategy}

	data, strategy, err := s.render(req, imageio.PNG)
	if err != nil {
		resp.Error = err.Error()
		return resp, nil
	}
	resp.Strategy = strategy.String()
	resp.Bytes = len(data)
	return resp, data
}

func statusOf(err error) int {
	if errors.Is(err, fract.ErrInvalidArgument) || errors.Is(err, ErrTooLarge) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
