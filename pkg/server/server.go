package server

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/bastiangx/wordhunt/internal/utils"
	"github.com/bastiangx/wordhunt/pkg/config"
	"github.com/bastiangx/wordhunt/pkg/dictionary"
	"github.com/bastiangx/wordhunt/pkg/filter"
	"github.com/bastiangx/wordhunt/pkg/search"
	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

const (
	codeBadRequest = 400
	codeNotFound   = 404
	codeConflict   = 409
	codeInternal   = 500
)

// SourceStore persists source mutations. *store.DB implements it.
type SourceStore interface {
	SaveSource(src dictionary.Source) error
	DeleteSource(name string) error
	SetEnabled(name string, enabled bool) error
}

// Server handles the IPC for anagram searches
type Server struct {
	lib     *dictionary.Library
	cfg     *config.Config
	store   SourceStore
	decoder *msgpack.Decoder
	encoder *msgpack.Encoder
}

// NewServer creates a server on stdin/stdout. st may be nil.
func NewServer(lib *dictionary.Library, cfg *config.Config, st SourceStore) *Server {
	return NewServerIO(lib, cfg, st, os.Stdin, os.Stdout)
}

// NewServerIO creates a server on the given streams.
func NewServerIO(lib *dictionary.Library, cfg *config.Config, st SourceStore, r io.Reader, w io.Writer) *Server {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return &Server{
		lib:     lib,
		cfg:     cfg,
		store:   st,
		decoder: msgpack.NewDecoder(r),
		encoder: msgpack.NewEncoder(w),
	}
}

// Start serves requests until the input is exhausted.
func (s *Server) Start() error {
	log.Debug("Starting Server.")
	s.sendResponse(StatusResponse{Status: "ready"})

	for {
		var raw msgpack.RawMessage
		if err := s.decoder.Decode(&raw); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			log.Errorf("Reading from stdin: %v", err)
			return err
		}
		s.handleRequest(raw)
	}
}

// handleRequest dispatches one raw request on its action.
func (s *Server) handleRequest(raw msgpack.RawMessage) {
	var req Request
	if err := msgpack.Unmarshal(raw, &req); err != nil {
		log.Errorf("Unmarshaling request: %v", err)
		s.sendError("", "Invalid msgpack request", codeBadRequest)
		return
	}

	switch strings.ToLower(req.Action) {
	case "", "search":
		s.handleSearch(req)
	case "sources":
		s.sendSources(req.ID)
	case "toggle", "enable", "disable":
		s.handleState(req)
	case "add":
		s.handleAdd(req)
	case "remove":
		s.handleRemove(req)
	case "health":
		s.sendResponse(StatusResponse{ID: req.ID, Status: "ok", Words: s.lib.Index().Len()})
	default:
		s.sendError(req.ID, fmt.Sprintf("Unknown action: %s", req.Action), codeBadRequest)
	}
}

func (s *Server) sendResponse(response any) {
	if err := s.encoder.Encode(response); err != nil {
		log.Errorf("Encoding response: %v", err)
	}
}

func (s *Server) sendError(id, message string, code int) {
	s.sendResponse(ErrorResponse{ID: id, Error: message, Code: code})
}

// handleSearch runs the matchers against the current index.
func (s *Server) handleSearch(req Request) {
	letters := strings.ToUpper(strings.TrimSpace(req.Letters))
	if letters == "" {
		s.sendError(req.ID, "Missing 'l' parameter", codeBadRequest)
		return
	}
	if maxLetters := s.cfg.Server.MaxLetters; maxLetters > 0 && len(letters) > maxLetters {
		s.sendError(req.ID, fmt.Sprintf("Letters exceed maximum length of %d", maxLetters), codeBadRequest)
		return
	}

	spec := filter.Spec{MinLen: s.cfg.Search.MinLen, MaxLen: s.cfg.Search.MaxLen}
	if req.Filter != nil {
		spec = *req.Filter
	}
	beam := clamp(req.Beam, s.cfg.Search.BeamWidth, s.cfg.Server.MaxBeamWidth)
	limit := clamp(req.Cap, s.cfg.Search.ResultCap, s.cfg.Server.MaxResultCap)

	idx := s.lib.Index()
	start := time.Now()
	singles, pairs, err := search.Run(idx, letters, spec, search.Options{Pairs: req.Pairs, BeamWidth: beam, ResultCap: limit})
	elapsed := time.Since(start)

	if err != nil {
		code := codeInternal
		if errors.Is(err, search.ErrInvalidInput) {
			code = codeBadRequest
		}
		s.sendError(req.ID, err.Error(), code)
		return
	}

	results := append(singles, pairs...)
	ranks := utils.CreateRankList(len(results))
	out := make([]SearchResult, len(results))
	for i, r := range results {
		out[i] = SearchResult{Words: r.Words, Kind: r.Kind.Code(), Length: r.Length, Rank: ranks[i]}
	}

	s.sendResponse(SearchResponse{
		ID:        req.ID,
		Results:   out,
		Count:     len(out),
		TimeTaken: elapsed.Microseconds(),
	})
}

// clamp picks requested, or fallback when requested is unset, bounded by ceiling.
func clamp(requested, fallback, ceiling int) int {
	v := requested
	if v <= 0 {
		v = fallback
	}
	if ceiling > 0 && v > ceiling {
		log.Debugf("Clamping %d to server maximum %d", v, ceiling)
		v = ceiling
	}
	return v
}

func (s *Server) handleState(req Request) {
	if req.Name == "" {
		s.sendError(req.ID, "Missing 'name' parameter", codeBadRequest)
		return
	}

	var err error
	switch strings.ToLower(req.Action) {
	case "toggle":
		_, err = s.lib.Toggle(req.Name)
	case "enable":
		_, err = s.lib.SetEnabled(req.Name, true)
	default:
		_, err = s.lib.SetEnabled(req.Name, false)
	}
	if err != nil {
		s.sendLibraryError(req.ID, err)
		return
	}

	if src, ok := s.lib.Source(req.Name); ok {
		s.persist(func(st SourceStore) error { return st.SetEnabled(src.Name, src.Enabled) })
	}
	s.sendSources(req.ID)
}

func (s *Server) handleAdd(req Request) {
	src := dictionary.NewSource(req.Name, req.Lines)
	if req.Enabled != nil {
		src.Enabled = *req.Enabled
	}
	if _, err := s.lib.Add(src); err != nil {
		s.sendLibraryError(req.ID, err)
		return
	}
	s.persist(func(st SourceStore) error { return st.SaveSource(src) })
	s.sendSources(req.ID)
}

func (s *Server) handleRemove(req Request) {
	if req.Name == "" {
		s.sendError(req.ID, "Missing 'name' parameter", codeBadRequest)
		return
	}
	if _, err := s.lib.Remove(req.Name); err != nil {
		s.sendLibraryError(req.ID, err)
		return
	}
	s.persist(func(st SourceStore) error { return st.DeleteSource(req.Name) })
	s.sendSources(req.ID)
}

// persist writes through to the store. Failures are logged; the in-memory
// library stays authoritative for this run.
func (s *Server) persist(op func(SourceStore) error) {
	if s.store == nil {
		return
	}
	if err := op(s.store); err != nil {
		log.Errorf("Persisting source change: %v", err)
	}
}

func (s *Server) sendLibraryError(id string, err error) {
	switch {
	case errors.Is(err, dictionary.ErrSourceNotFound):
		s.sendError(id, err.Error(), codeNotFound)
	case errors.Is(err, dictionary.ErrSourceExists):
		s.sendError(id, err.Error(), codeConflict)
	case errors.Is(err, dictionary.ErrEmptySourceName):
		s.sendError(id, err.Error(), codeBadRequest)
	default:
		s.sendError(id, err.Error(), codeInternal)
	}
}

func (s *Server) sendSources(id string) {
	sources := s.lib.Sources()
	infos := make([]SourceInfo, len(sources))
	for i, src := range sources {
		infos[i] = SourceInfo{Name: src.Name, Enabled: src.Enabled, Words: len(src.Lines)}
	}
	s.sendResponse(SourcesResponse{
		ID:      id,
		Status:  "ok",
		Sources: infos,
		Words:   s.lib.Index().Len(),
	})
}
