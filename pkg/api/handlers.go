package api

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/segmentio/ksuid"
	"go.uber.org/zap"

	"github.com/ssargent/wondercard/pkg/gamedata"
	"github.com/ssargent/wondercard/pkg/generate"
	"github.com/ssargent/wondercard/pkg/storage"
	"github.com/ssargent/wondercard/pkg/wondercard"
)

// Server holds the API server state
type Server struct {
	store   GiftStore
	config  ServerConfig
	metrics *Metrics
	logger  *zap.Logger
	data    gamedata.Provider

	// seeds draws a seed for conversions that do not pass one
	seedMu sync.Mutex
	seeds  *rand.Rand
}

// NewServer creates a new API server
func NewServer(store GiftStore, config ServerConfig, metrics *Metrics, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	seed := config.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &Server{
		store:   store,
		config:  config,
		metrics: metrics,
		logger:  logger,
		data:    gamedata.Default(),
		seeds:   generate.NewRand(seed),
	}
}

// handleHealth godoc
//
//	@Summary		Health check
//	@Description	Get the health status of the API and the number of stored gifts
//	@Tags			health
//	@Produce		json
//	@Success		200	{object}	map[string]interface{}
//	@Failure		503	{object}	APIResponse
//	@Router			/health [get]
//	@Security		ApiKeyAuth
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	ids, err := s.store.List()
	if err != nil {
		s.metrics.RecordHealthCheck(false)
		s.logger.Error("health check failed", zap.Error(err))
		sendError(w, "Gift store unavailable", http.StatusServiceUnavailable)
		return
	}
	s.metrics.RecordHealthCheck(true)
	s.metrics.SetGiftCount(len(ids))
	sendSuccess(w, map[string]interface{}{"status": "healthy", "gifts": len(ids)})
}

// handleDecode godoc
//
//	@Summary		Decode a gift record
//	@Description	Decode a bare or wrapped record without storing it
//	@Tags			gifts
//	@Accept			octet-stream
//	@Produce		json
//	@Param			body	body		[]byte	true	"Record bytes"
//	@Success		200		{object}	wondercard.Summary
//	@Failure		400		{object}	APIResponse
//	@Failure		413		{object}	APIResponse
//	@Router			/decode [post]
//	@Security		ApiKeyAuth
func (s *Server) handleDecode(w http.ResponseWriter, r *http.Request) {
	card, ok := s.readRecord(w, r)
	if !ok {
		return
	}
	sendSuccess(w, wondercard.Summarize(card))
}

// handleCreateGift godoc
//
//	@Summary		Store a gift record
//	@Tags			gifts
//	@Accept			octet-stream
//	@Produce		json
//	@Param			body	body		[]byte	true	"Record bytes"
//	@Success		200		{object}	GiftResponse
//	@Failure		400		{object}	APIResponse
//	@Failure		500		{object}	APIResponse
//	@Router			/gifts [post]
//	@Security		ApiKeyAuth
func (s *Server) handleCreateGift(w http.ResponseWriter, r *http.Request) {
	card, ok := s.readRecord(w, r)
	if !ok {
		return
	}

	start := time.Now()
	id, err := s.store.Create(card)
	s.metrics.RecordStoreOperation("create", err == nil, time.Since(start))
	if err != nil {
		s.logger.Error("failed to store gift", zap.Error(err))
		sendError(w, fmt.Sprintf("Failed to store gift: %v", err), http.StatusInternalServerError)
		return
	}
	s.refreshGiftCount()

	s.logger.Info("stored gift", zap.Stringer("id", id), zap.Int("card_id", card.CardID()))
	sendSuccess(w, s.giftResponse(id, card))
}

// handleListGifts godoc
//
//	@Summary		List stored gifts
//	@Tags			gifts
//	@Produce		json
//	@Success		200	{array}		GiftResponse
//	@Failure		500	{object}	APIResponse
//	@Router			/gifts [get]
//	@Security		ApiKeyAuth
func (s *Server) handleListGifts(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	ids, err := s.store.List()
	s.metrics.RecordStoreOperation("list", err == nil, time.Since(start))
	if err != nil {
		sendError(w, fmt.Sprintf("Failed to list gifts: %v", err), http.StatusInternalServerError)
		return
	}

	gifts := make([]GiftResponse, 0, len(ids))
	for _, id := range ids {
		card, err := s.store.Read(id)
		if err != nil {
			s.logger.Warn("skipping unreadable gift", zap.Stringer("id", id), zap.Error(err))
			continue
		}
		gifts = append(gifts, s.giftResponse(id, card))
	}
	s.metrics.SetGiftCount(len(ids))
	sendSuccess(w, gifts)
}

// handleGetGift godoc
//
//	@Summary		Get a stored gift
//	@Description	Returns the decoded gift, or the record bytes with format=bare or format=wrapped
//	@Tags			gifts
//	@Produce		json,octet-stream
//	@Param			id		path		string	true	"Gift ID"
//	@Param			format	query		string	false	"bare or wrapped"
//	@Success		200		{object}	GiftResponse
//	@Failure		400		{object}	APIResponse
//	@Failure		404		{object}	APIResponse
//	@Router			/gifts/{id} [get]
//	@Security		ApiKeyAuth
func (s *Server) handleGetGift(w http.ResponseWriter, r *http.Request) {
	id, card, ok := s.loadGift(w, r, "read")
	if !ok {
		return
	}

	var raw []byte
	switch format := r.URL.Query().Get("format"); format {
	case "":
		sendSuccess(w, s.giftResponse(id, card))
		return
	case "bare":
		raw = card.Bytes()
	case "wrapped":
		raw = card.Wrap()
	default:
		sendError(w, fmt.Sprintf("Unknown format %q", format), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/octet-stream")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", id.String()+".wc7"))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(raw)
}

// handleUpdateGift godoc
//
//	@Summary		Replace a stored gift
//	@Tags			gifts
//	@Accept			octet-stream
//	@Produce		json
//	@Param			id		path		string	true	"Gift ID"
//	@Param			body	body		[]byte	true	"Record bytes"
//	@Success		200		{object}	GiftResponse
//	@Failure		400		{object}	APIResponse
//	@Failure		404		{object}	APIResponse
//	@Router			/gifts/{id} [put]
//	@Security		ApiKeyAuth
func (s *Server) handleUpdateGift(w http.ResponseWriter, r *http.Request) {
	id, ok := parseGiftID(w, r)
	if !ok {
		return
	}
	card, ok := s.readRecord(w, r)
	if !ok {
		return
	}

	start := time.Now()
	err := s.store.Update(id, card)
	s.metrics.RecordStoreOperation("update", err == nil, time.Since(start))
	if err != nil {
		sendStoreError(w, err)
		return
	}
	sendSuccess(w, s.giftResponse(id, card))
}

// handleDeleteGift godoc
//
//	@Summary		Delete a stored gift
//	@Tags			gifts
//	@Produce		json
//	@Param			id	path		string	true	"Gift ID"
//	@Success		200	{object}	map[string]string
//	@Failure		400	{object}	APIResponse
//	@Failure		404	{object}	APIResponse
//	@Router			/gifts/{id} [delete]
//	@Security		ApiKeyAuth
func (s *Server) handleDeleteGift(w http.ResponseWriter, r *http.Request) {
	id, ok := parseGiftID(w, r)
	if !ok {
		return
	}

	start := time.Now()
	err := s.store.Delete(id)
	s.metrics.RecordStoreOperation("delete", err == nil, time.Since(start))
	if err != nil {
		sendStoreError(w, err)
		return
	}
	s.refreshGiftCount()

	s.logger.Info("deleted gift", zap.Stringer("id", id))
	sendSuccess(w, map[string]string{"id": id.String(), "status": "deleted"})
}

// handleConvert godoc
//
//	@Summary		Generate a creature from a stored gift
//	@Description	The optional JSON body overrides the configured recipient trainer
//	@Tags			gifts
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string			true	"Gift ID"
//	@Param			seed	query		integer			false	"Non-zero generator seed"
//	@Param			body	body		trainer.Info	false	"Recipient trainer"
//	@Success		200		{object}	ConvertResponse
//	@Failure		400		{object}	APIResponse
//	@Failure		404		{object}	APIResponse
//	@Failure		422		{object}	APIResponse
//	@Router			/gifts/{id}/convert [post]
//	@Security		ApiKeyAuth
func (s *Server) handleConvert(w http.ResponseWriter, r *http.Request) {
	seed, err := s.requestSeed(r)
	if err != nil {
		sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	tr := s.config.Trainer
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, 4096))
	if err != nil {
		sendError(w, "Failed to read request body", http.StatusBadRequest)
		return
	}
	if len(body) > 0 {
		if err := json.Unmarshal(body, &tr); err != nil {
			sendError(w, "Invalid JSON in request body", http.StatusBadRequest)
			return
		}
	}
	if err := tr.Validate(); err != nil {
		sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	id, card, ok := s.loadGift(w, r, "read")
	if !ok {
		return
	}

	gen := generate.New(
		generate.WithSeed(seed),
		generate.WithProvider(s.data),
		generate.WithLogger(s.logger),
	)
	pk, err := gen.ConvertToPK7(card, tr)
	switch {
	case errors.Is(err, generate.ErrNotPokemon):
		s.metrics.RecordConversion("not_pokemon")
		sendError(w, err.Error(), http.StatusUnprocessableEntity)
		return
	case errors.Is(err, gamedata.ErrSpeciesNotFound):
		s.metrics.RecordConversion(statusError)
		sendError(w, err.Error(), http.StatusUnprocessableEntity)
		return
	case err != nil:
		s.metrics.RecordConversion(statusError)
		s.logger.Error("conversion failed", zap.Stringer("id", id), zap.Error(err))
		sendError(w, fmt.Sprintf("Conversion failed: %v", err), http.StatusInternalServerError)
		return
	}

	if pk.IsShiny() {
		s.metrics.RecordConversion("shiny")
	} else {
		s.metrics.RecordConversion("regular")
	}

	sendSuccess(w, ConvertResponse{
		GiftID:      id.String(),
		Seed:        seed,
		Creature:    pk,
		Data:        hex.EncodeToString(pk.Encode()),
		Shiny:       pk.IsShiny(),
		AshGreninja: card.IsAshGreninja(pk),
	})
}

// requestSeed returns the seed query parameter or draws a fresh one
func (s *Server) requestSeed(r *http.Request) (uint64, error) {
	if v := r.URL.Query().Get("seed"); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil || seed == 0 {
			return 0, fmt.Errorf("invalid seed %q", v)
		}
		return seed, nil
	}

	s.seedMu.Lock()
	defer s.seedMu.Unlock()
	for {
		if seed := s.seeds.Uint64(); seed != 0 {
			return seed, nil
		}
	}
}

// readRecord reads a record body no larger than MaxRecordSize
func (s *Server) readRecord(w http.ResponseWriter, r *http.Request) (*wondercard.WC7, bool) {
	limit := s.config.MaxRecordSize
	if limit <= 0 {
		limit = wondercard.SizeFull
	}
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, int64(limit)))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			sendError(w, fmt.Sprintf("Record exceeds %d bytes", limit), http.StatusRequestEntityTooLarge)
			return nil, false
		}
		sendError(w, "Failed to read request body", http.StatusBadRequest)
		return nil, false
	}
	if len(data) == 0 {
		sendError(w, "Record body is empty", http.StatusBadRequest)
		return nil, false
	}
	return wondercard.Decode(data), true
}

// loadGift parses the id path parameter and reads the gift
func (s *Server) loadGift(w http.ResponseWriter, r *http.Request, op string) (ksuid.KSUID, *wondercard.WC7, bool) {
	id, ok := parseGiftID(w, r)
	if !ok {
		return ksuid.Nil, nil, false
	}

	start := time.Now()
	card, err := s.store.Read(id)
	s.metrics.RecordStoreOperation(op, err == nil, time.Since(start))
	if err != nil {
		sendStoreError(w, err)
		return ksuid.Nil, nil, false
	}
	return id, card, true
}

func (s *Server) giftResponse(id ksuid.KSUID, card *wondercard.WC7) GiftResponse {
	resp := GiftResponse{ID: id.String(), Gift: wondercard.Summarize(card)}
	if card.IsPokemon() {
		c := card.Creature()
		resp.SpeciesName = s.data.SpeciesName(c.Species(), c.Language())
	}
	return resp
}

func (s *Server) refreshGiftCount() {
	if s.metrics == nil {
		return
	}
	ids, err := s.store.List()
	if err != nil {
		s.logger.Warn("failed to count gifts", zap.Error(err))
		return
	}
	s.metrics.SetGiftCount(len(ids))
}

func parseGiftID(w http.ResponseWriter, r *http.Request) (ksuid.KSUID, bool) {
	id, err := storage.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		sendError(w, err.Error(), http.StatusBadRequest)
		return ksuid.Nil, false
	}
	return id, true
}

func sendStoreError(w http.ResponseWriter, err error) {
	if errors.Is(err, storage.ErrNotFound) {
		sendError(w, "Gift not found", http.StatusNotFound)
		return
	}
	sendError(w, fmt.Sprintf("Gift store error: %v", err), http.StatusInternalServerError)
}
