package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"sync"

	"github.com/ZilDuck/nft-marketplace/internal/entity"
	"github.com/ZilDuck/nft-marketplace/internal/marketplace"
	"github.com/ZilDuck/nft-marketplace/internal/split"
	"github.com/ZilDuck/nft-marketplace/internal/store"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// Server exposes the marketplace operations over HTTP. Mutating requests
// are serialized; the engine's reentrancy guard then only ever fires on a
// genuine nested call from a collaborator.
type Server struct {
	engine   marketplace.Engine
	listings store.ListingStore
	mu       sync.Mutex
}

func NewServer(engine marketplace.Engine, listings store.ListingStore) *Server {
	return &Server{engine: engine, listings: listings}
}

func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/health", s.handleHealth).Methods("GET")
	r.HandleFunc("/listings", s.handleList).Methods("POST")
	r.HandleFunc("/listings/{lister}/{assetContract}/{assetId}", s.handleGetListing).Methods("GET")
	r.HandleFunc("/listings/{assetContract}/{assetId}", s.handleDelist).Methods("DELETE")
	r.HandleFunc("/purchases", s.handlePurchase).Methods("POST")

	return r
}

type listRequest struct {
	Caller        string                 `json:"caller"`
	AssetContract string                 `json:"assetContract"`
	AssetId       uint64                 `json:"assetId"`
	Price         uint64                 `json:"price"`
	Recipients    []entity.SaleRecipient `json:"recipients"`
}

type purchaseRequest struct {
	Buyer         string `json:"buyer"`
	AssetContract string `json:"assetContract"`
	AssetId       uint64 `json:"assetId"`
	Owner         string `json:"owner"`
	Amount        uint64 `json:"amount"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = fmt.Fprintf(w, "OK")
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	var req listRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	err := s.engine.List(req.Caller, req.AssetContract, req.AssetId, req.Price, req.Recipients)
	s.mu.Unlock()

	if err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
}

func (s *Server) handleGetListing(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	assetId, err := strconv.ParseUint(vars["assetId"], 10, 64)
	if err != nil {
		http.Error(w, "Invalid asset id", http.StatusBadRequest)
		return
	}

	recipients := s.listings.Get(vars["lister"], vars["assetContract"], assetId)
	if len(recipients) == 0 {
		http.Error(w, "Listing not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"lister":        vars["lister"],
		"assetContract": vars["assetContract"],
		"assetId":       assetId,
		"price":         s.listings.GetPrice(vars["assetContract"], assetId),
		"recipients":    recipients,
	})
}

func (s *Server) handleDelist(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	assetId, err := strconv.ParseUint(vars["assetId"], 10, 64)
	if err != nil {
		http.Error(w, "Invalid asset id", http.StatusBadRequest)
		return
	}

	caller := r.Header.Get("X-Caller-Address")
	if caller == "" {
		http.Error(w, "Missing caller address", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	err = s.engine.Delist(caller, vars["assetContract"], assetId)
	s.mu.Unlock()

	if err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (s *Server) handlePurchase(w http.ResponseWriter, r *http.Request) {
	var req purchaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	err := s.engine.Purchase(req.Buyer, req.AssetContract, req.AssetId, req.Owner, req.Amount)
	s.mu.Unlock()

	if err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func writeError(w http.ResponseWriter, err error) {
	zap.L().With(zap.Error(err)).Warn("Server: Request failed")

	switch {
	case errors.Is(err, marketplace.ErrUnapproved):
		http.Error(w, err.Error(), http.StatusForbidden)
	case errors.Is(err, marketplace.ErrIncorrectAmount):
		http.Error(w, err.Error(), http.StatusPaymentRequired)
	case errors.Is(err, marketplace.ErrTerminalNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, marketplace.ErrReentrant):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, split.ErrNoRecipients),
		errors.Is(err, split.ErrZeroShare),
		errors.Is(err, split.ErrShareExceeded),
		errors.Is(err, split.ErrSharesIncomplete),
		errors.Is(err, split.ErrBeneficiaryRequired):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
