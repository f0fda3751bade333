package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"quickbite/auth"
	"quickbite/internal/rating-svc/domain"
	"quickbite/internal/rating-svc/service"

	"github.com/gorilla/mux"
)

type Handler struct {
	Ratings service.RatingServiceInterface
}

func NewHandler(ratings service.RatingServiceInterface) *Handler {
	return &Handler{Ratings: ratings}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/ratings", auth.RequireRole(h.submitRating, auth.RoleCustomer)).Methods("POST")
	r.HandleFunc("/api/ratings/can-rate/{orderId}", auth.RequireRole(h.canRate, auth.RoleCustomer)).Methods("GET")
	r.HandleFunc("/api/ratings/{targetType}/{targetId}", h.listRatings).Methods("GET")
}

func writeData(w http.ResponseWriter, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]interface{}{"success": true, "data": data})
}

func writeError(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]interface{}{"success": false, "error": msg})
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrOrderNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrNotOrderOwner):
		writeError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, service.ErrAlreadyRated):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrOrderNotDelivered),
		errors.Is(err, service.ErrInvalidScore),
		errors.Is(err, service.ErrInvalidTarget):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "healthy",
		"service":   "rating-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func (h *Handler) submitRating(w http.ResponseWriter, r *http.Request) {
	var rating domain.Rating
	if err := json.NewDecoder(r.Body).Decode(&rating); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	rating.UserID = auth.FromContext(r.Context()).UserID

	if err := h.Ratings.Submit(r.Context(), &rating); err != nil {
		writeServiceError(w, err)
		return
	}
	writeData(w, http.StatusCreated, rating)
}

func (h *Handler) canRate(w http.ResponseWriter, r *http.Request) {
	orderID, _ := strconv.Atoi(mux.Vars(r)["orderId"])
	userID := auth.FromContext(r.Context()).UserID

	eligible, err := h.Ratings.CanRate(r.Context(), userID, orderID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeData(w, http.StatusOK, map[string]bool{"can_rate": eligible})
}

func (h *Handler) listRatings(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	targetID, _ := strconv.Atoi(vars["targetId"])

	ratings, err := h.Ratings.List(r.Context(), domain.TargetType(vars["targetType"]), targetID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeData(w, http.StatusOK, ratings)
}
