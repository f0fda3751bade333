package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"quickbite/auth"
	"quickbite/internal/delivery-svc/domain"
	"quickbite/internal/delivery-svc/service"

	"github.com/gorilla/mux"
)

type Handler struct {
	Deliveries service.DeliveryServiceInterface
}

func NewHandler(deliveries service.DeliveryServiceInterface) *Handler {
	return &Handler{Deliveries: deliveries}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/agents", auth.RequireRole(h.registerAgent, auth.RoleAgent)).Methods("POST")
	r.HandleFunc("/api/agents/location", auth.RequireRole(h.updateLocation, auth.RoleAgent)).Methods("PUT")
	r.HandleFunc("/api/agents/availability", auth.RequireRole(h.updateAvailability, auth.RoleAgent)).Methods("PUT")
	r.HandleFunc("/api/agents/{id}/stats", auth.Required(h.agentStats)).Methods("GET")

	r.HandleFunc("/api/deliveries/match", auth.RequireRole(h.matchAgent, auth.RoleRestaurant)).Methods("POST")
	r.HandleFunc("/api/deliveries/{orderId}/assign", auth.RequireRole(h.assignAgent, auth.RoleRestaurant)).Methods("POST")
	r.HandleFunc("/api/deliveries/{orderId}/accept", auth.RequireRole(h.acceptDelivery, auth.RoleAgent)).Methods("PUT")
	r.HandleFunc("/api/deliveries/{orderId}/reject", auth.RequireRole(h.rejectDelivery, auth.RoleAgent)).Methods("PUT")
	r.HandleFunc("/api/deliveries/{orderId}/status", auth.RequireRole(h.updateDeliveryStatus, auth.RoleAgent)).Methods("PUT")
}

func writeData(w http.ResponseWriter, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]interface{}{"success": true, "data": data})
}

func writeMessage(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]interface{}{"success": true, "message": msg})
}

func writeError(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]interface{}{"success": false, "error": msg})
}

func writeServiceError(w http.ResponseWriter, err error) {
	var invalid *domain.InvalidDeliveryTransitionError
	switch {
	case errors.Is(err, service.ErrAgentNotFound),
		errors.Is(err, service.ErrNoAssignment),
		errors.Is(err, service.ErrNoCandidates):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrAssignConflict),
		errors.Is(err, service.ErrAgentExists),
		errors.Is(err, service.ErrAgentBusy),
		errors.Is(err, service.ErrTransitionLost):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrNotAssignedAgent):
		writeError(w, http.StatusForbidden, err.Error())
	case errors.As(err, &invalid),
		errors.Is(err, service.ErrInvalidAgent),
		errors.Is(err, service.ErrInvalidLocation),
		errors.Is(err, service.ErrAgentInactive):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "healthy",
		"service":   "delivery-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func (h *Handler) registerAgent(w http.ResponseWriter, r *http.Request) {
	var agent domain.DeliveryAgent
	if err := json.NewDecoder(r.Body).Decode(&agent); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	// The profile is keyed by the token subject, not a client-chosen id.
	agent.ID = auth.FromContext(r.Context()).UserID

	if err := h.Deliveries.RegisterAgent(r.Context(), &agent); err != nil {
		writeServiceError(w, err)
		return
	}
	writeData(w, http.StatusCreated, agent)
}

func (h *Handler) updateLocation(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Lat float64 `json:"lat"`
		Lng float64 `json:"lng"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	agentID := auth.FromContext(r.Context()).UserID
	if err := h.Deliveries.UpdateLocation(r.Context(), agentID, payload.Lat, payload.Lng); err != nil {
		writeServiceError(w, err)
		return
	}
	writeMessage(w, http.StatusOK, "location updated")
}

func (h *Handler) updateAvailability(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Available bool `json:"available"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	agentID := auth.FromContext(r.Context()).UserID
	if err := h.Deliveries.UpdateAvailability(r.Context(), agentID, payload.Available); err != nil {
		writeServiceError(w, err)
		return
	}
	writeMessage(w, http.StatusOK, "availability updated")
}

func (h *Handler) agentStats(w http.ResponseWriter, r *http.Request) {
	agentID, _ := strconv.Atoi(mux.Vars(r)["id"])
	stats, err := h.Deliveries.Stats(r.Context(), agentID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeData(w, http.StatusOK, stats)
}

func (h *Handler) matchAgent(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Lat      float64 `json:"lat"`
		Lng      float64 `json:"lng"`
		RadiusKm float64 `json:"radius_km"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	match, err := h.Deliveries.Match(r.Context(), payload.Lat, payload.Lng, payload.RadiusKm)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeData(w, http.StatusOK, match)
}

func (h *Handler) assignAgent(w http.ResponseWriter, r *http.Request) {
	orderID, _ := strconv.Atoi(mux.Vars(r)["orderId"])
	var payload struct {
		AgentID int `json:"agent_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.AgentID == 0 {
		writeError(w, http.StatusBadRequest, "agent_id required")
		return
	}

	if err := h.Deliveries.Assign(r.Context(), orderID, payload.AgentID); err != nil {
		writeServiceError(w, err)
		return
	}
	writeMessage(w, http.StatusOK, "agent assigned")
}

func (h *Handler) acceptDelivery(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, domain.DeliveryAccepted)
}

func (h *Handler) rejectDelivery(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, domain.DeliveryRejected)
}

func (h *Handler) updateDeliveryStatus(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Status domain.DeliveryStatus `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.Status == "" {
		writeError(w, http.StatusBadRequest, "status field required")
		return
	}
	h.transition(w, r, payload.Status)
}

func (h *Handler) transition(w http.ResponseWriter, r *http.Request, target domain.DeliveryStatus) {
	orderID, _ := strconv.Atoi(mux.Vars(r)["orderId"])
	agentID := auth.FromContext(r.Context()).UserID
	if err := h.Deliveries.TransitionDelivery(r.Context(), orderID, agentID, target); err != nil {
		writeServiceError(w, err)
		return
	}
	writeMessage(w, http.StatusOK, "delivery status updated")
}
