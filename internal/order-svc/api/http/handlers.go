package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"quickbite/auth"
	"quickbite/internal/order-svc/domain"
	"quickbite/internal/order-svc/service"

	"github.com/gorilla/mux"
)

type Handler struct {
	Orders service.OrderServiceInterface
}

func NewHandler(orders service.OrderServiceInterface) *Handler {
	return &Handler{Orders: orders}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/orders", auth.RequireRole(h.createOrder, auth.RoleCustomer)).Methods("POST")
	r.HandleFunc("/api/orders", auth.Required(h.listOrders)).Methods("GET")
	r.HandleFunc("/api/orders/pending", auth.RequireRole(h.pendingOrders, auth.RoleRestaurant)).Methods("GET")
	r.HandleFunc("/api/orders/{id}", auth.Required(h.getOrder)).Methods("GET")
	r.HandleFunc("/api/orders/{id}/status", auth.RequireRole(h.updateStatus, auth.RoleRestaurant)).Methods("PUT")
	r.HandleFunc("/api/orders/{id}/accept", auth.RequireRole(h.acceptOrder, auth.RoleRestaurant)).Methods("PUT")
	r.HandleFunc("/api/orders/{id}/reject", auth.RequireRole(h.rejectOrder, auth.RoleRestaurant)).Methods("PUT")
	r.HandleFunc("/api/orders/{id}/cancel", auth.RequireRole(h.cancelOrder, auth.RoleCustomer)).Methods("PUT")
	r.HandleFunc("/api/orders/{id}/qrcode", h.getOrderQRCode).Methods("GET")
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

// writeServiceError maps service sentinels onto the fixed status set.
// Unknown errors are masked as a generic 500.
func writeServiceError(w http.ResponseWriter, err error) {
	var invalid *domain.InvalidTransitionError
	switch {
	case errors.Is(err, service.ErrOrderNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrNotOrderOwner),
		errors.Is(err, service.ErrNotRestaurantOrder):
		writeError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, service.ErrTransitionLost):
		writeError(w, http.StatusConflict, err.Error())
	case errors.As(err, &invalid):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrEmptyOrder),
		errors.Is(err, service.ErrRestaurantOffline),
		errors.Is(err, service.ErrItemUnavailable):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "healthy",
		"service":   "order-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	var order domain.Order
	if err := json.NewDecoder(r.Body).Decode(&order); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON format: "+err.Error())
		return
	}
	order.UserID = auth.FromContext(r.Context()).UserID

	if err := h.Orders.Create(r.Context(), &order); err != nil {
		writeServiceError(w, err)
		return
	}

	order.QRCode = h.Orders.QRLink(order.ID)
	writeData(w, http.StatusCreated, order)
}

func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request) {
	claims := auth.FromContext(r.Context())

	var orders []domain.Order
	var err error
	if claims.Role == auth.RoleRestaurant {
		restaurantID, convErr := strconv.Atoi(r.URL.Query().Get("restaurant_id"))
		if convErr != nil {
			writeError(w, http.StatusBadRequest, "restaurant_id query parameter required")
			return
		}
		orders, err = h.Orders.ListForRestaurant(restaurantID)
	} else {
		orders, err = h.Orders.ListForUser(claims.UserID)
	}
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeData(w, http.StatusOK, orders)
}

func (h *Handler) pendingOrders(w http.ResponseWriter, r *http.Request) {
	restaurantID, err := strconv.Atoi(r.URL.Query().Get("restaurant_id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "restaurant_id query parameter required")
		return
	}
	orders, err := h.Orders.Pending(r.Context(), restaurantID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeData(w, http.StatusOK, orders)
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	orderID, _ := strconv.Atoi(mux.Vars(r)["id"])
	order, err := h.Orders.Get(r.Context(), orderID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeData(w, http.StatusOK, order)
}

func (h *Handler) updateStatus(w http.ResponseWriter, r *http.Request) {
	orderID, _ := strconv.Atoi(mux.Vars(r)["id"])
	var payload struct {
		Status domain.Status `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.Status == "" {
		writeError(w, http.StatusBadRequest, "status field required")
		return
	}
	h.transition(w, r, orderID, payload.Status)
}

func (h *Handler) acceptOrder(w http.ResponseWriter, r *http.Request) {
	orderID, _ := strconv.Atoi(mux.Vars(r)["id"])
	h.transition(w, r, orderID, domain.StatusConfirmed)
}

func (h *Handler) rejectOrder(w http.ResponseWriter, r *http.Request) {
	orderID, _ := strconv.Atoi(mux.Vars(r)["id"])
	h.transition(w, r, orderID, domain.StatusRejected)
}

func (h *Handler) transition(w http.ResponseWriter, r *http.Request, orderID int, target domain.Status) {
	restaurantID := auth.FromContext(r.Context()).UserID
	order, err := h.Orders.Transition(r.Context(), orderID, restaurantID, target)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeData(w, http.StatusOK, order)
}

func (h *Handler) cancelOrder(w http.ResponseWriter, r *http.Request) {
	orderID, _ := strconv.Atoi(mux.Vars(r)["id"])
	order, err := h.Orders.Cancel(r.Context(), orderID, auth.FromContext(r.Context()).UserID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeData(w, http.StatusOK, order)
}

func (h *Handler) getOrderQRCode(w http.ResponseWriter, r *http.Request) {
	orderID, _ := strconv.Atoi(mux.Vars(r)["id"])
	qr, err := h.Orders.QRCode(r.Context(), orderID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if len(qr) == 0 {
		writeError(w, http.StatusNotFound, "QR code not found")
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(qr)
}
