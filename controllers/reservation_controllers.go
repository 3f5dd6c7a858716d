package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yeremiapane/lunchly/models"
	"github.com/yeremiapane/lunchly/store"
	"github.com/yeremiapane/lunchly/utils"
)

type ReservationController struct {
	Customers    *store.CustomerStore
	Reservations *store.ReservationStore
}

func NewReservationController(db *gorm.DB) *ReservationController {
	customers := store.NewCustomerStore(db)
	return &ReservationController{Customers: customers, Reservations: customers.ReservationStore}
}

type reservationView struct {
	ID               uint      `json:"id"`
	CustomerID       uint      `json:"customer_id"`
	NumGuests        int       `json:"num_guests"`
	StartAt          time.Time `json:"start_at"`
	FormattedStartAt string    `json:"formatted_start_at"`
	Notes            string    `json:"notes"`
}

func reservationViews(rs *store.ReservationStore, reservations []*models.Reservation) []reservationView {
	views := make([]reservationView, 0, len(reservations))
	for _, r := range reservations {
		views = append(views, reservationView{
			ID:               r.ID(),
			CustomerID:       r.CustomerID(),
			NumGuests:        r.NumGuests(),
			StartAt:          r.StartAt(),
			FormattedStartAt: rs.FormatStartAt(r),
			Notes:            r.Notes(),
		})
	}
	return views
}

func (rc *ReservationController) GetCustomerReservations(c *gin.Context) {
	id, err := paramID(c, "customer_id")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	ctx := c.Request.Context()
	customer, err := rc.Customers.GetByID(ctx, id)
	if err != nil {
		utils.RespondStoreError(c, err)
		return
	}

	reservations, err := rc.Customers.Reservations(ctx, customer)
	if err != nil {
		utils.RespondStoreError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "List of reservations", reservationViews(rc.Reservations, reservations))
}

// CreateReservation -> book a party for an existing customer
func (rc *ReservationController) CreateReservation(c *gin.Context) {
	id, err := paramID(c, "customer_id")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var req struct {
		NumGuests int    `json:"num_guests"`
		StartAt   string `json:"start_at" binding:"required"`
		Notes     string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	ctx := c.Request.Context()
	if _, err := rc.Customers.GetByID(ctx, id); err != nil {
		utils.RespondStoreError(c, err)
		return
	}

	startAt, err := models.ParseStartAt(req.StartAt)
	if err != nil {
		utils.RespondStoreError(c, err)
		return
	}

	reservation, err := models.NewReservation(id, req.NumGuests, startAt, req.Notes)
	if err != nil {
		utils.RespondStoreError(c, err)
		return
	}

	if err := rc.Reservations.Save(ctx, reservation); err != nil {
		utils.RespondStoreError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Reservation created", reservationViews(rc.Reservations, []*models.Reservation{reservation})[0])
}
