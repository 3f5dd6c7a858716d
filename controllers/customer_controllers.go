package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yeremiapane/lunchly/models"
	"github.com/yeremiapane/lunchly/store"
	"github.com/yeremiapane/lunchly/utils"
)

type CustomerController struct {
	Customers *store.CustomerStore
}

func NewCustomerController(db *gorm.DB) *CustomerController {
	return &CustomerController{Customers: store.NewCustomerStore(db)}
}

type customerBody struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Phone     string `json:"phone"`
	Notes     string `json:"notes"`
}

// GetAllCustomers -> all customers, or those matching ?search=
func (cc *CustomerController) GetAllCustomers(c *gin.Context) {
	var (
		customers []*models.Customer
		err       error
	)
	if term, ok := c.GetQuery("search"); ok {
		customers, err = cc.Customers.Search(c.Request.Context(), term)
	} else {
		customers, err = cc.Customers.ListAll(c.Request.Context())
	}
	if err != nil {
		utils.RespondStoreError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "List of customers", customers)
}

// GetTopCustomers -> customers with the most reservations
func (cc *CustomerController) GetTopCustomers(c *gin.Context) {
	limit := store.DefaultTopLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			utils.RespondError(c, http.StatusBadRequest, ErrInvalidLimit)
			return
		}
		limit = n
	}

	customers, err := cc.Customers.TopByReservationCount(c.Request.Context(), limit)
	if err != nil {
		utils.RespondStoreError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Top customers", customers)
}

func (cc *CustomerController) CreateCustomer(c *gin.Context) {
	var req customerBody
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	customer := models.NewCustomer(req.FirstName, req.LastName, req.Phone, req.Notes)
	if err := cc.Customers.Save(c.Request.Context(), customer); err != nil {
		utils.RespondStoreError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Customer created", customer)
}

// GetCustomerByID -> one customer together with their reservations
func (cc *CustomerController) GetCustomerByID(c *gin.Context) {
	id, err := paramID(c, "customer_id")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	ctx := c.Request.Context()
	customer, err := cc.Customers.GetByID(ctx, id)
	if err != nil {
		utils.RespondStoreError(c, err)
		return
	}

	reservations, err := cc.Customers.Reservations(ctx, customer)
	if err != nil {
		utils.RespondStoreError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Customer detail", gin.H{
		"customer":     customer,
		"reservations": reservationViews(cc.Customers.ReservationStore, reservations),
	})
}

func (cc *CustomerController) UpdateCustomer(c *gin.Context) {
	id, err := paramID(c, "customer_id")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var req customerBody
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	ctx := c.Request.Context()
	customer, err := cc.Customers.GetByID(ctx, id)
	if err != nil {
		utils.RespondStoreError(c, err)
		return
	}

	customer.FirstName = req.FirstName
	customer.LastName = req.LastName
	customer.Phone = req.Phone
	customer.SetNotes(req.Notes)

	if err := cc.Customers.Save(ctx, customer); err != nil {
		utils.RespondStoreError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Customer updated", customer)
}
