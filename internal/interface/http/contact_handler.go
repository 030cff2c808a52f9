package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"contacts-api/internal/application"
	"contacts-api/internal/domain/entity"
	"contacts-api/internal/domain/repository"
	"contacts-api/internal/interface/middleware"
	"contacts-api/pkg/response"
	"contacts-api/pkg/validation"
)

// PageSize is the fixed page size for contact listings; the limit query
// parameter is clamped here, not in the store.
const PageSize = 10

const birthDateLayout = "2006-01-02"

type ContactHandler struct {
	Svc    *application.ContactService
	Logger *logrus.Logger
}

func NewContactHandler(svc *application.ContactService, logger *logrus.Logger) *ContactHandler {
	return &ContactHandler{Svc: svc, Logger: logger}
}

type contactRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=50"`
	LastName    string `json:"last_name" binding:"required,min=1,max=50"`
	Email       string `json:"email" binding:"required,email"`
	PhoneNumber string `json:"phone_number" binding:"required,max=30"`
	BirthDate   string `json:"birth_date" binding:"required,datetime=2006-01-02"`
	Notes       string `json:"notes" binding:"max=500"`
}

func (r *contactRequest) toEntity() *entity.Contact {
	// Layout already validated by the datetime binding rule.
	bd, _ := time.Parse(birthDateLayout, r.BirthDate)
	return &entity.Contact{
		Name:        r.Name,
		LastName:    r.LastName,
		Email:       r.Email,
		PhoneNumber: r.PhoneNumber,
		BirthDate:   bd,
		Notes:       r.Notes,
	}
}

type contactResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	LastName    string `json:"last_name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
	BirthDate   string `json:"birth_date"`
	Notes       string `json:"notes"`
}

func newContactResponse(c *entity.Contact) contactResponse {
	return contactResponse{
		ID:          c.ID,
		Name:        c.Name,
		LastName:    c.LastName,
		Email:       c.Email,
		PhoneNumber: c.PhoneNumber,
		BirthDate:   c.BirthDate.Format(birthDateLayout),
		Notes:       c.Notes,
	}
}

func contactID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		response.Error(c, http.StatusBadRequest, "Invalid contact id", nil)
		return 0, false
	}
	return id, true
}

// List GET /api/contacts
// Query: limit (clamped to PageSize), offset>=0, name, last_name, email,
// find_bd (upcoming birthdays within the next 7 days).
func (h *ContactHandler) List(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(PageSize)))
	if err != nil || limit < 1 || limit > PageSize {
		limit = PageSize
	}
	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		response.Error(c, http.StatusBadRequest, "Invalid offset", nil)
		return
	}
	findBD, _ := strconv.ParseBool(c.DefaultQuery("find_bd", "false"))

	f := repository.ContactFilter{
		Limit:            limit,
		Offset:           offset,
		Name:             c.Query("name"),
		LastName:         c.Query("last_name"),
		Email:            c.Query("email"),
		UpcomingBirthday: findBD,
	}

	contacts, err := h.Svc.List(c.Request.Context(), middleware.UserID(c), f)
	if err != nil {
		h.Logger.WithError(err).Error("contact listing failed")
		response.Error(c, http.StatusInternalServerError, "Internal server error", nil)
		return
	}
	out := make([]contactResponse, 0, len(contacts))
	for _, ct := range contacts {
		out = append(out, newContactResponse(ct))
	}
	c.JSON(http.StatusOK, out)
}

// Get GET /api/contacts/:id
func (h *ContactHandler) Get(c *gin.Context) {
	id, ok := contactID(c)
	if !ok {
		return
	}
	ct, err := h.Svc.Get(c.Request.Context(), id, middleware.UserID(c))
	if err != nil {
		h.Logger.WithError(err).Error("contact lookup failed")
		response.Error(c, http.StatusInternalServerError, "Internal server error", nil)
		return
	}
	if ct == nil {
		response.Error(c, http.StatusNotFound, "Contact not found", nil)
		return
	}
	c.JSON(http.StatusOK, newContactResponse(ct))
}

// Create POST /api/contacts
func (h *ContactHandler) Create(c *gin.Context) {
	var req contactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid payload", validation.ToDetails(err))
		return
	}
	ct, err := h.Svc.Create(c.Request.Context(), middleware.UserID(c), req.toEntity())
	if err != nil {
		h.Logger.WithError(err).Error("contact creation failed")
		response.Error(c, http.StatusInternalServerError, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusCreated, newContactResponse(ct))
}

// Update PUT /api/contacts/:id — full replace of mutable fields.
func (h *ContactHandler) Update(c *gin.Context) {
	id, ok := contactID(c)
	if !ok {
		return
	}
	var req contactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid payload", validation.ToDetails(err))
		return
	}
	ct, err := h.Svc.Update(c.Request.Context(), id, middleware.UserID(c), req.toEntity())
	if err != nil {
		h.Logger.WithError(err).Error("contact update failed")
		response.Error(c, http.StatusInternalServerError, "Internal server error", nil)
		return
	}
	if ct == nil {
		response.Error(c, http.StatusNotFound, "Contact not found", nil)
		return
	}
	c.JSON(http.StatusOK, newContactResponse(ct))
}

// Delete DELETE /api/contacts/:id
func (h *ContactHandler) Delete(c *gin.Context) {
	id, ok := contactID(c)
	if !ok {
		return
	}
	ct, err := h.Svc.Delete(c.Request.Context(), id, middleware.UserID(c))
	if err != nil {
		h.Logger.WithError(err).Error("contact deletion failed")
		response.Error(c, http.StatusInternalServerError, "Internal server error", nil)
		return
	}
	if ct == nil {
		response.Error(c, http.StatusNotFound, "Contact not found", nil)
		return
	}
	c.Status(http.StatusNoContent)
}
