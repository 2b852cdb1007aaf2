package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/sention-aktivitus/klientportal-api/internal/audit"
	"github.com/sention-aktivitus/klientportal-api/internal/domain/appointment"
	"github.com/sention-aktivitus/klientportal-api/internal/dto"
	"github.com/sention-aktivitus/klientportal-api/internal/httperr"
	"github.com/sention-aktivitus/klientportal-api/internal/httpresp"
	"github.com/sention-aktivitus/klientportal-api/internal/middleware"
	"github.com/sention-aktivitus/klientportal-api/internal/models"
	"github.com/sention-aktivitus/klientportal-api/internal/storage"
)

type ClientHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
	queue storage.DeletionQueue
}

func NewClientHandler(db *gorm.DB, audit *audit.Dispatcher, queue storage.DeletionQueue) *ClientHandler {
	return &ClientHandler{db: db, audit: audit, queue: queue}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateClientRequest struct {
	Name           string `json:"name" binding:"required"`
	PersonalNumber string `json:"personal_number"`
	StreetAddress  string `json:"street_address"`
	PostalCode     string `json:"postal_code"`
	City           string `json:"city"`
	StartDate      string `json:"start_date"`
	Clinic         string `json:"clinic"`

	InterventionStatus string `json:"intervention_status"`
	Comments           string `json:"comments"`

	NextDoctorAppointment string `json:"next_doctor_appointment"`
	DoctorName            string `json:"doctor_name"`
	DoctorDetails         string `json:"doctor_details"`

	NextShortContact    string `json:"next_short_contact"`
	ShortContactPerson  string `json:"short_contact_person"`
	ShortContactDetails string `json:"short_contact_details"`

	NextLongConversation    string `json:"next_long_conversation"`
	LongConversationPerson  string `json:"long_conversation_person"`
	LongConversationDetails string `json:"long_conversation_details"`

	NextTest    string `json:"next_test"`
	TestPerson  string `json:"test_person"`
	TestDetails string `json:"test_details"`

	NextMeeting    string `json:"next_meeting"`
	MeetingPersons string `json:"meeting_persons"`
	MeetingDetails string `json:"meeting_details"`
}

// UpdateClientRequest carries only the fields the caller wants changed;
// nil pointers leave the stored value alone (partial merge, never a full
// overwrite).
type UpdateClientRequest struct {
	Name           *string `json:"name"`
	PersonalNumber *string `json:"personal_number"`
	StreetAddress  *string `json:"street_address"`
	PostalCode     *string `json:"postal_code"`
	City           *string `json:"city"`
	StartDate      *string `json:"start_date"`
	Clinic         *string `json:"clinic"`

	InterventionStatus *string `json:"intervention_status"`
	Comments           *string `json:"comments"`

	NextDoctorAppointment *string `json:"next_doctor_appointment"`
	DoctorName            *string `json:"doctor_name"`
	DoctorDetails         *string `json:"doctor_details"`

	NextShortContact    *string `json:"next_short_contact"`
	ShortContactPerson  *string `json:"short_contact_person"`
	ShortContactDetails *string `json:"short_contact_details"`

	NextLongConversation    *string `json:"next_long_conversation"`
	LongConversationPerson  *string `json:"long_conversation_person"`
	LongConversationDetails *string `json:"long_conversation_details"`

	NextTest    *string `json:"next_test"`
	TestPerson  *string `json:"test_person"`
	TestDetails *string `json:"test_details"`

	NextMeeting    *string `json:"next_meeting"`
	MeetingPersons *string `json:"meeting_persons"`
	MeetingDetails *string `json:"meeting_details"`
}

type UpdateAppointmentRequest struct {
	Date    string `json:"date"`
	Person  string `json:"person"`
	Details string `json:"details"`
}

type DeleteClientRequest struct {
	Password string `json:"password" binding:"required"`
}

// ======================================================
// LIST / GET
// ======================================================

func (h *ClientHandler) List(c *gin.Context) {
	var clients []models.Client
	if err := h.db.WithContext(c.Request.Context()).
		Order("created_at DESC").
		Find(&clients).Error; err != nil {

		httperr.Internal(c, "failed_to_list_clients", "Could not fetch clients.")
		return
	}

	items := make([]dto.ClientListItemDTO, 0, len(clients))
	for i := range clients {
		items = append(items, dto.ClientListItemDTO{
			Client:          clients[i],
			NextAppointment: appointment.NextForClient(&clients[i]),
		})
	}

	httpresp.List(c, items)
}

func (h *ClientHandler) Get(c *gin.Context) {
	id := c.Param("id")

	var client models.Client
	if err := h.db.WithContext(c.Request.Context()).
		First(&client, "id = ?", id).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "client_not_found", "Client not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_client", "Could not fetch the client.")
		return
	}

	c.JSON(http.StatusOK, client)
}

// ======================================================
// CREATE
// ======================================================

func (h *ClientHandler) Create(c *gin.Context) {
	var req CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	status := req.InterventionStatus
	if status == "" {
		status = models.StatusPlanned
	}
	if !models.IsValidInterventionStatus(status) {
		httperr.BadRequest(c, "invalid_status", "Intervention status must be Planned, Completed or Canceled.")
		return
	}

	for _, d := range []string{
		req.StartDate,
		req.NextDoctorAppointment, req.NextShortContact,
		req.NextLongConversation, req.NextTest, req.NextMeeting,
	} {
		if err := validDateField(d); err != nil {
			httperr.BadRequest(c, "invalid_date", err.Error())
			return
		}
	}

	client := models.Client{
		ID:                 uuid.NewString(),
		Name:               req.Name,
		PersonalNumber:     req.PersonalNumber,
		StreetAddress:      req.StreetAddress,
		PostalCode:         req.PostalCode,
		City:               req.City,
		StartDate:          req.StartDate,
		Clinic:             req.Clinic,
		InterventionStatus: status,
		Comments:           req.Comments,

		NextDoctorAppointment: req.NextDoctorAppointment,
		DoctorName:            req.DoctorName,
		DoctorDetails:         req.DoctorDetails,

		NextShortContact:    req.NextShortContact,
		ShortContactPerson:  req.ShortContactPerson,
		ShortContactDetails: req.ShortContactDetails,

		NextLongConversation:    req.NextLongConversation,
		LongConversationPerson:  req.LongConversationPerson,
		LongConversationDetails: req.LongConversationDetails,

		NextTest:    req.NextTest,
		TestPerson:  req.TestPerson,
		TestDetails: req.TestDetails,

		NextMeeting:    req.NextMeeting,
		MeetingPersons: req.MeetingPersons,
		MeetingDetails: req.MeetingDetails,
	}

	if err := h.db.WithContext(c.Request.Context()).Create(&client).Error; err != nil {
		httperr.Internal(c, "failed_to_create_client", "Could not create the client.")
		return
	}

	userID := c.MustGet(middleware.ContextUserID).(string)
	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "client_created",
		Entity:   "client",
		EntityID: &client.ID,
	})

	c.JSON(http.StatusCreated, client)
}

// ======================================================
// UPDATE (partial merge)
// ======================================================

func (h *ClientHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var client models.Client
	if err := h.db.WithContext(c.Request.Context()).
		First(&client, "id = ?", id).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "client_not_found", "Client not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_client", "Could not fetch the client.")
		return
	}

	var req UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	if req.InterventionStatus != nil && !models.IsValidInterventionStatus(*req.InterventionStatus) {
		httperr.BadRequest(c, "invalid_status", "Intervention status must be Planned, Completed or Canceled.")
		return
	}

	for _, d := range []*string{
		req.StartDate,
		req.NextDoctorAppointment, req.NextShortContact,
		req.NextLongConversation, req.NextTest, req.NextMeeting,
	} {
		if d == nil {
			continue
		}
		if err := validDateField(*d); err != nil {
			httperr.BadRequest(c, "invalid_date", err.Error())
			return
		}
	}

	apply := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}

	if req.Name != nil {
		if *req.Name == "" {
			httperr.BadRequest(c, "invalid_name", "Name cannot be empty.")
			return
		}
		client.Name = *req.Name
	}
	apply(&client.PersonalNumber, req.PersonalNumber)
	apply(&client.StreetAddress, req.StreetAddress)
	apply(&client.PostalCode, req.PostalCode)
	apply(&client.City, req.City)
	apply(&client.StartDate, req.StartDate)
	apply(&client.Clinic, req.Clinic)
	apply(&client.InterventionStatus, req.InterventionStatus)
	apply(&client.Comments, req.Comments)

	apply(&client.NextDoctorAppointment, req.NextDoctorAppointment)
	apply(&client.DoctorName, req.DoctorName)
	apply(&client.DoctorDetails, req.DoctorDetails)

	apply(&client.NextShortContact, req.NextShortContact)
	apply(&client.ShortContactPerson, req.ShortContactPerson)
	apply(&client.ShortContactDetails, req.ShortContactDetails)

	apply(&client.NextLongConversation, req.NextLongConversation)
	apply(&client.LongConversationPerson, req.LongConversationPerson)
	apply(&client.LongConversationDetails, req.LongConversationDetails)

	apply(&client.NextTest, req.NextTest)
	apply(&client.TestPerson, req.TestPerson)
	apply(&client.TestDetails, req.TestDetails)

	apply(&client.NextMeeting, req.NextMeeting)
	apply(&client.MeetingPersons, req.MeetingPersons)
	apply(&client.MeetingDetails, req.MeetingDetails)

	if err := h.db.WithContext(c.Request.Context()).Save(&client).Error; err != nil {
		httperr.Internal(c, "failed_to_update_client", "Could not save the client.")
		return
	}

	userID := c.MustGet(middleware.ContextUserID).(string)
	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "client_updated",
		Entity:   "client",
		EntityID: &client.ID,
	})

	c.JSON(http.StatusOK, client)
}

// ======================================================
// UPDATE ONE APPOINTMENT KIND
// ======================================================

// UpdateAppointment patches exactly one contact type's date, person and
// details; the other four kinds are untouched by design.
func (h *ClientHandler) UpdateAppointment(c *gin.Context) {
	id := c.Param("id")

	kind, ok := appointment.ParseKind(c.Param("kind"))
	if !ok {
		httperr.BadRequest(c, "invalid_appointment_kind", "Unknown appointment kind.")
		return
	}

	var req UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	if err := validDateField(req.Date); err != nil {
		httperr.BadRequest(c, "invalid_date", err.Error())
		return
	}

	var client models.Client
	if err := h.db.WithContext(c.Request.Context()).
		First(&client, "id = ?", id).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "client_not_found", "Client not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_client", "Could not fetch the client.")
		return
	}

	appointment.SetFields(&client, kind, req.Date, req.Person, req.Details)

	if err := h.db.WithContext(c.Request.Context()).Save(&client).Error; err != nil {
		httperr.Internal(c, "failed_to_update_client", "Could not save the appointment.")
		return
	}

	userID := c.MustGet(middleware.ContextUserID).(string)
	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "appointment_updated",
		Entity:   "client",
		EntityID: &client.ID,
		Metadata: map[string]any{"kind": kind, "date": req.Date},
	})

	c.JSON(http.StatusOK, client)
}

// ======================================================
// DELETE (password-confirmed)
// ======================================================

func (h *ClientHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	user, ok := currentUser(c, h.db)
	if !ok {
		return
	}

	var req DeleteClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "password_required", "Deleting a client requires your account password.")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		httperr.Forbidden(c, "reauthentication_failed", "Wrong password; the client was not deleted.")
		return
	}

	var client models.Client
	if err := h.db.WithContext(c.Request.Context()).
		First(&client, "id = ?", id).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "client_not_found", "Client not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_client", "Could not fetch the client.")
		return
	}

	ctx := c.Request.Context()

	// The FK cascade is about to remove the document rows, and with them
	// the only reference to each blob's key. Snapshot the keys first so
	// the reaper can reclaim the blobs afterwards.
	var docs []models.Document
	if err := h.db.WithContext(ctx).
		Where("client_id = ?", client.ID).
		Find(&docs).Error; err != nil {

		httperr.Internal(c, "failed_to_delete_client", "Could not delete the client.")
		return
	}

	// Notes, links and document metadata go with the client via FK
	// cascade.
	if err := h.db.WithContext(ctx).Delete(&client).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_client", "Could not delete the client.")
		return
	}

	parkDocumentBlobs(ctx, h.queue, docs)

	h.audit.Dispatch(audit.Event{
		UserID:   &user.ID,
		Action:   "client_deleted",
		Entity:   "client",
		EntityID: &client.ID,
	})

	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
