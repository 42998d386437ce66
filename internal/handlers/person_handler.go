package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"splitledger/internal/services"
)

// PersonHandler handles person-related requests.
type PersonHandler struct {
	personService services.PersonServicer
	auditService  services.AuditServicer
}

// NewPersonHandler creates a new PersonHandler.
func NewPersonHandler(personService services.PersonServicer, auditService services.AuditServicer) *PersonHandler {
	return &PersonHandler{personService: personService, auditService: auditService}
}

// PersonRequest is the payload for creating or replacing a person. Every
// field is sent on update; omitted optional fields are cleared.
type PersonRequest struct {
	Name        string  `json:"name" binding:"required,max=200"`
	Email       *string `json:"email" binding:"omitempty,email"`
	Phone       *string `json:"phone" binding:"omitempty,max=50"`
	AvatarColor *string `json:"avatar_color" binding:"omitempty,hex_color"`
}

func (r PersonRequest) input() services.PersonInput {
	return services.PersonInput{
		Name:        r.Name,
		Email:       r.Email,
		Phone:       r.Phone,
		AvatarColor: r.AvatarColor,
	}
}

// ListPeople returns every person.
// @Summary     List people
// @Tags        people
// @Produce     json
// @Success     200 {array}  models.Person
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /people [get]
func (h *PersonHandler) ListPeople(c *gin.Context) {
	people, err := h.personService.ListPeople(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, people)
}

// GetPerson returns a single person.
// @Summary     Get a person
// @Tags        people
// @Produce     json
// @Param       id path int true "Person ID"
// @Success     200 {object} models.Person
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     404 {object} ErrorResponse "Person not found"
// @Router      /people/{id} [get]
func (h *PersonHandler) GetPerson(c *gin.Context) {
	personID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	person, err := h.personService.GetPerson(c.Request.Context(), personID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, person)
}

// CreatePerson handles the creation of a new person
// @Summary     Create a person
// @Tags        people
// @Accept      json
// @Produce     json
// @Param       request body PersonRequest true "Person details"
// @Success     201 {object} models.Person "Person created"
// @Failure     422 {object} ErrorResponse "Malformed body"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /people [post]
func (h *PersonHandler) CreatePerson(c *gin.Context) {
	var req PersonRequest
	if err := bindJSON(c, &req); err != nil {
		respondWithError(c, err)
		return
	}

	person, err := h.personService.CreatePerson(c.Request.Context(), req.input())
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log("CREATE_PERSON", "person", person.ID, c.ClientIP(),
		map[string]interface{}{"name": person.Name})

	c.JSON(http.StatusCreated, person)
}

// UpdatePerson replaces a person's details.
// @Summary     Replace a person
// @Description Overwrites every field of the person. There is no partial update.
// @Tags        people
// @Accept      json
// @Produce     json
// @Param       id      path int           true "Person ID"
// @Param       request body PersonRequest true "Person details"
// @Success     200 {object} models.Person
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     404 {object} ErrorResponse "Person not found"
// @Failure     422 {object} ErrorResponse "Malformed body"
// @Router      /people/{id} [put]
func (h *PersonHandler) UpdatePerson(c *gin.Context) {
	personID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req PersonRequest
	if err := bindJSON(c, &req); err != nil {
		respondWithError(c, err)
		return
	}

	person, err := h.personService.UpdatePerson(c.Request.Context(), personID, req.input())
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log("UPDATE_PERSON", "person", person.ID, c.ClientIP(),
		map[string]interface{}{"name": person.Name})

	c.JSON(http.StatusOK, person)
}

// DeletePerson removes a person no expense refers to.
// @Summary     Delete a person
// @Tags        people
// @Param       id path int true "Person ID"
// @Success     204 "Person deleted"
// @Failure     400 {object} ErrorResponse "Person is used in one or more expenses"
// @Failure     404 {object} ErrorResponse "Person not found"
// @Router      /people/{id} [delete]
func (h *PersonHandler) DeletePerson(c *gin.Context) {
	personID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.personService.DeletePerson(c.Request.Context(), personID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log("DELETE_PERSON", "person", personID, c.ClientIP(), nil)

	c.Status(http.StatusNoContent)
}
