package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/LucasLevingston/AneisDePoder/internal/auth"
	"github.com/LucasLevingston/AneisDePoder/internal/database"
	"github.com/LucasLevingston/AneisDePoder/internal/errs"
	"github.com/LucasLevingston/AneisDePoder/internal/models"
	"github.com/LucasLevingston/AneisDePoder/internal/rules"

	"github.com/gin-gonic/gin"
)

// region --- DTOs ---

// CreateRingInput defines the structure for forging a new ring.
type CreateRingInput struct {
	Name     string `json:"name" binding:"required,max=16" example:"Narya"`
	Power    string `json:"power" binding:"required,max=1000" example:"Resistance to the weariness of time"`
	Bearer   string `json:"bearer" binding:"required,uuid" example:"6e6a460b-dd38-4cb5-b93d-103a7239149c"`
	ForgedBy string `json:"forgedBy" binding:"required" example:"Celebrimbor"`
	Image    string `json:"image" binding:"required,url" example:"https://example.com/narya.png"`
}

// UpdateRingInput defines the structure for updating a ring. All fields are
// optional; absent fields are left untouched. ForgedBy is immutable.
type UpdateRingInput struct {
	Name   *string `json:"name" binding:"omitempty,max=16"`
	Power  *string `json:"power" binding:"omitempty,max=1000"`
	Bearer *string `json:"bearer" binding:"omitempty,uuid"`
	Image  *string `json:"image" binding:"omitempty,url"`
}

// RingResponse defines the structure for a ring in API responses.
type RingResponse struct {
	ID        uint      `json:"id" example:"1"`
	Name      string    `json:"name" example:"Narya"`
	Power     string    `json:"power" example:"Resistance to the weariness of time"`
	Bearer    string    `json:"bearer" example:"6e6a460b-dd38-4cb5-b93d-103a7239149c"`
	ForgedBy  string    `json:"forgedBy" example:"Celebrimbor"`
	Image     string    `json:"image" example:"https://example.com/narya.png"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// MessageResponse represents an error or status message body.
type MessageResponse struct {
	Message string `json:"message" example:"Ring not found"`
}

func newRingResponse(ring models.Ring) RingResponse {
	return RingResponse{
		ID:        ring.ID,
		Name:      ring.Name,
		Power:     ring.Power,
		Bearer:    ring.Bearer,
		ForgedBy:  ring.ForgedBy,
		Image:     ring.Image,
		CreatedAt: ring.CreatedAt,
		UpdatedAt: ring.UpdatedAt,
	}
}

// endregion

// ringIDParam parses the :ringId path segment. An unparsable id behaves like
// a missing ring, matching how the store treats a non-numeric lookup.
func ringIDParam(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("ringId"), 10, 32)
	if err != nil {
		return 0, errs.NotFound("Ring not found")
	}
	return uint(id), nil
}

// GetRing godoc
// @Summary      Get ring by id
// @Description  Retrieves a single ring. No authentication required.
// @Tags         rings
// @Produce      json
// @Param        ringId  path      int  true  "Ring ID"
// @Success      200     {object}  RingResponse
// @Failure      404     {object}  MessageResponse
// @Router       /rings/{ringId} [get]
func GetRing(c *gin.Context) {
	ringID, err := ringIDParam(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	ring, err := rules.CheckRingExists(ringID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, newRingResponse(ring))
}

// GetAllRings godoc
// @Summary      Get all rings
// @Description  Retrieves every ring in the store.
// @Tags         rings
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   RingResponse
// @Failure      401  {object}  MessageResponse
// @Failure      403  {object}  MessageResponse
// @Failure      500  {object}  MessageResponse
// @Router       /rings [get]
func GetAllRings(c *gin.Context) {
	if _, err := auth.Authenticate(c); err != nil {
		_ = c.Error(err)
		return
	}

	var rings []models.Ring
	if err := database.DB.Find(&rings).Error; err != nil {
		_ = c.Error(err)
		return
	}

	response := make([]RingResponse, 0, len(rings))
	for _, ring := range rings {
		response = append(response, newRingResponse(ring))
	}
	c.JSON(http.StatusOK, response)
}

// CreateRing godoc
// @Summary      Create a new ring
// @Description  Forges a new ring after checking the acting user's class quota.
// @Tags         rings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body CreateRingInput true "Ring Info"
// @Success      201  {object}  RingResponse
// @Failure      400  {object}  MessageResponse "Invalid input"
// @Failure      401  {object}  MessageResponse
// @Failure      403  {object}  MessageResponse "Quota reached or unknown class"
// @Failure      404  {object}  MessageResponse "Acting user not found"
// @Failure      500  {object}  MessageResponse
// @Router       /rings [post]
func CreateRing(c *gin.Context) {
	var input CreateRingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		_ = c.Error(bindingError(err))
		return
	}

	identity, err := auth.Authenticate(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	// Quota is checked against the acting user, not the bearer named in the
	// body. Check-then-insert is not atomic; see rules.CheckQuota.
	if err := rules.CheckQuota(identity.UserID); err != nil {
		_ = c.Error(err)
		return
	}

	ring := models.Ring{
		Name:     input.Name,
		Power:    input.Power,
		Bearer:   input.Bearer,
		ForgedBy: input.ForgedBy,
		Image:    input.Image,
	}
	if err := database.DB.Create(&ring).Error; err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, newRingResponse(ring))
}

// UpdateRing godoc
// @Summary      Update ring
// @Description  Updates a ring's mutable fields. Only the bearer may update.
// @Tags         rings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        ringId  path      int              true  "Ring ID"
// @Param        input   body      UpdateRingInput  true  "Fields to update"
// @Success      200     {object}  RingResponse
// @Failure      400     {object}  MessageResponse "Invalid input"
// @Failure      401     {object}  MessageResponse
// @Failure      404     {object}  MessageResponse
// @Failure      500     {object}  MessageResponse
// @Router       /rings/{ringId} [put]
func UpdateRing(c *gin.Context) {
	ringID, err := ringIDParam(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	var input UpdateRingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		_ = c.Error(bindingError(err))
		return
	}

	// Existence is confirmed before credentials are looked at: a request for
	// a missing ring answers 404 even without an Authorization header.
	ring, err := rules.CheckRingExists(ringID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	identity, err := auth.Authenticate(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	if err := rules.CheckPermission(ring.Bearer, identity.UserID); err != nil {
		_ = c.Error(err)
		return
	}

	updates := map[string]interface{}{}
	if input.Name != nil {
		updates["name"] = *input.Name
	}
	if input.Power != nil {
		updates["power"] = *input.Power
	}
	if input.Bearer != nil {
		updates["bearer"] = *input.Bearer
	}
	if input.Image != nil {
		updates["image"] = *input.Image
	}

	if len(updates) > 0 {
		if err := database.DB.Model(&ring).Updates(updates).Error; err != nil {
			_ = c.Error(err)
			return
		}
	}

	// Re-read so the response reflects exactly what the store holds.
	updated, err := rules.CheckRingExists(ringID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, newRingResponse(updated))
}

// DeleteRing godoc
// @Summary      Delete ring
// @Description  Deletes a ring. Only the bearer may delete.
// @Tags         rings
// @Produce      json
// @Security     BearerAuth
// @Param        ringId  path  int  true  "Ring ID"
// @Success      204     "No Content"
// @Failure      401     {object}  MessageResponse
// @Failure      404     {object}  MessageResponse
// @Failure      500     {object}  MessageResponse
// @Router       /rings/{ringId} [delete]
func DeleteRing(c *gin.Context) {
	ringID, err := ringIDParam(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	ring, err := rules.CheckRingExists(ringID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	identity, err := auth.Authenticate(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	if err := rules.CheckPermission(ring.Bearer, identity.UserID); err != nil {
		_ = c.Error(err)
		return
	}

	if err := database.DB.Delete(&models.Ring{}, ring.ID).Error; err != nil {
		_ = c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}
