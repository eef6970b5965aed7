package httpgin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kirinyoku/gigbook/internal/service"
)

// @Summary  Artist weekly availability grouped Monday through Sunday
// @Param    id  path  int  true  "Artist ID"
// @Success  200  {object}  availability.SchedulePage
// @Failure  404  {object}  StatusResponse
// @Router   /artists/{id}/availability [get]
func handleArtistAvailability(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		artistID, ok := parseInt64Param(c, "id")
		if !ok {
			return
		}

		page, err := svcs.Availability.Schedule(c.Request.Context(), artistID)
		if err != nil {
			respondErr(c, err, "An error occurred. Availability could not be loaded.")
			return
		}
		c.JSON(http.StatusOK, page)
	}
}

// @Summary  Add a weekly availability window for an artist
// @Param    id           path      int     true  "Artist ID"
// @Param    day_of_week  formData  int     true  "0 = Monday .. 6 = Sunday"
// @Param    start_time   formData  string  true  "HH:MM"
// @Param    end_time     formData  string  true  "HH:MM"
// @Success  201  {object}  StatusResponse
// @Failure  400  {object}  StatusResponse
// @Router   /artists/{id}/availability/create [post]
func handleCreateAvailability(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		artistID, ok := parseInt64Param(c, "id")
		if !ok {
			return
		}

		var form AvailabilityForm
		if err := c.ShouldBind(&form); err != nil {
			badRequest(c, err.Error())
			return
		}

		w, err := svcs.Availability.Create(c.Request.Context(), artistID, form.DayOfWeek, form.StartTime, form.EndTime)
		if err != nil {
			respondErr(c, err, "An error occurred. Availability could not be added.")
			return
		}
		success(c, http.StatusCreated, "Availability added successfully.", w.ID)
	}
}

// @Summary  Remove an availability window owned by the artist
// @Param    id               path  int  true  "Artist ID"
// @Param    availability_id  path  int  true  "Availability ID"
// @Success  200  {object}  StatusResponse
// @Failure  403  {object}  StatusResponse
// @Failure  404  {object}  StatusResponse
// @Router   /artists/{id}/availability/{availability_id}/delete [post]
func handleDeleteAvailability(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		artistID, ok := parseInt64Param(c, "id")
		if !ok {
			return
		}
		availabilityID, ok := parseInt64Param(c, "availability_id")
		if !ok {
			return
		}

		if err := svcs.Availability.Delete(c.Request.Context(), artistID, availabilityID); err != nil {
			respondErr(c, err, "An error occurred. Availability could not be removed.")
			return
		}
		success(c, http.StatusOK, "Availability removed successfully.", availabilityID)
	}
}
