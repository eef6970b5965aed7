package httpgin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kirinyoku/gigbook/internal/service"
)

// @Summary  List all shows with venue and artist display fields
// @Success  200  {array}  domain.ShowDetail
// @Router   /shows [get]
func handleShowsBoard(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		board, err := svcs.Shows.Board(c.Request.Context())
		if err != nil {
			respondErr(c, err, "An error occurred. Shows could not be listed.")
			return
		}
		writeJSONWithCache(c, http.StatusOK, board, "public, max-age=15", true)
	}
}

// @Summary  Book a show linking an artist to a venue
// @Param    artist_id   formData  int     true  "Artist ID"
// @Param    venue_id    formData  int     true  "Venue ID"
// @Param    start_time  formData  string  true  "RFC 3339 timestamp"
// @Success  201  {object}  StatusResponse
// @Failure  400  {object}  StatusResponse
// @Router   /shows/create [post]
func handleCreateShow(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		var form ShowForm
		if err := c.ShouldBind(&form); err != nil {
			badRequest(c, err.Error())
			return
		}

		startTime, err := parseRFC3339(form.StartTime)
		if err != nil {
			badRequest(c, "start_time must be an RFC 3339 timestamp")
			return
		}

		id, err := svcs.Shows.Create(c.Request.Context(), form.ArtistID, form.VenueID, startTime)
		if err != nil {
			respondErr(c, err, "An error occurred. Show could not be listed.")
			return
		}
		success(c, http.StatusCreated, "Show was successfully listed!", id)
	}
}
