package httpgin

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/kirinyoku/gigbook/internal/schedule"
	"github.com/kirinyoku/gigbook/internal/service/artists"
	"github.com/kirinyoku/gigbook/internal/service/availability"
	"github.com/kirinyoku/gigbook/internal/service/shows"
	"github.com/kirinyoku/gigbook/internal/service/venues"
)

func parseInt64Param(c *gin.Context, name string) (int64, bool) {
	s := c.Param(name)
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		badRequest(c, "invalid "+name)
		return 0, false
	}
	return v, true
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, StatusResponse{Status: "error", Message: msg})
}

func success(c *gin.Context, status int, msg string, id int64) {
	c.JSON(status, StatusResponse{Status: "success", Message: msg, ID: id})
}

// respondErr maps service errors to HTTP statuses. Anything unmapped is a
// persistence-level failure: the user gets fallback (a generic message) and
// the cause goes to the request log for operators.
func respondErr(c *gin.Context, err error, fallback string) {
	if err == nil {
		c.Status(http.StatusNoContent)
		return
	}

	fail := func(status int, msg string) {
		c.JSON(status, StatusResponse{Status: "error", Message: msg})
	}

	var verr *schedule.ValidationError
	if errors.As(err, &verr) {
		fail(http.StatusBadRequest, verr.Error())
		return
	}

	switch {
	// venues service
	case errors.Is(err, venues.ErrVenueNotFound):
		fail(http.StatusNotFound, "Venue not found.")
		return
	// artists service
	case errors.Is(err, artists.ErrArtistNotFound):
		fail(http.StatusNotFound, "Artist not found.")
		return
	// shows service
	case errors.Is(err, shows.ErrUnknownReference):
		fail(http.StatusBadRequest, "Artist or venue does not exist.")
		return
	// availability service
	case errors.Is(err, availability.ErrArtistNotFound):
		fail(http.StatusNotFound, "Artist not found.")
		return
	case errors.Is(err, availability.ErrWindowNotFound):
		fail(http.StatusNotFound, "Availability not found.")
		return
	case errors.Is(err, availability.ErrNotOwned):
		fail(http.StatusForbidden, "Invalid operation.")
		return
	}

	_ = c.Error(err)
	fail(http.StatusInternalServerError, fallback)
}
