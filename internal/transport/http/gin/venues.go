package httpgin

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kirinyoku/gigbook/internal/service"
)

// @Summary  List venues grouped by city and state
// @Success  200  {array}  domain.CityGroup
// @Router   /venues [get]
func handleVenuesBoard(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		groups, err := svcs.Venues.Board(c.Request.Context())
		if err != nil {
			respondErr(c, err, "An error occurred. Venues could not be listed.")
			return
		}
		writeJSONWithCache(c, http.StatusOK, groups, "public, max-age=15", true)
	}
}

// @Summary  Search venues by name
// @Param    search_term  formData  string  false  "substring of the venue name"
// @Success  200  {object}  domain.SearchResult
// @Router   /venues/search [post]
func handleSearchVenues(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		var form SearchForm
		if err := c.ShouldBind(&form); err != nil {
			badRequest(c, err.Error())
			return
		}

		res, err := svcs.Venues.Search(c.Request.Context(), form.SearchTerm)
		if err != nil {
			respondErr(c, err, "An error occurred. Search failed.")
			return
		}
		c.JSON(http.StatusOK, res)
	}
}

// @Summary  Search venues by "Name, City, State"
// @Param    search_term  formData  string  false  "comma-separated segments, each optional"
// @Success  200  {object}  domain.SearchResult
// @Router   /venues/advanced-search [post]
func handleAdvancedSearchVenues(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		var form SearchForm
		if err := c.ShouldBind(&form); err != nil {
			badRequest(c, err.Error())
			return
		}

		res, err := svcs.Venues.AdvancedSearch(c.Request.Context(), form.SearchTerm)
		if err != nil {
			respondErr(c, err, "An error occurred. Search failed.")
			return
		}
		c.JSON(http.StatusOK, res)
	}
}

// @Summary  Venue detail page with past/upcoming shows
// @Param    id  path  int  true  "Venue ID"
// @Success  200  {object}  domain.VenuePage
// @Failure  404  {object}  StatusResponse
// @Router   /venues/{id} [get]
func handleGetVenue(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		venueID, ok := parseInt64Param(c, "id")
		if !ok {
			return
		}

		page, err := svcs.Venues.Get(c.Request.Context(), venueID)
		if err != nil {
			respondErr(c, err, "An error occurred. Venue could not be loaded.")
			return
		}
		writeJSONWithCache(c, http.StatusOK, page, "public, max-age=15", true)
	}
}

// @Summary  Create a venue
// @Param    name  formData  string  true  "venue name"
// @Success  201  {object}  StatusResponse
// @Failure  400  {object}  StatusResponse
// @Router   /venues/create [post]
func handleCreateVenue(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		var form VenueForm
		if err := c.ShouldBind(&form); err != nil {
			badRequest(c, err.Error())
			return
		}

		id, err := svcs.Venues.Create(c.Request.Context(), form.toDomain())
		if err != nil {
			respondErr(c, err, fmt.Sprintf("An error occurred. Venue %s could not be listed.", form.Name))
			return
		}
		success(c, http.StatusCreated, fmt.Sprintf("Venue %s was successfully listed!", form.Name), id)
	}
}

// @Summary  Fetch a venue record for the edit form
// @Param    id  path  int  true  "Venue ID"
// @Success  200  {object}  domain.Venue
// @Router   /venues/{id}/edit [get]
func handleEditVenueForm(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		venueID, ok := parseInt64Param(c, "id")
		if !ok {
			return
		}

		v, err := svcs.Venues.GetRecord(c.Request.Context(), venueID)
		if err != nil {
			respondErr(c, err, "An error occurred. Venue could not be loaded.")
			return
		}
		c.JSON(http.StatusOK, v)
	}
}

// @Summary  Update a venue
// @Param    id  path  int  true  "Venue ID"
// @Success  200  {object}  StatusResponse
// @Router   /venues/{id}/edit [post]
func handleEditVenue(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		venueID, ok := parseInt64Param(c, "id")
		if !ok {
			return
		}

		var form VenueForm
		if err := c.ShouldBind(&form); err != nil {
			badRequest(c, err.Error())
			return
		}

		if err := svcs.Venues.Update(c.Request.Context(), venueID, form.toDomain()); err != nil {
			respondErr(c, err, "An error occurred. Venue could not be updated.")
			return
		}
		success(c, http.StatusOK, "Venue was successfully updated!", venueID)
	}
}

// @Summary  Delete a venue and its shows
// @Param    id  path  int  true  "Venue ID"
// @Success  200  {object}  StatusResponse
// @Failure  404  {object}  StatusResponse
// @Router   /venues/{id} [delete]
func handleDeleteVenue(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		venueID, ok := parseInt64Param(c, "id")
		if !ok {
			return
		}

		if _, err := svcs.Venues.Delete(c.Request.Context(), venueID); err != nil {
			respondErr(c, err, fmt.Sprintf("An error occurred. Venue %d could not be deleted.", venueID))
			return
		}
		success(c, http.StatusOK, fmt.Sprintf("Venue %d was successfully deleted.", venueID), venueID)
	}
}
