package httpgin

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kirinyoku/gigbook/internal/service"
)

// @Summary  List artists ordered by name
// @Success  200  {array}  domain.NameRef
// @Router   /artists [get]
func handleArtistsList(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		refs, err := svcs.Artists.List(c.Request.Context())
		if err != nil {
			respondErr(c, err, "An error occurred. Artists could not be listed.")
			return
		}
		writeJSONWithCache(c, http.StatusOK, refs, "public, max-age=15", true)
	}
}

// @Summary  Search artists by name
// @Param    search_term  formData  string  false  "substring of the artist name"
// @Success  200  {object}  domain.SearchResult
// @Router   /artists/search [post]
func handleSearchArtists(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		var form SearchForm
		if err := c.ShouldBind(&form); err != nil {
			badRequest(c, err.Error())
			return
		}

		res, err := svcs.Artists.Search(c.Request.Context(), form.SearchTerm)
		if err != nil {
			respondErr(c, err, "An error occurred. Search failed.")
			return
		}
		c.JSON(http.StatusOK, res)
	}
}

// @Summary  Search artists by "Name, City, State"
// @Param    search_term  formData  string  false  "comma-separated segments, each optional"
// @Success  200  {object}  domain.SearchResult
// @Router   /artists/advanced-search [post]
func handleAdvancedSearchArtists(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		var form SearchForm
		if err := c.ShouldBind(&form); err != nil {
			badRequest(c, err.Error())
			return
		}

		res, err := svcs.Artists.AdvancedSearch(c.Request.Context(), form.SearchTerm)
		if err != nil {
			respondErr(c, err, "An error occurred. Search failed.")
			return
		}
		c.JSON(http.StatusOK, res)
	}
}

// @Summary  Artist detail page with past/upcoming shows
// @Param    id  path  int  true  "Artist ID"
// @Success  200  {object}  domain.ArtistPage
// @Failure  404  {object}  StatusResponse
// @Router   /artists/{id} [get]
func handleGetArtist(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		artistID, ok := parseInt64Param(c, "id")
		if !ok {
			return
		}

		page, err := svcs.Artists.Get(c.Request.Context(), artistID)
		if err != nil {
			respondErr(c, err, "An error occurred. Artist could not be loaded.")
			return
		}
		writeJSONWithCache(c, http.StatusOK, page, "public, max-age=15", true)
	}
}

// @Summary  Create an artist
// @Param    name  formData  string  true  "artist name"
// @Success  201  {object}  StatusResponse
// @Failure  400  {object}  StatusResponse
// @Router   /artists/create [post]
func handleCreateArtist(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		var form ArtistForm
		if err := c.ShouldBind(&form); err != nil {
			badRequest(c, err.Error())
			return
		}

		id, err := svcs.Artists.Create(c.Request.Context(), form.toDomain())
		if err != nil {
			respondErr(c, err, fmt.Sprintf("An error occurred. Artist %s could not be listed.", form.Name))
			return
		}
		success(c, http.StatusCreated, fmt.Sprintf("Artist %s was successfully listed!", form.Name), id)
	}
}

// @Summary  Fetch an artist record for the edit form
// @Param    id  path  int  true  "Artist ID"
// @Success  200  {object}  domain.Artist
// @Router   /artists/{id}/edit [get]
func handleEditArtistForm(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		artistID, ok := parseInt64Param(c, "id")
		if !ok {
			return
		}

		a, err := svcs.Artists.GetRecord(c.Request.Context(), artistID)
		if err != nil {
			respondErr(c, err, "An error occurred. Artist could not be loaded.")
			return
		}
		c.JSON(http.StatusOK, a)
	}
}

// @Summary  Update an artist
// @Param    id  path  int  true  "Artist ID"
// @Success  200  {object}  StatusResponse
// @Router   /artists/{id}/edit [post]
func handleEditArtist(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		artistID, ok := parseInt64Param(c, "id")
		if !ok {
			return
		}

		var form ArtistForm
		if err := c.ShouldBind(&form); err != nil {
			badRequest(c, err.Error())
			return
		}

		if err := svcs.Artists.Update(c.Request.Context(), artistID, form.toDomain()); err != nil {
			respondErr(c, err, "An error occurred. Artist could not be updated.")
			return
		}
		success(c, http.StatusOK, "Artist was successfully updated!", artistID)
	}
}

// @Summary  Delete an artist with its shows and availability
// @Param    id  path  int  true  "Artist ID"
// @Success  200  {object}  StatusResponse
// @Failure  404  {object}  StatusResponse
// @Router   /artists/{id} [delete]
func handleDeleteArtist(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		artistID, ok := parseInt64Param(c, "id")
		if !ok {
			return
		}

		if err := svcs.Artists.Delete(c.Request.Context(), artistID); err != nil {
			respondErr(c, err, fmt.Sprintf("An error occurred. Artist %d could not be deleted.", artistID))
			return
		}
		success(c, http.StatusOK, fmt.Sprintf("Artist %d was successfully deleted.", artistID), artistID)
	}
}
