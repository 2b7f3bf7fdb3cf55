package handlers

import (
	"net/http"
	"os"

	"foodreel/internal/utils"

	"github.com/gin-gonic/gin"
)

// fail writes the uniform error body. Clients branch on the status code;
// the message is for humans.
func fail(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"message": message})
}

// setAuthCookie attaches the session token as an httpOnly cookie. In
// production the cookie is secure and cross-site so the SPA on another
// origin can carry it.
func setAuthCookie(c *gin.Context, token string) {
	secure := os.Getenv("COOKIE_SECURE") == "true"
	if secure {
		c.SetSameSite(http.SameSiteNoneMode)
	} else {
		c.SetSameSite(http.SameSiteLaxMode)
	}
	c.SetCookie("token", token, int(utils.TokenTTL.Seconds()), "/", "", secure, true)
}

// clearAuthCookie removes the session cookie on logout.
func clearAuthCookie(c *gin.Context) {
	c.SetCookie("token", "", -1, "/", "", os.Getenv("COOKIE_SECURE") == "true", true)
}

// Pagination is the metadata block attached to paginated listings.
type Pagination struct {
	CurrentPage   int   `json:"currentPage"`
	TotalPages    int   `json:"totalPages"`
	TotalComments int64 `json:"totalComments"`
	HasNext       bool  `json:"hasNext"`
	HasPrev       bool  `json:"hasPrev"`
}

// paginate computes the metadata for a page over total rows.
func paginate(page, limit int, total int64) Pagination {
	totalPages := int((total + int64(limit) - 1) / int64(limit))
	if totalPages == 0 {
		totalPages = 1
	}
	return Pagination{
		CurrentPage:   page,
		TotalPages:    totalPages,
		TotalComments: total,
		HasNext:       page < totalPages,
		HasPrev:       page > 1,
	}
}
