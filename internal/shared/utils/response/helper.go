package response

import "github.com/gin-gonic/gin"

// RespondJSON writes the standard envelope with the given HTTP code.
// The code is mirrored inside the body so clients logging only payloads
// still see it.
func RespondJSON(c *gin.Context, status string, code int, message string, data interface{}, errors interface{}) {
	c.JSON(code, StandardApiResponse{
		Status:     status,
		StatusCode: code,
		Message:    message,
		Data:       data,
		Errors:     errors,
	})
}
