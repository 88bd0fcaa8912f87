package middleware

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/namegame/api/internal/game"
)

// GenericErrorMessage is what clients see for any failure that is not part
// of the error taxonomy.
const GenericErrorMessage = "Something went wrong. Please try again later"

// ErrorHandler translates errors recorded on the context into the JSON error
// envelope {"status": <code>, "message": <text>}. Unknown sessions map to
// 404; everything else gets a generic 500 so internals never leak to the
// client.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last().Err

		status := http.StatusInternalServerError
		message := GenericErrorMessage

		var notFound *game.SessionNotFoundError
		if errors.As(err, &notFound) {
			status = http.StatusNotFound
			message = notFound.Error()
		} else {
			log.Printf("request failed: %v", err)
		}

		c.JSON(status, gin.H{"status": status, "message": message})
	}
}
