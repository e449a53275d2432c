package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// ErrServerMessage is the generic catch-all shown to visitors. The site
// audience is Uzbek-speaking, so the fallback string is too.
const ErrServerMessage = "Serverda xatolik yuz berdi"

func Recovery(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Error().
					Interface("error", r).
					Str("request_id", c.Writer.Header().Get(requestIDHeader)).
					Msg("panic recovered")
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error": ErrServerMessage,
				})
			}
		}()
		c.Next()
	}
}
