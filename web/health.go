package web

import (
	"net/http"

	"github.com/gin-gonic/gin"
	jsoniter "github.com/json-iterator/go"
)

const (
	healthOK          = "ok"
	healthUnavailable = "unavailable"

	logMsgHealthCheckFailed = "health check failed"
)

type healthBody struct {
	Status  string `json:"status"`
	Dialect string `json:"dialect"`
}

// health answers 200 when the database answers a trivial query, 503 otherwise.
func (s *Server) health(c *gin.Context) {
	body := healthBody{Status: healthOK, Dialect: s.store.Dialect()}
	status := http.StatusOK

	if _, err := s.store.CountGenres(c.Request.Context()); err != nil {
		s.logger.WarnContext(c.Request.Context(), logMsgHealthCheckFailed, logAttrError, err.Error())

		body.Status = healthUnavailable
		status = http.StatusServiceUnavailable
	}

	data, err := jsoniter.ConfigFastest.Marshal(body)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	c.Data(status, "application/json; charset=utf-8", data)
}
