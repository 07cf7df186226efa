package stub

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync/atomic"

	"github.com/gin-gonic/gin"
)

// Server is a small JSON API used to exercise the executor over a real
// connection.
type Server struct {
	*httptest.Server
	hits atomic.Int64
}

type Echo struct {
	Method      string `json:"method"`
	ContentType string `json:"contentType"`
	Body        string `json:"body"`
}

func New() *Server {
	gin.SetMode(gin.TestMode)

	server := &Server{}

	router := gin.New()
	router.Use(func(c *gin.Context) {
		server.hits.Add(1)
		c.Next()
	})

	router.GET("/items/:id", func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))

		if err != nil || id <= 0 {
			c.JSON(http.StatusNotFound, gin.H{"message": "not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"id": id})
	})

	router.Any("/echo", func(c *gin.Context) {
		body, _ := io.ReadAll(c.Request.Body)

		c.JSON(http.StatusOK, Echo{
			Method:      c.Request.Method,
			ContentType: c.GetHeader("Content-Type"),
			Body:        string(body),
		})
	})

	router.GET("/html", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html", []byte("<html></html>"))
	})

	router.DELETE("/items/:id", func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	server.Server = httptest.NewServer(router)

	return server
}

func (server *Server) Hits() int64 {
	return server.hits.Load()
}
