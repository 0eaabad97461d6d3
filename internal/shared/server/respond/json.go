package respond

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Envelope is the success body: a human readable message plus optional data.
type Envelope struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// JSON writes a JSON response with the given status.
func JSON(c *gin.Context, status int, payload interface{}) {
	c.JSON(status, payload)
}

// Message writes an envelope with message and data.
func Message(c *gin.Context, status int, message string, data interface{}) {
	JSON(c, status, Envelope{Message: message, Data: data})
}

// OK writes a 200 envelope.
func OK(c *gin.Context, message string, data interface{}) {
	Message(c, http.StatusOK, message, data)
}

// Created writes a 201 envelope.
func Created(c *gin.Context, message string, data interface{}) {
	Message(c, http.StatusCreated, message, data)
}
