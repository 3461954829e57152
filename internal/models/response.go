package models

import "github.com/gin-gonic/gin"

// ErrorResponse - стандартное тело ответа об ошибке.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// SendJSONError прерывает обработку запроса и отправляет {success:false, error}.
func SendJSONError(c *gin.Context, message string, statusCode int) {
	c.AbortWithStatusJSON(statusCode, ErrorResponse{Success: false, Error: message})
}

// SendJSONResponse отправляет успешный ответ. Если data == nil, тело не пишется.
func SendJSONResponse(c *gin.Context, data interface{}, statusCode int) {
	if data == nil {
		c.Status(statusCode)
		return
	}
	c.JSON(statusCode, data)
}
