package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hamzakyb/hmz-solutions-sub001/internal/error/code"
)

// ErrorBody hata yanıtlarının ortak formatı
type ErrorBody struct {
	Error string `json:"error"`
}

// OK 200 durum koduyla verilen gövdeyi döndürür
func OK(c *gin.Context, data gin.H) {
	c.JSON(http.StatusOK, data)
}

// Fail hata koduna karşılık gelen durum kodu ve mesajla yanıt döndürür
func Fail(c *gin.Context, errorCode int) {
	c.JSON(code.GetStatus(errorCode), ErrorBody{
		Error: code.GetMessage(errorCode),
	})
}

// Unauthorized 401 yanıtı döndürür
func Unauthorized(c *gin.Context) {
	Fail(c, code.ErrUnauthorized)
}

// NotFound 404 yanıtı döndürür
func NotFound(c *gin.Context, errorCode int) {
	c.JSON(code.StatusNotFound, ErrorBody{
		Error: code.GetMessage(errorCode),
	})
}
