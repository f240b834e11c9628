package response

import (
	"Clipsight/internal/api/dto"
	"Clipsight/internal/pkg/tiktok"
	"Clipsight/internal/service"
	"errors"
	log "log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
)

const (
	Ok                  = 200
	BadRequest          = 400
	Unauthorized        = 401
	Forbidden           = 403
	NotFound            = 404
	InternalServerError = 500
)

// Success 成功返回封装
func Success(ctx *gin.Context, data interface{}) {
	ctx.JSON(http.StatusOK, dto.Response{
		Code:    Ok,
		Message: "success",
		Data:    data,
	})
}

// Fail 失败返回封装
func Fail(c *gin.Context, businessCode int, message string) {
	c.JSON(http.StatusOK, dto.Response{
		Code:    businessCode,
		Message: message,
		Data:    nil,
	})
}

// Error 处理错误
func Error(c *gin.Context, err error) {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		Fail(c, BadRequest, "参数错误")
		return
	}

	var unmarshalTypeError *json.UnmarshalTypeError
	if errors.As(err, &unmarshalTypeError) {
		Fail(c, BadRequest, "Json错误")
		return
	}

	// 上游错误带着 TikTok 自己的描述透出，没有描述时各类型有兜底文案
	var authErr *tiktok.AuthError
	if errors.As(err, &authErr) {
		log.Error("tiktok auth error", "err", err)
		Fail(c, InternalServerError, authErr.Error())
		return
	}
	var transportErr *tiktok.TransportError
	if errors.As(err, &transportErr) {
		log.Error("tiktok transport error", "err", err)
		Fail(c, InternalServerError, transportErr.Error())
		return
	}
	var dataErr *tiktok.DataError
	if errors.As(err, &dataErr) {
		log.Error("tiktok data error", "err", err)
		Fail(c, InternalServerError, dataErr.Error())
		return
	}

	code, ok := service.ErrorMap[err]
	if !ok {
		code = InternalServerError
		log.Error("Error", "err", err)
	}
	Fail(c, code, err.Error())
}
