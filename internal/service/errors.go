package service

import (
	"errors"
)

const (
	BadRequest          = 400
	Unauthorized        = 401
	NotFound            = 404
	InternalServerError = 500
)

var (
	ErrParamInvalid       = errors.New("参数错误")
	ErrUserNotFound       = errors.New("用户不存在")
	ErrUserUsernameExist  = errors.New("用户名已存在")
	ErrPasswordIncorrect  = errors.New("密码错误")
	ErrNotConnected       = errors.New("TikTok 账号未连接")
	ErrOAuthStateMismatch = errors.New("OAuth state 校验失败")
	ErrOAuthCodeMissing   = errors.New("缺少授权码")
	UnauthorizedError     = errors.New("权限不足")
	UnExpectedError       = errors.New("系统异常，请稍后重试")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:       BadRequest,
	ErrUserNotFound:       NotFound,
	ErrUserUsernameExist:  BadRequest,
	ErrPasswordIncorrect:  Unauthorized,
	ErrNotConnected:       Unauthorized,
	ErrOAuthStateMismatch: BadRequest,
	ErrOAuthCodeMissing:   BadRequest,
	UnauthorizedError:     Unauthorized,
	UnExpectedError:       InternalServerError,
}
