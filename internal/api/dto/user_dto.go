package dto

// RegisterDTO 注册请求
type RegisterDTO struct {
	Username    string `json:"username" binding:"required" validate:"min=3,max=64"`
	Password    string `json:"password" binding:"required" validate:"min=8,max=64"`
	DisplayName string `json:"display_name"`
}

// CredentialDTO 登录请求
type CredentialDTO struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// ChangePasswordDTO 修改密码请求
type ChangePasswordDTO struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required" validate:"min=8,max=64"`
}

// UserDTO 用户信息返回
type UserDTO struct {
	ID          uint64 `json:"id"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
}
