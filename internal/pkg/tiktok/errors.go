package tiktok

// AuthError token 交换 / 刷新被上游拒绝或返回缺字段
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string {
	if e.Message == "" {
		return "tiktok auth request rejected"
	}
	return e.Message
}

// TransportError 网络或超时层面的失败
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return "tiktok " + e.Op + " transport failed: " + e.Err.Error()
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// DataError 上游返回成功但缺少预期数据
type DataError struct {
	Message string
}

func (e *DataError) Error() string {
	if e.Message == "" {
		return "tiktok response missing expected data"
	}
	return e.Message
}
