package dto

// EstimateDTO AI 文案生成请求
type EstimateDTO struct {
	Prompt string `json:"prompt" binding:"required"`
	Mode   string `json:"mode"`
}

// EstimateResultDTO AI 文案生成返回
type EstimateResultDTO struct {
	Text string `json:"text"`
}
