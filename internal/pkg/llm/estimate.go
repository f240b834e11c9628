package llm

import (
	"Clipsight/internal/api/config"
	"context"
	"errors"
	log "log/slog"
	"strings"

	"github.com/tmc/langchaingo/llms"
)

const (
	ModeCaption = "caption"
	ModeMessage = "message"
)

// 按模式选系统提示词，默认走内容教练
func systemPrompt(mode string) string {
	switch mode {
	case ModeCaption:
		return "You write concise, punchy TikTok captions. Output only the caption with up to three relevant hashtags."
	case ModeMessage:
		return "You write clear, friendly replies for a content creator's audience. Keep tone professional, concise, and easy to scan."
	default:
		return "You are an expert short-video content coach. Draft practical hooks, structure suggestions, and posting advice using clean formatting."
	}
}

// Estimate 代理一次文本生成请求，薄转发，不做重试
func Estimate(ctx context.Context, prompt string, mode string) (string, error) {
	if err := TextSem.Acquire(ctx, 1); err != nil {
		return "", err
	}
	defer TextSem.Release(1)

	messages := []llms.MessageContent{
		{
			Role: llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{
				llms.TextPart(systemPrompt(mode)),
			},
		},
		{
			Role: llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.TextPart("Mode: " + mode + "\n" + prompt),
			},
		},
	}

	log.Info("正在请求AI大模型")
	resp, err := llmClient.GenerateContent(ctx, messages,
		llms.WithModel(config.Cfg.LLM.TextModel),
		llms.WithTemperature(0.7),
	)
	if err != nil {
		log.Error("AI大模型请求失败", "err", err)
		return "", err
	}

	if len(resp.Choices) == 0 {
		return "", errors.New("empty model response")
	}
	return strings.TrimSpace(resp.Choices[0].Content), nil
}
