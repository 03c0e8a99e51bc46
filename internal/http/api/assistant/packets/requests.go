package packets

import "github.com/noorhq/noor-server/internal/model"

// body for chat completion and streaming
type ChatRequest struct {
	Message string           `json:"message" binding:"required"`
	History []model.ChatTurn `json:"history" binding:"omitempty,dive"`
	// optional companion state (today's timings, hijri date) prepended
	// to the persona so answers can reference it
	Context string `json:"context"`
}

// body for the hadith search
type HadithRequest struct {
	Topic string `json:"topic" binding:"required"`
}

// body for the ayah explanation
type AyahRequest struct {
	SurahName  string `json:"surahName" binding:"required"`
	AyahNumber int    `json:"ayahNumber" binding:"required,min=1"`
	AyahText   string `json:"ayahText" binding:"required"`
}
