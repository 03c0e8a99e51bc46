package model

// ChatRole tags a turn in the assistant conversation history.
type ChatRole string

const (
	RoleUser  ChatRole = "user"
	RoleModel ChatRole = "model"
)

// ChatTurn is one prior exchange passed back to the completion API.
type ChatTurn struct {
	Role ChatRole `json:"role" binding:"required,oneof=user model"`
	Text string   `json:"text" binding:"required"`
}
