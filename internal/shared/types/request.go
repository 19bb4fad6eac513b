package types

// ExecuteRequest represents a service execution request
type ExecuteRequest struct {
	ToolID    string                 `json:"tool_id" binding:"required"`
	Params    map[string]interface{} `json:"params" binding:"required"`
	RequestID *string                `json:"request_id,omitempty"`
}
