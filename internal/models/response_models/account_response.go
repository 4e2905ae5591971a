package response_models

type AccountLoginResponse struct {
	Token     string `json:"token"`
	SessionID string `json:"session_id"`
	ExpiresAt int64  `json:"expires_at"`
}

type AccountResponse struct {
	ID        string   `json:"id"`
	Username  string   `json:"username"`
	Name      string   `json:"name"`
	Age       int      `json:"age"`
	Gender    string   `json:"gender"`
	Location  string   `json:"location"`
	SkinTone  string   `json:"skin_tone"`
	Allergies []string `json:"allergies"`
	CreatedAt string   `json:"created_at"`
}
