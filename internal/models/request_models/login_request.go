package request_models

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type SignUpRequest struct {
	Username  string   `json:"username" binding:"required,min=3,max=80"`
	Password  string   `json:"password" binding:"required,min=6"`
	Name      string   `json:"name" binding:"max=100"`
	Age       int      `json:"age" binding:"gte=0,lte=120"`
	Gender    string   `json:"gender" binding:"max=10"`
	Location  string   `json:"location" binding:"max=100"`
	SkinTone  string   `json:"skin_tone" binding:"max=50"`
	Allergies []string `json:"allergies"`
}

type UpdateProfileRequest struct {
	Name      *string  `json:"name" binding:"omitempty,max=100"`
	Age       *int     `json:"age" binding:"omitempty,gte=0,lte=120"`
	Gender    *string  `json:"gender" binding:"omitempty,max=10"`
	Location  *string  `json:"location" binding:"omitempty,max=100"`
	SkinTone  *string  `json:"skin_tone" binding:"omitempty,max=50"`
	Allergies []string `json:"allergies"`
}
