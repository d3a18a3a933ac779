package models

// LoginRequest is the JSON body of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest is the JSON body of POST /api/auth/register.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     Role   `json:"role"`
}

// AuthResponse is the success body of both auth endpoints.
type AuthResponse struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

// ErrorResponse is the failure body of both auth endpoints, sent with a
// non-2xx status.
type ErrorResponse struct {
	Message string `json:"message"`
}

// Prediction is the inference verdict inside a PredictionResponse. Label is
// the raw model label ("Fractured", "Normal", "Pneumonia", "Tuberculosis");
// the client maps it to a Disease through a fixed lexicon.
type Prediction struct {
	Label      string  `json:"label"`
	Confidence float64 `json:"confidence"`
	IsNormal   bool    `json:"is_normal"`
}

// PredictionResponse is the JSON body returned by POST /predict.
// VisualAnalysis, when present, is a base64-encoded JPEG contour overlay.
type PredictionResponse struct {
	Prediction     Prediction `json:"prediction"`
	VisualAnalysis string     `json:"visual_analysis,omitempty"`
}
