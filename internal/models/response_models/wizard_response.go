package response_models

import "skinai/internal/wizard"

// WizardView is what a client needs to render the current screen.
type WizardView struct {
	SessionID   string         `json:"session_id"`
	CurrentStep wizard.Step    `json:"current_step"`
	Screen      wizard.Screen  `json:"screen"`
	Answers     wizard.Answers `json:"answers"`
	Applied     bool           `json:"applied"`
}
