package wizard

import "fmt"

// ScreenKind discriminates the screen collaborators. Every kind shares the
// Callbacks shape; only BranchSelector uses OnSelectOption instead of OnNext.
type ScreenKind string

const (
	KindWelcome        ScreenKind = "welcome"
	KindQuestionnaire  ScreenKind = "questionnaire"
	KindBranchSelector ScreenKind = "branch_selector"
	KindUpload         ScreenKind = "upload"
	KindBrandSelector  ScreenKind = "brand_selector"
	KindSummary        ScreenKind = "summary"
)

// Screen describes the collaborator rendered for a step.
type Screen struct {
	Step     Step       `json:"step"`
	Kind     ScreenKind `json:"kind"`
	Title    string     `json:"title"`
	Options  []string   `json:"options,omitempty"`
	Produces string     `json:"produces,omitempty"`
	CanBack  bool       `json:"can_back"`
	BackTo   Step       `json:"back_to"`
}

// Callbacks are handed to a screen. They are bound to the step the screen was
// rendered for, so a callback that fires after the user moved on is stale.
type Callbacks struct {
	OnNext         func(Payload)
	OnBack         func()
	OnSelectOption func(Branch)
}

// Registry maps each step to its screen.
type Registry struct {
	screens map[Step]Screen
}

// NewRegistry builds the registry from the option catalog. It panics if a step
// has no screen, since the step set is closed.
func NewRegistry(catalog Catalog) *Registry {
	branches := make([]string, 0, len(Branches()))
	for _, b := range Branches() {
		branches = append(branches, string(b))
	}

	screens := map[Step]Screen{
		Landing:           {Kind: KindWelcome, Title: "Welcome to SkinAI"},
		SkinTypeAnalysis:  {Kind: KindQuestionnaire, Title: "What is your skin type?", Options: catalog.SkinTypes, Produces: "skin_type"},
		MainMenu:          {Kind: KindBranchSelector, Title: "What would you like to do?", Options: branches, Produces: "branch"},
		RoutineAnalysis:   {Kind: KindQuestionnaire, Title: "Skincare Routine Analysis"},
		AllergyCheck:      {Kind: KindUpload, Title: "Allergy & Skin Image Check", Options: catalog.Allergies, Produces: "allergies"},
		ConditionAnalysis: {Kind: KindUpload, Title: "Upload Image for Skin Analysis"},
		BrandPick:         {Kind: KindBrandSelector, Title: "Select Your Preferred Brand", Options: catalog.Brands, Produces: "brand"},
		Recommendation:    {Kind: KindSummary, Title: "Your Personalized Recommendations"},
	}

	for _, step := range Steps() {
		screen, ok := screens[step]
		if !ok {
			panic(fmt.Sprintf("wizard: no screen registered for %v", step))
		}
		screen.Step = step
		screen.BackTo = BackTarget(step)
		screen.CanBack = screen.BackTo != step
		screens[step] = screen
	}

	return &Registry{screens: screens}
}

func (r *Registry) Screen(step Step) Screen {
	screen, ok := r.screens[step]
	if !ok {
		panic(fmt.Sprintf("wizard: no screen registered for %v", step))
	}
	return screen
}

// Bind returns the callbacks for the screen currently shown by c.
func (r *Registry) Bind(c *Controller) Callbacks {
	step := c.Current()
	cb := Callbacks{
		OnBack: func() { c.GoBack(step) },
	}

	switch r.Screen(step).Kind {
	case KindWelcome:
		cb.OnNext = func(Payload) { c.Start() }
	case KindBranchSelector:
		cb.OnSelectOption = func(b Branch) { c.Advance(step, b) }
	default:
		cb.OnNext = func(p Payload) { c.Advance(step, p) }
	}
	return cb
}
