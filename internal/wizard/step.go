package wizard

import (
	"fmt"
	"strings"
)

// Step identifies one screen of the assessment flow.
type Step int

const (
	Landing Step = iota
	SkinTypeAnalysis
	MainMenu
	RoutineAnalysis
	AllergyCheck
	ConditionAnalysis
	BrandPick
	Recommendation

	stepCount = int(Recommendation) + 1
)

var stepNames = [stepCount]string{
	Landing:           "LANDING",
	SkinTypeAnalysis:  "SKIN_TYPE_ANALYSIS",
	MainMenu:          "MAIN_MENU",
	RoutineAnalysis:   "ROUTINE_ANALYSIS",
	AllergyCheck:      "ALLERGY_CHECK",
	ConditionAnalysis: "CONDITION_ANALYSIS",
	BrandPick:         "BRAND_PICK",
	Recommendation:    "RECOMMENDATION",
}

// Steps returns every step in declaration order.
func Steps() []Step {
	steps := make([]Step, stepCount)
	for i := range steps {
		steps[i] = Step(i)
	}
	return steps
}

func (s Step) Valid() bool {
	return s >= Landing && s <= Recommendation
}

func (s Step) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Step(%d)", int(s))
	}
	return stepNames[s]
}

// ParseStep accepts the upper-case step name, case-insensitively.
func ParseStep(name string) (Step, error) {
	name = strings.ToUpper(strings.TrimSpace(name))
	for i, n := range stepNames {
		if n == name {
			return Step(i), nil
		}
	}
	return Landing, fmt.Errorf("unknown step %q", name)
}

func (s Step) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("invalid step %d", int(s))
	}
	return []byte(stepNames[s]), nil
}

func (s *Step) UnmarshalText(text []byte) error {
	step, err := ParseStep(string(text))
	if err != nil {
		return err
	}
	*s = step
	return nil
}

// Branch is the option tag chosen on the main menu.
type Branch string

const (
	BranchRoutine   Branch = "routine"
	BranchAllergy   Branch = "allergy"
	BranchCondition Branch = "condition"
)

var branchTargets = map[Branch]Step{
	BranchRoutine:   RoutineAnalysis,
	BranchAllergy:   AllergyCheck,
	BranchCondition: ConditionAnalysis,
}

// Branches returns the main menu options in display order.
func Branches() []Branch {
	return []Branch{BranchRoutine, BranchAllergy, BranchCondition}
}
