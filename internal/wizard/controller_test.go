package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// walk drives a fresh controller to target along the given branch.
func walk(t *testing.T, target Step, branch Branch) *Controller {
	t.Helper()
	c := NewController()
	path := []func() (Step, bool){
		c.Start,
		func() (Step, bool) { return c.Advance(SkinTypeAnalysis, SkinTypeAnswer("Normal")) },
		func() (Step, bool) { return c.Advance(MainMenu, branch) },
		func() (Step, bool) { return c.Advance(c.Current(), nil) },
		func() (Step, bool) { return c.Advance(BrandPick, BrandAnswer("Plum")) },
	}
	for _, step := range path {
		if c.Current() == target {
			return c
		}
		_, ok := step()
		require.True(t, ok, "walk stalled on %v", c.Current())
	}
	require.Equal(t, target, c.Current())
	return c
}

func TestNewController(t *testing.T) {
	c := NewController()
	assert.Equal(t, Landing, c.Current())
	assert.Equal(t, Answers{Allergies: []string{}}, c.Answers())
}

func TestStart(t *testing.T) {
	c := NewController()
	step, ok := c.Start()
	assert.True(t, ok)
	assert.Equal(t, SkinTypeAnalysis, step)

	step, ok = c.Start()
	assert.False(t, ok, "start is only valid on landing")
	assert.Equal(t, SkinTypeAnalysis, step)
}

func TestAdvanceMainMenuBranches(t *testing.T) {
	tests := []struct {
		branch Branch
		want   Step
	}{
		{BranchRoutine, RoutineAnalysis},
		{BranchAllergy, AllergyCheck},
		{BranchCondition, ConditionAnalysis},
		{Branch("unknown"), MainMenu},
		{Branch(""), MainMenu},
	}
	for _, tt := range tests {
		t.Run(string(tt.branch), func(t *testing.T) {
			c := walk(t, MainMenu, BranchRoutine)
			step, _ := c.Advance(MainMenu, tt.branch)
			assert.Equal(t, tt.want, step)
			assert.Equal(t, tt.want, c.Current())
		})
	}
}

func TestAdvanceMainMenuWrongPayloadIsNoop(t *testing.T) {
	c := walk(t, MainMenu, BranchRoutine)
	step, ok := c.Advance(MainMenu, SkinTypeAnswer("routine"))
	assert.False(t, ok)
	assert.Equal(t, MainMenu, step)
}

func TestAdvanceSkinTypeWithoutPayload(t *testing.T) {
	c := walk(t, SkinTypeAnalysis, BranchRoutine)
	step, ok := c.Advance(SkinTypeAnalysis, nil)
	assert.True(t, ok)
	assert.Equal(t, MainMenu, step)
	assert.Equal(t, "", c.Answers().SkinType)
}

func TestAdvanceAllergiesReplace(t *testing.T) {
	c := walk(t, AllergyCheck, BranchAllergy)
	c.Advance(AllergyCheck, AllergyAnswer{"Paraben", "Fragrance", "Paraben", " "})
	assert.Equal(t, []string{"Paraben", "Fragrance"}, c.Answers().Allergies)

	c.GoBack(BrandPick)
	c.Advance(AllergyCheck, AllergyAnswer{"Sulfate"})
	assert.Equal(t, []string{"Sulfate"}, c.Answers().Allergies)

	c.GoBack(BrandPick)
	c.Advance(AllergyCheck, nil)
	assert.Empty(t, c.Answers().Allergies)
}

func TestAdvanceTerminalSteps(t *testing.T) {
	c := NewController()
	step, ok := c.Advance(Landing, nil)
	assert.False(t, ok)
	assert.Equal(t, Landing, step)

	c = walk(t, Recommendation, BranchRoutine)
	step, ok = c.Advance(Recommendation, nil)
	assert.False(t, ok)
	assert.Equal(t, Recommendation, step)
}

func TestGoBackTable(t *testing.T) {
	want := map[Step]Step{
		RoutineAnalysis:   MainMenu,
		SkinTypeAnalysis:  Landing,
		MainMenu:          SkinTypeAnalysis,
		AllergyCheck:      MainMenu,
		ConditionAnalysis: MainMenu,
		BrandPick:         AllergyCheck,
		Recommendation:    BrandPick,
		Landing:           Landing,
	}
	for _, s := range Steps() {
		assert.Equal(t, want[s], BackTarget(s), "back target of %v", s)
	}
}

func TestGoBackIndependentOfArrivalPath(t *testing.T) {
	for _, branch := range Branches() {
		t.Run(string(branch), func(t *testing.T) {
			c := walk(t, BrandPick, branch)
			step, ok := c.GoBack(BrandPick)
			assert.True(t, ok)
			assert.Equal(t, AllergyCheck, step)
		})
	}

	for _, branch := range Branches() {
		c := walk(t, MainMenu, branch)
		c.Advance(MainMenu, branch)
		step, _ := c.GoBack(c.Current())
		assert.Equal(t, MainMenu, step)
	}
}

func TestGoBackLandingIsIdempotent(t *testing.T) {
	c := NewController()
	for i := 0; i < 3; i++ {
		step, _ := c.GoBack(Landing)
		assert.Equal(t, Landing, step)
	}
	assert.Equal(t, Landing, c.Current())
}

func TestAnswersSurviveDetour(t *testing.T) {
	c := NewController()
	c.Start()
	c.Advance(SkinTypeAnalysis, SkinTypeAnswer("Oily"))
	c.Advance(MainMenu, BranchAllergy)
	c.Advance(AllergyCheck, AllergyAnswer{"Paraben", "Fragrance"})
	require.Equal(t, BrandPick, c.Current())

	c.GoBack(BrandPick)
	require.Equal(t, AllergyCheck, c.Current())
	c.GoBack(AllergyCheck)
	require.Equal(t, MainMenu, c.Current())

	c.Advance(MainMenu, BranchCondition)
	c.Advance(ConditionAnalysis, nil)
	require.Equal(t, BrandPick, c.Current())

	answers := c.Answers()
	assert.Equal(t, "Oily", answers.SkinType)
	assert.Equal(t, []string{"Paraben", "Fragrance"}, answers.Allergies)
}

func TestStaleEventsAreIgnored(t *testing.T) {
	c := NewController()
	c.Start()
	c.Advance(SkinTypeAnalysis, SkinTypeAnswer("Oily"))
	require.Equal(t, MainMenu, c.Current())

	step, ok := c.Advance(SkinTypeAnalysis, SkinTypeAnswer("Dry"))
	assert.False(t, ok)
	assert.Equal(t, MainMenu, step)
	assert.Equal(t, "Oily", c.Answers().SkinType)

	step, ok = c.GoBack(BrandPick)
	assert.False(t, ok)
	assert.Equal(t, MainMenu, step)
}

func TestEndToEnd(t *testing.T) {
	c := NewController()

	steps := []struct {
		run  func() (Step, bool)
		want Step
	}{
		{c.Start, SkinTypeAnalysis},
		{func() (Step, bool) { return c.Advance(SkinTypeAnalysis, SkinTypeAnswer("Combination")) }, MainMenu},
		{func() (Step, bool) { return c.Advance(MainMenu, BranchAllergy) }, AllergyCheck},
		{func() (Step, bool) { return c.Advance(AllergyCheck, AllergyAnswer{"Sulfate"}) }, BrandPick},
		{func() (Step, bool) { return c.Advance(BrandPick, BrandAnswer("Plum")) }, Recommendation},
	}
	for _, s := range steps {
		step, ok := s.run()
		require.True(t, ok)
		require.Equal(t, s.want, step)
	}

	assert.Equal(t, Answers{
		SkinType:  "Combination",
		Allergies: []string{"Sulfate"},
		Brand:     "Plum",
	}, c.Answers())
}

func TestAnswersSnapshotIsDetached(t *testing.T) {
	c := walk(t, AllergyCheck, BranchAllergy)
	c.Advance(AllergyCheck, AllergyAnswer{"Retinol"})

	snapshot := c.Answers()
	snapshot.Allergies[0] = "changed"
	assert.Equal(t, []string{"Retinol"}, c.Answers().Allergies)
}

func TestObserver(t *testing.T) {
	var events []Event
	c := NewController(WithObserver(func(ev Event) { events = append(events, ev) }))

	c.Start()
	c.Advance(Landing, nil)
	c.Advance(SkinTypeAnalysis, SkinTypeAnswer("Dry"))
	c.Advance(MainMenu, Branch("spa"))
	c.GoBack(MainMenu)

	require.Len(t, events, 5)
	assert.Equal(t, Event{Action: ActionStart, From: Landing, To: SkinTypeAnalysis, Applied: true}, events[0])
	assert.Equal(t, Event{Action: ActionAdvance, From: Landing, To: SkinTypeAnalysis, Reason: ReasonStale}, events[1])
	assert.Equal(t, Event{Action: ActionAdvance, From: SkinTypeAnalysis, To: MainMenu, Applied: true}, events[2])
	assert.Equal(t, Event{Action: ActionAdvance, From: MainMenu, To: MainMenu, Reason: ReasonUnknownBranch}, events[3])
	assert.Equal(t, Event{Action: ActionBack, From: MainMenu, To: SkinTypeAnalysis, Applied: true}, events[4])
}
