package wizard

import "fmt"

// Payload is what a screen hands to Advance when its primary action completes.
// The concrete type depends on the step: SkinTypeAnswer, Branch, AllergyAnswer,
// BrandAnswer, or nil for steps that produce nothing.
type Payload interface {
	isPayload()
}

type SkinTypeAnswer string

type AllergyAnswer []string

type BrandAnswer string

func (SkinTypeAnswer) isPayload() {}
func (AllergyAnswer) isPayload()  {}
func (BrandAnswer) isPayload()    {}
func (Branch) isPayload()         {}

// Action names the controller operation that produced an Event.
type Action string

const (
	ActionStart   Action = "start"
	ActionAdvance Action = "advance"
	ActionBack    Action = "back"
)

// IgnoreReason explains why an event left the controller untouched.
type IgnoreReason string

const (
	ReasonStale         IgnoreReason = "stale"
	ReasonUnknownBranch IgnoreReason = "unknown_branch"
	ReasonNoTransition  IgnoreReason = "no_transition"
)

// Event describes one processed call. Reason is empty when Applied is true.
type Event struct {
	Action  Action
	From    Step
	To      Step
	Applied bool
	Reason  IgnoreReason
}

// Observer is notified after every Start, Advance and GoBack.
type Observer func(Event)

// backTargets is the canonical "back" destination of every screen. It is not
// derived from history: BRAND_PICK returns to ALLERGY_CHECK whichever branch
// led to it.
var backTargets = map[Step]Step{
	RoutineAnalysis:   MainMenu,
	SkinTypeAnalysis:  Landing,
	MainMenu:          SkinTypeAnalysis,
	AllergyCheck:      MainMenu,
	ConditionAnalysis: MainMenu,
	BrandPick:         AllergyCheck,
	Recommendation:    BrandPick,
	Landing:           Landing,
}

// BackTarget returns the step shown when the user presses back on s.
func BackTarget(s Step) Step {
	to, ok := backTargets[s]
	if !ok {
		panic(fmt.Sprintf("wizard: no back target for %v", s))
	}
	return to
}

// Controller is the navigation state of one wizard session. It is not safe
// for concurrent use; callers serialise events.
type Controller struct {
	current  Step
	answers  Answers
	observer Observer
}

type Option func(*Controller)

func WithObserver(o Observer) Option {
	return func(c *Controller) {
		c.observer = o
	}
}

// NewController returns a controller on LANDING with no answers.
func NewController(opts ...Option) *Controller {
	c := &Controller{
		current: Landing,
		answers: Answers{Allergies: []string{}},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) Current() Step {
	return c.current
}

// Answers returns a snapshot of the collected answers.
func (c *Controller) Answers() Answers {
	return c.answers.Clone()
}

// Start leaves the landing screen. It is ignored anywhere else.
func (c *Controller) Start() (Step, bool) {
	if c.current != Landing {
		return c.ignore(ActionStart, c.current, ReasonNoTransition)
	}
	return c.move(ActionStart, SkinTypeAnalysis)
}

// Advance applies the forward transition out of from. Calls whose from is not
// the current step are stale and ignored. The bool reports whether the event
// was accepted.
func (c *Controller) Advance(from Step, p Payload) (Step, bool) {
	if from != c.current {
		return c.ignore(ActionAdvance, from, ReasonStale)
	}

	switch from {
	case SkinTypeAnalysis:
		skinType, _ := p.(SkinTypeAnswer)
		c.answers.SkinType = string(skinType)
		return c.move(ActionAdvance, MainMenu)

	case MainMenu:
		branch, _ := p.(Branch)
		to, ok := branchTargets[branch]
		if !ok {
			return c.ignore(ActionAdvance, from, ReasonUnknownBranch)
		}
		return c.move(ActionAdvance, to)

	case RoutineAnalysis, ConditionAnalysis:
		return c.move(ActionAdvance, BrandPick)

	case AllergyCheck:
		allergies, _ := p.(AllergyAnswer)
		c.answers.Allergies = allergySet(allergies)
		return c.move(ActionAdvance, BrandPick)

	case BrandPick:
		brand, _ := p.(BrandAnswer)
		c.answers.Brand = string(brand)
		return c.move(ActionAdvance, Recommendation)

	case Landing, Recommendation:
		return c.ignore(ActionAdvance, from, ReasonNoTransition)

	default:
		panic(fmt.Sprintf("wizard: advance from unknown step %v", from))
	}
}

// GoBack moves to the fixed back target of from. Answers are never touched.
func (c *Controller) GoBack(from Step) (Step, bool) {
	if from != c.current {
		return c.ignore(ActionBack, from, ReasonStale)
	}
	return c.move(ActionBack, BackTarget(from))
}

func (c *Controller) move(action Action, to Step) (Step, bool) {
	from := c.current
	c.current = to
	c.notify(Event{Action: action, From: from, To: to, Applied: true})
	return to, true
}

func (c *Controller) ignore(action Action, from Step, reason IgnoreReason) (Step, bool) {
	c.notify(Event{Action: action, From: from, To: c.current, Reason: reason})
	return c.current, false
}

func (c *Controller) notify(ev Event) {
	if c.observer != nil {
		c.observer(ev)
	}
}
