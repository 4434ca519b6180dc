// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package button models a runtime button instance and the rules it must obey.

# Core Responsibility

  - Identity: [ButtonType] and the state/emphasis/icon enums.
  - State machine: [Button] enforces creation invariants and legal transitions,
    tracks clicks, and accumulates accessibility violations.
  - Rules: [AccessibilityValidator] reports WCAG-style errors and warnings.
  - Orchestration: [CreateButtonUseCase] builds a button and merges every
    validation signal into one report.

A Button never renders anything; it only carries metadata about one.
*/
package button

import (
	"time"

	"github.com/taibuivan/uibutton/internal/core/shared"
	"github.com/taibuivan/uibutton/internal/platform/apperr"
	"github.com/taibuivan/uibutton/internal/platform/validate"
)

// # Field Identifiers

const (
	FieldID           = "id"
	FieldButtonType   = "buttonType"
	FieldEmphasis     = "emphasis"
	FieldIconPosition = "iconPosition"
	FieldState        = "state"
	FieldClickType    = "clickType"
)

// popularityThreshold is the average clicks per day above which a button is popular.
const popularityThreshold = 10

// ErrNotClickable is returned by [Button.Click] on a disabled or loading button.
var ErrNotClickable = apperr.InvalidOperation("Cannot click a disabled or loading button")

// forbiddenTransitions lists the state edges a button may never take.
var forbiddenTransitions = map[State][]State{
	StateDisabled: {StateHovered, StatePressed},
	StateLoading:  {StatePressed},
}

// # Entity

// Button is a runtime button instance.
//
// # Concurrency
//
// Button is not safe for concurrent use; callers serialize access.
type Button struct {
	shared.Entity

	buttonType    ButtonType
	state         State
	emphasis      Emphasis
	hasIcon       bool
	iconPosition  IconPosition
	isAccessible  bool
	clickCount    int
	lastClickedAt *time.Time
	violations    violationSet
}

// CreateParams holds the inputs of [New]. Zero values select the defaults.
type CreateParams struct {
	// ID is generated (UUIDv7) when empty.
	ID string
	// ButtonType is the raw HTML type: button, submit, or reset.
	ButtonType string
	// Emphasis defaults to medium.
	Emphasis Emphasis
	HasIcon  bool
	// IconPosition defaults to start.
	IconPosition IconPosition
	// Clock defaults to [shared.SystemClock].
	Clock shared.Clock
}

/*
New creates a button in the idle state and records a [CreatedEvent].

Returns VALIDATION_ERROR when the type is invalid, when emphasis or icon
position are unknown values, or when a submit button is given low emphasis.
A new button always starts not accessible until [Button.ValidateAccessibility] runs.
*/
func New(params CreateParams) (*Button, error) {
	buttonType, err := ParseButtonType(params.ButtonType)
	if err != nil {
		return nil, err
	}

	emphasis := params.Emphasis
	if emphasis == "" {
		emphasis = EmphasisMedium
	}

	iconPosition := params.IconPosition
	if iconPosition == "" {
		iconPosition = IconStart
	}

	validator := &validate.Validator{}
	validator.
		Custom(FieldEmphasis, !emphasis.IsValid(), "Invalid emphasis. Must be one of: "+join(Emphases)).
		Custom(FieldIconPosition, !iconPosition.IsValid(), `Icon position must be either "start" or "end"`).
		Custom(FieldEmphasis, buttonType.IsSubmit() && emphasis == EmphasisLow, "Submit buttons should not have low emphasis")

	if err := validator.Err(); err != nil {
		return nil, err
	}

	button := &Button{
		Entity:       shared.NewEntity(params.ID, params.Clock),
		buttonType:   buttonType,
		state:        StateIdle,
		emphasis:     emphasis,
		hasIcon:      params.HasIcon,
		iconPosition: iconPosition,
		violations:   violationSet{},
	}

	button.Record(CreatedEvent{
		EventHeader: shared.NewEventHeader(EventCreated, button.ID(), button.Now()),
		ButtonType:  params.ButtonType,
		HasIcon:     params.HasIcon,
	})

	return button, nil
}

// # Behaviour

// Click registers one click. A zero clickType counts as primary.
//
// It fails with [ErrNotClickable] when the button is disabled or loading and
// never changes the state.
func (b *Button) Click(clickType ClickType) error {
	if clickType == "" {
		clickType = ClickPrimary
	}
	if !clickType.IsValid() {
		return validate.FieldErr(FieldClickType, "Invalid click type. Must be one of: "+join(ClickTypes))
	}
	if !b.CanBeClicked() {
		return ErrNotClickable
	}

	now := b.Now()
	b.clickCount++
	b.lastClickedAt = &now
	b.Touch()

	b.Record(ClickedEvent{
		EventHeader: shared.NewEventHeader(EventClicked, b.ID(), now),
		ClickType:   clickType,
	})

	return nil
}

/*
ChangeState moves the button to newState.

Changing to the current state is a no-op: no event, no timestamp update.
Forbidden edges (disabled→hovered, disabled→pressed, loading→pressed) fail
with INVALID_TRANSITION and leave the button untouched. Entering disabled
clears the accessible flag.
*/
func (b *Button) ChangeState(newState State) error {
	if !newState.IsValid() {
		return validate.FieldErr(FieldState, "Invalid state. Must be one of: "+join(States))
	}
	if b.state == newState {
		return nil
	}

	previous := b.state
	for _, forbidden := range forbiddenTransitions[previous] {
		if forbidden == newState {
			return apperr.InvalidTransition(previous.String(), newState.String())
		}
	}

	b.state = newState
	b.Touch()

	b.Record(StateChangedEvent{
		EventHeader:   shared.NewEventHeader(EventStateChanged, b.ID(), b.Now()),
		PreviousState: previous,
		NewState:      newState,
	})

	if newState == StateDisabled {
		b.isAccessible = false
	}

	return nil
}

// SetEmphasis changes the visual weight. Raising it to high on a button that
// is not accessible adds [ViolationHighEmphasis] (once).
func (b *Button) SetEmphasis(emphasis Emphasis) error {
	if !emphasis.IsValid() {
		return validate.FieldErr(FieldEmphasis, "Invalid emphasis. Must be one of: "+join(Emphases))
	}
	if b.emphasis == emphasis {
		return nil
	}

	b.emphasis = emphasis
	b.Touch()

	if emphasis == EmphasisHigh && !b.isAccessible {
		b.violations = b.violations.with(ViolationHighEmphasis)
	}

	return nil
}

// AddIcon attaches an icon at position (start when zero). On a button that is
// not accessible it adds [ViolationIconLabel] (once).
func (b *Button) AddIcon(position IconPosition) error {
	if position == "" {
		position = IconStart
	}
	if !position.IsValid() {
		return validate.FieldErr(FieldIconPosition, `Icon position must be either "start" or "end"`)
	}

	b.hasIcon = true
	b.iconPosition = position
	b.Touch()

	if !b.isAccessible {
		b.violations = b.violations.with(ViolationIconLabel)
	}

	return nil
}

// RemoveIcon detaches the icon and drops [ViolationIconLabel]. Violations from
// [Button.ValidateAccessibility] are kept until the button is validated again.
func (b *Button) RemoveIcon() {
	b.hasIcon = false
	b.Touch()
	b.violations = b.violations.without(ViolationCode.IsIconLabel)
}

/*
ValidateAccessibility recomputes the violations from scratch.

Rules:
  - disabled and flagged accessible
  - icon present and not accessible
  - high emphasis and not accessible

The button becomes accessible exactly when no rule fires. An
[AccessibilityValidatedEvent] is recorded either way.
*/
func (b *Button) ValidateAccessibility() shared.AccessibilityReport {
	violations := violationSet{}

	if b.state == StateDisabled && b.isAccessible {
		violations = violations.with(ViolationDisabledAccessible)
	}
	if b.hasIcon && !b.isAccessible {
		violations = violations.with(ViolationIconInaccessible)
	}
	if b.emphasis == EmphasisHigh && !b.isAccessible {
		violations = violations.with(ViolationHighEmphasis)
	}

	b.isAccessible = len(violations) == 0
	b.violations = violations

	messages := violations.messages()
	b.Record(AccessibilityValidatedEvent{
		EventHeader:  shared.NewEventHeader(EventAccessibilityValidated, b.ID(), b.Now()),
		IsAccessible: b.isAccessible,
		Violations:   messages,
	})

	return shared.AccessibilityReport{IsAccessible: b.isAccessible, Violations: messages}
}

// # Queries

// Statistics summarizes click activity.
type Statistics struct {
	ClickCount          int        `json:"click_count"`
	LastClickedAt       *time.Time `json:"last_clicked_at,omitempty"`
	DaysSinceCreation   int        `json:"days_since_creation"`
	AverageClicksPerDay float64    `json:"average_clicks_per_day"`
	IsPopular           bool       `json:"is_popular"`
}

// Statistics derives click activity as of the entity clock's current time.
// Days since creation is floored and never below one.
func (b *Button) Statistics() Statistics {
	days := int(b.Now().Sub(b.CreatedAt()) / (24 * time.Hour))
	if days < 1 {
		days = 1
	}

	average := float64(b.clickCount) / float64(days)

	return Statistics{
		ClickCount:          b.clickCount,
		LastClickedAt:       b.lastClickedAt,
		DaysSinceCreation:   days,
		AverageClicksPerDay: average,
		IsPopular:           average > popularityThreshold,
	}
}

// CanBeClicked reports whether the button accepts clicks.
func (b *Button) CanBeClicked() bool {
	return b.state != StateDisabled && b.state != StateLoading
}

// NeedsAccessibilityImprovement reports whether any violation is recorded.
func (b *Button) NeedsAccessibilityImprovement() bool {
	return len(b.violations) > 0
}

func (b *Button) ButtonType() ButtonType { return b.buttonType }
func (b *Button) State() State { return b.state }
func (b *Button) Emphasis() Emphasis { return b.emphasis }
func (b *Button) HasIcon() bool { return b.hasIcon }
func (b *Button) IconPosition() IconPosition { return b.iconPosition }
func (b *Button) IsAccessible() bool { return b.isAccessible }
func (b *Button) ClickCount() int { return b.clickCount }
func (b *Button) LastClickedAt() *time.Time { return b.lastClickedAt }
func (b *Button) IsIdle() bool { return b.state == StateIdle }
func (b *Button) IsDisabled() bool { return b.state == StateDisabled }
func (b *Button) IsLoading() bool { return b.state == StateLoading }
func (b *Button) IsHighEmphasis() bool { return b.emphasis == EmphasisHigh }

// AccessibilityViolations returns a copy of the recorded violation messages.
func (b *Button) AccessibilityViolations() []string {
	return b.violations.messages()
}

// ViolationCodes returns a copy of the recorded violation codes.
func (b *Button) ViolationCodes() []ViolationCode {
	return append([]ViolationCode{}, b.violations...)
}

// # Presentation

// Snapshot is a read-only, JSON-friendly view of a button.
type Snapshot struct {
	ID                      string       `json:"id"`
	ButtonType              ButtonType   `json:"button_type"`
	State                   State        `json:"state"`
	Emphasis                Emphasis     `json:"emphasis"`
	HasIcon                 bool         `json:"has_icon"`
	IconPosition            IconPosition `json:"icon_position"`
	IsAccessible            bool         `json:"is_accessible"`
	ClickCount              int          `json:"click_count"`
	LastClickedAt           *time.Time   `json:"last_clicked_at,omitempty"`
	AccessibilityViolations []string     `json:"accessibility_violations"`
	SemanticRole            string       `json:"semantic_role"`
	DefaultFormMethod       string       `json:"default_form_method"`
	CreatedAt               time.Time    `json:"created_at"`
	UpdatedAt               time.Time    `json:"updated_at"`
}

// Snapshot captures the current attributes.
func (b *Button) Snapshot() Snapshot {
	return Snapshot{
		ID:                      b.ID(),
		ButtonType:              b.buttonType,
		State:                   b.state,
		Emphasis:                b.emphasis,
		HasIcon:                 b.hasIcon,
		IconPosition:            b.iconPosition,
		IsAccessible:            b.isAccessible,
		ClickCount:              b.clickCount,
		LastClickedAt:           b.lastClickedAt,
		AccessibilityViolations: b.AccessibilityViolations(),
		SemanticRole:            b.buttonType.SemanticRole(),
		DefaultFormMethod:       b.buttonType.DefaultFormMethod(),
		CreatedAt:               b.CreatedAt(),
		UpdatedAt:               b.UpdatedAt(),
	}
}
