// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package button

// ViolationCode identifies one accessibility non-compliance on a button.
//
// Violations are tracked by code and rendered to text only at the edge, so
// adding and removing them never depends on matching message strings.
type ViolationCode string

const (
	// ViolationDisabledAccessible: a disabled button is flagged as accessible.
	ViolationDisabledAccessible ViolationCode = "disabled_marked_accessible"
	// ViolationIconInaccessible: an icon button failed an accessibility check.
	ViolationIconInaccessible ViolationCode = "icon_inaccessible"
	// ViolationIconLabel: an icon was added to a button lacking accessible labels.
	ViolationIconLabel ViolationCode = "icon_missing_label"
	// ViolationHighEmphasis: a high emphasis button is not accessible.
	ViolationHighEmphasis ViolationCode = "high_emphasis_inaccessible"
)

var violationMessages = map[ViolationCode]string{
	ViolationDisabledAccessible: "Disabled buttons cannot be marked as accessible",
	ViolationIconInaccessible:   "Buttons with icons must be accessible",
	ViolationIconLabel:          "Buttons with icons must have proper accessibility labels",
	ViolationHighEmphasis:       "High emphasis buttons must be accessible",
}

// Message renders the violation for humans.
func (c ViolationCode) Message() string {
	if message, ok := violationMessages[c]; ok {
		return message
	}
	return string(c)
}

// IsIconLabel reports whether the violation was added by [Button.AddIcon].
// [ViolationIconInaccessible] comes from a full audit and stays until the next one.
func (c ViolationCode) IsIconLabel() bool { return c == ViolationIconLabel }

// violationSet is an ordered, duplicate-free list of codes.
type violationSet []ViolationCode

func (s violationSet) with(code ViolationCode) violationSet {
	for _, existing := range s {
		if existing == code {
			return s
		}
	}
	return append(s, code)
}

func (s violationSet) without(drop func(ViolationCode) bool) violationSet {
	kept := make(violationSet, 0, len(s))
	for _, code := range s {
		if !drop(code) {
			kept = append(kept, code)
		}
	}
	return kept
}

func (s violationSet) messages() []string {
	messages := make([]string, len(s))
	for i, code := range s {
		messages[i] = code.Message()
	}
	return messages
}
