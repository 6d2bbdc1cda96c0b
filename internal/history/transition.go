package history

// transitionLabels maps the core page transition type (the low byte of
// visits.transition) to the label used by the import format.
var transitionLabels = [...]string{
	0:  "LINK",
	1:  "TYPED",
	2:  "AUTO_BOOKMARK",
	3:  "AUTO_SUBFRAME",
	4:  "MANUAL_SUBFRAME",
	5:  "GENERATED",
	6:  "AUTO_TOPLEVEL",
	7:  "FORM_SUBMIT",
	8:  "RELOAD",
	9:  "KEYWORD",
	10: "KEYWORD_GENERATED",
}

// defaultTransition is used for codes with no known label.
const defaultTransition = "LINK"

// TransitionLabel returns the label for a raw transition value. Qualifier
// bits above the low byte are ignored.
func TransitionLabel(code int64) string {
	core := code & 0xFF
	if core < int64(len(transitionLabels)) {
		return transitionLabels[core]
	}
	return defaultTransition
}
