package domain

// Rule pairs a validity check with the message a user sees when it fails.
type Rule struct {
	Check   func(string) bool
	Message string
}

// FirstViolation runs rules in order and returns the message of the first
// one that fails.
func FirstViolation(rules []Rule, s string) (string, bool) {
	for _, r := range rules {
		if !r.Check(s) {
			return r.Message, true
		}
	}
	return "", false
}

// check returns an ErrInvalidArgument error for the first failing rule
func check(rules []Rule, s string) error {
	if msg, failed := FirstViolation(rules, s); failed {
		return invalidArgument(msg)
	}
	return nil
}
