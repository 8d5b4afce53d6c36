package callsite

import (
	"github.com/rancher-sandbox/rancher-desktop/src/go/i18n-keycheck/keypattern"
)

// Keys returns the candidate keys arg can produce and the placeholder names
// that values could not resolve. Both branches of a conditional contribute;
// duplicate keys are dropped, keeping first-seen order. A branch whose
// expansion is too large contributes its error but does not hide the other
// branch's keys.
func Keys(arg Arg, values keypattern.Values) (keys []string, missing []string, err error) {
	switch arg := arg.(type) {
	case Literal:
		return []string{arg.Value}, nil, nil
	case Template:
		return keypattern.Expand(arg.Pattern, values)
	case Conditional:
		seen := make(map[string]bool)
		for _, b := range []Arg{arg.Consequent, arg.Alternate} {
			k, m, berr := Keys(b, values)
			if berr != nil && err == nil {
				err = berr
			}
			for _, key := range k {
				if !seen[key] {
					seen[key] = true
					keys = append(keys, key)
				}
			}
			missing = append(missing, m...)
		}
		return keys, missing, err
	}
	return nil, nil, nil
}
