package keypattern

import "fmt"

// MaxKeys bounds the number of keys a single pattern may expand to.
const MaxKeys = 10000

// TooManyKeysError is returned by Expand when the placeholder values allow
// more than Limit keys.
type TooManyKeysError struct {
	Pattern string
	Limit   int
}

func (e *TooManyKeysError) Error() string {
	return fmt.Sprintf("%s expands to more than %d keys", e.Pattern, e.Limit)
}

// Expand returns every key the pattern can produce given values, plus the
// placeholder names that have no entry in values.
//
// Keys are the cross product of the placeholders' value lists, with the
// first placeholder varying slowest. A pattern with any missing placeholder
// produces no keys. A pattern without placeholders produces its literal text.
// A product larger than MaxKeys yields a *TooManyKeysError and no keys.
func Expand(p Pattern, values Values) (keys []string, missing []string, err error) {
	names := p.Names()
	if len(names) == 0 {
		return []string{p.String()}, nil, nil
	}

	sets := make([][]string, len(names))
	for i, name := range names {
		set, ok := values.Lookup(name)
		if !ok {
			missing = append(missing, name)
			continue
		}
		sets[i] = set
	}
	if len(missing) > 0 {
		return nil, missing, nil
	}

	for _, set := range sets {
		if len(set) == 0 {
			return nil, nil, nil
		}
	}
	total := 1
	for _, set := range sets {
		if total > MaxKeys/len(set) {
			return nil, nil, &TooManyKeysError{Pattern: p.String(), Limit: MaxKeys}
		}
		total *= len(set)
	}

	index := make(map[string]int, len(names))
	for i, name := range names {
		index[name] = i
	}
	counter := make([]int, len(names))
	keys = make([]string, 0, total)
	for {
		keys = append(keys, p.render(func(slot string) string {
			i := index[slot]
			return sets[i][counter[i]]
		}))

		i := len(counter) - 1
		for ; i >= 0; i-- {
			counter[i]++
			if counter[i] < len(sets[i]) {
				break
			}
			counter[i] = 0
		}
		if i < 0 {
			return keys, nil, nil
		}
	}
}
