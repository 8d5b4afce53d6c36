package callsite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rancher-sandbox/rancher-desktop/src/go/i18n-keycheck/keypattern"
)

func TestKeys(t *testing.T) {
	values := keypattern.Values{"x": []any{"a"}, "y": []any{"1", "2"}}
	tests := []struct {
		name    string
		arg     Arg
		keys    []string
		missing []string
	}{
		{"literal", Literal{Value: "missing_key"}, []string{"missing_key"}, nil},
		{"template", Template{Pattern: keypattern.Parse("k_${y}")}, []string{"k_1", "k_2"}, nil},
		{
			"conditional literal and template",
			Conditional{Consequent: Literal{Value: "k1"}, Alternate: Template{Pattern: keypattern.Parse("k2_${x}")}},
			[]string{"k1", "k2_a"},
			nil,
		},
		{
			"conditional drops duplicates",
			Conditional{Consequent: Literal{Value: "k2_a"}, Alternate: Template{Pattern: keypattern.Parse("k2_${x}")}},
			[]string{"k2_a"},
			nil,
		},
		{
			"conditional with missing placeholder keeps the other branch",
			Conditional{Consequent: Template{Pattern: keypattern.Parse("k_${z}")}, Alternate: Literal{Value: "k3"}},
			[]string{"k3"},
			[]string{"z"},
		},
		{
			"conditional with unsupported branch",
			Conditional{Consequent: Unsupported{Text: "key"}, Alternate: Literal{Value: "k4"}},
			[]string{"k4"},
			nil,
		},
		{"unsupported", Unsupported{Text: "key"}, nil, nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			keys, missing, err := Keys(tc.arg, values)
			require.NoError(t, err)
			assert.Equal(t, tc.keys, keys)
			assert.Equal(t, tc.missing, missing)
		})
	}
}

func TestKeysTooMany(t *testing.T) {
	big := make([]any, keypattern.MaxKeys+1)
	for i := range big {
		big[i] = "v"
	}
	values := keypattern.Values{"x": big}

	keys, missing, err := Keys(Conditional{
		Consequent: Template{Pattern: keypattern.Parse("k_${x}")},
		Alternate:  Literal{Value: "fallback"},
	}, values)

	var tooMany *keypattern.TooManyKeysError
	require.ErrorAs(t, err, &tooMany)
	assert.Equal(t, "k_${x}", tooMany.Pattern)
	assert.Equal(t, []string{"fallback"}, keys)
	assert.Empty(t, missing)
}
