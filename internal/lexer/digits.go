package lexer

import (
	"regexp"
	"strconv"
)

var digitRun = regexp.MustCompile(`\d+`)

// FirstInt returns the first run of decimal digits in token, so
// "Controller_12" and "SC[12]" both yield 12.
func FirstInt(token string) (int, bool) {
	m := digitRun.FindString(token)
	if m == "" {
		return 0, false
	}

	n, err := strconv.Atoi(m)
	if err != nil {
		return 0, false
	}

	return n, true
}

// Ints returns every run of decimal digits in token in encounter order.
// A run that does not fit an int is an error rather than being skipped.
func Ints(token string) ([]int, error) {
	runs := digitRun.FindAllString(token, -1)

	out := make([]int, 0, len(runs))
	for _, m := range runs {
		n, err := strconv.Atoi(m)
		if err != nil {
			return nil, err
		}

		out = append(out, n)
	}

	return out, nil
}
