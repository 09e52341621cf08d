package workload

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/openacid/testkeys"
)

// Order is the order keys are inserted in.
type Order string

const (
	Shuffled  Order = "shuffled"
	Ascending Order = "ascending"
	AsGiven   Order = "as-given"
)

func ParseOrder(s string) (Order, error) {
	switch o := Order(s); o {
	case Shuffled, Ascending, AsGiven:
		return o, nil
	}
	return "", fmt.Errorf("unknown key order: %q (shuffled|ascending|as-given)", s)
}

// LoadKeys returns the keys named by source:
//
//	testkeys:<asset>  a key corpus from github.com/openacid/testkeys
//	seq:<n>           n zero-padded decimal keys
func LoadKeys(source string) ([]string, error) {
	kind, arg, ok := strings.Cut(source, ":")
	if !ok {
		return nil, fmt.Errorf("invalid key source %q: want testkeys:<asset> or seq:<n>", source)
	}

	switch kind {
	case "testkeys":
		for _, name := range testkeys.AssetNames() {
			if name == arg {
				return testkeys.Load(arg), nil
			}
		}
		return nil, fmt.Errorf("unknown testkeys asset %q", arg)
	case "seq":
		n, err := strconv.Atoi(arg)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("invalid sequence length %q", arg)
		}
		width := len(strconv.Itoa(n))
		keys := make([]string, n)
		for i := range keys {
			keys[i] = fmt.Sprintf("%0*d", width, i)
		}
		return keys, nil
	}
	return nil, fmt.Errorf("unknown key source kind %q", kind)
}
