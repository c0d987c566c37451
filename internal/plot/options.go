package plot

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// Options is the decoded form of the caller's JSON options string. Each
// renderer recognizes its own subset of keys and rejects everything else.
type Options map[string]json.RawMessage

// DecodeOptions parses the raw options string from a tool call. The literal
// sentinel "None" and the empty string both mean "no options"; anything else
// must be a JSON object. Decoding happens before any rendering work, so an
// invalid options string can never cost a render.
func DecodeOptions(raw string) (Options, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" || trimmed == "None" {
		return Options{}, nil
	}

	var opts Options
	if err := json.Unmarshal([]byte(trimmed), &opts); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidOptions, err)
	}
	if opts == nil {
		// JSON "null" decodes to a nil map; treat it like no options.
		opts = Options{}
	}
	return opts, nil
}

// stringOption extracts an optional string-valued key.
func (o Options) stringOption(key string) (string, bool, error) {
	raw, ok := o[key]
	if !ok {
		return "", false, nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false, fmt.Errorf("%w: option %q must be a string", ErrInvalidOptions, key)
	}
	return s, true, nil
}

// floatOption extracts an optional number-valued key.
func (o Options) floatOption(key string) (float64, bool, error) {
	raw, ok := o[key]
	if !ok {
		return 0, false, nil
	}
	var v float64
	if err := json.Unmarshal(raw, &v); err != nil {
		return 0, false, fmt.Errorf("%w: option %q must be a number", ErrInvalidOptions, key)
	}
	return v, true, nil
}

// rejectUnknown fails when the options carry a key the renderer for kind
// does not recognize. The lowest-sorting offender is named so the error
// text is deterministic.
func (o Options) rejectUnknown(kind Kind, allowed ...string) error {
	var unknown []string
	for key := range o {
		recognized := false
		for _, a := range allowed {
			if key == a {
				recognized = true
				break
			}
		}
		if !recognized {
			unknown = append(unknown, key)
		}
	}
	if len(unknown) == 0 {
		return nil
	}
	sort.Strings(unknown)
	return fmt.Errorf("%w: unrecognized option %q for %s plot", ErrInvalidOptions, unknown[0], kind)
}
