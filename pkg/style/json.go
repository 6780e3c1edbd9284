package style

import (
	"bytes"
	"encoding/json"

	"github.com/arthur-debert/arbitrator/pkg/errors"
	"github.com/arthur-debert/arbitrator/pkg/ruleset"
	"github.com/nwidger/jsoncolor"
)

// RenderRulesJSON writes rules as one JSON object in match order. The result
// is a valid rule file.
func (r *Renderer) RenderRulesJSON(rules []ruleset.Rule) (string, error) {
	var buf bytes.Buffer
	buf.WriteString("{")
	for i, rule := range rules {
		if i > 0 {
			buf.WriteString(",")
		}
		buf.WriteString("\n  ")
		if err := writeJSONString(&buf, rule.Pattern); err != nil {
			return "", err
		}
		buf.WriteString(": ")
		if err := writeJSONString(&buf, rule.Template); err != nil {
			return "", err
		}
	}
	if len(rules) > 0 {
		buf.WriteString("\n")
	}
	buf.WriteString("}")

	if !r.Colored() {
		return buf.String(), nil
	}

	var colored bytes.Buffer
	f := jsoncolor.NewFormatter()
	f.Indent = "  "
	if err := f.Format(&colored, buf.Bytes()); err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "cannot colorize rule JSON")
	}
	return colored.String(), nil
}

// writeJSONString quotes s without HTML escaping, so templates such as
// "<{}>" stay readable.
func writeJSONString(buf *bytes.Buffer, s string) error {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return errors.Wrap(err, errors.ErrInternal, "cannot encode rule as JSON")
	}
	// Encode terminates every value with a newline
	buf.Truncate(buf.Len() - 1)
	return nil
}
