package sources

import (
	"bytes"
	"encoding/json"
	stderrors "errors"

	"github.com/arthur-debert/arbitrator/pkg/errors"
	"github.com/arthur-debert/arbitrator/pkg/logging"
	"github.com/arthur-debert/arbitrator/pkg/ruleset"
)

// ParseJSON parses a JSON object token by token so key order survives. A
// document whose top level is not an object contributes no rules.
func ParseJSON(data []byte) (*ruleset.Mapping, error) {
	logger := logging.GetLogger("sources")
	m := &ruleset.Mapping{}

	if len(bytes.TrimSpace(data)) == 0 {
		return m, nil
	}

	// Validate the whole document first; the walk below trusts the syntax.
	var raw json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		arbErr := errors.Wrap(err, errors.ErrRuleSourceParse, "malformed JSON rule document")
		var syntaxErr *json.SyntaxError
		if stderrors.As(err, &syntaxErr) {
			arbErr = arbErr.WithDetail("offset", syntaxErr.Offset)
		}
		return nil, arbErr
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrRuleSourceParse, "malformed JSON rule document")
	}
	if tok != json.Delim('{') {
		logger.Warn().
			Str("kind", jsonKind(tok)).
			Msg("Rule document is not an object, skipping")
		return m, nil
	}

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrRuleSourceParse, "malformed JSON rule document")
		}
		key, _ := keyTok.(string)

		offset := dec.InputOffset()
		valueTok, err := dec.Token()
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrRuleSourceParse, "malformed JSON rule document")
		}
		value, ok := valueTok.(string)
		if !ok {
			return nil, errors.Newf(errors.ErrRuleSourceParse,
				"template for pattern %q must be a string, got %s", key, jsonKind(valueTok)).
				WithDetail("pattern", key).
				WithDetail("offset", offset)
		}
		m.Set(key, value)
	}

	return m, nil
}

// jsonKind names the JSON type a token starts.
func jsonKind(tok json.Token) string {
	switch v := tok.(type) {
	case json.Delim:
		if v == '[' {
			return "array"
		}
		return "object"
	case json.Number:
		return "number"
	case bool:
		return "boolean"
	case nil:
		return "null"
	default:
		return "string"
	}
}
