package driver

import (
	"encoding/json"

	"github.com/pkg/errors"
	"gitlab.com/webpilot/webpilot"
)

// reply decode helpers, every malformed shape maps to ErrInvalidReply

type guidValue struct {
	GUID string `json:"guid"`
}

type elementResult struct {
	Element *guidValue `json:"element"`
}

type elementsResult struct {
	Elements []guidValue `json:"elements"`
}

type stringValueResult struct {
	Value *string `json:"value"`
}

type boolValueResult struct {
	Value bool `json:"value"`
}

type intValueResult struct {
	Value int `json:"value"`
}

type rawValueResult struct {
	Value json.RawMessage `json:"value"`
}

type stringsResult struct {
	Values []string `json:"values"`
}

func decodeReply(raw json.RawMessage, into interface{}) error {
	if err := json.Unmarshal(raw, into); err != nil {
		return errors.Wrap(webpilot.ErrInvalidReply, err.Error())
	}
	return nil
}

// onlyGUID for replies that hand back a single new object identity
func onlyGUID(raw json.RawMessage) (string, error) {
	v := &guidValue{}
	if err := decodeReply(raw, v); err != nil {
		return "", err
	}
	if v.GUID == "" {
		return "", errors.Wrap(webpilot.ErrInvalidReply, "reply carried no guid")
	}
	return v.GUID, nil
}

func optStringReply(raw json.RawMessage) (*string, error) {
	v := &stringValueResult{}
	if err := decodeReply(raw, v); err != nil {
		return nil, err
	}
	return v.Value, nil
}

func stringReply(raw json.RawMessage) (string, error) {
	v, err := optStringReply(raw)
	if err != nil {
		return "", err
	}
	if v == nil {
		return "", nil
	}
	return *v, nil
}

func boolReply(raw json.RawMessage) (bool, error) {
	v := &boolValueResult{}
	if err := decodeReply(raw, v); err != nil {
		return false, err
	}
	return v.Value, nil
}

func intReply(raw json.RawMessage) (int, error) {
	v := &intValueResult{}
	if err := decodeReply(raw, v); err != nil {
		return 0, err
	}
	return v.Value, nil
}

func stringsReply(raw json.RawMessage) ([]string, error) {
	v := &stringsResult{}
	if err := decodeReply(raw, v); err != nil {
		return nil, err
	}
	return v.Values, nil
}
