package component

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// DecodeComponent parses a raw component document. Registry payloads are
// JSON; locally authored documents may be YAML, so decoding tries JSON first
// and falls back to YAML. Shape problems inside a parseable document (bad
// tags, bad required flags) never fail the decode.
func DecodeComponent(data []byte) (Component, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return Component{}, errors.New("component: document is empty")
	}

	var c Component
	if err := json.Unmarshal(data, &c); err == nil {
		return c, nil
	}

	c = Component{}
	if err := yaml.Unmarshal(data, &c); err == nil {
		return c, nil
	}

	return Component{}, fmt.Errorf("component: document is neither valid JSON nor YAML")
}

// DecodeComponentList parses a payload holding a sequence of components, as
// returned by the registry listing endpoint.
func DecodeComponentList(data []byte) ([]Component, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, errors.New("component: list payload is empty")
	}

	var list []Component
	if err := json.Unmarshal(data, &list); err == nil {
		return list, nil
	}

	list = nil
	if err := yaml.Unmarshal(data, &list); err == nil {
		return list, nil
	}

	return nil, fmt.Errorf("component: list payload is neither valid JSON nor YAML")
}
