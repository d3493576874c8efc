package util

import (
	"encoding/json"
	"strconv"
	"strings"
)

// CoerceID renders a wire identifier as its canonical string form whether the
// upstream sent it as a JSON number or a string.
func CoerceID(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var asString string
	if err := json.Unmarshal(raw, &asString); err == nil {
		return strings.TrimSpace(asString)
	}
	var asNumber json.Number
	if err := json.Unmarshal(raw, &asNumber); err == nil {
		return asNumber.String()
	}
	return strings.Trim(string(raw), `"`)
}

// CoerceInt reads a wire value as an int whether it arrived as a number or a
// numeric string. Returns fallback when neither form parses.
func CoerceInt(raw json.RawMessage, fallback int) int {
	if len(raw) == 0 {
		return fallback
	}
	var asInt int
	if err := json.Unmarshal(raw, &asInt); err == nil {
		return asInt
	}
	var asString string
	if err := json.Unmarshal(raw, &asString); err == nil {
		if parsed, err := strconv.Atoi(strings.TrimSpace(asString)); err == nil {
			return parsed
		}
	}
	return fallback
}
