package weather

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

type ModifierKind uint8

const (
	// ModifierUnset resolves to the base value.
	ModifierUnset ModifierKind = iota
	ModifierAbsolute
	// ModifierDelta adds its signed Value to the base.
	ModifierDelta
)

// Modifier is a parsed configuration value that is either absolute or
// relative to a base. The string wire forms are "12" (absolute), "5+" and
// "3-" (delta).
type Modifier struct {
	Kind  ModifierKind
	Value float64
}

func Absolute(v float64) Modifier { return Modifier{Kind: ModifierAbsolute, Value: v} }

func Delta(v float64) Modifier { return Modifier{Kind: ModifierDelta, Value: v} }

func (m Modifier) IsSet() bool { return m.Kind != ModifierUnset }

func (m Modifier) Apply(base float64) float64 {
	switch m.Kind {
	case ModifierAbsolute:
		return m.Value
	case ModifierDelta:
		return base + m.Value
	default:
		return base
	}
}

// ParseModifier reads a raw configuration value. Strings ending in '+' or
// '-' are deltas; other strings and numbers are absolute. Anything that does
// not parse to a finite number is unset.
func ParseModifier(raw any) Modifier {
	switch v := raw.(type) {
	case nil:
		return Modifier{}
	case Modifier:
		return v
	case float64:
		return absoluteIfFinite(v)
	case float32:
		return absoluteIfFinite(float64(v))
	case int:
		return Absolute(float64(v))
	case int8:
		return Absolute(float64(v))
	case int16:
		return Absolute(float64(v))
	case int32:
		return Absolute(float64(v))
	case int64:
		return Absolute(float64(v))
	case uint:
		return Absolute(float64(v))
	case uint8:
		return Absolute(float64(v))
	case uint16:
		return Absolute(float64(v))
	case uint32:
		return Absolute(float64(v))
	case uint64:
		return Absolute(float64(v))
	case json.Number:
		return parseModifierString(v.String())
	case string:
		return parseModifierString(v)
	default:
		return Modifier{}
	}
}

func parseModifierString(raw string) Modifier {
	s := strings.TrimSpace(raw)
	switch {
	case s == "":
		return Modifier{}
	case strings.HasSuffix(s, "+"):
		n, ok := parseFinite(strings.TrimSuffix(s, "+"))
		if !ok {
			return Modifier{}
		}
		return Delta(n)
	case strings.HasSuffix(s, "-"):
		n, ok := parseFinite(strings.TrimSuffix(s, "-"))
		if !ok {
			return Modifier{}
		}
		return Delta(-n)
	default:
		n, ok := parseFinite(s)
		if !ok {
			return Modifier{}
		}
		return Absolute(n)
	}
}

// ApplyTempModifier resolves raw against base in one step.
func ApplyTempModifier(raw any, base float64) float64 {
	return ParseModifier(raw).Apply(base)
}

func (m Modifier) String() string {
	switch m.Kind {
	case ModifierAbsolute:
		return formatNumber(m.Value)
	case ModifierDelta:
		if m.Value < 0 {
			return formatNumber(-m.Value) + "-"
		}
		return formatNumber(m.Value) + "+"
	default:
		return ""
	}
}

func (m Modifier) MarshalJSON() ([]byte, error) {
	switch m.Kind {
	case ModifierAbsolute:
		return json.Marshal(m.Value)
	case ModifierDelta:
		return json.Marshal(m.String())
	default:
		return []byte("null"), nil
	}
}

func (m *Modifier) UnmarshalJSON(data []byte) error {
	raw, err := decodeRaw(data)
	if err != nil {
		return err
	}
	*m = ParseModifier(raw)
	return nil
}

// ChanceModifier additionally accepts the leading-sign forms "+10" and "-10"
// as deltas. Chances are never negative, so a leading sign is unambiguous
// here in a way it is not for temperatures.
type ChanceModifier struct {
	Modifier
}

func ParseChanceModifier(raw any) ChanceModifier {
	if s, ok := raw.(string); ok {
		s = strings.TrimSpace(s)
		if strings.HasPrefix(s, "+") || strings.HasPrefix(s, "-") {
			n, ok := parseFinite(s)
			if !ok {
				return ChanceModifier{}
			}
			return ChanceModifier{Delta(n)}
		}
	}
	return ChanceModifier{ParseModifier(raw)}
}

func (m ChanceModifier) MarshalJSON() ([]byte, error) {
	if m.Kind == ModifierDelta {
		if m.Value < 0 {
			return json.Marshal("-" + formatNumber(-m.Value))
		}
		return json.Marshal("+" + formatNumber(m.Value))
	}
	return m.Modifier.MarshalJSON()
}

func (m *ChanceModifier) UnmarshalJSON(data []byte) error {
	raw, err := decodeRaw(data)
	if err != nil {
		return err
	}
	*m = ParseChanceModifier(raw)
	return nil
}

func decodeRaw(data []byte) (any, error) {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil, nil
	}
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

func parseFinite(s string) (float64, bool) {
	n, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, false
	}
	return n, true
}

func absoluteIfFinite(v float64) Modifier {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Modifier{}
	}
	return Absolute(v)
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
