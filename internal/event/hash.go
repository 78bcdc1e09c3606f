package event

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sort"

	"golang.org/x/text/unicode/norm"
)

// Domain prefix for content-addressed ball identity. The version suffix
// enables future algorithm migration without colliding with old hashes.
const hashDomain = "willow/ball/v1"

// Hash computes the content-addressed identity of a ball event.
//
// The hash is stable across restarts and replays given the same event:
// fields are serialized as canonical JSON (sorted keys, no HTML escaping,
// NFC-normalized strings, timestamps as unix milliseconds) and hashed with
// domain separation: SHA256(domain + 0x00 + canonical).
func Hash(b Ball) (string, error) {
	canonical, err := marshalCanonical(map[string]any{
		"kind":           string(b.Kind),
		"seq":            b.Seq,
		"ts_ms":          b.Timestamp.UnixMilli(),
		"innings":        b.Innings,
		"over":           b.Over,
		"ball_in_over":   b.BallInOver,
		"striker_id":     b.StrikerID,
		"non_striker_id": b.NonStrikerID,
		"bowler_id":      b.BowlerID,
		"runs":           b.Runs,
		"bat_runs":       b.BatRuns,
		"extra_runs":     b.ExtraRuns,
		"extra":          string(b.Extra),
		"is_wicket":      b.IsWicket,
		"wicket":         string(b.Wicket),
		"credit_bowler":  b.CreditBowler,
		"out_player_id":  b.OutPlayerID,
		"fielder_id":     b.FielderID,
		"commentary":     b.Commentary,
	})
	if err != nil {
		return "", fmt.Errorf("hash ball seq %d: %w", b.Seq, err)
	}

	h := sha256.New()
	h.Write([]byte(hashDomain))
	h.Write([]byte{0x00}) // null separator prevents domain/data ambiguity
	h.Write(canonical)
	return hex.EncodeToString(h.Sum(nil)), nil
}

// marshalCanonical serializes a flat map as canonical JSON: keys sorted,
// strings NFC normalized, no HTML escaping, no floats, no null.
func marshalCanonical(m map[string]any) ([]byte, error) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := marshalCanonicalString(k)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := marshalCanonicalValue(m[k])
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", k, err)
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func marshalCanonicalValue(v any) ([]byte, error) {
	switch val := v.(type) {
	case string:
		return marshalCanonicalString(val)
	case int:
		return []byte(fmt.Sprintf("%d", val)), nil
	case int64:
		return []byte(fmt.Sprintf("%d", val)), nil
	case bool:
		if val {
			return []byte("true"), nil
		}
		return []byte("false"), nil
	case nil:
		return nil, fmt.Errorf("null is forbidden in canonical JSON")
	default:
		return nil, fmt.Errorf("unsupported type for canonical JSON: %T", v)
	}
}

// marshalCanonicalString normalizes to NFC before encoding so that
// visually identical player names and commentary hash identically.
func marshalCanonicalString(s string) ([]byte, error) {
	normalized := norm.NFC.String(s)

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(normalized); err != nil {
		return nil, fmt.Errorf("encode string: %w", err)
	}
	// Encoder appends a newline; trim it.
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
