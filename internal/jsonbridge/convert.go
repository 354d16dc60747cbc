// Package jsonbridge converts between encoding/json's token stream and the
// JKSN value model. It backs two surfaces: the CLI front end's stdin/stdout
// JSON bridging (spec §6), and the decoder's JSON-literal opcode (0x0F,
// spec §4.1, §4.3), which re-parses a Text payload as a JSON document.
//
// No third-party JSON library appears anywhere in the retrieval pack, so
// this is one of the few places this module reaches for the standard
// library rather than an ecosystem package (see DESIGN.md).
package jsonbridge

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/jksn-go/jksn/value"
)

// FromJSON parses a JSON document into a Value tree. Object key order is
// preserved (encoding/json's map-based API would lose it), and integral
// numbers are carried as arbitrary-precision Int rather than float64.
func FromJSON(data []byte) (value.Value, error) {
	return FromJSONReader(bytes.NewReader(data))
}

// FromJSONReader is the streaming form of FromJSON.
func FromJSONReader(r io.Reader) (value.Value, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	v, err := parseValue(dec)
	if err != nil {
		return value.Value{}, err
	}

	return v, nil
}

func parseValue(dec *json.Decoder) (value.Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return value.Value{}, err
	}

	return parseToken(dec, tok)
}

func parseToken(dec *json.Decoder, tok json.Token) (value.Value, error) {
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return parseObject(dec)
		case '[':
			return parseArray(dec)
		default:
			return value.Value{}, fmt.Errorf("jsonbridge: unexpected delimiter %q", t)
		}
	case bool:
		return value.Bool(t), nil
	case json.Number:
		return numberFromJSON(t), nil
	case string:
		return value.Text(t), nil
	case nil:
		return value.Null(), nil
	default:
		return value.Value{}, fmt.Errorf("jsonbridge: unsupported token %v", tok)
	}
}

func parseObject(dec *json.Decoder) (value.Value, error) {
	var entries []value.MapEntry
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return value.Value{}, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return value.Value{}, fmt.Errorf("jsonbridge: object key is not a string: %v", keyTok)
		}
		val, err := parseValue(dec)
		if err != nil {
			return value.Value{}, err
		}
		entries = append(entries, value.MapEntry{Key: value.Text(key), Value: val})
	}
	if _, err := dec.Token(); err != nil { // consume '}'
		return value.Value{}, err
	}

	return value.Map(entries), nil
}

func parseArray(dec *json.Decoder) (value.Value, error) {
	var items []value.Value
	for dec.More() {
		val, err := parseValue(dec)
		if err != nil {
			return value.Value{}, err
		}
		items = append(items, val)
	}
	if _, err := dec.Token(); err != nil { // consume ']'
		return value.Value{}, err
	}

	return value.Array(items), nil
}

func numberFromJSON(n json.Number) value.Value {
	s := string(n)
	if !strings.ContainsAny(s, ".eE") {
		if bi, ok := new(big.Int).SetString(s, 10); ok {
			return value.BigInt(bi)
		}
	}
	f, err := n.Float64()
	if err != nil {
		f = 0
	}

	return value.Float(f)
}

// ToJSONIndent renders a Value tree as indented JSON text, preserving Map
// key order (unlike marshaling through a Go map).
func ToJSONIndent(v value.Value, indent string) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeValue(&buf, v, "", indent); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func writeValue(buf *bytes.Buffer, v value.Value, prefix, indent string) error {
	switch v.Kind() {
	case value.KindNull, value.KindUnspecified:
		buf.WriteString("null")
	case value.KindBool:
		if v.Bool() {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}
	case value.KindInt:
		buf.WriteString(v.BigInt().String())
	case value.KindFloat:
		buf.WriteString(formatFloat(v.Float()))
	case value.KindText:
		escaped, err := json.Marshal(v.Text())
		if err != nil {
			return err
		}
		buf.Write(escaped)
	case value.KindBlob:
		escaped, err := json.Marshal(v.Blob())
		if err != nil {
			return err
		}
		buf.Write(escaped)
	case value.KindArray:
		return writeArray(buf, v.Array(), prefix, indent)
	case value.KindMap:
		return writeMap(buf, v.Map(), prefix, indent)
	default:
		return fmt.Errorf("jsonbridge: unsupported kind %s", v.Kind())
	}

	return nil
}

func formatFloat(f float64) string {
	if math.IsNaN(f) || math.IsInf(f, 0) { // NaN / Inf: JSON has no literal, emit null
		return "null"
	}

	return strconv.FormatFloat(f, 'g', -1, 64)
}

func writeArray(buf *bytes.Buffer, items []value.Value, prefix, indent string) error {
	if len(items) == 0 {
		buf.WriteString("[]")
		return nil
	}
	childPrefix := prefix + indent
	buf.WriteString("[\n")
	for i, it := range items {
		buf.WriteString(childPrefix)
		if err := writeValue(buf, it, childPrefix, indent); err != nil {
			return err
		}
		if i != len(items)-1 {
			buf.WriteByte(',')
		}
		buf.WriteByte('\n')
	}
	buf.WriteString(prefix)
	buf.WriteByte(']')

	return nil
}

func writeMap(buf *bytes.Buffer, entries []value.MapEntry, prefix, indent string) error {
	if len(entries) == 0 {
		buf.WriteString("{}")
		return nil
	}
	childPrefix := prefix + indent
	buf.WriteString("{\n")
	for i, en := range entries {
		buf.WriteString(childPrefix)
		keyText := en.Key.Text()
		if en.Key.Kind() != value.KindText {
			keyText = fmt.Sprintf("%v", en.Key.Kind())
		}
		keyBytes, err := json.Marshal(keyText)
		if err != nil {
			return err
		}
		buf.Write(keyBytes)
		buf.WriteString(": ")
		if err := writeValue(buf, en.Value, childPrefix, indent); err != nil {
			return err
		}
		if i != len(entries)-1 {
			buf.WriteByte(',')
		}
		buf.WriteByte('\n')
	}
	buf.WriteString(prefix)
	buf.WriteByte('}')

	return nil
}
