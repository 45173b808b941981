package min

import (
	"bytes"
	"encoding/json"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// jsonObject keeps keys in the order they first appeared. A repeated key keeps
// its first position and takes its last value.
type jsonObject struct {
	keys []string
	vals map[string]interface{}
}

// JSON parses a JSON document and writes it back out compactly. Duplicate keys
// collapse to their last value, and escapes are normalized. Numbers go through
// the json minifier.
func JSON(s string) (string, error) {
	dec := json.NewDecoder(strings.NewReader(s))
	dec.UseNumber()

	v, err := decodeJSON(dec)
	if err == io.EOF {
		err = errors.New("empty document")
	}

	if err == nil {
		_, err = dec.Token()
		if err == io.EOF {
			err = nil
		} else if err == nil {
			err = errors.New("unexpected data after top-level value")
		}
	}

	if err != nil {
		return "", errors.Wrap(err, "invalid json")
	}

	var b bytes.Buffer
	b.Grow(len(s))

	err = encodeJSON(&b, v)
	if err != nil {
		return "", errors.Wrap(err, "failed to encode json")
	}

	return min.String(JSONType, b.String())
}

func decodeJSON(dec *json.Decoder) (interface{}, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	switch tok {
	case json.Delim('{'):
		obj := &jsonObject{vals: map[string]interface{}{}}
		for dec.More() {
			kt, err := jsonToken(dec)
			if err != nil {
				return nil, err
			}

			key := kt.(string)
			v, err := decodeNested(dec)
			if err != nil {
				return nil, err
			}

			if _, ok := obj.vals[key]; !ok {
				obj.keys = append(obj.keys, key)
			}

			obj.vals[key] = v
		}

		_, err = jsonToken(dec)
		return obj, err

	case json.Delim('['):
		arr := []interface{}{}
		for dec.More() {
			v, err := decodeNested(dec)
			if err != nil {
				return nil, err
			}

			arr = append(arr, v)
		}

		_, err = jsonToken(dec)
		return arr, err

	default:
		return tok, nil
	}
}

// decodeNested decodes a value that must be there
func decodeNested(dec *json.Decoder) (interface{}, error) {
	v, err := decodeJSON(dec)
	if err == io.EOF {
		err = io.ErrUnexpectedEOF
	}

	return v, err
}

func jsonToken(dec *json.Decoder) (json.Token, error) {
	tok, err := dec.Token()
	if err == io.EOF {
		err = io.ErrUnexpectedEOF
	}

	return tok, err
}

func encodeJSON(b *bytes.Buffer, v interface{}) error {
	switch v := v.(type) {
	case *jsonObject:
		b.WriteByte('{')
		for i, key := range v.keys {
			if i > 0 {
				b.WriteByte(',')
			}

			err := encodeJSONString(b, key)
			if err != nil {
				return err
			}

			b.WriteByte(':')

			err = encodeJSON(b, v.vals[key])
			if err != nil {
				return err
			}
		}
		b.WriteByte('}')

	case []interface{}:
		b.WriteByte('[')
		for i, e := range v {
			if i > 0 {
				b.WriteByte(',')
			}

			err := encodeJSON(b, e)
			if err != nil {
				return err
			}
		}
		b.WriteByte(']')

	case string:
		return encodeJSONString(b, v)

	case json.Number:
		b.WriteString(string(v))

	case bool:
		if v {
			b.WriteString("true")
		} else {
			b.WriteString("false")
		}

	case nil:
		b.WriteString("null")

	default:
		return errors.Errorf("unexpected json token %T", v)
	}

	return nil
}

func encodeJSONString(b *bytes.Buffer, s string) error {
	enc := json.NewEncoder(b)
	enc.SetEscapeHTML(false)

	err := enc.Encode(s)
	if err != nil {
		return err
	}

	// Encode always ends with a newline
	b.Truncate(b.Len() - 1)
	return nil
}
