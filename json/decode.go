// Package json decodes JSON text into deckscout.Value trees and encodes
// candidates as JSON lines. It is built on go-json-experiment so object
// members can be read as a token stream and kept in document order.
package json

import (
	"errors"
	"html"
	"io"
	"strings"

	"github.com/fwojciec/deckscout"
	"github.com/go-json-experiment/json/jsontext"
)

// Decode parses a single JSON document. Object members keep document order;
// a repeated key keeps its first position and takes the last value.
// Trailing data after the document is an error.
func Decode(s string) (deckscout.Value, error) {
	dec := jsontext.NewDecoder(strings.NewReader(s),
		jsontext.AllowDuplicateNames(true),
		jsontext.AllowInvalidUTF8(true),
	)

	v, err := decodeValue(dec)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, deckscout.Errorf(deckscout.EINVALID, "unexpected end of JSON input")
		}
		return nil, deckscout.Errorf(deckscout.EINVALID, "invalid JSON: %v", err)
	}

	if _, err := dec.ReadToken(); err != io.EOF {
		if err == nil {
			return nil, deckscout.Errorf(deckscout.EINVALID, "invalid JSON: extra data after document")
		}
		return nil, deckscout.Errorf(deckscout.EINVALID, "invalid JSON: %v", err)
	}

	return v, nil
}

func decodeValue(dec *jsontext.Decoder) (deckscout.Value, error) {
	tok, err := dec.ReadToken()
	if err != nil {
		return nil, err
	}

	switch tok.Kind() {
	case '{':
		return decodeObject(dec)
	case '[':
		return decodeArray(dec)
	case '"':
		return deckscout.String(tok.String()), nil
	case '0':
		return deckscout.Number(tok.String()), nil
	case 't':
		return deckscout.Bool(true), nil
	case 'f':
		return deckscout.Bool(false), nil
	case 'n':
		return deckscout.Null{}, nil
	}
	return nil, errors.New("unexpected token")
}

func decodeObject(dec *jsontext.Decoder) (deckscout.Value, error) {
	obj := deckscout.Object{}
	index := make(map[string]int)
	for {
		if dec.PeekKind() == '}' {
			if _, err := dec.ReadToken(); err != nil {
				return nil, err
			}
			return obj, nil
		}

		name, err := dec.ReadToken()
		if err != nil {
			return nil, err
		}
		key := name.String()

		v, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}

		if i, ok := index[key]; ok {
			obj[i].Value = v
			continue
		}
		index[key] = len(obj)
		obj = append(obj, deckscout.Member{Key: key, Value: v})
	}
}

func decodeArray(dec *jsontext.Decoder) (deckscout.Value, error) {
	arr := deckscout.Array{}
	for {
		if dec.PeekKind() == ']' {
			if _, err := dec.ReadToken(); err != nil {
				return nil, err
			}
			return arr, nil
		}

		v, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		arr = append(arr, v)
	}
}

// DecodeEmbedded decodes the content of an embedded data script. HTML
// character references in raw are resolved before parsing.
func DecodeEmbedded(raw string) (*deckscout.EmbeddedData, error) {
	v, err := Decode(html.UnescapeString(raw))
	if err != nil {
		return nil, deckscout.Errorf(deckscout.EINVALID, "%s payload (%d characters): %s",
			deckscout.EmbeddedDataID, len(raw), deckscout.ErrorMessage(err))
	}
	return &deckscout.EmbeddedData{Raw: raw, Value: v}, nil
}
