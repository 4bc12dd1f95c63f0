// Package jsondoc implements the settings codec over JSON, preserving field
// order and unknown fields so the document round-trips losslessly.
package jsondoc

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"

	"go.trai.ch/dose/internal/core/domain"
	"go.trai.ch/dose/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.SettingsCodec = (*Codec)(nil)

// Codec is the JSON settings codec. The stdlib decoder's token stream is
// used directly because encoding/json's map decoding would drop field order,
// which the wire contract requires us to keep.
type Codec struct{}

// NewCodec creates a new Codec.
func NewCodec() *Codec {
	return &Codec{}
}

// Decode parses data into a print job. Numbers are kept as json.Number so
// untouched fields re-encode with their original lexical form.
func (c *Codec) Decode(data []byte) (domain.PrintJob, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	value, err := decodeValue(dec)
	if err != nil {
		if errors.Is(err, domain.ErrSettingsDecodeFailed) {
			return domain.PrintJob{}, err
		}
		return domain.PrintJob{}, zerr.Wrap(domain.ErrSettingsDecodeFailed, err.Error())
	}
	if _, err := dec.Token(); err != io.EOF {
		return domain.PrintJob{}, zerr.Wrap(domain.ErrSettingsDecodeFailed, "trailing data after document")
	}

	doc, ok := value.(*domain.Object)
	if !ok {
		return domain.PrintJob{}, zerr.Wrap(domain.ErrSettingsDecodeFailed, "document root is not an object")
	}
	return domain.NewPrintJob(doc), nil
}

// Encode serializes the job compactly, fields in document order.
func (c *Codec) Encode(job domain.PrintJob) ([]byte, error) {
	var buf bytes.Buffer
	if err := encodeValue(&buf, job.Doc()); err != nil {
		return nil, zerr.Wrap(domain.ErrSettingsEncodeFailed, err.Error())
	}
	return buf.Bytes(), nil
}

func decodeValue(dec *json.Decoder) (domain.Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	return decodeFromToken(dec, tok)
}

func decodeFromToken(dec *json.Decoder, tok json.Token) (domain.Value, error) {
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return decodeObject(dec)
		case '[':
			return decodeArray(dec)
		default:
			// Closing delimiters are consumed by decodeObject/decodeArray.
			return nil, zerr.With(zerr.Wrap(domain.ErrSettingsDecodeFailed, "unexpected delimiter"), "token", string(t))
		}
	default:
		// string, json.Number, bool, or nil.
		return domain.Value(t), nil
	}
}

func decodeObject(dec *json.Decoder) (*domain.Object, error) {
	obj := domain.NewObject()
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, zerr.Wrap(domain.ErrSettingsDecodeFailed, "object key is not a string")
		}
		value, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		obj.Set(key, value)
	}
	// Consume the closing '}'.
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return obj, nil
}

func decodeArray(dec *json.Decoder) ([]domain.Value, error) {
	items := []domain.Value{}
	for dec.More() {
		value, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		items = append(items, value)
	}
	// Consume the closing ']'.
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return items, nil
}

func encodeValue(buf *bytes.Buffer, v domain.Value) error {
	switch t := v.(type) {
	case nil:
		buf.WriteString("null")
	case bool:
		if t {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}
	case json.Number:
		buf.WriteString(t.String())
	case string:
		data, err := json.Marshal(t)
		if err != nil {
			return err
		}
		buf.Write(data)
	case []domain.Value:
		buf.WriteByte('[')
		for i, item := range t {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := encodeValue(buf, item); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case *domain.Object:
		buf.WriteByte('{')
		for i, f := range t.Fields() {
			if i > 0 {
				buf.WriteByte(',')
			}
			key, err := json.Marshal(f.Key)
			if err != nil {
				return err
			}
			buf.Write(key)
			buf.WriteByte(':')
			if err := encodeValue(buf, f.Value); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	default:
		return zerr.Wrap(domain.ErrSettingsEncodeFailed, "unsupported value type")
	}
	return nil
}
