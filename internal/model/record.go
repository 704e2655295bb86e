package model

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// OutputRecord is the externally visible result for one document.
type OutputRecord struct {
	General  FieldSet
	Domain   FieldSet
	FileName string
	Type     DocumentType

	// Key order used when encoding. Nil falls back to the built-in vocabulary.
	GeneralOrder []Key
	DomainOrder  []Key
}

// DocumentID returns the record's document id.
func (r OutputRecord) DocumentID() string {
	return r.General.String(KeyDocumentID)
}

// MarshalJSON encodes the record as {"file_name", "general", "<type>"} keeping field order.
func (r OutputRecord) MarshalJSON() ([]byte, error) {
	generalOrder := r.GeneralOrder
	if generalOrder == nil {
		generalOrder = GeneralKeys
	}
	domainOrder := r.DomainOrder
	if domainOrder == nil {
		domainOrder = DomainKeys(r.Type)
	}

	docType := r.Type
	if docType == "" {
		docType = DocumentTypeUnknown
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	if err := writeMember(&buf, "file_name", r.FileName); err != nil {
		return nil, err
	}
	buf.WriteByte(',')
	if err := writeGroup(&buf, "general", r.General, generalOrder); err != nil {
		return nil, err
	}
	buf.WriteByte(',')
	if err := writeGroup(&buf, string(docType), r.Domain, domainOrder); err != nil {
		return nil, err
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a record written by MarshalJSON.
func (r *OutputRecord) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	out := OutputRecord{Type: DocumentTypeUnknown}
	if v, ok := raw["file_name"]; ok {
		if err := json.Unmarshal(v, &out.FileName); err != nil {
			return fmt.Errorf("file_name: %w", err)
		}
	}

	general, err := decodeGroup(raw["general"])
	if err != nil {
		return fmt.Errorf("general: %w", err)
	}
	out.General = general

	for name, v := range raw {
		if name == "file_name" || name == "general" {
			continue
		}
		domain, err := decodeGroup(v)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		out.Type = DocumentType(name)
		out.Domain = domain
		break
	}
	if out.Domain == nil {
		out.Domain = FieldSet{}
	}

	*r = out
	return nil
}

func writeMember(buf *bytes.Buffer, name string, v any) error {
	k, err := json.Marshal(name)
	if err != nil {
		return err
	}
	val, err := json.Marshal(v)
	if err != nil {
		return err
	}
	buf.Write(k)
	buf.WriteByte(':')
	buf.Write(val)
	return nil
}

func writeGroup(buf *bytes.Buffer, name string, fields FieldSet, order []Key) error {
	k, err := json.Marshal(name)
	if err != nil {
		return err
	}
	buf.Write(k)
	buf.WriteString(":{")
	first := true
	for _, key := range order {
		if !fields.Has(key) {
			continue
		}
		if !first {
			buf.WriteByte(',')
		}
		first = false
		if err := writeMember(buf, string(key), fields[key]); err != nil {
			return err
		}
	}
	buf.WriteByte('}')
	return nil
}

func decodeGroup(data json.RawMessage) (FieldSet, error) {
	out := FieldSet{}
	if len(data) == 0 {
		return out, nil
	}
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	for k, v := range raw {
		switch t := v.(type) {
		case string:
			out.SetString(Key(k), t)
		case float64:
			out.SetInt(Key(k), int(t))
		}
	}
	return out, nil
}
