package wire

import (
	"bytes"
	"fmt"
	"io"

	xdr "github.com/rasky/go-xdr/xdr2"

	"github.com/marmos91/dittofs-ufs/internal/logger"
	ufserrors "github.com/marmos91/dittofs-ufs/pkg/ufs/errors"
)

// MaxFieldLength bounds every string field on decode.
const MaxFieldLength = 1024

// Encode writes the message in XDR form.
//
// Wire format (RFC 4506 optional-data, in order):
//
//	user:       bool present, [string]
//	group:      bool present, [string]
//	posix_perm: bool present, [string]
func (o *CreateFileOptions) Encode(buf *bytes.Buffer) error {
	enc := xdr.NewEncoder(buf)

	for _, f := range o.fieldRefs() {
		if _, err := enc.EncodeBool(*f.value != nil); err != nil {
			return fmt.Errorf("encode %s discriminant: %w", f.name, err)
		}
		if *f.value == nil {
			continue
		}
		if _, err := enc.EncodeString(**f.value); err != nil {
			return fmt.Errorf("encode %s: %w", f.name, err)
		}
	}
	return nil
}

// Marshal returns the XDR encoding of the message.
func (o *CreateFileOptions) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	if err := o.Encode(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decode reads one message from r. Fields are set exactly as the
// discriminants on the wire say.
func Decode(r io.Reader) (*CreateFileOptions, error) {
	dec := xdr.NewDecoder(r)
	o := &CreateFileOptions{}

	for _, f := range o.fieldRefs() {
		present, _, err := dec.DecodeBool()
		if err != nil {
			return nil, ufserrors.NewMalformedWireError("decode "+f.name+" discriminant", err)
		}
		if !present {
			continue
		}
		s, err := decodeBoundedString(dec, f.name)
		if err != nil {
			return nil, err
		}
		*f.value = &s
	}

	logger.Debug("Decoded create-file options", logger.Fields(o.Fields()))
	return o, nil
}

// Unmarshal decodes a complete message; trailing bytes are rejected.
func Unmarshal(data []byte) (*CreateFileOptions, error) {
	r := bytes.NewReader(data)
	o, err := Decode(r)
	if err != nil {
		return nil, err
	}
	if r.Len() != 0 {
		return nil, ufserrors.NewMalformedWireError(fmt.Sprintf("%d trailing bytes", r.Len()), nil)
	}
	return o, nil
}

func decodeBoundedString(dec *xdr.Decoder, name string) (string, error) {
	length, _, err := dec.DecodeUint()
	if err != nil {
		return "", ufserrors.NewMalformedWireError("decode "+name+" length", err)
	}
	if length > MaxFieldLength {
		return "", ufserrors.NewMalformedWireError(
			fmt.Sprintf("%s length %d exceeds %d", name, length, MaxFieldLength), nil)
	}
	if length == 0 {
		return "", nil
	}
	data, _, err := dec.DecodeFixedOpaque(int32(length))
	if err != nil {
		return "", ufserrors.NewMalformedWireError("decode "+name, err)
	}
	return string(data), nil
}

type fieldRef struct {
	name  string
	value **string
}

// fieldRefs returns the fields in wire order.
func (o *CreateFileOptions) fieldRefs() []fieldRef {
	return []fieldRef{
		{FieldUser, &o.user},
		{FieldGroup, &o.group},
		{FieldPosixPerm, &o.posixPerm},
	}
}
