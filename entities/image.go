package entities

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/pkg/errors"
)

const (
	dataURIPrefix    = "data:"
	dataURIBase64    = ";base64"
	defaultImageName = "image"
)

// ErrInvalidDataURI is returned when a data URI cannot be decoded into an image
var ErrInvalidDataURI = errors.New("invalid data URI")

// ImageResource is an employee photo, whether fetched from the employees API or freshly uploaded.
// Both sources are rendered through DataURI
type ImageResource struct {
	FileName    string
	ContentType string
	Data        []byte
}

// NewImageResource creates an ImageResource from raw bytes, detecting their content type.
// When fileName is empty a name is derived from the detected type
func NewImageResource(fileName string, data []byte) *ImageResource {
	mime := mimetype.Detect(data)
	if fileName == "" {
		fileName = defaultImageName + mime.Extension()
	}

	return &ImageResource{
		FileName:    fileName,
		ContentType: mime.String(),
		Data:        data,
	}
}

// ParseDataURI decodes a base64 data URI produced by DataURI
func ParseDataURI(fileName, uri string) (*ImageResource, error) {
	if !strings.HasPrefix(uri, dataURIPrefix) {
		return nil, errors.Wrap(ErrInvalidDataURI, "missing data: prefix")
	}

	commaIdx := strings.Index(uri, ",")
	if commaIdx < 0 {
		return nil, errors.Wrap(ErrInvalidDataURI, "missing data separator")
	}

	header := uri[len(dataURIPrefix):commaIdx]
	if !strings.HasSuffix(header, dataURIBase64) {
		return nil, errors.Wrap(ErrInvalidDataURI, "only base64 data URIs are supported")
	}

	data, err := base64.StdEncoding.DecodeString(uri[commaIdx+1:])
	if err != nil {
		return nil, errors.Wrap(ErrInvalidDataURI, err.Error())
	}
	if len(data) == 0 {
		return nil, errors.Wrap(ErrInvalidDataURI, "empty image")
	}

	image := NewImageResource(fileName, data)
	if contentType := strings.TrimSuffix(header, dataURIBase64); contentType != "" {
		image.ContentType = contentType
	}

	return image, nil
}

// IsEmpty reports whether there is no image data
func (i *ImageResource) IsEmpty() bool {
	return i == nil || len(i.Data) == 0
}

// DataURI returns the image as a base64 data URI
func (i *ImageResource) DataURI() string {
	return dataURIPrefix + i.ContentType + dataURIBase64 + "," + base64.StdEncoding.EncodeToString(i.Data)
}

// bufferJSON covers the shapes a binary field takes in the employees API responses:
// a Node Buffer ({"type":"Buffer","data":[...]}) or a wrapper ({"data":...,"contentType":"..."})
type bufferJSON struct {
	Type        string          `json:"type"`
	Data        json.RawMessage `json:"data"`
	ContentType string          `json:"contentType"`
}

// UnmarshalJSON decodes a Node Buffer, a {data, contentType} wrapper or a base64 string
func (i *ImageResource) UnmarshalJSON(raw []byte) error {
	data, contentType, err := decodeBinary(raw)
	if err != nil {
		return errors.Wrap(err, "could not decode image")
	}

	*i = *NewImageResource("", data)
	if contentType != "" {
		i.ContentType = contentType
	}

	return nil
}

func decodeBinary(raw []byte) ([]byte, string, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, "", nil
	}

	switch raw[0] {
	case '"':
		var encoded string
		if err := json.Unmarshal(raw, &encoded); err != nil {
			return nil, "", err
		}
		data, err := base64.StdEncoding.DecodeString(encoded)
		return data, "", err
	case '[':
		var values []int
		if err := json.Unmarshal(raw, &values); err != nil {
			return nil, "", err
		}
		data := make([]byte, len(values))
		for idx, v := range values {
			if v < 0 || v > 255 {
				return nil, "", errors.Errorf("byte value %d out of range at index %d", v, idx)
			}
			data[idx] = byte(v)
		}
		return data, "", nil
	case '{':
		var buf bufferJSON
		if err := json.Unmarshal(raw, &buf); err != nil {
			return nil, "", err
		}
		data, contentType, err := decodeBinary(buf.Data)
		if err != nil {
			return nil, "", err
		}
		if buf.ContentType != "" {
			contentType = buf.ContentType
		}
		return data, contentType, nil
	default:
		return nil, "", errors.Errorf("unexpected JSON token %q", raw[0])
	}
}
