package rest

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"
	"strings"
)

// RequestBody is the payload of a request sent by Client
type RequestBody interface {
	encode() (io.Reader, string, error)
}

type jsonBody struct {
	value interface{}
}

// JSON creates a RequestBody which encodes value as JSON
func JSON(value interface{}) RequestBody {
	return jsonBody{value: value}
}

func (b jsonBody) encode() (io.Reader, string, error) {
	raw, err := json.Marshal(b.value)
	if err != nil {
		return nil, "", err
	}
	return bytes.NewReader(raw), "application/json", nil
}

type formField struct {
	name  string
	value string
}

type formFile struct {
	field       string
	fileName    string
	contentType string
	data        []byte
}

// MultipartBody is a multipart/form-data RequestBody.
// Fields keep the order they were added in and may repeat
type MultipartBody struct {
	fields []formField
	files  []formFile
}

// NewMultipartBody creates an empty MultipartBody
func NewMultipartBody() *MultipartBody {
	return &MultipartBody{}
}

// AddField appends a text field
func (b *MultipartBody) AddField(name, value string) *MultipartBody {
	b.fields = append(b.fields, formField{name: name, value: value})
	return b
}

// AddFile appends a file part
func (b *MultipartBody) AddFile(field, fileName, contentType string, data []byte) *MultipartBody {
	b.files = append(b.files, formFile{
		field:       field,
		fileName:    fileName,
		contentType: contentType,
		data:        data,
	})
	return b
}

func (b *MultipartBody) encode() (io.Reader, string, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	for _, field := range b.fields {
		if err := writer.WriteField(field.name, field.value); err != nil {
			return nil, "", err
		}
	}

	for _, file := range b.files {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
			escapeQuotes(file.field), escapeQuotes(file.fileName)))
		contentType := file.contentType
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		header.Set("Content-Type", contentType)

		part, err := writer.CreatePart(header)
		if err != nil {
			return nil, "", err
		}
		if _, err := part.Write(file.data); err != nil {
			return nil, "", err
		}
	}

	if err := writer.Close(); err != nil {
		return nil, "", err
	}

	return &buf, writer.FormDataContentType(), nil
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func escapeQuotes(s string) string {
	return quoteEscaper.Replace(s)
}
