// Package body ingests bounded JSON request bodies.
package body

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"strings"

	"chatbot-tutor-service/apperror"
)

const chunkSize = 32 * 1024

var (
	ErrPayloadTooLarge = errors.New("payload too large")
	ErrInvalidBody     = errors.New("invalid JSON body")
)

// ReadJSON accumulates r until EOF and parses it as a JSON object.
// Reading stops as soon as more than limit bytes have been received.
// An empty stream yields an empty object.
func ReadJSON(r io.Reader, limit int64) (map[string]any, error) {
	var buf bytes.Buffer
	chunk := make([]byte, chunkSize)

	for {
		n, err := r.Read(chunk)
		if n > 0 {
			buf.Write(chunk[:n])
			if int64(buf.Len()) > limit {
				return nil, apperror.Wrap(apperror.Validation, "Request body is too large.", ErrPayloadTooLarge)
			}
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, apperror.Wrap(apperror.Internal, "", err)
		}
	}

	doc := map[string]any{}
	if buf.Len() == 0 {
		return doc, nil
	}

	var parsed any
	if err := json.Unmarshal(buf.Bytes(), &parsed); err != nil {
		return nil, apperror.Wrap(apperror.Validation, "Invalid request body.", errors.Join(ErrInvalidBody, err))
	}
	// Valid JSON that is not an object carries no fields.
	if obj, ok := parsed.(map[string]any); ok {
		doc = obj
	}
	return doc, nil
}

// Question extracts the trimmed question field from a parsed body.
func Question(doc map[string]any) (string, error) {
	raw, _ := doc["question"].(string)
	question := strings.TrimSpace(raw)
	if question == "" {
		return "", apperror.New(apperror.Validation, "Question is required.")
	}
	return question, nil
}
