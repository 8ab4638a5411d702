package domain

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
)

// EvidenceType distinguishes a text note from an uploaded file
type EvidenceType string

const (
	EvidenceText EvidenceType = "text"
	EvidenceFile EvidenceType = "file"
)

// Evidence is user-supplied proof attached when completing or pending an activity.
// For files, Content is a base64 data URL produced by reading the selected file.
type Evidence struct {
	Type     EvidenceType `json:"type"`
	Content  string       `json:"content"`
	FileName string       `json:"fileName,omitempty"`
}

// MaxEvidenceFileBytes is the ceiling on the decoded file payload (5MB)
const MaxEvidenceFileBytes = 5 * 1024 * 1024

var allowedEvidenceMIMEs = map[string]bool{
	"image/jpeg":      true,
	"application/pdf": true,
}

var (
	ErrEvidenceEmpty       = errors.New("evidence text must not be empty")
	ErrEvidenceTooLarge    = errors.New("evidence file is too large (max 5MB)")
	ErrEvidenceInvalidType = errors.New("invalid evidence file type, only JPG and PDF are accepted")
	ErrEvidenceMalformed   = errors.New("evidence file payload is not a valid data URL")
)

// Validate checks an evidence payload before it may be attached to an activity.
// Rejected evidence must never cause a status transition.
func (e *Evidence) Validate() error {
	switch e.Type {
	case EvidenceText:
		if strings.TrimSpace(e.Content) == "" {
			return ErrEvidenceEmpty
		}
		return nil

	case EvidenceFile:
		mimeType, payload, err := parseDataURL(e.Content)
		if err != nil {
			return err
		}
		if !allowedEvidenceMIMEs[mimeType] {
			return ErrEvidenceInvalidType
		}
		// Cheap upper bound first, then a real decode to confirm the payload was read intact
		if base64.StdEncoding.DecodedLen(len(payload)) > MaxEvidenceFileBytes+2 {
			return ErrEvidenceTooLarge
		}
		decoded, err := base64.StdEncoding.DecodeString(payload)
		if err != nil {
			return ErrEvidenceMalformed
		}
		if len(decoded) > MaxEvidenceFileBytes {
			return ErrEvidenceTooLarge
		}
		return nil

	default:
		return fmt.Errorf("unknown evidence type %q", e.Type)
	}
}

// parseDataURL splits "data:<mime>;base64,<payload>" into mime and payload
func parseDataURL(s string) (string, string, error) {
	if !strings.HasPrefix(s, "data:") {
		return "", "", ErrEvidenceMalformed
	}
	rest := strings.TrimPrefix(s, "data:")

	sep := strings.Index(rest, ",")
	if sep < 0 {
		return "", "", ErrEvidenceMalformed
	}

	meta := rest[:sep]
	payload := rest[sep+1:]

	if !strings.HasSuffix(meta, ";base64") {
		return "", "", ErrEvidenceMalformed
	}
	mimeType := strings.TrimSuffix(meta, ";base64")
	if mimeType == "" {
		return "", "", ErrEvidenceMalformed
	}

	return mimeType, payload, nil
}
