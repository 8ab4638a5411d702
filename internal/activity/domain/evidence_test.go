package domain

import (
	"encoding/base64"
	"errors"
	"strings"
	"testing"
)

func dataURL(mime string, raw []byte) string {
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(raw)
}

func TestValidate_TextEvidence(t *testing.T) {
	ev := &Evidence{Type: EvidenceText, Content: "merged PR #42"}
	if err := ev.Validate(); err != nil {
		t.Fatalf("Expected valid text evidence, got %v", err)
	}
}

func TestValidate_BlankText(t *testing.T) {
	ev := &Evidence{Type: EvidenceText, Content: "   \n\t "}
	if err := ev.Validate(); !errors.Is(err, ErrEvidenceEmpty) {
		t.Fatalf("Expected ErrEvidenceEmpty, got %v", err)
	}
}

func TestValidate_JPEGFile(t *testing.T) {
	ev := &Evidence{
		Type:     EvidenceFile,
		Content:  dataURL("image/jpeg", []byte("fake jpeg bytes")),
		FileName: "screenshot.jpg",
	}
	if err := ev.Validate(); err != nil {
		t.Fatalf("Expected valid JPEG evidence, got %v", err)
	}
}

func TestValidate_PDFFile(t *testing.T) {
	ev := &Evidence{
		Type:     EvidenceFile,
		Content:  dataURL("application/pdf", []byte("%PDF-1.4 fake")),
		FileName: "report.pdf",
	}
	if err := ev.Validate(); err != nil {
		t.Fatalf("Expected valid PDF evidence, got %v", err)
	}
}

func TestValidate_DisallowedMIME(t *testing.T) {
	ev := &Evidence{
		Type:     EvidenceFile,
		Content:  dataURL("image/png", []byte("fake png bytes")),
		FileName: "screenshot.png",
	}
	if err := ev.Validate(); !errors.Is(err, ErrEvidenceInvalidType) {
		t.Fatalf("Expected ErrEvidenceInvalidType, got %v", err)
	}
}

func TestValidate_OversizedFile(t *testing.T) {
	big := make([]byte, MaxEvidenceFileBytes+1)
	ev := &Evidence{
		Type:     EvidenceFile,
		Content:  dataURL("application/pdf", big),
		FileName: "huge.pdf",
	}
	if err := ev.Validate(); !errors.Is(err, ErrEvidenceTooLarge) {
		t.Fatalf("Expected ErrEvidenceTooLarge, got %v", err)
	}
}

func TestValidate_FileAtSizeLimit(t *testing.T) {
	exact := make([]byte, MaxEvidenceFileBytes)
	ev := &Evidence{
		Type:     EvidenceFile,
		Content:  dataURL("image/jpeg", exact),
		FileName: "max.jpg",
	}
	if err := ev.Validate(); err != nil {
		t.Fatalf("Expected 5MB file to pass, got %v", err)
	}
}

func TestValidate_MalformedDataURL(t *testing.T) {
	cases := []string{
		"not a data url",
		"data:image/jpeg,missing-base64-marker",
		"data:;base64,aGVsbG8=",
		"data:image/jpegnocomma",
	}
	for _, content := range cases {
		ev := &Evidence{Type: EvidenceFile, Content: content}
		if err := ev.Validate(); !errors.Is(err, ErrEvidenceMalformed) {
			t.Errorf("Validate(%q) = %v, want ErrEvidenceMalformed", content, err)
		}
	}
}

func TestValidate_InvalidBase64Payload(t *testing.T) {
	ev := &Evidence{
		Type:    EvidenceFile,
		Content: "data:image/jpeg;base64," + strings.Repeat("!", 16),
	}
	if err := ev.Validate(); !errors.Is(err, ErrEvidenceMalformed) {
		t.Fatalf("Expected ErrEvidenceMalformed, got %v", err)
	}
}
