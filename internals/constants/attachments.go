package constants

import (
	"path/filepath"
	"strings"
)

// Attachment kinds accepted on task submissions.
const (
	AttachmentUnknown = iota
	AttachmentAudio
	AttachmentDocument
	AttachmentPDF
	AttachmentSlides
	AttachmentImage
	AttachmentArchive
)

// DetectAttachmentKind classifies an uploaded attachment URL by extension.
func DetectAttachmentKind(url string) int {
	clean := url
	if i := strings.IndexAny(clean, "?#"); i >= 0 {
		clean = clean[:i]
	}
	switch strings.ToLower(filepath.Ext(clean)) {
	case ".mp3", ".wav", ".m4a":
		return AttachmentAudio
	case ".doc", ".docx", ".odt", ".txt":
		return AttachmentDocument
	case ".pdf":
		return AttachmentPDF
	case ".ppt", ".pptx", ".odp":
		return AttachmentSlides
	case ".png", ".jpg", ".jpeg", ".webp":
		return AttachmentImage
	case ".zip":
		return AttachmentArchive
	default:
		return AttachmentUnknown
	}
}

func AttachmentKindName(kind int) string {
	switch kind {
	case AttachmentAudio:
		return "audio"
	case AttachmentDocument:
		return "document"
	case AttachmentPDF:
		return "pdf"
	case AttachmentSlides:
		return "slides"
	case AttachmentImage:
		return "image"
	case AttachmentArchive:
		return "archive"
	default:
		return "file"
	}
}
