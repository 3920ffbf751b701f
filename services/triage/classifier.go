package triage

import (
	"strings"

	"homeserv/models"
)

// ClassificationKind identifies how an inbound chat request is handled.
type ClassificationKind int

const (
	KindText ClassificationKind = iota
	KindImage
	KindRejected
)

// Classification is the result of triaging an inbound chat request.
type Classification struct {
	Kind    ClassificationKind
	Message string // set for KindText
	Image   string // set for KindImage
	Reason  error  // set for KindRejected: ErrEmptyMessage or ErrMissingInput
}

// Classify determines whether a chat request is image-bearing, text-only, or
// rejected. An image always wins over the message. A request with neither a
// message nor an image is rejected for missing input; a present-but-blank
// message is rejected as empty.
func Classify(req models.ChatRequest) Classification {
	if req.Image != "" {
		return Classification{Kind: KindImage, Image: req.Image}
	}
	if req.Message == nil {
		return Classification{Kind: KindRejected, Reason: ErrMissingInput}
	}
	if strings.TrimSpace(*req.Message) == "" {
		return Classification{Kind: KindRejected, Reason: ErrEmptyMessage}
	}
	return Classification{Kind: KindText, Message: *req.Message}
}
