package request

import (
	"encoding/base64"
	"errors"
	"net/http"
	"strings"

	"wetrade/internal/domain/entities"
)

var (
	ErrTooManyPhotos = errors.New("too many photos")
	ErrInvalidImage  = errors.New("invalid image")
	ErrImageTooLarge = errors.New("image too large")
)

// ValuationRequest carries a gadget description and up to a few photos, each a
// data URL ("data:image/jpeg;base64,...") or bare base64. Only the first photo
// is sent for analysis.
type ValuationRequest struct {
	Description string   `json:"description"`
	SessionID   string   `json:"session_id"`
	Images      []string `json:"images"`
}

// ResolveSessionID prefers the X-Session-ID header over the body field.
func (r ValuationRequest) ResolveSessionID(header string) string {
	if v := strings.TrimSpace(header); v != "" {
		return v
	}
	return strings.TrimSpace(r.SessionID)
}

func (r ValuationRequest) ResolveImage(maxPhotos, maxBytes int) (*entities.InlineImage, error) {
	if maxPhotos > 0 && len(r.Images) > maxPhotos {
		return nil, ErrTooManyPhotos
	}
	if len(r.Images) == 0 || strings.TrimSpace(r.Images[0]) == "" {
		return nil, nil
	}
	return decodeImage(strings.TrimSpace(r.Images[0]), maxBytes)
}

func (r ValuationRequest) ToEntity(image *entities.InlineImage) entities.ValuationRequest {
	return entities.ValuationRequest{Description: r.Description, Image: image}
}

func decodeImage(s string, maxBytes int) (*entities.InlineImage, error) {
	mime := ""
	payload := s
	if strings.HasPrefix(s, "data:") {
		header, data, ok := strings.Cut(s, ",")
		if !ok || !strings.HasSuffix(header, ";base64") {
			return nil, ErrInvalidImage
		}
		mime = strings.TrimSuffix(strings.TrimPrefix(header, "data:"), ";base64")
		payload = data
	}
	if maxBytes > 0 && base64.StdEncoding.DecodedLen(len(payload)) > maxBytes+3 {
		return nil, ErrImageTooLarge
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil || len(data) == 0 {
		return nil, ErrInvalidImage
	}
	if maxBytes > 0 && len(data) > maxBytes {
		return nil, ErrImageTooLarge
	}
	if mime == "" {
		mime = http.DetectContentType(data)
	}
	if !strings.HasPrefix(mime, "image/") {
		return nil, ErrInvalidImage
	}
	return &entities.InlineImage{MIMEType: mime, Data: data}, nil
}
