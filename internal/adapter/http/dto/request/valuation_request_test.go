package request

import (
	"encoding/base64"
	"errors"
	"testing"
)

var pngHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0}

func TestValuationRequest_ResolveSessionID(t *testing.T) {
	r := ValuationRequest{SessionID: " body "}
	if got := r.ResolveSessionID(" header "); got != "header" {
		t.Fatalf("header should win, got %q", got)
	}
	if got := r.ResolveSessionID(""); got != "body" {
		t.Fatalf("expected body session, got %q", got)
	}
}

func TestValuationRequest_ResolveImage(t *testing.T) {
	encoded := base64.StdEncoding.EncodeToString(pngHeader)

	t.Run("no photos", func(t *testing.T) {
		img, err := ValuationRequest{}.ResolveImage(3, 1024)
		if err != nil || img != nil {
			t.Fatalf("expected no image, got %+v err=%v", img, err)
		}
	})

	t.Run("data url", func(t *testing.T) {
		img, err := ValuationRequest{Images: []string{"data:image/jpeg;base64," + encoded}}.ResolveImage(3, 1024)
		if err != nil || img == nil || img.MIMEType != "image/jpeg" || len(img.Data) != len(pngHeader) {
			t.Fatalf("unexpected image %+v err=%v", img, err)
		}
	})

	t.Run("bare base64 is sniffed", func(t *testing.T) {
		img, err := ValuationRequest{Images: []string{encoded}}.ResolveImage(3, 1024)
		if err != nil || img.MIMEType != "image/png" {
			t.Fatalf("unexpected image %+v err=%v", img, err)
		}
	})

	t.Run("only first photo used", func(t *testing.T) {
		img, err := ValuationRequest{Images: []string{encoded, "garbage", "garbage"}}.ResolveImage(3, 1024)
		if err != nil || img == nil {
			t.Fatalf("expected first image, got err=%v", err)
		}
	})

	cases := []struct {
		name   string
		images []string
		max    int
		want   error
	}{
		{"too many photos", []string{encoded, encoded, encoded, encoded}, 1024, ErrTooManyPhotos},
		{"not base64", []string{"!!!"}, 1024, ErrInvalidImage},
		{"not an image", []string{base64.StdEncoding.EncodeToString([]byte("hello world"))}, 1024, ErrInvalidImage},
		{"data url without base64", []string{"data:image/png," + encoded}, 1024, ErrInvalidImage},
		{"too large", []string{encoded}, 4, ErrImageTooLarge},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := (ValuationRequest{Images: tc.images}).ResolveImage(3, tc.max); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}
