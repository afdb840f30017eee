package domain

import (
	"net/url"
	"strings"
)

// ImageKind discriminates the forms an image reference can take.
type ImageKind int

const (
	// ImageNone is an absent or unusable reference.
	ImageNone ImageKind = iota
	// ImageLocalPath is a path served from this origin.
	ImageLocalPath
	// ImageRemoteURL is an absolute http(s) URL proxied through /api/img.
	ImageRemoteURL
	// ImageStaticAsset is a bundled asset exposing its own src path.
	ImageStaticAsset
)

// ImageRef is a classified image reference. Stored references arrive in
// several shapes (absolute URL, relative path, asset object); ClassifyImage
// folds them into one variant resolved by Resolve.
type ImageRef struct {
	Kind ImageKind
	Path string
}

// StaticAsset is a bundled image whose display path is known up front.
type StaticAsset struct {
	Src string `json:"src"`
}

// ClassifyImage discriminates a raw image reference into an ImageRef.
// Unrecognised values classify as ImageNone.
func ClassifyImage(ref any) ImageRef {
	switch v := ref.(type) {
	case nil:
		return ImageRef{Kind: ImageNone}
	case string:
		if v == "" {
			return ImageRef{Kind: ImageNone}
		}
		if strings.HasPrefix(v, "http") {
			return ImageRef{Kind: ImageRemoteURL, Path: v}
		}
		return ImageRef{Kind: ImageLocalPath, Path: v}
	case StaticAsset:
		return ImageRef{Kind: ImageStaticAsset, Path: v.Src}
	case *StaticAsset:
		if v == nil {
			return ImageRef{Kind: ImageNone}
		}
		return ImageRef{Kind: ImageStaticAsset, Path: v.Src}
	default:
		return ImageRef{Kind: ImageNone}
	}
}

// Resolve maps the reference to a displayable same-origin path. Remote URLs
// are routed through the image proxy so the browser never fetches
// cross-origin.
func (r ImageRef) Resolve() string {
	switch r.Kind {
	case ImageLocalPath:
		if strings.HasPrefix(r.Path, "/") {
			return r.Path
		}
		return "/" + r.Path
	case ImageRemoteURL:
		return "/api/img?u=" + url.QueryEscape(r.Path)
	case ImageStaticAsset:
		return r.Path
	default:
		return ""
	}
}

// ResolveSrc classifies and resolves in one step.
func ResolveSrc(ref any) string {
	return ClassifyImage(ref).Resolve()
}
