package imageurl

import (
	"fmt"
	"net/url"
	"path"
	"strings"
)

// Resolver turns an image reference stored on a product into a URL the
// browser can load. ok is false when no image should be rendered.
type Resolver interface {
	URL(ref string) (u string, ok bool)
}

// Sanity resolves asset references of the form image-<id>-<w>x<h>-<ext>
// against the content backend's image CDN. Other non-empty references are
// treated as paths under UploadsBaseURL.
type Sanity struct {
	ProjectID      string
	Dataset        string
	CDNBaseURL     string
	UploadsBaseURL string
}

const defaultCDN = "https://cdn.sanity.io/images"

func (r Sanity) URL(ref string) (string, bool) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", false
	}
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return ref, true
	}
	if strings.HasPrefix(ref, "image-") {
		return r.assetURL(ref)
	}
	return Uploads{BaseURL: r.UploadsBaseURL}.URL(ref)
}

func (r Sanity) assetURL(ref string) (string, bool) {
	if r.ProjectID == "" || r.Dataset == "" {
		return "", false
	}
	// image-<id>-<w>x<h>-<ext>
	parts := strings.Split(strings.TrimPrefix(ref, "image-"), "-")
	if len(parts) != 3 || parts[0] == "" || parts[2] == "" {
		return "", false
	}
	var w, h int
	if _, err := fmt.Sscanf(parts[1], "%dx%d", &w, &h); err != nil || w <= 0 || h <= 0 {
		return "", false
	}
	cdn := r.CDNBaseURL
	if cdn == "" {
		cdn = defaultCDN
	}
	return fmt.Sprintf("%s/%s/%s/%s-%s.%s",
		strings.TrimRight(cdn, "/"), r.ProjectID, r.Dataset, parts[0], parts[1], parts[2]), true
}

// Uploads serves plain file references from a static uploads directory.
type Uploads struct {
	BaseURL string
}

func (r Uploads) URL(ref string) (string, bool) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", false
	}
	base := r.BaseURL
	if base == "" {
		base = "/uploads"
	}
	clean := path.Clean("/" + ref)
	if strings.Contains(base, "://") {
		u, err := url.Parse(base)
		if err != nil {
			return "", false
		}
		u.Path = path.Join(u.Path, clean)
		return u.String(), true
	}
	return path.Join(base, clean), true
}
