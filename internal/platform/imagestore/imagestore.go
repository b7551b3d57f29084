// Copyright (c) 2026 Gallerim. All rights reserved.
// Author: lim.soyoung.dev@gmail.com

/*
Package imagestore is the boundary to the external image pipeline.

Uploading, optimization, and byte storage happen outside this service; the API
only receives an opaque image key at artwork-creation time and resolves it to a
public URL when rendering responses. The key format is owned by the pipeline —
this package never inspects it beyond non-emptiness.
*/
package imagestore

import "strings"

// Resolver turns opaque image keys into publicly servable URLs.
type Resolver interface {
	URL(imageKey string) string
}

// CDNResolver resolves keys against a fixed delivery base URL.
type CDNResolver struct {
	baseURL string
}

// NewCDNResolver constructs a [CDNResolver]. A trailing slash on baseURL is
// tolerated.
func NewCDNResolver(baseURL string) *CDNResolver {
	return &CDNResolver{baseURL: strings.TrimRight(baseURL, "/")}
}

// URL returns the delivery URL for an image key, or "" for an empty key.
func (resolver *CDNResolver) URL(imageKey string) string {
	if imageKey == "" {
		return ""
	}
	return resolver.baseURL + "/" + strings.TrimLeft(imageKey, "/")
}
