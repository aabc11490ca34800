// Package rest implements the domain repositories against the upstream HR API.
package rest

import (
	"context"
	"net/url"
	"strings"
)

// Client is the part of backend.Client the repositories use.
type Client interface {
	List(ctx context.Context, path string, query url.Values, out any, keys ...string) error
	Post(ctx context.Context, path string, body any) error
	Put(ctx context.Context, path string, body any) error
	Delete(ctx context.Context, path string) error
}

// idOf prefers "id" and falls back to a document-store "_id".
func idOf(id, docID string) string {
	if strings.TrimSpace(id) != "" {
		return id
	}
	return docID
}

func itemPath(base, id string, rest ...string) string {
	p := base + "/" + url.PathEscape(id)
	for _, r := range rest {
		p += "/" + r
	}
	return p
}
