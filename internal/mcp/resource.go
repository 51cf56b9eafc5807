package mcp

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
)

// Document: https://modelcontextprotocol.io/docs/concepts/resources

const (
	// Client => Server
	MethodResourcesList        = "resources/list"
	MethodResourcesRead        = "resources/read"
	MethodResourcesSubscribe   = "resources/subscribe"
	MethodResourcesUnsubscribe = "resources/unsubscribe"

	// Server => Client
	NotificationResourcesUpdate = "resources/update"
)

// Resource
//
//	{
//		uri: string;           // Unique identifier for the resource
//		name: string;          // Human-readable name
//		description?: string;  // Optional description
//		mimeType?: string;     // Optional MIME type
//	}
type Resource struct {
	URI         string `json:"uri"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	MimeType    string `json:"mimeType,omitempty"`
}

type ResourcesListResponse struct {
	Resources []Resource `json:"resources"`
	Meta      M          `json:"_meta,omitempty"`
}

type ResourcesReadRequest struct {
	URI string `json:"uri"`
}

type ResourcesReadResponse struct {
	Contents []ResourceContent `json:"contents"`
}

type ResourceContent struct {
	URI      string `json:"uri"`
	MimeType string `json:"mimeType,omitempty"`
	Text     string `json:"text,omitempty"`
}

type ResourcesSubscribeRequest struct {
	URI       string `json:"uri"`
	SessionID string `json:"sessionId"`
}

type ResourceUpdateParams struct {
	URI        string `json:"uri"`
	UpdateType string `json:"updateType"`
	Timestamp  string `json:"timestamp"`
}

// ReadFunc produces the resource's content on demand from the backing
// store. The registry caches nothing.
type ReadFunc func() (string, error)

type resourceEntry struct {
	desc Resource
	read ReadFunc
}

// ResourceRegistry is the catalog of addressable resources. The catalog
// is fixed after startup; reads dispatch on a closed URI set and change
// notifications fan out to subscribed sessions.
type ResourceRegistry struct {
	sessions *SessionStore
	order    []string
	entries  map[string]resourceEntry
}

func NewResourceRegistry(sessions *SessionStore) *ResourceRegistry {
	return &ResourceRegistry{
		sessions: sessions,
		entries:  make(map[string]resourceEntry),
	}
}

// Register adds a resource and its reader. Startup only.
func (r *ResourceRegistry) Register(desc Resource, read ReadFunc) {
	if _, ok := r.entries[desc.URI]; !ok {
		r.order = append(r.order, desc.URI)
	}
	r.entries[desc.URI] = resourceEntry{desc: desc, read: read}
}

// List returns descriptors in catalog order.
func (r *ResourceRegistry) List() []Resource {
	resources := make([]Resource, 0, len(r.order))
	for _, uri := range r.order {
		resources = append(resources, r.entries[uri].desc)
	}
	return resources
}

// Read produces the resource content. Unknown URIs and unavailable
// backing stores both surface as plain errors; the router maps them to
// InternalError since the protocol has no dedicated code for either.
func (r *ResourceRegistry) Read(uri string) (*ResourcesReadResponse, error) {
	entry, ok := r.entries[uri]
	if !ok {
		return nil, fmt.Errorf("resource '%s' not found", uri)
	}
	text, err := entry.read()
	if err != nil {
		return nil, err
	}
	return &ResourcesReadResponse{
		Contents: []ResourceContent{
			{URI: uri, MimeType: entry.desc.MimeType, Text: text},
		},
	}, nil
}

// Subscribe and Unsubscribe delegate to the session store and always
// succeed: subscription is advisory, the URI need not exist.
func (r *ResourceRegistry) Subscribe(sessionID, uri string) {
	r.sessions.Subscribe(sessionID, uri)
}

func (r *ResourceRegistry) Unsubscribe(sessionID, uri string) {
	r.sessions.Unsubscribe(sessionID, uri)
}

// Notify pushes a resources/update notification to every session
// subscribed to uri. Delivery is best-effort and at-most-once: a failed
// or disconnected recipient is skipped, never retried. Returns the
// number of sessions the notification was written to.
func (r *ResourceRegistry) Notify(uri, updateType string) int {
	note := NewNotification(NotificationResourcesUpdate, ResourceUpdateParams{
		URI:        uri,
		UpdateType: updateType,
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
	})

	delivered := 0
	r.sessions.Each(func(s *Session) {
		if !s.Subscribed(uri) {
			return
		}
		if err := s.Send(note); err != nil {
			log.Debug().Err(err).Str("session", s.ID).Str("uri", uri).
				Msg("drop resource notification")
			return
		}
		delivered++
	})
	return delivered
}
