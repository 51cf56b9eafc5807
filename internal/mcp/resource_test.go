package mcp

import (
	"errors"
	"testing"
)

// recordConn captures pushed messages.
type recordConn struct {
	messages []interface{}
	fail     bool
}

func (c *recordConn) Send(msg interface{}) error {
	if c.fail {
		return errors.New("broken pipe")
	}
	c.messages = append(c.messages, msg)
	return nil
}

func TestResourceRegistryRead(t *testing.T) {
	registry := NewResourceRegistry(NewSessionStore())
	registry.Register(Resource{
		URI:      "mcp://test/data",
		Name:     "Data",
		MimeType: "application/json",
	}, func() (string, error) {
		return `{"ok":true}`, nil
	})

	resp, err := registry.Read("mcp://test/data")
	if err != nil {
		t.Fatal(err)
	}
	if len(resp.Contents) != 1 {
		t.Fatalf("expected 1 content entry, got %d", len(resp.Contents))
	}
	content := resp.Contents[0]
	if content.URI != "mcp://test/data" || content.MimeType != "application/json" {
		t.Errorf("unexpected content envelope: %+v", content)
	}
	if content.Text != `{"ok":true}` {
		t.Errorf("unexpected text: %s", content.Text)
	}
}

func TestResourceRegistryReadUnknown(t *testing.T) {
	registry := NewResourceRegistry(NewSessionStore())

	if _, err := registry.Read("mcp://test/missing"); err == nil {
		t.Error("expected error for unknown uri")
	}
}

func TestResourceRegistryReadUnavailable(t *testing.T) {
	registry := NewResourceRegistry(NewSessionStore())
	registry.Register(Resource{URI: "mcp://test/broken"}, func() (string, error) {
		return "", errors.New("backing store gone")
	})

	if _, err := registry.Read("mcp://test/broken"); err == nil {
		t.Error("expected error from failing reader")
	}
}

func TestResourceRegistryListOrder(t *testing.T) {
	registry := NewResourceRegistry(NewSessionStore())
	registry.Register(Resource{URI: "mcp://test/b"}, nil)
	registry.Register(Resource{URI: "mcp://test/a"}, nil)

	list := registry.List()
	if len(list) != 2 || list[0].URI != "mcp://test/b" || list[1].URI != "mcp://test/a" {
		t.Errorf("expected registration order, got %+v", list)
	}
}

func TestNotifyFanOut(t *testing.T) {
	sessions := NewSessionStore()
	registry := NewResourceRegistry(sessions)

	connA := &recordConn{}
	connB := &recordConn{}
	a := sessions.Create(nil, connA)
	b := sessions.Create(nil, connB)

	registry.Subscribe(a.ID, "mcp://test/data")
	_ = b

	delivered := registry.Notify("mcp://test/data", "updated")
	if delivered != 1 {
		t.Errorf("delivered = %d, want 1", delivered)
	}
	if len(connA.messages) != 1 {
		t.Fatalf("subscriber received %d messages, want 1", len(connA.messages))
	}
	if len(connB.messages) != 0 {
		t.Errorf("non-subscriber must receive nothing, got %d", len(connB.messages))
	}

	note, ok := connA.messages[0].(*Notification)
	if !ok {
		t.Fatalf("unexpected message type %T", connA.messages[0])
	}
	if note.Method != NotificationResourcesUpdate {
		t.Errorf("method = %s, want %s", note.Method, NotificationResourcesUpdate)
	}
	params, ok := note.Params.(ResourceUpdateParams)
	if !ok {
		t.Fatalf("unexpected params type %T", note.Params)
	}
	if params.URI != "mcp://test/data" || params.UpdateType != "updated" || params.Timestamp == "" {
		t.Errorf("unexpected params: %+v", params)
	}
}

func TestNotifySkipsFailedSends(t *testing.T) {
	sessions := NewSessionStore()
	registry := NewResourceRegistry(sessions)

	broken := sessions.Create(nil, &recordConn{fail: true})
	registry.Subscribe(broken.ID, "mcp://test/data")

	if delivered := registry.Notify("mcp://test/data", "updated"); delivered != 0 {
		t.Errorf("delivered = %d, want 0", delivered)
	}
}
