package queue

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestHandleMessageAppendsLogLine(t *testing.T) {
	t.Chdir(t.TempDir())

	ev := ReclamationSubmittedEvent{
		ReclamationID: 7,
		Reference:     "3f6c1c1e-9c1c-4e38-9f44-2f1f0c2f9a11",
		RoomNumber:    "204",
		Service:       "plomberie",
		Urgency:       "HIGH",
		Description:   "fuite sous le lavabo",
		HasPhoto:      true,
		SubmittedAt:   "2026-09-01T10:00:00Z",
	}
	body, err := json.Marshal(ev)
	if err != nil {
		t.Fatalf("marshal event: %v", err)
	}

	if err := handleMessage(body); err != nil {
		t.Fatalf("handleMessage: %v", err)
	}

	data, err := os.ReadFile(filepath.Join("logs", "reclamations.log"))
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	line := string(data)
	for _, want := range []string{"id=7", "room=204", `service="plomberie"`, "urgency=HIGH", "photo=yes", ev.Reference} {
		if !strings.Contains(line, want) {
			t.Errorf("log line missing %q: %s", want, line)
		}
	}

	// A second message appends rather than truncates.
	ev.ReclamationID = 8
	ev.HasPhoto = false
	body, _ = json.Marshal(ev)
	if err := handleMessage(body); err != nil {
		t.Fatalf("handleMessage second call: %v", err)
	}
	data, _ = os.ReadFile(filepath.Join("logs", "reclamations.log"))
	if got := strings.Count(string(data), "\n"); got != 2 {
		t.Fatalf("expected 2 log lines, got %d", got)
	}
	if !strings.Contains(string(data), "photo=no") {
		t.Error("second line missing photo=no")
	}
}

func TestHandleMessageRejectsMalformedBody(t *testing.T) {
	t.Chdir(t.TempDir())
	if err := handleMessage([]byte("{not json")); err == nil {
		t.Fatal("expected error for malformed body")
	}
	if _, err := os.Stat("logs"); !os.IsNotExist(err) {
		t.Error("malformed message must not create the log directory")
	}
}

func TestEventWireFieldNames(t *testing.T) {
	body, err := json.Marshal(ReclamationSubmittedEvent{ReclamationID: 1, HasPhoto: true})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var raw map[string]any
	if err := json.Unmarshal(body, &raw); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	for _, key := range []string{"reclamation_id", "reference", "room_number", "service", "urgency", "has_photo", "submitted_at"} {
		if _, ok := raw[key]; !ok {
			t.Errorf("wire payload missing key %q", key)
		}
	}
	if _, ok := raw["description"]; ok {
		t.Error("empty description must be omitted from the payload")
	}
}
