package docs

import (
	"strings"
	"testing"
)

func TestAll_TopicsAreComplete(t *testing.T) {
	topics := All()
	if len(topics) == 0 {
		t.Fatal("no topics registered")
	}
	seen := map[string]bool{}
	for _, topic := range topics {
		if topic.Name == "" || topic.Title == "" || topic.Summary == "" || topic.Content == "" {
			t.Fatalf("incomplete topic: %+v", topic)
		}
		if seen[topic.Name] {
			t.Fatalf("duplicate topic name %q", topic.Name)
		}
		seen[topic.Name] = true
	}
	for _, want := range []string{"config", "templates", "deck", "archive"} {
		if !seen[want] {
			t.Fatalf("missing topic %q", want)
		}
	}
}

func TestGet_KnownTopic(t *testing.T) {
	topic, err := Get("config")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if topic.Name != "config" {
		t.Fatalf("wrong topic returned: %q", topic.Name)
	}
}

func TestGet_UnknownTopicHint(t *testing.T) {
	_, err := Get("nope")
	if err == nil {
		t.Fatal("expected error for unknown topic")
	}
	if !strings.Contains(err.Error(), "packgen docs") {
		t.Fatalf("error should hint at the docs command: %v", err)
	}
}
