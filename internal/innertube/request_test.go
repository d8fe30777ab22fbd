package innertube

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestNewPlayerRequest_Android(t *testing.T) {
	req := NewPlayerRequest(AndroidClient, "dQw4w9WgXcQ")
	if req.VideoID != "dQw4w9WgXcQ" {
		t.Fatalf("VideoID = %q, want dQw4w9WgXcQ", req.VideoID)
	}
	if req.Context.Client.ClientName != "ANDROID" {
		t.Fatalf("ClientName = %q, want ANDROID", req.Context.Client.ClientName)
	}
	if req.Context.Client.AndroidSdkVersion == 0 {
		t.Fatal("AndroidSdkVersion not set for Android profile")
	}
	if !req.Context.Request.UseSsl {
		t.Fatal("UseSsl = false, want true")
	}
}

func TestNewPlayerRequest_JSONShape(t *testing.T) {
	req := NewPlayerRequest(WebClient, "abc123def45")
	raw, err := json.Marshal(req)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	body := string(raw)
	for _, want := range []string{`"videoId":"abc123def45"`, `"clientName":"WEB"`, `"hl":"en"`} {
		if !strings.Contains(body, want) {
			t.Fatalf("marshaled request missing %s: %s", want, body)
		}
	}
	if strings.Contains(body, "androidSdkVersion") {
		t.Fatalf("web profile should omit androidSdkVersion: %s", body)
	}
}
