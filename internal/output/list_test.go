package output

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/portslayer/portslayer/pkg/model"
)

func sampleRecords() []model.PortRecord {
	return []model.PortRecord{
		{
			Protocol:  model.ProtocolTCP,
			Port:      8080,
			LocalAddr: "0.0.0.0",
			Owner:     model.Owner{PID: 12345, Name: "node"},
		},
		{
			Protocol:  model.ProtocolUDP,
			Port:      5353,
			LocalAddr: "[::]",
			Owner:     model.UnknownOwner(),
		},
	}
}

func TestRenderList(t *testing.T) {
	var sb strings.Builder
	RenderList(&sb, sampleRecords(), false)
	out := sb.String()

	for _, want := range []string{"PROTO", "PORT", "ADDRESS", "PROCESS"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing header %q:\n%s", want, out)
		}
	}
	if !strings.Contains(out, "TCP") || !strings.Contains(out, "8080") {
		t.Errorf("output missing tcp record:\n%s", out)
	}
	if !strings.Contains(out, "12345") || !strings.Contains(out, "node") {
		t.Errorf("output missing resolved owner:\n%s", out)
	}
	if !strings.Contains(out, model.UnknownProcessName) {
		t.Errorf("output missing unknown placeholder:\n%s", out)
	}
	if !strings.Contains(out, "2 ports") {
		t.Errorf("output missing count footer:\n%s", out)
	}
	if strings.Contains(out, "\033[") {
		t.Errorf("color escapes present with color disabled:\n%s", out)
	}
}

func TestRenderListUnknownOwnerPIDDash(t *testing.T) {
	var sb strings.Builder
	RenderList(&sb, sampleRecords()[1:], false)

	lines := strings.Split(strings.TrimSpace(sb.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header, 1 record, footer; got %d lines", len(lines))
	}
	if !strings.Contains(lines[1], " - ") && !strings.HasSuffix(strings.Fields(lines[1])[3], "-") {
		t.Errorf("unknown owner should render PID as dash: %q", lines[1])
	}
}

func TestRenderListEmpty(t *testing.T) {
	var sb strings.Builder
	RenderList(&sb, nil, false)
	if got := sb.String(); got != "No open ports found.\n" {
		t.Errorf("empty list output = %q", got)
	}
}

func TestRenderListColor(t *testing.T) {
	var sb strings.Builder
	RenderList(&sb, sampleRecords(), true)
	out := sb.String()

	if !strings.Contains(out, colorGreen) {
		t.Error("resolved owner not colored green")
	}
	if !strings.Contains(out, colorYellow) {
		t.Error("unknown owner not colored yellow")
	}
}

func TestToJSON(t *testing.T) {
	got, err := ToJSON(sampleRecords())
	if err != nil {
		t.Fatalf("ToJSON: %v", err)
	}

	var decoded []map[string]any
	if err := json.Unmarshal([]byte(got), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(decoded) != 2 {
		t.Fatalf("expected 2 records, got %d", len(decoded))
	}

	first := decoded[0]
	if first["protocol"] != "tcp" || first["port"] != float64(8080) {
		t.Errorf("first record = %v", first)
	}
	if first["local_address"] != "0.0.0.0" {
		t.Errorf("local_address = %v", first["local_address"])
	}
	owner, ok := first["owner"].(map[string]any)
	if !ok {
		t.Fatalf("owner field = %v", first["owner"])
	}
	if owner["process_id"] != float64(12345) || owner["process_name"] != "node" {
		t.Errorf("owner = %v", owner)
	}
}

func TestToJSONEmpty(t *testing.T) {
	got, err := ToJSON(nil)
	if err != nil {
		t.Fatalf("ToJSON: %v", err)
	}
	if strings.TrimSpace(got) != "[]" {
		t.Errorf("nil records = %q, want empty array", got)
	}
}
