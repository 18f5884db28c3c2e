package models

import (
	"encoding/json"
	"testing"
	"time"
)

func TestJSONTimeUnmarshal(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"rfc3339", `"2026-08-29T15:32:25Z"`, false},
		{"rfc3339 with nanos", `"2026-08-29T15:32:25.181226Z"`, false},
		{"no timezone", `"2026-08-29T15:32:25"`, false},
		{"garbage", `"yesterday"`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var jt JSONTime
			err := json.Unmarshal([]byte(tt.input), &jt)
			if (err != nil) != tt.wantErr {
				t.Errorf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && jt.Time().IsZero() {
				t.Error("parsed time is zero")
			}
		})
	}
}

func TestJSONTimeMarshalRoundTrip(t *testing.T) {
	in := JSONTime(time.Date(2026, 8, 29, 15, 32, 25, 0, time.UTC))
	b, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `"2026-08-29T15:32:25Z"` {
		t.Errorf("marshal = %s", b)
	}

	var out JSONTime
	if err := json.Unmarshal(b, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !out.Time().Equal(in.Time()) {
		t.Errorf("round trip mismatch: %v vs %v", out.Time(), in.Time())
	}
}
