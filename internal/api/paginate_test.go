package api

import (
	"net/http/httptest"
	"testing"
)

func TestParseHistoryPage(t *testing.T) {
	const id = "01J9ZQ3X8V6W2KQ4T5N7R8S9AB"
	tests := []struct {
		name      string
		query     string
		wantLimit int
		wantID    string
		wantErr   bool
	}{
		{name: "defaults", query: "", wantLimit: 50},
		{name: "limit", query: "limit=10", wantLimit: 10},
		{name: "capped", query: "limit=1000", wantLimit: 200},
		{name: "zero falls back", query: "limit=0", wantLimit: 50},
		{name: "garbage falls back", query: "limit=abc", wantLimit: 50},
		{name: "cursor", query: "cursor=" + nextCursor(id), wantLimit: 50, wantID: id},
		{name: "cursor not base64", query: "cursor=%25%25", wantErr: true},
		{name: "cursor not an id", query: "cursor=" + nextCursor("hello"), wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := parseHistoryPage(httptest.NewRequest("GET", "/history?"+tt.query, nil))
			if tt.wantErr {
				if err == nil {
					t.Fatal("err = nil, want error")
				}
				return
			}
			if err != nil {
				t.Fatalf("parseHistoryPage: %v", err)
			}
			if p.Limit != tt.wantLimit {
				t.Errorf("Limit = %d, want %d", p.Limit, tt.wantLimit)
			}
			if p.Before != tt.wantID {
				t.Errorf("Before = %q, want %q", p.Before, tt.wantID)
			}
		})
	}
}
