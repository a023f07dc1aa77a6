package upstream

import "testing"

func TestDecodeRecordsBareArray(t *testing.T) {
	raw := []byte(`[{"value": 1.5, "timestamp": "2024-01-02T00:00:00Z"}, {"value": "2.5", "date": "2024-01-03"}]`)
	records, err := decodeRecords(raw)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].Timestamp != "2024-01-02T00:00:00Z" {
		t.Errorf("unexpected timestamp: %s", records[0].Timestamp)
	}
	if records[1].Date != "2024-01-03" {
		t.Errorf("unexpected date: %s", records[1].Date)
	}
	if v, ok := records[1].Value.(string); !ok || v != "2.5" {
		t.Errorf("string value should pass through untouched, got %v", records[1].Value)
	}
}

func TestDecodeRecordsWrapped(t *testing.T) {
	raw := []byte(`{"data": [{"value": 10, "timestamp": "2024-01-02T00:00:00Z"}]}`)
	records, err := decodeRecords(raw)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
}

func TestDecodeRecordsInvalid(t *testing.T) {
	if _, err := decodeRecords([]byte(`not json`)); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestDecodeRecordsEmptyArray(t *testing.T) {
	records, err := decodeRecords([]byte(`[]`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("expected no records, got %d", len(records))
	}
}
