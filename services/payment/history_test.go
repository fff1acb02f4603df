package payment

import (
	"testing"

	"classadmin/models"
)

func TestSortPaymentLogs(t *testing.T) {
	logs := []models.PaymentLog{
		{Record: models.PaymentRecord{ID: "r1"}, PlanCreatedAt: "2024-01-01"},
		{Record: models.PaymentRecord{ID: "r2", LoggedAt: "2024-03-01"}},
	}

	SortPaymentLogs(logs)

	if logs[0].Record.ID != "r2" || logs[1].Record.ID != "r1" {
		t.Errorf("SortPaymentLogs() order = [%s %s], want [r2 r1]", logs[0].Record.ID, logs[1].Record.ID)
	}
}

func TestSortPaymentLogsMissingDatesSortLast(t *testing.T) {
	logs := []models.PaymentLog{
		{Record: models.PaymentRecord{ID: "undated"}},
		{Record: models.PaymentRecord{ID: "old", LoggedAt: "2023-05-01"}},
		{Record: models.PaymentRecord{ID: "new", LoggedAt: "2024-05-01"}},
	}

	SortPaymentLogs(logs)

	want := []string{"new", "old", "undated"}
	for i, id := range want {
		if logs[i].Record.ID != id {
			t.Fatalf("SortPaymentLogs()[%d] = %s, want %s", i, logs[i].Record.ID, id)
		}
	}
}

func TestSortPaymentLogsStableOnTies(t *testing.T) {
	logs := []models.PaymentLog{
		{Record: models.PaymentRecord{ID: "first", LoggedAt: "2024-02-01"}},
		{Record: models.PaymentRecord{ID: "second", LoggedAt: "2024-02-01"}},
		{Record: models.PaymentRecord{ID: "third", LoggedAt: "2024-02-01"}},
	}

	SortPaymentLogs(logs)

	want := []string{"first", "second", "third"}
	for i, id := range want {
		if logs[i].Record.ID != id {
			t.Fatalf("tie order not preserved: got %s at %d, want %s", logs[i].Record.ID, i, id)
		}
	}
}

func TestPaymentLogEffectiveDate(t *testing.T) {
	tests := []struct {
		name string
		log  models.PaymentLog
		want string
	}{
		{
			name: "record date wins",
			log:  models.PaymentLog{Record: models.PaymentRecord{LoggedAt: "2024-03-01"}, PlanCreatedAt: "2024-01-01"},
			want: "2024-03-01",
		},
		{
			name: "falls back to plan creation",
			log:  models.PaymentLog{PlanCreatedAt: "2024-01-01"},
			want: "2024-01-01",
		},
		{
			name: "empty when neither set",
			log:  models.PaymentLog{},
			want: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.log.EffectiveDate(); got != tt.want {
				t.Errorf("EffectiveDate() = %q, want %q", got, tt.want)
			}
		})
	}
}
