// File: services/payment/history.go
package payment

import (
	"context"
	"fmt"
	"sort"

	"classadmin/models"
	"classadmin/utils"

	"go.uber.org/zap"
)

// SortPaymentLogs orders logs newest-first by effective date (record date,
// else plan creation date, else empty which sorts last). The sort is stable
// so equal dates keep their input order.
func SortPaymentLogs(logs []models.PaymentLog) {
	sort.SliceStable(logs, func(i, j int) bool {
		return logs[i].EffectiveDate() > logs[j].EffectiveDate()
	})
}

// RecordPayment stores a payment reported by the external billing service.
func (svc *DefaultPaymentService) RecordPayment(ctx context.Context, record models.PaymentRecord) (*models.PaymentRecord, error) {
	if record.StudentID == "" {
		return nil, fmt.Errorf("student ID is required")
	}
	id, err := svc.Repo.CreateRecord(ctx, record)
	if err != nil {
		return nil, fmt.Errorf("failed to record payment: %w", err)
	}
	record.ID = id
	return &record, nil
}

// GetHistory returns a student's payment records joined with plan metadata,
// recency-sorted.
func (svc *DefaultPaymentService) GetHistory(ctx context.Context, studentID string) ([]models.PaymentLog, error) {
	logger := utils.GetLogger()

	records, err := svc.Repo.GetRecordsByStudent(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch payment records: %w", err)
	}

	logs := make([]models.PaymentLog, 0, len(records))
	for _, rec := range records {
		entry := models.PaymentLog{Record: rec}
		if rec.PlanID != "" {
			plan, err := svc.Repo.GetPlanByID(ctx, rec.PlanID)
			if err != nil {
				// A dangling plan reference degrades to a plan-less log row.
				logger.Warn("Payment record references missing plan",
					zap.String("recordID", rec.ID),
					zap.String("planID", rec.PlanID))
			} else {
				entry.PlanName = plan.Name
				entry.PlanCreatedAt = plan.CreatedAt
			}
		}
		logs = append(logs, entry)
	}

	SortPaymentLogs(logs)
	return logs, nil
}

func (svc *DefaultPaymentService) GetPlans(ctx context.Context) ([]models.PaymentPlan, error) {
	plans, err := svc.Repo.GetPlans(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch plans: %w", err)
	}
	return plans, nil
}

func (svc *DefaultPaymentService) CreatePlan(ctx context.Context, plan models.PaymentPlan) (*models.PaymentPlan, error) {
	if plan.Name == "" {
		return nil, fmt.Errorf("plan name is required")
	}
	id, err := svc.Repo.CreatePlan(ctx, plan)
	if err != nil {
		return nil, fmt.Errorf("failed to create plan: %w", err)
	}
	plan.ID = id
	return &plan, nil
}
