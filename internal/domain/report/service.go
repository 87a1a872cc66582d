package report

import "context"

type Service interface {
	// GenerateMonthly aggregates the attendance ledger for one calendar
	// month. Read-only and repeatable: the same window over the same data
	// yields the same rows.
	GenerateMonthly(ctx context.Context, req MonthlyReportRequest) (MonthlyReport, error)
}
