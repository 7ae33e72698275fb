package v1

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/vagledaren/vagledaren/app/core"
	"github.com/vagledaren/vagledaren/pkg/errors"
	"github.com/vagledaren/vagledaren/pkg/i18n"
	"github.com/vagledaren/vagledaren/pkg/types"
)

type UsageLogic struct {
	UserInfo
	ctx  context.Context
	core *core.Core
}

func NewUsageLogic(ctx context.Context, core *core.Core) *UsageLogic {
	return &UsageLogic{
		ctx:      ctx,
		core:     core,
		UserInfo: SetupUserInfo(ctx, core),
	}
}

// DailySummary reduces the ledger over one day, defaulting to today.
func (l *UsageLogic) DailySummary(day string) (types.UsageSummary, error) {
	t := time.Now()
	if day != "" {
		parsed, err := time.ParseInLocation("2006-01-02", day, time.Local)
		if err != nil {
			return types.UsageSummary{}, errors.New("UsageLogic.DailySummary.parse", i18n.ERROR_INVALIDARGUMENT, err).Code(http.StatusBadRequest)
		}
		t = parsed
	}
	return l.core.Srv().Ledger().DailySummary(t), nil
}

func (l *UsageLogic) MonthlySummary() types.MonthlyUsageSummary {
	return l.core.Srv().Ledger().MonthlySummary()
}

// Report is the full operator overview: today, yesterday, current month
// and threshold recommendations.
func (l *UsageLogic) Report() types.UsageReport {
	return l.core.Srv().Ledger().Report()
}

// ListRecords pages the postgres mirror of the ledger.
func (l *UsageLogic) ListRecords(page, pageSize uint64) ([]types.UsageRecord, int64, error) {
	list, err := l.core.Store().UsageRecordStore().List(l.ctx, page, pageSize)
	if err != nil && err != sql.ErrNoRows {
		return nil, 0, errors.New("UsageLogic.ListRecords.UsageRecordStore.List", i18n.ERROR_INTERNAL, err)
	}
	total, err := l.core.Store().UsageRecordStore().Total(l.ctx)
	if err != nil {
		return nil, 0, errors.New("UsageLogic.ListRecords.UsageRecordStore.Total", i18n.ERROR_INTERNAL, err)
	}
	return list, total, nil
}
