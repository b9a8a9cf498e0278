package accounting

import (
	"strings"

	"github.com/SscSPs/truck_invoice_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// KeywordRule assigns Bucket to an advance whose remark contains any of Keywords.
type KeywordRule struct {
	Bucket   domain.ExpenseBucket
	Keywords []string
}

// Rules drives wage computation and advance classification. Build it with
// NewRules so keywords are lower-cased once.
type Rules struct {
	WageRate         decimal.Decimal
	FlatWageTruckIDs map[int64]struct{}
	FlatWageKeywords []string
	ExpenseRules     []KeywordRule // Evaluated in order, first match wins
}

// DefaultWageRate is the share of (freight - toll) paid to drivers of standard trucks.
var DefaultWageRate = decimal.NewFromFloat(0.16)

var (
	DefaultFlatWageKeywords = []string{"10ล้อ", "เหมา"}
	DefaultRepairKeywords   = []string{"ซ่อม", "ยาง", "น้ำมันเครื่อง", "อะไหล่", "repair", "tire", "tyre", "engine oil", "parts"}
	DefaultParkingKeywords  = []string{"จอด", "พัก", "ค้างคืน", "ด่าน", "park", "rest", "overnight", "checkpoint"}
)

// NewRules builds classification rules. A zero wageRate falls back to DefaultWageRate.
func NewRules(wageRate decimal.Decimal, flatTruckIDs []int64, flatKeywords []string, expenseRules ...KeywordRule) Rules {
	if wageRate.IsZero() {
		wageRate = DefaultWageRate
	}

	ids := make(map[int64]struct{}, len(flatTruckIDs))
	for _, id := range flatTruckIDs {
		ids[id] = struct{}{}
	}

	normalized := make([]KeywordRule, 0, len(expenseRules))
	for _, rule := range expenseRules {
		normalized = append(normalized, KeywordRule{Bucket: rule.Bucket, Keywords: lowerAll(rule.Keywords)})
	}

	return Rules{
		WageRate:         wageRate,
		FlatWageTruckIDs: ids,
		FlatWageKeywords: lowerAll(flatKeywords),
		ExpenseRules:     normalized,
	}
}

// DefaultRules returns the built-in keyword sets with no flat-wage trucks.
func DefaultRules() Rules {
	return NewRules(DefaultWageRate, nil, DefaultFlatWageKeywords,
		KeywordRule{Bucket: domain.BucketRepair, Keywords: DefaultRepairKeywords},
		KeywordRule{Bucket: domain.BucketParking, Keywords: DefaultParkingKeywords},
	)
}

// IsFlatWageTruck reports whether truckID is paid per trip rather than by rate.
func (r Rules) IsFlatWageTruck(truckID int64) bool {
	_, ok := r.FlatWageTruckIDs[truckID]
	return ok
}

// Classify derives the wage components of one normalized line item.
func (r Rules) Classify(item domain.NormalizedLineItem) domain.WageComponents {
	if r.IsFlatWageTruck(item.TruckID) {
		if containsAny(item.RemarkKey, r.FlatWageKeywords) {
			return domain.WageComponents{
				DriverWage16:   decimal.Zero,
				DriverWageFlat: item.DriverAdvance,
				ExpenseBucket:  domain.BucketNone,
			}
		}
		return domain.WageComponents{
			DriverWage16:   decimal.Zero,
			DriverWageFlat: decimal.Zero,
			ExpenseBucket:  r.ExpenseBucketFor(item.RemarkKey, item.DriverAdvance),
		}
	}

	wc := domain.WageComponents{
		DriverWage16:   r.DriverWage16(item.Freight, item.Toll),
		DriverWageFlat: decimal.Zero,
		ExpenseBucket:  domain.BucketNone,
	}
	if item.DriverAdvance.IsPositive() {
		wc.ExpenseBucket = r.ExpenseBucketFor(item.RemarkKey, item.DriverAdvance)
	}
	return wc
}

// DriverWage16 returns max(0, freight - toll) * WageRate.
func (r Rules) DriverWage16(freight, toll decimal.Decimal) decimal.Decimal {
	base := freight.Sub(toll)
	if base.IsNegative() {
		return decimal.Zero
	}
	return base.Mul(r.WageRate)
}

// ExpenseBucketFor classifies an advance by its lower-cased remark.
func (r Rules) ExpenseBucketFor(remarkKey string, advance decimal.Decimal) domain.ExpenseBucket {
	for _, rule := range r.ExpenseRules {
		if containsAny(remarkKey, rule.Keywords) {
			return rule.Bucket
		}
	}
	if advance.IsPositive() {
		return domain.BucketOther
	}
	return domain.BucketNone
}

func containsAny(s string, keywords []string) bool {
	if s == "" {
		return false
	}
	for _, kw := range keywords {
		if kw != "" && strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

func lowerAll(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = strings.ToLower(strings.TrimSpace(s))
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}
