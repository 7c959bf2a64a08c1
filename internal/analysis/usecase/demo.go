package usecase

import (
	"context"
	"encoding/json"
	"math"
	"sort"
	"time"

	"climate-srv/internal/analysis"
)

const (
	demoSteps = 20
	// demoCommsPerDay is the assumed communications per day per
	// department per country when sizing a simulated run.
	demoCommsPerDay = 2.5
	demoMinTotal    = 10

	demoConfidenceMin = 85
	demoConfidenceMax = 94
)

// runDemo simulates a full job with deterministic pseudo-random output.
// It honors the same progress contract as the real path: one update
// after sizing, one per step, a terminal update at the end.
func (uc *implUseCase) runDemo(ctx context.Context, progressID string, filters analysis.Filters) {
	now := time.Now()
	seed := demoSeed(filters, now.UnixMilli())

	total := demoTotal(filters, now.UnixMilli())
	if err := uc.pushProgress(ctx, progressID, 0, total); err != nil {
		if ctx.Err() != nil {
			return
		}
		uc.markFailed(ctx, progressID, 0, total, err)
		return
	}

	for step := 1; step <= demoSteps; step++ {
		if uc.cfg.DemoStepDelay > 0 {
			select {
			case <-ctx.Done():
				return
			case <-time.After(uc.cfg.DemoStepDelay):
			}
		} else if ctx.Err() != nil {
			return
		}

		processed := int(math.Round(float64(step) / demoSteps * float64(total)))
		if err := uc.pushProgress(ctx, progressID, processed, total); err != nil {
			if ctx.Err() != nil {
				return
			}
			uc.markFailed(ctx, progressID, processed, total, err)
			return
		}
	}

	doc := generateDemoDocument(filters, seed)
	confidence := seededRand(seed, demoConfidenceMin, demoConfidenceMax)

	result, err := uc.resultRepo.Create(ctx, analysis.CreateResultInput{
		TotalEmailsAnalyzed: total,
		Document:            doc,
		Confidence:          confidence,
		Departments:         filters.Departments,
		Countries:           filters.Countries,
		DateFrom:            filters.DateFrom,
		DateTo:              filters.DateTo,
	})
	if err != nil {
		uc.markFailed(ctx, progressID, total, total, err)
		return
	}

	uc.finalize(ctx, progressID, result, total)
}

// demoTotal sizes the simulated batch from the filter span: days in
// range times selected departments times countries times a base rate,
// with a seeded ±15% variation.
func demoTotal(filters analysis.Filters, timestamp int64) int {
	deptCount := len(filters.Departments)
	if deptCount == 0 {
		deptCount = len(demoDepartments)
	}
	countryCount := len(filters.Countries)
	if countryCount == 0 {
		countryCount = len(demoCountries)
	}

	to := time.Now()
	if filters.DateTo != nil {
		to = *filters.DateTo
	}
	from := to.AddDate(0, 0, -defaultRangeDays)
	if filters.DateFrom != nil {
		from = *filters.DateFrom
	}
	days := int(math.Ceil(to.Sub(from).Hours() / 24))
	if days < 1 {
		days = 1
	}

	base := math.Round(float64(days) * float64(deptCount) * float64(countryCount) * demoCommsPerDay)
	variation := float64(seededRand(timestamp, -15, 15)) / 100
	total := int(math.Round(base * (1 + variation)))
	if total < demoMinTotal {
		total = demoMinTotal
	}
	return total
}

// demoSeed hashes the filters and run timestamp so identical inputs
// reproduce the same document while distinct runs differ.
func demoSeed(filters analysis.Filters, timestamp int64) int64 {
	depts := append([]string{}, filters.Departments...)
	countries := append([]string{}, filters.Countries...)
	sort.Strings(depts)
	sort.Strings(countries)

	dateFrom := ""
	if filters.DateFrom != nil {
		dateFrom = filters.DateFrom.UTC().Format("2006-01-02")
	}
	dateTo := ""
	if filters.DateTo != nil {
		dateTo = filters.DateTo.UTC().Format("2006-01-02")
	}

	payload, _ := json.Marshal(struct {
		Departments []string `json:"departments"`
		Countries   []string `json:"countries"`
		DateFrom    string   `json:"dateFrom"`
		DateTo      string   `json:"dateTo"`
		TS          int64    `json:"ts"`
	}{depts, countries, dateFrom, dateTo, timestamp})

	var hash int32
	for _, b := range payload {
		hash = (hash << 5) - hash + int32(b)
	}
	if hash < 0 {
		hash = -hash
	}
	return int64(hash)
}

// seededRand maps a seed deterministically into [min, max].
func seededRand(seed int64, min, max int) int {
	x := math.Sin(float64(seed)) * 10000
	r := x - math.Floor(x)
	return int(r*float64(max-min+1)) + min
}

// shuffleWithSeed returns a deterministic permutation of items.
func shuffleWithSeed(items []string, seed int64) []string {
	result := append([]string{}, items...)
	for i := len(result) - 1; i > 0; i-- {
		j := seededRand(seed+int64(i), 0, i)
		result[i], result[j] = result[j], result[i]
	}
	return result
}
