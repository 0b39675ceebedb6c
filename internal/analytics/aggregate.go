// Package analytics folds historical invoice and expense records into the
// reporting structures behind the GST dashboard. Every function here is a
// pure one-shot fold over in-memory snapshots; output ordering is the only
// contract, iteration order never matters.
package analytics

import (
	"fmt"
	"sort"
	"time"

	"gstbill/internal/domain"
	"gstbill/internal/gst"
)

// topN is how many parties a distribution keeps before folding the tail
// into a single "Others" slice.
const topN = 4

// InvoiceGST returns the output liability of a single invoice record. A
// stored positive tax figure wins; otherwise the grand total is treated as
// tax-inclusive and the component is extracted at the default rate.
func InvoiceGST(inv *domain.InvoiceRecord) float64 {
	if inv.GSTTotal > 0 {
		return inv.GSTTotal
	}
	return gst.FromInclusiveTotal(inv.Amount, domain.DefaultGSTRate)
}

// Aggregate computes the full GST report for the given record snapshots.
// Records missing a date fall into the current month and are counted in
// MissingDates as a data-quality gap rather than silently trusted.
func Aggregate(invoices []domain.InvoiceRecord, expenses []domain.ExpenseRecord) *domain.GSTReport {
	return aggregateAt(time.Now().UTC(), invoices, expenses)
}

func aggregateAt(now time.Time, invoices []domain.InvoiceRecord, expenses []domain.ExpenseRecord) *domain.GSTReport {
	report := &domain.GSTReport{}

	var output, input float64
	for i := range invoices {
		output += InvoiceGST(&invoices[i])
	}
	for i := range expenses {
		input += expenses[i].GSTAmount
	}
	report.Totals = domain.Totals{
		Output:       output,
		Input:        input,
		Net:          output - input,
		Payable:      max(0, output-input),
		CarryForward: output-input < 0,
	}

	report.Monthly, report.MissingDates = monthlySeries(now, invoices, expenses)
	report.Clients = clientRollup(invoices)
	report.Vendors = vendorRollup(expenses)

	report.ClientDistribution = distribution(len(report.Clients), func(i int) (string, string, float64) {
		c := &report.Clients[i]
		return c.Name, c.GSTIN, c.TotalGST
	})
	report.VendorDistribution = distribution(len(report.Vendors), func(i int) (string, string, float64) {
		v := &report.Vendors[i]
		return v.Name, v.GSTIN, v.TotalInputCredit
	})

	return report
}

// monthKey buckets an ISO-8601 date string into YYYY-MM. The bool reports
// whether the record actually carried a usable date.
func monthKey(date string, now time.Time) (string, bool) {
	if len(date) < 7 {
		return now.Format("2006-01"), false
	}
	return date[:7], true
}

func monthlySeries(now time.Time, invoices []domain.InvoiceRecord, expenses []domain.ExpenseRecord) ([]domain.MonthlyPoint, int) {
	buckets := make(map[string]*domain.MonthlyPoint)
	missing := 0

	bucket := func(month string) *domain.MonthlyPoint {
		p, ok := buckets[month]
		if !ok {
			p = &domain.MonthlyPoint{Month: month}
			buckets[month] = p
		}
		return p
	}

	for i := range invoices {
		month, ok := monthKey(invoices[i].InvoiceDate, now)
		if !ok {
			missing++
		}
		bucket(month).Liability += InvoiceGST(&invoices[i])
	}
	for i := range expenses {
		month, ok := monthKey(expenses[i].Date, now)
		if !ok {
			missing++
		}
		bucket(month).Credit += expenses[i].GSTAmount
	}

	series := make([]domain.MonthlyPoint, 0, len(buckets))
	for _, p := range buckets {
		series = append(series, *p)
	}
	// Zero-padded YYYY-MM keys sort correctly as strings.
	sort.Slice(series, func(i, j int) bool { return series[i].Month < series[j].Month })

	return series, missing
}

func partyKey(name, gstin string) string {
	if gstin == "" {
		gstin = domain.UnknownGSTIN
	}
	return name + "-" + gstin
}

func clientRollup(invoices []domain.InvoiceRecord) []domain.ClientStats {
	index := make(map[string]int)
	var clients []domain.ClientStats

	for i := range invoices {
		inv := &invoices[i]
		key := partyKey(inv.ClientName, inv.GSTIN)
		idx, ok := index[key]
		if !ok {
			gstin := inv.GSTIN
			if gstin == "" {
				gstin = domain.UnknownGSTIN
			}
			idx = len(clients)
			index[key] = idx
			clients = append(clients, domain.ClientStats{Name: inv.ClientName, GSTIN: gstin})
		}
		clients[idx].TotalSales += inv.Amount
		clients[idx].TotalGST += InvoiceGST(inv)
		clients[idx].Invoices = append(clients[idx].Invoices, *inv)
	}

	sort.SliceStable(clients, func(i, j int) bool { return clients[i].TotalGST > clients[j].TotalGST })
	return clients
}

func vendorRollup(expenses []domain.ExpenseRecord) []domain.VendorStats {
	index := make(map[string]int)
	var vendors []domain.VendorStats

	for i := range expenses {
		exp := &expenses[i]
		key := partyKey(exp.VendorName, exp.GSTIN)
		idx, ok := index[key]
		if !ok {
			gstin := exp.GSTIN
			if gstin == "" {
				gstin = domain.UnknownGSTIN
			}
			idx = len(vendors)
			index[key] = idx
			vendors = append(vendors, domain.VendorStats{Name: exp.VendorName, GSTIN: gstin})
		}
		vendors[idx].TotalSpent += exp.TotalAmount
		vendors[idx].TotalInputCredit += exp.GSTAmount
	}

	sort.SliceStable(vendors, func(i, j int) bool { return vendors[i].TotalInputCredit > vendors[j].TotalInputCredit })
	return vendors
}

// distribution builds the top-N chart slices from an already-sorted rollup.
// The tail beyond topN folds into one "Others" slice; an empty rollup
// yields a single zero-weight placeholder so charts never see an empty set.
func distribution(n int, at func(int) (name, gstin string, value float64)) []domain.DistributionSlice {
	var slices []domain.DistributionSlice

	limit := min(n, topN)
	for i := 0; i < limit; i++ {
		name, gstin, value := at(i)
		if gstin != domain.UnknownGSTIN {
			name = fmt.Sprintf("%s (%s)", name, gstin)
		}
		slices = append(slices, domain.DistributionSlice{Name: name, Value: value})
	}

	var others float64
	for i := topN; i < n; i++ {
		_, _, value := at(i)
		others += value
	}
	if others > 0 {
		slices = append(slices, domain.DistributionSlice{Name: "Others", Value: others})
	}

	if len(slices) == 0 {
		slices = append(slices, domain.DistributionSlice{Name: "No Data", Value: 0})
	}
	return slices
}
