// mklossrun generates a synthetic Parquet loss run for development and tests.
// Rows are seeded deterministically and cover the traits the audit rules look
// for: medical-only claims, SAL-sized losses, denied claims, duplicate lines,
// recovery-note claims, and stale open reserves.
// Usage: go run ./cmd/mklossrun --out testdata/lossrun.parquet --claims 40 --seed 7
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"

	goparquet "github.com/parquet-go/parquet-go"

	"github.com/gyeh/modaudit/internal/model"
)

var firstNames = []string{"Maria", "James", "Ana", "Robert", "Linda", "Carlos", "Susan", "David", "Patricia", "Miguel"}
var lastNames = []string{"Garcia", "Smith", "Johnson", "Rodriguez", "Brown", "Martinez", "Davis", "Lopez", "Wilson", "Chen"}

func main() {
	out := flag.String("out", "testdata/lossrun.parquet", "output parquet")
	claims := flag.Int("claims", 40, "number of base claims")
	seed := flag.Int64("seed", 1, "random seed")
	year := flag.Int("year", 2023, "first accident year (claims span three years)")
	flag.Parse()

	rng := rand.New(rand.NewSource(*seed))
	rows := generate(rng, *claims, *year)

	outFile, err := os.Create(*out)
	if err != nil {
		fmt.Fprintf(os.Stderr, "create output: %v\n", err)
		os.Exit(1)
	}
	defer outFile.Close()

	writer := goparquet.NewGenericWriter[model.LossRunRow](outFile)
	if _, err := writer.Write(rows); err != nil {
		fmt.Fprintf(os.Stderr, "write: %v\n", err)
		os.Exit(1)
	}
	if err := writer.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "close writer: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Wrote %d rows to %s\n", len(rows), *out)
	printTraits(rows)
}

func generate(rng *rand.Rand, n, firstYear int) []model.LossRunRow {
	rows := make([]model.LossRunRow, 0, n+2)

	for i := 0; i < n; i++ {
		year := firstYear + rng.Intn(3)
		row := model.LossRunRow{
			ClaimNumber:  fmt.Sprintf("WC-%d-%04d", year, i+1),
			AccidentDate: fmt.Sprintf("%d-%02d-%02d", year, 1+rng.Intn(12), 1+rng.Intn(28)),
			ClaimantName: firstNames[rng.Intn(len(firstNames))] + " " + lastNames[rng.Intn(len(lastNames))],
			Status:       "Closed",
		}

		switch trait := rng.Intn(10); {
		case trait < 4: // medical-only
			row.InjuryCode = "6"
			row.IncurredMedical = 500 + rng.Float64()*9500
			row.PaidMedical = row.IncurredMedical
		case trait < 5: // SAL-sized lost-time claim
			row.InjuryCode = "5"
			row.IncurredIndemnity = 150_000 + rng.Float64()*150_000
			row.IncurredMedical = 50_000 + rng.Float64()*100_000
			row.PaidIndemnity = row.IncurredIndemnity * 0.8
			row.PaidMedical = row.IncurredMedical * 0.8
		case trait < 6: // denied but still on the run
			row.InjuryCode = "5"
			row.Status = "Denied"
			row.IncurredIndemnity = 5_000 + rng.Float64()*20_000
			row.IncurredMedical = 2_000 + rng.Float64()*10_000
			row.ClaimNotes = "claim denied as non-comp"
		case trait < 7: // recovery note
			row.InjuryCode = "5"
			row.IncurredIndemnity = 10_000 + rng.Float64()*40_000
			row.IncurredMedical = 5_000 + rng.Float64()*20_000
			row.PaidIndemnity = row.IncurredIndemnity
			row.PaidMedical = row.IncurredMedical
			if rng.Intn(2) == 0 {
				row.ClaimNotes = "subro recovery pending against third party"
			} else {
				row.ClaimNotes = "SIF reimbursement filed"
			}
		case trait < 8: // stale open reserves
			row.InjuryCode = "5"
			row.Status = "Open"
			row.IncurredIndemnity = 20_000 + rng.Float64()*30_000
			row.IncurredMedical = 10_000 + rng.Float64()*20_000
			row.PaidIndemnity = row.IncurredIndemnity * 0.5
			row.PaidMedical = row.IncurredMedical * 0.5
			row.ReservesIndemnity = row.IncurredIndemnity - row.PaidIndemnity
			row.ReservesMedical = row.IncurredMedical - row.PaidMedical
			row.LastPaymentDate = fmt.Sprintf("%d-%02d-01", year, 1+rng.Intn(6))
		default: // ordinary lost-time claim
			row.InjuryCode = "5"
			row.IncurredIndemnity = 5_000 + rng.Float64()*30_000
			row.IncurredMedical = 2_000 + rng.Float64()*15_000
			row.PaidIndemnity = row.IncurredIndemnity
			row.PaidMedical = row.IncurredMedical
		}

		rows = append(rows, row)
	}

	// One exact duplicate pair: same accident, claimant, and incurred under
	// two claim numbers.
	if len(rows) > 0 {
		dup := rows[rng.Intn(len(rows))]
		dup.ClaimNumber += "-A"
		rows = append(rows, dup)
	}

	return rows
}

func printTraits(rows []model.LossRunRow) {
	var medOnly, denied, open, noted, large int
	for _, r := range rows {
		switch {
		case r.InjuryCode == "6":
			medOnly++
		case r.Status == "Denied":
			denied++
		case r.Status == "Open":
			open++
		}
		if r.ClaimNotes != "" && r.Status != "Denied" {
			noted++
		}
		if r.IncurredIndemnity+r.IncurredMedical > 176_000 {
			large++
		}
	}
	fmt.Println("Trait distribution:")
	fmt.Printf("  %-12s %d\n", "med_only", medOnly)
	fmt.Printf("  %-12s %d\n", "denied", denied)
	fmt.Printf("  %-12s %d\n", "open", open)
	fmt.Printf("  %-12s %d\n", "noted", noted)
	fmt.Printf("  %-12s %d\n", "over_sal", large)
}
