package lossrun

import (
	"fmt"
	"strings"

	"github.com/parquet-go/parquet-go"
)

// requiredColumns are the loss-run columns the engine cannot work without.
var requiredColumns = []string{
	"claim_number",
	"accident_date",
	"claimant_name",
	"incurred_indemnity",
	"incurred_medical",
}

// ValidateSchema checks that the Parquet schema contains every required
// loss-run column.
func ValidateSchema(schema *parquet.Schema) error {
	columns := make(map[string]bool)
	for _, field := range schema.Fields() {
		columns[strings.ToLower(field.Name())] = true
	}

	var missing []string
	for _, col := range requiredColumns {
		if !columns[col] {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("loss run missing required columns: %s", strings.Join(missing, ", "))
	}
	return nil
}
