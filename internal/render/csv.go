package render

import (
	"bytes"
	"encoding/csv"
)

// TargetBackerColumns is the fixed, ordered header of the target-backer
// list template. The pipeline writes the header row only; data rows are for
// downstream manual entry.
var TargetBackerColumns = []string{
	"Firm", "Contact Name", "Role", "Email", "Warm Intro From", "Status", "Notes",
}

// TargetBackersCSV renders the header-only CSV target list.
func TargetBackersCSV() string {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.Write(TargetBackerColumns)
	w.Flush()
	return buf.String()
}
