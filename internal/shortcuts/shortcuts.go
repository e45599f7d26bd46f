// Package shortcuts maps short aliases to canonical company names.
//
// The table is static: it is populated at compile time, never written to
// after process start, and is safe to share between requests without locking.
package shortcuts

import (
	"sort"
	"strings"

	"companyexport/internal/domain/models"
)

// table maps lowercased alias keys to canonical company names.
var table = map[string]string{
	"c":           "Continental AG (Germany, Fed. Rep.) (NBB: CTTA Y)",
	"a":           "Airbus SE (NBB: EADS Y)",
	"b":           "Boeing Co. (The) (NYS: BA)",
	"d":           "Denso Corp (NBB: DNZO Y)",
	"m":           "Magna International Inc (NYS: MGA)",
	"i":           "Infineon Technologies AG (NBB: IFNN Y)",
	"s":           "STMicroelectronics NV (NYS: STM)",
	"conti":       "Continental AG (Germany, Fed. Rep.) (NBB: CTTA Y)",
	"continental": "Continental AG (Germany, Fed. Rep.) (NBB: CTTA Y)",
	"airbus":      "Airbus SE (NBB: EADS Y)",
	"eads":        "Airbus SE (NBB: EADS Y)",
	"boeing":      "Boeing Co. (The) (NYS: BA)",
	"ba":          "Boeing Co. (The) (NYS: BA)",
	"denso":       "Denso Corp (NBB: DNZO Y)",
	"dnzo":        "Denso Corp (NBB: DNZO Y)",
	"magna":       "Magna International Inc (NYS: MGA)",
	"mga":         "Magna International Inc (NYS: MGA)",
	"infineon":    "Infineon Technologies AG (NBB: IFNN Y)",
	"ifnn":        "Infineon Technologies AG (NBB: IFNN Y)",
	"stmicro":     "STMicroelectronics NV (NYS: STM)",
	"stm":         "STMicroelectronics NV (NYS: STM)",
}

// Resolve returns the canonical company name for an alias. Lookup is
// case-insensitive and ignores surrounding whitespace. Unknown inputs are
// returned trimmed and otherwise unchanged, to be treated as literal
// company-name queries.
func Resolve(input string) string {
	trimmed := strings.TrimSpace(input)
	if name, ok := table[strings.ToLower(trimmed)]; ok {
		return name
	}
	return trimmed
}

// All returns the full alias table sorted by key.
func All() []models.ShortcutEntry {
	entries := make([]models.ShortcutEntry, 0, len(table))
	for k, v := range table {
		entries = append(entries, models.ShortcutEntry{Key: k, Name: v})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Key < entries[j].Key
	})
	return entries
}
