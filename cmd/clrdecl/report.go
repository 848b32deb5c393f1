package main

import (
	"sort"
	"strconv"

	"github.com/pterm/pterm"

	"github.com/clrdecl/clrdecl/validate"
)

// renderReport prints the validation report: severity totals, the
// per-code count table, the full diagnostic list, and the interface
// conformance findings grouped per type so large runs stay navigable.
func renderReport(r *validate.Report) {
	if len(r.Diagnostics) == 0 {
		return
	}

	pterm.DefaultSection.Println("Validation report")
	pterm.Printfln("%d error(s), %d warning(s), %d info", r.Errors, r.Warnings, r.Infos)

	codes := make([]string, 0, len(r.ByCode))
	for code := range r.ByCode {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	rows := pterm.TableData{{"Code", "Count"}}
	for _, code := range codes {
		rows = append(rows, []string{code, strconv.Itoa(r.ByCode[code])})
	}
	_ = pterm.DefaultTable.WithHasHeader().WithData(rows).Render()

	for _, d := range r.Diagnostics {
		if d.Code[:3] == "IC_" {
			continue // grouped below
		}
		switch d.Severity {
		case validate.Error:
			pterm.Error.Println(d.String())
		case validate.Warning:
			pterm.Warning.Println(d.String())
		default:
			pterm.Info.Println(d.String())
		}
	}

	if len(r.ConformanceTypes) > 0 {
		pterm.DefaultSection.WithLevel(2).Println("Interface conformance")
		for _, typeKey := range r.ConformanceTypes {
			group := r.ConformanceByType[typeKey]
			pterm.Printfln("%s (%d finding(s))", typeKey, len(group))
			for _, d := range group {
				pterm.Printfln("  %s", d.String())
			}
		}
	}
}
