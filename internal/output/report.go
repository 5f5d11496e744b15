// SPDX-License-Identifier: MIT

package output

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/katalvlaran/vesselmon/report"
)

var sectionTitles = map[string]string{
	report.SectionOverview:     "总体评估",
	report.SectionConvergence:  "算法收敛",
	report.SectionDistribution: "工况分布",
	report.SectionOptimization: "优化建议",
	report.SectionEfficiency:   "燃油效率",
	report.SectionInsights:     "趋势洞察",
	report.SectionStatus:       "健康状态",
	report.SectionAnomalies:    "异常检测",
	report.SectionStatistics:   "统计数据",
}

// SectionTitle returns the display heading of a report section.
func SectionTitle(name string) string {
	if t, ok := sectionTitles[name]; ok {
		return t
	}
	return name
}

// Report renders r as text: header, badges, sections in order, the
// statistics table and a one-line summary per chart.
func (p *Printer) Report(r *report.Report) {
	p.Header(r.Title)

	if r.Empty {
		p.Print("%s", p.Dim(r.Sections[report.SectionNoData]))
		return
	}

	if a := r.Assessment; a != nil {
		p.Print("工况: %s", p.RegimeBadge(a.Regime))
		if a.Provisional {
			p.Warning("%s", a.Caveat)
		}
	}
	if r.Tier != 0 {
		p.Print("能效等级: %s", p.TierBadge(r.Tier))
	}

	for _, name := range r.Order {
		p.Subheader(SectionTitle(name))
		if name == report.SectionStatistics && len(r.Stats) > 0 {
			p.Stats(r.Stats)
			continue
		}
		p.Print("%s", r.Sections[name])
	}

	if len(r.Charts) > 0 {
		p.Subheader("图表")
		names := make([]string, 0, len(r.Charts))
		for name := range r.Charts {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			p.Print("%s", p.Dim(chartLine(name, r.Charts[name])))
		}
	}
}

// Stats renders a statistics table.
func (p *Printer) Stats(stats []report.Stat) {
	t := NewTable(p.out, []string{"指标", "数值", "单位"})
	for _, s := range stats {
		t.AddRow(s.Label, s.Value, s.Unit)
	}
	t.Render()
}

func chartLine(name string, c report.Chart) string {
	line := fmt.Sprintf("%s: %s, %d series", name, c.Title, len(c.Series))
	if rg := c.X.Range; rg != nil {
		line += fmt.Sprintf(", x [%.2f, %.2f]", rg.Min, rg.Max)
	}
	if rg := c.Y.Range; rg != nil {
		line += fmt.Sprintf(", y [%.2f, %.2f]", rg.Min, rg.Max)
	}
	return line
}

// WriteJSON encodes v as indented JSON.
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
