package model

// SampleReportData returns the Taiwan market valuation scenario that the
// generator renders when no data file is given.
func SampleReportData() *ReportData {
	return &ReportData{
		ReportTitle: "動態生成-台股估值儀表板",
		HeaderTitle: "Go 動態報告",
		Hero: Hero{
			Subtitle:    "2025年中期評估：台灣巴菲特指標",
			MainMetric:  Float64(281.2),
			Status:      "達到歷史新高，處於「嚴重高估」區間",
			Description: "這是一份根據最新分析結果動態生成的報告。單一指標發出了強烈的警示信號，但這並非故事的全貌。",
		},
		HistoryChart: HistoryChart{
			Labels: []string{"2000 (網路泡沫)", "2009 (金融海嘯)", "2021 (後疫情)", "2025 (當前)"},
			Values: []float64{210, 95, 265, 281.2},
		},
	}
}
