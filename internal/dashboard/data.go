package dashboard

import "github.com/Veraticus/ecosmart/internal/model"

var seedHistory = []struct {
	age    model.DisplayAge
	result model.ClassificationResult
}{
	{age: "2 min ago", result: model.ClassificationResult{ItemLabel: "Food waste", Category: model.CategoryBiodegradable, Confidence: 94}},
	{age: "5 min ago", result: model.ClassificationResult{ItemLabel: "Plastic bottle", Category: model.CategoryNonBiodegradable, Confidence: 87}},
	{age: "8 min ago", result: model.ClassificationResult{ItemLabel: "Old smartphone", Category: model.CategoryEWaste, Confidence: 91}},
	{age: "12 min ago", result: model.ClassificationResult{ItemLabel: "Paper waste", Category: model.CategoryBiodegradable, Confidence: 78}},
}

var distribution = []model.Segment{
	{Name: "Biodegradable", Category: model.CategoryBiodegradable, Value: 45, Color: "#ef4444"},
	{Name: "Non-Biodegradable", Category: model.CategoryNonBiodegradable, Value: 35, Color: "#3b82f6"},
	{Name: "E-Waste", Category: model.CategoryEWaste, Value: 20, Color: "#f97316"},
}

var weeklyTrends = []model.TrendPoint{
	{Day: "Mon", Biodegradable: 120, NonBiodegradable: 80, EWaste: 30},
	{Day: "Tue", Biodegradable: 150, NonBiodegradable: 95, EWaste: 25},
	{Day: "Wed", Biodegradable: 180, NonBiodegradable: 110, EWaste: 40},
	{Day: "Thu", Biodegradable: 140, NonBiodegradable: 85, EWaste: 35},
	{Day: "Fri", Biodegradable: 200, NonBiodegradable: 120, EWaste: 45},
	{Day: "Sat", Biodegradable: 160, NonBiodegradable: 100, EWaste: 30},
	{Day: "Sun", Biodegradable: 130, NonBiodegradable: 75, EWaste: 20},
}

func actual(v int) *int { return &v }

var forecast = []model.ForecastPoint{
	{Month: "Jan", Actual: actual(2200), Predicted: 2400},
	{Month: "Feb", Actual: actual(2500), Predicted: 2600},
	{Month: "Mar", Actual: actual(2700), Predicted: 2800},
	{Month: "Apr", Predicted: 3000},
	{Month: "May", Predicted: 3200},
	{Month: "Jun", Predicted: 3400},
}

var kpis = []model.KPI{
	{Label: "Total Waste", Value: "1,247", Note: "+12% from last week"},
	{Label: "Recycled", Value: "892", Note: "+8% efficiency", Category: model.CategoryRecyclable},
	{Label: "E-Waste", Value: "156", Note: "Needs attention", Category: model.CategoryEWaste},
	{Label: "Accuracy", Value: "94.2%", Note: "AI Classification"},
}
