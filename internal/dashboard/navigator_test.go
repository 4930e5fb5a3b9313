package dashboard

import (
	"testing"

	"github.com/Veraticus/ecosmart/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestNavigator_Navigate(t *testing.T) {
	tests := []struct {
		id         string
		wantActive string
		wantPage   model.Page
	}{
		{id: "upload", wantActive: "Upload", wantPage: model.PageUpload},
		{id: "ANALYTICS", wantActive: "Analytics", wantPage: model.PageAnalytics},
		{id: "settings", wantActive: "Settings", wantPage: model.PageSettings},
		{id: "Dashboard", wantActive: "Dashboard", wantPage: model.PageDashboard},
		{id: "reports", wantActive: "Reports", wantPage: model.PageDashboard},
		{id: "", wantActive: "", wantPage: model.PageDashboard},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			n := NewNavigator()
			got := n.Navigate(tt.id)
			assert.Equal(t, tt.wantPage, got)
			assert.Equal(t, tt.wantPage, n.Page())
			assert.Equal(t, tt.wantActive, n.Active())
		})
	}
}

func TestNavigator_UnknownMatchesDashboard(t *testing.T) {
	unknown := NewNavigator()
	unknown.Navigate("no-such-page")

	known := NewNavigator()
	known.Navigate("dashboard")

	assert.Equal(t, known.Page(), unknown.Page())
}

func TestNavigator_Step(t *testing.T) {
	n := NewNavigator()
	assert.Equal(t, model.PageDashboard, n.Page())

	assert.Equal(t, model.PageUpload, n.Step(1))
	assert.Equal(t, model.PageDashboard, n.Step(-1))
	assert.Equal(t, model.PageSettings, n.Step(-1))
	assert.Equal(t, model.PageDashboard, n.Step(1))
	assert.Equal(t, model.PageDashboard, n.Step(len(model.Pages)))
}
