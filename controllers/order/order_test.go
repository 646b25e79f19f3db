package order

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catering-ops/constants"
)

func newTemplateApp() *fiber.App {
	app := fiber.New()
	oc := NewOrderController(nil, nil)
	app.Get("/orders/logistics-templates", oc.LogisticsTemplates)
	app.Get("/orders/event-flow-templates", oc.EventFlowTemplates)
	return app
}

func TestLogisticsTemplatesEndpoint(t *testing.T) {
	app := newTemplateApp()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/orders/logistics-templates", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Data map[string][]constants.LogisticsTemplateItem `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

	require.NotEmpty(t, body.Data)
	buffet, ok := body.Data["外燴Buffet (Catering Buffet)"]
	require.True(t, ok)
	require.NotEmpty(t, buffet)
	assert.Equal(t, "10:00", buffet[0].Time)
}

func TestEventFlowTemplatesEndpoint(t *testing.T) {
	app := newTemplateApp()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/orders/event-flow-templates", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Data map[string][]constants.EventFlowTemplateItem `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

	require.NotEmpty(t, body.Data)
	zhuazhou, ok := body.Data["抓周派對 (Zhuazhou)"]
	require.True(t, ok)
	require.NotEmpty(t, zhuazhou)
	assert.Equal(t, "抓周儀式", zhuazhou[2].Activity)
	assert.NotEmpty(t, zhuazhou[2].Description)
}

func TestEventFlowTemplatesCoverCommonEventTypes(t *testing.T) {
	for _, name := range []string{
		"春酒尾牙 (Spring Wine)",
		"生日派對 (Birthday Party)",
		"內用Buffet (Dine-in Buffet)",
	} {
		entries, ok := constants.EventFlowTemplates[name]
		require.True(t, ok, name)
		for _, e := range entries {
			assert.NotEmpty(t, e.Time, name)
			assert.NotEmpty(t, e.Activity, name)
		}
	}
}
