package fairshow

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/benbjohnson/clock"
	"github.com/mosaicnetworks/fairshow/src/config"
	"github.com/mosaicnetworks/fairshow/src/render"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit(t *testing.T) {
	conf := config.NewTestConfig(t, logrus.DebugLevel)
	engine := NewFairshow(conf)
	engine.Clock = clock.NewMock()

	require.NoError(t, engine.Init())
	require.NotNil(t, engine.Service)

	sess := engine.Sessions.Create()
	require.NotNil(t, sess.Runner())
	assert.Equal(t, conf.StepInterval*100, sess.Runner().Duration())

	server := httptest.NewServer(engine.Service.Handler())
	defer server.Close()

	resp, err := http.Get(server.URL + "/page/Architecture")
	require.NoError(t, err)
	defer resp.Body.Close()

	var view render.View
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&view))
	assert.Equal(t, "Proposed Hybrid Architecture", view.Header)
	assert.Equal(t, 1, engine.Sessions.Len(), "anonymous reads are not stored")
}

func TestInitRejectsBadConfig(t *testing.T) {
	conf := config.NewTestConfig(t, logrus.DebugLevel)
	conf.Steps = 0
	assert.Error(t, NewFairshow(conf).Init())

	conf = config.NewTestConfig(t, logrus.DebugLevel)
	conf.ServiceAddr = ""
	assert.Error(t, NewFairshow(conf).Init())

	conf = config.NewTestConfig(t, logrus.DebugLevel)
	conf.MaxSessions = 0
	assert.Error(t, NewFairshow(conf).Init())
}
