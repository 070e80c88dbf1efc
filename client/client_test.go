package client

import (
	"context"
	"fmt"
	"testing"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osimkit/osim/api"
	ilog "github.com/osimkit/osim/internal/log"
	"github.com/osimkit/osim/policy"
)

func TestClient_Simulate(t *testing.T) {
	c := New("http://localhost:9095", ilog.BuildLogger("debug"))
	httpmock.Activate(t)
	defer httpmock.DeactivateAndReset()

	request := &api.SimulateRequest{
		Processes: []api.ProcessInput{{Arrival: 0, Burst: 5, Memory: 100}},
	}

	tests := []struct {
		name    string
		policy  policy.Policy
		expects func()
		wantErr bool
	}{
		{
			name:   "successful run",
			policy: policy.FCFS,
			expects: func() {
				httpmock.RegisterResponder(
					"POST",
					"http://localhost:9095/api/v1/simulate/FCFS",
					httpmock.NewStringResponder(
						200,
						`{"runId":"r-1","policy":"FCFS","totalTime":5,"gantt":[{"pid":1,"start":0,"end":5}]}`,
					),
				)
			},
		},
		{
			name: "default policy endpoint",
			expects: func() {
				httpmock.RegisterResponder(
					"POST",
					"http://localhost:9095/api/v1/simulate",
					httpmock.NewStringResponder(200, `{"runId":"r-2","policy":"FCFS","totalTime":5}`),
				)
			},
		},
		{
			name:   "validation rejected",
			policy: policy.RoundRobin,
			expects: func() {
				httpmock.RegisterResponder(
					"POST",
					"http://localhost:9095/api/v1/simulate/RR",
					httpmock.NewStringResponder(422, `{"error":"time quantum must be at least 1, had: 0"}`),
				)
			},
			wantErr: true,
		},
		{
			name:   "transport failure",
			policy: policy.FCFS,
			expects: func() {
				httpmock.RegisterResponder(
					"POST",
					"http://localhost:9095/api/v1/simulate/FCFS",
					httpmock.NewErrorResponder(fmt.Errorf("connection refused")),
				)
			},
			wantErr: true,
		},
	}

	for _, tc := range tests {
		httpmock.Reset()
		tc.expects()

		report, err := c.Simulate(context.Background(), tc.policy, request)
		if tc.wantErr {
			assert.Error(t, err, tc.name)
			continue
		}
		require.NoError(t, err, tc.name)
		require.NotNil(t, report, tc.name)
		assert.Equal(t, 5, report.TotalTime, tc.name)
	}
}

func TestClient_SimulateErrorMessage(t *testing.T) {
	c := New("http://localhost:9095/", ilog.BuildLogger("error"))
	httpmock.Activate(t)
	defer httpmock.DeactivateAndReset()

	httpmock.RegisterResponder(
		"POST",
		"http://localhost:9095/api/v1/simulate",
		httpmock.NewStringResponder(422, `{"error":"request defines no processes"}`),
	)

	_, err := c.Simulate(context.Background(), "", &api.SimulateRequest{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "request defines no processes")
	assert.Contains(t, err.Error(), "422")
}

func TestClient_Catalog(t *testing.T) {
	c := New("http://localhost:9095", ilog.BuildLogger("debug"))
	httpmock.Activate(t)
	defer httpmock.DeactivateAndReset()

	httpmock.RegisterResponder(
		"GET",
		"http://localhost:9095/api/v1/catalog",
		httpmock.NewStringResponder(
			200,
			`{"policies":["FCFS","SJF","Priority","RR"],"strategies":["First-Fit","Best-Fit","Worst-Fit"]}`,
		),
	)

	catalog, err := c.Catalog(context.Background())
	require.NoError(t, err)
	assert.Len(t, catalog.Policies, 4)
	assert.Len(t, catalog.Strategies, 3)
}
