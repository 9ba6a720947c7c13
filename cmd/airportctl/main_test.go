package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestGetCommand(t *testing.T) {
	out, err := runCommand(t, "get", "atl")

	require.NoError(t, err)
	assert.Contains(t, out, "ATL")
	assert.Contains(t, out, "Hartsfield-Jackson")
}

func TestGetCommand_NotFound(t *testing.T) {
	_, err := runCommand(t, "get", "XXX")
	assert.Error(t, err)
}

func TestGetCommand_Malformed(t *testing.T) {
	_, err := runCommand(t, "get", "TOOLONG")
	assert.Error(t, err)
}

func TestListHubsCommand(t *testing.T) {
	out, err := runCommand(t, "list-hubs")

	require.NoError(t, err)
	for _, code := range []string{"ATL", "DEN", "LAX", "JFK"} {
		assert.Contains(t, out, code)
	}
	assert.NotContains(t, out, "ORD")
}

func TestFilterCommand(t *testing.T) {
	out, err := runCommand(t, "filter", "--min-gates", "10")

	require.NoError(t, err)
	assert.Contains(t, out, "ATL")
	assert.NotContains(t, out, "BNA")
}

func TestSortByPopulationCommand(t *testing.T) {
	out, err := runCommand(t, "sort-by-population")

	require.NoError(t, err)
	assert.Contains(t, out, "EWR")
}

func TestDistanceCommand(t *testing.T) {
	out, err := runCommand(t, "distance", "ATL", "JFK")

	require.NoError(t, err)
	assert.Contains(t, out, "ATL -> JFK")
	assert.Contains(t, out, "miles")
}
