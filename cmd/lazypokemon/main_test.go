package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixtureServer(t *testing.T) *httptest.Server {
	t.Helper()
	body, err := os.ReadFile("../../internal/pokeapi/testdata/bulbasaur.json")
	require.NoError(t, err)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/pokemon/bulbasaur" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append(args, "--config", filepath.Join(t.TempDir(), "missing.yaml"), "--log-file", ""))
	err := cmd.Execute()
	return out.String(), err
}

func TestReportCommand(t *testing.T) {
	srv := fixtureServer(t)
	out, err := execute(t, "report", "--endpoint", srv.URL+"/pokemon", "--pokemon", "Bulbasaur", "--query", "vine")
	require.NoError(t, err)
	assert.Contains(t, out, "Bulbasaur (#1)")
	assert.Contains(t, out, "Move: vine-whip")
	assert.NotContains(t, out, "Move: razor-wind")
	assert.Contains(t, out, "No forms match the search/filter criteria.")
}

func TestReportNumberFlag(t *testing.T) {
	srv := fixtureServer(t)
	out, err := execute(t, "report", "--endpoint", srv.URL+"/pokemon", "--pokemon", "bulbasaur", "--number", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Game Version: Gold")
	assert.NotContains(t, out, "Game Version: Red")
}

func TestReportFetchFailure(t *testing.T) {
	srv := fixtureServer(t)
	_, err := execute(t, "report", "--endpoint", srv.URL+"/pokemon", "--pokemon", "missingno")
	require.Error(t, err)
	assert.Equal(t, "Request failed with status code 404 (Not Found)", err.Error())
}

func TestInvalidConfigurationIsRejected(t *testing.T) {
	_, err := execute(t, "report", "--timeout", "0s")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}

func TestLoadConfigPrecedence(t *testing.T) {
	t.Setenv("POKEMON_ID", "25")
	t.Setenv("FETCH_TIMEOUT_IN_SECONDS", "3")

	f := &rootFlags{}
	cmd := buildRootCmd(f)
	require.NoError(t, cmd.ParseFlags([]string{"--config", filepath.Join(t.TempDir(), "none.yaml"), "--timeout", "7s", "--verbose"}))
	cfg, err := loadConfig(cmd, f)
	require.NoError(t, err)
	assert.Equal(t, "25", cfg.Pokemon, "env wins over an unset flag")
	assert.Equal(t, 7*time.Second, cfg.Timeout, "flag wins over env")
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestReportCompare(t *testing.T) {
	srv := fixtureServer(t)
	out, err := execute(t, "report", "--endpoint", srv.URL+"/pokemon", "--pokemon", "bulbasaur", "--compare", "bulbasaur")
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(out, "Name: Bulbasaur"))

	_, err = execute(t, "report", "--endpoint", srv.URL+"/pokemon", "--pokemon", "bulbasaur", "--compare", "pikachu")
	require.Error(t, err)
	assert.Equal(t, "pikachu: Request failed with status code 404 (Not Found)", err.Error())
}
