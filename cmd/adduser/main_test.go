package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_Success(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test_success.db")

	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)
	stdin := new(bytes.Buffer)

	args := []string{"-user", "testuser", "-email", "test@example.com", "-password", "secret123", "-db", dbPath}
	err := run(args, stdin, stdout, stderr)
	require.NoError(t, err)

	assert.Contains(t, stdout.String(), "User testuser created successfully")
}

func TestRun_DuplicateUser(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test_duplicate.db")
	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)
	stdin := new(bytes.Buffer)

	args := []string{"-user", "testuser", "-email", "test@example.com", "-password", "secret123", "-db", dbPath}

	err := run(args, stdin, stdout, stderr)
	require.NoError(t, err, "first run should succeed")

	stdout.Reset()
	stderr.Reset()
	err = run(args, stdin, stdout, stderr)
	require.Error(t, err, "expected error on duplicate user")
	assert.Contains(t, err.Error(), "already exists")
}

func TestRun_MissingFlags(t *testing.T) {
	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)
	stdin := new(bytes.Buffer)

	args := []string{"-password", "secret123"}
	err := run(args, stdin, stdout, stderr)
	require.Error(t, err, "expected error for missing flags")
	assert.Contains(t, err.Error(), "missing required flags")
	assert.Contains(t, stdout.String(), "Usage:")
}

func TestRun_InteractivePassword(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test_interactive.db")
	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)

	// piped stdin stands in for the terminal prompt
	stdin := bytes.NewBufferString("interactive_secret\n")

	args := []string{"-user", "promptuser", "-email", "prompt@example.com", "-db", dbPath}
	err := run(args, stdin, stdout, stderr)
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "User promptuser created successfully")
}

func TestRun_EmptyPassword(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test_empty.db")
	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)
	stdin := bytes.NewBufferString("   \n")

	args := []string{"-user", "testuser", "-email", "test@example.com", "-db", dbPath}
	err := run(args, stdin, stdout, stderr)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "password cannot be empty")
}
