package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunNoArgsReturnsUsageExitCode(t *testing.T) {
	assert.Equal(t, 2, run(nil))
}

func TestRunHelpFlagReturnsZero(t *testing.T) {
	assert.Equal(t, 0, run([]string{"--help"}))
	assert.Equal(t, 0, run([]string{"-h"}))
}

func TestRunUnknownSubcommandReturnsUsageExitCode(t *testing.T) {
	assert.Equal(t, 2, run([]string{"frobnicate"}))
}
