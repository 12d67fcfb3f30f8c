// Copyright (c) 2024
//
// MIT License

package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseArgsRequiresAnInput(t *testing.T) {
	_, err := parseArgs([]string{})
	require.Error(t, err)
}

func TestParseArgsHelpShortCircuits(t *testing.T) {
	_, err := parseArgs([]string{"-h"})
	require.Equal(t, errHelp, err)
}

func TestParseArgsReadsInputAndOutputFormats(t *testing.T) {
	a, err := parseArgs([]string{"-i_c2d", "in.c2d", "-o_d4", "out.d4"})
	require.NoError(t, err)
	require.Equal(t, "in.c2d", a.InputPath)
	require.Equal(t, "c2d", a.InputFormat)
	require.Equal(t, "out.d4", a.OutputPath)
	require.Equal(t, "d4", a.OutputFormat)
}

func TestParseArgsCollectsConditionsUntilNextFlag(t *testing.T) {
	a, err := parseArgs([]string{"-i", "in.nnf", "-c", "1", "-2", "3", "-o", "out.nnf"})
	require.NoError(t, err)
	require.Equal(t, []int{1, -2, 3}, a.Conditions)
	require.Equal(t, "out.nnf", a.OutputPath)
}

func TestParseArgsRejectsConditioningBothPolarities(t *testing.T) {
	_, err := parseArgs([]string{"-i", "in.nnf", "-c", "1", "-1"})
	require.Error(t, err)
}

func TestParseArgsRejectsDuplicateConditioning(t *testing.T) {
	_, err := parseArgs([]string{"-i", "in.nnf", "-c", "1", "1"})
	require.Error(t, err)
}

func TestParseArgsRejectsUnknownOption(t *testing.T) {
	_, err := parseArgs([]string{"-i", "in.nnf", "--bogus"})
	require.Error(t, err)
}
