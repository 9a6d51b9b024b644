package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nightreign-bingo/internal/config"
	"nightreign-bingo/internal/model"
	"nightreign-bingo/internal/repository"
)

// setupDataDir copies the repository fixtures into a fresh directory and
// clears the environment the commands read.
func setupDataDir(t *testing.T) string {
	t.Helper()
	for _, key := range []string{
		"BINGO_DATA_DIR", "BINGO_OUTPUT", "BINGO_CATALOG_DB", "BINGO_SEED",
		"BINGO_ROTATE_INTERVAL", "BINGO_ROTATE_AT", "BINGO_LOG_LEVEL",
	} {
		t.Setenv(key, "")
	}

	dir := t.TempDir()
	for _, name := range []string{
		repository.BossesFile, repository.NightfarersFile, repository.MapsFile, repository.GenericFile,
	} {
		data, err := os.ReadFile(filepath.Join("..", "..", "internal", "repository", "testdata", name))
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), data, 0o644))
	}
	return dir
}

func runBingo(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

func writePreset(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "preset.yaml")
	require.NoError(t, config.Preset{
		Boss:       "Adel",
		Nightfarer: "Ironeye",
		Map:        "Mountaintop",
		Quota:      config.PresetQuota{Mode: "uniform", Minimum: 2},
	}.Save(path))
	return path
}

func readBoard(t *testing.T, dir string) model.Board {
	t.Helper()
	board, err := repository.NewBoardFile(filepath.Join(dir, "output.json")).Read()
	require.NoError(t, err)
	return board
}

func TestInteractiveGenerateThenCheck(t *testing.T) {
	dir := setupDataDir(t)

	// boss 1, nightfarer 1, map 1, mode 1, minimum 2
	out, _, err := runBingo(t, "1\n1\n1\n1\n2\n", "generate", "--data-dir", dir, "--seed", "7")
	require.NoError(t, err)
	assert.Contains(t, out, "Choose a Boss:")
	assert.Contains(t, out, "Choose a Nightfarer:")
	assert.Contains(t, out, "Choose a Map:")
	assert.Contains(t, out, "Your 5x5 Bingo Board has been saved to")
	assert.Contains(t, out, "(seed 7)")

	board := readBoard(t, dir)
	require.Len(t, board, model.BoardSize)
	center, ok := board.Center()
	require.True(t, ok)
	assert.Equal(t, "Defeat Gladius, Beast of Night", center.Name)

	out, _, err = runBingo(t, "", "check", "--data-dir", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "All tests passed!")
}

func TestRootCommandIsInteractiveGenerate(t *testing.T) {
	dir := setupDataDir(t)

	// first of each menu, then per-category mode with seven categories, 3 each
	input := "1\n1\n1\n2\n3\n3\n3\n3\n3\n3\n3\n"
	_, _, err := runBingo(t, input, "--data-dir", dir)
	require.NoError(t, err)
	assert.Len(t, readBoard(t, dir), model.BoardSize)
}

func TestGenerateRejectsClosedInput(t *testing.T) {
	dir := setupDataDir(t)

	_, _, err := runBingo(t, "1\n", "generate", "--data-dir", dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "input closed")
	assert.NoFileExists(t, filepath.Join(dir, "output.json"))
}

func TestGenerateFromPresetIsReproducible(t *testing.T) {
	dir := setupDataDir(t)
	preset := writePreset(t, dir)

	_, _, err := runBingo(t, "", "generate", "--data-dir", dir, "--preset", preset, "--seed", "3")
	require.NoError(t, err)
	first, err := os.ReadFile(filepath.Join(dir, "output.json"))
	require.NoError(t, err)

	_, _, err = runBingo(t, "", "generate", "--data-dir", dir, "--preset", preset, "--seed", "3")
	require.NoError(t, err)
	second, err := os.ReadFile(filepath.Join(dir, "output.json"))
	require.NoError(t, err)

	assert.Equal(t, string(first), string(second))

	out, _, err := runBingo(t, "", "check", "--data-dir", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "All tests passed!")
}

func TestGenerateSavesPreset(t *testing.T) {
	dir := setupDataDir(t)
	saved := filepath.Join(dir, "saved.yaml")

	_, _, err := runBingo(t, "3\n3\n1\n1\n3\n", "generate", "--data-dir", dir, "--save-preset", saved)
	require.NoError(t, err)

	p, err := config.LoadPreset(saved)
	require.NoError(t, err)
	assert.Equal(t, "Defeat Libra, Creature of Night", p.Boss)
	assert.Equal(t, "Recluse", p.Nightfarer)
	assert.Equal(t, "Default", p.Map)
	assert.Equal(t, 3, p.Quota.Minimum)
}

func TestCheckFailsOnShortBoard(t *testing.T) {
	dir := setupDataDir(t)
	board := make(model.Board, 0, 24)
	board = append(board, model.Task{Name: "Defeat Gladius", Category: model.CategoryBoss, Center: 1})
	for len(board) < 24 {
		board = append(board, model.Task{Name: strings.Repeat("x", len(board))})
	}
	data, err := json.Marshal(board)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "output.json"), data, 0o644))

	_, errOut, err := runBingo(t, "", "check", "--data-dir", dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "board has 24 entries")
	assert.Contains(t, errOut, "board has 24 entries")
}

func TestCheckFailsWithoutBoard(t *testing.T) {
	dir := setupDataDir(t)

	_, _, err := runBingo(t, "", "check", "--data-dir", dir)
	assert.ErrorIs(t, err, repository.ErrNoBoard)
}

func TestCheckWarnsWithoutNightfarerData(t *testing.T) {
	dir := setupDataDir(t)
	_, _, err := runBingo(t, "", "generate", "--data-dir", dir, "--preset", writePreset(t, dir))
	require.NoError(t, err)
	require.NoError(t, os.Remove(filepath.Join(dir, repository.NightfarersFile)))

	out, errOut, err := runBingo(t, "", "check", "--data-dir", dir)
	require.NoError(t, err)
	assert.Contains(t, errOut, "warning: Nightfarers.json not found")
	assert.Contains(t, out, "All tests passed!")
}

func TestImportThenGenerateFromCatalog(t *testing.T) {
	dir := setupDataDir(t)
	db := filepath.Join(dir, "catalog.db")

	out, _, err := runBingo(t, "", "import", "--data-dir", dir, "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "imported 3 bosses, 3 nightfarers, 2 maps, 20 generic tasks")

	// the catalog is the only source of pools from here on
	catalogOnly := t.TempDir()
	preset := writePreset(t, catalogOnly)
	output := filepath.Join(catalogOnly, "output.json")
	_, _, err = runBingo(t, "", "generate", "--data-dir", catalogOnly, "--catalog", db, "--preset", preset, "-o", output)
	require.NoError(t, err)

	board, err := repository.NewBoardFile(output).Read()
	require.NoError(t, err)
	assert.Len(t, board, model.BoardSize)
}

func TestImportDryRunWritesNothing(t *testing.T) {
	dir := setupDataDir(t)

	out, _, err := runBingo(t, "", "import", "--data-dir", dir, "--dry-run")
	require.NoError(t, err)
	assert.Contains(t, out, "validated 3 bosses")
	assert.NoFileExists(t, filepath.Join(dir, repository.DefaultCatalogDB))
}

func TestShowRendersGrid(t *testing.T) {
	dir := setupDataDir(t)
	_, _, err := runBingo(t, "", "generate", "--data-dir", dir, "--preset", writePreset(t, dir), "--seed", "1")
	require.NoError(t, err)

	out, _, err := runBingo(t, "", "show", "--data-dir", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Defeat Adel,")
	assert.Contains(t, out, "Nightfarer:")
}

func TestRotateRequiresSchedule(t *testing.T) {
	dir := setupDataDir(t)

	_, _, err := runBingo(t, "", "rotate", "--data-dir", dir, "--preset", writePreset(t, dir))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "one of --every or --at is required")

	_, _, err = runBingo(t, "", "rotate", "--data-dir", dir, "--preset", writePreset(t, dir), "--every", "1h", "--at", "10:00")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mutually exclusive")
}

func TestRotateStopsOnCancel(t *testing.T) {
	dir := setupDataDir(t)
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"rotate", "--data-dir", dir, "--preset", writePreset(t, dir), "--every", "1h"})

	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()
	require.NoError(t, cmd.ExecuteContext(ctx))
	assert.Contains(t, out.String(), "board rotated")
}
