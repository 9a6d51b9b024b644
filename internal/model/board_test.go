package model

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testBoard() Board {
	board := make(Board, 0, BoardSize)
	for i := 0; i < BoardSize-1; i++ {
		board = append(board, Task{Name: fmt.Sprintf("task %02d", i), Category: "Generic"})
	}
	// boss lands at the front of the file, not in the middle
	return append(Board{{Name: "Defeat Gladius", Category: CategoryBoss, Center: 1}}, board...)
}

func TestBoardGridPlacesCenterInMiddle(t *testing.T) {
	grid, err := testBoard().Grid()
	require.NoError(t, err)
	require.Len(t, grid, BoardSize)

	assert.Equal(t, "Defeat Gladius", grid[CenterIndex].Name)
	assert.Equal(t, "task 00", grid[0].Name)
	assert.Equal(t, "task 11", grid[CenterIndex-1].Name)
	assert.Equal(t, "task 12", grid[CenterIndex+1].Name)
	assert.Equal(t, "task 23", grid[BoardSize-1].Name)
}

func TestBoardGridRejectsMalformedBoards(t *testing.T) {
	_, err := testBoard()[:24].Grid()
	assert.Error(t, err)

	noCenter := testBoard()
	noCenter[0].Center = 0
	_, err = noCenter.Grid()
	assert.Error(t, err)
}

func TestTaskHasCategory(t *testing.T) {
	task := Task{Name: "x", Category: "Map", Categories: []string{"Combat", "Loot"}}
	assert.True(t, task.HasCategory("Map"))
	assert.True(t, task.HasCategory("Loot"))
	assert.False(t, task.HasCategory("Boss"))
	assert.Equal(t, []string{"Map", "Combat", "Loot"}, task.AllCategories())
}

func TestTaskCloneDoesNotShareCategories(t *testing.T) {
	task := Task{Name: "x", Categories: []string{"a"}}
	clone := task.Clone()
	clone.Categories[0] = "b"
	assert.Equal(t, "a", task.Categories[0])
}

func TestQuotaValidate(t *testing.T) {
	cats := []string{"Nightfarer", "Map", "Generic"}

	tests := []struct {
		name    string
		quota   Quota
		wantErr bool
	}{
		{name: "uniform fits", quota: UniformQuota(8)},
		{name: "uniform too large", quota: UniformQuota(9), wantErr: true},
		{name: "uniform negative", quota: UniformQuota(-1), wantErr: true},
		{name: "per category fits", quota: PerCategoryQuota(map[string]int{"Map": 5, "Nightfarer": 5, "Generic": 5})},
		{name: "per category exactly 25", quota: PerCategoryQuota(map[string]int{"Map": 20, "Generic": 5})},
		{name: "per category 26", quota: PerCategoryQuota(map[string]int{"Map": 20, "Generic": 6}), wantErr: true},
		{name: "per category negative", quota: PerCategoryQuota(map[string]int{"Map": -2}), wantErr: true},
		{name: "uniform wraps on multiply", quota: UniformQuota(math.MaxInt/3 + 1), wantErr: true},
		{name: "per category wraps on sum", quota: PerCategoryQuota(map[string]int{"Nightfarer": math.MaxInt, "Map": 1, "Generic": 0}), wantErr: true},
		{name: "per category single entry too large", quota: PerCategoryQuota(map[string]int{"Unused": 26}), wantErr: true},
		{name: "unknown mode", quota: Quota{Mode: "both"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.quota.Validate(cats)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestQuotaTotalDoesNotWrap(t *testing.T) {
	cats := []string{"Nightfarer", "Map", "Generic"}

	assert.Greater(t, UniformQuota(math.MaxInt/3+1).Total(cats), BoardSize)
	huge := PerCategoryQuota(map[string]int{"Nightfarer": math.MaxInt, "Map": 1})
	assert.Greater(t, huge.Total(cats), BoardSize)
}

func TestOwnerWrap(t *testing.T) {
	owner := Owner{Name: "Wylder", Tasks: []string{"a", "b"}}
	assert.Equal(t, []Task{
		{Name: "a", Category: CategoryNightfarer},
		{Name: "b", Category: CategoryNightfarer},
	}, owner.Wrap(CategoryNightfarer))
}
