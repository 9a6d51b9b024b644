package service

import (
	"fmt"
	"math/rand"

	"nightreign-bingo/internal/model"
)

const testGeneric = "Generic"

func testRNG(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

func namedTasks(prefix string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("%s %02d", prefix, i)
	}
	return out
}

// testCatalog has two nightfarers and two maps with 8 tasks each and 12
// generic tasks.
func testCatalog() model.Catalog {
	generic := make([]model.Task, 0, 12)
	for _, name := range namedTasks("generic", 12) {
		generic = append(generic, model.Task{Name: name, Category: testGeneric})
	}
	return model.Catalog{
		Bosses: []model.Task{
			{Name: "Defeat Gladius, Beast of Night", Category: model.CategoryBoss, Center: 1},
			{Name: "Defeat Adel, Baron of Night", Category: model.CategoryBoss, Center: 1},
		},
		Nightfarers: []model.Owner{
			{Name: "Wylder", Tasks: namedTasks("wylder", 8)},
			{Name: "Ironeye", Tasks: namedTasks("ironeye", 8)},
		},
		Maps: []model.Owner{
			{Name: "Default", Tasks: namedTasks("default", 8)},
			{Name: "Mountaintop", Tasks: namedTasks("mountaintop", 8)},
		},
		Generic: generic,
	}
}

func testSelection(c model.Catalog, quota model.Quota) model.Selection {
	return model.Selection{
		Boss:       c.Bosses[0],
		Nightfarer: c.Nightfarers[0],
		Map:        c.Maps[0],
		Quota:      quota,
	}
}

func testPool(quota model.Quota) Pool {
	c := testCatalog()
	return BuildPool(testSelection(c, quota), c.Generic)
}

func countCategory(board model.Board, category string) int {
	n := 0
	for _, t := range board {
		if t.HasCategory(category) {
			n++
		}
	}
	return n
}
