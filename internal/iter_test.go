package internal

import (
	"cmp"
	"maps"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIterSeq2Concat(t *testing.T) {
	assert := assert.New(t)

	a := map[string]int{"a": 1}
	b := map[string]int{"b": 2, "c": 3}

	all := maps.Collect(IterSeq2Concat(maps.All(a), maps.All(b)))
	assert.Equal(map[string]int{"a": 1, "b": 2, "c": 3}, all)

	count := 0
	for range IterSeq2Concat(maps.All(a), maps.All(b)) {
		count++
		break
	}
	assert.Equal(1, count)
}

func TestSortedMap(t *testing.T) {
	assert := assert.New(t)

	m := map[int]string{3: "c", 1: "a", 2: "b"}

	var keys []int
	var values []string
	for key, value := range SortedMap(m, cmp.Compare[int]) {
		keys = append(keys, key)
		values = append(values, value)
	}
	assert.Equal([]int{1, 2, 3}, keys)
	assert.Equal([]string{"a", "b", "c"}, values)
}
