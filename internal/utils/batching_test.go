package utils_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/maze4080/emotionsense/internal/utils"
)

func TestBatchBuffer_AddAndDrain(t *testing.T) {
	buffer := utils.NewBatchBuffer[string]()

	assert.Zero(t, buffer.Size())
	assert.Nil(t, buffer.GetAndClear())

	buffer.Add("one")
	buffer.Add("two")
	assert.Equal(t, 2, buffer.Size())

	batch := buffer.GetAndClear()
	assert.Equal(t, []string{"one", "two"}, batch)
	assert.Zero(t, buffer.Size())
	assert.Nil(t, buffer.GetAndClear())
}

func TestBatchBuffer_ConcurrentAdds(t *testing.T) {
	buffer := utils.NewBatchBuffer[int]()

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			buffer.Add(n)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 100, buffer.Size())
	assert.Len(t, buffer.GetAndClear(), 100)
}
