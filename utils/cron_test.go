package utils

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// Tests that un-register works as expected.
func TestCron(t *testing.T) {
	prov := NewCron()
	defer prov.Stop()

	var called int32
	var id int
	id, err := prov.AddFunc("@every 1s", func() {
		if 2 == atomic.AddInt32(&called, 1) {
			prov.RemoveFunc(id)
		}
	})
	assert.NoError(t, err)

	time.Sleep(4 * time.Second)

	assert.Equal(t, int32(2), atomic.LoadInt32(&called))
}

// Tests wrong schedule.
func TestCronWrongSpec(t *testing.T) {
	prov := NewCron()
	defer prov.Stop()

	_, err := prov.AddFunc("@every wrong", func() {})
	assert.Error(t, err)
}
