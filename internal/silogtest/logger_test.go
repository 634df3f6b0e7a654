package silogtest_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.abhg.dev/git-split-commit/internal/silogtest"
)

func TestNew(t *testing.T) {
	var stub outputStub
	log := silogtest.New(&stub)

	log.Debug("staging change", "path", "a.txt")
	log.Infof("split %d files", 3)

	out := stub.buf.String()
	assert.Contains(t, out, "staging change")
	assert.Contains(t, out, "path=a.txt")
	assert.Contains(t, out, "split 3 files")
}

type outputStub struct{ buf bytes.Buffer }

func (*outputStub) Helper() {}

func (s *outputStub) Output() io.Writer { return &s.buf }
