package capability

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedGenerator struct {
	answer string
}

func (f *fixedGenerator) Generate(_ context.Context, _ string, _ int) (string, error) {
	return f.answer, nil
}

func TestLazyTextGeneratorInitializesOnce(t *testing.T) {
	inits := 0
	lazy := NewLazyTextGenerator(func(_ context.Context) (TextGenerator, error) {
		inits++
		return &fixedGenerator{answer: "ok"}, nil
	})

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			out, err := lazy.Generate(context.Background(), "p", 10)
			assert.NoError(t, err)
			assert.Equal(t, "ok", out)
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, inits)
}

func TestLazyTextGeneratorCachesInitError(t *testing.T) {
	inits := 0
	lazy := NewLazyTextGenerator(func(_ context.Context) (TextGenerator, error) {
		inits++
		return nil, errors.New("no api key")
	})

	_, err1 := lazy.Generate(context.Background(), "p", 10)
	_, err2 := lazy.Generate(context.Background(), "p", 10)

	require.Error(t, err1)
	assert.Equal(t, err1, err2)
	assert.Equal(t, 1, inits)
}

func TestLazyTextGeneratorNilInner(t *testing.T) {
	lazy := NewLazyTextGenerator(func(_ context.Context) (TextGenerator, error) {
		return nil, nil
	})

	_, err := lazy.Generate(context.Background(), "p", 10)
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestDisabledProvider(t *testing.T) {
	p := Disabled()
	assert.Nil(t, p.Keyphrases)
	assert.Nil(t, p.Entities)
	assert.Nil(t, p.POS)
	assert.Nil(t, p.Generator)
}

func TestCallErrorUnwraps(t *testing.T) {
	cause := errors.New("rate limited")
	err := &CallError{Capability: "generator", Cause: cause}

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "generator")
	assert.Contains(t, err.Error(), "rate limited")
}
