package capability

import (
	"context"
	"sync"
)

// LazyKeyphraseExtractor defers heavyweight initialization of a keyphrase
// model until first use. Initialization runs exactly once, guarded by
// sync.Once, so concurrent first calls from multiple goroutines observe a
// fully initialized capability or the cached init error.
type LazyKeyphraseExtractor struct {
	init func(ctx context.Context) (KeyphraseExtractor, error)

	once    sync.Once
	inner   KeyphraseExtractor
	initErr error
}

// NewLazyKeyphraseExtractor wraps an initializer function.
func NewLazyKeyphraseExtractor(init func(ctx context.Context) (KeyphraseExtractor, error)) *LazyKeyphraseExtractor {
	return &LazyKeyphraseExtractor{init: init}
}

func (l *LazyKeyphraseExtractor) resolve(ctx context.Context) (KeyphraseExtractor, error) {
	l.once.Do(func() {
		l.inner, l.initErr = l.init(ctx)
		if l.initErr == nil && l.inner == nil {
			l.initErr = ErrUnavailable
		}
	})
	return l.inner, l.initErr
}

// ExtractKeyphrases initializes the underlying extractor on first call.
func (l *LazyKeyphraseExtractor) ExtractKeyphrases(ctx context.Context, text string, opts KeyphraseOptions) ([]Keyphrase, error) {
	inner, err := l.resolve(ctx)
	if err != nil {
		return nil, err
	}
	return inner.ExtractKeyphrases(ctx, text, opts)
}

// LazyEntityRecognizer defers NER model initialization until first use.
type LazyEntityRecognizer struct {
	init func(ctx context.Context) (EntityRecognizer, error)

	once    sync.Once
	inner   EntityRecognizer
	initErr error
}

// NewLazyEntityRecognizer wraps an initializer function.
func NewLazyEntityRecognizer(init func(ctx context.Context) (EntityRecognizer, error)) *LazyEntityRecognizer {
	return &LazyEntityRecognizer{init: init}
}

func (l *LazyEntityRecognizer) resolve(ctx context.Context) (EntityRecognizer, error) {
	l.once.Do(func() {
		l.inner, l.initErr = l.init(ctx)
		if l.initErr == nil && l.inner == nil {
			l.initErr = ErrUnavailable
		}
	})
	return l.inner, l.initErr
}

// Recognize initializes the underlying recognizer on first call.
func (l *LazyEntityRecognizer) Recognize(ctx context.Context, text string, labels []string) ([]Entity, error) {
	inner, err := l.resolve(ctx)
	if err != nil {
		return nil, err
	}
	return inner.Recognize(ctx, text, labels)
}

// RecognizeBatch initializes the underlying recognizer on first call.
func (l *LazyEntityRecognizer) RecognizeBatch(ctx context.Context, texts []string, labels []string) ([][]Entity, error) {
	inner, err := l.resolve(ctx)
	if err != nil {
		return nil, err
	}
	return inner.RecognizeBatch(ctx, texts, labels)
}

// LazyTextGenerator defers language-model initialization until first use.
type LazyTextGenerator struct {
	init func(ctx context.Context) (TextGenerator, error)

	once    sync.Once
	inner   TextGenerator
	initErr error
}

// NewLazyTextGenerator wraps an initializer function.
func NewLazyTextGenerator(init func(ctx context.Context) (TextGenerator, error)) *LazyTextGenerator {
	return &LazyTextGenerator{init: init}
}

// Generate initializes the underlying generator on first call.
func (l *LazyTextGenerator) Generate(ctx context.Context, prompt string, maxNewTokens int) (string, error) {
	l.once.Do(func() {
		l.inner, l.initErr = l.init(ctx)
		if l.initErr == nil && l.inner == nil {
			l.initErr = ErrUnavailable
		}
	})
	if l.initErr != nil {
		return "", l.initErr
	}
	return l.inner.Generate(ctx, prompt, maxNewTokens)
}
