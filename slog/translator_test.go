package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/skim/mock"
	skimslog "github.com/fwojciec/skim/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingTranslator_Translate(t *testing.T) {
	t.Parallel()

	t.Run("logs language and length", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Translator{
			TranslateFn: func(_ context.Context, _, _ string) (string, error) {
				return "Hola.", nil
			},
		}

		translator := skimslog.NewLoggingTranslator(inner, logger)
		translated, err := translator.Translate(context.Background(), "Hello.", "es")

		require.NoError(t, err)
		assert.Equal(t, "Hola.", translated)
		output := buf.String()
		assert.Contains(t, output, "msg=translate")
		assert.Contains(t, output, "lang=es")
		assert.Contains(t, output, "chars=6")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Translator{
			TranslateFn: func(_ context.Context, _, _ string) (string, error) {
				return "", errors.New("quota exceeded")
			},
		}

		translator := skimslog.NewLoggingTranslator(inner, logger)
		_, err := translator.Translate(context.Background(), "Hello.", "es")

		require.Error(t, err)
		assert.Contains(t, buf.String(), "err=\"quota exceeded\"")
	})
}
