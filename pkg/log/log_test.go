package log

import (
	"bytes"
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func captureLogger(t *testing.T) *bytes.Buffer {
	t.Helper()

	buf := &bytes.Buffer{}
	base := logrus.New()
	base.SetOutput(buf)
	base.SetFormatter(&logrus.JSONFormatter{})

	previous := L
	L = &logger{entry: logrus.NewEntry(base)}
	t.Cleanup(func() { L = previous })

	return buf
}

func TestCorrelationID(t *testing.T) {
	ctx, id := WithCorrelationID(context.Background())

	assert.NotEmpty(t, id)
	assert.Equal(t, id, GetCorrelationID(ctx))
	assert.Empty(t, GetCorrelationID(context.Background()))
}

func TestWithFields_DevelopmentFiltering(t *testing.T) {
	buf := captureLogger(t)

	t.Run("Desenvolvimento - deve omitir campos fora da lista", func(t *testing.T) {
		t.Setenv("ENVIRONMENT", "development")
		buf.Reset()

		L.WithFields(Fields{"dataset": "AreaChart", "dataset_version": "v1", "remote_addr": "10.0.0.1"}).Info("teste")

		assert.Contains(t, buf.String(), `"dataset":"AreaChart"`)
		assert.Contains(t, buf.String(), `"dataset_version":"v1"`)
		assert.NotContains(t, buf.String(), "remote_addr")
	})

	t.Run("Produção - deve manter todos os campos", func(t *testing.T) {
		t.Setenv("ENVIRONMENT", "production")
		buf.Reset()

		L.WithFields(Fields{"dataset": "AreaChart", "remote_addr": "10.0.0.1"}).Info("teste")

		assert.Contains(t, buf.String(), "remote_addr")
	})
}

func TestRequestFields(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")
	buf := captureLogger(t)

	t.Run("Sem escopo - deve ignorar anotações", func(t *testing.T) {
		ctx := context.Background()
		AddRequestField(ctx, "dataset", "AreaChart")
		assert.Nil(t, RequestFields(ctx))
	})

	t.Run("Com escopo - ForContext deve incluir os campos anotados", func(t *testing.T) {
		buf.Reset()
		ctx, id := WithCorrelationID(context.Background())
		AddRequestField(ctx, "dataset", "AreaChart")
		AddRequestField(ctx, "kind", "pie")

		ForContext(ctx).Info("teste")

		assert.Contains(t, buf.String(), `"correlation_id":"`+id+`"`)
		assert.Contains(t, buf.String(), `"dataset":"AreaChart"`)
		assert.Contains(t, buf.String(), `"kind":"pie"`)
	})

	t.Run("Cópia - alterar o retorno não deve afetar a requisição", func(t *testing.T) {
		ctx, _ := WithCorrelationID(context.Background())
		AddRequestField(ctx, "dataset", "AreaChart")

		fields := RequestFields(ctx)
		fields["dataset"] = "BarChart"

		assert.Equal(t, "AreaChart", RequestFields(ctx)["dataset"])
	})
}
