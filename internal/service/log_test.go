package service_test

import (
	"bytes"
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rdevrajsinh/totalenc/internal/domain"
	"github.com/rdevrajsinh/totalenc/internal/logger"
	"github.com/rdevrajsinh/totalenc/internal/middleware"
	"github.com/rdevrajsinh/totalenc/internal/repository"
	"github.com/rdevrajsinh/totalenc/internal/service"
	"github.com/rdevrajsinh/totalenc/internal/validator"
)

func TestServiceLogsCarryRequestID(t *testing.T) {
	var buf bytes.Buffer
	logger.SetLogger(logger.New(&buf))
	t.Cleanup(func() { logger.SetLogger(logger.New(os.Stdout)) })

	contact := service.NewContactService(repository.NewMemoryStore(), validator.NewValidator())
	in := domain.NewContactMessage{Name: "Ada", Email: "ada@example.com", Message: "Quote please"}

	ctx := middleware.ContextWithRequestID(context.Background(), "req-42")
	_, err := contact.Submit(ctx, in)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"request_id":"req-42"`)
	assert.Contains(t, buf.String(), `"component":"contact"`)

	buf.Reset()
	_, err = contact.Submit(context.Background(), in)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Contact message received")
	assert.NotContains(t, buf.String(), "request_id")
}
