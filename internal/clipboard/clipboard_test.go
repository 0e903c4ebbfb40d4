package clipboard_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/alexisbeaulieu97/buttonsmith/internal/clipboard"
	"github.com/alexisbeaulieu97/buttonsmith/internal/clipboard/mocks"
	"github.com/alexisbeaulieu97/buttonsmith/internal/logger"
)

func TestCopySuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	writer := mocks.NewMockWriter(ctrl)
	writer.EXPECT().WriteText("rounded-lg").Return(nil)

	assert.True(t, clipboard.Copy(writer, logger.Nop(), "rounded-lg"))
}

func TestCopyFailureIsSwallowed(t *testing.T) {
	ctrl := gomock.NewController(t)
	writer := mocks.NewMockWriter(ctrl)
	writer.EXPECT().WriteText(gomock.Any()).Return(errors.New("xclip missing"))

	buf := &bytes.Buffer{}
	log, err := logger.New(logger.Options{Level: "debug", Writer: buf})
	require.NoError(t, err)

	assert.False(t, clipboard.Copy(writer, log, "snippet"))
	assert.Contains(t, buf.String(), "xclip missing")
}

func TestCopyFailureQuietAboveDebug(t *testing.T) {
	ctrl := gomock.NewController(t)
	writer := mocks.NewMockWriter(ctrl)
	writer.EXPECT().WriteText(gomock.Any()).Return(errors.New("denied"))

	buf := &bytes.Buffer{}
	log, err := logger.New(logger.Options{Level: "info", Writer: buf})
	require.NoError(t, err)

	assert.False(t, clipboard.Copy(writer, log, "snippet"))
	assert.Empty(t, buf.String())
}

func TestCopyWithoutWriter(t *testing.T) {
	assert.False(t, clipboard.Copy(nil, nil, "anything"))
}
