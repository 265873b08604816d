package errs

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestCode(t *testing.T) {
	require.Equal(t, int32(0), Code(nil))
	require.Equal(t, int32(CodeZeroRatio), Code(ErrZeroRatio))
	require.Equal(t, int32(CodeUnknown), Code(errors.New("not ours")))
}

func TestMsg(t *testing.T) {
	require.Equal(t, Success, Msg(nil))
	require.Equal(t, "both ratio terms are zero", Msg(ErrZeroRatio))
	require.Equal(t, "unknown error: boom", Msg(errors.New("boom")))
}
