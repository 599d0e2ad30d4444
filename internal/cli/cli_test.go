package cli

import (
	"errors"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/assert"
)

// ---------- Command tree tests ----------

func TestRootCommandHasSubcommands(t *testing.T) {
	root := newRootCommand()
	names := make([]string, 0, len(root.Commands()))
	for _, cmd := range root.Commands() {
		names = append(names, cmd.Name())
	}
	for _, name := range []string{"check", "plan", "render"} {
		assert.Contains(t, names, name, "missing subcommand: %s", name)
	}
}

func TestRootCommandVersion(t *testing.T) {
	root := newRootCommand()
	assert.Equal(t, "dev", root.Version)
}

func TestCheckCommandFlags(t *testing.T) {
	cmd := newCheckCommand()
	for _, name := range []string{"forward", "forwarded-ports", "container-port", "reserved-ports"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), "missing flag: %s", name)
	}
}

func TestPlanCommandFlags(t *testing.T) {
	cmd := newPlanCommand()
	for _, name := range []string{"forward", "forwarded-ports", "container-port", "reserved-ports", "publish-string"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), "missing flag: %s", name)
	}
}

func TestRenderCommandFlags(t *testing.T) {
	cmd := newRenderCommand()
	for _, name := range []string{"forward", "forwarded-ports", "container-port", "reserved-ports", "output"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), "missing flag: %s", name)
	}
}

// ---------- Exit code tests ----------

func TestExitCodeForError(t *testing.T) {
	tests := []struct {
		err  error
		code int
	}{
		{errbuilder.New().WithCode(errbuilder.CodeInvalidArgument).WithMsg("illegal"), 2},
		{errbuilder.New().WithCode(errbuilder.CodeFailedPrecondition).WithMsg("conflict"), 3},
		{errbuilder.New().WithCode(errbuilder.CodeNotFound).WithMsg("missing"), 4},
		{errbuilder.New().WithCode(errbuilder.CodeInternal).WithMsg("internal"), 5},
		{errors.New("plain"), 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.code, exitCodeForError(tt.err))
	}
}

func TestErrorMessagePrefersBuilderMsg(t *testing.T) {
	err := errbuilder.New().WithCode(errbuilder.CodeInvalidArgument).WithMsg("bad port")
	assert.Equal(t, "bad port", errorMessage(err))
	assert.Equal(t, "plain", errorMessage(errors.New("plain")))
}
