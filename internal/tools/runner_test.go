package tools

import (
	"errors"
	"reflect"
	"testing"

	"github.com/danmuck/netcode/internal/testutil/testlog"
)

type recordingRunner struct {
	name string
	args []string
}

func (r *recordingRunner) Run(name string, args ...string) ([]byte, []byte, int32, error) {
	r.name = name
	r.args = args
	return []byte("ok"), nil, 0, nil
}

func TestRunLineSplitsFields(t *testing.T) {
	testlog.Start(t)
	r := &recordingRunner{}
	out, _, code, err := RunLine(r, "  bpm_install   166 ")
	if err != nil || code != 0 || string(out) != "ok" {
		t.Fatalf("unexpected result: out=%q code=%d err=%v", out, code, err)
	}
	if r.name != "bpm_install" || !reflect.DeepEqual(r.args, []string{"166"}) {
		t.Fatalf("unexpected call: %s %v", r.name, r.args)
	}
}

func TestRunLineEmpty(t *testing.T) {
	testlog.Start(t)
	if _, _, _, err := RunLine(&recordingRunner{}, "   "); !errors.Is(err, ErrEmptyCommand) {
		t.Fatalf("expected ErrEmptyCommand, got %v", err)
	}
}

func TestExecRunnerMissingBinary(t *testing.T) {
	testlog.Start(t)
	_, _, code, err := ExecRunner{}.Run("netcode-definitely-missing-binary")
	if err == nil {
		t.Fatalf("expected error for missing binary")
	}
	if code != 127 {
		t.Fatalf("expected exit code 127, got %d", code)
	}
}
