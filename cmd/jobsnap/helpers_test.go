package main_test

import (
	"bytes"
	"context"

	main "github.com/fwojciec/jobsnap/cmd/jobsnap"
)

func newDeps() (*main.Dependencies, *bytes.Buffer, *bytes.Buffer) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	return &main.Dependencies{
		Ctx:    context.Background(),
		Stdout: stdout,
		Stderr: stderr,
	}, stdout, stderr
}
