package action

import (
	"context"
	"errors"
)

type recordingRunner struct {
	calls []Process
	hook  func(p Process) error
}

func (r *recordingRunner) Run(_ context.Context, p Process) error {
	r.calls = append(r.calls, p)
	if r.hook != nil {
		return r.hook(p)
	}
	return nil
}

type scriptedPrompter struct {
	replies   []string
	questions []string
}

var errNoReply = errors.New("no reply scripted")

func (p *scriptedPrompter) Ask(question string) (string, error) {
	p.questions = append(p.questions, question)
	if len(p.replies) == 0 {
		return "", errNoReply
	}
	reply := p.replies[0]
	p.replies = p.replies[1:]
	return reply, nil
}
