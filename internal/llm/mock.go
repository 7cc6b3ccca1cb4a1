package llm

import (
	"context"
	"errors"
	"sync"
)

// Reply is one scripted answer of a ScriptedProvider.
type Reply struct {
	Text string
	Err  error
}

// ScriptedProvider replays a fixed list of replies in order, standing in
// for a hosted model in tests.
type ScriptedProvider struct {
	mu       sync.Mutex
	replies  []Reply
	requests []Request
}

func NewScriptedProvider(replies ...Reply) *ScriptedProvider {
	return &ScriptedProvider{replies: replies}
}

func (p *ScriptedProvider) Generate(_ context.Context, req Request) (*Response, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.requests = append(p.requests, req)
	if len(p.replies) == 0 {
		return nil, &ErrModelUnavailable{Provider: "scripted", Err: errors.New("no replies left")}
	}

	next := p.replies[0]
	p.replies = p.replies[1:]
	if next.Err != nil {
		return nil, next.Err
	}
	return &Response{Text: next.Text, Model: p.ModelID()}, nil
}

func (p *ScriptedProvider) ModelID() string {
	return "scripted"
}

// Requests returns a copy of every request received so far.
func (p *ScriptedProvider) Requests() []Request {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]Request(nil), p.requests...)
}

func (p *ScriptedProvider) CallCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.requests)
}
