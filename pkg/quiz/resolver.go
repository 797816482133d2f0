package quiz

import "context"

// Reply is one tutor response. Terminal marks the end of the session; it is
// carried separately from the text so the session loop never has to parse its
// own prose for control flow.
type Reply struct {
	Text     string
	Terminal bool
}

// Provider produces a reply for one line of user input. ok=false means the
// provider had nothing usable and the next one in the chain should run.
type Provider interface {
	Reply(ctx context.Context, input string) (Reply, bool)
}

// Resolver tries providers in priority order and keeps the first usable
// reply. The deterministic engine is expected to sit last in the chain, so a
// fully configured resolver always produces a reply.
type Resolver struct {
	providers []Provider
}

// NewResolver builds a resolver over providers, highest priority first.
func NewResolver(providers ...Provider) *Resolver {
	return &Resolver{providers: providers}
}

// Resolve returns the first non-empty reply. ok is false only when every
// provider declines.
func (r *Resolver) Resolve(ctx context.Context, input string) (Reply, bool) {
	for _, p := range r.providers {
		if reply, ok := p.Reply(ctx, input); ok && reply.Text != "" {
			return reply, true
		}
	}
	return Reply{}, false
}
